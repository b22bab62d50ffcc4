package services

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"tractor-backend/internal/apperrors"
)

var validate = validator.New()

// checkRequest runs struct-tag validation and folds the result into the
// VALIDATION error shape the handlers expect.
func checkRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.NewValidation("invalid request").WithCause(err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		case "email":
			msgs = append(msgs, fe.Field()+" must be a valid email address")
		case "gt":
			msgs = append(msgs, fe.Field()+" must be greater than "+fe.Param())
		case "gte":
			msgs = append(msgs, fe.Field()+" must be at least "+fe.Param())
		case "min":
			msgs = append(msgs, fe.Field()+" must have at least "+fe.Param()+" entries")
		default:
			msgs = append(msgs, fe.Field()+" is invalid")
		}
	}
	return apperrors.NewValidation("%s", strings.Join(msgs, "; "))
}
