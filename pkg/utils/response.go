package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"tractor-backend/internal/apperrors"
)

// JSON writes data as an application/json response.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// Error writes the uniform {"error": message} failure shape.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// ErrorFrom maps a typed error to its HTTP status and writes it. No
// raw error ever crosses this boundary unformatted.
func ErrorFrom(w http.ResponseWriter, err error) {
	var ae *apperrors.AppError
	if !errors.As(err, &ae) {
		Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	status := http.StatusInternalServerError
	switch ae.Kind {
	case apperrors.KindValidation:
		status = http.StatusBadRequest
	case apperrors.KindNotFound:
		status = http.StatusNotFound
	}
	Error(w, status, ae.Message)
}
