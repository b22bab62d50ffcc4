package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the HTTP boundary.
type Kind string

const (
	KindValidation      Kind = "VALIDATION"
	KindNotFound        Kind = "NOT_FOUND"
	KindMalformedRecord Kind = "MALFORMED_RECORD"
	KindIO              Kind = "IO"
)

// AppError is the error shape every layer below the handlers returns.
type AppError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// NewValidation reports bad input shape or range, caught before any table I/O.
func NewValidation(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NewNotFound reports a referenced id that did not resolve.
func NewNotFound(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewMalformedRecord reports an unparsable persisted row.
func NewMalformedRecord(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindMalformedRecord, Message: fmt.Sprintf(format, args...)}
}

// NewIO reports an unreadable or unwritable backing table.
func NewIO(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindIO, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the Kind of err, or KindIO when err is not an AppError.
func KindOf(err error) Kind {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindIO
}

// IsNotFound reports whether err is a NOT_FOUND AppError.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsValidation reports whether err is a VALIDATION AppError.
func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}
