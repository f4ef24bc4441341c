// Package apperror holds the error values services hand back to the HTTP layer.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Error struct {
	Code    int
	Message string
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation reports offending fields keyed by their wire name.
func Validation(fields map[string]string) *Error {
	return &Error{
		Code:    http.StatusBadRequest,
		Message: "validation failed",
		Fields:  fields,
	}
}

func FieldError(field, message string) *Error {
	return Validation(map[string]string{field: message})
}

func NotFound(what string) *Error {
	return &Error{
		Code:    http.StatusNotFound,
		Message: what + " not found",
	}
}

func Conflict(message string) *Error {
	return &Error{
		Code:    http.StatusConflict,
		Message: message,
	}
}

func Internal(err error) *Error {
	return &Error{
		Code:    http.StatusInternalServerError,
		Message: "internal server error",
		Err:     err,
	}
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func IsNotFound(err error) bool {
	appErr, ok := As(err)
	return ok && appErr.Code == http.StatusNotFound
}
