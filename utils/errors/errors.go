package errors

import (
	"fmt"
	"net/http"
)

// APIError is the error envelope every endpoint returns: a machine-readable
// code plus a human message serialized as "error". Status drives the HTTP
// response code and is not part of the body.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"error"`
	Status  int    `json:"-"`
	Details string `json:"-"`
}

// Error returns the error message
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAPIError(code, message string, status int, details ...string) *APIError {
	err := &APIError{
		Code:    code,
		Message: message,
		Status:  status,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

var (
	ErrInvalidInput = NewAPIError("INVALID_INPUT", "Invalid request data", http.StatusBadRequest)
	ErrUnauthorized = NewAPIError("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	ErrNotFound     = NewAPIError("NOT_FOUND", "Resource not found", http.StatusNotFound)
	ErrInternal     = NewAPIError("INTERNAL_ERROR", "Internal server error", http.StatusInternalServerError)

	// Attendee name validation, matching the hero dialog contract.
	ErrMissingName = NewAPIError("MISSING_NAME", "Name is required and must be a string", http.StatusBadRequest)
	ErrEmptyName   = NewAPIError("EMPTY_NAME", "Name cannot be empty", http.StatusBadRequest)
	ErrNameTooLong = NewAPIError("NAME_TOO_LONG", "Name must be 255 characters or less", http.StatusBadRequest)
)

func Wrap(err error, code, message string, status int) *APIError {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr
	}
	return NewAPIError(code, message, status, err.Error())
}
