package domain

import (
	"fmt"
	"net/http"
)

// ErrorResponse is the api error body.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ValidationError aborts a single calculation run when a required geometry
// input is missing. No partial result accompanies it.
type ValidationError struct {
	Field string
}

func NewValidationError(field string) *ValidationError {
	return &ValidationError{Field: field}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required input: %s", e.Field)
}

func (e *ValidationError) Code() int {
	return http.StatusUnprocessableEntity
}
