package domain

import (
	"fmt"
	"strings"
)

// ErrorCode is the coarse error taxonomy exposed to clients.
type ErrorCode string

const (
	CodeValidationError ErrorCode = "ValidationError"
	CodeInternalError   ErrorCode = "InternalError"
	CodeNotFoundError   ErrorCode = "NotFoundError"
)

// internalDetails is the only internal-error text a client ever sees;
// the real cause stays behind Unwrap for logging.
const internalDetails = "upload failed due to an internal error"

// ServiceError is the terminal failure result for a request. Code and
// Details are serialized to the client; cause is not.
type ServiceError struct {
	Code    ErrorCode `json:"Code"`
	Details string    `json:"Details"`
	cause   error
}

func (e *ServiceError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Details, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Details)
}

func (e *ServiceError) Unwrap() error {
	return e.cause
}

// NewValidationError reports the failing field names in the order given,
// which callers must keep deterministic.
func NewValidationError(fields []string) *ServiceError {
	return &ServiceError{
		Code:    CodeValidationError,
		Details: fmt.Sprintf("Validation failed. Properties: (%s)", strings.Join(fields, ", ")),
	}
}

func NewInternalError(cause error) *ServiceError {
	return &ServiceError{
		Code:    CodeInternalError,
		Details: internalDetails,
		cause:   cause,
	}
}

func NewNotFoundError(id string) *ServiceError {
	return &ServiceError{
		Code:    CodeNotFoundError,
		Details: fmt.Sprintf("file with id = %s not found", id),
	}
}
