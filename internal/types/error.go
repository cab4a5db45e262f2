package types

import (
	"fmt"
	"net/http"
)

type ErrorCode string

func (e ErrorCode) String() string {
	return string(e)
}

const (
	// ValidationError covers zero/negative amounts, empty identities and
	// out-of-range parameters
	ValidationError ErrorCode = "VALIDATION_ERROR"
	// Unauthorized means the caller lacks the required role
	Unauthorized ErrorCode = "UNAUTHORIZED"
	// InvalidState means the operation is not valid for the current
	// lifecycle state or a threshold is not met
	InvalidState ErrorCode = "INVALID_STATE"
	// InsufficientResource covers insufficient balance, allowance or
	// nothing-to-claim conditions
	InsufficientResource ErrorCode = "INSUFFICIENT_RESOURCE"
	// CapacityExceeded means the issuance would exceed the reserve capacity
	CapacityExceeded     ErrorCode = "CAPACITY_EXCEEDED"
	NotFound             ErrorCode = "NOT_FOUND"
	InternalServiceError ErrorCode = "INTERNAL_SERVICE_ERROR"
)

// Error is the service-level error carrying the HTTP status the API layer
// should answer with. No operation retries internally; every Error is a
// whole-operation rejection.
type Error struct {
	Err        error
	StatusCode int
	ErrorCode  ErrorCode
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.ErrorCode.String()
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(statusCode int, errorCode ErrorCode, err error) *Error {
	return &Error{
		Err:        err,
		StatusCode: statusCode,
		ErrorCode:  errorCode,
	}
}

func NewErrorWithMsg(statusCode int, errorCode ErrorCode, msg string) *Error {
	return NewError(statusCode, errorCode, fmt.Errorf("%s", msg))
}

func NewValidationError(msg string) *Error {
	return NewErrorWithMsg(http.StatusBadRequest, ValidationError, msg)
}

func NewInvalidStateError(msg string) *Error {
	return NewErrorWithMsg(http.StatusConflict, InvalidState, msg)
}

func NewInternalServiceError(err error) *Error {
	return &Error{
		Err:        err,
		StatusCode: http.StatusInternalServerError,
		ErrorCode:  InternalServiceError,
	}
}
