package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeOrderNotFound = "ORDER_NOT_FOUND"
	ErrCodeAuthorization = "AUTHORIZATION_ERROR"
	ErrCodeSignature     = "SIGNATURE_ERROR"
	ErrCodeStateConflict = "STATE_CONFLICT"
	ErrCodeInvalidState  = "INVALID_STATE"
)

func NewValidationError(message string) *DomainError {
	return &DomainError{
		Code:    ErrCodeValidation,
		Message: message,
	}
}

func NewOrderNotFoundError(incrementID string) *DomainError {
	return &DomainError{
		Code:    ErrCodeOrderNotFound,
		Message: fmt.Sprintf("order #%s not found", incrementID),
	}
}

func NewAuthorizationError(message string) *DomainError {
	return &DomainError{
		Code:    ErrCodeAuthorization,
		Message: message,
	}
}

func NewSignatureError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeSignature,
		Message: "notification signature verification failed",
		Err:     err,
	}
}

func NewStateConflictError(current, incoming GatewayStatus) *DomainError {
	return &DomainError{
		Code:    ErrCodeStateConflict,
		Message: fmt.Sprintf("status %q does not advance current status %q", incoming, current),
	}
}

func NewInvalidStateError(message string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidState,
		Message: message,
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
