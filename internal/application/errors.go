package application

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APPLICATION-LEVEL ERRORS (Orchestration)

type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeGateway      = "GATEWAY_ERROR"
	ErrCodeRefundFailed = "REFUND_FAILED"
	ErrCodeTimeout      = "TIMEOUT"
)

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "An internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewRefundFailedError carries the admin facing refund message.
func NewRefundFailedError(message string, err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeRefundFailed,
		Message:    message,
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}

// GATEWAY ERRORS (External API)

// GatewayErrorDetail is one entry of the paynow error response.
type GatewayErrorDetail struct {
	Type    string `json:"errorType"`
	Message string `json:"message"`
}

// GatewayError is a transport or business failure reported by paynow.
type GatewayError struct {
	StatusCode int
	Errors     []GatewayErrorDetail
	Message    string
	Err        error
}

func (e *GatewayError) Error() string {
	var b strings.Builder
	b.WriteString("paynow error")
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (status: %d)", e.StatusCode)
	}
	if len(e.Errors) > 0 {
		fmt.Fprintf(&b, " [%s]: %s", e.Errors[0].Type, e.Errors[0].Message)
	} else if e.Message != "" {
		b.WriteString(": " + e.Message)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether the gateway failure is worth another attempt.
func (e *GatewayError) IsRetryable() bool {
	if e.StatusCode == 0 {
		return true
	}
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

// FirstErrorType returns the type of the first reported error, if any.
func (e *GatewayError) FirstErrorType() string {
	if len(e.Errors) == 0 {
		return ""
	}
	return e.Errors[0].Type
}

func IsGatewayError(err error) (*GatewayError, bool) {
	var gwErr *GatewayError
	ok := errors.As(err, &gwErr)
	return gwErr, ok
}

// AsGatewayError wraps a non gateway failure (network, decoding) so callers
// see a single error kind for the gateway boundary.
func AsGatewayError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := IsGatewayError(err); ok {
		return err
	}
	return &GatewayError{Message: "request failed", Err: err}
}
