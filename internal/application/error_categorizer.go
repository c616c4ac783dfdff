package application

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/DanielPopoola/ficmart-paynow/internal/domain"
)

// ErrorCategory represents the nature of an error for retry logic
type ErrorCategory string

const (
	CategoryTransient      ErrorCategory = "TRANSIENT"
	CategoryPermanent      ErrorCategory = "PERMANENT"
	CategoryBusinessRule   ErrorCategory = "BUSINESS_RULE"
	CategoryClientError    ErrorCategory = "CLIENT_ERROR"
	CategoryInfrastructure ErrorCategory = "INFRASTRUCTURE"
)

// CategorizeError determines error category for retry and logging purposes
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.Canceled) {
		return CategoryClientError
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return CategoryTransient
	}

	switch {
	case domain.IsErrorCode(err, domain.ErrCodeValidation),
		domain.IsErrorCode(err, domain.ErrCodeOrderNotFound),
		domain.IsErrorCode(err, domain.ErrCodeAuthorization),
		domain.IsErrorCode(err, domain.ErrCodeSignature):
		return CategoryClientError
	case domain.IsErrorCode(err, domain.ErrCodeStateConflict),
		domain.IsErrorCode(err, domain.ErrCodeInvalidState):
		return CategoryBusinessRule
	}

	if svcErr, ok := IsServiceError(err); ok {
		switch svcErr.Code {
		case ErrCodeInternal:
			return CategoryInfrastructure
		case ErrCodeTimeout:
			return CategoryTransient
		case ErrCodeRefundFailed:
			return CategoryPermanent
		}
	}

	if gwErr, ok := IsGatewayError(err); ok {
		if gwErr.IsRetryable() {
			return CategoryTransient
		}

		switch gwErr.FirstErrorType() {
		case "NOT_FOUND", "VALIDATION_ERROR", "CONFLICT":
			return CategoryClientError
		case "UNAUTHORIZED", "FORBIDDEN":
			return CategoryInfrastructure
		default:
			return CategoryPermanent
		}
	}

	// Default: Transient (safe fallback)
	return CategoryTransient
}

// IsRetryable returns true if the error category suggests retry
func IsRetryable(err error) bool {
	category := CategorizeError(err)
	return category == CategoryTransient || category == CategoryInfrastructure
}

// ToHTTPStatus maps error to appropriate HTTP status code
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case domain.IsErrorCode(err, domain.ErrCodeValidation):
		return http.StatusBadRequest
	case domain.IsErrorCode(err, domain.ErrCodeOrderNotFound):
		return http.StatusNotFound
	case domain.IsErrorCode(err, domain.ErrCodeAuthorization),
		domain.IsErrorCode(err, domain.ErrCodeSignature):
		return http.StatusForbidden
	case domain.IsErrorCode(err, domain.ErrCodeStateConflict),
		domain.IsErrorCode(err, domain.ErrCodeInvalidState):
		return http.StatusConflict
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	if _, ok := IsGatewayError(err); ok {
		return http.StatusBadGateway
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return http.StatusRequestTimeout
	}

	// Default to 500
	return http.StatusInternalServerError
}

// ToErrorCode clear error code for API responses
func ToErrorCode(err error) string {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}

	if gwErr, ok := IsGatewayError(err); ok {
		if t := gwErr.FirstErrorType(); t != "" {
			return "GATEWAY_" + strings.ToUpper(t)
		}
		return ErrCodeGateway
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrCodeTimeout
	}

	return ErrCodeInternal
}
