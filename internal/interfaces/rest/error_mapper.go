package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/ficmart-paynow/internal/application"
	"github.com/DanielPopoola/ficmart-paynow/internal/domain"
)

type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WriteError maps application errors to HTTP responses
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	statusCode := application.ToHTTPStatus(err)
	errorCode := application.ToErrorCode(err)

	if statusCode >= http.StatusInternalServerError {
		logger.Error("request failed",
			"code", errorCode,
			"category", application.CategorizeError(err),
			"error", err,
		)
	}

	response := ErrorResponse{
		Success: false,
		Error: ErrorDetail{
			Code:    errorCode,
			Message: ErrorMessage(err),
		},
	}

	WriteJSON(w, statusCode, response)
}

// ErrorMessage is the text shown to the caller. Service errors expose only
// their message; the wrapped cause stays in the logs.
func ErrorMessage(err error) string {
	if svcErr, ok := application.IsServiceError(err); ok {
		return svcErr.Message
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}

	return err.Error()
}

func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
