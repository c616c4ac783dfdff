package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/DanielPopoola/ficmart-paynow/internal/application"
	"github.com/DanielPopoola/ficmart-paynow/internal/interfaces/rest"
)

var timeoutBody = func() string {
	body, _ := json.Marshal(rest.ErrorResponse{
		Success: false,
		Error: rest.ErrorDetail{
			Code:    application.ErrCodeTimeout,
			Message: "Request timeout",
		},
	})
	return string(body)
}()

// Timeout bounds the handler with a deadline. The handler context is
// canceled when it expires, which aborts gateway calls and lock waits.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, timeout, timeoutBody)
	}
}
