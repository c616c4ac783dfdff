package middleware

import (
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/ficmart-paynow/internal/domain"
	"github.com/DanielPopoola/ficmart-paynow/internal/interfaces/rest"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
)

// CustomerRedirectExtension marks operations answered with a redirect and a
// flash message. Their handlers report bad input themselves.
const CustomerRedirectExtension = "x-customer-redirect"

// Validation rejects requests that do not match the OpenAPI document.
// Requests for paths the document does not describe, and customer redirect
// operations, are passed through.
func Validation(doc *openapi3.T, logger *slog.Logger) (func(http.Handler) http.Handler, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		ExcludeResponseBody: true,
		MultiError:          false,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route, pathParams, err := router.FindRoute(r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			if _, ok := route.Operation.Extensions[CustomerRedirectExtension]; ok {
				next.ServeHTTP(w, r)
				return
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}

			if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
				logger.Debug("request rejected by validation",
					"method", r.Method,
					"path", r.URL.Path,
					"error", err,
				)
				rest.WriteError(w, &domain.DomainError{
					Code:    domain.ErrCodeValidation,
					Message: "request does not match the API contract",
					Err:     err,
				}, logger)
				return
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}
