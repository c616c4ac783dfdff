package handlers

import (
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/ficmart-paynow/internal/application/services"
	"github.com/DanielPopoola/ficmart-paynow/internal/domain"
	"github.com/oapi-codegen/runtime"
)

// Pages are the storefront locations customers are redirected to.
type Pages struct {
	CartURL    string
	SuccessURL string
	FailureURL string
}

// Handlers serves the paynow endpoints described in the API document.
type Handlers struct {
	orchestrator *services.PaymentOrchestrator
	pages        Pages
	logger       *slog.Logger
}

func NewHandlers(
	orchestrator *services.PaymentOrchestrator,
	pages Pages,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		orchestrator: orchestrator,
		pages:        pages,
		logger:       logger,
	}
}

// Register mounts every endpoint on mux.
func (h *Handlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /paynow/notify", h.Notify)
	mux.HandleFunc("GET /paynow/retry", h.Retry)
	mux.HandleFunc("GET /paynow/cancel", h.Cancel)
	mux.HandleFunc("GET /paynow/complete", h.Complete)

	mux.HandleFunc("POST /paynow/orders/{orderId}/transactions", h.CreateTransaction)
	mux.HandleFunc("PUT /paynow/orders/{orderId}/payment-method", h.SelectPaymentMethod)
	mux.HandleFunc("GET /paynow/orders/{orderId}/links", h.CustomerLinks)
	mux.HandleFunc("POST /paynow/orders/{orderId}/refunds", h.RefundPayment)

	mux.HandleFunc("GET /paynow/payment-methods", h.ListPaymentMethods)
}

func orderIDParam(r *http.Request) (string, error) {
	var orderID string
	err := runtime.BindStyledParameterWithLocation("simple", false, "orderId", runtime.ParamLocationPath, r.PathValue("orderId"), &orderID)
	if err != nil {
		return "", &domain.DomainError{Code: domain.ErrCodeValidation, Message: "invalid order id", Err: err}
	}
	if orderID == "" {
		return "", domain.NewValidationError("order id is required")
	}
	return orderID, nil
}

func queryParam(r *http.Request, name string, required bool) (string, error) {
	var value string
	if err := runtime.BindQueryParameter("form", true, required, name, r.URL.Query(), &value); err != nil {
		return "", &domain.DomainError{Code: domain.ErrCodeValidation, Message: "invalid parameter " + name, Err: err}
	}
	return value, nil
}
