package handlers

import (
	"net/http"
	"strings"

	"github.com/DanielPopoola/ficmart-paynow/internal/domain"
	"github.com/DanielPopoola/ficmart-paynow/internal/interfaces/rest"
	"github.com/shopspring/decimal"
)

// ListPaymentMethods lists the paynow methods for a cart. An empty list
// means paynow should not be offered.
func (h *Handlers) ListPaymentMethods(w http.ResponseWriter, r *http.Request) {
	currency, err := queryParam(r, "currency", true)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rawAmount, err := queryParam(r, "amount", true)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		rest.WriteError(w, &domain.DomainError{Code: domain.ErrCodeValidation, Message: "invalid amount", Err: err}, h.logger)
		return
	}

	methods := h.orchestrator.AvailableMethods(r.Context(), strings.ToUpper(currency), amount)

	rest.WriteJSON(w, http.StatusOK, rest.SuccessResponse{
		Success: true,
		Data:    rest.ToAPIPaymentMethods(methods),
	})
}
