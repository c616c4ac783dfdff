package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/DanielPopoola/ficmart-paynow/internal/domain"
	"github.com/DanielPopoola/ficmart-paynow/internal/interfaces/rest"
	"github.com/shopspring/decimal"
)

type selectPaymentMethodRequest struct {
	PaymentMethodID int `json:"payment_method_id"`
}

type refundRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (h *Handlers) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	orderID, err := orderIDParam(r)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	result, err := h.orchestrator.CreateTransaction(r.Context(), orderID, false)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, rest.SuccessResponse{
		Success: true,
		Data:    rest.ToAPITransaction(result),
	})
}

func (h *Handlers) SelectPaymentMethod(w http.ResponseWriter, r *http.Request) {
	orderID, err := orderIDParam(r)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	var req selectPaymentMethodRequest
	if err := decodeBody(r, &req); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	if err := h.orchestrator.SelectPaymentMethod(r.Context(), orderID, req.PaymentMethodID); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) CustomerLinks(w http.ResponseWriter, r *http.Request) {
	orderID, err := orderIDParam(r)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	links, err := h.orchestrator.CustomerLinks(r.Context(), orderID)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.SuccessResponse{
		Success: true,
		Data:    rest.ToAPILinks(links),
	})
}

// RefundPayment refunds against the order's paynow payment. Failures carry
// the admin facing refund message.
func (h *Handlers) RefundPayment(w http.ResponseWriter, r *http.Request) {
	orderID, err := orderIDParam(r)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	var req refundRequest
	if err := decodeBody(r, &req); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	result, err := h.orchestrator.Refund(r.Context(), orderID, req.Amount)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, rest.SuccessResponse{
		Success: true,
		Data:    rest.ToAPIRefund(result),
	})
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &domain.DomainError{Code: domain.ErrCodeValidation, Message: "invalid request body", Err: err}
	}
	return nil
}
