package handlers

import (
	"fmt"
	"net/http"

	"github.com/DanielPopoola/ficmart-paynow/internal/application/services"
	"github.com/DanielPopoola/ficmart-paynow/internal/domain"
	"github.com/DanielPopoola/ficmart-paynow/internal/interfaces/rest"
)

const messagePaymentFailed = "An error occurred during the payment process. Please try again later."

// Retry starts a new paynow transaction from a customer retry link.
func (h *Handlers) Retry(w http.ResponseWriter, r *http.Request) {
	orderID, key, err := customerParams(r)
	if err == nil {
		var result *services.TransactionResult
		result, err = h.orchestrator.Retry(r.Context(), orderID, key)
		if err == nil {
			http.Redirect(w, r, result.RedirectURL, http.StatusFound)
			return
		}
	}

	h.logger.Warn("customer retry failed", "order_id", orderID, "error", err)
	rest.SetFlash(w, rest.FlashError, customerMessage(err))
	http.Redirect(w, r, h.pages.FailureURL, http.StatusFound)
}

// Cancel cancels the order from a customer cancel link.
func (h *Handlers) Cancel(w http.ResponseWriter, r *http.Request) {
	orderID, key, err := customerParams(r)
	if err == nil {
		err = h.orchestrator.Cancel(r.Context(), orderID, key)
	}

	if err != nil {
		h.logger.Warn("customer cancel failed", "order_id", orderID, "error", err)
		rest.SetFlash(w, rest.FlashError, customerMessage(err))
	} else {
		rest.SetFlash(w, rest.FlashSuccess, fmt.Sprintf("Order #%s cancelled successfully!", orderID))
	}

	http.Redirect(w, r, h.pages.CartURL, http.StatusFound)
}

// Complete is the paywall return point.
func (h *Handlers) Complete(w http.ResponseWriter, r *http.Request) {
	status, err := queryParam(r, "paymentStatus", false)
	if err == nil && h.orchestrator.CompletionTarget(status) {
		http.Redirect(w, r, h.pages.SuccessURL, http.StatusFound)
		return
	}

	http.Redirect(w, r, h.pages.FailureURL, http.StatusFound)
}

func customerParams(r *http.Request) (string, string, error) {
	orderID, err := queryParam(r, "order_id", false)
	if err != nil {
		return "", "", err
	}
	key, err := queryParam(r, "key", false)
	if err != nil {
		return orderID, "", err
	}
	return orderID, key, nil
}

// customerMessage hides anything but business messages from customers.
func customerMessage(err error) string {
	switch {
	case domain.IsErrorCode(err, domain.ErrCodeValidation),
		domain.IsErrorCode(err, domain.ErrCodeAuthorization),
		domain.IsErrorCode(err, domain.ErrCodeOrderNotFound),
		domain.IsErrorCode(err, domain.ErrCodeInvalidState):
		return rest.ErrorMessage(err)
	default:
		return messagePaymentFailed
	}
}
