package services

import (
	"github.com/DanielPopoola/ficmart-paynow/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	commentRegistered        = "Transaction registered."
	commentCanceled          = "The transaction has been canceled."
	commentCanceledByUser    = "The transaction has been canceled by user."
	commentCompleted         = "Transaction completed successfully."
	commentInvoiceNotified   = "Notified customer about invoice #%s."
	commentRefund            = "paynow refund - amount: %s, status: %s"
	messageSelectMethod      = "Please select payment method"
	messageMissingKey        = "Security key or order id not provided"
	messageKeyMismatch       = "Security key does not match order"
	messageRetryUnavailable  = "New transaction cannot be created"
	messageCancelUnavailable = "Order cannot be canceled"
)

type TransactionResult struct {
	RedirectURL string
	PaymentID   string
	Status      domain.GatewayStatus
}

type RefundResult struct {
	RefundID string
	Status   domain.RefundStatus
	Amount   decimal.Decimal
	Message  string
}

// Links are the customer actions offered on the order pages. Empty fields
// mean the action is not available.
type Links struct {
	RetryURL  string
	CancelURL string
	FinishURL string
}

// Notification is the body of a paynow status notification.
type Notification struct {
	PaymentID  string               `json:"paymentId"`
	ExternalID string               `json:"externalId"`
	Status     domain.GatewayStatus `json:"status"`
}
