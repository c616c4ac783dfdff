package paynow

import "github.com/DanielPopoola/ficmart-paynow/internal/application"

type paymentMethodGroup struct {
	Type           string                      `json:"type"`
	PaymentMethods []application.PaymentMethod `json:"paymentMethods"`
}

type refundRequest struct {
	Amount int64 `json:"amount"`
}

type shopURLsRequest struct {
	ContinueURL     string `json:"continueUrl"`
	NotificationURL string `json:"notificationUrl"`
}

type errorResponse struct {
	StatusCode int                              `json:"statusCode"`
	Errors     []application.GatewayErrorDetail `json:"errors"`
}
