package services

import (
	"log/slog"

	"github.com/DanielPopoola/ficmart-paynow/internal/application"
)

// Options carries the shop facing settings of the orchestrator.
type Options struct {
	// ContinueURL is where the gateway sends the customer after paying.
	ContinueURL     string
	NotificationURL string
	RetryURL        string
	CancelURL       string

	// ValiditySeconds limits the payment lifetime at the gateway. Zero omits it.
	ValiditySeconds int
	SendCart        bool
	// Level0 requires the customer to choose a payment method in the shop.
	Level0 bool
}

// PaymentOrchestrator reconciles paynow transactions with shop orders.
type PaymentOrchestrator struct {
	store   application.OrderStore
	mailer  application.OrderMailer
	gateway application.GatewayClient
	secrets application.SecretProvider
	opts    Options
	logger  *slog.Logger
}

func NewPaymentOrchestrator(
	store application.OrderStore,
	mailer application.OrderMailer,
	gateway application.GatewayClient,
	secrets application.SecretProvider,
	opts Options,
	logger *slog.Logger,
) *PaymentOrchestrator {
	return &PaymentOrchestrator{
		store:   store,
		mailer:  mailer,
		gateway: gateway,
		secrets: secrets,
		opts:    opts,
		logger:  logger,
	}
}
