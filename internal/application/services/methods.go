package services

import (
	"context"

	"github.com/DanielPopoola/ficmart-paynow/internal/application"
	"github.com/DanielPopoola/ficmart-paynow/internal/domain"
	"github.com/shopspring/decimal"
)

// AvailableMethods lists the paynow payment methods for a cart. Gateway
// failures yield an empty list.
func (s *PaymentOrchestrator) AvailableMethods(ctx context.Context, currency string, amount decimal.Decimal) []application.PaymentMethod {
	methods, err := s.gateway.GetPaymentMethods(ctx, currency, domain.ToMinorUnits(amount))
	if err != nil {
		s.logger.Warn("failed to fetch paynow payment methods",
			"currency", currency,
			"amount", amount.String(),
			"error", err,
		)
		return []application.PaymentMethod{}
	}
	if methods == nil {
		return []application.PaymentMethod{}
	}
	return methods
}

// IsAvailable reports whether paynow can be offered for the cart.
func (s *PaymentOrchestrator) IsAvailable(ctx context.Context, currency string, amount decimal.Decimal) bool {
	return len(s.AvailableMethods(ctx, currency, amount)) > 0
}

// ConfigureShopURLs pushes the continue and notification URLs to paynow.
func (s *PaymentOrchestrator) ConfigureShopURLs(ctx context.Context) error {
	err := s.gateway.UpdateShopURLs(ctx, s.opts.ContinueURL, s.opts.NotificationURL)
	if err != nil {
		s.logger.Warn("failed to configure paynow shop urls", "error", err)
		return application.AsGatewayError(err)
	}

	s.logger.Info("paynow shop urls configured",
		"continue_url", s.opts.ContinueURL,
		"notification_url", s.opts.NotificationURL,
	)
	return nil
}
