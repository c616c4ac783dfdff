package services

import (
	"context"
	"net/url"

	"github.com/DanielPopoola/ficmart-paynow/internal/application"
	"github.com/DanielPopoola/ficmart-paynow/internal/domain"
)

// ValidateCustomerRequest checks the key carried by a customer retry or
// cancel link against the order's current attempt.
func (s *PaymentOrchestrator) ValidateCustomerRequest(ctx context.Context, incrementID, key string) (*domain.Order, error) {
	if incrementID == "" || key == "" {
		return nil, domain.NewValidationError(messageMissingKey)
	}

	order, err := s.store.FindByIncrementID(ctx, incrementID)
	if err != nil {
		return nil, err
	}

	if err := s.checkKey(order, key); err != nil {
		return nil, err
	}
	return order, nil
}

// Retry creates a new transaction for an order whose last payment failed.
func (s *PaymentOrchestrator) Retry(ctx context.Context, incrementID, key string) (*TransactionResult, error) {
	if _, err := s.ValidateCustomerRequest(ctx, incrementID, key); err != nil {
		return nil, err
	}

	return s.createTransaction(ctx, incrementID, true, func(order *domain.Order) error {
		if err := s.checkKey(order, key); err != nil {
			return err
		}
		if !canRetryOrCancel(order) {
			return domain.NewAuthorizationError(messageRetryUnavailable)
		}
		return nil
	})
}

// Cancel cancels an order on behalf of the customer after a failed payment.
// The gateway status is left untouched.
func (s *PaymentOrchestrator) Cancel(ctx context.Context, incrementID, key string) error {
	if _, err := s.ValidateCustomerRequest(ctx, incrementID, key); err != nil {
		return err
	}

	var fx effects
	err := s.store.WithOrderLock(ctx, incrementID, func(ctx context.Context, order *domain.Order, repo application.OrderRepository) error {
		if err := s.checkKey(order, key); err != nil {
			return err
		}
		if !canRetryOrCancel(order) {
			return domain.NewAuthorizationError(messageCancelUnavailable)
		}

		return s.cancelOrder(ctx, order, repo, order.Payment.GatewayPaymentID, commentCanceledByUser, &fx)
	})
	if err != nil {
		return err
	}

	s.logger.Info("order canceled by customer", "order_id", incrementID)
	fx.run(ctx, s.logger)
	return nil
}

// CustomerLinks returns the retry, cancel and finish links for the order pages.
func (s *PaymentOrchestrator) CustomerLinks(ctx context.Context, incrementID string) (*Links, error) {
	order, err := s.store.FindByIncrementID(ctx, incrementID)
	if err != nil {
		return nil, err
	}

	links := &Links{}

	if order.TotalDue.IsPositive() && canRetryOrCancel(order) {
		query := url.Values{}
		query.Set("order_id", order.IncrementID)
		query.Set("key", domain.OrderIdempotencyKey(order, s.secrets.SignatureKey()))

		links.RetryURL = withQuery(s.opts.RetryURL, query)
		links.CancelURL = withQuery(s.opts.CancelURL, query)
	}

	if order.Payment.GatewayStatus.IsFinishable() && order.Payment.RedirectURL != "" {
		links.FinishURL = order.Payment.RedirectURL
	}

	return links, nil
}

// CompletionTarget reports whether the customer returning from the paywall
// with paymentStatus lands on the success page.
func (s *PaymentOrchestrator) CompletionTarget(paymentStatus string) bool {
	return domain.GatewayStatus(paymentStatus).IsCompletable()
}

func (s *PaymentOrchestrator) checkKey(order *domain.Order, key string) error {
	expected := domain.OrderIdempotencyKey(order, s.secrets.SignatureKey())
	if !domain.KeysEqual(expected, key) {
		return domain.NewAuthorizationError(messageKeyMismatch)
	}
	return nil
}

func canRetryOrCancel(order *domain.Order) bool {
	return !order.IsCanceled() && order.Payment.GatewayStatus.IsRetryOrCancelable()
}

func withQuery(base string, query url.Values) string {
	if base == "" {
		return ""
	}
	return base + "?" + query.Encode()
}
