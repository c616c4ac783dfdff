package services

import (
	"context"

	"github.com/DanielPopoola/ficmart-paynow/internal/application"
	"github.com/DanielPopoola/ficmart-paynow/internal/domain"
)

// CreateTransaction registers a paynow transaction for the order and returns
// the paywall redirect. A first time call on an order that already has a
// transaction returns the existing one.
func (s *PaymentOrchestrator) CreateTransaction(ctx context.Context, incrementID string, isRetry bool) (*TransactionResult, error) {
	return s.createTransaction(ctx, incrementID, isRetry, nil)
}

// createTransaction runs guard under the order lock before anything else, so
// retry eligibility is judged on the same order state that gets written.
func (s *PaymentOrchestrator) createTransaction(
	ctx context.Context,
	incrementID string,
	isRetry bool,
	guard func(order *domain.Order) error,
) (*TransactionResult, error) {
	var (
		result  *TransactionResult
		created *domain.Order
	)

	err := s.store.WithOrderLock(ctx, incrementID, func(ctx context.Context, order *domain.Order, repo application.OrderRepository) error {
		if guard != nil {
			if err := guard(order); err != nil {
				return err
			}
		}

		if !isRetry && order.HasTransaction() {
			result = transactionResult(order)
			return nil
		}

		if order.IsCanceled() {
			return domain.NewInvalidStateError("order #" + order.IncrementID + " is canceled")
		}

		if s.opts.Level0 && order.Payment.SelectedMethodID <= 0 {
			return domain.NewValidationError(messageSelectMethod)
		}

		req := s.buildAuthorizeRequest(order)
		key := domain.OrderIdempotencyKey(order, s.secrets.SignatureKey())

		resp, err := s.gateway.Authorize(ctx, req, key)
		if err != nil {
			s.logger.Error("paynow authorize failed",
				"order_id", order.IncrementID,
				"retry", isRetry,
				"error", err,
			)
			return application.AsGatewayError(err)
		}

		order.Payment.RedirectURL = resp.RedirectURL
		order.Payment.GatewayPaymentID = resp.PaymentID
		order.Payment.GatewayStatus = domain.StatusNew

		if err := repo.SavePayment(ctx, order); err != nil {
			return application.NewInternalError(err)
		}

		err = repo.AddTransaction(ctx, order, domain.PaymentTransaction{
			TransactionID: resp.PaymentID,
			Comment:       commentRegistered,
		})
		if err != nil {
			return application.NewInternalError(err)
		}

		result = transactionResult(order)
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	if created != nil {
		s.logger.Info("paynow transaction registered",
			"order_id", created.IncrementID,
			"payment_id", created.Payment.GatewayPaymentID,
			"retry", isRetry,
		)

		if !isRetry {
			if err := s.mailer.SendNewOrderEmail(ctx, created); err != nil {
				s.logger.Warn("failed to send new order email",
					"order_id", created.IncrementID,
					"error", err,
				)
			}
		}
	}

	return result, nil
}

// SelectPaymentMethod remembers the payment method chosen in the shop. It is
// sent with the first transaction only.
func (s *PaymentOrchestrator) SelectPaymentMethod(ctx context.Context, incrementID string, methodID int) error {
	if methodID <= 0 {
		return domain.NewValidationError("payment method id must be positive")
	}

	return s.store.WithOrderLock(ctx, incrementID, func(ctx context.Context, order *domain.Order, repo application.OrderRepository) error {
		if order.TransactionCount > 0 || order.HasTransaction() {
			return domain.NewValidationError("payment method cannot be changed after a transaction was created")
		}

		order.Payment.SelectedMethodID = methodID
		if err := repo.SavePayment(ctx, order); err != nil {
			return application.NewInternalError(err)
		}
		return nil
	})
}

func transactionResult(order *domain.Order) *TransactionResult {
	return &TransactionResult{
		RedirectURL: order.Payment.RedirectURL,
		PaymentID:   order.Payment.GatewayPaymentID,
		Status:      order.Payment.GatewayStatus,
	}
}
