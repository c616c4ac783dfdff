package services

import (
	"context"
	"fmt"

	"github.com/DanielPopoola/ficmart-paynow/internal/application"
	"github.com/DanielPopoola/ficmart-paynow/internal/domain"
	"github.com/shopspring/decimal"
)

// Refund asks paynow to return amount of the order's last payment. Failures
// carry the admin facing refund message.
func (s *PaymentOrchestrator) Refund(ctx context.Context, incrementID string, amount decimal.Decimal) (*RefundResult, error) {
	if !amount.IsPositive() {
		return nil, domain.NewValidationError("refund amount must be positive")
	}

	var result *RefundResult

	err := s.store.WithOrderLock(ctx, incrementID, func(ctx context.Context, order *domain.Order, repo application.OrderRepository) error {
		paymentID := order.Payment.GatewayPaymentID
		if paymentID == "" {
			return domain.NewValidationError(fmt.Sprintf("order #%s has no paynow payment to refund", order.IncrementID))
		}

		key := domain.DeriveRefundKey(paymentID, s.secrets.SignatureKey())

		resp, err := s.gateway.CreateRefund(ctx, paymentID, key, domain.ToMinorUnits(amount))
		if err != nil {
			return application.NewRefundFailedError(refundMessage(amount, refundFailureReason(err)), application.AsGatewayError(err))
		}

		if !resp.Status.IsAccepted() {
			return application.NewRefundFailedError(refundMessage(amount, string(resp.Status)), nil)
		}

		message := refundMessage(amount, string(resp.Status))

		order.Payment.RefundID = resp.RefundID
		if err := repo.SavePayment(ctx, order); err != nil {
			return application.NewInternalError(err)
		}
		if err := addHistory(ctx, order, repo, message, false); err != nil {
			return err
		}

		result = &RefundResult{
			RefundID: resp.RefundID,
			Status:   resp.Status,
			Amount:   amount,
			Message:  message,
		}
		return nil
	})
	if err != nil {
		s.logger.Error("paynow refund failed",
			"order_id", incrementID,
			"amount", amount.String(),
			"error", err,
		)
		return nil, err
	}

	s.logger.Info("paynow refund requested",
		"order_id", incrementID,
		"refund_id", result.RefundID,
		"status", result.Status,
	)
	return result, nil
}

func refundMessage(amount decimal.Decimal, status string) string {
	return fmt.Sprintf(commentRefund, amount.String(), status)
}

func refundFailureReason(err error) string {
	if gwErr, ok := application.IsGatewayError(err); ok {
		if errType := gwErr.FirstErrorType(); errType != "" {
			return errType
		}
	}
	return err.Error()
}
