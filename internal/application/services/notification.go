package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/DanielPopoola/ficmart-paynow/internal/application"
	"github.com/DanielPopoola/ficmart-paynow/internal/domain"
)

// HandleNotification verifies and applies a paynow status notification.
// Notifications that do not advance the current status are dropped without
// error.
func (s *PaymentOrchestrator) HandleNotification(ctx context.Context, payload []byte, signature string) error {
	if err := s.gateway.VerifySignature(s.secrets.SignatureKey(), payload, signature); err != nil {
		s.logger.Warn("rejected paynow notification", "error", err)
		return domain.NewSignatureError(err)
	}

	var n Notification
	if err := json.Unmarshal(payload, &n); err != nil {
		return &domain.DomainError{
			Code:    domain.ErrCodeValidation,
			Message: "malformed notification payload",
			Err:     err,
		}
	}
	if n.ExternalID == "" || n.PaymentID == "" || n.Status == "" {
		return domain.NewValidationError("notification is missing externalId, paymentId or status")
	}

	t, err := s.ApplyStatus(ctx, n.ExternalID, n.PaymentID, n.Status)
	if err != nil {
		return err
	}

	s.logger.Info("paynow notification processed",
		"order_id", n.ExternalID,
		"payment_id", n.PaymentID,
		"from", t.From,
		"to", t.To,
		"applied", t.Applied,
		"action", t.Action.String(),
	)
	return nil
}

// ApplyStatus feeds a gateway status for the order through the transition
// engine and executes the resulting action under the order lock.
func (s *PaymentOrchestrator) ApplyStatus(ctx context.Context, incrementID, paymentID string, status domain.GatewayStatus) (domain.Transition, error) {
	var (
		t  domain.Transition
		fx effects
	)

	err := s.store.WithOrderLock(ctx, incrementID, func(ctx context.Context, order *domain.Order, repo application.OrderRepository) error {
		t = domain.Apply(order.Payment.GatewayStatus, status)
		if !t.Applied {
			return nil
		}

		if err := s.execute(ctx, order, repo, t.Action, paymentID, &fx); err != nil {
			return err
		}

		order.Payment.GatewayStatus = status
		if err := repo.SavePayment(ctx, order); err != nil {
			return application.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return t, err
	}

	fx.run(ctx, s.logger)
	return t, nil
}

// SyncPaymentStatus asks the gateway for the current status of the order's
// payment and applies it like a notification.
func (s *PaymentOrchestrator) SyncPaymentStatus(ctx context.Context, order *domain.Order) (domain.Transition, error) {
	if !order.HasTransaction() {
		return domain.Transition{}, domain.NewInvalidStateError(fmt.Sprintf("order #%s has no paynow transaction", order.IncrementID))
	}

	resp, err := s.gateway.GetPaymentStatus(ctx, order.Payment.GatewayPaymentID)
	if err != nil {
		return domain.Transition{}, application.AsGatewayError(err)
	}

	return s.ApplyStatus(ctx, order.IncrementID, resp.PaymentID, resp.Status)
}

func (s *PaymentOrchestrator) execute(
	ctx context.Context,
	order *domain.Order,
	repo application.OrderRepository,
	action domain.Action,
	paymentID string,
	fx *effects,
) error {
	switch action {
	case domain.ActionRejected:
		return s.rejectTransaction(ctx, order, repo, paymentID, fx)
	case domain.ActionCompleted:
		return s.completeTransaction(ctx, order, repo, paymentID, fx)
	case domain.ActionCanceled:
		return s.cancelOrder(ctx, order, repo, paymentID, commentCanceled, fx)
	}
	return nil
}

func (s *PaymentOrchestrator) rejectTransaction(ctx context.Context, order *domain.Order, repo application.OrderRepository, paymentID string, fx *effects) error {
	if err := closeTransaction(ctx, order, repo, paymentID, commentCanceled); err != nil {
		return err
	}
	if err := addHistory(ctx, order, repo, commentCanceled, true); err != nil {
		return err
	}

	snapshot := *order
	fx.add("order update email", order.IncrementID, func(ctx context.Context) error {
		return s.mailer.SendOrderUpdateEmail(ctx, &snapshot, commentCanceled)
	})
	return nil
}

func (s *PaymentOrchestrator) completeTransaction(ctx context.Context, order *domain.Order, repo application.OrderRepository, paymentID string, fx *effects) error {
	if err := closeTransaction(ctx, order, repo, paymentID, commentCompleted); err != nil {
		return err
	}

	invoice, err := repo.RegisterCapture(ctx, order, order.TotalDue)
	if err != nil {
		return application.NewInternalError(err)
	}
	if invoice == nil {
		return nil
	}

	if err := addHistory(ctx, order, repo, fmt.Sprintf(commentInvoiceNotified, invoice.IncrementID), true); err != nil {
		return err
	}

	snapshot := *order
	fx.add("invoice email", order.IncrementID, func(ctx context.Context) error {
		return s.mailer.SendInvoiceEmail(ctx, &snapshot, invoice)
	})
	return nil
}

func (s *PaymentOrchestrator) cancelOrder(ctx context.Context, order *domain.Order, repo application.OrderRepository, paymentID, comment string, fx *effects) error {
	if err := closeTransaction(ctx, order, repo, paymentID, comment); err != nil {
		return err
	}
	if err := repo.CancelOrder(ctx, order); err != nil {
		return application.NewInternalError(err)
	}
	if err := addHistory(ctx, order, repo, comment, true); err != nil {
		return err
	}

	snapshot := *order
	fx.add("order update email", order.IncrementID, func(ctx context.Context) error {
		return s.mailer.SendOrderUpdateEmail(ctx, &snapshot, comment)
	})
	return nil
}

func closeTransaction(ctx context.Context, order *domain.Order, repo application.OrderRepository, paymentID, comment string) error {
	err := repo.AddTransaction(ctx, order, domain.PaymentTransaction{
		TransactionID: paymentID,
		Comment:       comment,
		Approved:      true,
		Closed:        true,
	})
	if err != nil {
		return application.NewInternalError(err)
	}
	return nil
}

func addHistory(ctx context.Context, order *domain.Order, repo application.OrderRepository, comment string, notified bool) error {
	err := repo.AddHistoryComment(ctx, order, domain.HistoryComment{
		Comment:          comment,
		CustomerNotified: notified,
	})
	if err != nil {
		return application.NewInternalError(err)
	}
	return nil
}

// effects are customer emails queued while the order lock is held. They run
// after the order changes are committed, and their failures are only logged.
type effects struct {
	items []effect
}

type effect struct {
	name    string
	orderID string
	send    func(ctx context.Context) error
}

func (e *effects) add(name, orderID string, send func(ctx context.Context) error) {
	e.items = append(e.items, effect{name: name, orderID: orderID, send: send})
}

func (e *effects) run(ctx context.Context, logger *slog.Logger) {
	for _, item := range e.items {
		if err := item.send(ctx); err != nil {
			logger.Warn("failed to send "+item.name,
				"order_id", item.orderID,
				"error", err,
			)
		}
	}
}
