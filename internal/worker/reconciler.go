package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/DanielPopoola/ficmart-paynow/internal/application"
	"github.com/DanielPopoola/ficmart-paynow/internal/domain"
)

// StatusSyncer pulls the current gateway status of an order's payment and
// applies it through the notification path.
type StatusSyncer interface {
	SyncPaymentStatus(ctx context.Context, order *domain.Order) (domain.Transition, error)
}

// StatusReconciler polls paynow for payments that are still unfinished
// locally. It backs up notifications that were lost or not acknowledged.
type StatusReconciler struct {
	store      application.OrderStore
	syncer     StatusSyncer
	interval   time.Duration
	batchSize  int
	staleAfter time.Duration
	logger     *slog.Logger
}

func NewStatusReconciler(
	store application.OrderStore,
	syncer StatusSyncer,
	interval time.Duration,
	batchSize int,
	staleAfter time.Duration,
	logger *slog.Logger,
) *StatusReconciler {
	return &StatusReconciler{
		store:      store,
		syncer:     syncer,
		interval:   interval,
		batchSize:  batchSize,
		staleAfter: staleAfter,
		logger:     logger,
	}
}

func (r *StatusReconciler) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("starting status reconciler",
		"interval", r.interval,
		"batch_size", r.batchSize,
		"stale_after", r.staleAfter,
	)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("stopping status reconciler")
			return
		case <-ticker.C:
			r.RunOnce(ctx)
		}
	}
}

// RunOnce executes a single reconciliation cycle and returns the number of
// orders whose status advanced.
func (r *StatusReconciler) RunOnce(ctx context.Context) int {
	orders, err := r.store.ClaimStalePayments(ctx, domain.FinishableStatuses(), r.staleAfter, r.batchSize)
	if err != nil {
		r.logger.Error("failed to fetch stale payments", "error", err)
		return 0
	}

	if len(orders) == 0 {
		return 0
	}

	r.logger.Info("reconciling stale payments", "count", len(orders))

	advanced := 0
	for _, order := range orders {
		if ctx.Err() != nil {
			return advanced
		}

		transition, err := r.syncer.SyncPaymentStatus(ctx, order)
		if err != nil {
			r.logger.Error("status reconciliation failed",
				"order_id", order.IncrementID,
				"payment_id", order.Payment.GatewayPaymentID,
				"category", application.CategorizeError(err),
				"error", err,
			)
			continue
		}

		if transition.Applied {
			advanced++
			r.logger.Info("reconciled payment status",
				"order_id", order.IncrementID,
				"from", transition.From,
				"to", transition.To,
				"action", transition.Action.String(),
			)
		}
	}

	return advanced
}
