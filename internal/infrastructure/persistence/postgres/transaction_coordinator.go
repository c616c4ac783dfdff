package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/DanielPopoola/ficmart-paynow/internal/application"
	"github.com/DanielPopoola/ficmart-paynow/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// WithOrderLock executes fn within a database transaction holding the order
// row lock. The repository handed to fn writes through the same transaction.
func (s *OrderStore) WithOrderLock(
	ctx context.Context,
	incrementID string,
	fn func(ctx context.Context, order *domain.Order, repo application.OrderRepository) error,
) error {
	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	query := `SELECT ` + orderColumns + ` FROM orders WHERE increment_id = $1 FOR UPDATE`
	order, err := findOrder(ctx, tx, query, incrementID)
	if err != nil {
		return err
	}

	if err := fn(ctx, order, &orderRepository{q: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// orderRepository writes order changes inside a locked transaction.
type orderRepository struct {
	q pgx.Tx
}

func (r *orderRepository) SavePayment(ctx context.Context, order *domain.Order) error {
	query := `
		UPDATE orders
		SET gateway_payment_id = $1,
		    gateway_status = $2,
		    redirect_url = $3,
		    refund_id = $4,
		    selected_method_id = $5,
		    updated_at = NOW()
		WHERE entity_id = $6
	`

	p := order.Payment
	_, err := r.q.Exec(ctx, query,
		p.GatewayPaymentID,
		string(p.GatewayStatus),
		p.RedirectURL,
		p.RefundID,
		p.SelectedMethodID,
		order.EntityID,
	)
	if err != nil {
		return fmt.Errorf("failed to save payment: %w", err)
	}
	return nil
}

func (r *orderRepository) AddTransaction(ctx context.Context, order *domain.Order, txn domain.PaymentTransaction) error {
	if txn.ID == "" {
		txn.ID = uuid.New().String()
	}
	if txn.CreatedAt.IsZero() {
		txn.CreatedAt = time.Now()
	}

	_, err := r.q.Exec(ctx, `
		INSERT INTO payment_transactions (id, order_id, transaction_id, comment, approved, closed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, txn.ID, order.EntityID, txn.TransactionID, txn.Comment, txn.Approved, txn.Closed, txn.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to add payment transaction: %w", err)
	}

	err = r.q.QueryRow(ctx, `
		UPDATE orders SET transaction_count = transaction_count + 1, updated_at = NOW()
		WHERE entity_id = $1
		RETURNING transaction_count
	`, order.EntityID).Scan(&order.TransactionCount)
	if err != nil {
		return fmt.Errorf("failed to bump transaction count: %w", err)
	}
	return nil
}

func (r *orderRepository) AddHistoryComment(ctx context.Context, order *domain.Order, comment domain.HistoryComment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}

	_, err := r.q.Exec(ctx, `
		INSERT INTO order_history (id, order_id, comment, customer_notified, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, comment.ID, order.EntityID, comment.Comment, comment.CustomerNotified, comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to add history comment: %w", err)
	}
	return nil
}

func (r *orderRepository) CancelOrder(ctx context.Context, order *domain.Order) error {
	if order.IsCanceled() {
		return nil
	}

	_, err := r.q.Exec(ctx, `
		UPDATE orders SET state = $1, total_due = 0, updated_at = NOW()
		WHERE entity_id = $2
	`, string(domain.OrderStateCanceled), order.EntityID)
	if err != nil {
		return fmt.Errorf("failed to cancel order: %w", err)
	}

	order.State = domain.OrderStateCanceled
	order.TotalDue = decimal.Zero
	return nil
}

// RegisterCapture books a payment of amount against the order. An invoice is
// produced when something was still due.
func (r *orderRepository) RegisterCapture(ctx context.Context, order *domain.Order, amount decimal.Decimal) (*domain.Invoice, error) {
	if !amount.IsPositive() || !order.TotalDue.IsPositive() {
		return nil, nil
	}
	if amount.GreaterThan(order.TotalDue) {
		amount = order.TotalDue
	}

	var count int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM invoices WHERE order_id = $1`, order.EntityID).Scan(&count); err != nil {
		return nil, fmt.Errorf("failed to count invoices: %w", err)
	}

	invoice := &domain.Invoice{
		ID:          uuid.New().String(),
		IncrementID: fmt.Sprintf("%s-%d", order.IncrementID, count+1),
		Amount:      amount,
		CreatedAt:   time.Now(),
	}

	_, err := r.q.Exec(ctx, `
		INSERT INTO invoices (id, order_id, increment_id, amount, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, invoice.ID, order.EntityID, invoice.IncrementID, toNumeric(amount), invoice.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	totalPaid := order.TotalPaid.Add(amount)
	totalDue := order.TotalDue.Sub(amount)

	_, err = r.q.Exec(ctx, `
		UPDATE orders SET total_paid = $1, total_due = $2, state = $3, updated_at = NOW()
		WHERE entity_id = $4
	`, toNumeric(totalPaid), toNumeric(totalDue), string(domain.OrderStateProcessing), order.EntityID)
	if err != nil {
		return nil, fmt.Errorf("failed to register capture: %w", err)
	}

	order.TotalPaid = totalPaid
	order.TotalDue = totalDue
	order.State = domain.OrderStateProcessing
	return invoice, nil
}
