package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DanielPopoola/ficmart-paynow/internal/application"
	"github.com/DanielPopoola/ficmart-paynow/internal/domain"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `
	entity_id, increment_id, quote_id, store_id, store_name, locale, state, currency_code,
	grand_total, total_due, total_paid,
	billing_email, billing_first_name, billing_last_name, billing_telephone,
	gateway_payment_id, gateway_status, redirect_url, refund_id, selected_method_id, transaction_count,
	created_at, updated_at`

// OrderStore reads orders and serializes mutations on the order row lock.
type OrderStore struct {
	db *DB
}

func NewOrderStore(db *DB) *OrderStore {
	return &OrderStore{db: db}
}

var _ application.OrderStore = (*OrderStore)(nil)

// CreateOrder inserts an order placed by the host shop together with its items.
func (s *OrderStore) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	query := `
		INSERT INTO orders (
			increment_id, quote_id, store_id, store_name, locale, state, currency_code,
			grand_total, total_due, total_paid,
			billing_email, billing_first_name, billing_last_name, billing_telephone
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING entity_id, created_at, updated_at
	`

	state := order.State
	if state == "" {
		state = domain.OrderStatePendingPayment
	}

	err = tx.QueryRow(ctx, query,
		order.IncrementID,
		order.QuoteID,
		order.StoreID,
		order.StoreName,
		order.Locale,
		string(state),
		order.CurrencyCode,
		toNumeric(order.GrandTotal),
		toNumeric(order.TotalDue),
		toNumeric(order.TotalPaid),
		order.Billing.Email,
		order.Billing.FirstName,
		order.Billing.LastName,
		order.Billing.Telephone,
	).Scan(&order.EntityID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("order #%s already exists: %w", order.IncrementID, err)
		}
		return fmt.Errorf("failed to create order: %w", err)
	}
	order.State = state

	for i, item := range order.Items {
		_, err := tx.Exec(ctx, `
			INSERT INTO order_items (order_id, position, name, categories, qty_ordered, price_incl_tax)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, order.EntityID, i, item.Name, item.Categories, toNumeric(item.QtyOrdered), toNumeric(item.PriceInclTax))
		if err != nil {
			return fmt.Errorf("failed to create order item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// FindByIncrementID retrieves an order by its customer facing number
func (s *OrderStore) FindByIncrementID(ctx context.Context, incrementID string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE increment_id = $1`
	return findOrder(ctx, s.db.Pool, query, incrementID)
}

// ClaimStalePayments returns up to limit orders whose gateway status is one
// of statuses and that have neither changed nor been claimed within
// olderThan. Claimed orders are stamped so the next batch moves on to the
// orders behind them.
func (s *OrderStore) ClaimStalePayments(ctx context.Context, statuses []domain.GatewayStatus, olderThan time.Duration, limit int) ([]*domain.Order, error) {
	query := `
		WITH claimed AS (
			SELECT entity_id
			FROM orders
			WHERE gateway_payment_id <> ''
			  AND gateway_status = ANY($1)
			  AND updated_at < $2
			  AND (status_checked_at IS NULL OR status_checked_at < $2)
			ORDER BY GREATEST(updated_at, status_checked_at) ASC
			LIMIT $3
			FOR UPDATE SKIP LOCKED
		)
		UPDATE orders
		SET status_checked_at = $4
		WHERE entity_id IN (SELECT entity_id FROM claimed)
		RETURNING ` + orderColumns + `
	`

	names := make([]string, len(statuses))
	for i, st := range statuses {
		names[i] = string(st)
	}

	now := time.Now()
	rows, err := s.db.Pool.Query(ctx, query, names, now.Add(-olderThan), limit, now)
	if err != nil {
		return nil, fmt.Errorf("claim stale payments: %w", err)
	}
	models, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (OrderModel, error) {
		return scanOrder(row)
	})
	if err != nil {
		return nil, fmt.Errorf("error occurred while scanning rows: %w", err)
	}

	orders := make([]*domain.Order, 0, len(models))
	for _, m := range models {
		items, err := findItems(ctx, s.db.Pool, m.EntityID)
		if err != nil {
			return nil, err
		}
		orders = append(orders, toDomainModel(m, items))
	}
	return orders, nil
}

func findOrder(ctx context.Context, q Executor, query string, incrementID string) (*domain.Order, error) {
	m, err := scanOrder(q.QueryRow(ctx, query, incrementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewOrderNotFoundError(incrementID)
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	items, err := findItems(ctx, q, m.EntityID)
	if err != nil {
		return nil, err
	}
	return toDomainModel(m, items), nil
}

func findItems(ctx context.Context, q Executor, entityID int64) ([]OrderItemModel, error) {
	rows, err := q.Query(ctx, `
		SELECT name, categories, qty_ordered, price_incl_tax
		FROM order_items WHERE order_id = $1
		ORDER BY position
	`, entityID)
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (OrderItemModel, error) {
		var m OrderItemModel
		err := row.Scan(&m.Name, &m.Categories, &m.QtyOrdered, &m.PriceInclTax)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("error occurred while scanning order items: %w", err)
	}
	return items, nil
}

func scanOrder(row pgx.Row) (OrderModel, error) {
	var m OrderModel
	err := row.Scan(
		&m.EntityID, &m.IncrementID, &m.QuoteID, &m.StoreID, &m.StoreName, &m.Locale, &m.State, &m.CurrencyCode,
		&m.GrandTotal, &m.TotalDue, &m.TotalPaid,
		&m.BillingEmail, &m.BillingFirstName, &m.BillingLastName, &m.BillingTelephone,
		&m.GatewayPaymentID, &m.GatewayStatus, &m.RedirectURL, &m.RefundID, &m.SelectedMethodID, &m.TransactionCount,
		&m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}
