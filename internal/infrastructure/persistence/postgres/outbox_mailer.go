package postgres

import (
	"context"
	"fmt"

	"github.com/DanielPopoola/ficmart-paynow/internal/application"
	"github.com/DanielPopoola/ficmart-paynow/internal/domain"
	"github.com/google/uuid"
)

// OutboxMailer queues customer emails in the email_outbox table. Delivery is
// owned by the host shop.
type OutboxMailer struct {
	db *DB
}

func NewOutboxMailer(db *DB) *OutboxMailer {
	return &OutboxMailer{db: db}
}

var _ application.OrderMailer = (*OutboxMailer)(nil)

func (m *OutboxMailer) SendNewOrderEmail(ctx context.Context, order *domain.Order) error {
	return m.enqueue(ctx, domain.NewOrderEmail(order))
}

func (m *OutboxMailer) SendOrderUpdateEmail(ctx context.Context, order *domain.Order, comment string) error {
	return m.enqueue(ctx, domain.OrderUpdateEmail(order, comment))
}

func (m *OutboxMailer) SendInvoiceEmail(ctx context.Context, order *domain.Order, invoice *domain.Invoice) error {
	return m.enqueue(ctx, domain.InvoiceEmail(order, invoice))
}

// Pending returns queued emails of an order that were not delivered yet.
func (m *OutboxMailer) Pending(ctx context.Context, incrementID string) ([]domain.Email, error) {
	rows, err := m.db.Pool.Query(ctx, `
		SELECT kind, order_increment_id, recipient, subject, body
		FROM email_outbox
		WHERE order_increment_id = $1 AND sent_at IS NULL
		ORDER BY created_at
	`, incrementID)
	if err != nil {
		return nil, fmt.Errorf("query email outbox: %w", err)
	}
	defer rows.Close()

	var emails []domain.Email
	for rows.Next() {
		var e domain.Email
		var kind string
		if err := rows.Scan(&kind, &e.OrderIncrementID, &e.Recipient, &e.Subject, &e.Body); err != nil {
			return nil, fmt.Errorf("scan email outbox: %w", err)
		}
		e.Kind = domain.EmailKind(kind)
		emails = append(emails, e)
	}
	return emails, rows.Err()
}

func (m *OutboxMailer) enqueue(ctx context.Context, email domain.Email) error {
	_, err := m.db.Pool.Exec(ctx, `
		INSERT INTO email_outbox (id, kind, order_increment_id, recipient, subject, body)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, uuid.New().String(), string(email.Kind), email.OrderIncrementID, email.Recipient, email.Subject, email.Body)
	if err != nil {
		return fmt.Errorf("failed to queue %s email: %w", email.Kind, err)
	}
	return nil
}
