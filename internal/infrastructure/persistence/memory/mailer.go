package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/DanielPopoola/ficmart-paynow/internal/application"
	"github.com/DanielPopoola/ficmart-paynow/internal/domain"
)

// Mailer records outgoing customer emails instead of sending them.
type Mailer struct {
	mu     sync.Mutex
	emails []domain.Email

	// Err, when set, is returned by every send.
	Err error
}

func NewMailer() *Mailer {
	return &Mailer{}
}

var _ application.OrderMailer = (*Mailer)(nil)

func (m *Mailer) SendNewOrderEmail(_ context.Context, order *domain.Order) error {
	return m.record(domain.NewOrderEmail(order))
}

func (m *Mailer) SendOrderUpdateEmail(_ context.Context, order *domain.Order, comment string) error {
	return m.record(domain.OrderUpdateEmail(order, comment))
}

func (m *Mailer) SendInvoiceEmail(_ context.Context, order *domain.Order, invoice *domain.Invoice) error {
	return m.record(domain.InvoiceEmail(order, invoice))
}

func (m *Mailer) Emails() []domain.Email {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.emails)
}

func (m *Mailer) record(email domain.Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	m.emails = append(m.emails, email)
	return nil
}
