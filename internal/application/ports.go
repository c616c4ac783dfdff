package application

import (
	"context"
	"time"

	"github.com/DanielPopoola/ficmart-paynow/internal/domain"
	"github.com/shopspring/decimal"
)

// GatewayClient is the port for the paynow payment gateway.
type GatewayClient interface {
	Authorize(ctx context.Context, req AuthorizeRequest, idempotencyKey string) (*AuthorizeResponse, error)
	GetPaymentMethods(ctx context.Context, currency string, amount int64) ([]PaymentMethod, error)
	CreateRefund(ctx context.Context, paymentID, idempotencyKey string, amount int64) (*RefundResponse, error)
	GetPaymentStatus(ctx context.Context, paymentID string) (*PaymentStatusResponse, error)
	UpdateShopURLs(ctx context.Context, continueURL, notificationURL string) error
	VerifySignature(secret string, payload []byte, signature string) error
}

// OrderStore is the port for the host order subsystem.
type OrderStore interface {
	FindByIncrementID(ctx context.Context, incrementID string) (*domain.Order, error)

	// ClaimStalePayments returns the orders least recently changed or
	// claimed whose status is one of statuses, and records the claim.
	ClaimStalePayments(ctx context.Context, statuses []domain.GatewayStatus, olderThan time.Duration, limit int) ([]*domain.Order, error)

	// WithOrderLock loads the order and runs fn while holding the order
	// exclusively. Writes made through repo are committed only when fn
	// returns nil.
	WithOrderLock(ctx context.Context, incrementID string, fn func(ctx context.Context, order *domain.Order, repo OrderRepository) error) error
}

// OrderRepository mutates an order held by WithOrderLock.
type OrderRepository interface {
	SavePayment(ctx context.Context, order *domain.Order) error
	AddTransaction(ctx context.Context, order *domain.Order, txn domain.PaymentTransaction) error
	AddHistoryComment(ctx context.Context, order *domain.Order, comment domain.HistoryComment) error
	CancelOrder(ctx context.Context, order *domain.Order) error
	RegisterCapture(ctx context.Context, order *domain.Order, amount decimal.Decimal) (*domain.Invoice, error)
}

// OrderMailer sends customer emails on behalf of the order subsystem.
type OrderMailer interface {
	SendNewOrderEmail(ctx context.Context, order *domain.Order) error
	SendOrderUpdateEmail(ctx context.Context, order *domain.Order, comment string) error
	SendInvoiceEmail(ctx context.Context, order *domain.Order, invoice *domain.Invoice) error
}

// SecretProvider supplies the merchant signature key.
type SecretProvider interface {
	SignatureKey() string
}
