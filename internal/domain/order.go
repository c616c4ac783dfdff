package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderState is the host order lifecycle state.
type OrderState string

const (
	OrderStatePendingPayment OrderState = "pending_payment"
	OrderStateProcessing     OrderState = "processing"
	OrderStateCanceled       OrderState = "canceled"
)

type Order struct {
	EntityID    int64
	IncrementID string
	QuoteID     int64
	StoreID     int64
	StoreName   string
	Locale      string

	State        OrderState
	CurrencyCode string
	GrandTotal   decimal.Decimal
	TotalDue     decimal.Decimal
	TotalPaid    decimal.Decimal

	Billing Address
	Items   []OrderItem
	Payment PaymentRecord

	// TransactionCount is the number of payment transactions recorded for
	// the order. It only grows.
	TransactionCount int

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Address struct {
	Email     string
	FirstName string
	LastName  string
	Telephone string
}

type OrderItem struct {
	Name         string
	Categories   []string
	QtyOrdered   decimal.Decimal
	PriceInclTax decimal.Decimal
}

// PaymentRecord is the paynow state kept on the order payment.
type PaymentRecord struct {
	GatewayPaymentID string
	GatewayStatus    GatewayStatus
	RedirectURL      string
	RefundID         string
	SelectedMethodID int
}

// PaymentTransaction is one entry of the order payment transaction log.
type PaymentTransaction struct {
	ID            string
	TransactionID string
	Comment       string
	Approved      bool
	Closed        bool
	CreatedAt     time.Time
}

type HistoryComment struct {
	ID               string
	Comment          string
	CustomerNotified bool
	CreatedAt        time.Time
}

type Invoice struct {
	ID          string
	IncrementID string
	Amount      decimal.Decimal
	CreatedAt   time.Time
}

func (o *Order) IsCanceled() bool {
	return o.State == OrderStateCanceled
}

// HasTransaction reports whether a gateway transaction was created for the order.
func (o *Order) HasTransaction() bool {
	return o.Payment.GatewayPaymentID != ""
}

var hundred = decimal.NewFromInt(100)

// ToMinorUnits converts an amount to integer cents, rounding half away from zero.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}
