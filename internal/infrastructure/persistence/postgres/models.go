package postgres

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// OrderModel is one row of the orders table.
type OrderModel struct {
	EntityID     int64
	IncrementID  string
	QuoteID      int64
	StoreID      int64
	StoreName    string
	Locale       string
	State        string
	CurrencyCode string
	GrandTotal   pgtype.Numeric
	TotalDue     pgtype.Numeric
	TotalPaid    pgtype.Numeric

	BillingEmail     string
	BillingFirstName string
	BillingLastName  string
	BillingTelephone string

	GatewayPaymentID string
	GatewayStatus    string
	RedirectURL      string
	RefundID         string
	SelectedMethodID int
	TransactionCount int

	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderItemModel struct {
	Name         string
	Categories   []string
	QtyOrdered   pgtype.Numeric
	PriceInclTax pgtype.Numeric
}
