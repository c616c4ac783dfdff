package testhelpers

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/DanielPopoola/ficmart-paynow/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// TestSecret is the signature key used across service tests.
const TestSecret = "test-signature-key"

// OrderCreator is implemented by the memory and postgres order stores.
type OrderCreator interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
}

var incrementSeq atomic.Int64

// NextIncrementID returns a fresh order number.
func NextIncrementID() string {
	return fmt.Sprintf("1%08d", incrementSeq.Add(1))
}

// DefaultOrder returns a pending order with two cart items and a Polish phone number.
func DefaultOrder() *domain.Order {
	return &domain.Order{
		IncrementID:  NextIncrementID(),
		QuoteID:      42,
		StoreID:      1,
		StoreName:    "Main Website\nDefault Store",
		Locale:       "pl_PL",
		State:        domain.OrderStatePendingPayment,
		CurrencyCode: "PLN",
		GrandTotal:   decimal.RequireFromString("123.45"),
		TotalDue:     decimal.RequireFromString("123.45"),
		TotalPaid:    decimal.Zero,
		Billing: domain.Address{
			Email:     "jan.kowalski@example.com",
			FirstName: "Jan",
			LastName:  "Kowalski",
			Telephone: "+48 123 456 789",
		},
		Items: []domain.OrderItem{
			{
				Name:         "Coffee mug",
				Categories:   []string{"Home", "Kitchen"},
				QtyOrdered:   decimal.NewFromInt(2),
				PriceInclTax: decimal.RequireFromString("19.99"),
			},
			{
				Name:         "Coffee beans",
				Categories:   []string{"Food"},
				QtyOrdered:   decimal.RequireFromString("1.5"),
				PriceInclTax: decimal.RequireFromString("55.345"),
			},
		},
	}
}

// CreateOrder stores a DefaultOrder after applying the given modifiers.
func CreateOrder(t *testing.T, ctx context.Context, store OrderCreator, modify ...func(o *domain.Order)) *domain.Order {
	t.Helper()

	order := DefaultOrder()
	for _, fn := range modify {
		fn(order)
	}

	require.NoError(t, store.CreateOrder(ctx, order))
	require.NotZero(t, order.EntityID)
	return order
}
