package postgres

import (
	"github.com/DanielPopoola/ficmart-paynow/internal/domain"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// toDomainModel maps an order row and its items to the domain order.
func toDomainModel(m OrderModel, items []OrderItemModel) *domain.Order {
	order := &domain.Order{
		EntityID:     m.EntityID,
		IncrementID:  m.IncrementID,
		QuoteID:      m.QuoteID,
		StoreID:      m.StoreID,
		StoreName:    m.StoreName,
		Locale:       m.Locale,
		State:        domain.OrderState(m.State),
		CurrencyCode: m.CurrencyCode,
		GrandTotal:   fromNumeric(m.GrandTotal),
		TotalDue:     fromNumeric(m.TotalDue),
		TotalPaid:    fromNumeric(m.TotalPaid),
		Billing: domain.Address{
			Email:     m.BillingEmail,
			FirstName: m.BillingFirstName,
			LastName:  m.BillingLastName,
			Telephone: m.BillingTelephone,
		},
		Payment: domain.PaymentRecord{
			GatewayPaymentID: m.GatewayPaymentID,
			GatewayStatus:    domain.GatewayStatus(m.GatewayStatus),
			RedirectURL:      m.RedirectURL,
			RefundID:         m.RefundID,
			SelectedMethodID: m.SelectedMethodID,
		},
		TransactionCount: m.TransactionCount,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}

	order.Items = make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		order.Items = append(order.Items, domain.OrderItem{
			Name:         item.Name,
			Categories:   item.Categories,
			QtyOrdered:   fromNumeric(item.QtyOrdered),
			PriceInclTax: fromNumeric(item.PriceInclTax),
		})
	}

	return order
}

func toNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

func fromNumeric(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}
