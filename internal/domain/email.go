package domain

import "fmt"

type EmailKind string

const (
	EmailNewOrder    EmailKind = "new_order"
	EmailOrderUpdate EmailKind = "order_update"
	EmailInvoice     EmailKind = "invoice"
)

// Email is a customer notification queued by the order subsystem.
type Email struct {
	Kind             EmailKind
	OrderIncrementID string
	Recipient        string
	Subject          string
	Body             string
}

func NewOrderEmail(order *Order) Email {
	return Email{
		Kind:             EmailNewOrder,
		OrderIncrementID: order.IncrementID,
		Recipient:        order.Billing.Email,
		Subject:          fmt.Sprintf("%s: New Order #%s", order.StoreName, order.IncrementID),
		Body: fmt.Sprintf("Thank you for your order #%s. Total: %s %s.",
			order.IncrementID, order.GrandTotal.StringFixed(2), order.CurrencyCode),
	}
}

func OrderUpdateEmail(order *Order, comment string) Email {
	return Email{
		Kind:             EmailOrderUpdate,
		OrderIncrementID: order.IncrementID,
		Recipient:        order.Billing.Email,
		Subject:          fmt.Sprintf("%s: Order #%s update", order.StoreName, order.IncrementID),
		Body:             comment,
	}
}

func InvoiceEmail(order *Order, invoice *Invoice) Email {
	return Email{
		Kind:             EmailInvoice,
		OrderIncrementID: order.IncrementID,
		Recipient:        order.Billing.Email,
		Subject:          fmt.Sprintf("%s: Invoice #%s for Order #%s", order.StoreName, invoice.IncrementID, order.IncrementID),
		Body: fmt.Sprintf("Invoice #%s. Amount paid: %s %s.",
			invoice.IncrementID, invoice.Amount.StringFixed(2), order.CurrencyCode),
	}
}
