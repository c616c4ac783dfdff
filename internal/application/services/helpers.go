package services

import (
	"fmt"
	"strings"

	"github.com/DanielPopoola/ficmart-paynow/internal/application"
	"github.com/DanielPopoola/ficmart-paynow/internal/domain"
)

const phoneNumberDigits = 9

func (s *PaymentOrchestrator) buildAuthorizeRequest(order *domain.Order) application.AuthorizeRequest {
	req := application.AuthorizeRequest{
		Amount:      domain.ToMinorUnits(order.GrandTotal),
		Currency:    order.CurrencyCode,
		ExternalID:  order.IncrementID,
		Description: orderDescription(order),
		ContinueURL: s.opts.ContinueURL,
		Buyer: application.Buyer{
			Email:     order.Billing.Email,
			FirstName: order.Billing.FirstName,
			LastName:  order.Billing.LastName,
			Locale:    strings.ReplaceAll(order.Locale, "_", "-"),
			Phone:     splitPhone(order.Billing.Telephone),
		},
		ValidityTime:    s.opts.ValiditySeconds,
		PaymentMethodID: order.Payment.SelectedMethodID,
	}

	if s.opts.SendCart {
		req.OrderItems = cartItems(order.Items)
	}

	return req
}

func orderDescription(order *domain.Order) string {
	storeName := strings.ReplaceAll(order.StoreName, "\r\n", "\n")
	storeName = strings.ReplaceAll(storeName, "\n", " / ")
	return fmt.Sprintf("Order #%s from %s", order.IncrementID, storeName)
}

// splitPhone returns the buyer phone when the telephone is a 2-5 character
// country prefix followed by a 9 digit number. Anything else is dropped.
func splitPhone(telephone string) *application.Phone {
	phone := strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, telephone)

	if len(phone) <= phoneNumberDigits {
		return nil
	}

	prefix := phone[:len(phone)-phoneNumberDigits]
	number := phone[len(phone)-phoneNumberDigits:]

	if len(prefix) < 2 || len(prefix) > 5 || !isDigits(strings.TrimPrefix(prefix, "+")) {
		return nil
	}
	if !isDigits(number) {
		return nil
	}
	if !strings.HasPrefix(prefix, "+") {
		prefix = "+" + prefix
	}

	return &application.Phone{Prefix: prefix, Number: number}
}

func cartItems(items []domain.OrderItem) []application.OrderItem {
	out := make([]application.OrderItem, 0, len(items))
	for _, item := range items {
		out = append(out, application.OrderItem{
			Name:     item.Name,
			Category: strings.Join(item.Categories, " / "),
			Quantity: item.QtyOrdered.Ceil().IntPart(),
			Price:    domain.ToMinorUnits(item.PriceInclTax),
		})
	}
	return out
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
