package application

import "github.com/DanielPopoola/ficmart-paynow/internal/domain"

type AuthorizeRequest struct {
	Amount          int64       `json:"amount"`
	Currency        string      `json:"currency"`
	ExternalID      string      `json:"externalId"`
	Description     string      `json:"description"`
	ContinueURL     string      `json:"continueUrl,omitempty"`
	Buyer           Buyer       `json:"buyer"`
	ValidityTime    int         `json:"validityTime,omitempty"`
	OrderItems      []OrderItem `json:"orderItems,omitempty"`
	PaymentMethodID int         `json:"paymentMethodId,omitempty"`
}

type Buyer struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     *Phone `json:"phone,omitempty"`
	Locale    string `json:"locale,omitempty"`
}

type Phone struct {
	Prefix string `json:"prefix"`
	Number string `json:"number"`
}

type OrderItem struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity int64  `json:"quantity"`
	Price    int64  `json:"price"`
}

type AuthorizeResponse struct {
	RedirectURL string               `json:"redirectUrl"`
	PaymentID   string               `json:"paymentId"`
	Status      domain.GatewayStatus `json:"status"`
}

type PaymentMethod struct {
	ID                int    `json:"id"`
	Type              string `json:"type"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	Image             string `json:"image"`
	Status            string `json:"status"`
	AuthorizationType string `json:"authorizationType,omitempty"`
}

type RefundResponse struct {
	RefundID string              `json:"refundId"`
	Status   domain.RefundStatus `json:"status"`
}

type PaymentStatusResponse struct {
	PaymentID string               `json:"paymentId"`
	Status    domain.GatewayStatus `json:"status"`
}
