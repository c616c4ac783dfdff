package rest

import (
	"github.com/DanielPopoola/ficmart-paynow/internal/application"
	"github.com/DanielPopoola/ficmart-paynow/internal/application/services"
)

type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type Transaction struct {
	RedirectURL string `json:"redirect_url"`
	PaymentID   string `json:"payment_id"`
	Status      string `json:"status"`
}

type Links struct {
	RetryURL  string `json:"retry_url,omitempty"`
	CancelURL string `json:"cancel_url,omitempty"`
	FinishURL string `json:"finish_url,omitempty"`
}

type Refund struct {
	RefundID string `json:"refund_id"`
	Status   string `json:"status"`
	Amount   string `json:"amount"`
	Message  string `json:"message"`
}

type PaymentMethod struct {
	ID                int    `json:"id"`
	Type              string `json:"type"`
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	Image             string `json:"image,omitempty"`
	Status            string `json:"status"`
	AuthorizationType string `json:"authorization_type,omitempty"`
}

type PaymentMethods struct {
	Available      bool            `json:"available"`
	PaymentMethods []PaymentMethod `json:"payment_methods"`
}

func ToAPITransaction(r *services.TransactionResult) Transaction {
	return Transaction{
		RedirectURL: r.RedirectURL,
		PaymentID:   r.PaymentID,
		Status:      string(r.Status),
	}
}

func ToAPILinks(l *services.Links) Links {
	return Links{
		RetryURL:  l.RetryURL,
		CancelURL: l.CancelURL,
		FinishURL: l.FinishURL,
	}
}

func ToAPIRefund(r *services.RefundResult) Refund {
	return Refund{
		RefundID: r.RefundID,
		Status:   string(r.Status),
		Amount:   r.Amount.String(),
		Message:  r.Message,
	}
}

func ToAPIPaymentMethods(methods []application.PaymentMethod) PaymentMethods {
	out := PaymentMethods{
		Available:      len(methods) > 0,
		PaymentMethods: make([]PaymentMethod, 0, len(methods)),
	}
	for _, m := range methods {
		out.PaymentMethods = append(out.PaymentMethods, PaymentMethod{
			ID:                m.ID,
			Type:              m.Type,
			Name:              m.Name,
			Description:       m.Description,
			Image:             m.Image,
			Status:            m.Status,
			AuthorizationType: m.AuthorizationType,
		})
	}
	return out
}
