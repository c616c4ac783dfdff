package paynow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/DanielPopoola/ficmart-paynow/internal/application"
	"github.com/DanielPopoola/ficmart-paynow/internal/config"
)

const userAgent = "ficmart-paynow/1.0"

type HTTPClient struct {
	baseURL      string
	apiKey       string
	signatureKey string
	httpClient   *http.Client
}

func NewClient(cfg config.GatewayConfig) *HTTPClient {
	return &HTTPClient{
		baseURL:      cfg.Host(),
		apiKey:       cfg.ActiveAPIKey(),
		signatureKey: cfg.SignatureKey(),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

var _ application.GatewayClient = (*HTTPClient)(nil)

func (c *HTTPClient) Authorize(ctx context.Context, req application.AuthorizeRequest, idempotencyKey string) (*application.AuthorizeResponse, error) {
	endpoint := fmt.Sprintf("%s/v1/payments", c.baseURL)
	return sendRequest[application.AuthorizeRequest, application.AuthorizeResponse](c, ctx, http.MethodPost, endpoint, &req, idempotencyKey)
}

func (c *HTTPClient) GetPaymentMethods(ctx context.Context, currency string, amount int64) ([]application.PaymentMethod, error) {
	query := url.Values{}
	if currency != "" {
		query.Set("currency", currency)
	}
	if amount > 0 {
		query.Set("amount", strconv.FormatInt(amount, 10))
	}

	endpoint := fmt.Sprintf("%s/v1/payments/paymentmethods", c.baseURL)
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	groups, err := sendRequest[any, []paymentMethodGroup](c, ctx, http.MethodGet, endpoint, nil, "")
	if err != nil {
		return nil, err
	}

	var methods []application.PaymentMethod
	for _, group := range *groups {
		for _, m := range group.PaymentMethods {
			m.Type = group.Type
			methods = append(methods, m)
		}
	}
	return methods, nil
}

func (c *HTTPClient) CreateRefund(ctx context.Context, paymentID, idempotencyKey string, amount int64) (*application.RefundResponse, error) {
	endpoint := fmt.Sprintf("%s/v1/payments/%s/refunds", c.baseURL, url.PathEscape(paymentID))
	req := refundRequest{Amount: amount}
	return sendRequest[refundRequest, application.RefundResponse](c, ctx, http.MethodPost, endpoint, &req, idempotencyKey)
}

func (c *HTTPClient) GetPaymentStatus(ctx context.Context, paymentID string) (*application.PaymentStatusResponse, error) {
	endpoint := fmt.Sprintf("%s/v1/payments/%s/status", c.baseURL, url.PathEscape(paymentID))
	return sendRequest[any, application.PaymentStatusResponse](c, ctx, http.MethodGet, endpoint, nil, "")
}

func (c *HTTPClient) UpdateShopURLs(ctx context.Context, continueURL, notificationURL string) error {
	endpoint := fmt.Sprintf("%s/v1/configuration/shop/urls", c.baseURL)
	req := shopURLsRequest{ContinueURL: continueURL, NotificationURL: notificationURL}
	_, err := sendRequest[shopURLsRequest, struct{}](c, ctx, http.MethodPatch, endpoint, &req, "")
	return err
}

// VerifySignature checks a notification against the merchant signature key.
func (c *HTTPClient) VerifySignature(secret string, payload []byte, signature string) error {
	return VerifySignature(secret, payload, signature)
}

func sendRequest[Req any, Resp any](c *HTTPClient, ctx context.Context, method, endpoint string, reqBody *Req, idempotencyKey string) (*Resp, error) {
	var bodyReader io.Reader
	var jsonData []byte
	if reqBody != nil {
		var err error
		jsonData, err = json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("error marshalling json: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	httpReq.Header.Set("Api-Key", c.apiKey)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", userAgent)

	if reqBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("Signature", CalculateSignature(c.signatureKey, jsonData))
	}

	if idempotencyKey != "" {
		httpReq.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		var errResp errorResponse
		if err := json.Unmarshal(body, &errResp); err != nil || len(errResp.Errors) == 0 {
			return nil, &application.GatewayError{
				StatusCode: resp.StatusCode,
				Message:    string(body),
			}
		}
		return nil, &application.GatewayError{
			StatusCode: resp.StatusCode,
			Errors:     errResp.Errors,
		}
	}

	var out Resp
	if resp.StatusCode == http.StatusNoContent {
		return &out, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		if errors.Is(err, io.EOF) {
			return &out, nil
		}
		return nil, fmt.Errorf("error decoding json response: %w", err)
	}

	return &out, nil
}
