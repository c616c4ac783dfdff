package paynow

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/DanielPopoola/ficmart-paynow/internal/application"
	"github.com/DanielPopoola/ficmart-paynow/internal/config"
)

// RetryClient retries transient gateway failures. Authorize and refund calls
// carry idempotency keys, so repeating them is safe.
type RetryClient struct {
	inner      application.GatewayClient
	baseDelay  time.Duration
	maxRetries int
}

func NewRetryClient(inner application.GatewayClient, cfg config.RetryConfig) *RetryClient {
	maxRetries := int(cfg.MaxRetries)
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &RetryClient{
		inner:      inner,
		baseDelay:  cfg.BaseDelay,
		maxRetries: maxRetries,
	}
}

var _ application.GatewayClient = (*RetryClient)(nil)

func (r *RetryClient) Authorize(ctx context.Context, req application.AuthorizeRequest, idempotencyKey string) (*application.AuthorizeResponse, error) {
	return retry(r, ctx, func(ctx context.Context) (*application.AuthorizeResponse, error) {
		return r.inner.Authorize(ctx, req, idempotencyKey)
	})
}

func (r *RetryClient) GetPaymentMethods(ctx context.Context, currency string, amount int64) ([]application.PaymentMethod, error) {
	methods, err := retry(r, ctx, func(ctx context.Context) (*[]application.PaymentMethod, error) {
		m, err := r.inner.GetPaymentMethods(ctx, currency, amount)
		return &m, err
	})
	if err != nil {
		return nil, err
	}
	return *methods, nil
}

func (r *RetryClient) CreateRefund(ctx context.Context, paymentID, idempotencyKey string, amount int64) (*application.RefundResponse, error) {
	return retry(r, ctx, func(ctx context.Context) (*application.RefundResponse, error) {
		return r.inner.CreateRefund(ctx, paymentID, idempotencyKey, amount)
	})
}

func (r *RetryClient) GetPaymentStatus(ctx context.Context, paymentID string) (*application.PaymentStatusResponse, error) {
	return retry(r, ctx, func(ctx context.Context) (*application.PaymentStatusResponse, error) {
		return r.inner.GetPaymentStatus(ctx, paymentID)
	})
}

func (r *RetryClient) UpdateShopURLs(ctx context.Context, continueURL, notificationURL string) error {
	_, err := retry(r, ctx, func(ctx context.Context) (*struct{}, error) {
		return &struct{}{}, r.inner.UpdateShopURLs(ctx, continueURL, notificationURL)
	})
	return err
}

// VerifySignature is local and never retried.
func (r *RetryClient) VerifySignature(secret string, payload []byte, signature string) error {
	return r.inner.VerifySignature(secret, payload, signature)
}

// Generic retry helper
func retry[T any](r *RetryClient, ctx context.Context, operation func(ctx context.Context) (*T, error)) (*T, error) {
	var lastErr error

	for attempt := 0; attempt < r.maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		resp, err := operation(ctx)
		if err == nil {
			return resp, nil
		}

		lastErr = err

		if !isRetryable(err) {
			return nil, err
		}

		if attempt < r.maxRetries-1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(r.backoff(attempt)):
			}
		}
	}

	return nil, fmt.Errorf("maximum retries exceeded: %w", lastErr)
}

func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}

	if gwErr, ok := application.IsGatewayError(err); ok {
		return gwErr.IsRetryable()
	}

	// network and decoding failures
	return true
}

// Backoff calculation with exponential delay and jitter
func (r *RetryClient) backoff(attempt int) time.Duration {
	base := r.baseDelay * time.Duration(1<<attempt)

	var jitter time.Duration
	if r.baseDelay > 0 {
		jitter = time.Duration(rand.Int63n(int64(r.baseDelay)/2 + 1))
	}

	return base + jitter
}
