package services_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/DanielPopoola/ficmart-paynow/internal/application"
	"github.com/DanielPopoola/ficmart-paynow/internal/application/services"
	"github.com/DanielPopoola/ficmart-paynow/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// VALIDATE CUSTOMER REQUEST
// ============================================================================

func (suite *OrchestratorTestSuite) Test_ValidateCustomerRequest() {
	ctx := context.Background()
	t := suite.T()
	order := suite.createOrder()
	key := suite.currentKey(order.IncrementID)

	t.Run("missing input", func(t *testing.T) {
		_, err := suite.service.ValidateCustomerRequest(ctx, "", key)
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeValidation))
		assert.Equal(t, "Security key or order id not provided", err.Error())

		_, err = suite.service.ValidateCustomerRequest(ctx, order.IncrementID, "")
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeValidation))
	})

	t.Run("unknown order", func(t *testing.T) {
		_, err := suite.service.ValidateCustomerRequest(ctx, "999999999", key)
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeOrderNotFound))
	})

	t.Run("key mismatch", func(t *testing.T) {
		_, err := suite.service.ValidateCustomerRequest(ctx, order.IncrementID, "deadbeef")
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeAuthorization))
		assert.Equal(t, "Security key does not match order", err.Error())
	})

	t.Run("valid key", func(t *testing.T) {
		got, err := suite.service.ValidateCustomerRequest(ctx, order.IncrementID, key)
		require.NoError(t, err)
		assert.Equal(t, order.IncrementID, got.IncrementID)
	})
}

// ============================================================================
// RETRY
// ============================================================================

func (suite *OrchestratorTestSuite) Test_Retry_AfterRejection() {
	ctx := context.Background()
	t := suite.T()
	order := suite.createOrder()
	suite.registerTransaction(order, "p1")
	suite.applyStatus(order, "p1", domain.StatusRejected)

	key := suite.currentKey(order.IncrementID)

	suite.mockGateway.EXPECT().
		Authorize(mock.Anything, mock.Anything, key).
		Return(&application.AuthorizeResponse{
			RedirectURL: "https://paywall.example/p2",
			PaymentID:   "p2",
			Status:      domain.StatusNew,
		}, nil).
		Once()

	result, err := suite.service.Retry(ctx, order.IncrementID, key)

	require.NoError(t, err)
	assert.Equal(t, "https://paywall.example/p2", result.RedirectURL)

	stored := suite.reload(order.IncrementID)
	assert.Equal(t, "p2", stored.Payment.GatewayPaymentID)
	assert.Equal(t, domain.StatusNew, stored.Payment.GatewayStatus)

	// retries do not resend the new order email
	for _, email := range suite.mailer.Emails()[1:] {
		assert.NotEqual(t, domain.EmailNewOrder, email.Kind)
	}

	// the link that was just used no longer matches
	_, err = suite.service.Retry(ctx, order.IncrementID, key)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeAuthorization))
}

func (suite *OrchestratorTestSuite) Test_Retry_NotEligible() {
	ctx := context.Background()
	t := suite.T()
	order := suite.createOrder()
	suite.registerTransaction(order, "p1")

	_, err := suite.service.Retry(ctx, order.IncrementID, suite.currentKey(order.IncrementID))

	require.Error(t, err)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeAuthorization))
	assert.Equal(t, "New transaction cannot be created", err.Error())
	assert.Equal(t, "p1", suite.reload(order.IncrementID).Payment.GatewayPaymentID)
}

func (suite *OrchestratorTestSuite) Test_Retry_GatewayFailure() {
	ctx := context.Background()
	t := suite.T()
	order := suite.createOrder()
	suite.registerTransaction(order, "p1")
	suite.applyStatus(order, "p1", domain.StatusError)
	key := suite.currentKey(order.IncrementID)

	suite.mockGateway.EXPECT().
		Authorize(mock.Anything, mock.Anything, key).
		Return(nil, &application.GatewayError{StatusCode: 503}).
		Once()

	_, err := suite.service.Retry(ctx, order.IncrementID, key)

	_, ok := application.IsGatewayError(err)
	assert.True(t, ok)

	stored := suite.reload(order.IncrementID)
	assert.Equal(t, domain.StatusError, stored.Payment.GatewayStatus)
	assert.Equal(t, key, suite.currentKey(order.IncrementID))
}

// ============================================================================
// CANCEL
// ============================================================================

func (suite *OrchestratorTestSuite) Test_Cancel_AfterError() {
	ctx := context.Background()
	t := suite.T()
	order := suite.createOrder()
	suite.registerTransaction(order, "p1")
	suite.applyStatus(order, "p1", domain.StatusError)
	key := suite.currentKey(order.IncrementID)

	require.NoError(t, suite.service.Cancel(ctx, order.IncrementID, key))

	stored := suite.reload(order.IncrementID)
	assert.True(t, stored.IsCanceled())
	assert.Equal(t, domain.StatusError, stored.Payment.GatewayStatus)

	txns := suite.store.Transactions(order.IncrementID)
	last := txns[len(txns)-1]
	assert.Equal(t, "The transaction has been canceled by user.", last.Comment)
	assert.Equal(t, "p1", last.TransactionID)
	assert.True(t, last.Closed)

	emails := suite.mailer.Emails()
	assert.Equal(t, "The transaction has been canceled by user.", emails[len(emails)-1].Body)

	// a canceled order offers neither retry nor cancel
	newKey := suite.currentKey(order.IncrementID)
	_, err := suite.service.Retry(ctx, order.IncrementID, newKey)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeAuthorization))
	assert.True(t, domain.IsErrorCode(suite.service.Cancel(ctx, order.IncrementID, newKey), domain.ErrCodeAuthorization))
}

func (suite *OrchestratorTestSuite) Test_Cancel_NotEligible() {
	ctx := context.Background()
	t := suite.T()
	order := suite.createOrder()
	suite.registerTransaction(order, "p1")
	suite.applyStatus(order, "p1", domain.StatusPending)

	err := suite.service.Cancel(ctx, order.IncrementID, suite.currentKey(order.IncrementID))

	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeAuthorization))
	assert.False(t, suite.reload(order.IncrementID).IsCanceled())
}

func (suite *OrchestratorTestSuite) Test_Cancel_WrongKey() {
	order := suite.createOrder()
	suite.registerTransaction(order, "p1")
	suite.applyStatus(order, "p1", domain.StatusRejected)

	err := suite.service.Cancel(context.Background(), order.IncrementID, "not-the-key")

	assert.True(suite.T(), domain.IsErrorCode(err, domain.ErrCodeAuthorization))
	assert.False(suite.T(), suite.reload(order.IncrementID).IsCanceled())
}

// ============================================================================
// LINKS AND COMPLETION
// ============================================================================

func (suite *OrchestratorTestSuite) Test_CustomerLinks() {
	ctx := context.Background()
	t := suite.T()
	order := suite.createOrder()
	suite.registerTransaction(order, "p1")

	links, err := suite.service.CustomerLinks(ctx, order.IncrementID)
	require.NoError(t, err)
	assert.Empty(t, links.RetryURL)
	assert.Empty(t, links.CancelURL)
	assert.Equal(t, "https://paywall.example/p1", links.FinishURL)

	suite.applyStatus(order, "p1", domain.StatusRejected)

	links, err = suite.service.CustomerLinks(ctx, order.IncrementID)
	require.NoError(t, err)
	assert.Empty(t, links.FinishURL)

	retry, err := url.Parse(links.RetryURL)
	require.NoError(t, err)
	assert.Equal(t, "/paynow/retry", retry.Path)
	assert.Equal(t, order.IncrementID, retry.Query().Get("order_id"))
	assert.Equal(t, suite.currentKey(order.IncrementID), retry.Query().Get("key"))

	cancel, err := url.Parse(links.CancelURL)
	require.NoError(t, err)
	assert.Equal(t, "/paynow/cancel", cancel.Path)
	assert.Equal(t, retry.Query(), cancel.Query())
}

func (suite *OrchestratorTestSuite) Test_CustomerLinks_NothingDue() {
	ctx := context.Background()
	t := suite.T()
	order := suite.createOrder(func(o *domain.Order) {
		o.TotalDue = decimal.Zero
	})
	suite.registerTransaction(order, "p1")
	suite.applyStatus(order, "p1", domain.StatusRejected)

	links, err := suite.service.CustomerLinks(ctx, order.IncrementID)

	require.NoError(t, err)
	assert.Equal(t, &services.Links{}, links)
}

func (suite *OrchestratorTestSuite) Test_CompletionTarget() {
	t := suite.T()
	for status, success := range map[string]bool{
		"PENDING":   true,
		"CONFIRMED": true,
		"NEW":       false,
		"ERROR":     false,
		"REJECTED":  false,
		"EXPIRED":   false,
		"":          false,
		"bogus":     false,
	} {
		assert.Equal(t, success, suite.service.CompletionTarget(status), status)
	}
}
