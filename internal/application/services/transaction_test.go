package services_test

import (
	"context"
	"errors"

	"github.com/DanielPopoola/ficmart-paynow/internal/application"
	"github.com/DanielPopoola/ficmart-paynow/internal/application/services/testhelpers"
	"github.com/DanielPopoola/ficmart-paynow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// CREATE TRANSACTION
// ============================================================================

func (suite *OrchestratorTestSuite) Test_CreateTransaction_Success() {
	ctx := context.Background()
	t := suite.T()
	order := suite.createOrder()
	expectedKey := domain.OrderIdempotencyKey(order, testhelpers.TestSecret)

	suite.mockGateway.EXPECT().
		Authorize(mock.Anything, mock.Anything, expectedKey).
		Run(func(_ context.Context, req application.AuthorizeRequest, _ string) {
			assert.Equal(t, int64(12345), req.Amount)
			assert.Equal(t, "PLN", req.Currency)
			assert.Equal(t, order.IncrementID, req.ExternalID)
			assert.Equal(t, "Order #"+order.IncrementID+" from Main Website / Default Store", req.Description)
			assert.Equal(t, "https://shop.example/paynow/complete", req.ContinueURL)
			assert.Equal(t, 600, req.ValidityTime)
			assert.Zero(t, req.PaymentMethodID)

			assert.Equal(t, "jan.kowalski@example.com", req.Buyer.Email)
			assert.Equal(t, "Jan", req.Buyer.FirstName)
			assert.Equal(t, "Kowalski", req.Buyer.LastName)
			assert.Equal(t, "pl-PL", req.Buyer.Locale)
			require.NotNil(t, req.Buyer.Phone)
			assert.Equal(t, "+48", req.Buyer.Phone.Prefix)
			assert.Equal(t, "123456789", req.Buyer.Phone.Number)

			require.Len(t, req.OrderItems, 2)
			assert.Equal(t, application.OrderItem{Name: "Coffee mug", Category: "Home / Kitchen", Quantity: 2, Price: 1999}, req.OrderItems[0])
			assert.Equal(t, application.OrderItem{Name: "Coffee beans", Category: "Food", Quantity: 2, Price: 5535}, req.OrderItems[1])
		}).
		Return(&application.AuthorizeResponse{
			RedirectURL: "https://paywall.example/p1",
			PaymentID:   "p1",
			Status:      domain.StatusNew,
		}, nil).
		Once()

	result, err := suite.service.CreateTransaction(ctx, order.IncrementID, false)

	require.NoError(t, err)
	assert.Equal(t, "https://paywall.example/p1", result.RedirectURL)
	assert.Equal(t, "p1", result.PaymentID)
	assert.Equal(t, domain.StatusNew, result.Status)

	stored := suite.reload(order.IncrementID)
	assert.Equal(t, "p1", stored.Payment.GatewayPaymentID)
	assert.Equal(t, domain.StatusNew, stored.Payment.GatewayStatus)
	assert.Equal(t, "https://paywall.example/p1", stored.Payment.RedirectURL)
	assert.Equal(t, 1, stored.TransactionCount)

	txns := suite.store.Transactions(order.IncrementID)
	require.Len(t, txns, 1)
	assert.Equal(t, "p1", txns[0].TransactionID)
	assert.Equal(t, "Transaction registered.", txns[0].Comment)
	assert.False(t, txns[0].Approved)
	assert.False(t, txns[0].Closed)

	emails := suite.mailer.Emails()
	require.Len(t, emails, 1)
	assert.Equal(t, domain.EmailNewOrder, emails[0].Kind)
}

func (suite *OrchestratorTestSuite) Test_CreateTransaction_ReturnsExistingTransaction() {
	ctx := context.Background()
	t := suite.T()
	order := suite.createOrder()
	suite.registerTransaction(order, "p1")

	// no second Authorize expectation: the gateway must not be called
	result, err := suite.service.CreateTransaction(ctx, order.IncrementID, false)

	require.NoError(t, err)
	assert.Equal(t, "p1", result.PaymentID)
	assert.Equal(t, 1, suite.reload(order.IncrementID).TransactionCount)
	assert.Len(t, suite.mailer.Emails(), 1)
}

func (suite *OrchestratorTestSuite) Test_CreateTransaction_WithoutCartAndValidity() {
	ctx := context.Background()
	t := suite.T()
	suite.opts.SendCart = false
	suite.opts.ValiditySeconds = 0
	suite.rebuild()
	order := suite.createOrder(func(o *domain.Order) {
		o.Billing.Telephone = "123"
		o.Locale = ""
	})

	suite.mockGateway.EXPECT().
		Authorize(mock.Anything, mock.MatchedBy(func(req application.AuthorizeRequest) bool {
			return req.OrderItems == nil && req.ValidityTime == 0 && req.Buyer.Phone == nil
		}), mock.Anything).
		Return(&application.AuthorizeResponse{PaymentID: "p1"}, nil).
		Once()

	_, err := suite.service.CreateTransaction(ctx, order.IncrementID, false)
	require.NoError(t, err)
}

// ============================================================================
// FAILURE TESTS
// ============================================================================

func (suite *OrchestratorTestSuite) Test_CreateTransaction_GatewayFailureLeavesOrderUntouched() {
	ctx := context.Background()
	t := suite.T()
	order := suite.createOrder()

	suite.mockGateway.EXPECT().
		Authorize(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &application.GatewayError{
			StatusCode: 400,
			Errors:     []application.GatewayErrorDetail{{Type: "VALIDATION_ERROR", Message: "buyer.email"}},
		}).
		Once()

	result, err := suite.service.CreateTransaction(ctx, order.IncrementID, false)

	require.Error(t, err)
	assert.Nil(t, result)
	gwErr, ok := application.IsGatewayError(err)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", gwErr.FirstErrorType())

	stored := suite.reload(order.IncrementID)
	assert.False(t, stored.HasTransaction())
	assert.Zero(t, stored.TransactionCount)
	assert.Empty(t, suite.store.Transactions(order.IncrementID))
	assert.Empty(t, suite.mailer.Emails())
}

func (suite *OrchestratorTestSuite) Test_CreateTransaction_TransportFailureIsGatewayError() {
	ctx := context.Background()
	order := suite.createOrder()

	suite.mockGateway.EXPECT().
		Authorize(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("maximum retries exceeded: connection refused")).
		Once()

	_, err := suite.service.CreateTransaction(ctx, order.IncrementID, false)

	_, ok := application.IsGatewayError(err)
	assert.True(suite.T(), ok)
}

func (suite *OrchestratorTestSuite) Test_CreateTransaction_MailFailureIsSwallowed() {
	ctx := context.Background()
	t := suite.T()
	order := suite.createOrder()
	suite.mailer.Err = errors.New("smtp down")

	suite.mockGateway.EXPECT().
		Authorize(mock.Anything, mock.Anything, mock.Anything).
		Return(&application.AuthorizeResponse{PaymentID: "p1", RedirectURL: "https://paywall.example/p1"}, nil).
		Once()

	result, err := suite.service.CreateTransaction(ctx, order.IncrementID, false)

	require.NoError(t, err)
	assert.Equal(t, "p1", result.PaymentID)
	assert.True(t, suite.reload(order.IncrementID).HasTransaction())
}

func (suite *OrchestratorTestSuite) Test_CreateTransaction_OrderNotFound() {
	_, err := suite.service.CreateTransaction(context.Background(), "999999999", false)

	assert.True(suite.T(), domain.IsErrorCode(err, domain.ErrCodeOrderNotFound))
}

func (suite *OrchestratorTestSuite) Test_CreateTransaction_CanceledOrder() {
	order := suite.createOrder(func(o *domain.Order) {
		o.State = domain.OrderStateCanceled
	})

	_, err := suite.service.CreateTransaction(context.Background(), order.IncrementID, false)

	assert.True(suite.T(), domain.IsErrorCode(err, domain.ErrCodeInvalidState))
}

// ============================================================================
// LEVEL 0 AND PAYMENT METHOD SELECTION
// ============================================================================

func (suite *OrchestratorTestSuite) Test_CreateTransaction_Level0RequiresMethod() {
	ctx := context.Background()
	t := suite.T()
	suite.opts.Level0 = true
	suite.rebuild()
	order := suite.createOrder()

	_, err := suite.service.CreateTransaction(ctx, order.IncrementID, false)

	require.Error(t, err)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeValidation))
	assert.Equal(t, "Please select payment method", err.Error())
}

func (suite *OrchestratorTestSuite) Test_CreateTransaction_SendsSelectedMethod() {
	ctx := context.Background()
	t := suite.T()
	suite.opts.Level0 = true
	suite.rebuild()
	order := suite.createOrder()

	require.NoError(t, suite.service.SelectPaymentMethod(ctx, order.IncrementID, 2007))

	suite.mockGateway.EXPECT().
		Authorize(mock.Anything, mock.MatchedBy(func(req application.AuthorizeRequest) bool {
			return req.PaymentMethodID == 2007
		}), mock.Anything).
		Return(&application.AuthorizeResponse{PaymentID: "p1"}, nil).
		Once()

	_, err := suite.service.CreateTransaction(ctx, order.IncrementID, false)
	require.NoError(t, err)
}

func (suite *OrchestratorTestSuite) Test_SelectPaymentMethod_RejectedAfterTransaction() {
	ctx := context.Background()
	t := suite.T()
	order := suite.createOrder()
	suite.registerTransaction(order, "p1")

	err := suite.service.SelectPaymentMethod(ctx, order.IncrementID, 2007)

	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeValidation))
	assert.Zero(t, suite.reload(order.IncrementID).Payment.SelectedMethodID)
}

func (suite *OrchestratorTestSuite) Test_SelectPaymentMethod_InvalidID() {
	order := suite.createOrder()

	err := suite.service.SelectPaymentMethod(context.Background(), order.IncrementID, 0)

	assert.True(suite.T(), domain.IsErrorCode(err, domain.ErrCodeValidation))
}
