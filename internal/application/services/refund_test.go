package services_test

import (
	"context"
	"errors"

	"github.com/DanielPopoola/ficmart-paynow/internal/application"
	"github.com/DanielPopoola/ficmart-paynow/internal/application/services/testhelpers"
	"github.com/DanielPopoola/ficmart-paynow/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// REFUND
// ============================================================================

func (suite *OrchestratorTestSuite) Test_Refund_Success() {
	ctx := context.Background()
	t := suite.T()
	order := suite.createOrder()
	suite.registerTransaction(order, "p1")

	suite.mockGateway.EXPECT().
		CreateRefund(mock.Anything, "p1", domain.DeriveRefundKey("p1", testhelpers.TestSecret), int64(1250)).
		Return(&application.RefundResponse{RefundID: "r1", Status: domain.RefundStatusPending}, nil).
		Once()

	result, err := suite.service.Refund(ctx, order.IncrementID, decimal.RequireFromString("12.50"))

	require.NoError(t, err)
	assert.Equal(t, "r1", result.RefundID)
	assert.Equal(t, domain.RefundStatusPending, result.Status)
	assert.Equal(t, "paynow refund - amount: 12.5, status: PENDING", result.Message)

	assert.Equal(t, "r1", suite.reload(order.IncrementID).Payment.RefundID)
	history := suite.store.History(order.IncrementID)
	require.Len(t, history, 1)
	assert.Equal(t, "paynow refund - amount: 12.5, status: PENDING", history[0].Comment)
}

func (suite *OrchestratorTestSuite) Test_Refund_GatewayErrorType() {
	ctx := context.Background()
	t := suite.T()
	order := suite.createOrder()
	suite.registerTransaction(order, "p1")

	suite.mockGateway.EXPECT().
		CreateRefund(mock.Anything, "p1", mock.Anything, int64(1250)).
		Return(nil, &application.GatewayError{
			StatusCode: 400,
			Errors:     []application.GatewayErrorDetail{{Type: "INSUFFICIENT_BALANCE_FUNDS", Message: "not enough funds"}},
		}).
		Once()

	_, err := suite.service.Refund(ctx, order.IncrementID, decimal.RequireFromString("12.50"))

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeRefundFailed, svcErr.Code)
	assert.Equal(t, "paynow refund - amount: 12.5, status: INSUFFICIENT_BALANCE_FUNDS", svcErr.Message)

	_, isGateway := application.IsGatewayError(err)
	assert.True(t, isGateway)
	assert.Empty(t, suite.reload(order.IncrementID).Payment.RefundID)
	assert.Empty(t, suite.store.History(order.IncrementID))
}

func (suite *OrchestratorTestSuite) Test_Refund_TransportError() {
	ctx := context.Background()
	t := suite.T()
	order := suite.createOrder()
	suite.registerTransaction(order, "p1")

	suite.mockGateway.EXPECT().
		CreateRefund(mock.Anything, "p1", mock.Anything, int64(100)).
		Return(nil, errors.New("connection reset")).
		Once()

	_, err := suite.service.Refund(ctx, order.IncrementID, decimal.NewFromInt(1))

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "paynow refund - amount: 1, status: connection reset", svcErr.Message)
}

func (suite *OrchestratorTestSuite) Test_Refund_StatusNotAccepted() {
	ctx := context.Background()
	t := suite.T()
	order := suite.createOrder()
	suite.registerTransaction(order, "p1")

	suite.mockGateway.EXPECT().
		CreateRefund(mock.Anything, "p1", mock.Anything, int64(500)).
		Return(&application.RefundResponse{RefundID: "r1", Status: domain.RefundStatus("REJECTED")}, nil).
		Once()

	_, err := suite.service.Refund(ctx, order.IncrementID, decimal.NewFromInt(5))

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "paynow refund - amount: 5, status: REJECTED", svcErr.Message)
	assert.Empty(t, suite.reload(order.IncrementID).Payment.RefundID)
}

func (suite *OrchestratorTestSuite) Test_Refund_Validation() {
	ctx := context.Background()
	t := suite.T()
	order := suite.createOrder()

	_, err := suite.service.Refund(ctx, order.IncrementID, decimal.Zero)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeValidation))

	_, err = suite.service.Refund(ctx, order.IncrementID, decimal.NewFromInt(10))
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeValidation))
}

// ============================================================================
// PAYMENT METHODS AND SHOP CONFIGURATION
// ============================================================================

func (suite *OrchestratorTestSuite) Test_AvailableMethods() {
	ctx := context.Background()
	t := suite.T()
	methods := []application.PaymentMethod{
		{ID: 2007, Type: "BLIK", Name: "BLIK", Status: "ENABLED"},
		{ID: 2001, Type: "PBL", Name: "mBank", Status: "ENABLED"},
	}

	suite.mockGateway.EXPECT().
		GetPaymentMethods(mock.Anything, "PLN", int64(12345)).
		Return(methods, nil).
		Twice()

	assert.Equal(t, methods, suite.service.AvailableMethods(ctx, "PLN", decimal.RequireFromString("123.45")))
	assert.True(t, suite.service.IsAvailable(ctx, "PLN", decimal.RequireFromString("123.45")))
}

func (suite *OrchestratorTestSuite) Test_AvailableMethods_GatewayFailure() {
	ctx := context.Background()
	t := suite.T()

	suite.mockGateway.EXPECT().
		GetPaymentMethods(mock.Anything, "EUR", int64(1000)).
		Return(nil, &application.GatewayError{StatusCode: 500}).
		Twice()

	methods := suite.service.AvailableMethods(ctx, "EUR", decimal.NewFromInt(10))
	assert.NotNil(t, methods)
	assert.Empty(t, methods)
	assert.False(t, suite.service.IsAvailable(ctx, "EUR", decimal.NewFromInt(10)))
}

func (suite *OrchestratorTestSuite) Test_ConfigureShopURLs() {
	ctx := context.Background()
	t := suite.T()

	suite.mockGateway.EXPECT().
		UpdateShopURLs(mock.Anything, "https://shop.example/paynow/complete", "https://shop.example/paynow/notify").
		Return(nil).
		Once()

	assert.NoError(t, suite.service.ConfigureShopURLs(ctx))

	suite.mockGateway.EXPECT().
		UpdateShopURLs(mock.Anything, mock.Anything, mock.Anything).
		Return(&application.GatewayError{StatusCode: 401}).
		Once()

	_, ok := application.IsGatewayError(suite.service.ConfigureShopURLs(ctx))
	assert.True(t, ok)
}
