package services_test

import (
	"context"
	"fmt"

	"github.com/DanielPopoola/ficmart-paynow/internal/application"
	"github.com/DanielPopoola/ficmart-paynow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func notificationPayload(orderID, paymentID string, status domain.GatewayStatus) string {
	return fmt.Sprintf(`{"paymentId":%q,"externalId":%q,"status":%q,"modifiedAt":"2026-01-01T12:00:00"}`, paymentID, orderID, status)
}

// ============================================================================
// HAPPY PATH TESTS
// ============================================================================

func (suite *OrchestratorTestSuite) Test_HandleNotification_Confirmed() {
	t := suite.T()
	order := suite.createOrder()
	suite.registerTransaction(order, "p1")

	err := suite.notify(notificationPayload(order.IncrementID, "p1", domain.StatusConfirmed))
	require.NoError(t, err)

	stored := suite.reload(order.IncrementID)
	assert.Equal(t, domain.StatusConfirmed, stored.Payment.GatewayStatus)
	assert.Equal(t, domain.OrderStateProcessing, stored.State)
	assert.True(t, stored.TotalDue.IsZero())
	assert.True(t, stored.TotalPaid.Equal(order.GrandTotal))

	txns := suite.store.Transactions(order.IncrementID)
	require.Len(t, txns, 2)
	assert.Equal(t, "Transaction completed successfully.", txns[1].Comment)
	assert.True(t, txns[1].Approved)
	assert.True(t, txns[1].Closed)

	invoices := suite.store.Invoices(order.IncrementID)
	require.Len(t, invoices, 1)

	history := suite.store.History(order.IncrementID)
	require.Len(t, history, 1)
	assert.Equal(t, "Notified customer about invoice #"+invoices[0].IncrementID+".", history[0].Comment)
	assert.True(t, history[0].CustomerNotified)

	emails := suite.mailer.Emails()
	assert.Equal(t, domain.EmailInvoice, emails[len(emails)-1].Kind)
}

func (suite *OrchestratorTestSuite) Test_HandleNotification_PendingUpdatesStatusOnly() {
	t := suite.T()
	order := suite.createOrder()
	suite.registerTransaction(order, "p1")

	require.NoError(t, suite.notify(notificationPayload(order.IncrementID, "p1", domain.StatusPending)))

	stored := suite.reload(order.IncrementID)
	assert.Equal(t, domain.StatusPending, stored.Payment.GatewayStatus)
	assert.Equal(t, 1, stored.TransactionCount)
	assert.Empty(t, suite.store.History(order.IncrementID))
}

func (suite *OrchestratorTestSuite) Test_HandleNotification_Rejected() {
	t := suite.T()
	order := suite.createOrder()
	suite.registerTransaction(order, "p1")

	require.NoError(t, suite.notify(notificationPayload(order.IncrementID, "p1", domain.StatusRejected)))

	stored := suite.reload(order.IncrementID)
	assert.Equal(t, domain.StatusRejected, stored.Payment.GatewayStatus)
	assert.False(t, stored.IsCanceled())

	txns := suite.store.Transactions(order.IncrementID)
	assert.Equal(t, "The transaction has been canceled.", txns[len(txns)-1].Comment)

	emails := suite.mailer.Emails()
	assert.Equal(t, domain.EmailOrderUpdate, emails[len(emails)-1].Kind)
	assert.Equal(t, "The transaction has been canceled.", emails[len(emails)-1].Body)
}

func (suite *OrchestratorTestSuite) Test_HandleNotification_ExpiredCancelsOrder() {
	t := suite.T()
	order := suite.createOrder()
	suite.registerTransaction(order, "p1")

	require.NoError(t, suite.notify(notificationPayload(order.IncrementID, "p1", domain.StatusExpired)))

	stored := suite.reload(order.IncrementID)
	assert.Equal(t, domain.StatusExpired, stored.Payment.GatewayStatus)
	assert.True(t, stored.IsCanceled())
	assert.Empty(t, suite.store.Invoices(order.IncrementID))
}

// ============================================================================
// ORDERING TESTS
// ============================================================================

func (suite *OrchestratorTestSuite) Test_HandleNotification_OutOfOrderIsIgnored() {
	t := suite.T()
	order := suite.createOrder()
	suite.registerTransaction(order, "p1")

	require.NoError(t, suite.notify(notificationPayload(order.IncrementID, "p1", domain.StatusConfirmed)))
	before := suite.reload(order.IncrementID)
	emails := len(suite.mailer.Emails())

	for _, status := range []domain.GatewayStatus{domain.StatusPending, domain.StatusNew, domain.StatusRejected, domain.StatusExpired} {
		require.NoError(t, suite.notify(notificationPayload(order.IncrementID, "p1", status)))
	}

	after := suite.reload(order.IncrementID)
	assert.Equal(t, domain.StatusConfirmed, after.Payment.GatewayStatus)
	assert.Equal(t, before.TransactionCount, after.TransactionCount)
	assert.False(t, after.IsCanceled())
	assert.Len(t, suite.mailer.Emails(), emails)
}

func (suite *OrchestratorTestSuite) Test_HandleNotification_DuplicateConfirmedInvoicesOnce() {
	t := suite.T()
	order := suite.createOrder()
	suite.registerTransaction(order, "p1")

	payload := notificationPayload(order.IncrementID, "p1", domain.StatusConfirmed)
	for range 3 {
		require.NoError(t, suite.notify(payload))
	}

	assert.Len(t, suite.store.Invoices(order.IncrementID), 1)
	assert.Len(t, suite.store.Transactions(order.IncrementID), 2)
}

func (suite *OrchestratorTestSuite) Test_ApplyStatus_ReportsTransition() {
	t := suite.T()
	order := suite.createOrder()
	suite.registerTransaction(order, "p1")

	tr := suite.applyStatus(order, "p1", domain.StatusPending)
	assert.True(t, tr.Applied)
	assert.Equal(t, domain.ActionNone, tr.Action)

	tr = suite.applyStatus(order, "p1", domain.StatusPending)
	assert.False(t, tr.Applied)
	assert.True(t, domain.IsErrorCode(tr.Err(), domain.ErrCodeStateConflict))

	tr = suite.applyStatus(order, "p1", domain.GatewayStatus("ABANDONED"))
	assert.False(t, tr.Applied)
	assert.Equal(t, domain.StatusPending, suite.reload(order.IncrementID).Payment.GatewayStatus)
}

// ============================================================================
// REJECTED NOTIFICATIONS
// ============================================================================

func (suite *OrchestratorTestSuite) Test_HandleNotification_InvalidSignature() {
	ctx := context.Background()
	t := suite.T()
	order := suite.createOrder()
	suite.registerTransaction(order, "p1")
	suite.expectSignatures()

	payload := []byte(notificationPayload(order.IncrementID, "p1", domain.StatusConfirmed))

	err := suite.service.HandleNotification(ctx, payload, "forged")
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeSignature))

	err = suite.service.HandleNotification(ctx, payload, "")
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeSignature))

	assert.Equal(t, domain.StatusNew, suite.reload(order.IncrementID).Payment.GatewayStatus)
}

func (suite *OrchestratorTestSuite) Test_HandleNotification_Malformed() {
	t := suite.T()

	err := suite.notify(`{"paymentId":`)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeValidation))

	err = suite.notify(`{"paymentId":"p1","status":"CONFIRMED"}`)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeValidation))
}

func (suite *OrchestratorTestSuite) Test_HandleNotification_UnknownOrder() {
	err := suite.notify(notificationPayload("999999999", "p1", domain.StatusConfirmed))

	assert.True(suite.T(), domain.IsErrorCode(err, domain.ErrCodeOrderNotFound))
}

// ============================================================================
// STATUS SYNC
// ============================================================================

func (suite *OrchestratorTestSuite) Test_SyncPaymentStatus() {
	ctx := context.Background()
	t := suite.T()
	order := suite.createOrder()
	suite.registerTransaction(order, "p1")

	suite.mockGateway.EXPECT().
		GetPaymentStatus(mock.Anything, "p1").
		Return(&application.PaymentStatusResponse{PaymentID: "p1", Status: domain.StatusConfirmed}, nil).
		Once()

	tr, err := suite.service.SyncPaymentStatus(ctx, suite.reload(order.IncrementID))

	require.NoError(t, err)
	assert.True(t, tr.Applied)
	assert.Equal(t, domain.ActionCompleted, tr.Action)
	assert.Len(t, suite.store.Invoices(order.IncrementID), 1)
}

func (suite *OrchestratorTestSuite) Test_SyncPaymentStatus_Failures() {
	ctx := context.Background()
	t := suite.T()
	order := suite.createOrder()

	_, err := suite.service.SyncPaymentStatus(ctx, order)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidState))

	suite.registerTransaction(order, "p1")
	suite.mockGateway.EXPECT().
		GetPaymentStatus(mock.Anything, "p1").
		Return(nil, &application.GatewayError{StatusCode: 404}).
		Once()

	_, err = suite.service.SyncPaymentStatus(ctx, suite.reload(order.IncrementID))
	_, ok := application.IsGatewayError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.StatusNew, suite.reload(order.IncrementID).Payment.GatewayStatus)
}
