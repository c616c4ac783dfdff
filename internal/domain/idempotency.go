package domain

import (
	"crypto/hmac"
	"crypto/md5" //nolint:gosec // paynow keys are defined as HMAC-MD5
	"encoding/hex"
	"fmt"
)

// DeriveIdempotencyKey returns the key identifying one transaction attempt
// for an order.
//
// The same key deduplicates authorize calls at the gateway and is handed to
// the customer as the capability for the retry and cancel links. Once a new
// transaction is recorded the count moves on and older links stop matching.
func DeriveIdempotencyKey(entityID, quoteID, storeID int64, transactionCount int, secret string) string {
	message := fmt.Sprintf("%d_%d_%d_%d", entityID, quoteID, storeID, transactionCount)
	return hmacMD5(message, secret)
}

// OrderIdempotencyKey derives the key for the order's current attempt.
func OrderIdempotencyKey(order *Order, secret string) string {
	return DeriveIdempotencyKey(order.EntityID, order.QuoteID, order.StoreID, order.TransactionCount, secret)
}

// DeriveRefundKey returns the idempotency key for refunds of a gateway payment.
func DeriveRefundKey(paymentID, secret string) string {
	return hmacMD5(paymentID, secret)
}

// KeysEqual compares two keys in constant time.
func KeysEqual(expected, provided string) bool {
	return hmac.Equal([]byte(expected), []byte(provided))
}

func hmacMD5(message, secret string) string {
	mac := hmac.New(md5.New, []byte(secret))
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}
