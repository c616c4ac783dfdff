// Package domain holds the order payment model and the gateway status rules
// that reconcile it against asynchronous paynow notifications.
package domain

import "slices"

// GatewayStatus is the payment status reported by the paynow gateway.
type GatewayStatus string

const (
	StatusNew       GatewayStatus = "NEW"
	StatusPending   GatewayStatus = "PENDING"
	StatusError     GatewayStatus = "ERROR"
	StatusRejected  GatewayStatus = "REJECTED"
	StatusConfirmed GatewayStatus = "CONFIRMED"
	StatusExpired   GatewayStatus = "EXPIRED"
)

// statusRanks orders gateway statuses for reconciliation. CONFIRMED and
// EXPIRED share the terminal rank, so whichever lands first wins.
var statusRanks = map[GatewayStatus]int{
	StatusNew:       0,
	StatusPending:   1,
	StatusError:     2,
	StatusRejected:  3,
	StatusConfirmed: 4,
	StatusExpired:   4,
}

// Rank returns the reconciliation rank of the status. Empty or unknown
// statuses rank as NEW.
func (s GatewayStatus) Rank() int {
	return statusRanks[s]
}

// IsKnown reports whether the gateway documents this status.
func (s GatewayStatus) IsKnown() bool {
	_, ok := statusRanks[s]
	return ok
}

// RetryOrCancelableStatuses allow the customer to start a new transaction or cancel the order.
func RetryOrCancelableStatuses() []GatewayStatus {
	return []GatewayStatus{StatusError, StatusRejected}
}

// FinishableStatuses allow the customer to go back to the gateway and finish paying.
func FinishableStatuses() []GatewayStatus {
	return []GatewayStatus{StatusNew, StatusPending}
}

// CompletableStatuses are treated as success when the customer returns from the gateway.
func CompletableStatuses() []GatewayStatus {
	return []GatewayStatus{StatusPending, StatusConfirmed}
}

func (s GatewayStatus) IsRetryOrCancelable() bool {
	return slices.Contains(RetryOrCancelableStatuses(), s)
}

func (s GatewayStatus) IsFinishable() bool {
	return slices.Contains(FinishableStatuses(), s)
}

func (s GatewayStatus) IsCompletable() bool {
	return slices.Contains(CompletableStatuses(), s)
}

// RefundStatus is the state of a refund request at the gateway.
type RefundStatus string

const (
	RefundStatusNew        RefundStatus = "NEW"
	RefundStatusPending    RefundStatus = "PENDING"
	RefundStatusSuccessful RefundStatus = "SUCCESSFUL"
)

// IsAccepted reports whether the gateway took the refund request.
func (s RefundStatus) IsAccepted() bool {
	switch s {
	case RefundStatusNew, RefundStatusPending, RefundStatusSuccessful:
		return true
	default:
		return false
	}
}
