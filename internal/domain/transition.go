package domain

// Action is the order side effect triggered by an applied status change.
type Action int

const (
	// ActionNone records the new status only.
	ActionNone Action = iota
	// ActionRejected closes the transaction as canceled and notifies the customer.
	ActionRejected
	// ActionCompleted closes the transaction and registers the capture.
	ActionCompleted
	// ActionCanceled closes the transaction and cancels the order.
	ActionCanceled
)

func (a Action) String() string {
	switch a {
	case ActionRejected:
		return "rejected"
	case ActionCompleted:
		return "completed"
	case ActionCanceled:
		return "canceled"
	default:
		return "none"
	}
}

// Transition is the outcome of feeding a notification status into Apply.
type Transition struct {
	From    GatewayStatus
	To      GatewayStatus
	Applied bool
	Action  Action
}

// Apply decides whether an incoming gateway status advances the current one.
//
// Notifications arrive at least once and in any order, so the decision is
// gated on rank only: anything that does not strictly outrank the current
// status is discarded, which makes redelivery and reordering harmless.
func Apply(current, incoming GatewayStatus) Transition {
	t := Transition{From: current, To: incoming}

	if current.Rank() >= incoming.Rank() {
		return t
	}

	t.Applied = true

	switch incoming {
	case StatusError, StatusRejected:
		t.Action = ActionRejected
	case StatusConfirmed:
		t.Action = ActionCompleted
	case StatusExpired:
		t.Action = ActionCanceled
	default:
		t.Action = ActionNone
	}

	return t
}

// Err returns a state conflict error for a discarded transition, nil otherwise.
func (t Transition) Err() error {
	if t.Applied {
		return nil
	}
	return NewStateConflictError(t.From, t.To)
}
