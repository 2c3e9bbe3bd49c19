package order

import (
	"errors"
	"fmt"
)

type Status string

const (
	StatusDraft           Status = "draft"
	StatusAwaitingPayment Status = "awaiting_payment"
	StatusConfirmed       Status = "confirmed"
	StatusCompleted       Status = "completed"
	StatusCancelled       Status = "cancelled"
	StatusRefunded        Status = "refunded"
)

var ErrUnknownStatus = errors.New("unknown order status")

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusAwaitingPayment, StatusConfirmed,
		StatusCompleted, StatusCancelled, StatusRefunded:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusRefunded:
		return true
	default:
		return false
	}
}

// IsPayable reports whether a checkout may start (or resume) from s.
func (s Status) IsPayable() bool {
	return s == StatusDraft || s == StatusAwaitingPayment
}

// IsCancellable reports whether a cancel is legal from s. Customer-initiated
// cancels from confirmed additionally require chef/operator involvement, which
// is enforced at the command layer, not here.
func (s Status) IsCancellable() bool {
	switch s {
	case StatusDraft, StatusAwaitingPayment, StatusConfirmed:
		return true
	default:
		return false
	}
}

// ParseStatus rejects unknown values instead of defaulting. Status strings
// arrive from the DB and from the backend authority during reconciliation;
// a silently coerced status is exactly the bug this state machine exists to
// prevent.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
	return s, nil
}

type Kind string

const (
	KindService Kind = "service"
	KindMeal    Kind = "meal"
)

func (k Kind) IsValid() bool {
	return k == KindService || k == KindMeal
}

// Actor identifies who initiated a cancellation, for the audit trail.
type Actor string

const (
	ActorCustomer Actor = "customer"
	ActorChef     Actor = "chef"
	ActorSystem   Actor = "system"
)

func (a Actor) IsValid() bool {
	switch a {
	case ActorCustomer, ActorChef, ActorSystem:
		return true
	default:
		return false
	}
}

type RecurrenceInterval string

const (
	RecurrenceWeekly   RecurrenceInterval = "weekly"
	RecurrenceBiweekly RecurrenceInterval = "biweekly"
	RecurrenceMonthly  RecurrenceInterval = "monthly"
)

func (r RecurrenceInterval) IsValid() bool {
	switch r {
	case RecurrenceWeekly, RecurrenceBiweekly, RecurrenceMonthly:
		return true
	default:
		return false
	}
}
