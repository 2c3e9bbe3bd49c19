package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotPayable         = errors.New("order is not in a payable state")
	ErrNotCancellable     = errors.New("order cannot be cancelled from its current state")
	ErrNotRefundable      = errors.New("order has no captured payment to refund")
	ErrRefundExceeds      = errors.New("refund amount exceeds captured amount")
	ErrNotCompletable     = errors.New("only a confirmed order can be completed")
	ErrNoActiveSession    = errors.New("order has no checkout session to attach to")
	ErrDelayedUnsupported = errors.New("delayed flag applies to meal orders only")
)

// Order is the single source of truth for booking lifecycle state. Every
// mutation goes through a transition method; illegal transitions are rejected,
// never coerced. Price fields are copied from the catalog at booking time and
// immutable once the order leaves draft.
type Order struct {
	id     uuid.UUID
	kind   Kind
	status Status

	customerID uuid.UUID
	chefID     uuid.UUID

	offeringID  *uuid.UUID
	tierID      *uuid.UUID
	mealEventID *uuid.UUID

	householdSize int
	amountCents   int64
	currency      string

	isRecurring        bool
	recurrenceInterval *RecurrenceInterval

	scheduleDate      *time.Time
	scheduleStartTime *string

	paymentSessionID *string
	confirmEvidence  *string
	capturedCents    int64
	refundedCents    int64

	cancelActor  *Actor
	cancelReason *string
	auditNotes   []string

	delayed bool

	createdAt time.Time
	updatedAt time.Time
}

// ReconstructOrder rebuilds an entity from persisted state. It trusts the
// store; validation happened when the fields were first written.
func ReconstructOrder(
	id uuid.UUID,
	kind Kind,
	status Status,
	customerID, chefID uuid.UUID,
	offeringID, tierID, mealEventID *uuid.UUID,
	householdSize int,
	amountCents int64,
	currency string,
	isRecurring bool,
	recurrenceInterval *RecurrenceInterval,
	scheduleDate *time.Time,
	scheduleStartTime *string,
	paymentSessionID *string,
	confirmEvidence *string,
	capturedCents, refundedCents int64,
	cancelActor *Actor,
	cancelReason *string,
	auditNotes []string,
	delayed bool,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:                 id,
		kind:               kind,
		status:             status,
		customerID:         customerID,
		chefID:             chefID,
		offeringID:         offeringID,
		tierID:             tierID,
		mealEventID:        mealEventID,
		householdSize:      householdSize,
		amountCents:        amountCents,
		currency:           currency,
		isRecurring:        isRecurring,
		recurrenceInterval: recurrenceInterval,
		scheduleDate:       scheduleDate,
		scheduleStartTime:  scheduleStartTime,
		paymentSessionID:   paymentSessionID,
		confirmEvidence:    confirmEvidence,
		capturedCents:      capturedCents,
		refundedCents:      refundedCents,
		cancelActor:        cancelActor,
		cancelReason:       cancelReason,
		auditNotes:         auditNotes,
		delayed:            delayed,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// EnterCheckout moves the order into awaiting_payment. Legal from draft and
// from awaiting_payment itself (resume after a lost redirect or a failed
// session creation).
func (o *Order) EnterCheckout(now time.Time) error {
	if !o.status.IsPayable() {
		return fmt.Errorf("%w: status=%s", ErrNotPayable, o.status)
	}
	o.status = StatusAwaitingPayment
	o.updatedAt = now
	return nil
}

// AttachSession records the checkout session for an order already in
// awaiting_payment, superseding any stale session.
func (o *Order) AttachSession(sessionID string, now time.Time) error {
	if o.status != StatusAwaitingPayment {
		return fmt.Errorf("%w: status=%s", ErrNoActiveSession, o.status)
	}
	o.paymentSessionID = &sessionID
	o.updatedAt = now
	return nil
}

// MarkConfirmed transitions awaiting_payment → confirmed and records the
// captured amount. Both the webhook and the client poller may attempt this;
// a repeat call with the same evidence is a no-op, not an error. Any other
// state rejects: a cancel that already landed wins the race.
func (o *Order) MarkConfirmed(evidence string, now time.Time) error {
	if o.status == StatusConfirmed {
		if o.confirmEvidence != nil && *o.confirmEvidence == evidence {
			return nil
		}
		return nil // already confirmed by the other path; keep first evidence
	}
	if o.status != StatusAwaitingPayment {
		return fmt.Errorf("%w: status=%s", ErrNotPayable, o.status)
	}
	o.status = StatusConfirmed
	o.confirmEvidence = &evidence
	o.capturedCents = o.amountCents
	o.updatedAt = now
	return nil
}

// Cancel records who cancelled and why. The returned flag tells the caller to
// invalidate the order's checkout session at the processor, so a late payment
// completion cannot resurrect a cancelled order. The session id itself is
// retained for audit.
func (o *Order) Cancel(actor Actor, reason string, now time.Time) (invalidateSession bool, err error) {
	if !o.status.IsCancellable() {
		return false, fmt.Errorf("%w: status=%s", ErrNotCancellable, o.status)
	}
	invalidateSession = o.status == StatusAwaitingPayment && o.paymentSessionID != nil
	o.status = StatusCancelled
	o.cancelActor = &actor
	o.cancelReason = &reason
	o.updatedAt = now
	return invalidateSession, nil
}

// Refund applies a (possibly partial) refund against the captured amount.
// A cumulative refund equal to the capture moves the order to refunded; a
// partial refund leaves it confirmed with an audit note.
func (o *Order) Refund(amountCents int64, now time.Time) error {
	if o.capturedCents == 0 {
		return fmt.Errorf("%w: status=%s", ErrNotRefundable, o.status)
	}
	if o.status != StatusConfirmed && o.status != StatusAwaitingPayment && o.status != StatusCancelled {
		return fmt.Errorf("%w: status=%s", ErrNotRefundable, o.status)
	}
	if amountCents <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrRefundExceeds)
	}
	if o.refundedCents+amountCents > o.capturedCents {
		return fmt.Errorf("%w: captured=%d refunded=%d requested=%d",
			ErrRefundExceeds, o.capturedCents, o.refundedCents, amountCents)
	}
	o.refundedCents += amountCents
	if o.refundedCents == o.capturedCents {
		o.status = StatusRefunded
	} else {
		o.auditNotes = append(o.auditNotes,
			fmt.Sprintf("partial refund of %d %s at %s", amountCents, o.currency, now.UTC().Format(time.RFC3339)))
	}
	o.updatedAt = now
	return nil
}

// Complete marks a confirmed order as fulfilled.
func (o *Order) Complete(now time.Time) error {
	if o.status != StatusConfirmed {
		return fmt.Errorf("%w: status=%s", ErrNotCompletable, o.status)
	}
	o.status = StatusCompleted
	o.updatedAt = now
	return nil
}

// MarkDelayed flags a meal order as running late. Operational only; payment
// state is untouched.
func (o *Order) MarkDelayed(now time.Time) error {
	if o.kind != KindMeal {
		return ErrDelayedUnsupported
	}
	o.delayed = true
	o.updatedAt = now
	return nil
}

func (o *Order) ClearDelayed(now time.Time) error {
	if o.kind != KindMeal {
		return ErrDelayedUnsupported
	}
	o.delayed = false
	o.updatedAt = now
	return nil
}

// HasCapturedPayment reports whether money was collected for this order.
func (o *Order) HasCapturedPayment() bool {
	return o.capturedCents > 0
}

// OutstandingCents is the captured amount not yet refunded.
func (o *Order) OutstandingCents() int64 {
	return o.capturedCents - o.refundedCents
}

func (o *Order) IsFuture(now time.Time) bool {
	return o.scheduleDate != nil && o.scheduleDate.After(now)
}

func (o *Order) ID() uuid.UUID                           { return o.id }
func (o *Order) Kind() Kind                              { return o.kind }
func (o *Order) Status() Status                          { return o.status }
func (o *Order) CustomerID() uuid.UUID                   { return o.customerID }
func (o *Order) ChefID() uuid.UUID                       { return o.chefID }
func (o *Order) OfferingID() *uuid.UUID                  { return o.offeringID }
func (o *Order) TierID() *uuid.UUID                      { return o.tierID }
func (o *Order) MealEventID() *uuid.UUID                 { return o.mealEventID }
func (o *Order) HouseholdSize() int                      { return o.householdSize }
func (o *Order) AmountCents() int64                      { return o.amountCents }
func (o *Order) Currency() string                        { return o.currency }
func (o *Order) IsRecurring() bool                       { return o.isRecurring }
func (o *Order) Recurrence() *RecurrenceInterval         { return o.recurrenceInterval }
func (o *Order) ScheduleDate() *time.Time                { return o.scheduleDate }
func (o *Order) ScheduleStartTime() *string              { return o.scheduleStartTime }
func (o *Order) PaymentSessionID() *string               { return o.paymentSessionID }
func (o *Order) ConfirmEvidence() *string                { return o.confirmEvidence }
func (o *Order) CapturedCents() int64                    { return o.capturedCents }
func (o *Order) RefundedCents() int64                    { return o.refundedCents }
func (o *Order) CancelActor() *Actor                     { return o.cancelActor }
func (o *Order) CancelReason() *string                   { return o.cancelReason }
func (o *Order) AuditNotes() []string                    { return o.auditNotes }
func (o *Order) Delayed() bool                           { return o.delayed }
func (o *Order) CreatedAt() time.Time                    { return o.createdAt }
func (o *Order) UpdatedAt() time.Time                    { return o.updatedAt }
