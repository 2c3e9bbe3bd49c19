package order

import (
	"fmt"
	"time"

	"github.com/performlikemj/neighborhood-united-sub004/internal/pkg/clock"

	"github.com/google/uuid"
)

// ValidationError is field-scoped so the UI can attach the message to the
// offending input. Never retried automatically.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// TierSpec is the priced catalog item snapshot handed to the factory. The
// factory copies price and bounds onto the order; later catalog edits never
// retroactively change a booking.
type TierSpec struct {
	ID               uuid.UUID
	OfferingID       uuid.UUID
	Kind             Kind
	MinHousehold     int
	MaxHousehold     int
	PriceCents       int64
	Currency         string
	IsRecurring      bool
	RequiresSchedule bool
}

// MealEventSpec is the meal-order counterpart of TierSpec.
type MealEventSpec struct {
	ID         uuid.UUID
	ChefID     uuid.UUID
	PriceCents int64
	Currency   string
	EventDate  time.Time
}

// BookingRequest carries customer input for a new order.
type BookingRequest struct {
	CustomerID        uuid.UUID
	ChefID            uuid.UUID
	HouseholdSize     int
	ScheduleDate      *time.Time
	ScheduleStartTime *string
	Recurrence        *RecurrenceInterval
}

type Factory struct {
	clock clock.Clock
}

func NewFactory(clk clock.Clock) *Factory {
	return &Factory{clock: clk}
}

// NewServiceOrder validates the booking against the tier and returns a draft
// order. Household size must fall inside the tier bounds; a tier that requires
// an exact schedule must receive both date and start time, while a recurring
// tier may substitute a cadence preference.
func (f *Factory) NewServiceOrder(req BookingRequest, tier TierSpec) (*Order, error) {
	if req.HouseholdSize < tier.MinHousehold || req.HouseholdSize > tier.MaxHousehold {
		return nil, invalid("householdSize",
			fmt.Sprintf("must be between %d and %d for this tier", tier.MinHousehold, tier.MaxHousehold))
	}
	if tier.RequiresSchedule && !tier.IsRecurring {
		if req.ScheduleDate == nil {
			return nil, invalid("scheduleDate", "an exact date is required for this service")
		}
		if req.ScheduleStartTime == nil {
			return nil, invalid("scheduleStartTime", "a start time is required for this service")
		}
	}
	if tier.IsRecurring && req.ScheduleDate == nil {
		if req.Recurrence == nil {
			return nil, invalid("recurrence", "a cadence preference is required when no date is given")
		}
		if !req.Recurrence.IsValid() {
			return nil, invalid("recurrence", "unsupported cadence")
		}
	}
	if err := validatePrice(tier.PriceCents, tier.Currency); err != nil {
		return nil, err
	}

	now := f.clock.Now()
	tierID := tier.ID
	offeringID := tier.OfferingID
	var rec *RecurrenceInterval
	if tier.IsRecurring {
		rec = req.Recurrence
	}
	return &Order{
		id:                 uuid.New(),
		kind:               KindService,
		status:             StatusDraft,
		customerID:         req.CustomerID,
		chefID:             req.ChefID,
		offeringID:         &offeringID,
		tierID:             &tierID,
		householdSize:      req.HouseholdSize,
		amountCents:        tier.PriceCents,
		currency:           tier.Currency,
		isRecurring:        tier.IsRecurring,
		recurrenceInterval: rec,
		scheduleDate:       req.ScheduleDate,
		scheduleStartTime:  req.ScheduleStartTime,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

// NewMealOrder books a scheduled meal event. The event date is the schedule.
func (f *Factory) NewMealOrder(customerID uuid.UUID, event MealEventSpec, quantity int) (*Order, error) {
	if quantity < 1 {
		return nil, invalid("quantity", "must be at least 1")
	}
	if err := validatePrice(event.PriceCents, event.Currency); err != nil {
		return nil, err
	}

	now := f.clock.Now()
	eventID := event.ID
	eventDate := event.EventDate
	return &Order{
		id:            uuid.New(),
		kind:          KindMeal,
		status:        StatusDraft,
		customerID:    customerID,
		chefID:        event.ChefID,
		mealEventID:   &eventID,
		householdSize: quantity,
		amountCents:   event.PriceCents * int64(quantity),
		currency:      event.Currency,
		scheduleDate:  &eventDate,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func validatePrice(priceCents int64, currency string) error {
	if priceCents <= 0 {
		return invalid("amountCents", "price must be positive")
	}
	if len(currency) != 3 {
		return invalid("currency", "must be a 3-letter ISO code")
	}
	return nil
}
