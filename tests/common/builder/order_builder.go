//go:build unit

package builder

import (
	"time"

	domorder "github.com/performlikemj/neighborhood-united-sub004/internal/domain/order"
	"github.com/performlikemj/neighborhood-united-sub004/internal/pkg/clock"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	ID                uuid.UUID
	Status            domorder.Status
	Kind              domorder.Kind
	CustomerID        uuid.UUID
	ChefID            uuid.UUID
	OfferingID        uuid.UUID
	TierID            uuid.UUID
	HouseholdSize     int
	MinHousehold      int
	MaxHousehold      int
	AmountCents       int64
	Currency          string
	IsRecurring       bool
	RequiresSchedule  bool
	Recurrence        *domorder.RecurrenceInterval
	ScheduleDate      *time.Time
	ScheduleStartTime *string
	SessionID         *string
	CapturedCents     int64
	RefundedCents     int64
	Now               time.Time
}

func NewOrderBuilder() *OrderBuilder {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	date := now.AddDate(0, 0, 7)
	start := "18:00"
	return &OrderBuilder{
		ID:                uuid.New(),
		Status:            domorder.StatusDraft,
		Kind:              domorder.KindService,
		CustomerID:        uuid.New(),
		ChefID:            uuid.New(),
		OfferingID:        uuid.New(),
		TierID:            uuid.New(),
		HouseholdSize:     4,
		MinHousehold:      2,
		MaxHousehold:      6,
		AmountCents:       12500,
		Currency:          "usd",
		RequiresSchedule:  true,
		ScheduleDate:      &date,
		ScheduleStartTime: &start,
		Now:               now,
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) BuildTierSpec() domorder.TierSpec {
	return domorder.TierSpec{
		ID:               b.TierID,
		OfferingID:       b.OfferingID,
		Kind:             domorder.KindService,
		MinHousehold:     b.MinHousehold,
		MaxHousehold:     b.MaxHousehold,
		PriceCents:       b.AmountCents,
		Currency:         b.Currency,
		IsRecurring:      b.IsRecurring,
		RequiresSchedule: b.RequiresSchedule,
	}
}

func (b *OrderBuilder) BuildBookingRequest() domorder.BookingRequest {
	return domorder.BookingRequest{
		CustomerID:        b.CustomerID,
		ChefID:            b.ChefID,
		HouseholdSize:     b.HouseholdSize,
		ScheduleDate:      b.ScheduleDate,
		ScheduleStartTime: b.ScheduleStartTime,
		Recurrence:        b.Recurrence,
	}
}

// BuildDomain runs the real factory, so validation failures surface here.
func (b *OrderBuilder) BuildDomain() (*domorder.Order, error) {
	factory := domorder.NewFactory(clock.NewMockClock(b.Now))
	return factory.NewServiceOrder(b.BuildBookingRequest(), b.BuildTierSpec())
}

// BuildReconstructed bypasses the factory so tests can start an order in any
// lifecycle state.
func (b *OrderBuilder) BuildReconstructed() *domorder.Order {
	offeringID := b.OfferingID
	tierID := b.TierID
	return domorder.ReconstructOrder(
		b.ID, b.Kind, b.Status,
		b.CustomerID, b.ChefID,
		&offeringID, &tierID, nil,
		b.HouseholdSize, b.AmountCents, b.Currency,
		b.IsRecurring, b.Recurrence,
		b.ScheduleDate, b.ScheduleStartTime,
		b.SessionID, nil,
		b.CapturedCents, b.RefundedCents,
		nil, nil, nil, false,
		b.Now.Add(-time.Hour), b.Now.Add(-time.Hour),
	)
}
