package request

import (
	"strings"
	"time"

	"github.com/performlikemj/neighborhood-united-sub004/internal/domain/order"

	"github.com/google/uuid"
)

// CreateOrderRequest books either a service tier or a meal event, discriminated
// by kind. Exactly one of tier_id / meal_event_id is consulted.
type CreateOrderRequest struct {
	Kind              string     `json:"kind" binding:"required,oneof=service meal"`
	ChefID            uuid.UUID  `json:"chef_id"`
	TierID            *uuid.UUID `json:"tier_id,omitempty"`
	MealEventID       *uuid.UUID `json:"meal_event_id,omitempty"`
	HouseholdSize     int        `json:"household_size,omitempty"`
	Quantity          int        `json:"quantity,omitempty"`
	ScheduleDate      *time.Time `json:"schedule_date,omitempty"`
	ScheduleStartTime *string    `json:"schedule_start_time,omitempty"`
	Recurrence        *string    `json:"recurrence,omitempty"`
}

func (r CreateOrderRequest) GetRecurrence() *order.RecurrenceInterval {
	if r.Recurrence == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Recurrence)
	if trimmed == "" {
		return nil
	}
	rec := order.RecurrenceInterval(trimmed)
	return &rec
}

type CancelOrderRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type RefundOrderRequest struct {
	AmountCents int64 `json:"amount_cents" binding:"required,gt=0"`
}

// PaymentConfirmedWebhook is the processor's callback payload.
type PaymentConfirmedWebhook struct {
	SessionID string `json:"session_id" binding:"required"`
	EventID   string `json:"event_id" binding:"required"`
}
