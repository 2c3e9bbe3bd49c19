package response

import (
	"time"

	"github.com/performlikemj/neighborhood-united-sub004/internal/domain/order"
	"github.com/performlikemj/neighborhood-united-sub004/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderResponse struct {
	ID                uuid.UUID  `json:"id"`
	Kind              string     `json:"kind"`
	Status            string     `json:"status"`
	CustomerID        uuid.UUID  `json:"customerId"`
	ChefID            uuid.UUID  `json:"chefId"`
	OfferingID        *uuid.UUID `json:"offeringId,omitempty"`
	TierID            *uuid.UUID `json:"tierId,omitempty"`
	MealEventID       *uuid.UUID `json:"mealEventId,omitempty"`
	HouseholdSize     int        `json:"householdSize"`
	AmountCents       int64      `json:"amountCents"`
	Currency          string     `json:"currency"`
	IsRecurring       bool       `json:"isRecurring"`
	Recurrence        *string    `json:"recurrence,omitempty"`
	ScheduleDate      *time.Time `json:"scheduleDate,omitempty"`
	ScheduleStartTime *string    `json:"scheduleStartTime,omitempty"`
	CapturedCents     int64      `json:"capturedCents"`
	RefundedCents     int64      `json:"refundedCents"`
	CancelReason      *string    `json:"cancelReason,omitempty"`
	Delayed           bool       `json:"delayed"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

type CheckoutResponse struct {
	SessionID   string `json:"sessionId"`
	RedirectURL string `json:"redirectUrl"`
}

type RefundResponse struct {
	ReceiptID     string `json:"receiptId"`
	Status        string `json:"status"`
	RefundedCents int64  `json:"refundedCents"`
}

type VerifyPaymentResponse struct {
	Outcome string `json:"outcome"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	return &OrderResponse{
		ID:                v.ID,
		Kind:              v.Kind,
		Status:            v.Status.String(),
		CustomerID:        v.CustomerID,
		ChefID:            v.ChefID,
		OfferingID:        v.OfferingID,
		TierID:            v.TierID,
		MealEventID:       v.MealEventID,
		HouseholdSize:     v.HouseholdSize,
		AmountCents:       v.AmountCents,
		Currency:          v.Currency,
		IsRecurring:       v.IsRecurring,
		Recurrence:        v.Recurrence,
		ScheduleDate:      v.ScheduleDate,
		ScheduleStartTime: v.ScheduleStartTime,
		CapturedCents:     v.CapturedCents,
		RefundedCents:     v.RefundedCents,
		CancelReason:      v.CancelReason,
		Delayed:           v.Delayed,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}

// FromOrderEntity serves command results, which return the entity directly.
func FromOrderEntity(o *order.Order) *OrderResponse {
	var rec *string
	if o.Recurrence() != nil {
		s := string(*o.Recurrence())
		rec = &s
	}
	return &OrderResponse{
		ID:                o.ID(),
		Kind:              string(o.Kind()),
		Status:            o.Status().String(),
		CustomerID:        o.CustomerID(),
		ChefID:            o.ChefID(),
		OfferingID:        o.OfferingID(),
		TierID:            o.TierID(),
		MealEventID:       o.MealEventID(),
		HouseholdSize:     o.HouseholdSize(),
		AmountCents:       o.AmountCents(),
		Currency:          o.Currency(),
		IsRecurring:       o.IsRecurring(),
		Recurrence:        rec,
		ScheduleDate:      o.ScheduleDate(),
		ScheduleStartTime: o.ScheduleStartTime(),
		CapturedCents:     o.CapturedCents(),
		RefundedCents:     o.RefundedCents(),
		CancelReason:      o.CancelReason(),
		Delayed:           o.Delayed(),
		CreatedAt:         o.CreatedAt(),
		UpdatedAt:         o.UpdatedAt(),
	}
}
