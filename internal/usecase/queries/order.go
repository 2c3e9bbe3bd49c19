package queries

import (
	"context"
	"time"

	"github.com/performlikemj/neighborhood-united-sub004/internal/domain/order"
	"github.com/performlikemj/neighborhood-united-sub004/internal/infra"
	"github.com/performlikemj/neighborhood-united-sub004/internal/pkg/clock"
	"github.com/performlikemj/neighborhood-united-sub004/internal/pkg/errs"

	"github.com/google/uuid"
)

// OrderView is the read model handed to handlers and to the reconciliation
// poller. Field names mirror the wire format, not the entity.
type OrderView struct {
	ID                uuid.UUID
	Kind              string
	Status            order.Status
	CustomerID        uuid.UUID
	ChefID            uuid.UUID
	OfferingID        *uuid.UUID
	TierID            *uuid.UUID
	MealEventID       *uuid.UUID
	HouseholdSize     int
	AmountCents       int64
	Currency          string
	IsRecurring       bool
	Recurrence        *string
	ScheduleDate      *time.Time
	ScheduleStartTime *string
	PaymentSessionID  *string
	CapturedCents     int64
	RefundedCents     int64
	CancelReason      *string
	Delayed           bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type OrderReadRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*order.Order, error)
	ListUpcomingByChef(ctx context.Context, chefID uuid.UUID, after time.Time) ([]*order.Order, error)
}

type OrderQueries interface {
	GetOrder(ctx context.Context, id uuid.UUID) (*OrderView, error)
	ListCustomerOrders(ctx context.Context, customerID uuid.UUID) ([]*OrderView, error)
	ListChefUpcoming(ctx context.Context, chefID uuid.UUID) ([]*OrderView, error)
	// FetchStatus is the authority lookup used by the confirmation poller.
	FetchStatus(ctx context.Context, id uuid.UUID) (order.Status, error)
}

type orderQueriesImpl struct {
	repo  OrderReadRepository
	clock clock.Clock
}

func NewOrderQueries(repo OrderReadRepository, clk clock.Clock) OrderQueries {
	return &orderQueriesImpl{repo: repo, clock: clk}
}

func (q *orderQueriesImpl) GetOrder(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	o, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrOrderNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return viewFromOrder(o), nil
}

func (q *orderQueriesImpl) ListCustomerOrders(ctx context.Context, customerID uuid.UUID) ([]*OrderView, error) {
	list, err := q.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	views := make([]*OrderView, len(list))
	for i, o := range list {
		views[i] = viewFromOrder(o)
	}
	return views, nil
}

func (q *orderQueriesImpl) ListChefUpcoming(ctx context.Context, chefID uuid.UUID) ([]*OrderView, error) {
	list, err := q.repo.ListUpcomingByChef(ctx, chefID, q.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	views := make([]*OrderView, len(list))
	for i, o := range list {
		views[i] = viewFromOrder(o)
	}
	return views, nil
}

func (q *orderQueriesImpl) FetchStatus(ctx context.Context, id uuid.UUID) (order.Status, error) {
	o, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", errs.Mark(err, errs.ErrOrderNotFound)
		}
		return "", errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return o.Status(), nil
}

func viewFromOrder(o *order.Order) *OrderView {
	var rec *string
	if o.Recurrence() != nil {
		s := string(*o.Recurrence())
		rec = &s
	}
	return &OrderView{
		ID:                o.ID(),
		Kind:              string(o.Kind()),
		Status:            o.Status(),
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
		PaymentSessionID:  o.PaymentSessionID(),
		CapturedCents:     o.CapturedCents(),
		RefundedCents:     o.RefundedCents(),
		CancelReason:      o.CancelReason(),
		Delayed:           o.Delayed(),
		CreatedAt:         o.CreatedAt(),
		UpdatedAt:         o.UpdatedAt(),
	}
}
