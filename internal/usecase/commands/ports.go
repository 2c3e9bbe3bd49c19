package commands

import (
	"context"
	"time"

	"github.com/performlikemj/neighborhood-united-sub004/internal/domain/chef"
	"github.com/performlikemj/neighborhood-united-sub004/internal/domain/order"
	"github.com/performlikemj/neighborhood-united-sub004/internal/infra/jobs"
	"github.com/performlikemj/neighborhood-united-sub004/internal/infra/payment"

	"github.com/google/uuid"
)

// Ports are declared on the consumer side; the infra layer satisfies them.

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	FindBySessionID(ctx context.Context, sessionID string) (*order.Order, error)
	// Update must carry a status guard: it fails with a conflict when the
	// row is no longer in any of fromStatuses.
	Update(ctx context.Context, o *order.Order, fromStatuses ...order.Status) error
	ListUpcomingByChef(ctx context.Context, chefID uuid.UUID, after time.Time) ([]*order.Order, error)
}

type ChefRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*chef.Chef, error)
	SaveBreakState(ctx context.Context, c *chef.Chef) error
}

type CatalogRepository interface {
	TierByID(ctx context.Context, id uuid.UUID) (*order.TierSpec, error)
	MealEventByID(ctx context.Context, id uuid.UUID) (*order.MealEventSpec, error)
}

type PendingOrderRegistry interface {
	Remember(ctx context.Context, deviceID string, orderID uuid.UUID, at time.Time) error
	Forget(ctx context.Context, deviceID string, orderID uuid.UUID) error
}

type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, orderID uuid.UUID, amountCents int64, currency string) (*payment.CheckoutSession, error)
	ExpireSession(ctx context.Context, sessionID string) error
	Refund(ctx context.Context, sessionID string, amountCents int64) (*payment.RefundReceipt, error)
}

type BreakJobStore interface {
	Put(ctx context.Context, rec jobs.JobRecord) error
	Get(ctx context.Context, jobID uuid.UUID) (*jobs.JobRecord, error)
}
