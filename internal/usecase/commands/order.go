package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/performlikemj/neighborhood-united-sub004/internal/domain/order"
	"github.com/performlikemj/neighborhood-united-sub004/internal/infra"
	"github.com/performlikemj/neighborhood-united-sub004/internal/pkg/clock"
	"github.com/performlikemj/neighborhood-united-sub004/internal/pkg/errs"

	"github.com/google/uuid"
)

type CreateServiceOrderParams struct {
	CustomerID        uuid.UUID
	ChefID            uuid.UUID
	TierID            uuid.UUID
	HouseholdSize     int
	ScheduleDate      *time.Time
	ScheduleStartTime *string
	Recurrence        *order.RecurrenceInterval
}

type CreateMealOrderParams struct {
	CustomerID  uuid.UUID
	MealEventID uuid.UUID
	Quantity    int
}

type RefundResult struct {
	Order     *order.Order
	ReceiptID string
}

type OrderCommands interface {
	CreateServiceOrder(ctx context.Context, p CreateServiceOrderParams) (*order.Order, error)
	CreateMealOrder(ctx context.Context, p CreateMealOrderParams) (*order.Order, error)
	Cancel(ctx context.Context, orderID uuid.UUID, actor order.Actor, reason string) (*order.Order, error)
	ConfirmBySession(ctx context.Context, sessionID, evidence string) error
	Refund(ctx context.Context, orderID uuid.UUID, amountCents int64) (*RefundResult, error)
	Complete(ctx context.Context, orderID uuid.UUID) (*order.Order, error)
}

type orderCommandsImpl struct {
	orders  OrderRepository
	chefs   ChefRepository
	catalog CatalogRepository
	gateway PaymentGateway
	factory *order.Factory
	clock   clock.Clock
	logger  *slog.Logger
}

func NewOrderCommands(
	orders OrderRepository,
	chefs ChefRepository,
	catalog CatalogRepository,
	gateway PaymentGateway,
	factory *order.Factory,
	clk clock.Clock,
	logger *slog.Logger,
) OrderCommands {
	return &orderCommandsImpl{
		orders:  orders,
		chefs:   chefs,
		catalog: catalog,
		gateway: gateway,
		factory: factory,
		clock:   clk,
		logger:  logger,
	}
}

// ensureChefAccepting rejects a booking against a chef who is on break.
// Break mode halts new bookings; only the cascade and EndBreak touch
// existing ones.
func (c *orderCommandsImpl) ensureChefAccepting(ctx context.Context, chefID uuid.UUID) error {
	ch, err := c.chefs.FindByID(ctx, chefID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrChefNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if ch.OnBreak() {
		return errs.Mark(errs.New("chef is on break"), errs.ErrChefUnavailable)
	}
	return nil
}

func (c *orderCommandsImpl) CreateServiceOrder(ctx context.Context, p CreateServiceOrderParams) (*order.Order, error) {
	if err := c.ensureChefAccepting(ctx, p.ChefID); err != nil {
		return nil, err
	}

	tier, err := c.catalog.TierByID(ctx, p.TierID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrOrderNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	o, err := c.factory.NewServiceOrder(order.BookingRequest{
		CustomerID:        p.CustomerID,
		ChefID:            p.ChefID,
		HouseholdSize:     p.HouseholdSize,
		ScheduleDate:      p.ScheduleDate,
		ScheduleStartTime: p.ScheduleStartTime,
		Recurrence:        p.Recurrence,
	}, *tier)
	if err != nil {
		return nil, err // field-scoped ValidationError passes through untouched
	}

	if err := c.orders.Create(ctx, o); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return o, nil
}

func (c *orderCommandsImpl) CreateMealOrder(ctx context.Context, p CreateMealOrderParams) (*order.Order, error) {
	event, err := c.catalog.MealEventByID(ctx, p.MealEventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrOrderNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := c.ensureChefAccepting(ctx, event.ChefID); err != nil {
		return nil, err
	}

	o, err := c.factory.NewMealOrder(p.CustomerID, *event, p.Quantity)
	if err != nil {
		return nil, err
	}

	if err := c.orders.Create(ctx, o); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return o, nil
}

// Cancel performs a single customer/chef/system-initiated cancellation. When
// the order holds a live checkout session the session is expired at the
// processor so it cannot complete into a payment later; the status-guarded
// update makes a cancel that loses a race against a confirmation fail with a
// conflict instead of overwriting it.
func (c *orderCommandsImpl) Cancel(ctx context.Context, orderID uuid.UUID, actor order.Actor, reason string) (*order.Order, error) {
	o, err := c.orders.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrOrderNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	loadedStatus := o.Status()
	invalidate, err := o.Cancel(actor, reason, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrOrderImmutable)
	}

	if err := c.orders.Update(ctx, o, loadedStatus); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, errs.ErrConcurrentUpdate)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if invalidate && o.PaymentSessionID() != nil {
		// Best effort: the status gate already protects against a late
		// confirmation even if this call fails.
		if err := c.gateway.ExpireSession(ctx, *o.PaymentSessionID()); err != nil {
			c.logger.Warn("failed to expire checkout session after cancel",
				"order_id", orderID, "error", err)
		}
	}
	return o, nil
}

// ConfirmBySession is the webhook path: the processor tells us a session
// completed, we resolve it to an order and confirm, but only if the order is
// still awaiting payment. A session that resolves after a cancel is ignored.
func (c *orderCommandsImpl) ConfirmBySession(ctx context.Context, sessionID, evidence string) error {
	o, err := c.orders.FindBySessionID(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrUnknownPaymentSession)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if o.Status() == order.StatusConfirmed {
		return nil // webhook redelivery; already done
	}

	loadedStatus := o.Status()
	if err := o.MarkConfirmed(evidence, c.clock.Now()); err != nil {
		return errs.Mark(err, errs.ErrOrderNotPayable)
	}

	if err := c.orders.Update(ctx, o, loadedStatus); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			// A cancel landed between our read and write. It wins.
			return errs.Mark(err, errs.ErrOrderNotPayable)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *orderCommandsImpl) Refund(ctx context.Context, orderID uuid.UUID, amountCents int64) (*RefundResult, error) {
	o, err := c.orders.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrOrderNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if o.PaymentSessionID() == nil {
		return nil, errs.Mark(errs.New("order has no payment session"), errs.ErrOrderNotRefundable)
	}

	loadedStatus := o.Status()
	if err := o.Refund(amountCents, c.clock.Now()); err != nil {
		return nil, err // sentinel from the entity, handler maps it
	}

	receipt, err := c.gateway.Refund(ctx, *o.PaymentSessionID(), amountCents)
	if err != nil {
		return nil, err // already marked ErrRefundFailed by the gateway
	}

	if err := c.orders.Update(ctx, o, loadedStatus); err != nil {
		// Money moved but the row didn't: log loudly, surface the failure.
		c.logger.Error("refund captured at processor but order update failed",
			"order_id", orderID, "receipt_id", receipt.ReceiptID, "error", err)
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &RefundResult{Order: o, ReceiptID: receipt.ReceiptID}, nil
}

func (c *orderCommandsImpl) Complete(ctx context.Context, orderID uuid.UUID) (*order.Order, error) {
	o, err := c.orders.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrOrderNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	loadedStatus := o.Status()
	if err := o.Complete(c.clock.Now()); err != nil {
		return nil, errs.Mark(err, errs.ErrOrderImmutable)
	}

	if err := c.orders.Update(ctx, o, loadedStatus); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, errs.ErrConcurrentUpdate)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return o, nil
}
