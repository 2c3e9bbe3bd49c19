//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/performlikemj/neighborhood-united-sub004/internal/domain/chef"
	"github.com/performlikemj/neighborhood-united-sub004/internal/domain/order"
	"github.com/performlikemj/neighborhood-united-sub004/internal/infra"
	"github.com/performlikemj/neighborhood-united-sub004/internal/infra/payment"
	"github.com/performlikemj/neighborhood-united-sub004/internal/pkg/clock"
	"github.com/performlikemj/neighborhood-united-sub004/internal/pkg/errs"
	"github.com/performlikemj/neighborhood-united-sub004/internal/usecase/commands"
	"github.com/performlikemj/neighborhood-united-sub004/tests/common/builder"
	commandsmock "github.com/performlikemj/neighborhood-united-sub004/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func conflictErr() error {
	return infra.RepositoryError{Kind: infra.KindConflict}
}

func notFoundErr() error {
	return infra.RepositoryError{Kind: infra.KindNotFound}
}

type orderCommandsFixture struct {
	ctrl    *gomock.Controller
	orders  *commandsmock.MockOrderRepository
	chefs   *commandsmock.MockChefRepository
	catalog *commandsmock.MockCatalogRepository
	gateway *commandsmock.MockPaymentGateway
	clock   *clock.MockClock
	sut     commands.OrderCommands
}

func newOrderCommandsFixture(t *testing.T) *orderCommandsFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &orderCommandsFixture{
		ctrl:    ctrl,
		orders:  commandsmock.NewMockOrderRepository(ctrl),
		chefs:   commandsmock.NewMockChefRepository(ctrl),
		catalog: commandsmock.NewMockCatalogRepository(ctrl),
		gateway: commandsmock.NewMockPaymentGateway(ctrl),
		clock:   clock.NewMockClock(testNow),
	}
	f.sut = commands.NewOrderCommands(
		f.orders, f.chefs, f.catalog, f.gateway,
		order.NewFactory(f.clock), f.clock, discardLogger(),
	)
	return f
}

func (f *orderCommandsFixture) chefAccepting(id uuid.UUID) {
	f.chefs.EXPECT().FindByID(gomock.Any(), id).
		Return(chef.ReconstructChef(id, false, nil, nil), nil)
}

func (f *orderCommandsFixture) chefOnBreak(id uuid.UUID) {
	reason := "stocktake"
	since := testNow.Add(-time.Hour)
	f.chefs.EXPECT().FindByID(gomock.Any(), id).
		Return(chef.ReconstructChef(id, true, &reason, &since), nil)
}

func TestCreateServiceOrder(t *testing.T) {
	t.Run("creates a draft order from the tier snapshot", func(t *testing.T) {
		f := newOrderCommandsFixture(t)
		b := builder.NewOrderBuilder()
		tier := b.BuildTierSpec()

		f.chefAccepting(b.ChefID)
		f.catalog.EXPECT().TierByID(gomock.Any(), b.TierID).Return(&tier, nil)
		f.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		o, err := f.sut.CreateServiceOrder(context.Background(), commands.CreateServiceOrderParams{
			CustomerID:        b.CustomerID,
			ChefID:            b.ChefID,
			TierID:            b.TierID,
			HouseholdSize:     b.HouseholdSize,
			ScheduleDate:      b.ScheduleDate,
			ScheduleStartTime: b.ScheduleStartTime,
		})

		require.NoError(t, err)
		assert.Equal(t, order.StatusDraft, o.Status())
		assert.Equal(t, b.AmountCents, o.AmountCents())
	})

	t.Run("unknown tier maps to order not found", func(t *testing.T) {
		f := newOrderCommandsFixture(t)
		chefID := uuid.New()
		tierID := uuid.New()
		f.chefAccepting(chefID)
		f.catalog.EXPECT().TierByID(gomock.Any(), tierID).Return(nil, notFoundErr())

		_, err := f.sut.CreateServiceOrder(context.Background(), commands.CreateServiceOrderParams{ChefID: chefID, TierID: tierID})

		require.ErrorIs(t, err, errs.ErrOrderNotFound)
	})

	t.Run("a chef on break does not take new bookings", func(t *testing.T) {
		f := newOrderCommandsFixture(t)
		b := builder.NewOrderBuilder()
		f.chefOnBreak(b.ChefID)

		_, err := f.sut.CreateServiceOrder(context.Background(), commands.CreateServiceOrderParams{
			CustomerID:        b.CustomerID,
			ChefID:            b.ChefID,
			TierID:            b.TierID,
			HouseholdSize:     b.HouseholdSize,
			ScheduleDate:      b.ScheduleDate,
			ScheduleStartTime: b.ScheduleStartTime,
		})

		require.ErrorIs(t, err, errs.ErrChefUnavailable)
	})

	t.Run("unknown chef maps to chef not found", func(t *testing.T) {
		f := newOrderCommandsFixture(t)
		chefID := uuid.New()
		f.chefs.EXPECT().FindByID(gomock.Any(), chefID).Return(nil, notFoundErr())

		_, err := f.sut.CreateServiceOrder(context.Background(), commands.CreateServiceOrderParams{ChefID: chefID, TierID: uuid.New()})

		require.ErrorIs(t, err, errs.ErrChefNotFound)
	})

	t.Run("validation errors pass through with the field name", func(t *testing.T) {
		f := newOrderCommandsFixture(t)
		b := builder.NewOrderBuilder()
		tier := b.BuildTierSpec()
		f.chefAccepting(b.ChefID)
		f.catalog.EXPECT().TierByID(gomock.Any(), b.TierID).Return(&tier, nil)

		_, err := f.sut.CreateServiceOrder(context.Background(), commands.CreateServiceOrderParams{
			CustomerID:        b.CustomerID,
			ChefID:            b.ChefID,
			TierID:            b.TierID,
			HouseholdSize:     99,
			ScheduleDate:      b.ScheduleDate,
			ScheduleStartTime: b.ScheduleStartTime,
		})

		var verr *order.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "householdSize", verr.Field)
	})
}

func TestCreateMealOrder(t *testing.T) {
	t.Run("quantity multiplies the event price", func(t *testing.T) {
		f := newOrderCommandsFixture(t)
		event := order.MealEventSpec{
			ID:         uuid.New(),
			ChefID:     uuid.New(),
			PriceCents: 1800,
			Currency:   "usd",
			EventDate:  testNow.AddDate(0, 0, 3),
		}
		f.catalog.EXPECT().MealEventByID(gomock.Any(), event.ID).Return(&event, nil)
		f.chefAccepting(event.ChefID)
		f.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		o, err := f.sut.CreateMealOrder(context.Background(), commands.CreateMealOrderParams{
			CustomerID:  uuid.New(),
			MealEventID: event.ID,
			Quantity:    3,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(5400), o.AmountCents())
		assert.Equal(t, order.KindMeal, o.Kind())
	})

	t.Run("an event whose chef is on break cannot be booked", func(t *testing.T) {
		f := newOrderCommandsFixture(t)
		event := order.MealEventSpec{
			ID:         uuid.New(),
			ChefID:     uuid.New(),
			PriceCents: 1800,
			Currency:   "usd",
			EventDate:  testNow.AddDate(0, 0, 3),
		}
		f.catalog.EXPECT().MealEventByID(gomock.Any(), event.ID).Return(&event, nil)
		f.chefOnBreak(event.ChefID)

		_, err := f.sut.CreateMealOrder(context.Background(), commands.CreateMealOrderParams{
			CustomerID:  uuid.New(),
			MealEventID: event.ID,
			Quantity:    1,
		})

		require.ErrorIs(t, err, errs.ErrChefUnavailable)
	})
}

func TestCancel(t *testing.T) {
	t.Run("cancels and expires the live checkout session", func(t *testing.T) {
		f := newOrderCommandsFixture(t)
		o := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Status = order.StatusAwaitingPayment
			sid := "cs_live_1"
			b.SessionID = &sid
		}).BuildReconstructed()

		f.orders.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)
		f.orders.EXPECT().Update(gomock.Any(), o, order.StatusAwaitingPayment).Return(nil)
		f.gateway.EXPECT().ExpireSession(gomock.Any(), "cs_live_1").Return(nil)

		got, err := f.sut.Cancel(context.Background(), o.ID(), order.ActorCustomer, "changed my mind")

		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, got.Status())
		require.NotNil(t, got.CancelActor())
		assert.Equal(t, order.ActorCustomer, *got.CancelActor())
	})

	t.Run("session expiry failure does not fail the cancel", func(t *testing.T) {
		f := newOrderCommandsFixture(t)
		o := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Status = order.StatusAwaitingPayment
			sid := "cs_live_2"
			b.SessionID = &sid
		}).BuildReconstructed()

		f.orders.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)
		f.orders.EXPECT().Update(gomock.Any(), o, order.StatusAwaitingPayment).Return(nil)
		f.gateway.EXPECT().ExpireSession(gomock.Any(), "cs_live_2").Return(errs.New("processor down"))

		_, err := f.sut.Cancel(context.Background(), o.ID(), order.ActorCustomer, "reason")

		require.NoError(t, err)
	})

	t.Run("losing the race against a confirmation reports a conflict", func(t *testing.T) {
		f := newOrderCommandsFixture(t)
		o := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Status = order.StatusAwaitingPayment
		}).BuildReconstructed()

		f.orders.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)
		f.orders.EXPECT().Update(gomock.Any(), o, order.StatusAwaitingPayment).Return(conflictErr())

		_, err := f.sut.Cancel(context.Background(), o.ID(), order.ActorCustomer, "reason")

		require.ErrorIs(t, err, errs.ErrConcurrentUpdate)
	})

	t.Run("terminal orders are immutable", func(t *testing.T) {
		f := newOrderCommandsFixture(t)
		o := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Status = order.StatusCompleted
		}).BuildReconstructed()

		f.orders.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)

		_, err := f.sut.Cancel(context.Background(), o.ID(), order.ActorChef, "reason")

		require.ErrorIs(t, err, errs.ErrOrderImmutable)
	})
}

func TestConfirmBySession(t *testing.T) {
	const sessionID = "cs_webhook_1"

	awaitingWithSession := func() *order.Order {
		return builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Status = order.StatusAwaitingPayment
			sid := sessionID
			b.SessionID = &sid
		}).BuildReconstructed()
	}

	t.Run("confirms an awaiting order", func(t *testing.T) {
		f := newOrderCommandsFixture(t)
		o := awaitingWithSession()
		f.orders.EXPECT().FindBySessionID(gomock.Any(), sessionID).Return(o, nil)
		f.orders.EXPECT().Update(gomock.Any(), o, order.StatusAwaitingPayment).Return(nil)

		err := f.sut.ConfirmBySession(context.Background(), sessionID, "evt_123")

		require.NoError(t, err)
		assert.Equal(t, order.StatusConfirmed, o.Status())
		assert.Equal(t, o.AmountCents(), o.CapturedCents())
	})

	t.Run("redelivery of an already confirmed session is a no-op", func(t *testing.T) {
		f := newOrderCommandsFixture(t)
		o := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Status = order.StatusConfirmed
			sid := sessionID
			b.SessionID = &sid
			b.CapturedCents = b.AmountCents
		}).BuildReconstructed()
		f.orders.EXPECT().FindBySessionID(gomock.Any(), sessionID).Return(o, nil)
		// No Update expectation: nothing to persist.

		require.NoError(t, f.sut.ConfirmBySession(context.Background(), sessionID, "evt_123"))
	})

	t.Run("unknown session is rejected", func(t *testing.T) {
		f := newOrderCommandsFixture(t)
		f.orders.EXPECT().FindBySessionID(gomock.Any(), "cs_bogus").Return(nil, notFoundErr())

		err := f.sut.ConfirmBySession(context.Background(), "cs_bogus", "evt_123")

		require.ErrorIs(t, err, errs.ErrUnknownPaymentSession)
	})

	t.Run("confirmation arriving after a cancel loses", func(t *testing.T) {
		f := newOrderCommandsFixture(t)
		o := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Status = order.StatusCancelled
			sid := sessionID
			b.SessionID = &sid
		}).BuildReconstructed()
		f.orders.EXPECT().FindBySessionID(gomock.Any(), sessionID).Return(o, nil)

		err := f.sut.ConfirmBySession(context.Background(), sessionID, "evt_123")

		require.ErrorIs(t, err, errs.ErrOrderNotPayable)
		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("cancel landing between read and write wins", func(t *testing.T) {
		f := newOrderCommandsFixture(t)
		o := awaitingWithSession()
		f.orders.EXPECT().FindBySessionID(gomock.Any(), sessionID).Return(o, nil)
		f.orders.EXPECT().Update(gomock.Any(), o, order.StatusAwaitingPayment).Return(conflictErr())

		err := f.sut.ConfirmBySession(context.Background(), sessionID, "evt_123")

		require.ErrorIs(t, err, errs.ErrOrderNotPayable)
	})
}

func TestRefund(t *testing.T) {
	const sessionID = "cs_paid_1"

	confirmedPaid := func() *order.Order {
		return builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Status = order.StatusConfirmed
			sid := sessionID
			b.SessionID = &sid
			b.CapturedCents = b.AmountCents
		}).BuildReconstructed()
	}

	t.Run("full refund moves the order to refunded", func(t *testing.T) {
		f := newOrderCommandsFixture(t)
		o := confirmedPaid()
		f.orders.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)
		f.gateway.EXPECT().Refund(gomock.Any(), sessionID, o.CapturedCents()).
			Return(&payment.RefundReceipt{ReceiptID: "re_1", AmountCents: o.CapturedCents()}, nil)
		f.orders.EXPECT().Update(gomock.Any(), o, order.StatusConfirmed).Return(nil)

		res, err := f.sut.Refund(context.Background(), o.ID(), o.CapturedCents())

		require.NoError(t, err)
		assert.Equal(t, "re_1", res.ReceiptID)
		assert.Equal(t, order.StatusRefunded, res.Order.Status())
	})

	t.Run("partial refund keeps the order confirmed with an audit note", func(t *testing.T) {
		f := newOrderCommandsFixture(t)
		o := confirmedPaid()
		f.orders.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)
		f.gateway.EXPECT().Refund(gomock.Any(), sessionID, int64(500)).
			Return(&payment.RefundReceipt{ReceiptID: "re_2", AmountCents: 500}, nil)
		f.orders.EXPECT().Update(gomock.Any(), o, order.StatusConfirmed).Return(nil)

		res, err := f.sut.Refund(context.Background(), o.ID(), 500)

		require.NoError(t, err)
		assert.Equal(t, order.StatusConfirmed, res.Order.Status())
		assert.Equal(t, int64(500), res.Order.RefundedCents())
		assert.NotEmpty(t, res.Order.AuditNotes())
	})

	t.Run("amount above the capture is rejected before any money moves", func(t *testing.T) {
		f := newOrderCommandsFixture(t)
		o := confirmedPaid()
		f.orders.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)
		// No gateway expectation: the entity rejects first.

		_, err := f.sut.Refund(context.Background(), o.ID(), o.CapturedCents()+1)

		require.ErrorIs(t, err, order.ErrRefundExceeds)
	})

	t.Run("order without a session is not refundable", func(t *testing.T) {
		f := newOrderCommandsFixture(t)
		o := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Status = order.StatusConfirmed
			b.CapturedCents = b.AmountCents
		}).BuildReconstructed()
		f.orders.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)

		_, err := f.sut.Refund(context.Background(), o.ID(), 500)

		require.ErrorIs(t, err, errs.ErrOrderNotRefundable)
	})

	t.Run("processor rejection surfaces without touching the row", func(t *testing.T) {
		f := newOrderCommandsFixture(t)
		o := confirmedPaid()
		f.orders.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)
		f.gateway.EXPECT().Refund(gomock.Any(), sessionID, int64(500)).
			Return(nil, errs.Mark(errs.New("refund rejected"), errs.ErrRefundFailed))

		_, err := f.sut.Refund(context.Background(), o.ID(), 500)

		require.ErrorIs(t, err, errs.ErrRefundFailed)
	})
}

func TestComplete(t *testing.T) {
	t.Run("completes a confirmed order", func(t *testing.T) {
		f := newOrderCommandsFixture(t)
		o := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Status = order.StatusConfirmed
			b.CapturedCents = b.AmountCents
		}).BuildReconstructed()
		f.orders.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)
		f.orders.EXPECT().Update(gomock.Any(), o, order.StatusConfirmed).Return(nil)

		got, err := f.sut.Complete(context.Background(), o.ID())

		require.NoError(t, err)
		assert.Equal(t, order.StatusCompleted, got.Status())
	})

	t.Run("anything else is immutable", func(t *testing.T) {
		f := newOrderCommandsFixture(t)
		o := builder.NewOrderBuilder().BuildReconstructed()
		f.orders.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)

		_, err := f.sut.Complete(context.Background(), o.ID())

		require.ErrorIs(t, err, errs.ErrOrderImmutable)
	})
}
