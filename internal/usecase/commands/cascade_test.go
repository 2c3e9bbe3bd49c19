//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/performlikemj/neighborhood-united-sub004/internal/domain/chef"
	"github.com/performlikemj/neighborhood-united-sub004/internal/domain/order"
	"github.com/performlikemj/neighborhood-united-sub004/internal/infra/jobs"
	"github.com/performlikemj/neighborhood-united-sub004/internal/infra/payment"
	"github.com/performlikemj/neighborhood-united-sub004/internal/pkg/clock"
	"github.com/performlikemj/neighborhood-united-sub004/internal/pkg/config"
	"github.com/performlikemj/neighborhood-united-sub004/internal/pkg/errs"
	"github.com/performlikemj/neighborhood-united-sub004/internal/usecase/commands"
	"github.com/performlikemj/neighborhood-united-sub004/tests/common/builder"
	commandsmock "github.com/performlikemj/neighborhood-united-sub004/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type cascadeWaiter interface {
	WaitForCascades()
}

type breakFixture struct {
	ctrl     *gomock.Controller
	orders   *commandsmock.MockOrderRepository
	chefs    *commandsmock.MockChefRepository
	gateway  *commandsmock.MockPaymentGateway
	jobStore *commandsmock.MockBreakJobStore
	clock    *clock.MockClock
	sut      commands.BreakCommands
}

func newBreakFixture(t *testing.T) *breakFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &breakFixture{
		ctrl:     ctrl,
		orders:   commandsmock.NewMockOrderRepository(ctrl),
		chefs:    commandsmock.NewMockChefRepository(ctrl),
		gateway:  commandsmock.NewMockPaymentGateway(ctrl),
		jobStore: commandsmock.NewMockBreakJobStore(ctrl),
		clock:    clock.NewMockClock(testNow),
	}
	f.sut = commands.NewBreakCommands(
		f.orders, f.chefs, f.gateway, f.jobStore, f.clock,
		config.CascadeConfig{Workers: 2, JobTTL: 24 * time.Hour, JobExpiry: time.Minute},
		discardLogger(),
	)
	return f
}

func (f *breakFixture) wait() {
	f.sut.(cascadeWaiter).WaitForCascades()
}

func upcomingOrder(chefID uuid.UUID, status order.Status, sessionID string, captured bool) *order.Order {
	return builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
		b.ChefID = chefID
		b.Status = status
		if sessionID != "" {
			b.SessionID = &sessionID
		}
		if captured {
			b.CapturedCents = b.AmountCents
		}
	}).BuildReconstructed()
}

func TestStartBreak(t *testing.T) {
	chefID := uuid.New()

	t.Run("cancels every upcoming order and refunds the paid ones", func(t *testing.T) {
		f := newBreakFixture(t)
		affected := []*order.Order{
			upcomingOrder(chefID, order.StatusConfirmed, "cs_p1", true),
			upcomingOrder(chefID, order.StatusConfirmed, "cs_p2", true),
			upcomingOrder(chefID, order.StatusConfirmed, "cs_fail", true),
			upcomingOrder(chefID, order.StatusAwaitingPayment, "cs_wait", false),
			upcomingOrder(chefID, order.StatusAwaitingPayment, "", false),
		}

		f.chefs.EXPECT().FindByID(gomock.Any(), chefID).
			Return(chef.ReconstructChef(chefID, false, nil, nil), nil)
		f.chefs.EXPECT().SaveBreakState(gomock.Any(), gomock.Any()).Return(nil)
		f.orders.EXPECT().ListUpcomingByChef(gomock.Any(), chefID, testNow).Return(affected, nil)
		f.orders.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		refundAmount := affected[0].AmountCents()
		f.gateway.EXPECT().Refund(gomock.Any(), "cs_p1", refundAmount).
			Return(&payment.RefundReceipt{ReceiptID: "re_p1", AmountCents: refundAmount}, nil)
		f.gateway.EXPECT().Refund(gomock.Any(), "cs_p2", refundAmount).
			Return(&payment.RefundReceipt{ReceiptID: "re_p2", AmountCents: refundAmount}, nil)
		f.gateway.EXPECT().Refund(gomock.Any(), "cs_fail", refundAmount).
			Return(nil, errs.Mark(errs.New("refund rejected"), errs.ErrRefundFailed))
		f.gateway.EXPECT().ExpireSession(gomock.Any(), "cs_wait").Return(nil)

		var finalRec jobs.JobRecord
		gomock.InOrder(
			f.jobStore.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil),
			f.jobStore.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, rec jobs.JobRecord) error {
					finalRec = rec
					return nil
				}),
		)

		jobID, err := f.sut.StartBreak(context.Background(), chefID, "equipment failure")
		require.NoError(t, err)
		f.wait()

		assert.Equal(t, jobID, finalRec.ID)
		assert.Equal(t, jobs.JobCompleted, finalRec.Status)
		require.NotNil(t, finalRec.Result)
		assert.Equal(t, 5, finalRec.Result.CancelledCount)
		assert.Equal(t, 2, finalRec.Result.RefundsProcessed)
		assert.Equal(t, 1, finalRec.Result.RefundsFailed)
		require.Len(t, finalRec.Result.PerOrderErrors, 1)
		assert.Equal(t, "refund", finalRec.Result.PerOrderErrors[0].Stage)

		for _, o := range affected {
			require.NotNil(t, o.CancelActor())
			assert.Equal(t, order.ActorSystem, *o.CancelActor())
		}
	})

	t.Run("a cancel failure never blocks the siblings", func(t *testing.T) {
		f := newBreakFixture(t)
		stuck := upcomingOrder(chefID, order.StatusConfirmed, "cs_stuck", true)
		clean := upcomingOrder(chefID, order.StatusAwaitingPayment, "", false)

		f.chefs.EXPECT().FindByID(gomock.Any(), chefID).
			Return(chef.ReconstructChef(chefID, false, nil, nil), nil)
		f.chefs.EXPECT().SaveBreakState(gomock.Any(), gomock.Any()).Return(nil)
		f.orders.EXPECT().ListUpcomingByChef(gomock.Any(), chefID, testNow).
			Return([]*order.Order{stuck, clean}, nil)
		f.orders.EXPECT().Update(gomock.Any(), stuck, gomock.Any()).Return(conflictErr())
		f.orders.EXPECT().Update(gomock.Any(), clean, gomock.Any()).Return(nil)
		// No refund expectation for the stuck order: a failed cancel stops
		// its pipeline before money moves.

		var finalRec jobs.JobRecord
		gomock.InOrder(
			f.jobStore.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil),
			f.jobStore.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, rec jobs.JobRecord) error {
					finalRec = rec
					return nil
				}),
		)

		_, err := f.sut.StartBreak(context.Background(), chefID, "moving kitchens")
		require.NoError(t, err)
		f.wait()

		require.NotNil(t, finalRec.Result)
		assert.Equal(t, 1, finalRec.Result.CancelledCount)
		assert.Equal(t, 0, finalRec.Result.RefundsProcessed)
		require.Len(t, finalRec.Result.PerOrderErrors, 1)
		assert.Equal(t, "cancel", finalRec.Result.PerOrderErrors[0].Stage)
		assert.Equal(t, stuck.ID(), finalRec.Result.PerOrderErrors[0].OrderID)
	})

	t.Run("unknown chef", func(t *testing.T) {
		f := newBreakFixture(t)
		f.chefs.EXPECT().FindByID(gomock.Any(), chefID).Return(nil, notFoundErr())

		_, err := f.sut.StartBreak(context.Background(), chefID, "reason")

		require.ErrorIs(t, err, errs.ErrChefNotFound)
	})
}

func TestEndBreak(t *testing.T) {
	t.Run("clears the flag without touching orders", func(t *testing.T) {
		f := newBreakFixture(t)
		chefID := uuid.New()
		reason := "equipment failure"
		since := testNow.Add(-time.Hour)
		c := chef.ReconstructChef(chefID, true, &reason, &since)

		f.chefs.EXPECT().FindByID(gomock.Any(), chefID).Return(c, nil)
		f.chefs.EXPECT().SaveBreakState(gomock.Any(), c).Return(nil)

		require.NoError(t, f.sut.EndBreak(context.Background(), chefID))
		assert.False(t, c.OnBreak())
		assert.Nil(t, c.BreakReason())
	})
}

func TestJobResult(t *testing.T) {
	t.Run("returns the stored record", func(t *testing.T) {
		f := newBreakFixture(t)
		jobID := uuid.New()
		rec := &jobs.JobRecord{ID: jobID, Status: jobs.JobRunning, StartedAt: testNow}
		f.jobStore.EXPECT().Get(gomock.Any(), jobID).Return(rec, nil)

		got, err := f.sut.JobResult(context.Background(), jobID)

		require.NoError(t, err)
		assert.Equal(t, rec, got)
	})

	t.Run("expired or unknown job", func(t *testing.T) {
		f := newBreakFixture(t)
		jobID := uuid.New()
		f.jobStore.EXPECT().Get(gomock.Any(), jobID).Return(nil, jobs.ErrJobNotFound)

		_, err := f.sut.JobResult(context.Background(), jobID)

		require.ErrorIs(t, err, errs.ErrBreakJobNotFound)
	})
}
