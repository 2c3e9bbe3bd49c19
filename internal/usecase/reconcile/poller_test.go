//go:build unit

package reconcile_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/performlikemj/neighborhood-united-sub004/internal/domain/order"
	"github.com/performlikemj/neighborhood-united-sub004/internal/infra/registry"
	"github.com/performlikemj/neighborhood-united-sub004/internal/pkg/clock"
	"github.com/performlikemj/neighborhood-united-sub004/internal/pkg/config"
	"github.com/performlikemj/neighborhood-united-sub004/internal/pkg/errs"
	"github.com/performlikemj/neighborhood-united-sub004/internal/usecase/reconcile"
	reconcilemock "github.com/performlikemj/neighborhood-united-sub004/tests/mock/reconcile"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const deviceID = "device-abc"

type pollerFixture struct {
	ctrl     *gomock.Controller
	source   *reconcilemock.MockStatusSource
	registry *reconcilemock.MockRegistry
	clock    *clock.MockClock
	poller   *reconcile.Poller
}

func newPollerFixture(t *testing.T, maxAttempts int) *pollerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &pollerFixture{
		ctrl:     ctrl,
		source:   reconcilemock.NewMockStatusSource(ctrl),
		registry: reconcilemock.NewMockRegistry(ctrl),
		clock:    clock.NewMockClock(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)),
	}
	f.poller = reconcile.NewPoller(
		f.source, f.registry, f.clock,
		config.PollerConfig{MaxAttempts: maxAttempts, Interval: 3 * time.Second},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return f
}

func TestVerifyOrder(t *testing.T) {
	orderID := uuid.New()

	t.Run("confirmed on the first attempt", func(t *testing.T) {
		f := newPollerFixture(t, 20)
		f.source.EXPECT().FetchStatus(gomock.Any(), orderID).Return(order.StatusConfirmed, nil)
		f.registry.EXPECT().Forget(gomock.Any(), deviceID, orderID).Return(nil)

		outcome, err := f.poller.VerifyOrder(context.Background(), deviceID, orderID)

		require.NoError(t, err)
		assert.Equal(t, reconcile.OutcomeConfirmed, outcome)
		assert.Equal(t, 0, f.clock.AfterCalls())
	})

	t.Run("confirmed after several payable polls", func(t *testing.T) {
		f := newPollerFixture(t, 20)
		f.source.EXPECT().FetchStatus(gomock.Any(), orderID).Return(order.StatusAwaitingPayment, nil).Times(3)
		f.source.EXPECT().FetchStatus(gomock.Any(), orderID).Return(order.StatusConfirmed, nil)
		f.registry.EXPECT().Forget(gomock.Any(), deviceID, orderID).Return(nil)

		outcome, err := f.poller.VerifyOrder(context.Background(), deviceID, orderID)

		require.NoError(t, err)
		assert.Equal(t, reconcile.OutcomeConfirmed, outcome)
		assert.Equal(t, 3, f.clock.AfterCalls(), "one sleep per unresolved attempt")
	})

	t.Run("completed counts as confirmed", func(t *testing.T) {
		f := newPollerFixture(t, 20)
		f.source.EXPECT().FetchStatus(gomock.Any(), orderID).Return(order.StatusCompleted, nil)
		f.registry.EXPECT().Forget(gomock.Any(), deviceID, orderID).Return(nil)

		outcome, err := f.poller.VerifyOrder(context.Background(), deviceID, orderID)

		require.NoError(t, err)
		assert.Equal(t, reconcile.OutcomeConfirmed, outcome)
	})

	t.Run("cancelled is terminal and never success", func(t *testing.T) {
		f := newPollerFixture(t, 20)
		f.source.EXPECT().FetchStatus(gomock.Any(), orderID).Return(order.StatusAwaitingPayment, nil)
		f.source.EXPECT().FetchStatus(gomock.Any(), orderID).Return(order.StatusCancelled, nil)
		f.registry.EXPECT().Forget(gomock.Any(), deviceID, orderID).Return(nil)

		outcome, err := f.poller.VerifyOrder(context.Background(), deviceID, orderID)

		require.NoError(t, err)
		assert.Equal(t, reconcile.OutcomeCancelled, outcome)
	})

	t.Run("order vanished mid-poll stops immediately", func(t *testing.T) {
		f := newPollerFixture(t, 20)
		notFound := errs.Mark(errs.New("order row gone"), errs.ErrOrderNotFound)
		f.source.EXPECT().FetchStatus(gomock.Any(), orderID).Return(order.StatusAwaitingPayment, nil).Times(2)
		f.source.EXPECT().FetchStatus(gomock.Any(), orderID).Return(order.Status(""), notFound)
		f.registry.EXPECT().Forget(gomock.Any(), deviceID, orderID).Return(nil)

		outcome, err := f.poller.VerifyOrder(context.Background(), deviceID, orderID)

		require.NoError(t, err)
		assert.Equal(t, reconcile.OutcomeNotFound, outcome)
		assert.Equal(t, 2, f.clock.AfterCalls())
	})

	t.Run("transport errors are retried, not terminal", func(t *testing.T) {
		f := newPollerFixture(t, 20)
		f.source.EXPECT().FetchStatus(gomock.Any(), orderID).Return(order.Status(""), errs.New("connection refused")).Times(2)
		f.source.EXPECT().FetchStatus(gomock.Any(), orderID).Return(order.StatusConfirmed, nil)
		f.registry.EXPECT().Forget(gomock.Any(), deviceID, orderID).Return(nil)

		outcome, err := f.poller.VerifyOrder(context.Background(), deviceID, orderID)

		require.NoError(t, err)
		assert.Equal(t, reconcile.OutcomeConfirmed, outcome)
	})

	t.Run("attempt ceiling yields inconclusive and keeps the registry entry", func(t *testing.T) {
		f := newPollerFixture(t, 5)
		f.source.EXPECT().FetchStatus(gomock.Any(), orderID).Return(order.StatusAwaitingPayment, nil).Times(5)
		// No Forget expectation: the entry must survive for a later resume.

		outcome, err := f.poller.VerifyOrder(context.Background(), deviceID, orderID)

		require.NoError(t, err)
		assert.Equal(t, reconcile.OutcomeInconclusive, outcome)
		assert.Equal(t, 4, f.clock.AfterCalls(), "no sleep after the final attempt")
	})

	t.Run("cancellation during the wait returns inconclusive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := reconcilemock.NewMockStatusSource(ctrl)
		reg := reconcilemock.NewMockRegistry(ctrl)
		p := reconcile.NewPoller(
			source, reg, stuckClock{},
			config.PollerConfig{MaxAttempts: 20, Interval: 3 * time.Second},
			slog.New(slog.NewTextHandler(io.Discard, nil)),
		)

		ctx, cancel := context.WithCancel(context.Background())
		source.EXPECT().FetchStatus(gomock.Any(), orderID).DoAndReturn(
			func(context.Context, uuid.UUID) (order.Status, error) {
				cancel()
				return order.StatusAwaitingPayment, nil
			})

		outcome, err := p.VerifyOrder(ctx, deviceID, orderID)

		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, reconcile.OutcomeInconclusive, outcome)
	})
}

func TestResumeAll(t *testing.T) {
	t.Run("empty registry is a no-op", func(t *testing.T) {
		f := newPollerFixture(t, 20)
		f.registry.EXPECT().List(gomock.Any(), deviceID).Return(nil, nil)

		outcomes, err := f.poller.ResumeAll(context.Background(), deviceID)

		require.NoError(t, err)
		assert.Empty(t, outcomes)
	})

	t.Run("verifies every pending order independently", func(t *testing.T) {
		f := newPollerFixture(t, 20)
		confirmedID := uuid.New()
		cancelledID := uuid.New()
		f.registry.EXPECT().List(gomock.Any(), deviceID).Return([]registry.PendingEntry{
			{OrderID: confirmedID}, {OrderID: cancelledID},
		}, nil)
		f.source.EXPECT().FetchStatus(gomock.Any(), confirmedID).Return(order.StatusConfirmed, nil)
		f.source.EXPECT().FetchStatus(gomock.Any(), cancelledID).Return(order.StatusCancelled, nil)
		f.registry.EXPECT().Forget(gomock.Any(), deviceID, confirmedID).Return(nil)
		f.registry.EXPECT().Forget(gomock.Any(), deviceID, cancelledID).Return(nil)

		outcomes, err := f.poller.ResumeAll(context.Background(), deviceID)

		require.NoError(t, err)
		assert.Equal(t, map[uuid.UUID]reconcile.Outcome{
			confirmedID: reconcile.OutcomeConfirmed,
			cancelledID: reconcile.OutcomeCancelled,
		}, outcomes)
	})

	t.Run("list failure surfaces", func(t *testing.T) {
		f := newPollerFixture(t, 20)
		f.registry.EXPECT().List(gomock.Any(), deviceID).Return(nil, errs.New("redis down"))

		_, err := f.poller.ResumeAll(context.Background(), deviceID)

		require.Error(t, err)
	})
}

// stuckClock never fires After, forcing the wait to resolve through ctx.
type stuckClock struct{}

func (stuckClock) Now() time.Time {
	return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
}

func (stuckClock) After(time.Duration) <-chan time.Time {
	return make(chan time.Time)
}
