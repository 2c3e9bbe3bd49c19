package commands

import (
	"context"
	"log/slog"
	"sync"

	"github.com/performlikemj/neighborhood-united-sub004/internal/domain/order"
	"github.com/performlikemj/neighborhood-united-sub004/internal/infra"
	"github.com/performlikemj/neighborhood-united-sub004/internal/infra/jobs"
	"github.com/performlikemj/neighborhood-united-sub004/internal/pkg/clock"
	"github.com/performlikemj/neighborhood-united-sub004/internal/pkg/config"
	"github.com/performlikemj/neighborhood-united-sub004/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type BreakCommands interface {
	// StartBreak flags the chef and kicks off the cancellation/refund
	// cascade as a background job. The returned job id is polled via
	// JobResult; the initiating request never blocks on the cascade.
	StartBreak(ctx context.Context, chefID uuid.UUID, reason string) (uuid.UUID, error)
	EndBreak(ctx context.Context, chefID uuid.UUID) error
	JobResult(ctx context.Context, jobID uuid.UUID) (*jobs.JobRecord, error)
}

type breakCommandsImpl struct {
	orders   OrderRepository
	chefs    ChefRepository
	gateway  PaymentGateway
	jobStore BreakJobStore
	clock    clock.Clock
	cfg      config.CascadeConfig
	logger   *slog.Logger

	wg sync.WaitGroup // tracks in-flight cascades for clean shutdown
}

func NewBreakCommands(
	orders OrderRepository,
	chefs ChefRepository,
	gateway PaymentGateway,
	jobStore BreakJobStore,
	clk clock.Clock,
	cfg config.CascadeConfig,
	logger *slog.Logger,
) BreakCommands {
	return &breakCommandsImpl{
		orders:   orders,
		chefs:    chefs,
		gateway:  gateway,
		jobStore: jobStore,
		clock:    clk,
		cfg:      cfg,
		logger:   logger,
	}
}

func (b *breakCommandsImpl) StartBreak(ctx context.Context, chefID uuid.UUID, reason string) (uuid.UUID, error) {
	c, err := b.chefs.FindByID(ctx, chefID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.Mark(err, errs.ErrChefNotFound)
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	now := b.clock.Now()
	c.StartBreak(reason, now)
	if err := b.chefs.SaveBreakState(ctx, c); err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	affected, err := b.orders.ListUpcomingByChef(ctx, chefID, now)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	rec := jobs.JobRecord{
		ID:        uuid.New(),
		ChefID:    chefID,
		Status:    jobs.JobRunning,
		StartedAt: now,
	}
	if err := b.jobStore.Put(ctx, rec); err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Detach from the request context: the cascade outlives the HTTP call.
	jobCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.cfg.JobExpiry)
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		defer cancel()
		result := b.runCascade(jobCtx, affected, reason)

		finished := b.clock.Now()
		rec.Status = jobs.JobCompleted
		rec.Result = result
		rec.FinishedAt = &finished
		if err := b.jobStore.Put(jobCtx, rec); err != nil {
			b.logger.Error("failed to persist cascade result", "job_id", rec.ID, "error", err)
		}
		b.logger.Info("break cascade finished",
			"job_id", rec.ID, "chef_id", chefID,
			"cancelled", result.CancelledCount,
			"refunds_processed", result.RefundsProcessed,
			"refunds_failed", result.RefundsFailed,
			"errors", len(result.PerOrderErrors))
	}()

	return rec.ID, nil
}

// runCascade fans out over the affected orders with a bounded worker group.
// Every order is attempted independently: one failure never aborts the
// siblings, and cancellation mid-run leaves already-processed orders in their
// terminal state with the aggregate reporting progress so far.
func (b *breakCommandsImpl) runCascade(ctx context.Context, affected []*order.Order, reason string) *jobs.CascadeResult {
	var mu sync.Mutex
	result := &jobs.CascadeResult{PerOrderErrors: []jobs.PerOrderError{}}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.cfg.Workers)

	for _, o := range affected {
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil // aborted; leave remaining orders untouched
			}
			outcome := b.cancelAndRefund(gctx, o, reason)

			mu.Lock()
			defer mu.Unlock()
			if outcome.cancelErr != nil {
				result.PerOrderErrors = append(result.PerOrderErrors, jobs.PerOrderError{
					OrderID: o.ID(), Stage: "cancel", Message: outcome.cancelErr.Error(),
				})
				return nil
			}
			result.CancelledCount++
			if !outcome.hadCapture {
				return nil
			}
			if outcome.refundErr != nil {
				result.RefundsFailed++
				result.PerOrderErrors = append(result.PerOrderErrors, jobs.PerOrderError{
					OrderID: o.ID(), Stage: "refund", Message: outcome.refundErr.Error(),
				})
			} else {
				result.RefundsProcessed++
			}
			return nil
		})
	}
	_ = g.Wait()

	return result
}

type cascadeOutcome struct {
	hadCapture bool
	cancelErr  error
	refundErr  error
}

func (b *breakCommandsImpl) cancelAndRefund(ctx context.Context, o *order.Order, reason string) cascadeOutcome {
	out := cascadeOutcome{hadCapture: o.HasCapturedPayment()}

	loadedStatus := o.Status()
	invalidate, err := o.Cancel(order.ActorSystem, reason, b.clock.Now())
	if err != nil {
		out.cancelErr = err
		return out
	}
	if err := b.orders.Update(ctx, o, loadedStatus); err != nil {
		out.cancelErr = err
		return out
	}
	if invalidate && o.PaymentSessionID() != nil {
		if err := b.gateway.ExpireSession(ctx, *o.PaymentSessionID()); err != nil {
			b.logger.Warn("failed to expire session during cascade",
				"order_id", o.ID(), "error", err)
		}
	}

	if !out.hadCapture {
		return out
	}

	amount := o.OutstandingCents()
	if o.PaymentSessionID() == nil {
		out.refundErr = errs.New("captured order has no payment session")
		return out
	}
	if _, err := b.gateway.Refund(ctx, *o.PaymentSessionID(), amount); err != nil {
		out.refundErr = err
		return out
	}
	if err := o.Refund(amount, b.clock.Now()); err != nil {
		out.refundErr = err
		return out
	}
	if err := b.orders.Update(ctx, o, order.StatusCancelled); err != nil {
		out.refundErr = err
	}
	return out
}

// EndBreak clears the flag so new bookings are possible again. Nothing is
// un-cancelled.
func (b *breakCommandsImpl) EndBreak(ctx context.Context, chefID uuid.UUID) error {
	c, err := b.chefs.FindByID(ctx, chefID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrChefNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	c.EndBreak()
	if err := b.chefs.SaveBreakState(ctx, c); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (b *breakCommandsImpl) JobResult(ctx context.Context, jobID uuid.UUID) (*jobs.JobRecord, error) {
	rec, err := b.jobStore.Get(ctx, jobID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrBreakJobNotFound)
	}
	return rec, nil
}

// WaitForCascades blocks until all in-flight cascades finish. Used by tests
// and shutdown hooks.
func (b *breakCommandsImpl) WaitForCascades() {
	b.wg.Wait()
}
