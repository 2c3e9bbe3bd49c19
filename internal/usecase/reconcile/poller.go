// Package reconcile resolves the gap between "the customer finished the
// external checkout" and "this system knows about it". The webhook is the
// primary confirmation path; this poller is the fallback for delayed webhooks
// and clients that cannot receive pushes.
package reconcile

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/performlikemj/neighborhood-united-sub004/internal/domain/order"
	"github.com/performlikemj/neighborhood-united-sub004/internal/infra/registry"
	"github.com/performlikemj/neighborhood-united-sub004/internal/pkg/clock"
	"github.com/performlikemj/neighborhood-united-sub004/internal/pkg/config"
	"github.com/performlikemj/neighborhood-united-sub004/internal/pkg/errs"

	"github.com/google/uuid"
)

// Outcome distinguishes "definitely resolved" results from the inconclusive
// one. Conflating Cancelled with Inconclusive (or either with Confirmed) is
// the classic bug here: Cancelled means stop, Inconclusive means the user may
// retry verification later.
type Outcome string

const (
	OutcomeConfirmed    Outcome = "confirmed"
	OutcomeCancelled    Outcome = "cancelled"
	OutcomeNotFound     Outcome = "not_found"
	OutcomeInconclusive Outcome = "inconclusive"
)

// StatusSource is the backend authority for order status. Not the payment
// processor: the backend owns the canonical status after reconciling with its
// own webhook.
type StatusSource interface {
	FetchStatus(ctx context.Context, id uuid.UUID) (order.Status, error)
}

type Registry interface {
	Forget(ctx context.Context, deviceID string, orderID uuid.UUID) error
	List(ctx context.Context, deviceID string) ([]registry.PendingEntry, error)
}

type Poller struct {
	source   StatusSource
	registry Registry
	clock    clock.Clock
	cfg      config.PollerConfig
	logger   *slog.Logger
}

func NewPoller(
	source StatusSource,
	reg Registry,
	clk clock.Clock,
	cfg config.PollerConfig,
	logger *slog.Logger,
) *Poller {
	return &Poller{
		source:   source,
		registry: reg,
		clock:    clk,
		cfg:      cfg,
		logger:   logger,
	}
}

// VerifyOrder polls the authority until the order resolves or the attempt
// ceiling is hit.
//
//   - confirmed/completed: success; the order leaves the registry.
//   - any other non-payable status: resolved against us; leaves the registry,
//     never reported as success.
//   - not found: the order no longer exists; leaves the registry immediately.
//   - still payable after the ceiling: inconclusive; the registry entry is
//     kept so a later launch resumes verification.
//
// A transport error on a single attempt is "no new information", not a
// terminal failure. The inter-attempt sleep is cancellable through ctx.
func (p *Poller) VerifyOrder(ctx context.Context, deviceID string, orderID uuid.UUID) (Outcome, error) {
	for attempt := 1; attempt <= p.cfg.MaxAttempts; attempt++ {
		status, err := p.source.FetchStatus(ctx, orderID)
		switch {
		case err == nil:
			if outcome, resolved := p.resolve(ctx, deviceID, orderID, status); resolved {
				return outcome, nil
			}
		case errors.Is(err, errs.ErrOrderNotFound):
			p.forget(ctx, deviceID, orderID)
			return OutcomeNotFound, nil
		default:
			p.logger.Debug("status fetch failed, treating as unchanged",
				"order_id", orderID, "attempt", attempt, "error", err)
		}

		if attempt == p.cfg.MaxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return OutcomeInconclusive, ctx.Err()
		case <-p.clock.After(p.cfg.Interval):
		}
	}
	// Ceiling reached: stop this loop but keep the registry entry so a later
	// launch can resume.
	return OutcomeInconclusive, nil
}

func (p *Poller) resolve(ctx context.Context, deviceID string, orderID uuid.UUID, status order.Status) (Outcome, bool) {
	switch {
	case status == order.StatusConfirmed || status == order.StatusCompleted:
		p.forget(ctx, deviceID, orderID)
		return OutcomeConfirmed, true
	case status.IsPayable():
		return "", false // unchanged; keep polling
	default:
		p.forget(ctx, deviceID, orderID)
		return OutcomeCancelled, true
	}
}

func (p *Poller) forget(ctx context.Context, deviceID string, orderID uuid.UUID) {
	if err := p.registry.Forget(ctx, deviceID, orderID); err != nil {
		p.logger.Warn("failed to deregister pending order", "order_id", orderID, "error", err)
	}
}

// ResumeAll re-verifies every pending order for the device, one independent
// loop per order with no shared mutable state between them. Called on startup
// when the registry is non-empty.
func (p *Poller) ResumeAll(ctx context.Context, deviceID string) (map[uuid.UUID]Outcome, error) {
	entries, err := p.registry.List(ctx, deviceID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list pending orders")
	}
	if len(entries) == 0 {
		return map[uuid.UUID]Outcome{}, nil
	}

	type result struct {
		orderID uuid.UUID
		outcome Outcome
	}

	results := make(chan result, len(entries))
	var wg sync.WaitGroup
	for _, entry := range entries {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcome, err := p.VerifyOrder(ctx, deviceID, entry.OrderID)
			if err != nil {
				outcome = OutcomeInconclusive
			}
			results <- result{orderID: entry.OrderID, outcome: outcome}
		}()
	}
	wg.Wait()
	close(results)

	outcomes := make(map[uuid.UUID]Outcome, len(entries))
	for r := range results {
		outcomes[r.orderID] = r.outcome
	}
	return outcomes, nil
}
