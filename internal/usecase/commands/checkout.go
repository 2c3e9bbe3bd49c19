package commands

import (
	"context"
	"log/slog"

	"github.com/performlikemj/neighborhood-united-sub004/internal/domain/order"
	"github.com/performlikemj/neighborhood-united-sub004/internal/infra"
	"github.com/performlikemj/neighborhood-united-sub004/internal/pkg/clock"
	"github.com/performlikemj/neighborhood-united-sub004/internal/pkg/errs"

	"github.com/google/uuid"
)

// CheckoutHandle is what the client needs to hand control to the processor's
// hosted checkout page.
type CheckoutHandle struct {
	SessionID   string
	RedirectURL string
}

type CheckoutCommands interface {
	BeginCheckout(ctx context.Context, orderID uuid.UUID, deviceID string) (*CheckoutHandle, error)
}

type checkoutCommandsImpl struct {
	orders   OrderRepository
	gateway  PaymentGateway
	registry PendingOrderRegistry
	clock    clock.Clock
	logger   *slog.Logger
}

func NewCheckoutCommands(
	orders OrderRepository,
	gateway PaymentGateway,
	registry PendingOrderRegistry,
	clk clock.Clock,
	logger *slog.Logger,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		orders:   orders,
		gateway:  gateway,
		registry: registry,
		clock:    clk,
		logger:   logger,
	}
}

// BeginCheckout moves a payable order into awaiting_payment, obtains a fresh
// processor session, and registers the order as pending so reconciliation can
// resume after the external redirect (possibly after a process restart).
// Re-entry is legal: a retry supersedes any stale session.
func (c *checkoutCommandsImpl) BeginCheckout(ctx context.Context, orderID uuid.UUID, deviceID string) (*CheckoutHandle, error) {
	o, err := c.orders.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrOrderNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	loadedStatus := o.Status()
	staleSession := o.PaymentSessionID()

	now := c.clock.Now()
	if err := o.EnterCheckout(now); err != nil {
		return nil, errs.Mark(err, errs.ErrOrderNotPayable)
	}

	// Persist the transition before talking to the processor: if session
	// creation fails the order sits in awaiting_payment with no session and
	// the caller may simply retry.
	if err := c.orders.Update(ctx, o, loadedStatus); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, errs.ErrOrderNotPayable)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	session, err := c.gateway.CreateCheckoutSession(ctx, o.ID(), o.AmountCents(), o.Currency())
	if err != nil {
		return nil, err // marked ErrCheckoutUnavailable by the gateway
	}

	if err := o.AttachSession(session.SessionID, now); err != nil {
		return nil, errs.Mark(err, errs.ErrOrderNotPayable)
	}
	if err := c.orders.Update(ctx, o, order.StatusAwaitingPayment); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			// Cancelled (or confirmed) between the two writes; the new
			// session must not stay live.
			if expireErr := c.gateway.ExpireSession(ctx, session.SessionID); expireErr != nil {
				c.logger.Warn("failed to expire orphaned checkout session",
					"session_id", session.SessionID, "error", expireErr)
			}
			return nil, errs.Mark(err, errs.ErrOrderNotPayable)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// The superseded session must not be able to complete.
	if staleSession != nil && *staleSession != session.SessionID {
		if err := c.gateway.ExpireSession(ctx, *staleSession); err != nil {
			c.logger.Warn("failed to expire superseded checkout session",
				"session_id", *staleSession, "error", err)
		}
	}

	if err := c.registry.Remember(ctx, deviceID, o.ID(), now); err != nil {
		// The checkout itself succeeded; a registry miss only degrades
		// restart recovery, so log and continue.
		c.logger.Warn("failed to register pending order", "order_id", o.ID(), "error", err)
	}

	return &CheckoutHandle{SessionID: session.SessionID, RedirectURL: session.RedirectURL}, nil
}
