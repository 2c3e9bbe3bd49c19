package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/performlikemj/neighborhood-united-sub004/internal/domain/order"
	"github.com/performlikemj/neighborhood-united-sub004/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const orderColumns = `
	id, kind, status, customer_id, chef_id,
	offering_id, tier_id, meal_event_id,
	household_size, amount_cents, currency,
	is_recurring, recurrence_interval,
	schedule_date, schedule_start_time,
	payment_session_id, confirm_evidence,
	captured_cents, refunded_cents,
	cancel_actor, cancel_reason, audit_notes, delayed,
	created_at, updated_at`

type OrderRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

func NewOrderRepository(db *pgxpool.Pool, logger *slog.Logger) *OrderRepository {
	return &OrderRepository{db: db, logger: logger}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO orders (`+orderColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25)`,
		o.ID(), o.Kind(), o.Status(), o.CustomerID(), o.ChefID(),
		o.OfferingID(), o.TierID(), o.MealEventID(),
		o.HouseholdSize(), o.AmountCents(), o.Currency(),
		o.IsRecurring(), o.Recurrence(),
		o.ScheduleDate(), o.ScheduleStartTime(),
		o.PaymentSessionID(), o.ConfirmEvidence(),
		o.CapturedCents(), o.RefundedCents(),
		o.CancelActor(), o.CancelReason(), o.AuditNotes(), o.Delayed(),
		o.CreatedAt(), o.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to insert order", err)
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	row := r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	return r.scanOrder(row)
}

// FindBySessionID resolves a webhook's session reference back to its order.
func (r *OrderRepository) FindBySessionID(ctx context.Context, sessionID string) (*order.Order, error) {
	row := r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE payment_session_id = $1`, sessionID)
	return r.scanOrder(row)
}

// Update persists the entity with an optimistic status guard. fromStatuses is
// the set of statuses the caller loaded the order in; if a concurrent
// transition moved the row out of that set, zero rows match and the caller
// gets a CONFLICT instead of silently overwriting the winner.
func (r *OrderRepository) Update(ctx context.Context, o *order.Order, fromStatuses ...order.Status) error {
	guards := make([]string, len(fromStatuses))
	for i, s := range fromStatuses {
		guards[i] = s.String()
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE orders SET
			status = $2,
			payment_session_id = $3,
			confirm_evidence = $4,
			captured_cents = $5,
			refunded_cents = $6,
			cancel_actor = $7,
			cancel_reason = $8,
			audit_notes = $9,
			delayed = $10,
			updated_at = $11
		WHERE id = $1 AND status = ANY($12)`,
		o.ID(), o.Status(),
		o.PaymentSessionID(), o.ConfirmEvidence(),
		o.CapturedCents(), o.RefundedCents(),
		o.CancelActor(), o.CancelReason(), o.AuditNotes(), o.Delayed(),
		o.UpdatedAt(), guards,
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to update order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindConflict, "order status changed concurrently", nil)
	}
	return nil
}

func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*order.Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE customer_id = $1
		ORDER BY created_at DESC`, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list customer orders", err)
	}
	defer rows.Close()
	return r.collectOrders(rows)
}

// ListUpcomingByChef returns the chef's future orders still holding (or
// awaiting) payment. This is the cascade's working set.
func (r *OrderRepository) ListUpcomingByChef(ctx context.Context, chefID uuid.UUID, after time.Time) ([]*order.Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE chef_id = $1
		  AND status = ANY($2)
		  AND schedule_date > $3
		ORDER BY schedule_date ASC`,
		chefID,
		[]string{order.StatusConfirmed.String(), order.StatusAwaitingPayment.String()},
		after,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list upcoming chef orders", err)
	}
	defer rows.Close()
	return r.collectOrders(rows)
}

func (r *OrderRepository) collectOrders(rows pgx.Rows) ([]*order.Order, error) {
	var out []*order.Order
	for rows.Next() {
		o, err := r.scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read order rows", err)
	}
	return out, nil
}

func (r *OrderRepository) scanOrder(row pgx.Row) (*order.Order, error) {
	var id, customerID, chefID uuid.UUID
	var offeringID, tierID, mealEventID *uuid.UUID
	var kind, status, currency string
	var householdSize int
	var amountCents, captured, refunded int64
	var isRecurring, delayed bool
	var recurrence, scheduleStartTime *string
	var scheduleDate *time.Time
	var sessionID, evidence *string
	var cancelActor, cancelReason *string
	var auditNotes []string
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&id, &kind, &status, &customerID, &chefID,
		&offeringID, &tierID, &mealEventID,
		&householdSize, &amountCents, &currency,
		&isRecurring, &recurrence,
		&scheduleDate, &scheduleStartTime,
		&sessionID, &evidence,
		&captured, &refunded,
		&cancelActor, &cancelReason, &auditNotes, &delayed,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "order not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan order", err)
	}

	parsedStatus, err := order.ParseStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "stored order has unknown status", err)
	}

	var rec *order.RecurrenceInterval
	if recurrence != nil {
		v := order.RecurrenceInterval(*recurrence)
		rec = &v
	}
	var actor *order.Actor
	if cancelActor != nil {
		a := order.Actor(*cancelActor)
		actor = &a
	}

	return order.ReconstructOrder(
		id, order.Kind(kind), parsedStatus,
		customerID, chefID,
		offeringID, tierID, mealEventID,
		householdSize, amountCents, currency,
		isRecurring, rec,
		scheduleDate, scheduleStartTime,
		sessionID, evidence,
		captured, refunded,
		actor, cancelReason, auditNotes, delayed,
		createdAt, updatedAt,
	), nil
}
