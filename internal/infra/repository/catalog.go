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

// CatalogRepository reads priced catalog items. The booking flow copies the
// returned snapshot onto the order; the catalog rows themselves are owned by
// the (out-of-scope) authoring surface.
type CatalogRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

func NewCatalogRepository(db *pgxpool.Pool, logger *slog.Logger) *CatalogRepository {
	return &CatalogRepository{db: db, logger: logger}
}

func (r *CatalogRepository) TierByID(ctx context.Context, id uuid.UUID) (*order.TierSpec, error) {
	var spec order.TierSpec
	var kind string

	err := r.db.QueryRow(ctx, `
		SELECT id, offering_id, kind, min_household, max_household,
		       price_cents, currency, is_recurring, requires_schedule
		FROM service_tiers WHERE id = $1`, id,
	).Scan(
		&spec.ID, &spec.OfferingID, &kind, &spec.MinHousehold, &spec.MaxHousehold,
		&spec.PriceCents, &spec.Currency, &spec.IsRecurring, &spec.RequiresSchedule,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "service tier not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to load service tier", err)
	}

	spec.Kind = order.Kind(kind)
	return &spec, nil
}

func (r *CatalogRepository) MealEventByID(ctx context.Context, id uuid.UUID) (*order.MealEventSpec, error) {
	var spec order.MealEventSpec
	var eventDate time.Time

	err := r.db.QueryRow(ctx, `
		SELECT id, chef_id, price_cents, currency, event_date
		FROM meal_events WHERE id = $1`, id,
	).Scan(&spec.ID, &spec.ChefID, &spec.PriceCents, &spec.Currency, &eventDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "meal event not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to load meal event", err)
	}

	spec.EventDate = eventDate
	return &spec, nil
}
