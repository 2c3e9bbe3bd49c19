package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/performlikemj/neighborhood-united-sub004/internal/domain/chef"
	"github.com/performlikemj/neighborhood-united-sub004/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ChefRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

func NewChefRepository(db *pgxpool.Pool, logger *slog.Logger) *ChefRepository {
	return &ChefRepository{db: db, logger: logger}
}

func (r *ChefRepository) FindByID(ctx context.Context, id uuid.UUID) (*chef.Chef, error) {
	var onBreak bool
	var breakReason *string
	var breakSince *time.Time

	err := r.db.QueryRow(ctx, `
		SELECT on_break, break_reason, break_since
		FROM chefs WHERE id = $1`, id,
	).Scan(&onBreak, &breakReason, &breakSince)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "chef not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to load chef", err)
	}

	return chef.ReconstructChef(id, onBreak, breakReason, breakSince), nil
}

func (r *ChefRepository) SaveBreakState(ctx context.Context, c *chef.Chef) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE chefs
		SET on_break = $2, break_reason = $3, break_since = $4
		WHERE id = $1`,
		c.ID(), c.OnBreak(), c.BreakReason(), c.BreakSince(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to save chef break state", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "chef not found", nil)
	}
	return nil
}
