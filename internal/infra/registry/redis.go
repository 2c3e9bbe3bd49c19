package registry

import (
	"context"
	"log/slog"
	"time"

	"github.com/performlikemj/neighborhood-united-sub004/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "pending_orders:"

// PendingEntry is one order awaiting payment resolution on a given device.
type PendingEntry struct {
	OrderID      uuid.UUID
	RememberedAt time.Time
}

// RedisRegistry is the pending-order registry: a per-device hash of
// orderID → rememberedAt. It survives process restarts so a reconciliation
// pass can resume after the app was killed mid-checkout. All operations are
// idempotent set operations; there is no read-modify-write.
type RedisRegistry struct {
	client *redis.Client
	logger *slog.Logger
}

func NewRedisRegistry(client *redis.Client, logger *slog.Logger) *RedisRegistry {
	return &RedisRegistry{client: client, logger: logger}
}

func key(deviceID string) string {
	return keyPrefix + deviceID
}

// Remember adds the order to the device's pending set. Remembering an
// already-present order keeps the original rememberedAt (HSetNX), so repeat
// checkouts do not reset the audit trail.
func (r *RedisRegistry) Remember(ctx context.Context, deviceID string, orderID uuid.UUID, at time.Time) error {
	err := r.client.HSetNX(ctx, key(deviceID), orderID.String(), at.UTC().Format(time.RFC3339)).Err()
	if err != nil {
		return errs.Wrap(err, "failed to remember pending order")
	}
	return nil
}

// Forget removes the order; removing an absent order is a no-op.
func (r *RedisRegistry) Forget(ctx context.Context, deviceID string, orderID uuid.UUID) error {
	err := r.client.HDel(ctx, key(deviceID), orderID.String()).Err()
	if err != nil {
		return errs.Wrap(err, "failed to forget pending order")
	}
	return nil
}

func (r *RedisRegistry) List(ctx context.Context, deviceID string) ([]PendingEntry, error) {
	fields, err := r.client.HGetAll(ctx, key(deviceID)).Result()
	if err != nil {
		return nil, errs.Wrap(err, "failed to list pending orders")
	}

	entries := make([]PendingEntry, 0, len(fields))
	for rawID, rawAt := range fields {
		orderID, err := uuid.Parse(rawID)
		if err != nil {
			// A corrupt field should not wedge reconciliation for the rest.
			r.logger.Warn("dropping malformed pending-order entry", "field", rawID)
			_ = r.client.HDel(ctx, key(deviceID), rawID).Err()
			continue
		}
		rememberedAt, err := time.Parse(time.RFC3339, rawAt)
		if err != nil {
			rememberedAt = time.Time{}
		}
		entries = append(entries, PendingEntry{OrderID: orderID, RememberedAt: rememberedAt})
	}
	return entries, nil
}
