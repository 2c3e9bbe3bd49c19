package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/performlikemj/neighborhood-united-sub004/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const jobKeyPrefix = "break_jobs:"

var ErrJobNotFound = errors.New("break job not found")

type JobStatus string

const (
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
)

// CascadeResult is the aggregate outcome of one break cascade. Partial
// failure is the expected common case; callers surface counts, never a
// single pass/fail flag.
type CascadeResult struct {
	CancelledCount   int             `json:"cancelledCount"`
	RefundsProcessed int             `json:"refundsProcessed"`
	RefundsFailed    int             `json:"refundsFailed"`
	PerOrderErrors   []PerOrderError `json:"perOrderErrors"`
}

type PerOrderError struct {
	OrderID uuid.UUID `json:"orderId"`
	Stage   string    `json:"stage"` // "cancel" or "refund"
	Message string    `json:"message"`
}

type JobRecord struct {
	ID         uuid.UUID      `json:"id"`
	ChefID     uuid.UUID      `json:"chefId"`
	Status     JobStatus      `json:"status"`
	Result     *CascadeResult `json:"result,omitempty"`
	StartedAt  time.Time      `json:"startedAt"`
	FinishedAt *time.Time     `json:"finishedAt,omitempty"`
}

// RedisJobStore holds break-cascade job records so the initiating request can
// return immediately and the chef's client polls for the aggregate result.
type RedisJobStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisJobStore(client *redis.Client, ttl time.Duration) *RedisJobStore {
	return &RedisJobStore{client: client, ttl: ttl}
}

func (s *RedisJobStore) Put(ctx context.Context, rec JobRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return errs.Wrap(err, "failed to marshal break job record")
	}
	if err := s.client.Set(ctx, jobKeyPrefix+rec.ID.String(), payload, s.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to store break job record")
	}
	return nil
}

func (s *RedisJobStore) Get(ctx context.Context, jobID uuid.UUID) (*JobRecord, error) {
	raw, err := s.client.Get(ctx, jobKeyPrefix+jobID.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrJobNotFound
		}
		return nil, errs.Wrap(err, "failed to load break job record")
	}
	var rec JobRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, errs.Wrap(err, "failed to unmarshal break job record")
	}
	return &rec, nil
}
