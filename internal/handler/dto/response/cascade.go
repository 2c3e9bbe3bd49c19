package response

import (
	"time"

	"github.com/performlikemj/neighborhood-united-sub004/internal/infra/jobs"

	"github.com/google/uuid"
)

type StartBreakResponse struct {
	JobID uuid.UUID `json:"jobId"`
}

type PerOrderErrorResponse struct {
	OrderID uuid.UUID `json:"orderId"`
	Stage   string    `json:"stage"`
	Message string    `json:"message"`
}

type CascadeResultResponse struct {
	CancelledCount   int                     `json:"cancelledCount"`
	RefundsProcessed int                     `json:"refundsProcessed"`
	RefundsFailed    int                     `json:"refundsFailed"`
	PerOrderErrors   []PerOrderErrorResponse `json:"perOrderErrors"`
}

type BreakJobResponse struct {
	JobID      uuid.UUID              `json:"jobId"`
	Status     string                 `json:"status"`
	StartedAt  time.Time              `json:"startedAt"`
	FinishedAt *time.Time             `json:"finishedAt,omitempty"`
	Result     *CascadeResultResponse `json:"result,omitempty"`
}

func FromJobRecord(rec *jobs.JobRecord) *BreakJobResponse {
	resp := &BreakJobResponse{
		JobID:      rec.ID,
		Status:     string(rec.Status),
		StartedAt:  rec.StartedAt,
		FinishedAt: rec.FinishedAt,
	}
	if rec.Result != nil {
		result := &CascadeResultResponse{
			CancelledCount:   rec.Result.CancelledCount,
			RefundsProcessed: rec.Result.RefundsProcessed,
			RefundsFailed:    rec.Result.RefundsFailed,
			PerOrderErrors:   make([]PerOrderErrorResponse, len(rec.Result.PerOrderErrors)),
		}
		for i, e := range rec.Result.PerOrderErrors {
			result.PerOrderErrors[i] = PerOrderErrorResponse{
				OrderID: e.OrderID,
				Stage:   e.Stage,
				Message: e.Message,
			}
		}
		resp.Result = result
	}
	return resp
}
