package request

type StartBreakRequest struct {
	Reason string `json:"reason" binding:"required"`
}
