package api

import (
	"errors"
	"net/http"

	reqdto "github.com/performlikemj/neighborhood-united-sub004/internal/handler/dto/request"
	resdto "github.com/performlikemj/neighborhood-united-sub004/internal/handler/dto/response"
	"github.com/performlikemj/neighborhood-united-sub004/internal/handler/middleware"
	"github.com/performlikemj/neighborhood-united-sub004/internal/pkg/errs"
	"github.com/performlikemj/neighborhood-united-sub004/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ChefHandler struct {
	breakCommands commands.BreakCommands
}

func NewChefHandler(breakCommands commands.BreakCommands) *ChefHandler {
	return &ChefHandler{breakCommands: breakCommands}
}

// @Summary Start break
// @Description Halt new bookings and cancel every upcoming order as a background job
// @Tags chefs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.StartBreakRequest true "Break reason"
// @Success 202 {object} resdto.StartBreakResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /chefs/me/break [post]
func (h *ChefHandler) StartBreak(c *gin.Context) {
	chefID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.StartBreakRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	jobID, err := h.breakCommands.StartBreak(c.Request.Context(), chefID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrChefNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Chef not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusAccepted, resdto.StartBreakResponse{JobID: jobID})
}

// @Summary End break
// @Description Accept new bookings again; cancelled orders stay cancelled
// @Tags chefs
// @Produce json
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /chefs/me/break [delete]
func (h *ChefHandler) EndBreak(c *gin.Context) {
	chefID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if err := h.breakCommands.EndBreak(c.Request.Context(), chefID); err != nil {
		switch {
		case errors.Is(err, errs.ErrChefNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Chef not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get break job
// @Description Poll the cascade result of a break job
// @Tags chefs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} resdto.BreakJobResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /chefs/break-jobs/{id} [get]
func (h *ChefHandler) BreakJob(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid job ID format",
		})
		return
	}

	rec, err := h.breakCommands.JobResult(c.Request.Context(), jobID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBreakJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Break job not found or expired",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromJobRecord(rec))
}
