package api

import (
	"crypto/subtle"
	"errors"
	"net/http"

	reqdto "github.com/performlikemj/neighborhood-united-sub004/internal/handler/dto/request"
	"github.com/performlikemj/neighborhood-united-sub004/internal/pkg/config"
	"github.com/performlikemj/neighborhood-united-sub004/internal/pkg/errs"
	"github.com/performlikemj/neighborhood-united-sub004/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	orderCommands commands.OrderCommands
	secret        []byte
}

func NewWebhookHandler(orderCommands commands.OrderCommands, cfg config.PaymentConfig) *WebhookHandler {
	return &WebhookHandler{
		orderCommands: orderCommands,
		secret:        []byte(cfg.WebhookSecret),
	}
}

// @Summary Payment confirmed webhook
// @Description Processor callback confirming a checkout session completed
// @Tags webhooks
// @Accept json
// @Produce json
// @Param X-Webhook-Secret header string true "Shared webhook secret"
// @Param request body reqdto.PaymentConfirmedWebhook true "Webhook payload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /webhooks/payment-confirmed [post]
func (h *WebhookHandler) PaymentConfirmed(c *gin.Context) {
	provided := []byte(c.GetHeader("X-Webhook-Secret"))
	if subtle.ConstantTimeCompare(provided, h.secret) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid webhook secret",
		})
		return
	}

	var req reqdto.PaymentConfirmedWebhook
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.orderCommands.ConfirmBySession(c.Request.Context(), req.SessionID, req.EventID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUnknownPaymentSession):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Unknown payment session",
			})
		case errors.Is(err, errs.ErrOrderNotPayable):
			// The order resolved the other way (usually a cancel) before this
			// delivery arrived. Acknowledge so the processor stops retrying.
			c.JSON(http.StatusOK, gin.H{
				"status": "ignored",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "confirmed",
	})
}
