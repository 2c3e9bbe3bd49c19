package api

import (
	"errors"
	"net/http"

	"github.com/performlikemj/neighborhood-united-sub004/internal/domain/order"
	reqdto "github.com/performlikemj/neighborhood-united-sub004/internal/handler/dto/request"
	resdto "github.com/performlikemj/neighborhood-united-sub004/internal/handler/dto/response"
	"github.com/performlikemj/neighborhood-united-sub004/internal/handler/middleware"
	"github.com/performlikemj/neighborhood-united-sub004/internal/pkg/errs"
	"github.com/performlikemj/neighborhood-united-sub004/internal/usecase/commands"
	"github.com/performlikemj/neighborhood-united-sub004/internal/usecase/queries"
	"github.com/performlikemj/neighborhood-united-sub004/internal/usecase/reconcile"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderCommands    commands.OrderCommands
	checkoutCommands commands.CheckoutCommands
	orderQueries     queries.OrderQueries
	poller           *reconcile.Poller
}

func NewOrderHandler(
	orderCommands commands.OrderCommands,
	checkoutCommands commands.CheckoutCommands,
	orderQueries queries.OrderQueries,
	poller *reconcile.Poller,
) *OrderHandler {
	return &OrderHandler{
		orderCommands:    orderCommands,
		checkoutCommands: checkoutCommands,
		orderQueries:     orderQueries,
		poller:           poller,
	}
}

// @Summary Create order
// @Description Book a service tier or a meal event
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOrderRequest true "Order request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]any
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	var (
		created *order.Order
		err     error
	)
	switch req.Kind {
	case "service":
		if req.TierID == nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "tier_id is required for service orders",
			})
			return
		}
		created, err = h.orderCommands.CreateServiceOrder(c.Request.Context(), commands.CreateServiceOrderParams{
			CustomerID:        userID,
			ChefID:            req.ChefID,
			TierID:            *req.TierID,
			HouseholdSize:     req.HouseholdSize,
			ScheduleDate:      req.ScheduleDate,
			ScheduleStartTime: req.ScheduleStartTime,
			Recurrence:        req.GetRecurrence(),
		})
	case "meal":
		if req.MealEventID == nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "meal_event_id is required for meal orders",
			})
			return
		}
		created, err = h.orderCommands.CreateMealOrder(c.Request.Context(), commands.CreateMealOrderParams{
			CustomerID:  userID,
			MealEventID: *req.MealEventID,
			Quantity:    req.Quantity,
		})
	}

	if err != nil {
		var verr *order.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": verr.Reason,
				"field": verr.Field,
			})
		case errors.Is(err, errs.ErrChefUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Chef is on break and not accepting new bookings",
			})
		case errors.Is(err, errs.ErrChefNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Chef not found",
			})
		case errors.Is(err, errs.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Catalog item not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOrderEntity(created))
}

// @Summary Get order
// @Description Get order by ID
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}

	view, err := h.orderQueries.GetOrder(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary List orders
// @Description List all orders of the current customer
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OrderResponse
// @Failure 401 {object} map[string]string
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.orderQueries.ListCustomerOrders(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.OrderResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromOrderView(v)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Begin checkout
// @Description Obtain a hosted checkout session for a payable order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param X-Device-ID header string true "Device identifier for pending-order recovery"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /orders/{id}/checkout [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}
	deviceID, ok := h.deviceID(c)
	if !ok {
		return
	}

	handle, err := h.checkoutCommands.BeginCheckout(c.Request.Context(), id, deviceID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errors.Is(err, errs.ErrOrderNotPayable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Order is not in a payable state",
			})
		case errors.Is(err, errs.ErrCheckoutUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Payment processor unavailable, please retry",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.CheckoutResponse{
		SessionID:   handle.SessionID,
		RedirectURL: handle.RedirectURL,
	})
}

// @Summary Cancel order
// @Description Cancel an order; a live checkout session is invalidated
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.CancelOrderRequest true "Cancellation reason"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}

	var req reqdto.CancelOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	actor := order.ActorCustomer
	if role, ok := middleware.GetUserRole(c); ok && role == middleware.RoleChef {
		actor = order.ActorChef
	}

	cancelled, err := h.orderCommands.Cancel(c.Request.Context(), id, actor, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errors.Is(err, errs.ErrOrderImmutable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Order can no longer be cancelled",
			})
		case errors.Is(err, errs.ErrConcurrentUpdate):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Order was updated concurrently, reload and retry",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderEntity(cancelled))
}

// @Summary Refund order
// @Description Refund part or all of a captured payment
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.RefundOrderRequest true "Refund amount"
// @Success 200 {object} resdto.RefundResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /orders/{id}/refund [post]
func (h *OrderHandler) Refund(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}

	var req reqdto.RefundOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.orderCommands.Refund(c.Request.Context(), id, req.AmountCents)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errors.Is(err, errs.ErrOrderNotRefundable), errors.Is(err, order.ErrNotRefundable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Order has no captured payment to refund",
			})
		case errors.Is(err, order.ErrRefundExceeds), errors.Is(err, errs.ErrRefundExceedsCaptured):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Refund amount exceeds the captured amount",
			})
		case errors.Is(err, errs.ErrRefundFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Payment processor rejected the refund",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.RefundResponse{
		ReceiptID:     result.ReceiptID,
		Status:        result.Order.Status().String(),
		RefundedCents: result.Order.RefundedCents(),
	})
}

// @Summary Complete order
// @Description Mark a confirmed order as fulfilled
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders/{id}/complete [post]
func (h *OrderHandler) Complete(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}

	completed, err := h.orderCommands.Complete(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errors.Is(err, errs.ErrOrderImmutable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Only a confirmed order can be completed",
			})
		case errors.Is(err, errs.ErrConcurrentUpdate):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Order was updated concurrently, reload and retry",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderEntity(completed))
}

// @Summary Verify payment
// @Description Poll the order status until the pending payment resolves
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param X-Device-ID header string true "Device identifier for pending-order recovery"
// @Success 200 {object} resdto.VerifyPaymentResponse
// @Failure 400 {object} map[string]string
// @Router /orders/{id}/verify-payment [post]
func (h *OrderHandler) VerifyPayment(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}
	deviceID, ok := h.deviceID(c)
	if !ok {
		return
	}

	// A ctx error mid-poll still yields an inconclusive outcome; the registry
	// entry survives for a later resume, so the response is the same shape.
	outcome, _ := h.poller.VerifyOrder(c.Request.Context(), deviceID, id)

	c.JSON(http.StatusOK, resdto.VerifyPaymentResponse{Outcome: string(outcome)})
}

// @Summary Resume payment verification
// @Description Re-verify every pending order remembered for this device, typically on app launch
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param X-Device-ID header string true "Device identifier for pending-order recovery"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /orders/resume-verification [post]
func (h *OrderHandler) ResumeVerification(c *gin.Context) {
	deviceID, ok := h.deviceID(c)
	if !ok {
		return
	}

	outcomes, err := h.poller.ResumeAll(c.Request.Context(), deviceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make(map[string]string, len(outcomes))
	for orderID, outcome := range outcomes {
		response[orderID.String()] = string(outcome)
	}

	c.JSON(http.StatusOK, response)
}

func (h *OrderHandler) orderID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func (h *OrderHandler) deviceID(c *gin.Context) (string, bool) {
	deviceID := c.GetHeader("X-Device-ID")
	if deviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "X-Device-ID header required",
		})
		return "", false
	}
	return deviceID, true
}
