package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/performlikemj/neighborhood-united-sub004/internal/handler/api"
	"github.com/performlikemj/neighborhood-united-sub004/internal/handler/middleware"
	"github.com/performlikemj/neighborhood-united-sub004/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	orderHandler *api.OrderHandler,
	chefHandler *api.ChefHandler,
	webhookHandler *api.WebhookHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, orderHandler, chefHandler, webhookHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	orderHandler *api.OrderHandler,
	chefHandler *api.ChefHandler,
	webhookHandler *api.WebhookHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// The webhook authenticates with the shared processor secret, not a
		// user token.
		webhooks := apiGroup.Group("/webhooks")
		{
			addRoutes(webhooks, []route{
				{Method: http.MethodPost, Path: "/payment-confirmed", Handler: webhookHandler.PaymentConfirmed},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: orderHandler.CreateOrder},
				{Method: http.MethodGet, Path: "", Handler: orderHandler.ListOrders},
				{Method: http.MethodGet, Path: "/:id", Handler: orderHandler.GetOrder},
				{Method: http.MethodPost, Path: "/:id/checkout", Handler: orderHandler.Checkout},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: orderHandler.Cancel},
				{Method: http.MethodPost, Path: "/:id/verify-payment", Handler: orderHandler.VerifyPayment},
				{Method: http.MethodPost, Path: "/resume-verification", Handler: orderHandler.ResumeVerification},
				{
					Method: http.MethodPost, Path: "/:id/refund", Handler: orderHandler.Refund,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(middleware.RoleChef)},
				},
				{
					Method: http.MethodPost, Path: "/:id/complete", Handler: orderHandler.Complete,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(middleware.RoleChef)},
				},
			})
		}

		chefs := apiGroup.Group("/chefs")
		chefs.Use(authMiddleware.RequireAuth())
		chefs.Use(authMiddleware.RequireRole(middleware.RoleChef))
		{
			addRoutes(chefs, []route{
				{Method: http.MethodPost, Path: "/me/break", Handler: chefHandler.StartBreak},
				{Method: http.MethodDelete, Path: "/me/break", Handler: chefHandler.EndBreak},
				{Method: http.MethodGet, Path: "/break-jobs/:id", Handler: chefHandler.BreakJob},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
