package components

import (
	"github.com/performlikemj/neighborhood-united-sub004/internal/handler"
	"github.com/performlikemj/neighborhood-united-sub004/internal/handler/api"
	"github.com/performlikemj/neighborhood-united-sub004/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOrderHandler,
		api.NewChefHandler,
		api.NewWebhookHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
