package components

import (
	"context"

	"github.com/performlikemj/neighborhood-united-sub004/internal/domain/order"
	"github.com/performlikemj/neighborhood-united-sub004/internal/pkg/clock"
	"github.com/performlikemj/neighborhood-united-sub004/internal/usecase/commands"
	"github.com/performlikemj/neighborhood-united-sub004/internal/usecase/queries"
	"github.com/performlikemj/neighborhood-united-sub004/internal/usecase/reconcile"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
	usecaseReconcileModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	order.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewOrderCommands,
		commands.NewCheckoutCommands,
		commands.NewBreakCommands,
	),
	// Cascades run detached from the request; drain them before the process
	// exits so the final job-store write is not lost on shutdown.
	fx.Invoke(func(lc fx.Lifecycle, bc commands.BreakCommands) {
		w, ok := bc.(interface{ WaitForCascades() })
		if !ok {
			return
		}
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				w.WaitForCascades()
				return nil
			},
		})
	}),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOrderQueries,
	),
)

var usecaseReconcileModule = fx.Module("usecase/reconcile",
	fx.Provide(
		// The poller trusts the backend's reconciled status, so its source is
		// the order query service, not the payment processor.
		func(q queries.OrderQueries) reconcile.StatusSource { return q },
		reconcile.NewPoller,
	),
)
