package components

import (
	"github.com/performlikemj/neighborhood-united-sub004/internal/infra/jobs"
	"github.com/performlikemj/neighborhood-united-sub004/internal/infra/payment"
	"github.com/performlikemj/neighborhood-united-sub004/internal/infra/registry"
	repo_impl "github.com/performlikemj/neighborhood-united-sub004/internal/infra/repository"
	"github.com/performlikemj/neighborhood-united-sub004/internal/pkg/config"
	"github.com/performlikemj/neighborhood-united-sub004/internal/usecase/commands"
	"github.com/performlikemj/neighborhood-united-sub004/internal/usecase/queries"
	"github.com/performlikemj/neighborhood-united-sub004/internal/usecase/reconcile"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Order rows serve both the command side and the read side.
		fx.Annotate(
			repo_impl.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
			fx.As(new(queries.OrderReadRepository)),
		),
		fx.Annotate(
			repo_impl.NewChefRepository,
			fx.As(new(commands.ChefRepository)),
		),
		fx.Annotate(
			repo_impl.NewCatalogRepository,
			fx.As(new(commands.CatalogRepository)),
		),
		fx.Annotate(
			payment.NewClient,
			fx.As(new(commands.PaymentGateway)),
		),
		fx.Annotate(
			registry.NewRedisRegistry,
			fx.As(new(commands.PendingOrderRegistry)),
			fx.As(new(reconcile.Registry)),
		),
		fx.Annotate(
			NewBreakJobStore,
			fx.As(new(commands.BreakJobStore)),
		),
	),
)

func NewBreakJobStore(client *redis.Client, cfg config.CascadeConfig) *jobs.RedisJobStore {
	return jobs.NewRedisJobStore(client, cfg.JobTTL)
}
