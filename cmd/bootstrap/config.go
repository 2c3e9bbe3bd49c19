package bootstrap

import (
	"github.com/performlikemj/neighborhood-united-sub004/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		// Sub-configs are provided separately so components depend only on
		// the slice of configuration they actually read.
		func(cfg config.Config) config.PaymentConfig { return cfg.Payment },
		func(cfg config.Config) config.PollerConfig { return cfg.Poller },
		func(cfg config.Config) config.CascadeConfig { return cfg.Cascade },
		func(cfg config.Config) config.JWTConfig { return cfg.JWT },
	),
)
