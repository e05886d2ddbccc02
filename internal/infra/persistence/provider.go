// Package persistence selects the session storage backend.
package persistence

import (
	"context"
	"log/slog"
	"time"

	"efood/config"
	"efood/internal/domain/repository"
	"efood/internal/infra/persistence/memory"
	"efood/internal/infra/persistence/redis"

	"go.uber.org/fx"
)

const janitorInterval = time.Minute

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories are the session-scoped stores of the gateway.
type Repositories struct {
	fx.Out

	CartSessions repository.CartSessionRepository
	Devices      repository.DeviceRepository
}

// New uses Redis when it is enabled and an in-process store otherwise.
func New(params Params) Repositories {
	if params.Config.Redis != nil && params.Config.Redis.Enabled {
		client := redis.New(redis.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})

		return Repositories{
			CartSessions: redis.NewCartSessionRepository(client, params.Config),
			Devices:      redis.NewDeviceRepository(client, params.Config),
		}
	}

	params.Logger.Warn("Redis disabled, sessions are kept in memory and lost on restart")

	store := memory.NewStore(params.Config.Session.TTL)
	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go store.RunJanitor(janitorCtx, janitorInterval, params.Logger)

			return nil
		},
		OnStop: func(context.Context) error {
			stopJanitor()

			return nil
		},
	})

	return Repositories{
		CartSessions: memory.NewCartSessionRepository(store),
		Devices:      memory.NewDeviceRepository(store),
	}
}
