// Package redis stores cart sessions and device registrations in Redis.
package redis

import (
	"context"
	"log/slog"
	"time"

	"efood/config"
	"efood/internal/domain/lifecycle"
	"efood/internal/errors"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	readTimeout         = 3 * time.Second
	writeTimeout        = 3 * time.Second
	poolTimeout         = 4 * time.Second
	poolMonitorInterval = 5 * time.Second
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewClient builds a Redis client from configuration without connecting.
func NewClient(cfg *config.RedisConfig) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		PoolTimeout:  poolTimeout,
	})
}

// New creates the Redis client and ties it to the application lifecycle
func New(params Params) *goredis.Client {
	client := NewClient(params.Config.Redis)
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			params.Logger.Info("Redis connection established",
				slog.String("addr", params.Config.Redis.Addr()),
				slog.Int("db", params.Config.Redis.DB),
			)

			go monitorPool(monitorCtx, params.Logger, client, poolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return client.Close()
		},
	})

	return client
}

func monitorPool(ctx context.Context, logger *slog.Logger, client *goredis.Client, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := *client.PoolStats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := *client.PoolStats()
			timeoutDelta := cur.Timeouts - prev.Timeouts
			missDelta := cur.Misses - prev.Misses

			if timeoutDelta > 0 || missDelta > 0 {
				attrs := []slog.Attr{
					slog.Uint64("timeoutsDelta", uint64(timeoutDelta)),
					slog.Uint64("missesDelta", uint64(missDelta)),
					slog.Uint64("totalConns", uint64(cur.TotalConns)),
					slog.Uint64("idleConns", uint64(cur.IdleConns)),
					slog.Uint64("staleConns", uint64(cur.StaleConns)),
				}
				level := slog.LevelDebug
				if timeoutDelta > 0 {
					level = slog.LevelWarn
				}
				logger.LogAttrs(ctx, level, "Redis pool pressure observed", attrs...)
			}

			prev = cur
		}
	}
}

func cartSessionKey(prefix, sessionID string) string {
	return prefix + ":cart:session:" + sessionID
}

func deviceKey(prefix, sessionID string) string {
	return prefix + ":device:session:" + sessionID
}
