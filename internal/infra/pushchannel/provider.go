package pushchannel

import (
	"context"
	"log/slog"

	"efood/config"
	"efood/internal/delivery"
	"efood/internal/domain/constants"
	"efood/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// HubParams holds dependencies for the Hub, injected by Fx
type HubParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewHubFromConfig creates the process-wide hub and closes it on shutdown
func NewHubFromConfig(params HubParams) *Hub {
	tracking := params.Config.Tracking
	hub := NewHub(tracking.EventBuffer, tracking.DeliveryTimeout, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing push channel hub")

			return hub.Close()
		},
	})

	return hub
}

// ReceiverParams holds dependencies for the Pub/Sub receiver, injected by Fx
type ReceiverParams struct {
	fx.In

	Lc         fx.Lifecycle
	Ctx        context.Context
	Config     *config.Config
	Logger     *slog.Logger
	Dispatcher service.TrackingEventDispatcher
}

// pushOnlyReceiver is used when events arrive only through the HTTP push endpoint
type pushOnlyReceiver struct {
	logger *slog.Logger
}

func (r *pushOnlyReceiver) Serve(context.Context) error {
	r.logger.Info("Tracking events are received through the push endpoint only")

	return nil
}

// NewReceiver creates the pull receiver for the configured provider
func NewReceiver(params ReceiverParams) (delivery.Delivery, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider != constants.PubSubProviderGoogle || cfg.SubscriptionID == "" {
		return &pushOnlyReceiver{logger: params.Logger}, nil
	}

	if cfg.ProjectID == "" {
		return nil, errors.New("project ID is required for google provider")
	}

	receiver, err := NewGoogleReceiver(params.Ctx, cfg.ProjectID, cfg.SubscriptionID, params.Dispatcher, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: receiver.Stop,
	})

	return receiver, nil
}

// Module provides the push channel FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewHubFromConfig,
		func(h *Hub) service.PushChannel { return h },
		func(h *Hub) service.TrackingEventDispatcher { return h },
		fx.Annotate(
			NewReceiver,
			fx.ResultTags(`group:"deliveries"`),
		),
	),
)
