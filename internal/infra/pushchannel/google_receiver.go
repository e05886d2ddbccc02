package pushchannel

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"efood/internal/domain/entity"
	"efood/internal/domain/lifecycle"
	"efood/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// GoogleReceiver pulls tracking events from a Pub/Sub subscription into a dispatcher.
type GoogleReceiver struct {
	client     *pubsub.Client
	subscriber *pubsub.Subscriber
	dispatcher service.TrackingEventDispatcher
	logger     *slog.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	stopped chan struct{}
}

// NewGoogleReceiver connects to an existing subscription.
func NewGoogleReceiver(
	ctx context.Context,
	projectID, subscriptionID string,
	dispatcher service.TrackingEventDispatcher,
	logger *slog.Logger,
	opts ...option.ClientOption,
) (*GoogleReceiver, error) {
	client, err := pubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	subscriptionPath := fmt.Sprintf("projects/%s/subscriptions/%s", projectID, subscriptionID)
	_, err = client.SubscriptionAdminClient.GetSubscription(ctx, &pubsubpb.GetSubscriptionRequest{
		Subscription: subscriptionPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get subscription %s", subscriptionID)
	}

	logger.Info("Google Pub/Sub receiver initialized",
		slog.String("project_id", projectID),
		slog.String("subscription_id", subscriptionID),
	)

	return &GoogleReceiver{
		client:     client,
		subscriber: client.Subscriber(subscriptionID),
		dispatcher: dispatcher,
		logger:     logger,
	}, nil
}

// Serve receives messages until ctx is done or Stop is called.
func (r *GoogleReceiver) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	stopped := make(chan struct{})

	r.mu.Lock()
	r.cancel = cancel
	r.stopped = stopped
	r.mu.Unlock()

	defer close(stopped)
	defer cancel()

	r.logger.Info("Starting Pub/Sub tracking receiver")

	err := r.subscriber.Receive(ctx, r.handle)
	if err != nil && !errors.Is(err, context.Canceled) {
		return errors.Wrap(err, "receive tracking events")
	}

	return nil
}

func (r *GoogleReceiver) handle(ctx context.Context, msg *pubsub.Message) {
	event, err := entity.DecodeTrackingEvent(msg.Data, msg.Attributes)
	if err != nil {
		// Redelivery cannot fix a malformed payload.
		r.logger.Error("[Receiver] Dropping malformed tracking event",
			slog.String("message_id", msg.ID),
			slog.Any("error", err),
		)
		msg.Ack()

		return
	}

	delivered := r.dispatcher.Dispatch(ctx, event)
	r.logger.Debug("[Receiver] Tracking event dispatched",
		slog.String("message_id", msg.ID),
		slog.Int64("order_id", event.OrderID),
		slog.String("event_type", event.Type.String()),
		slog.Int("subscribers", delivered),
	)
	msg.Ack()
}

// Stop cancels Serve and waits for it to return.
func (r *GoogleReceiver) Stop(ctx context.Context) error {
	r.mu.Lock()
	cancel, stopped := r.cancel, r.stopped
	r.mu.Unlock()

	if cancel != nil {
		cancel()

		waitCtx, waitCancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
		defer waitCancel()

		select {
		case <-stopped:
		case <-waitCtx.Done():
			r.logger.Warn("Pub/Sub receiver did not stop in time")
		}
	}

	return errors.WithStack(r.client.Close())
}
