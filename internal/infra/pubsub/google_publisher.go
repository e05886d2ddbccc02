package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"efood/internal/domain/constants"
	"efood/internal/domain/entity"
	"efood/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher implements TrackingEventPublisher using Google Cloud Pub/Sub
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.TrackingEventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)
	// Events of one order must reach subscribers in publish order.
	publisher.EnableMessageOrdering = true

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// Publish publishes a tracking event to Google Pub/Sub, ordered by order id
func (p *googlePubSubPublisher) Publish(ctx context.Context, event entity.TrackingEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	orderKey := strconv.FormatInt(event.OrderID, 10)
	msg := &pubsub.Message{
		Data:        data,
		Attributes:  eventAttributes(ctx, event),
		OrderingKey: orderKey,
	}

	result := p.publisher.Publish(ctx, msg)

	serverID, err := result.Get(ctx)
	if err != nil {
		p.publisher.ResumePublish(orderKey)

		return errors.Wrapf(err, "publish %s event for order %d", event.Type, event.OrderID)
	}

	p.logger.Debug("[GooglePubSub] Tracking event published",
		slog.Int64("order_id", event.OrderID),
		slog.String("event_type", event.Type.String()),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}

func eventAttributes(ctx context.Context, event entity.TrackingEvent) map[string]string {
	attributes := map[string]string{
		constants.AttributeOrderID:   strconv.FormatInt(event.OrderID, 10),
		constants.AttributeEventType: event.Type.String(),
	}
	if requestID := requestIDFromContext(ctx); requestID != "" {
		attributes[constants.AttributeRequestID] = requestID
	}

	return attributes
}
