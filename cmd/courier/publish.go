package main

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"efood/config"
	"efood/internal/domain/entity"
	"efood/internal/domain/service"
	logs "efood/internal/infra/log"
	"efood/internal/infra/pubsub"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

func newPublisher(ctx context.Context) (service.TrackingEventPublisher, *slog.Logger, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, nil, err
	}

	publisher, err := pubsub.NewPublisher(ctx, cfg.PubSub, logger)
	if err != nil {
		return nil, nil, err
	}

	return publisher, logger, nil
}

func publish(ctx context.Context, events ...entity.TrackingEvent) error {
	publisher, _, err := newPublisher(ctx)
	if err != nil {
		return err
	}
	defer publisher.Close()

	for _, event := range events {
		if err := publisher.Publish(ctx, event); err != nil {
			return err
		}
	}

	return nil
}

func runLocation(ctx context.Context, orderID int64, lat, lng float64) error {
	return publish(ctx, entity.NewDriverLocationEvent(orderID, lat, lng))
}

func runStatus(ctx context.Context, orderID int64, status string) error {
	orderStatus := entity.OrderStatus(status)
	if !orderStatus.IsValid() {
		return errors.Errorf("unknown status %q", status)
	}

	return publish(ctx, entity.NewOrderStatusEvent(orderID, orderStatus))
}

func runDrive(ctx context.Context, orderID int64, from, to orb.Point, steps int, interval time.Duration) error {
	publisher, logger, err := newPublisher(ctx)
	if err != nil {
		return err
	}
	defer publisher.Close()

	if err := publisher.Publish(ctx, entity.NewOrderStatusEvent(orderID, entity.OrderStatusOutForDelivery)); err != nil {
		return err
	}

	route := routePoints(from, to, steps)
	logger.Info("Driving",
		slog.Int64("order_id", orderID),
		slog.Float64("distance_m", geo.Distance(from, to)),
		slog.Int("updates", len(route)),
	)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for i, p := range route {
		if err := publisher.Publish(ctx, entity.NewDriverLocationEvent(orderID, p.Lat(), p.Lon())); err != nil {
			return err
		}
		logger.Debug("Position published", slog.Int("step", i+1), slog.Float64("lat", p.Lat()), slog.Float64("lng", p.Lon()))

		if i == len(route)-1 {
			break
		}
		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-ticker.C:
		}
	}

	return publisher.Publish(ctx, entity.NewOrderStatusEvent(orderID, entity.OrderStatusCompleted))
}

// routePoints returns steps positions along the great circle from one point to
// the other, ending exactly at the destination.
func routePoints(from, to orb.Point, steps int) []orb.Point {
	if steps < 1 {
		steps = 1
	}

	distance := geo.Distance(from, to)
	bearing := geo.Bearing(from, to)

	points := make([]orb.Point, 0, steps)
	for i := 1; i < steps; i++ {
		points = append(points, geo.PointAtBearingAndDistance(from, bearing, distance*float64(i)/float64(steps)))
	}

	return append(points, to)
}

// parseCoordinate reads "lat,lng" into an orb point.
func parseCoordinate(s string) (orb.Point, error) {
	latText, lngText, ok := strings.Cut(s, ",")
	if !ok {
		return orb.Point{}, errors.Errorf("expected lat,lng, got %q", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(latText), 64)
	if err != nil {
		return orb.Point{}, errors.Wrap(err, "latitude")
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngText), 64)
	if err != nil {
		return orb.Point{}, errors.Wrap(err, "longitude")
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return orb.Point{}, errors.Errorf("coordinate out of range: %q", s)
	}

	return orb.Point{lng, lat}, nil
}
