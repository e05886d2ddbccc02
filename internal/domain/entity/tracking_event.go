// Package entity contains the core business objects of the project.
package entity

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// TrackingEventType is the logical kind of a push-channel event.
type TrackingEventType string

const (
	// TrackingEventDriverLocation carries a driver position for an order.
	TrackingEventDriverLocation TrackingEventType = "driver-location"
	// TrackingEventOrderStatus carries a new status for an order.
	TrackingEventOrderStatus TrackingEventType = "order-status"
)

// String returns the string representation of the TrackingEventType.
func (t TrackingEventType) String() string {
	return string(t)
}

// IsValid checks if the TrackingEventType is a valid value.
func (t TrackingEventType) IsValid() bool {
	return t == TrackingEventDriverLocation || t == TrackingEventOrderStatus
}

// TrackingEvent is one event delivered by the push channel, scoped by order id.
// Delivery is at-least-once: duplicates and reordering are expected.
type TrackingEvent struct {
	Type       TrackingEventType `json:"type"`
	OrderID    int64             `json:"order_id"`
	DriverID   int64             `json:"driver_id,omitempty"`
	Latitude   float64           `json:"latitude,omitempty"`
	Longitude  float64           `json:"longitude,omitempty"`
	Status     OrderStatus       `json:"status,omitempty"`
	OccurredAt time.Time         `json:"occurred_at,omitzero"`
}

// Location returns the event position as a Coordinate.
func (e TrackingEvent) Location() Coordinate {
	return Coordinate{Latitude: e.Latitude, Longitude: e.Longitude}
}

// NewDriverLocationEvent builds a driver-location event.
func NewDriverLocationEvent(orderID int64, latitude, longitude float64) TrackingEvent {
	return TrackingEvent{
		Type:       TrackingEventDriverLocation,
		OrderID:    orderID,
		Latitude:   latitude,
		Longitude:  longitude,
		OccurredAt: time.Now().UTC(),
	}
}

// NewOrderStatusEvent builds an order-status event.
func NewOrderStatusEvent(orderID int64, status OrderStatus) TrackingEvent {
	return TrackingEvent{
		Type:       TrackingEventOrderStatus,
		OrderID:    orderID,
		Status:     status,
		OccurredAt: time.Now().UTC(),
	}
}

// DecodeTrackingEvent parses a JSON event. The order id and type fall back to the
// message attributes ("order_id", "event_type") when the payload omits them.
func DecodeTrackingEvent(data []byte, attributes map[string]string) (TrackingEvent, error) {
	var event TrackingEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return TrackingEvent{}, errors.Wrap(err, "decode tracking event")
	}

	if event.OrderID == 0 && attributes["order_id"] != "" {
		orderID, err := strconv.ParseInt(attributes["order_id"], 10, 64)
		if err != nil {
			return TrackingEvent{}, errors.Wrapf(err, "parse order_id attribute %q", attributes["order_id"])
		}
		event.OrderID = orderID
	}
	if event.Type == "" {
		event.Type = TrackingEventType(attributes["event_type"])
	}

	if event.OrderID <= 0 {
		return TrackingEvent{}, errors.New("tracking event without order id")
	}
	if !event.Type.IsValid() {
		return TrackingEvent{}, errors.Errorf("unknown tracking event type %q", event.Type)
	}

	return event, nil
}
