// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// OrderStatus is the lifecycle status of a submitted order.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusProcessing     OrderStatus = "processing"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusCompleted      OrderStatus = "completed"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusOutForDelivery,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further live updates apply after this status.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// Coordinate is a WGS84 position.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Point converts the coordinate to an orb point (lon, lat order).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// OrderSnapshot is the render-ready state of one tracked order.
type OrderSnapshot struct {
	OrderID        int64       `json:"order_id"`
	Status         OrderStatus `json:"status"`
	DriverLocation *Coordinate `json:"driver_location,omitempty"` // Present only while out for delivery.
	Destination    Coordinate  `json:"destination"`               // Delivery address.
	Store          *Coordinate `json:"store,omitempty"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// Clone returns a copy that shares no pointers with s.
func (s OrderSnapshot) Clone() OrderSnapshot {
	if s.DriverLocation != nil {
		loc := *s.DriverLocation
		s.DriverLocation = &loc
	}
	if s.Store != nil {
		store := *s.Store
		s.Store = &store
	}

	return s
}

// MapBounds returns the box enclosing the driver and the destination.
// It reports false when there is no driver location to frame.
func (s OrderSnapshot) MapBounds() (orb.Bound, bool) {
	if s.DriverLocation == nil {
		return orb.Bound{}, false
	}

	return orb.MultiPoint{s.DriverLocation.Point(), s.Destination.Point()}.Bound(), true
}

// DriverDistanceMeters returns the great-circle distance from the driver to the destination.
func (s OrderSnapshot) DriverDistanceMeters() (float64, bool) {
	if s.DriverLocation == nil {
		return 0, false
	}

	return geo.Distance(s.DriverLocation.Point(), s.Destination.Point()), true
}
