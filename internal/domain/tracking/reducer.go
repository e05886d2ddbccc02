package tracking

import (
	"efood/internal/domain/entity"
)

// Reduce applies one push event to a snapshot and reports whether it changed.
//
// Events for other orders, events against a terminal snapshot, location events
// outside out_for_delivery, unknown statuses and exact duplicates leave the
// snapshot as it is. Leaving out_for_delivery drops the driver location.
func Reduce(current entity.OrderSnapshot, event entity.TrackingEvent) (entity.OrderSnapshot, bool) {
	if event.OrderID != current.OrderID || current.Status.IsTerminal() {
		return current, false
	}

	switch event.Type {
	case entity.TrackingEventDriverLocation:
		return reduceLocation(current, event)
	case entity.TrackingEventOrderStatus:
		return reduceStatus(current, event)
	default:
		return current, false
	}
}

func reduceLocation(current entity.OrderSnapshot, event entity.TrackingEvent) (entity.OrderSnapshot, bool) {
	if current.Status != entity.OrderStatusOutForDelivery {
		return current, false
	}

	location := event.Location()
	if current.DriverLocation != nil && *current.DriverLocation == location {
		return current, false
	}

	next := current.Clone()
	next.DriverLocation = &location
	touch(&next, event)

	return next, true
}

func reduceStatus(current entity.OrderSnapshot, event entity.TrackingEvent) (entity.OrderSnapshot, bool) {
	if !event.Status.IsValid() || event.Status == current.Status {
		return current, false
	}

	next := current.Clone()
	next.Status = event.Status
	if next.Status != entity.OrderStatusOutForDelivery {
		next.DriverLocation = nil
	}
	touch(&next, event)

	return next, true
}

func touch(snapshot *entity.OrderSnapshot, event entity.TrackingEvent) {
	if !event.OccurredAt.IsZero() {
		snapshot.UpdatedAt = event.OccurredAt
	}
}
