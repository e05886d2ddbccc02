package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTrackingEvent(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		attributes map[string]string
		want       TrackingEvent
		wantErr    bool
	}{
		{
			name: "location payload",
			data: `{"type":"driver-location","order_id":7,"latitude":37.98,"longitude":23.72}`,
			want: TrackingEvent{Type: TrackingEventDriverLocation, OrderID: 7, Latitude: 37.98, Longitude: 23.72},
		},
		{
			name:       "order id and type from attributes",
			data:       `{"status":"completed"}`,
			attributes: map[string]string{"order_id": "12", "event_type": "order-status"},
			want:       TrackingEvent{Type: TrackingEventOrderStatus, OrderID: 12, Status: OrderStatusCompleted},
		},
		{
			name:    "missing order id",
			data:    `{"type":"order-status","status":"pending"}`,
			wantErr: true,
		},
		{
			name:       "malformed order id attribute",
			data:       `{"type":"order-status"}`,
			attributes: map[string]string{"order_id": "abc"},
			wantErr:    true,
		},
		{
			name:    "unknown type",
			data:    `{"type":"chat","order_id":1}`,
			wantErr: true,
		},
		{
			name:    "not json",
			data:    `nope`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeTrackingEvent([]byte(tt.data), tt.attributes)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
