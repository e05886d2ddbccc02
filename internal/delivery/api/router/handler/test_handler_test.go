package handler

import (
	"net/http"
	"testing"

	"efood/internal/domain/entity"
	mockService "efood/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTestHandler_PublishTrackingEvent(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantEvent  func(entity.TrackingEvent) bool
		wantStatus int
	}{
		{
			name: "order status",
			body: `{"type":"order-status","status":"out_for_delivery"}`,
			wantEvent: func(e entity.TrackingEvent) bool {
				return e.Type == entity.TrackingEventOrderStatus && e.Status == entity.OrderStatusOutForDelivery
			},
			wantStatus: http.StatusAccepted,
		},
		{
			name: "driver location",
			body: `{"type":"driver-location","latitude":40.6,"longitude":22.9}`,
			wantEvent: func(e entity.TrackingEvent) bool {
				return e.Type == entity.TrackingEventDriverLocation && e.Latitude == 40.6 && e.Longitude == 22.9
			},
			wantStatus: http.StatusAccepted,
		},
		{
			name:       "unknown status",
			body:       `{"type":"order-status","status":"lost"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "status missing",
			body:       `{"type":"order-status"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "latitude out of range",
			body:       `{"type":"driver-location","latitude":91,"longitude":0}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher := mockService.NewMockTrackingEventPublisher(t)
			h := NewTestHandler(TestHandlerParams{Publisher: publisher})
			c, rec := newTestContext(testRequest{
				method: http.MethodPost,
				target: "/test/orders/42/events",
				body:   tt.body,
				params: map[string]string{"id": "42"},
			})

			if tt.wantEvent != nil {
				publisher.EXPECT().
					Publish(mock.Anything, mock.MatchedBy(func(e entity.TrackingEvent) bool {
						return e.OrderID == 42 && tt.wantEvent(e)
					})).
					Return(nil)
			}

			require.NoError(t, h.PublishTrackingEvent(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
