package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"efood/config"
	"efood/internal/delivery/api/response"
	deliverycontext "efood/internal/delivery/context"
	"efood/internal/domain/entity"
	"efood/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Server-Sent Events names of the tracking stream.
const (
	eventSnapshot = "snapshot"
	eventEnd      = "end"
)

// TrackingHandlerParams holds dependencies for TrackingHandler, injected by Fx.
type TrackingHandlerParams struct {
	fx.In

	Config     *config.Config
	TrackingUC usecase.TrackingUsecase
	Logger     *slog.Logger
}

// TrackingHandler streams live order snapshots
type TrackingHandler struct {
	trackingUC usecase.TrackingUsecase
	keepAlive  time.Duration
	logger     *slog.Logger
}

// NewTrackingHandler is the constructor for TrackingHandler
func NewTrackingHandler(params TrackingHandlerParams) *TrackingHandler {
	return &TrackingHandler{
		trackingUC: params.TrackingUC,
		keepAlive:  params.Config.Tracking.KeepAliveInterval,
		logger:     params.Logger,
	}
}

// MapBounds is the box a map view should frame
type MapBounds struct {
	MinLatitude  float64 `json:"min_latitude"`
	MinLongitude float64 `json:"min_longitude"`
	MaxLatitude  float64 `json:"max_latitude"`
	MaxLongitude float64 `json:"max_longitude"`
}

// TrackingView is one snapshot as sent to the client
type TrackingView struct {
	entity.OrderSnapshot
	Bounds               *MapBounds `json:"bounds,omitempty"`
	DriverDistanceMeters *float64   `json:"driver_distance_meters,omitempty"`
}

// NewTrackingView adds the map framing of a snapshot
func NewTrackingView(snapshot entity.OrderSnapshot) TrackingView {
	view := TrackingView{OrderSnapshot: snapshot}
	if bound, ok := snapshot.MapBounds(); ok {
		view.Bounds = &MapBounds{
			MinLatitude:  bound.Min.Lat(),
			MinLongitude: bound.Min.Lon(),
			MaxLatitude:  bound.Max.Lat(),
			MaxLongitude: bound.Max.Lon(),
		}
	}
	if distance, ok := snapshot.DriverDistanceMeters(); ok {
		view.DriverDistanceMeters = &distance
	}

	return view
}

// Stream opens a tracking session and relays its snapshots as Server-Sent Events.
// The stream ends after a terminal snapshot or when the client goes away.
func (h *TrackingHandler) Stream(c echo.Context) error {
	sid, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger).With(slog.Int64("order_id", orderID))

	session, err := h.trackingUC.Open(ctx, sid, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer func() {
		if err := session.Close(); err != nil {
			logger.Warn("Failed to close tracking session", slog.Any("error", err))
		}
	}()

	res := c.Response()
	// The server write timeout would cut the stream.
	_ = http.NewResponseController(res.Writer).SetWriteDeadline(time.Time{})

	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	keepAlive := time.NewTicker(h.keepAlive)
	defer keepAlive.Stop()

	sent := 0
	for {
		select {
		case <-ctx.Done():
			logger.Debug("Tracking client disconnected", slog.Int("snapshots_sent", sent))

			return nil

		case snapshot, ok := <-session.Updates():
			if !ok {
				if err := writeEvent(res, eventEnd, sent, map[string]string{"state": session.State().String()}); err != nil {
					return err
				}
				res.Flush()
				logger.Debug("Tracking stream finished", slog.Int("snapshots_sent", sent))

				return nil
			}

			sent++
			if err := writeEvent(res, eventSnapshot, sent, NewTrackingView(snapshot)); err != nil {
				return err
			}
			res.Flush()

		case <-keepAlive.C:
			if _, err := io.WriteString(res, ": keep-alive\n\n"); err != nil {
				return errors.WithStack(err)
			}
			res.Flush()
		}
	}
}

func writeEvent(w io.Writer, event string, id int, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return errors.Wrap(err, "failed to encode event")
	}

	_, err = fmt.Fprintf(w, "id: %d\nevent: %s\ndata: %s\n\n", id, event, payload)

	return errors.WithStack(err)
}
