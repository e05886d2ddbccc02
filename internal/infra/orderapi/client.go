// Package orderapi is the HTTP client of the upstream order REST API.
package orderapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"efood/config"
	deliverycontext "efood/internal/delivery/context"
	"efood/internal/domain/entity"
	domainerrors "efood/internal/domain/errors"
	"efood/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	ordersPath      = "/client/orders"
	deviceTokenPath = "/client/users/fcm-token"

	maxResponseBytes = 1 << 20
	defaultTimeout   = 10 * time.Second
)

// Client talks to the order API on behalf of the caller in ctx.
type Client struct {
	baseURL         string
	defaultLanguage string
	httpClient      *http.Client
	logger          *slog.Logger
}

// NewClient creates the order API client
func NewClient(cfg *config.Config, logger *slog.Logger) service.OrderAPI {
	timeout := cfg.OrderAPI.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:         strings.TrimRight(cfg.OrderAPI.BaseURL, "/"),
		defaultLanguage: cfg.OrderAPI.DefaultLanguage,
		httpClient:      &http.Client{Timeout: timeout},
		logger:          logger,
	}
}

// FetchOrder loads the current snapshot of an order.
func (c *Client) FetchOrder(ctx context.Context, orderID int64) (*entity.OrderSnapshot, error) {
	var payload orderEnvelope
	status, err := c.do(ctx, http.MethodGet, ordersPath+"/"+strconv.FormatInt(orderID, 10), nil, &payload)
	if err != nil {
		return nil, domainerrors.ErrOrderFetchFailed.WrapMessage(err.Error())
	}

	switch {
	case status == http.StatusNotFound:
		return nil, domainerrors.ErrOrderNotFound
	case status >= http.StatusBadRequest:
		return nil, domainerrors.ErrOrderFetchFailed.WithDetails("upstream status " + strconv.Itoa(status))
	case !payload.Success || payload.Data.Order == nil:
		return nil, domainerrors.ErrOrderFetchFailed.WithDetails(payload.failureMessage())
	}

	snapshot, err := payload.Data.Order.toSnapshot()
	if err != nil {
		return nil, domainerrors.ErrOrderFetchFailed.WithDetails(err.Error())
	}

	return snapshot, nil
}

// SubmitOrder places the order of one store's cart.
func (c *Client) SubmitOrder(ctx context.Context, submission *entity.OrderSubmission) (*entity.OrderReceipt, error) {
	body, err := json.Marshal(submission)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode order submission")
	}

	var payload orderEnvelope
	status, err := c.do(ctx, http.MethodPost, ordersPath, body, &payload)
	if err != nil {
		return nil, domainerrors.ErrOrderSubmitFailed.WrapMessage(err.Error())
	}

	switch {
	case status >= http.StatusInternalServerError:
		return nil, domainerrors.ErrOrderSubmitFailed.WithDetails("upstream status " + strconv.Itoa(status))
	case status >= http.StatusBadRequest || !payload.Success:
		return nil, domainerrors.ErrOrderRejected.WithDetails(payload.failureMessage())
	case payload.Data.Order == nil:
		return nil, domainerrors.ErrOrderSubmitFailed.WithDetails("response without order")
	}

	return payload.Data.Order.toReceipt(), nil
}

// RegisterDeviceToken forwards the FCM token of the signed-in customer.
func (c *Client) RegisterDeviceToken(ctx context.Context, fcmToken string) error {
	body, err := json.Marshal(map[string]string{"fcm_token": fcmToken})
	if err != nil {
		return errors.WithStack(err)
	}

	var payload orderEnvelope
	status, err := c.do(ctx, http.MethodPost, deviceTokenPath, body, &payload)
	if err != nil {
		return err
	}
	if status >= http.StatusBadRequest {
		return errors.Errorf("register device token: upstream status %d", status)
	}

	return nil
}

// do sends one request and decodes the JSON body into out.
// Non-2xx statuses are returned, not treated as errors.
func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, errors.Wrap(err, "failed to create order API request")
	}
	c.setHeaders(ctx, req, body != nil)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	deliverycontext.GetLoggerOrDefault(ctx, c.logger).Debug("Order API call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return resp.StatusCode, errors.Wrap(err, "failed to read order API response")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return resp.StatusCode, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return resp.StatusCode, nil
		}

		return resp.StatusCode, errors.Wrap(err, "failed to decode order API response")
	}

	return resp.StatusCode, nil
}

func (c *Client) setHeaders(ctx context.Context, req *http.Request, hasBody bool) {
	upstream := deliverycontext.GetUpstream(ctx)

	req.Header.Set("Accept", "application/json")
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}

	language := upstream.AcceptLanguage
	if language == "" {
		language = c.defaultLanguage
	}
	if language != "" {
		req.Header.Set(deliverycontext.HeaderAcceptLanguage, language)
	}
	if upstream.Authorization != "" {
		req.Header.Set("Authorization", upstream.Authorization)
	}
	if upstream.Location != "" {
		req.Header.Set(deliverycontext.HeaderXLocation, upstream.Location)
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}
}
