package client

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"time"

	reqdto "hydro-command/internal/handler/dto/request"
	resdto "hydro-command/internal/handler/dto/response"
	"hydro-command/internal/pkg/patch"
	"hydro-command/internal/usecase/queries"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "http://localhost:8080"
	DefaultTimeout = 15 * time.Second
	apiKeyHeader   = "x-api-key"
)

type Config struct {
	BaseURL string
	// Token is an operator JWT for the dashboard routes.
	Token string
	// APIKey authenticates device routes.
	APIKey  string
	Timeout time.Duration
	Retries int
}

// Client talks to the hydro-command HTTP API. Only idempotent GETs are
// retried; a retried enqueue could queue the same command twice.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

func New(cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	hc := resty.New().
		SetBaseURL(patch.CoalesceString(cfg.BaseURL, DefaultBaseURL)).
		SetTimeout(timeout).
		SetRetryCount(cfg.Retries).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(3 * time.Second).
		AddRetryCondition(retryableGET).
		SetHeader("Accept", "application/json")
	if cfg.Token != "" {
		hc.SetAuthToken(cfg.Token)
	}
	if cfg.APIKey != "" {
		hc.SetHeader(apiKeyHeader, cfg.APIKey)
	}

	return &Client{http: hc, logger: logger}
}

func retryableGET(r *resty.Response, err error) bool {
	if r == nil || r.Request == nil || r.Request.Method != http.MethodGet {
		return false
	}
	return err != nil || r.StatusCode() >= http.StatusInternalServerError
}

func (c *Client) EnqueueCommand(ctx context.Context, deviceID string, body reqdto.EnqueueCommandRequest) (*resdto.EnqueueCommandResponse, error) {
	var out resdto.EnqueueCommandResponse
	if err := c.do(ctx, http.MethodPost, "/api/devices/{device_id}/commands", deviceID, body, nil, &out); err != nil {
		return nil, err
	}
	c.logger.Info("command queued",
		zap.String("device_id", deviceID),
		zap.String("command_id", out.CommandID),
		zap.String("action", out.Action),
		zap.String("priority", out.Priority))
	return &out, nil
}

func (c *Client) PollCommands(ctx context.Context, deviceID string) (*resdto.PollCommandsResponse, error) {
	var out resdto.PollCommandsResponse
	if err := c.do(ctx, http.MethodGet, "/api/devices/{device_id}/commands", deviceID, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CommandHistory(ctx context.Context, deviceID string, limit int) ([]resdto.CommandHistoryItem, error) {
	var out struct {
		Commands []resdto.CommandHistoryItem `json:"commands"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/devices/{device_id}/commands/history", deviceID, nil, limitQuery(limit), &out); err != nil {
		return nil, err
	}
	return out.Commands, nil
}

func (c *Client) RegisterDevice(ctx context.Context, body reqdto.RegisterDeviceRequest) (*resdto.DeviceResponse, error) {
	var out resdto.DeviceResponse
	if err := c.do(ctx, http.MethodPost, "/api/devices", "", body, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListDevices(ctx context.Context) ([]resdto.DeviceResponse, error) {
	var out struct {
		Devices []resdto.DeviceResponse `json:"devices"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/devices", "", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Devices, nil
}

func (c *Client) IssueAPIKey(ctx context.Context, deviceID string, expiresAt *time.Time) (*resdto.APIKeyResponse, error) {
	var out resdto.APIKeyResponse
	body := reqdto.IssueAPIKeyRequest{ExpiresAt: expiresAt}
	if err := c.do(ctx, http.MethodPost, "/api/devices/{device_id}/api-keys", deviceID, body, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Ingest(ctx context.Context, body reqdto.IngestSensorRequest) (*resdto.IngestResponse, error) {
	var out resdto.IngestResponse
	if err := c.do(ctx, http.MethodPost, "/api/sensors/ingest", "", body, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) LatestReading(ctx context.Context, deviceID string) (*queries.ReadingView, error) {
	var out resdto.LatestReadingResponse
	if err := c.do(ctx, http.MethodGet, "/api/sensors/latest/{device_id}", deviceID, nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Reading, nil
}

func (c *Client) Alerts(ctx context.Context, deviceID string, limit int) ([]resdto.AlertResponse, error) {
	var out struct {
		Alerts []resdto.AlertResponse `json:"alerts"`
	}
	q := limitQuery(limit)
	if deviceID != "" {
		q["device_id"] = deviceID
	}
	if err := c.do(ctx, http.MethodGet, "/api/alerts", "", nil, q, &out); err != nil {
		return nil, err
	}
	return out.Alerts, nil
}

// Export downloads a rendered report and returns its body and file name.
func (c *Client) Export(ctx context.Context, deviceID, format string, hours int) ([]byte, string, error) {
	q := map[string]string{"deviceId": deviceID, "format": format}
	if hours > 0 {
		q["hours"] = strconv.Itoa(hours)
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(q).
		SetError(&errorBody{}).
		Get("/api/export")
	if err != nil {
		return nil, "", &TransportError{Op: "export", Err: err}
	}
	if resp.IsError() {
		return nil, "", newAPIError(resp)
	}
	return resp.Body(), filenameFrom(resp.Header().Get("Content-Disposition"), deviceID, format), nil
}

func (c *Client) do(ctx context.Context, method, path, deviceID string, body any, query map[string]string, out any) error {
	req := c.http.R().
		SetContext(ctx).
		SetResult(out).
		SetError(&errorBody{})
	if deviceID != "" {
		req.SetPathParam("device_id", deviceID)
	}
	if body != nil {
		req.SetBody(body)
	}
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.Warn("api request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return &TransportError{Op: method + " " + path, Err: err}
	}
	if resp.IsError() {
		apiErr := newAPIError(resp)
		c.logger.Debug("api returned error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", apiErr.Status),
			zap.String("message", apiErr.Message))
		return apiErr
	}
	return nil
}

func limitQuery(limit int) map[string]string {
	q := map[string]string{}
	if limit > 0 {
		q["limit"] = strconv.Itoa(limit)
	}
	return q
}

func filenameFrom(disposition, deviceID, format string) string {
	if _, params, err := mime.ParseMediaType(disposition); err == nil && params["filename"] != "" {
		return params["filename"]
	}
	return fmt.Sprintf("hydro-nexus_%s.%s", deviceID, format)
}
