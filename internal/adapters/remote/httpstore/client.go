package httpstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/pillctl/internal/domain"
	"github.com/bnema/pillctl/internal/logger"
	"github.com/bnema/pillctl/internal/ports"
	"github.com/google/uuid"
)

const maxResponseBytes = 1 << 20

const (
	pathListPills      = "/pills"
	pathAddPill        = "/addPill"
	pathDeletePill     = "/deletePill"
	pathUpdateSchedule = "/updateSchedule"
	pathServerInfo     = "/getServerInfo"
	pathDueNow         = "/pillsByTimeRange"
	pathMarkServed     = "/markServed"
	pathUnmarkServed   = "/unMarkServed"
)

const requestIDHeader = "X-Request-ID"

// Client talks to the pill scheduler backend. Every call is a fresh round
// trip: no retries and no caching.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
	Logger     *logger.Logger
}

var _ ports.PillStore = Client{}

type addPillRequest struct {
	Name      string           `json:"name"`
	BoxNumber domain.BoxNumber `json:"boxNumber"`
}

type updateScheduleRequest struct {
	BoxNumber domain.BoxNumber     `json:"boxNumber"`
	Schedule  []domain.SparseEntry `json:"schedule"`
}

type storeErrorResponse struct {
	Error *string `json:"error"`
}

func (c Client) ListPills(ctx context.Context) ([]ports.RemotePill, error) {
	var pills []ports.RemotePill
	if err := c.do(ctx, "list pills", http.MethodGet, pathListPills, nil, &pills); err != nil {
		return nil, err
	}
	if pills == nil {
		pills = []ports.RemotePill{}
	}
	return pills, nil
}

func (c Client) AddPill(ctx context.Context, name string, box domain.BoxNumber) error {
	return c.do(ctx, "add pill", http.MethodPost, pathAddPill, addPillRequest{Name: name, BoxNumber: box}, nil)
}

func (c Client) DeletePill(ctx context.Context, box domain.BoxNumber) error {
	return c.do(ctx, "delete pill", http.MethodDelete, pathDeletePill+"/"+box.String(), nil, nil)
}

func (c Client) UpdateSchedule(ctx context.Context, box domain.BoxNumber, schedule []domain.SparseEntry) error {
	if schedule == nil {
		schedule = []domain.SparseEntry{}
	}
	return c.do(ctx, "update schedule", http.MethodPost, pathUpdateSchedule, updateScheduleRequest{BoxNumber: box, Schedule: schedule}, nil)
}

func (c Client) ServerInfo(ctx context.Context) (domain.ServerInfo, error) {
	var info domain.ServerInfo
	if err := c.do(ctx, "fetch server info", http.MethodGet, pathServerInfo, nil, &info); err != nil {
		return nil, err
	}
	if info == nil {
		info = domain.ServerInfo{}
	}
	return info, nil
}

func (c Client) DueNow(ctx context.Context) (domain.DueNow, error) {
	const operation = "fetch pills by time range"

	var raw json.RawMessage
	if err := c.do(ctx, operation, http.MethodGet, pathDueNow, nil, &raw); err != nil {
		return nil, err
	}

	return decodeDueNow(operation, raw)
}

func (c Client) MarkServed(ctx context.Context) error {
	return c.do(ctx, "mark served", http.MethodGet, pathMarkServed, nil, nil)
}

func (c Client) UnmarkServed(ctx context.Context) error {
	return c.do(ctx, "unmark served", http.MethodGet, pathUnmarkServed, nil, nil)
}

func (c Client) do(ctx context.Context, operation, method, path string, body any, out any) error {
	endpoint, err := buildAPIURL(c.BaseURL, path)
	if err != nil {
		return transportError(operation, err)
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", operation, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return transportError(operation, fmt.Errorf("create request: %w", err))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)

	log := c.logger().With("operation", operation, "method", method, "path", path, "request_id", requestID)
	started := time.Now()

	resp, err := c.httpClient().Do(req)
	if err != nil {
		log.Debugw("remote request failed", "err", err)
		return transportError(operation, err)
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return transportError(operation, fmt.Errorf("read response: %w", err))
	}
	log.Debugw("remote request completed", "status", resp.StatusCode, "elapsed", time.Since(started))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeStoreError(operation, resp.StatusCode, payload)
	}

	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return transportError(operation, fmt.Errorf("decode response: %w", err))
	}

	return nil
}

// decodeStoreError prefers the store's {"error": "..."} message and falls back
// to a generic transport message when the body does not carry one.
func decodeStoreError(operation string, status int, payload []byte) error {
	var storeErr storeErrorResponse
	if err := json.Unmarshal(payload, &storeErr); err == nil && storeErr.Error != nil && strings.TrimSpace(*storeErr.Error) != "" {
		kind := domain.ErrorKindValidation
		if status == http.StatusNotFound {
			kind = domain.ErrorKindNotFound
		}
		return &domain.RemoteError{Kind: kind, Message: *storeErr.Error, Status: status}
	}

	return &domain.RemoteError{
		Kind:    domain.ErrorKindTransport,
		Message: fmt.Sprintf("%s failed: status %d", operation, status),
		Status:  status,
	}
}

func decodeDueNow(operation string, raw json.RawMessage) (domain.DueNow, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return domain.DueNow{}, nil
	}

	switch trimmed[0] {
	case '[':
		var items domain.DueNow
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, transportError(operation, fmt.Errorf("decode response: %w", err))
		}
		if items == nil {
			items = domain.DueNow{}
		}
		return items, nil
	case '{':
		var storeErr storeErrorResponse
		if err := json.Unmarshal(trimmed, &storeErr); err == nil && storeErr.Error != nil && strings.TrimSpace(*storeErr.Error) != "" {
			return nil, &domain.RemoteError{Kind: domain.ErrorKindValidation, Message: *storeErr.Error, Status: http.StatusOK}
		}
	}

	return nil, transportError(operation, errors.New("unexpected response shape"))
}

func transportError(operation string, cause error) error {
	return &domain.RemoteError{
		Kind:    domain.ErrorKindTransport,
		Message: fmt.Sprintf("%s failed: %v", operation, cause),
		Cause:   cause,
	}
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c Client) logger() *logger.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return logger.Nop()
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("server url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse server url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("server url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("server url host is required")
	}

	return parsed.JoinPath(path).String(), nil
}
