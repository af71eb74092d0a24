package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/storerating/internal/common"
	"github.com/dmitrijs2005/storerating/internal/logging"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout   = 15 * time.Second
	defaultRateLimit = 10
	defaultBurst     = 5
	maxResponseBytes = 4 << 20
)

// Config holds transport settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// RateLimit is the sustained number of requests per second; Burst is
	// the bucket size. Zero values select the defaults.
	RateLimit float64
	Burst     int
}

// HTTPClient implements Client over net/http.
type HTTPClient struct {
	baseURL  string
	http     *http.Client
	limiter  *rate.Limiter
	sessions SessionStore
	log      logging.Logger

	mu             sync.RWMutex
	onUnauthorized func(ctx context.Context)
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(cfg Config, sessions SessionStore, log logging.Logger) *HTTPClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	limit := cfg.RateLimit
	if limit <= 0 {
		limit = defaultRateLimit
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = defaultBurst
	}

	return &HTTPClient{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		limiter:  rate.NewLimiter(rate.Limit(limit), burst),
		sessions: sessions,
		log:      log,
	}
}

// OnUnauthorized registers fn to run after a 401 has cleared the session.
func (c *HTTPClient) OnUnauthorized(fn func(ctx context.Context)) {
	c.mu.Lock()
	c.onUnauthorized = fn
	c.mu.Unlock()
}

// envelope is a decoded successful response.
type envelope struct {
	Message string
	Data    gjson.Result
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body any) (envelope, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return envelope{}, fmt.Errorf("rate limit: %w", err)
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return envelope{}, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return envelope{}, fmt.Errorf("create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if token := c.sessions.Token(); token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	}

	log := c.log.With("method", method, "path", path, "request_id", requestID)
	log.Debug(ctx, "api request")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return envelope{}, ctxErr
		}
		log.Warn(ctx, "api request failed", "error", err)
		return envelope{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return envelope{}, fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}
	log.Debug(ctx, "api response", "status", resp.StatusCode, "bytes", len(raw))

	if resp.StatusCode == http.StatusUnauthorized {
		return envelope{}, c.unauthorized(ctx, raw)
	}

	return decodeEnvelope(resp.StatusCode, raw)
}

func (c *HTTPClient) unauthorized(ctx context.Context, raw []byte) error {
	if err := c.sessions.Clear(ctx); err != nil {
		c.log.Error(ctx, "clear session after 401", "error", err)
	}

	c.mu.RLock()
	hook := c.onUnauthorized
	c.mu.RUnlock()
	if hook != nil {
		hook(ctx)
	}

	if msg := gjson.GetBytes(raw, "resultMessage").String(); msg != "" {
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	}
	return ErrUnauthorized
}

// decodeEnvelope maps a non-401 response onto the envelope contract.
func decodeEnvelope(status int, raw []byte) (envelope, error) {
	ok2xx := status >= 200 && status < 300

	if !gjson.ValidBytes(raw) || !gjson.ParseBytes(raw).IsObject() {
		if ok2xx {
			return envelope{}, ErrMalformedResponse
		}
		return envelope{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, status)
	}

	doc := gjson.ParseBytes(raw)
	code := doc.Get("resultCode")
	msg := doc.Get("resultMessage")

	if ok2xx && code.Exists() && code.Int() == 0 && code.Type == gjson.Number {
		return envelope{Message: msg.String(), Data: doc.Get("resultData")}, nil
	}

	if !code.Exists() && !msg.Exists() {
		if ok2xx {
			return envelope{}, ErrMalformedResponse
		}
		return envelope{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, status)
	}

	apiErr := &APIError{Status: status, Code: code.Int(), Message: msg.String()}
	if apiErr.Code == 0 {
		apiErr.Code = -1
	}
	if msg.Type != gjson.String || strings.TrimSpace(apiErr.Message) == "" {
		apiErr.Message = common.UnknownErrorMessage
	}
	return envelope{}, apiErr
}

// decodeData unmarshals resultData into v.
func decodeData(env envelope, v any) error {
	if !env.Data.Exists() || env.Data.Type == gjson.Null {
		return fmt.Errorf("%w: missing resultData", ErrMalformedResponse)
	}
	if err := json.Unmarshal([]byte(env.Data.Raw), v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

// IsAuthError reports whether err means the session is gone.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
