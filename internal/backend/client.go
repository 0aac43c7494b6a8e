package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fitdash/fitdash/internal/instrumentation"
	"github.com/fitdash/fitdash/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

const (
	oneMinute           = 60
	exerciseCacheExpire = oneMinute * 1 // the library is read-mostly, a short expire is enough
)

// Client is the sole network boundary towards the remote fitness API. Every
// response is a `{status, data, message}` envelope; the client unwraps it and
// hands plain DTOs to callers. The auth token is passed in explicitly per
// call, the client holds no auth state of its own.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *freecache.Cache
	instr      *instrumentation.Instrumentation
}

func NewClient(baseURL string, httpClient *http.Client, instr *instrumentation.Instrumentation) *Client {
	megabyte := 1024 * 1024
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		cache:      freecache.NewCache(10 * megabyte),
		instr:      instr,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

func (c *Client) Get(ctx context.Context, token, path string, out any) error {
	return c.do(ctx, token, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, token, path string, body, out any) error {
	return c.do(ctx, token, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, token, path string, body, out any) error {
	return c.do(ctx, token, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, token, path string, out any) error {
	return c.do(ctx, token, http.MethodDelete, path, nil, out)
}

func (c *Client) do(ctx context.Context, token, method, path string, body, out any) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "backendApi."+method+" "+path)
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			c.countError(err)
		} else {
			span.SetStatus(codes.Ok, "ok")
		}
	}()

	var reqBody io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if normalized := NormalizeToken(token); normalized != "" {
		req.Header.Set("Authorization", "Bearer "+normalized)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response bytes: %w", err)
	}

	httpOK := resp.StatusCode >= 200 && resp.StatusCode <= 299

	var env envelope
	if err := json.Unmarshal(respBytes, &env); err != nil {
		log.Debugf("fitness api, non-envelope response for %s %s: %s", method, path, err)
		if !httpOK {
			return &APIError{
				StatusCode: resp.StatusCode,
				Message:    fmt.Sprintf("API error: %d", resp.StatusCode),
			}
		}
		return ErrInvalidResponse
	}

	if !httpOK {
		message := env.Message
		if message == "" {
			message = fmt.Sprintf("API error: %d", resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if env.Status == "error" {
		message := env.Message
		if message == "" {
			message = "API returned error"
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out == nil || len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return nil
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("unmarshal response data: %w", err)
	}

	return nil
}

func (c *Client) countError(err error) {
	if c.instr == nil {
		return
	}
	c.instr.CounterBackendAPIErrors.WithLabelValues(errorKind(err)).Inc()
}

func errorKind(err error) string {
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		switch {
		case apiErr.StatusCode == http.StatusUnauthorized:
			return "auth_expired"
		case apiErr.StatusCode >= 500:
			return "http_5xx"
		case apiErr.StatusCode >= 400:
			return "http_4xx"
		default:
			return "api_error"
		}
	case errors.Is(err, ErrInvalidResponse):
		return "invalid_response"
	default:
		return "network"
	}
}
