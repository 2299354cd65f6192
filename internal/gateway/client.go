package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sTrAy74/swi-web/internal/infrastructure/observability"
	apperrors "github.com/sTrAy74/swi-web/pkg/errors"
)

const basePath = "/api/custom-auth"

// Session is the credential source for authenticated gateway calls. A 401
// response clears it, which is how an expired or revoked token is retired.
type Session interface {
	Token() string
	Clear()
}

// Config holds gateway client construction parameters
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	Production bool
	Metrics    *observability.Metrics
}

// Client is the HTTP client for the remote content/API gateway. It owns
// nothing: providers, bookings, reviews, and auth all live gateway-side.
type Client struct {
	baseURL    string
	httpClient *http.Client
	production bool
	metrics    *observability.Metrics
}

// NewClient creates a gateway client
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		production: cfg.Production,
		metrics:    cfg.Metrics,
	}
}

// BaseURL returns the configured gateway base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Ping checks gateway reachability by issuing a minimal provider list request
func (c *Client) Ping(ctx context.Context) error {
	q := url.Values{}
	q.Set("pageSize", "1")
	var out ProvidersListResponse
	return c.doJSON(ctx, http.MethodGet, basePath+"/providers", q, nil, &out)
}

type sessionKey struct{}

// WithSession attaches a session to ctx for authenticated calls
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func sessionFrom(ctx context.Context) Session {
	s, _ := ctx.Value(sessionKey{}).(Session)
	return s
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return u
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(ctx, req, path, out)
}

// doMultipart sends form fields plus file parts, used by profile updates
func (c *Client) doMultipart(ctx context.Context, method, path string, fields map[string]string, files []FileUpload, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("failed to write form field %s: %w", key, err)
		}
	}
	for _, file := range files {
		part, err := writer.CreateFormFile(file.Field, file.Name)
		if err != nil {
			return fmt.Errorf("failed to create form file %s: %w", file.Field, err)
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return fmt.Errorf("failed to copy form file %s: %w", file.Field, err)
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, nil), &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.send(ctx, req, path, out)
}

func (c *Client) send(ctx context.Context, req *http.Request, operation string, out any) error {
	session := sessionFrom(ctx)
	if session != nil {
		if token := session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	observability.RecordGatewayMetric(ctx, c.metrics, req.Method+" "+operation, time.Since(start))
	if err != nil {
		return apperrors.NewExternalError("gateway request failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read gateway response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// An expired or rejected token is discarded immediately so the
		// caller lands in the login-required state.
		if resp.StatusCode == http.StatusUnauthorized && session != nil {
			session.Clear()
		}
		return newHTTPError(resp.StatusCode, http.StatusText(resp.StatusCode), raw, c.production)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode gateway response: %w", err)
	}
	return nil
}

// FileUpload is one file part of a multipart request
type FileUpload struct {
	Field   string
	Name    string
	Content io.Reader
}
