// Package api is the client for the connections HTTP API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/asiyani/lazyftp/pkg/models"
)

const (
	DefaultTimeout = 30 * time.Second

	listPath       = "/api/v1/connections"
	connectionPath = "/api/v1/connection"

	// maxErrorBody caps how much of an error response ends up in a StatusError.
	maxErrorBody = 512
)

type Options struct {
	BaseURL string
	Timeout time.Duration
	Token   string
	// HTTPClient overrides the default client; Timeout is ignored when set.
	HTTPClient *http.Client
}

type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	token      string
	logger     *zap.Logger
}

func NewClient(opts Options, logger *zap.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", opts.BaseURL)
	}

	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		httpClient: hc,
		baseURL:    base,
		token:      opts.Token,
		logger:     logger.Named("api"),
	}, nil
}

// ListConnections returns the records in the order the backend sent them.
func (c *Client) ListConnections(ctx context.Context) ([]models.Connection, error) {
	var conns []models.Connection
	if err := c.do(ctx, http.MethodGet, listPath, nil, &conns); err != nil {
		return nil, err
	}
	if conns == nil {
		conns = []models.Connection{}
	}
	return conns, nil
}

func (c *Client) GetConnection(ctx context.Context, id string) (models.Connection, error) {
	p, err := recordPath(id)
	if err != nil {
		return models.Connection{}, err
	}
	var conn models.Connection
	if err := c.do(ctx, http.MethodGet, p, nil, &conn); err != nil {
		return models.Connection{}, err
	}
	return conn, nil
}

func (c *Client) CreateConnection(ctx context.Context, fields models.Fields) (models.Connection, error) {
	var conn models.Connection
	if err := c.do(ctx, http.MethodPost, connectionPath, fields, &conn); err != nil {
		return models.Connection{}, err
	}
	if conn.IsNew() {
		return models.Connection{}, fmt.Errorf("%s %s: %w: record has no id", http.MethodPost, connectionPath, ErrMalformedResponse)
	}
	return conn, nil
}

func (c *Client) UpdateConnection(ctx context.Context, id string, fields models.Fields) (models.Connection, error) {
	p, err := recordPath(id)
	if err != nil {
		return models.Connection{}, err
	}
	var conn models.Connection
	if err := c.do(ctx, http.MethodPut, p, fields, &conn); err != nil {
		return models.Connection{}, err
	}
	if conn.ID != id {
		return models.Connection{}, fmt.Errorf("%s %s: %w: record id %q", http.MethodPut, p, ErrMalformedResponse, conn.ID)
	}
	return conn, nil
}

// DeleteConnection removes a record. The backend answers with a plain "OK",
// so the body is not decoded.
func (c *Client) DeleteConnection(ctx context.Context, id string) error {
	p, err := recordPath(id)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, p, nil, nil)
}

// Submit creates the record when fields carry no id and updates it otherwise.
func (c *Client) Submit(ctx context.Context, fields models.Fields) (conn models.Connection, created bool, err error) {
	if id := fields.ID(); id != "" {
		conn, err = c.UpdateConnection(ctx, id, fields)
		return conn, false, err
	}
	conn, err = c.CreateConnection(ctx, fields)
	return conn, true, err
}

// recordPath rejects ids that would collapse into another route once the
// path is cleaned.
func recordPath(id string) (string, error) {
	switch id {
	case "", ".", "..":
		return "", fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return connectionPath + "/" + url.PathEscape(id), nil
}

func (c *Client) endpoint(p string) string {
	u := *c.baseURL
	// p may carry escaped segments, keep them intact in RawPath.
	unescaped, err := url.PathUnescape(p)
	if err != nil {
		unescaped = p
	}
	u.Path = path.Join(c.baseURL.Path, unescaped)
	u.RawPath = c.baseURL.EscapedPath() + p
	return u.String()
}

func (c *Client) do(ctx context.Context, method, p string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(p), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.logger.Debug("API request",
		zap.String("method", method),
		zap.String("path", p),
		zap.String("request_id", requestID))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w: %w", method, p, ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: failed to read response: %w: %w", method, p, ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug("API returned error status",
			zap.String("method", method),
			zap.String("path", p),
			zap.Int("status", resp.StatusCode),
			zap.String("request_id", requestID))
		return &StatusError{
			Method: method,
			Path:   p,
			Code:   resp.StatusCode,
			Body:   truncate(strings.TrimSpace(string(data)), maxErrorBody),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s %s: %w: %w", method, p, ErrMalformedResponse, err)
	}
	return nil
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
