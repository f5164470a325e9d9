// Package remote implements the listing, settings and auth gateways against
// the marketplace REST API.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	jmespath "github.com/jmespath-community/go-jmespath"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/oauth2"

	apperrors "github.com/Muhamedyehya/aqar-admin/internal/errors"
)

const (
	defaultTimeout      = 15 * time.Second
	defaultListingsExpr = "ads"
	defaultErrorExpr    = "error || message"
	maxResponseBytes    = 8 << 20
	requestIDHeader     = "X-Request-ID"
)

// Config configures the API client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// Credentials supplies the bearer token for mutating endpoints.
	Credentials oauth2.TokenSource
	// ListingsExpr extracts the listing array from an object-shaped list response.
	ListingsExpr string
	// ErrorExpr extracts the human-readable message from an error body.
	ErrorExpr  string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client is a small JSON client for the marketplace API.
type Client struct {
	baseURL      string
	creds        oauth2.TokenSource
	listingsExpr string
	errorExpr    string
	http         *http.Client
	logger       *slog.Logger
}

// NewClient validates cfg and builds a Client.
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("api base url is required")
	}
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid api base url %q", cfg.BaseURL)
	}

	listingsExpr := fallbackString(strings.TrimSpace(cfg.ListingsExpr), defaultListingsExpr)
	errorExpr := fallbackString(strings.TrimSpace(cfg.ErrorExpr), defaultErrorExpr)
	for _, expr := range []string{listingsExpr, errorExpr} {
		if _, err := jmespath.Compile(expr); err != nil {
			return nil, fmt.Errorf("invalid jmespath expression %q: %w", expr, err)
		}
	}

	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			return nil, fmt.Errorf("create cookie jar: %w", err)
		}
		hc = &http.Client{Timeout: timeout, Jar: jar}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:      base,
		creds:        cfg.Credentials,
		listingsExpr: listingsExpr,
		errorExpr:    errorExpr,
		http:         hc,
		logger:       logger.With("component", "remote"),
	}, nil
}

func fallbackString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

type request struct {
	method string
	path   string
	body   any
	authed bool
}

// do sends req and returns the raw success body. Transport failures map to
// network errors and non-2xx answers to rejections carrying the body's message.
func (c *Client) do(ctx context.Context, req request) ([]byte, error) {
	var body io.Reader
	if req.body != nil {
		b, err := json.Marshal(req.body)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode request body")
		}
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, body)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "build request")
	}
	requestID := uuid.NewString()
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(requestIDHeader, requestID)
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.authed && c.creds != nil {
		tok, err := c.creds.Token()
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "obtain bearer token")
		}
		tok.SetAuthHeader(httpReq)
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeCanceled, "request canceled")
		}
		return nil, apperrors.Network(err, fmt.Sprintf("%s %s failed", req.method, req.path))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, apperrors.Network(err, "read response body")
	}

	c.logger.DebugContext(ctx, "api request",
		"method", req.method,
		"path", req.path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.Rejected(resp.StatusCode, c.errorMessage(data))
	}
	return data, nil
}

// errorMessage extracts the message from an error body, or "" when the body
// is not JSON or carries none.
func (c *Client) errorMessage(data []byte) string {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return ""
	}
	v, err := jmespath.Search(c.errorExpr, doc)
	if err != nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

func decodeInto(data []byte, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "decode response")
	}
	return nil
}

func isEmptyBody(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
