package isbn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/zaishu/zaishu-api/internal/config"
	"github.com/zaishu/zaishu-api/internal/platform/logger"
)

// maxBodyBytes caps how much of an upstream response is read.
const maxBodyBytes = 1 << 20

var (
	// ErrUpstream is returned when the book service cannot be reached or answers
	// with something that is not JSON.
	ErrUpstream = errors.New("isbn service unavailable")

	// ErrEmptyISBN is returned for a blank ISBN; no request is made.
	ErrEmptyISBN = errors.New("isbn cannot be empty")
)

// Lookuper fetches metadata for one ISBN.
type Lookuper interface {
	Lookup(ctx context.Context, isbn string) (json.RawMessage, error)
}

// Client calls GET {BaseURL}/{isbn}.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ Lookuper = (*Client)(nil)

// NewClient creates a client from cfg. The configured timeout bounds each lookup.
func NewClient(cfg config.ISBNConfig) *Client {
	return NewClientWithHTTP(cfg.BaseURL, &http.Client{
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	})
}

// NewClientWithHTTP creates a client that sends requests through hc.
func NewClientWithHTTP(baseURL string, hc *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: hc,
	}
}

// Lookup returns the upstream JSON body for isbn, whatever its HTTP status.
func (c *Client) Lookup(ctx context.Context, isbn string) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	isbn = strings.TrimSpace(isbn)
	if isbn == "" {
		return nil, ErrEmptyISBN
	}

	endpoint := c.baseURL + "/" + url.PathEscape(isbn)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("isbn lookup failed",
			slog.String("isbn", isbn),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUpstream, err)
	}

	log.Debug("isbn lookup completed",
		slog.String("isbn", isbn),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)))

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: status %d with non-JSON body", ErrUpstream, resp.StatusCode)
	}
	return json.RawMessage(body), nil
}
