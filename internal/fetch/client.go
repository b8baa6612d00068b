package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/DeafMist/get-title/internal/models"
)

// DefaultTimeout bounds a single request when no other timeout is set.
const DefaultTimeout = 10 * time.Second

var errNotArray = errors.New("response body is not a JSON array")

// NetworkError covers transport failures, timeouts and non-2xx responses.
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("get %s: unexpected status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("get %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError reports a body that is not a JSON array.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse response from %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Client performs one unauthenticated GET per call.
type Client struct {
	http *http.Client
	log  *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout replaces the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the logger used by Fetch.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// New builds a Client with a DefaultTimeout HTTP client.
func New(opts ...Option) *Client {
	c := &Client{
		http: &http.Client{Timeout: DefaultTimeout},
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get fetches url and decodes the body as an array of records.
func (c *Client) Get(ctx context.Context, url string) ([]models.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: fmt.Errorf("build request: %w", err)}
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &NetworkError{URL: url, StatusCode: res.StatusCode, Err: errors.New(http.StatusText(res.StatusCode))}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: fmt.Errorf("read body: %w", err)}
	}

	if trimmed := bytes.TrimSpace(body); len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &ParseError{URL: url, Err: errNotArray}
	}

	var records []models.Record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, &ParseError{URL: url, Err: err}
	}
	return records, nil
}

// Fetch is Get with failures logged and turned into an empty result.
func (c *Client) Fetch(ctx context.Context, url string) []models.Record {
	records, err := c.Get(ctx, url)
	if err != nil {
		c.log.Error("fetch data", slog.String("class", errorClass(err)), slog.Any("err", err))
		return []models.Record{}
	}
	return records
}

func errorClass(err error) string {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return "parse"
	}
	return "network"
}
