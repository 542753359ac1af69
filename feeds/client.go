// Package feeds reads the spreadsheet-backed JSON endpoints that publish the site's
// collections and turns their loosely typed rows into models.
package feeds

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"suratguide/logger"
)

// maxFeedBytes caps a feed response body.
const maxFeedBytes = 8 << 20

var (
	// ErrTransport wraps network failures: DNS, refused connections, timeouts.
	ErrTransport = errors.New("feed: transport error")
	// ErrUnexpectedShape means the payload is neither an array nor {"data": [...]}.
	ErrUnexpectedShape = errors.New("feed: unexpected data format")
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("feed: %s: unexpected status %d", e.URL, e.Code)
}

// UserMessage is the text shown in place of a collection that failed to load.
func UserMessage(err error) string {
	var se *StatusError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &se):
		return fmt.Sprintf("HTTP error! status: %d", se.Code)
	case errors.Is(err, ErrUnexpectedShape):
		return "Unexpected data format from API."
	case errors.Is(err, ErrTransport):
		return "Failed to fetch data."
	default:
		return "An unknown error occurred"
	}
}

// Client fetches feeds. It never retries; a failed fetch is reported to the caller.
type Client struct {
	httpClient *http.Client
	log        *logger.Logger
}

func NewClient(timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With("component", "feeds"),
	}
}

// NewClientWithHTTP lets tests supply their own http.Client.
func NewClientWithHTTP(hc *http.Client, log *logger.Logger) *Client {
	return &Client{httpClient: hc, log: log.With("component", "feeds")}
}

// Fetch GETs url and returns the JSON array it publishes, unwrapped from a
// top-level "data" field when present.
func (c *Client) Fetch(ctx context.Context, url string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("feed: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("feed request failed", "url", url, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("feed returned error status", "url", url, "status", resp.StatusCode)
		return nil, &StatusError{URL: url, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrTransport, err)
	}

	arr, err := Unwrap(body)
	if err != nil {
		c.log.Warn("feed payload rejected", "url", url, "error", err)
		return nil, err
	}

	c.log.Debug("feed fetched", "url", url, "bytes", len(body), "took", time.Since(start))
	return arr, nil
}

// Unwrap accepts either a JSON array or an object whose "data" field is an array and
// returns the array.
func Unwrap(body []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrUnexpectedShape)
	}

	switch trimmed[0] {
	case '[':
		if !json.Valid(trimmed) {
			return nil, fmt.Errorf("%w: malformed JSON array", ErrUnexpectedShape)
		}
		return json.RawMessage(trimmed), nil
	case '{':
		var wrapped struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnexpectedShape, err)
		}
		data := bytes.TrimSpace(wrapped.Data)
		if len(data) == 0 || data[0] != '[' {
			return nil, fmt.Errorf("%w: object without a data array", ErrUnexpectedShape)
		}
		return json.RawMessage(data), nil
	}
	return nil, fmt.Errorf("%w: payload is not an array", ErrUnexpectedShape)
}

// Items decodes a JSON array into its elements. Numbers are kept as json.Number so
// ids like 12 and "12" normalise the same way.
func Items(raw json.RawMessage) ([]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var items []any
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnexpectedShape, err)
	}
	if items == nil {
		items = []any{}
	}
	return items, nil
}
