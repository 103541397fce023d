// Package omdb is a small client for the OMDb movie database API.
//
// Only the two read endpoints the search screen needs are covered: a free
// text search (?s=) and a lookup by IMDb ID (?i=). Failures come back in
// three shapes: *APIError when OMDb answers Response "False", ErrNotFound
// when a lookup answers "True" without a record, and ErrTransport for
// everything that never produced an OMDb envelope.
package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	DefaultBaseURL = "https://www.omdbapi.com/"
	DefaultTimeout = 10 * time.Second

	userAgent = "moviesearch/1.0"
)

// Client talks to OMDb over HTTP.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another endpoint, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the per-request timeout of the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.client.Timeout = d
	}
}

// NewClient creates a new API client
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: logger.With().Str("component", "omdb").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search returns the first page of titles matching query, in API order.
func (c *Client) Search(ctx context.Context, query string) ([]Item, error) {
	params := url.Values{}
	params.Set("s", query)

	var resp searchResponse
	if err := c.get(ctx, "search", params, &resp); err != nil {
		return nil, err
	}

	if err := checkStatus(resp.Response, resp.Error); err != nil {
		return nil, err
	}
	if resp.Search == nil {
		return []Item{}, nil
	}
	return resp.Search, nil
}

// Detail fetches the full record for an IMDb ID, with the full plot.
func (c *Client) Detail(ctx context.Context, id string) (*Detail, error) {
	params := url.Values{}
	params.Set("i", id)
	params.Set("plot", "full")

	var resp detailResponse
	if err := c.get(ctx, "detail", params, &resp); err != nil {
		return nil, err
	}

	if err := checkStatus(resp.Response, resp.Error); err != nil {
		return nil, err
	}
	if resp.ImdbID == "" && resp.Title == "" {
		return nil, ErrNotFound
	}

	detail := resp.Detail
	detail.Plot = plainText(detail.Plot)
	detail.Awards = plainText(detail.Awards)
	return &detail, nil
}

// get issues a GET against the API root and decodes the JSON body into out.
// The status code is not checked: OMDb reports its own failures (bad key,
// unknown ID) as JSON with Response "False", whatever the status.
func (c *Client) get(ctx context.Context, kind string, params url.Values, out any) error {
	params.Set("apikey", c.apiKey)
	reqURL := c.baseURL + "?" + params.Encode()

	log := c.logger.With().
		Str("request_id", uuid.NewString()).
		Str("kind", kind).
		Logger()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", ErrTransport, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		log.Warn().Err(err).Dur("latency", time.Since(start)).Msg("request failed")
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Warn().Err(err).Int("status", resp.StatusCode).Msg("undecodable response")
		return fmt.Errorf("%w: decode response: %v", ErrTransport, err)
	}

	log.Debug().
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("request completed")
	return nil
}
