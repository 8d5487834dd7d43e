package fred

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"mcp-fred/internal/credential"
	"mcp-fred/pkg/logging"
)

// DefaultBaseURL is the root of the FRED REST API.
const DefaultBaseURL = "https://api.stlouisfed.org/fred"

// requestTimeout is the fixed per-request timeout. A timed-out request
// surfaces as a transport failure; there is no retry.
const requestTimeout = 30 * time.Second

// Client issues queries against the FRED API. It owns credential injection
// and response parsing; it performs exactly one HTTP attempt per call.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      *credential.Provider
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client. Used by tests to point the
// client at a stub upstream.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL overrides the upstream base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// NewClient creates a FRED API client that resolves its API key through the
// given provider on each request.
func NewClient(creds *credential.Provider, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		creds:      creds,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Observations fetches the raw observation records for one series with a
// single GET against /series/observations. Optional date bounds from the
// query are forwarded verbatim. A reachable upstream whose body lacks the
// "observations" key yields ErrNoObservations.
func (c *Client) Observations(ctx context.Context, query SeriesQuery) ([]RawObservation, error) {
	params := url.Values{}
	params.Set("series_id", query.SeriesID)
	if query.StartDate != "" {
		params.Set("observation_start", query.StartDate)
	}
	if query.EndDate != "" {
		params.Set("observation_end", query.EndDate)
	}

	body, err := c.get(ctx, "/series/observations", params)
	if err != nil {
		return nil, err
	}

	var envelope observationsEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse observations response: %w", err)
	}
	if envelope.Observations == nil {
		return nil, ErrNoObservations
	}

	logging.Debug("FredClient", "fetched %d raw observations for %s", len(*envelope.Observations), query.SeriesID)
	return *envelope.Observations, nil
}

// SeriesInfo fetches the metadata record for one series with a single GET
// against /series. A reachable upstream without a usable "seriess" entry
// yields ErrSeriesNotFound.
func (c *Client) SeriesInfo(ctx context.Context, seriesID string) (SeriesMeta, error) {
	params := url.Values{}
	params.Set("series_id", seriesID)

	body, err := c.get(ctx, "/series", params)
	if err != nil {
		return SeriesMeta{}, err
	}

	var envelope seriesEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return SeriesMeta{}, fmt.Errorf("failed to parse series response: %w", err)
	}
	if len(envelope.Seriess) == 0 {
		return SeriesMeta{}, ErrSeriesNotFound
	}

	meta := envelope.Seriess[0]
	meta.SeriesID = seriesID
	return meta, nil
}

// get performs one GET against the given API path with the fixed parameters
// (api_key, file_type=json) merged into params. Non-2xx statuses and
// transport failures both return wrapped errors carrying the cause.
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	apiKey, err := c.creds.Get()
	if err != nil {
		return nil, err
	}
	params.Set("api_key", apiKey)
	params.Set("file_type", "json")

	endpoint := c.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to FRED API failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read FRED API response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logging.Debug("FredClient", "request to %s failed with status %d", path, resp.StatusCode)
		return nil, fmt.Errorf("FRED API request failed with status %d", resp.StatusCode)
	}

	return body, nil
}
