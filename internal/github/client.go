package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"githubActivityFeed/internal/logger"
	"githubActivityFeed/internal/model"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

const DefaultBaseURL = "https://api.github.com"

// HTTPClient is the subset of *http.Client the feed client needs.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetcher returns the public events of one user.
type Fetcher interface {
	FetchEvents(ctx context.Context, username string) ([]model.Event, error)
}

type Client struct {
	baseURL    string
	httpClient HTTPClient
}

type Option func(*Client)

// WithHTTPClient swaps the transport, mostly for tests.
func WithHTTPClient(h HTTPClient) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithTimeout bounds each request. Zero leaves the request unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient = &http.Client{Timeout: d} }
}

func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// EventsURL is the feed endpoint for username. The name is path-escaped but
// otherwise not validated.
func (c *Client) EventsURL(username string) string {
	return fmt.Sprintf("%s/users/%s/events", c.baseURL, url.PathEscape(username))
}

// FetchEvents performs exactly one unauthenticated GET. Non-200 answers come
// back as a *FetchError of kind UnexpectedStatus; nothing is retried.
func (c *Client) FetchEvents(ctx context.Context, username string) ([]model.Event, error) {
	u := c.EventsURL(username)
	logger.Lg.Info("api_fetch_flight", zap.String("url", u))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &FetchError{Kind: NetworkError, Err: err}
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "githubActivityFeed")

	res, err := c.httpClient.Do(req)
	if err != nil {
		logger.Lg.Error("api_fetch_error", zap.Error(err))
		return nil, &FetchError{Kind: NetworkError, Err: err}
	}
	defer res.Body.Close()

	logger.Lg.Info("api_fetch_done",
		zap.String("url", u),
		zap.Int("status", res.StatusCode),
		zap.Int("content_length", int(res.ContentLength)),
	)

	if res.StatusCode != http.StatusOK {
		return nil, &FetchError{Kind: UnexpectedStatus, StatusCode: res.StatusCode}
	}

	var events []model.Event
	if err := json.NewDecoder(res.Body).Decode(&events); err != nil {
		return nil, &FetchError{Kind: DecodeError, StatusCode: res.StatusCode, Err: err}
	}
	return events, nil
}
