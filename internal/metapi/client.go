// Package metapi is a client for the Met Museum public collection API.
//
// The catalog treats the remote as effectively static but flaky: transient
// failures are retried with a fixed backoff, while a 404 on an object id is a
// definitive "this id is not a valid record" answer surfaced as ErrNotFound.
package metapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"metroart/internal/ratelimit"
)

// DefaultBaseURL is the public Met collection API endpoint.
const DefaultBaseURL = "https://collectionapi.metmuseum.org/public/collection/v1"

// ErrNotFound signals that the requested object id does not represent a valid
// record. Callers must treat it as a per-id skip, not a failure of the batch.
var ErrNotFound = errors.New("object not found")

// RetryPolicy controls how transient failures are handled.
// MaxAttempts of 0 retries until the request succeeds, which matches the
// historical behavior of the catalog: the remote is assumed to eventually
// recover, and the browser prefers waiting over giving up mid-search.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
}

// DefaultRetryPolicy retries forever with a fixed 1.2s backoff.
var DefaultRetryPolicy = RetryPolicy{MaxAttempts: 0, Backoff: 1200 * time.Millisecond}

// Client talks to the collection API. All requests go through a shared rate
// limiter sized to the API's published budget.
type Client struct {
	baseURL string
	client  *http.Client
	limiter *ratelimit.Limiter
	retry   RetryPolicy

	// sleep is a seam for tests; production code always uses time.Sleep.
	sleep func(time.Duration)
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API root (tests use httptest).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithRetryPolicy overrides the default retry behavior.
func WithRetryPolicy(p RetryPolicy) Option {
	return func(c *Client) { c.retry = p }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// NewClient creates a collection API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
		limiter: ratelimit.New("MetMuseum", ratelimit.MetRequestsPerSecond),
		retry:   DefaultRetryPolicy,
		sleep:   time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Departments returns the museum's department list.
func (c *Client) Departments(ctx context.Context) ([]Department, error) {
	var resp departmentsResponse
	if err := c.getJSON(ctx, c.baseURL+"/departments", &resp); err != nil {
		return nil, err
	}
	return resp.Departments, nil
}

// SearchByDepartment returns the ordered object id list for one department.
func (c *Client) SearchByDepartment(ctx context.Context, departmentID int) ([]int, error) {
	u := fmt.Sprintf("%s/objects?departmentIds=%d", c.baseURL, departmentID)
	var resp searchResponse
	if err := c.getJSON(ctx, u, &resp); err != nil {
		return nil, err
	}
	return resp.ObjectIDs, nil
}

// SearchObjects runs the generic free-text search. The remote matches broadly
// across many fields, so callers layer their own client-side filters on top.
func (c *Client) SearchObjects(ctx context.Context, query string) ([]int, error) {
	u := fmt.Sprintf("%s/search?q=%s", c.baseURL, url.QueryEscape(query))
	var resp searchResponse
	if err := c.getJSON(ctx, u, &resp); err != nil {
		return nil, err
	}
	return resp.ObjectIDs, nil
}

// Object fetches one raw object record. Returns ErrNotFound when the id does
// not resolve to a record.
func (c *Client) Object(ctx context.Context, id int) (*ObjectRecord, error) {
	u := fmt.Sprintf("%s/objects/%d", c.baseURL, id)
	var record ObjectRecord
	if err := c.getJSON(ctx, u, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// getJSON performs a GET and decodes the body, applying the retry policy.
// 404 is terminal (ErrNotFound); any transport error, 5xx or malformed body
// counts as transient and is retried after the fixed backoff.
func (c *Client) getJSON(ctx context.Context, url string, target any) error {
	attempt := 0
	for {
		attempt++
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		slog.Debug("Fetching", "url", url, "attempt", attempt)

		err := c.tryGetJSON(ctx, url, target)
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrNotFound) || ctx.Err() != nil {
			return err
		}

		if c.retry.MaxAttempts > 0 && attempt >= c.retry.MaxAttempts {
			return fmt.Errorf("giving up after %d attempts: %w", attempt, err)
		}

		slog.Warn("Request failed, retrying", "url", url, "attempt", attempt, "backoff", c.retry.Backoff, "error", err)
		c.sleep(c.retry.Backoff)
	}
}

func (c *Client) tryGetJSON(ctx context.Context, url string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
		// decoded below
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
