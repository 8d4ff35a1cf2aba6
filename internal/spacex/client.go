// Package spacex is a thin client for the public SpaceX REST API.
package spacex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"launchstats/internal/metrics"
	"launchstats/internal/models"
	"launchstats/internal/tracing"
	"launchstats/internal/validation"
)

const userAgent = "launchstats/1.0"

// Endpoint labels used for metrics and spans.
const (
	EndpointLaunches   = "launches"
	EndpointRockets    = "rockets"
	EndpointLaunchPads = "launchpads"
	EndpointPing       = "ping"
)

// Client issues read-only requests against the SpaceX API.
// It holds no per-request state and is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if valid, msg := validation.ValidateBaseURL(baseURL); !valid {
		return nil, fmt.Errorf("invalid spacex base url %q: %s", baseURL, msg)
	}
	return &Client{
		baseURL: validation.NormalizeBaseURL(baseURL),
		http:    &http.Client{Timeout: timeout},
	}, nil
}

// BaseURL returns the normalized upstream base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListLaunches fetches every launch from /launches.
func (c *Client) ListLaunches(ctx context.Context) ([]models.Launch, error) {
	var launches []models.Launch
	if err := c.get(ctx, EndpointLaunches, "/launches", &launches); err != nil {
		return nil, err
	}
	return launches, nil
}

// GetRocket fetches one rocket by id from /rockets/{id}.
func (c *Client) GetRocket(ctx context.Context, id string) (*models.Rocket, error) {
	var rocket models.Rocket
	if err := c.getByID(ctx, EndpointRockets, id, &rocket); err != nil {
		return nil, err
	}
	return &rocket, nil
}

// GetLaunchPad fetches one launch pad by id from /launchpads/{id}.
func (c *Client) GetLaunchPad(ctx context.Context, id string) (*models.LaunchPad, error) {
	var pad models.LaunchPad
	if err := c.getByID(ctx, EndpointLaunchPads, id, &pad); err != nil {
		return nil, err
	}
	return &pad, nil
}

// Ping checks the upstream is reachable. Any HTTP response counts.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { metrics.ObserveUpstream(EndpointPing, outcomeOf(err), time.Since(start)) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/launches/latest", nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}
	resp.Body.Close()
	return nil
}

// getByID fetches /{endpoint}/{id}. Ids that could escape the path are
// reported as not found without a network call.
func (c *Client) getByID(ctx context.Context, endpoint, id string, out any) error {
	if !validation.ValidateID(id) {
		metrics.ObserveUpstream(endpoint, outcomeNotFound, 0)
		return fmt.Errorf("%w: invalid %s id %q", ErrNotFound, endpoint, id)
	}
	return c.get(ctx, endpoint, "/"+endpoint+"/"+id, out)
}

// get performs GET baseURL+path and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, endpoint, path string, out any) (err error) {
	ctx, span := tracing.Tracer().Start(ctx, "spacex."+endpoint)
	span.SetAttributes(attribute.String("spacex.path", path))
	start := time.Now()
	defer func() {
		metrics.ObserveUpstream(endpoint, outcomeOf(err), time.Since(start))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %w", ErrRemoteUnavailable, path, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: GET %s", ErrNotFound, path)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		// Drain so the connection can be reused.
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: GET %s returned %s", ErrRemoteUnavailable, path, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: GET %s: %w", ErrDecode, path, err)
	}
	return nil
}
