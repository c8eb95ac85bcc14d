package twitchapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	// DefaultBaseURL is the root of the Twitch App add-on API.
	DefaultBaseURL = "https://addons-ecs.forgesvc.net/api/v2"
	// Version is the library version reported in the default User-Agent.
	Version = "0.1.3"
	// DefaultUserAgent identifies this client to the API.
	DefaultUserAgent = "twitch_app_api_go/" + Version
)

// API is the set of fetch operations the Client implements.
type API interface {
	Addon(ctx context.Context, id uint64) (*Addon, error)
	Category(ctx context.Context, id uint64) (*Category, error)
	CategorySection(ctx context.Context, id uint64) ([]Category, error)
}

var _ API = (*Client)(nil)

// Client handles communication with the Twitch App API.
// It holds no mutable state and is safe for concurrent use.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient builds a client whose requests always carry
// "Accept: application/json" and the configured User-Agent.
func NewClient(opts ...Option) (*Client, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.httpClient == nil {
		return nil, fmt.Errorf("%w: http client is nil", ErrInvalidConfig)
	}
	if strings.TrimSpace(o.userAgent) == "" {
		return nil, fmt.Errorf("%w: user agent is empty", ErrInvalidConfig)
	}
	if o.timeout < 0 {
		return nil, fmt.Errorf("%w: negative timeout %s", ErrInvalidConfig, o.timeout)
	}

	u, err := url.Parse(o.baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: base url %q: %w", ErrInvalidConfig, o.baseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: base url %q must be an absolute http(s) url", ErrInvalidConfig, o.baseURL)
	}

	hc := *o.httpClient
	hc.Transport = &headerTransport{
		base:      o.httpClient.Transport,
		userAgent: o.userAgent,
	}
	if o.timeout > 0 {
		hc.Timeout = o.timeout
	}

	return &Client{
		baseURL:    strings.TrimRight(o.baseURL, "/"),
		userAgent:  o.userAgent,
		httpClient: &hc,
	}, nil
}

// BaseURL returns the API root the client sends requests to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// UserAgent returns the User-Agent attached to every request.
func (c *Client) UserAgent() string {
	return c.userAgent
}

// headerTransport sets the default request headers before delegating to base.
type headerTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not modify the caller's request.
	r := req.Clone(req.Context())
	if r.Header.Get("Accept") == "" {
		r.Header.Set("Accept", "application/json")
	}
	r.Header.Set("User-Agent", t.userAgent)

	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(r)
}

// getJSON issues GET {baseURL}{path} and decodes the body into target.
func (c *Client) getJSON(ctx context.Context, path string, target any) error {
	fullURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request for %s: %w", ErrTransport, fullURL, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %w", ErrTransport, fullURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body from %s: %w", ErrTransport, fullURL, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        fullURL,
			Body:       string(body),
		}
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("%w: GET %s: %w", ErrDecode, fullURL, err)
	}
	return nil
}

// Addon retrieves the add-on with the given project id.
func (c *Client) Addon(ctx context.Context, id uint64) (*Addon, error) {
	var addon Addon
	if err := c.getJSON(ctx, fmt.Sprintf("/addon/%d", id), &addon); err != nil {
		return nil, fmt.Errorf("failed to get addon %d: %w", id, err)
	}
	return &addon, nil
}

// Category retrieves a single category.
func (c *Client) Category(ctx context.Context, id uint64) (*Category, error) {
	var category Category
	if err := c.getJSON(ctx, fmt.Sprintf("/category/%d", id), &category); err != nil {
		return nil, fmt.Errorf("failed to get category %d: %w", id, err)
	}
	return &category, nil
}

// CategorySection retrieves every category in a section. An empty section
// yields an empty, non-nil slice.
func (c *Client) CategorySection(ctx context.Context, id uint64) ([]Category, error) {
	var section []Category
	if err := c.getJSON(ctx, fmt.Sprintf("/category/section/%d", id), &section); err != nil {
		return nil, fmt.Errorf("failed to get category section %d: %w", id, err)
	}
	if section == nil {
		// A literal null body is not an array.
		return nil, fmt.Errorf("failed to get category section %d: %w: expected a JSON array, got null", id, ErrDecode)
	}
	return section, nil
}
