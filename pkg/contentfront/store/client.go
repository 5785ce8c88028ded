// Package store provides fetcher adapters for the upstream content
// repository.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tendant/content-frontend/pkg/contentfront"
)

// DefaultTimeout bounds the upstream call when no custom client is
// supplied. On timeout the request fails fast into the upstream-unavailable
// terminal state rather than hanging.
const DefaultTimeout = 10 * time.Second

// Client fetches documents from the content repository over HTTP and
// translates transport outcomes into the engine's fetch result type.
// Transport failures are never retried here.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the upstream call timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a content repository client for the given endpoint,
// e.g. "http://content-store.internal".
func NewClient(endpoint string, opts ...ClientOption) *Client {
	c := &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			// Redirects are a content fact reported to the caller,
			// not followed.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch retrieves the document at basePath. The path must already be
// normalized; basePath carries a leading slash.
func (c *Client) Fetch(ctx context.Context, basePath string) (contentfront.FetchResult, error) {
	url := c.endpoint + "/content" + basePath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return contentfront.FetchResult{}, &contentfront.FetchError{Path: basePath, Op: "request", Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return contentfront.FetchResult{}, &contentfront.FetchError{
			Path: basePath,
			Op:   "get",
			Err:  fmt.Errorf("%w: %v", contentfront.ErrUpstreamUnavailable, err),
		}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		return c.decodeDocument(resp, basePath)

	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return contentfront.FetchResult{Status: contentfront.FetchNotFound}, nil

	case resp.StatusCode == http.StatusForbidden:
		return contentfront.FetchResult{Status: contentfront.FetchForbidden}, nil

	case resp.StatusCode >= 300 && resp.StatusCode < 400:
		target := c.redirectTarget(resp.Header.Get("Location"))
		if target == "" {
			return contentfront.FetchResult{Status: contentfront.FetchNotFound}, nil
		}
		return contentfront.FetchResult{Status: contentfront.FetchRedirect, RedirectTo: target}, nil

	default:
		return contentfront.FetchResult{}, &contentfront.FetchError{
			Path: basePath,
			Op:   "get",
			Err:  fmt.Errorf("%w: upstream status %d", contentfront.ErrUpstreamUnavailable, resp.StatusCode),
		}
	}
}

func (c *Client) decodeDocument(resp *http.Response, basePath string) (contentfront.FetchResult, error) {
	var doc contentfront.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return contentfront.FetchResult{}, &contentfront.FetchError{
			Path: basePath,
			Op:   "decode",
			Err:  fmt.Errorf("%w: %v", contentfront.ErrUpstreamUnavailable, err),
		}
	}
	doc.Publishing = parseCacheControl(resp.Header.Get("Cache-Control"))
	return contentfront.FetchResult{Status: contentfront.FetchFound, Document: &doc}, nil
}

// redirectTarget strips the repository's own /content prefix from an
// upstream Location so the caller redirects within the public site.
func (c *Client) redirectTarget(location string) string {
	if location == "" {
		return ""
	}
	location = strings.TrimPrefix(location, c.endpoint)
	location = strings.TrimPrefix(location, "/content")
	if !strings.HasPrefix(location, "/") {
		location = "/" + location
	}
	return location
}

// parseCacheControl reads the upstream freshness metadata out of a
// Cache-Control response header. Absent max-age stays nil so the engine's
// conservative default applies.
func parseCacheControl(header string) contentfront.PublishingMeta {
	meta := contentfront.PublishingMeta{}
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		switch {
		case part == "private":
			meta.Private = true
		case strings.HasPrefix(part, "max-age="):
			if v, err := strconv.Atoi(part[len("max-age="):]); err == nil {
				meta.MaxAge = &v
			}
		}
	}
	return meta
}
