package contentfront

import (
	"context"
	"strings"
)

// FetchStatus classifies the outcome of an upstream fetch.
type FetchStatus int

// Fetch outcome constants.
const (
	FetchFound FetchStatus = iota
	FetchNotFound
	FetchForbidden
	FetchRedirect
)

// FetchResult is the translated outcome of one upstream call. Document is
// set only for FetchFound; RedirectTo only for FetchRedirect.
type FetchResult struct {
	Status     FetchStatus
	Document   *Document
	RedirectTo string
}

// Fetcher is the adapter boundary to the upstream content repository.
//
// Implementations must carry a timeout on the outbound call and honour
// context cancellation. Transport-level failures are not retried; they are
// returned as errors wrapping ErrUpstreamUnavailable.
type Fetcher interface {
	Fetch(ctx context.Context, basePath string) (FetchResult, error)
}

// NormalizePath canonicalizes a request path for the upstream fetch:
// collapses leading and trailing slashes and drops empty segments. Percent
// decoding happens once at the HTTP boundary, never here, so the function is
// idempotent: normalizing an already-normalized path returns the same path.
func NormalizePath(path string) string {
	segments := strings.Split(path, "/")
	kept := segments[:0]
	for _, s := range segments {
		if s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, "/")
}
