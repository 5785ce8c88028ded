// Package memory provides an in-memory content fetcher for tests and local
// development.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/tendant/content-frontend/pkg/contentfront"
)

// Store is a map-backed Fetcher. Outcomes are registered per base path;
// unknown paths report not-found.
type Store struct {
	mu       sync.RWMutex
	results  map[string]contentfront.FetchResult
	failures map[string]error
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		results:  make(map[string]contentfront.FetchResult),
		failures: make(map[string]error),
	}
}

// Add registers a document under its base path.
func (s *Store) Add(doc *contentfront.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[doc.BasePath] = contentfront.FetchResult{
		Status:   contentfront.FetchFound,
		Document: doc,
	}
}

// AddAt registers a document under a path other than its own base path,
// mimicking upstream prefix-route fallthrough.
func (s *Store) AddAt(path string, doc *contentfront.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[path] = contentfront.FetchResult{
		Status:   contentfront.FetchFound,
		Document: doc,
	}
}

// SetRedirect registers a redirect from path to target.
func (s *Store) SetRedirect(path, target string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[path] = contentfront.FetchResult{
		Status:     contentfront.FetchRedirect,
		RedirectTo: target,
	}
}

// SetForbidden marks a path access-limited.
func (s *Store) SetForbidden(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[path] = contentfront.FetchResult{Status: contentfront.FetchForbidden}
}

// SetUnavailable makes fetches for a path fail as upstream-unavailable.
func (s *Store) SetUnavailable(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[path] = &contentfront.FetchError{
		Path: path,
		Op:   "get",
		Err:  fmt.Errorf("%w: forced failure", contentfront.ErrUpstreamUnavailable),
	}
}

// Fetch implements contentfront.Fetcher.
func (s *Store) Fetch(ctx context.Context, basePath string) (contentfront.FetchResult, error) {
	if err := ctx.Err(); err != nil {
		return contentfront.FetchResult{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err, ok := s.failures[basePath]; ok {
		return contentfront.FetchResult{}, err
	}
	if result, ok := s.results[basePath]; ok {
		return result, nil
	}
	return contentfront.FetchResult{Status: contentfront.FetchNotFound}, nil
}
