package contentfront

import (
	"context"
)

// Renderer turns a selected template key, representation and view into the
// response payload. Template engines sit behind this boundary; the engine
// only selects the key and supplies the view.
type Renderer interface {
	Render(ctx context.Context, templateKey string, rep Representation, view *PageView) ([]byte, error)
}

// Response is the fully resolved outcome for one request: a status code, a
// representation and its headers.
type Response struct {
	Status      int
	RedirectTo  string
	ContentType string
	Cache       CacheDirective

	// AllowAllOrigins is set when the representation is a syndication
	// feed, which is served cross-origin.
	AllowAllOrigins bool

	Body []byte

	// View is the final (possibly experiment-substituted) view the body
	// was rendered from. Nil for terminal error responses.
	View *PageView
}

// Service resolves requests against the upstream content repository and
// produces the response representation.
type Service interface {
	// Resolve runs the dispatch pipeline for one request. Upstream and
	// negotiation outcomes are reported in the Response status, not as
	// errors; the error return is reserved for renderer and programming
	// failures.
	Resolve(ctx context.Context, req RequestDescriptor, assignment Assignment) (*Response, error)

	// Experiments exposes the override table for follow-on handler
	// routing.
	Experiments() *Dispatcher
}
