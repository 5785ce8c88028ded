package contentfront

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

// service implements the Service interface: the response-mapper state
// machine sequencing fetch, schema resolution, negotiation, presentation,
// cache policy and experiment dispatch.
type service struct {
	fetcher     Fetcher
	registry    *Registry
	renderer    Renderer
	experiments *Dispatcher
	logger      *slog.Logger
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithFetcher sets the upstream content fetcher.
func WithFetcher(f Fetcher) Option {
	return func(s *service) {
		s.fetcher = f
	}
}

// WithRegistry sets the schema registry.
func WithRegistry(r *Registry) Option {
	return func(s *service) {
		s.registry = r
	}
}

// WithRenderer sets the template renderer.
func WithRenderer(r Renderer) Option {
	return func(s *service) {
		s.renderer = r
	}
}

// WithExperiments sets the experiment override dispatcher.
func WithExperiments(d *Dispatcher) Option {
	return func(s *service) {
		s.experiments = d
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		s.logger = logger
	}
}

// New creates a new service instance with the given options. A fetcher and
// a renderer are required; the registry defaults to the built-in schemas
// and the experiment table defaults to empty.
func New(options ...Option) (Service, error) {
	s := &service{}

	for _, option := range options {
		option(s)
	}

	if s.fetcher == nil {
		return nil, fmt.Errorf("fetcher is required")
	}
	if s.renderer == nil {
		return nil, fmt.Errorf("renderer is required")
	}
	if s.registry == nil {
		s.registry = DefaultRegistry()
	}
	if s.experiments == nil {
		s.experiments = NewDispatcher(nil)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	return s, nil
}

func (s *service) Experiments() *Dispatcher { return s.experiments }

// Resolve runs the pipeline
// Received -> Fetched -> SchemaResolved -> Negotiated -> Presented ->
// CachePolicySet -> Dispatched -> Rendered, exiting at the first terminal
// condition. Everything after the fetch is pure per-request computation.
func (s *service) Resolve(ctx context.Context, req RequestDescriptor, assignment Assignment) (*Response, error) {
	basePath := "/" + NormalizePath(req.Path)

	result, err := s.fetcher.Fetch(ctx, basePath)
	if err != nil {
		if errors.Is(err, ErrUpstreamUnavailable) {
			s.logger.Error("upstream fetch failed", "path", basePath, "err", err)
			return s.errorResponse(ctx, http.StatusServiceUnavailable, uncacheableDirective()), nil
		}
		return nil, err
	}

	switch result.Status {
	case FetchNotFound:
		return s.errorResponse(ctx, http.StatusNotFound, errorCacheDirective()), nil
	case FetchForbidden:
		return s.errorResponse(ctx, http.StatusForbidden, errorCacheDirective()), nil
	case FetchRedirect:
		return &Response{
			Status:     http.StatusFound,
			RedirectTo: result.RedirectTo,
			Cache:      errorCacheDirective(),
		}, nil
	}

	doc := result.Document
	if doc == nil || doc.SchemaName == "" {
		s.logger.Warn("document without schema", "path", basePath)
		return s.errorResponse(ctx, http.StatusNotFound, errorCacheDirective()), nil
	}

	// A fetch that fell through to a prefix-routed document is a miss
	// for the requested path.
	if doc.SchemaName == "special_route" && doc.BasePath != basePath {
		return s.errorResponse(ctx, http.StatusNotFound, errorCacheDirective()), nil
	}

	strategy, ok := s.registry.StrategyFor(doc.SchemaName)
	if !ok {
		s.logger.Warn("unsupported schema", "schema", doc.SchemaName, "path", basePath)
		return s.errorResponse(ctx, http.StatusNotFound, errorCacheDirective()), nil
	}

	rep, err := Negotiate(req, doc, strategy)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotAcceptable):
			return s.errorResponse(ctx, http.StatusNotAcceptable, errorCacheDirective()), nil
		case errors.Is(err, ErrTranslationUnavailable):
			return s.errorResponse(ctx, http.StatusNotFound, errorCacheDirective()), nil
		default:
			return nil, err
		}
	}

	presenter := strategy.NewPresenter(doc, req)
	view := NewPageView(presenter, strategy, rep)
	cache := DeriveCacheDirective(doc)
	view = s.experiments.Apply(assignment, view)

	body, err := s.renderer.Render(ctx, view.TemplateKey, rep, view)
	if err != nil {
		s.logger.Error("render failed", "template", view.TemplateKey, "path", basePath, "err", err)
		return s.errorResponse(ctx, http.StatusInternalServerError, uncacheableDirective()), nil
	}

	return &Response{
		Status:          http.StatusOK,
		ContentType:     rep.Format.ContentType(),
		Cache:           cache,
		AllowAllOrigins: rep.IsFeed(),
		Body:            body,
		View:            view,
	}, nil
}

// errorResponse renders the minimal schema-independent error page for a
// terminal status.
func (s *service) errorResponse(ctx context.Context, status int, cache CacheDirective) *Response {
	view := &PageView{
		TemplateKey: "error",
		Title:       http.StatusText(status),
		Locale:      "en",
	}
	body, err := s.renderer.Render(ctx, view.TemplateKey, Representation{Format: FormatHTML, Locale: "en"}, view)
	if err != nil {
		s.logger.Error("error page render failed", "status", status, "err", err)
		body = []byte(http.StatusText(status))
	}
	return &Response{
		Status:      status,
		ContentType: FormatHTML.ContentType(),
		Cache:       cache,
		Body:        body,
		View:        nil,
	}
}
