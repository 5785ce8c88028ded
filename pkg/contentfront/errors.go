package contentfront

import (
	"errors"
	"fmt"
)

// Error taxonomy. Each member maps to exactly one terminal response class;
// none triggers a retry inside this engine and all are request-local.
var (
	// ErrNotFound indicates the upstream repository has no document at
	// the requested path.
	ErrNotFound = errors.New("content not found")

	// ErrForbidden indicates the document is access-limited.
	ErrForbidden = errors.New("content access forbidden")

	// ErrUpstreamUnavailable indicates a transport-level failure talking
	// to the content repository (timeout, 5xx). Never cached, never
	// retried here.
	ErrUpstreamUnavailable = errors.New("content repository unavailable")

	// ErrUnsupportedSchema indicates the document declared a schema name
	// with no registered presentation strategy.
	ErrUnsupportedSchema = errors.New("no renderer for this content type")

	// ErrNotAcceptable indicates no representation could be negotiated
	// for the request.
	ErrNotAcceptable = errors.New("requested format not acceptable")

	// ErrTranslationUnavailable indicates the document has no translation
	// matching the requested locale.
	ErrTranslationUnavailable = errors.New("translation unavailable")
)

// FetchError wraps a failure from the upstream fetch with the path and
// operation that produced it.
type FetchError struct {
	Path string
	Op   string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch operation %s failed for path %q: %v", e.Op, e.Path, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// RenderError wraps a failure from the template renderer.
type RenderError struct {
	TemplateKey string
	Err         error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render failed for template %q: %v", e.TemplateKey, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
