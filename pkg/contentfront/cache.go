package contentfront

import "fmt"

// DefaultMaxAge is the conservative freshness applied when the upstream
// declares none. The same numeric default applies to public and private
// content; only visibility differs.
const DefaultMaxAge = 900

// errorMaxAge is the short private freshness applied to 404/403/406 pages.
const errorMaxAge = 30

// CacheDirective is the outgoing cache policy derived from upstream
// freshness metadata.
type CacheDirective struct {
	MaxAge  int
	Private bool
	NoStore bool
}

// Header serializes the directive for the Cache-Control response header.
func (d CacheDirective) Header() string {
	if d.NoStore {
		return "no-store"
	}
	visibility := "public"
	if d.Private {
		visibility = "private"
	}
	return fmt.Sprintf("max-age=%d, %s", d.MaxAge, visibility)
}

// DeriveCacheDirective maps the document's publishing metadata to the
// outgoing cache directive: visibility is private exactly when the upstream
// marked the document private; the upstream max-age passes through
// unchanged when present, clamped non-negative, else DefaultMaxAge applies.
func DeriveCacheDirective(doc *Document) CacheDirective {
	directive := CacheDirective{
		MaxAge:  DefaultMaxAge,
		Private: doc.Publishing.Private,
	}
	if doc.Publishing.MaxAge != nil {
		directive.MaxAge = *doc.Publishing.MaxAge
		if directive.MaxAge < 0 {
			directive.MaxAge = 0
		}
	}
	return directive
}

// errorCacheDirective is the policy for negotiable error pages (404, 403,
// 406).
func errorCacheDirective() CacheDirective {
	return CacheDirective{MaxAge: errorMaxAge, Private: true}
}

// uncacheableDirective is the policy for upstream failures, which must not
// be cached.
func uncacheableDirective() CacheDirective {
	return CacheDirective{NoStore: true}
}
