package contentfront

import (
	"time"

	"github.com/google/uuid"
)

// Format is the domain type for output representations.
type Format string

// Supported output formats (typed).
const (
	FormatHTML  Format = "html"
	FormatAtom  Format = "atom"
	FormatPrint Format = "print"
)

// ContentType returns the media type written for this format.
func (f Format) ContentType() string {
	switch f {
	case FormatAtom:
		return "application/atom+xml; charset=utf-8"
	default:
		return "text/html; charset=utf-8"
	}
}

// VariantPrint is the path variant segment selecting the print representation.
const VariantPrint = "print"

// LinkedDocument is a read-only fan-out reference to another document.
// Back-references to the owning document are never created, so the link
// graph carries no cycles.
type LinkedDocument struct {
	ContentID uuid.UUID      `json:"content_id"`
	Title     string         `json:"title"`
	BasePath  string         `json:"base_path"`
	Locale    string         `json:"locale,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
}

// WithdrawnNotice records that a document has been withdrawn by its
// publisher.
type WithdrawnNotice struct {
	Explanation string    `json:"explanation"`
	WithdrawnAt time.Time `json:"withdrawn_at"`
}

// PublishingMeta carries the upstream freshness and access metadata for a
// document. MaxAge is nil when the upstream declared no freshness value.
type PublishingMeta struct {
	MaxAge  *int
	Private bool
}

// Document is one structured content record supplied by the upstream
// repository. It is created fresh per request from the fetch result and is
// never shared or mutated afterwards.
type Document struct {
	ContentID   uuid.UUID                   `json:"content_id"`
	SchemaName  string                      `json:"schema_name"`
	BasePath    string                      `json:"base_path"`
	Locale      string                      `json:"locale"`
	Title       string                      `json:"title"`
	Description string                      `json:"description"`
	Details     map[string]any              `json:"details"`
	Links       map[string][]LinkedDocument `json:"links"`

	PublicUpdatedAt *time.Time       `json:"public_updated_at,omitempty"`
	WithdrawnNotice *WithdrawnNotice `json:"withdrawn_notice,omitempty"`

	// Publishing is filled from upstream response metadata, not the
	// document body.
	Publishing PublishingMeta `json:"-"`
}

// LinksOf returns the ordered link targets for one link type.
func (d *Document) LinksOf(linkType string) []LinkedDocument {
	if d.Links == nil {
		return nil
	}
	return d.Links[linkType]
}

// RequestDescriptor captures everything about an inbound request the engine
// needs to resolve it. It is immutable once constructed.
type RequestDescriptor struct {
	// Path is the normalized base path: percent-decoded, no leading
	// slash, no locale/format suffix and no variant segment.
	Path string

	// Format is the explicit format extension or parameter, if any.
	Format Format

	// Locale is the explicitly requested locale, if any.
	Locale string

	// Variant is the requested path variant (e.g. "print"), if any.
	Variant string

	// Accept is the parsed media list from the Accept header, in order.
	Accept []string

	// ViaScript marks XMLHttpRequest-style requests.
	ViaScript bool
}

// Representation is the single negotiated output representation for a
// request.
type Representation struct {
	Format  Format
	Locale  string
	Variant string
}

// IsFeed reports whether the representation is a syndication feed.
func (r Representation) IsFeed() bool {
	return r.Format == FormatAtom
}

// Image is a resolved display image reference.
type Image struct {
	URL     string `json:"url"`
	AltText string `json:"alt_text,omitempty"`
	Caption string `json:"caption,omitempty"`
}
