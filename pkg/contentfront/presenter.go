package contentfront

// Link types consulted by presenters.
const (
	linkTaxons               = "taxons"
	linkMainstreamBrowse     = "mainstream_browse_pages"
	linkPrimaryPublishingOrg = "primary_publishing_organisation"
)

// worldTaxonPrefix is the globally-scoped taxon subtree whose pages always
// carry taxonomy navigation.
const worldTaxonPrefix = "/world"

// placeholderImage is the fixed last-resort display image.
var placeholderImage = Image{
	URL: "https://assets.example.gov/media/government-crest.jpg",
}

// Presenter is a read-only, schema-aware view over a fetched document. All
// derivation is pure; presenters never mutate the document.
type Presenter interface {
	// Document returns the underlying document.
	Document() *Document

	// PageTitle is the title used in the rendered page head.
	PageTitle() string

	// Body is the main rendered body markup for the document.
	Body() string

	// ShowsTaxonomyNavigation reports whether the taxonomy sidebar is
	// eligible for this page.
	ShowsTaxonomyNavigation() bool
}

// ContentPresenter is the shared capability set embedded by every schema
// presenter.
type ContentPresenter struct {
	doc *Document
	req RequestDescriptor
}

// NewContentPresenter wraps a document for the given request context.
func NewContentPresenter(doc *Document, req RequestDescriptor) ContentPresenter {
	return ContentPresenter{doc: doc, req: req}
}

// Document returns the underlying document.
func (p ContentPresenter) Document() *Document { return p.doc }

// Title returns the document title.
func (p ContentPresenter) Title() string { return p.doc.Title }

// Description returns the document description.
func (p ContentPresenter) Description() string { return p.doc.Description }

// Locale returns the document's declared locale.
func (p ContentPresenter) Locale() string { return p.doc.Locale }

// BasePath returns the document's base path.
func (p ContentPresenter) BasePath() string { return p.doc.BasePath }

// PageTitle defaults to the document title. Schema presenters override it
// where the page head differs.
func (p ContentPresenter) PageTitle() string { return p.doc.Title }

// Body returns the main body markup from the document details.
func (p ContentPresenter) Body() string {
	s, _ := detailString(p.doc.Details, "body")
	return s
}

// Withdrawn reports whether the document carries a withdrawal notice.
func (p ContentPresenter) Withdrawn() bool { return p.doc.WithdrawnNotice != nil }

// ShowsTaxonomyNavigation is eligible only when the document carries at
// least one taxon link, and that link is either unaccompanied by a
// mainstream-browse categorisation or targets the globally-scoped world
// taxon subtree.
func (p ContentPresenter) ShowsTaxonomyNavigation() bool {
	taxons := p.doc.LinksOf(linkTaxons)
	if len(taxons) == 0 {
		return false
	}
	if len(p.doc.LinksOf(linkMainstreamBrowse)) == 0 {
		return true
	}
	for _, taxon := range taxons {
		if taxon.BasePath == worldTaxonPrefix || hasPathPrefix(taxon.BasePath, worldTaxonPrefix+"/") {
			return true
		}
	}
	return false
}

// newsImage resolves the display image by an ordered short-circuiting
// fallback: the document's own image, else the default image declared by
// its primary publishing organisation, else the fixed placeholder. Each
// level is an explicit presence check, not a truthiness test.
func (p ContentPresenter) newsImage() Image {
	if img, ok := imageFromDetails(p.doc.Details, "image"); ok {
		return img
	}
	if img, ok := p.organisationDefaultImage(); ok {
		return img
	}
	return placeholderImage
}

func (p ContentPresenter) organisationDefaultImage() (Image, bool) {
	orgs := p.doc.LinksOf(linkPrimaryPublishingOrg)
	if len(orgs) == 0 {
		return Image{}, false
	}
	return imageFromDetails(orgs[0].Details, "default_news_image")
}

// imageFromDetails reads an image value out of a details tree. The image is
// present only when it carries a non-empty URL.
func imageFromDetails(details map[string]any, key string) (Image, bool) {
	raw, ok := details[key]
	if !ok {
		return Image{}, false
	}
	fields, ok := raw.(map[string]any)
	if !ok {
		return Image{}, false
	}
	url, _ := fields["url"].(string)
	if url == "" {
		return Image{}, false
	}
	alt, _ := fields["alt_text"].(string)
	caption, _ := fields["caption"].(string)
	return Image{URL: url, AltText: alt, Caption: caption}, true
}

// detailString reads a string value out of a details tree.
func detailString(details map[string]any, key string) (string, bool) {
	if details == nil {
		return "", false
	}
	s, ok := details[key].(string)
	return s, ok
}

func hasPathPrefix(path, prefix string) bool {
	return len(path) >= len(prefix) && path[:len(prefix)] == prefix
}
