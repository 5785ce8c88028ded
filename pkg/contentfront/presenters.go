package contentfront

import (
	"strings"
)

// GenericPresenter renders schemas that need no derived fields beyond the
// shared capability set.
type GenericPresenter struct {
	ContentPresenter
}

// NewGenericPresenter wraps a document with the shared presenter only.
func NewGenericPresenter(doc *Document, req RequestDescriptor) Presenter {
	return &GenericPresenter{NewContentPresenter(doc, req)}
}

// CaseStudyPresenter presents case studies. Case studies carry a display
// image but never the taxonomy sidebar.
type CaseStudyPresenter struct {
	ContentPresenter
}

func NewCaseStudyPresenter(doc *Document, req RequestDescriptor) Presenter {
	return &CaseStudyPresenter{NewContentPresenter(doc, req)}
}

// Image resolves the case study display image via the shared fallback chain.
func (p *CaseStudyPresenter) Image() Image { return p.newsImage() }

func (p *CaseStudyPresenter) ShowsTaxonomyNavigation() bool { return false }

// NewsArticlePresenter presents news articles.
type NewsArticlePresenter struct {
	ContentPresenter
}

func NewNewsArticlePresenter(doc *Document, req RequestDescriptor) Presenter {
	return &NewsArticlePresenter{NewContentPresenter(doc, req)}
}

// Image resolves the article display image via the shared fallback chain.
func (p *NewsArticlePresenter) Image() Image { return p.newsImage() }

// GuidePart is one navigable part of a multi-part document.
type GuidePart struct {
	Slug  string
	Title string
	Body  string
}

// GuidePresenter presents multi-part guides.
type GuidePresenter struct {
	ContentPresenter
}

func NewGuidePresenter(doc *Document, req RequestDescriptor) Presenter {
	return &GuidePresenter{NewContentPresenter(doc, req)}
}

// Parts returns the ordered part list from the document details.
func (p *GuidePresenter) Parts() []GuidePart {
	raw, ok := p.Document().Details["parts"].([]any)
	if !ok {
		return nil
	}
	parts := make([]GuidePart, 0, len(raw))
	for _, entry := range raw {
		fields, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		part := GuidePart{}
		part.Slug, _ = fields["slug"].(string)
		part.Title, _ = fields["title"].(string)
		part.Body, _ = fields["body"].(string)
		parts = append(parts, part)
	}
	return parts
}

// Body is the first part's body; guide landing pages show part one. The
// print variant renders every part in order.
func (p *GuidePresenter) Body() string {
	parts := p.Parts()
	if len(parts) == 0 {
		return p.ContentPresenter.Body()
	}
	if p.req.Variant == VariantPrint {
		bodies := make([]string, len(parts))
		for i, part := range parts {
			bodies[i] = part.Body
		}
		return strings.Join(bodies, "\n")
	}
	return parts[0].Body
}

// TravelAdvicePresenter presents travel advice pages, including their atom
// summary and print representation.
type TravelAdvicePresenter struct {
	ContentPresenter
}

func NewTravelAdvicePresenter(doc *Document, req RequestDescriptor) Presenter {
	return &TravelAdvicePresenter{NewContentPresenter(doc, req)}
}

// Summary returns the change summary used by the atom representation.
func (p *TravelAdvicePresenter) Summary() string {
	s, _ := detailString(p.Document().Details, "summary")
	return s
}

// AlertStatus returns the active alert status identifiers.
func (p *TravelAdvicePresenter) AlertStatus() []string {
	raw, ok := p.Document().Details["alert_status"].([]any)
	if !ok {
		return nil
	}
	statuses := make([]string, 0, len(raw))
	for _, entry := range raw {
		if s, ok := entry.(string); ok {
			statuses = append(statuses, s)
		}
	}
	return statuses
}

// PublicationPresenter presents publications.
type PublicationPresenter struct {
	ContentPresenter
}

func NewPublicationPresenter(doc *Document, req RequestDescriptor) Presenter {
	return &PublicationPresenter{NewContentPresenter(doc, req)}
}

// DetailedGuidePresenter presents detailed guides.
type DetailedGuidePresenter struct {
	ContentPresenter
}

func NewDetailedGuidePresenter(doc *Document, req RequestDescriptor) Presenter {
	return &DetailedGuidePresenter{NewContentPresenter(doc, req)}
}

// Image resolves the guide display image via the shared fallback chain.
func (p *DetailedGuidePresenter) Image() Image { return p.newsImage() }

// HTMLPublicationPresenter presents HTML attachments of publications.
type HTMLPublicationPresenter struct {
	ContentPresenter
}

func NewHTMLPublicationPresenter(doc *Document, req RequestDescriptor) Presenter {
	return &HTMLPublicationPresenter{NewContentPresenter(doc, req)}
}

func (p *HTMLPublicationPresenter) ShowsTaxonomyNavigation() bool { return false }

// ComingSoonPresenter presents placeholder pages for content with a future
// publish time.
type ComingSoonPresenter struct {
	ContentPresenter
}

func NewComingSoonPresenter(doc *Document, req RequestDescriptor) Presenter {
	return &ComingSoonPresenter{NewContentPresenter(doc, req)}
}

// PublishTime returns the announced publish time, when declared.
func (p *ComingSoonPresenter) PublishTime() string {
	s, _ := detailString(p.Document().Details, "publish_time")
	return s
}

// GonePresenter presents documents removed from the platform.
type GonePresenter struct {
	ContentPresenter
}

func NewGonePresenter(doc *Document, req RequestDescriptor) Presenter {
	return &GonePresenter{NewContentPresenter(doc, req)}
}

func (p *GonePresenter) PageTitle() string { return "No longer available" }

// Explanation returns the publisher-supplied removal explanation.
func (p *GonePresenter) Explanation() string {
	s, _ := detailString(p.Document().Details, "explanation")
	return s
}

// AlternativePath returns the suggested replacement path, when declared.
func (p *GonePresenter) AlternativePath() string {
	s, _ := detailString(p.Document().Details, "alternative_path")
	return s
}

// UnpublishingPresenter presents unpublished documents.
type UnpublishingPresenter struct {
	ContentPresenter
}

func NewUnpublishingPresenter(doc *Document, req RequestDescriptor) Presenter {
	return &UnpublishingPresenter{NewContentPresenter(doc, req)}
}

func (p *UnpublishingPresenter) PageTitle() string { return "No longer available" }

// Explanation returns the publisher-supplied unpublishing explanation.
func (p *UnpublishingPresenter) Explanation() string {
	s, _ := detailString(p.Document().Details, "explanation")
	return s
}

// AlternativeURL returns the suggested replacement URL, when declared.
func (p *UnpublishingPresenter) AlternativeURL() string {
	s, _ := detailString(p.Document().Details, "alternative_url")
	return s
}
