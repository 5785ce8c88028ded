package contentfront

// PageView is the final view handed to the template renderer. It is built
// from the presenter once per request; experiment overrides substitute its
// fields before rendering.
type PageView struct {
	TemplateKey string
	Title       string
	Description string
	Body        string
	Locale      string

	// HandlerKey selects a follow-on handler when an experiment override
	// replaces the page's downstream action.
	HandlerKey string

	// Presenter exposes schema-specific derived fields to templates.
	Presenter Presenter

	// ShowTaxonomyNavigation mirrors the presenter's sidebar eligibility.
	ShowTaxonomyNavigation bool
}

// NewPageView derives the renderer view from a presenter and the chosen
// strategy and representation.
func NewPageView(p Presenter, strategy PresentationStrategy, rep Representation) *PageView {
	doc := p.Document()
	return &PageView{
		TemplateKey:            strategy.TemplateKey,
		Title:                  p.PageTitle(),
		Description:            doc.Description,
		Body:                   p.Body(),
		Locale:                 rep.Locale,
		Presenter:              p,
		ShowTaxonomyNavigation: p.ShowsTaxonomyNavigation(),
	}
}
