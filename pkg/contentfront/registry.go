package contentfront

import (
	"fmt"
)

// PresenterFactory builds the schema-specific presenter for a fetched
// document.
type PresenterFactory func(doc *Document, req RequestDescriptor) Presenter

// PresentationStrategy describes how one schema is rendered: which output
// formats it supports, which presenter wraps its documents and which
// template renders it.
type PresentationStrategy struct {
	SchemaName   string
	Formats      []Format
	TemplateKey  string
	NewPresenter PresenterFactory
}

// Supports reports whether the strategy supports the given output format.
// Representation formats are never negotiated implicitly; callers must
// check membership here.
func (s PresentationStrategy) Supports(format Format) bool {
	for _, f := range s.Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Registry maps a document's declared schema name to its presentation
// strategy. It is populated once at process start and read-only afterwards,
// which makes unsynchronized concurrent lookups safe.
type Registry struct {
	strategies map[string]PresentationStrategy
}

// NewRegistry creates an empty schema registry.
func NewRegistry() *Registry {
	return &Registry{strategies: make(map[string]PresentationStrategy)}
}

// Register adds a strategy to the registry. Registration happens at startup
// only; duplicate schema names are a configuration error.
func (r *Registry) Register(strategy PresentationStrategy) error {
	if strategy.SchemaName == "" {
		return fmt.Errorf("strategy schema name is required")
	}
	if strategy.NewPresenter == nil {
		return fmt.Errorf("strategy for %q has no presenter factory", strategy.SchemaName)
	}
	if _, exists := r.strategies[strategy.SchemaName]; exists {
		return fmt.Errorf("strategy for %q already registered", strategy.SchemaName)
	}
	r.strategies[strategy.SchemaName] = strategy
	return nil
}

// StrategyFor looks up the strategy for a schema name. A missing entry is a
// data-integrity condition on the upstream contract, reported to the caller
// rather than crashing the process.
func (r *Registry) StrategyFor(schemaName string) (PresentationStrategy, bool) {
	s, ok := r.strategies[schemaName]
	return s, ok
}

// SchemaNames returns the registered schema names, unordered.
func (r *Registry) SchemaNames() []string {
	names := make([]string, 0, len(r.strategies))
	for name := range r.strategies {
		names = append(names, name)
	}
	return names
}

// DefaultRegistry builds the registry with the built-in schema strategies.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, s := range builtinStrategies() {
		// Built-in names are distinct; Register cannot fail here.
		_ = r.Register(s)
	}
	return r
}

func builtinStrategies() []PresentationStrategy {
	html := []Format{FormatHTML}
	return []PresentationStrategy{
		{
			SchemaName:   "case_study",
			Formats:      html,
			TemplateKey:  "case_study",
			NewPresenter: NewCaseStudyPresenter,
		},
		{
			SchemaName:   "news_article",
			Formats:      html,
			TemplateKey:  "news_article",
			NewPresenter: NewNewsArticlePresenter,
		},
		{
			SchemaName:   "travel_advice",
			Formats:      []Format{FormatHTML, FormatAtom, FormatPrint},
			TemplateKey:  "travel_advice",
			NewPresenter: NewTravelAdvicePresenter,
		},
		{
			SchemaName:   "guide",
			Formats:      []Format{FormatHTML, FormatPrint},
			TemplateKey:  "guide",
			NewPresenter: NewGuidePresenter,
		},
		{
			SchemaName:   "publication",
			Formats:      html,
			TemplateKey:  "publication",
			NewPresenter: NewPublicationPresenter,
		},
		{
			SchemaName:   "detailed_guide",
			Formats:      []Format{FormatHTML, FormatPrint},
			TemplateKey:  "detailed_guide",
			NewPresenter: NewDetailedGuidePresenter,
		},
		{
			SchemaName:   "html_publication",
			Formats:      html,
			TemplateKey:  "html_publication",
			NewPresenter: NewHTMLPublicationPresenter,
		},
		{
			SchemaName:   "coming_soon",
			Formats:      html,
			TemplateKey:  "coming_soon",
			NewPresenter: NewComingSoonPresenter,
		},
		{
			SchemaName:   "gone",
			Formats:      html,
			TemplateKey:  "gone",
			NewPresenter: NewGonePresenter,
		},
		{
			SchemaName:   "unpublishing",
			Formats:      html,
			TemplateKey:  "unpublishing",
			NewPresenter: NewUnpublishingPresenter,
		},
		{
			SchemaName:   "special_route",
			Formats:      html,
			TemplateKey:  "special_route",
			NewPresenter: NewGenericPresenter,
		},
	}
}
