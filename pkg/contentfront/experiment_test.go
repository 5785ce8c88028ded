package contentfront

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func experimentView(basePath string) *PageView {
	doc := &Document{
		SchemaName:  "publication",
		BasePath:    basePath,
		Title:       "Know your traffic signs",
		Description: "The current description",
	}
	p := NewPublicationPresenter(doc, RequestDescriptor{})
	return NewPageView(p, PresentationStrategy{TemplateKey: "publication"}, Representation{Format: FormatHTML, Locale: "en"})
}

func trafficSignsOverride() Override {
	return Override{
		Experiment: "TrafficSignsSummary",
		Variant:    "B",
		PathScope:  "/government/publications/know-your-traffic-signs",
		Kind:       OverrideField,
		Field:      "description",
		Value:      "Guidance on road traffic signage in Great Britain",
	}
}

func TestDispatcher_FieldSubstitutionOnMatchingVariant(t *testing.T) {
	d := NewDispatcher([]Override{trafficSignsOverride()})
	view := experimentView("/government/publications/know-your-traffic-signs")

	out := d.Apply(Assignment{"TrafficSignsSummary": "B"}, view)
	assert.Equal(t, "Guidance on road traffic signage in Great Britain", out.Description)
	// The base view is never mutated.
	assert.Equal(t, "The current description", view.Description)
}

func TestDispatcher_ControlVariantPassesThrough(t *testing.T) {
	d := NewDispatcher([]Override{trafficSignsOverride()})
	view := experimentView("/government/publications/know-your-traffic-signs")

	out := d.Apply(Assignment{"TrafficSignsSummary": "A"}, view)
	assert.Equal(t, "The current description", out.Description)
}

func TestDispatcher_OtherPathsUnaffected(t *testing.T) {
	d := NewDispatcher([]Override{trafficSignsOverride()})
	view := experimentView("/government/publications/some-other-publication")

	out := d.Apply(Assignment{"TrafficSignsSummary": "B"}, view)
	assert.Equal(t, "The current description", out.Description)
}

func TestDispatcher_NoAssignmentPassesThrough(t *testing.T) {
	d := NewDispatcher([]Override{trafficSignsOverride()})
	view := experimentView("/government/publications/know-your-traffic-signs")

	out := d.Apply(nil, view)
	assert.Equal(t, "The current description", out.Description)
}

func TestDispatcher_PrefixScopeMatchesSubpaths(t *testing.T) {
	override := trafficSignsOverride()
	override.PathScope = "/government/publications"
	override.Prefix = true
	d := NewDispatcher([]Override{override})

	out := d.Apply(Assignment{"TrafficSignsSummary": "B"},
		experimentView("/government/publications/know-your-traffic-signs"))
	assert.Equal(t, "Guidance on road traffic signage in Great Britain", out.Description)

	unrelated := d.Apply(Assignment{"TrafficSignsSummary": "B"},
		experimentView("/government/publicationsandmore"))
	assert.Equal(t, "The current description", unrelated.Description)
}

func TestDispatcher_TemplateSubstitution(t *testing.T) {
	d := NewDispatcher([]Override{{
		Experiment:  "NewLayout",
		Variant:     "B",
		PathScope:   "/government/publications/know-your-traffic-signs",
		Kind:        OverrideTemplate,
		TemplateKey: "publication_experimental",
	}})
	view := experimentView("/government/publications/know-your-traffic-signs")

	out := d.Apply(Assignment{"NewLayout": "B"}, view)
	assert.Equal(t, "publication_experimental", out.TemplateKey)
}

func TestDispatcher_HandlerOverrideLookup(t *testing.T) {
	d := NewDispatcher([]Override{{
		Experiment: "SelfAssessmentSigninTest",
		Variant:    "B",
		PathScope:  "/log-in-file-self-assessment-tax-return",
		Prefix:     true,
		Kind:       OverrideHandler,
		HandlerKey: "choose-sign-in",
		Choices: map[string]string{
			"government-gateway": "https://tax.example.gov/account",
		},
		ErrorRedirect: "/log-in-file-self-assessment-tax-return/choose-sign-in?error=true",
	}})

	override, ok := d.HandlerOverride("/log-in-file-self-assessment-tax-return/choose-sign-in",
		Assignment{"SelfAssessmentSigninTest": "B"})
	require.True(t, ok)
	assert.Equal(t, "choose-sign-in", override.HandlerKey)

	_, ok = d.HandlerOverride("/log-in-file-self-assessment-tax-return/choose-sign-in",
		Assignment{"SelfAssessmentSigninTest": "A"})
	assert.False(t, ok)
}

func TestDispatcher_Deterministic(t *testing.T) {
	d := NewDispatcher([]Override{trafficSignsOverride()})
	assignment := Assignment{"TrafficSignsSummary": "B"}

	first := d.Apply(assignment, experimentView("/government/publications/know-your-traffic-signs"))
	second := d.Apply(assignment, experimentView("/government/publications/know-your-traffic-signs"))
	assert.Equal(t, first.Description, second.Description)
	assert.Equal(t, first.TemplateKey, second.TemplateKey)
}

func TestDispatcher_GlobalScopeMatchesEverywhere(t *testing.T) {
	override := trafficSignsOverride()
	override.PathScope = ""
	d := NewDispatcher([]Override{override})

	out := d.Apply(Assignment{"TrafficSignsSummary": "B"}, experimentView("/anywhere"))
	assert.Equal(t, "Guidance on road traffic signage in Great Britain", out.Description)
}
