package contentfront

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_StrategyForUnknownSchema(t *testing.T) {
	r := DefaultRegistry()

	_, ok := r.StrategyFor("made_up_schema")
	assert.False(t, ok)
}

func TestRegistry_BuiltinSchemasRegistered(t *testing.T) {
	r := DefaultRegistry()

	for _, schema := range []string{"case_study", "travel_advice", "guide", "publication", "gone", "unpublishing"} {
		_, ok := r.StrategyFor(schema)
		assert.True(t, ok, "schema %q", schema)
	}
}

func TestRegistry_DuplicateRegistrationFails(t *testing.T) {
	r := NewRegistry()
	strategy := PresentationStrategy{
		SchemaName:   "case_study",
		Formats:      []Format{FormatHTML},
		TemplateKey:  "case_study",
		NewPresenter: NewCaseStudyPresenter,
	}

	require.NoError(t, r.Register(strategy))
	assert.Error(t, r.Register(strategy))
}

func TestRegistry_RegisterRequiresFactory(t *testing.T) {
	r := NewRegistry()

	err := r.Register(PresentationStrategy{SchemaName: "broken"})
	assert.Error(t, err)
}

func TestPresentationStrategy_Supports(t *testing.T) {
	r := DefaultRegistry()

	travel, ok := r.StrategyFor("travel_advice")
	require.True(t, ok)
	assert.True(t, travel.Supports(FormatAtom))
	assert.True(t, travel.Supports(FormatPrint))

	caseStudy, ok := r.StrategyFor("case_study")
	require.True(t, ok)
	assert.False(t, caseStudy.Supports(FormatAtom))
	assert.True(t, caseStudy.Supports(FormatHTML))
}
