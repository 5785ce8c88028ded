package api

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tendant/content-frontend/pkg/contentfront"
)

func TestParsePath_PlainPath(t *testing.T) {
	p := parsePath("government/news/statement-the-status-of-eu-nationals-in-the-uk", localeSet(defaultLocales))
	assert.Equal(t, "government/news/statement-the-status-of-eu-nationals-in-the-uk", p.Path)
	assert.Empty(t, p.Format)
	assert.Empty(t, p.Locale)
	assert.Empty(t, p.Variant)
}

func TestParsePath_LocaleSuffix(t *testing.T) {
	locales := localeSet(defaultLocales)
	for _, locale := range []string{"es", "cy", "zh-tw"} {
		p := parsePath("government/news/statement."+locale, locales)
		assert.Equal(t, "government/news/statement", p.Path, "locale %q", locale)
		assert.Equal(t, locale, p.Locale)
	}
}

func TestParsePath_FormatSuffix(t *testing.T) {
	p := parsePath("government/news/statement.atom", localeSet(defaultLocales))
	assert.Equal(t, "government/news/statement", p.Path)
	assert.Equal(t, contentfront.FormatAtom, p.Format)
	assert.Empty(t, p.Locale)
}

func TestParsePath_LocaleAndFormatSuffix(t *testing.T) {
	p := parsePath("government/news/statement.es.atom", localeSet(defaultLocales))
	assert.Equal(t, "government/news/statement", p.Path)
	assert.Equal(t, contentfront.FormatAtom, p.Format)
	assert.Equal(t, "es", p.Locale)
}

func TestParsePath_PrintVariant(t *testing.T) {
	p := parsePath("government/news/statement/print", localeSet(defaultLocales))
	assert.Equal(t, "government/news/statement", p.Path)
	assert.Equal(t, contentfront.VariantPrint, p.Variant)
}

func TestParsePath_UnknownSuffixSurvives(t *testing.T) {
	p := parsePath("guidance/something.v2", localeSet(defaultLocales))
	assert.Equal(t, "guidance/something.v2", p.Path)
	assert.Empty(t, p.Format)
	assert.Empty(t, p.Locale)
}

func TestParsePath_DecodesExactlyOnce(t *testing.T) {
	locales := localeSet(defaultLocales)

	p := parsePath("government/case-studies/caf%C3%A9-culture", locales)
	assert.Equal(t, "government/case-studies/café-culture", p.Path)

	// A literal percent sequence in the base path is decoded one level and
	// then fetched as-is; the pipeline must not decode it a second time.
	encoded := parsePath("guidance/a%2520b", locales)
	assert.Equal(t, "guidance/a%20b", encoded.Path)
	assert.Equal(t, encoded.Path, contentfront.NormalizePath(encoded.Path))
}

func TestParsePath_Idempotent(t *testing.T) {
	locales := localeSet(defaultLocales)
	p := parsePath("government/news/statement.es.atom", locales)
	again := parsePath(p.Path, locales)
	assert.Equal(t, p.Path, again.Path)
	assert.Empty(t, again.Format)
	assert.Empty(t, again.Locale)
}
