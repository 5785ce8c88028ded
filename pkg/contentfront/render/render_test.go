package render

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendant/content-frontend/pkg/contentfront"
)

func testView(doc *contentfront.Document, rep contentfront.Representation) *contentfront.PageView {
	presenter := contentfront.NewGenericPresenter(doc, contentfront.RequestDescriptor{Path: doc.BasePath})
	return contentfront.NewPageView(presenter, contentfront.PresentationStrategy{TemplateKey: "page"}, rep)
}

func TestRender_PageTemplate(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	doc := &contentfront.Document{
		SchemaName:  "news_article",
		BasePath:    "/government/news/statement",
		Locale:      "en",
		Title:       "A statement",
		Description: "What was said",
		Details:     map[string]any{"body": "<p>Announcement</p>"},
	}
	rep := contentfront.Representation{Format: contentfront.FormatHTML, Locale: "en"}
	out, err := engine.Render(context.Background(), "page", rep, testView(doc, rep))
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, `<html lang="en">`)
	assert.Contains(t, html, "<h1>A statement</h1>")
	assert.Contains(t, html, "<p>Announcement</p>")
	assert.NotContains(t, html, "print-variant")
	assert.NotContains(t, html, "taxonomy-navigation")
}

func TestRender_BodyIsNotEscaped(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	doc := &contentfront.Document{
		SchemaName: "news_article",
		BasePath:   "/x",
		Locale:     "en",
		Title:      "x",
		Details:    map[string]any{"body": `<a href="/next">next</a>`},
	}
	rep := contentfront.Representation{Format: contentfront.FormatHTML}
	out, err := engine.Render(context.Background(), "page", rep, testView(doc, rep))
	require.NoError(t, err)
	assert.Contains(t, string(out), `<a href="/next">next</a>`)
}

func TestRender_PrintVariant(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	doc := &contentfront.Document{SchemaName: "guide", BasePath: "/g", Locale: "en", Title: "Guide"}
	rep := contentfront.Representation{Format: contentfront.FormatHTML, Variant: contentfront.VariantPrint}
	out, err := engine.Render(context.Background(), "page", rep, testView(doc, rep))
	require.NoError(t, err)
	assert.Contains(t, string(out), `class="print-variant"`)
}

func TestRender_TaxonomyNavigation(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	doc := &contentfront.Document{
		SchemaName: "news_article",
		BasePath:   "/government/news/statement",
		Locale:     "en",
		Title:      "A statement",
		Links: map[string][]contentfront.LinkedDocument{
			"taxons": {{Title: "Education", BasePath: "/education"}},
		},
	}
	rep := contentfront.Representation{Format: contentfront.FormatHTML}
	view := testView(doc, rep)
	view.ShowTaxonomyNavigation = true

	out, err := engine.Render(context.Background(), "page", rep, view)
	require.NoError(t, err)
	assert.Contains(t, string(out), "taxonomy-navigation")
	assert.Contains(t, string(out), `<a href="/education">Education</a>`)
}

func TestRender_UnknownKeyFallsBackToPage(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	doc := &contentfront.Document{SchemaName: "case_study", BasePath: "/c", Locale: "en", Title: "Case"}
	rep := contentfront.Representation{Format: contentfront.FormatHTML}
	out, err := engine.Render(context.Background(), "no-such-template", rep, testView(doc, rep))
	require.NoError(t, err)
	assert.Contains(t, string(out), `id="wrapper"`)
}

func TestRender_CustomTemplateOption(t *testing.T) {
	engine, err := NewEngine(WithTemplate("banner", `<h1 class="banner">{{.Title}}</h1>`))
	require.NoError(t, err)

	doc := &contentfront.Document{SchemaName: "special_route", BasePath: "/", Locale: "en", Title: "Welcome"}
	rep := contentfront.Representation{Format: contentfront.FormatHTML}
	out, err := engine.Render(context.Background(), "banner", rep, testView(doc, rep))
	require.NoError(t, err)
	assert.Equal(t, `<h1 class="banner">Welcome</h1>`, string(out))
}

func TestNewEngine_BadTemplateFails(t *testing.T) {
	_, err := NewEngine(WithTemplate("broken", "{{.Title"))
	assert.Error(t, err)
}

func TestRenderAtom_Feed(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	updated := time.Date(2025, 6, 3, 9, 30, 0, 0, time.UTC)
	doc := &contentfront.Document{
		SchemaName:      "travel_advice",
		BasePath:        "/foreign-travel-advice/albania",
		Locale:          "en",
		Title:           "Albania travel advice",
		Description:     "Latest update: entry requirements",
		PublicUpdatedAt: &updated,
	}
	rep := contentfront.Representation{Format: contentfront.FormatAtom, Locale: "en"}
	out, err := engine.Render(context.Background(), "page", rep, testView(doc, rep))
	require.NoError(t, err)

	feed := string(out)
	assert.Contains(t, feed, `<?xml`)
	assert.Contains(t, feed, `xmlns="http://www.w3.org/2005/Atom"`)
	assert.Contains(t, feed, "<title>Albania travel advice</title>")
	assert.Contains(t, feed, "<updated>2025-06-03T09:30:00Z</updated>")
	assert.Contains(t, feed, `href="/foreign-travel-advice/albania.atom"`)
	assert.Contains(t, feed, "<summary>Latest update: entry requirements</summary>")
}
