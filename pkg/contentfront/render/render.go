// Package render implements the template rendering boundary: an HTML
// engine over per-key templates and an atom feed writer. The dispatch
// engine selects the template key and supplies the view; everything else
// happens here.
package render

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/tendant/content-frontend/pkg/contentfront"
)

// Engine renders page views to response payloads. Templates are parsed
// once at construction and read-only afterwards.
type Engine struct {
	templates map[string]*template.Template
	fallback  *template.Template
}

// EngineOption configures an Engine.
type EngineOption func(map[string]string)

// WithTemplate registers or replaces the template text for a key.
func WithTemplate(key, text string) EngineOption {
	return func(sources map[string]string) {
		sources[key] = text
	}
}

// NewEngine parses the built-in template set plus any options. Unknown
// template keys fall back to the generic page template at render time.
func NewEngine(opts ...EngineOption) (*Engine, error) {
	sources := map[string]string{
		"page":  pageTemplate,
		"error": errorTemplate,
	}
	for _, opt := range opts {
		opt(sources)
	}

	e := &Engine{templates: make(map[string]*template.Template, len(sources))}
	for key, text := range sources {
		tmpl, err := template.New(key).Parse(text)
		if err != nil {
			return nil, fmt.Errorf("parse template %q: %w", key, err)
		}
		e.templates[key] = tmpl
	}
	e.fallback = e.templates["page"]
	return e, nil
}

// Render implements contentfront.Renderer.
func (e *Engine) Render(ctx context.Context, templateKey string, rep contentfront.Representation, view *contentfront.PageView) ([]byte, error) {
	if rep.Format == contentfront.FormatAtom {
		return renderAtom(view)
	}

	tmpl, ok := e.templates[templateKey]
	if !ok {
		tmpl = e.fallback
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, newPageData(rep, view)); err != nil {
		return nil, &contentfront.RenderError{TemplateKey: templateKey, Err: err}
	}
	return buf.Bytes(), nil
}

// pageData is the flattened template context.
type pageData struct {
	Title       string
	Description string
	Body        template.HTML
	Locale      string
	Print       bool
	Taxons      []contentfront.LinkedDocument
}

func newPageData(rep contentfront.Representation, view *contentfront.PageView) pageData {
	data := pageData{
		Title:       view.Title,
		Description: view.Description,
		Body:        template.HTML(view.Body),
		Locale:      rep.Locale,
		Print:       rep.Variant == contentfront.VariantPrint,
	}
	if data.Locale == "" {
		data.Locale = view.Locale
	}
	if view.ShowTaxonomyNavigation && view.Presenter != nil {
		data.Taxons = view.Presenter.Document().LinksOf("taxons")
	}
	return data
}

const pageTemplate = `<!DOCTYPE html>
<html lang="{{.Locale}}">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
{{if .Description}}<meta name="description" content="{{.Description}}">{{end}}
</head>
<body{{if .Print}} class="print-variant"{{end}}>
<div id="wrapper">
<h1>{{.Title}}</h1>
{{if .Description}}<p class="description">{{.Description}}</p>{{end}}
<div class="body">{{.Body}}</div>
{{if .Taxons}}<nav class="taxonomy-navigation"><ul>
{{range .Taxons}}<li><a href="{{.BasePath}}">{{.Title}}</a></li>
{{end}}</ul></nav>{{end}}
</div>
</body>
</html>
`

const errorTemplate = `<!DOCTYPE html>
<html lang="{{.Locale}}">
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body><div id="wrapper"><h1>{{.Title}}</h1></div></body>
</html>
`
