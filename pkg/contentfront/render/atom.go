package render

import (
	"bytes"
	"encoding/xml"
	"time"

	"github.com/tendant/content-frontend/pkg/contentfront"
)

// atomFeed is the minimal valid feed representation.
type atomFeed struct {
	XMLName xml.Name    `xml:"feed"`
	Xmlns   string      `xml:"xmlns,attr"`
	Title   string      `xml:"title"`
	ID      string      `xml:"id"`
	Updated string      `xml:"updated"`
	Links   []atomLink  `xml:"link"`
	Entries []atomEntry `xml:"entry"`
}

type atomLink struct {
	Rel  string `xml:"rel,attr"`
	Href string `xml:"href,attr"`
}

type atomEntry struct {
	Title   string `xml:"title"`
	ID      string `xml:"id"`
	Updated string `xml:"updated"`
	Summary string `xml:"summary"`
}

// renderAtom serializes the view as an atom feed with one entry for the
// document's latest change.
func renderAtom(view *contentfront.PageView) ([]byte, error) {
	doc := view.Presenter.Document()

	updated := time.Now().UTC()
	if doc.PublicUpdatedAt != nil {
		updated = doc.PublicUpdatedAt.UTC()
	}
	stamp := updated.Format(time.RFC3339)

	feed := atomFeed{
		Xmlns:   "http://www.w3.org/2005/Atom",
		Title:   view.Title,
		ID:      "tag:" + doc.BasePath,
		Updated: stamp,
		Links: []atomLink{
			{Rel: "self", Href: doc.BasePath + ".atom"},
			{Rel: "alternate", Href: doc.BasePath},
		},
		Entries: []atomEntry{
			{
				Title:   view.Title,
				ID:      "tag:" + doc.BasePath + "#" + stamp,
				Updated: stamp,
				Summary: view.Description,
			},
		},
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(feed); err != nil {
		return nil, &contentfront.RenderError{TemplateKey: "atom", Err: err}
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
