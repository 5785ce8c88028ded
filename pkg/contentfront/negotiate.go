package contentfront

import (
	"strings"
)

// Media types recognised during Accept negotiation.
const (
	mediaAny   = "*/*"
	mediaHTML  = "text/html"
	mediaXHTML = "application/xhtml+xml"
	mediaAtom  = "application/atom+xml"
)

// ParseAccept splits an Accept header into its ordered media types,
// dropping parameters such as quality values.
func ParseAccept(header string) []string {
	if header == "" {
		return nil
	}
	parts := strings.Split(header, ",")
	media := make([]string, 0, len(parts))
	for _, p := range parts {
		if i := strings.IndexByte(p, ';'); i >= 0 {
			p = p[:i]
		}
		p = strings.TrimSpace(p)
		if p != "" {
			media = append(media, strings.ToLower(p))
		}
	}
	return media
}

// Negotiate selects exactly one output representation for the request
// against the schema's strategy, in strict precedence order:
//
//  1. an explicit variant tag supported by the strategy wins over
//     everything, including the Accept header;
//  2. an explicit format is accepted only when the strategy supports it,
//     otherwise the request is rejected with ErrNotAcceptable — a requested
//     machine format is never silently downgraded to html;
//  3. otherwise the Accept header is negotiated: */* and text/html select
//     html when supported; a machine-only Accept list the schema does not
//     support is rejected;
//  4. a requested locale must equal the resolved document's declared
//     locale, else the translation is missing.
func Negotiate(req RequestDescriptor, doc *Document, strategy PresentationStrategy) (Representation, error) {
	rep := Representation{Format: FormatHTML, Locale: doc.Locale}
	if rep.Locale == "" {
		rep.Locale = "en"
	}

	if req.Locale != "" && doc.Locale != req.Locale {
		return Representation{}, ErrTranslationUnavailable
	}

	if req.Variant != "" && strategy.Supports(Format(req.Variant)) {
		rep.Variant = req.Variant
		return rep, nil
	}

	if req.Format != "" {
		if !strategy.Supports(req.Format) {
			return Representation{}, ErrNotAcceptable
		}
		rep.Format = req.Format
		return rep, nil
	}

	format, ok := negotiateAccept(req, strategy)
	if !ok {
		return Representation{}, ErrNotAcceptable
	}
	rep.Format = format
	return rep, nil
}

func negotiateAccept(req RequestDescriptor, strategy PresentationStrategy) (Format, bool) {
	if len(req.Accept) == 0 {
		// Script-marked requests must state an acceptable media type.
		if req.ViaScript {
			return "", false
		}
		if strategy.Supports(FormatHTML) {
			return FormatHTML, true
		}
		return "", false
	}

	for _, media := range req.Accept {
		switch media {
		case mediaAny, mediaHTML, mediaXHTML:
			if strategy.Supports(FormatHTML) {
				return FormatHTML, true
			}
		case mediaAtom:
			if strategy.Supports(FormatAtom) {
				return FormatAtom, true
			}
		}
	}
	return "", false
}
