package api

import (
	"net/url"
	"strings"

	"github.com/tendant/content-frontend/pkg/contentfront"
)

// formatExtensions maps path extensions to output formats.
var formatExtensions = map[string]contentfront.Format{
	"atom": contentfront.FormatAtom,
	"html": contentfront.FormatHTML,
}

// defaultLocales is the locale suffix set recognised in request paths.
var defaultLocales = []string{
	"ar", "az", "be", "bg", "bn", "cs", "cy", "da", "de", "dr", "el",
	"en", "es", "es-419", "et", "fa", "fr", "gd", "he", "hi", "hr",
	"hu", "hy", "id", "is", "it", "ja", "ka", "kk", "ko", "lt", "lv",
	"ms", "mt", "nl", "no", "pl", "ps", "pt", "ro", "ru", "si", "sk",
	"sl", "so", "sq", "sr", "sv", "sw", "ta", "th", "tk", "tr", "uk",
	"ur", "uz", "vi", "zh", "zh-hk", "zh-tw",
}

// parsedPath is the decomposition of a raw request path into its base path
// and representation hints.
type parsedPath struct {
	Path    string
	Format  contentfront.Format
	Locale  string
	Variant string
}

// parsePath splits a raw request path into base path, explicit format
// extension, locale suffix and variant segment. The path is percent-decoded
// exactly once here; a decoded path whose literal name contains a percent
// sequence must reach the upstream unchanged. Suffixes are stripped only
// when they match the known locale and format sets, so paths containing
// dots survive untouched.
func parsePath(raw string, locales map[string]bool) parsedPath {
	p := parsedPath{}
	if decoded, err := url.PathUnescape(raw); err == nil {
		raw = decoded
	}
	raw = strings.Trim(raw, "/")

	if strings.HasSuffix(raw, "/"+contentfront.VariantPrint) {
		p.Variant = contentfront.VariantPrint
		raw = strings.TrimSuffix(raw, "/"+contentfront.VariantPrint)
	}

	// Trailing extensions: ".<locale>.<format>", ".<format>" or
	// ".<locale>" on the last segment.
	if ext := lastExtension(raw); ext != "" {
		if format, ok := formatExtensions[ext]; ok {
			p.Format = format
			raw = raw[:len(raw)-len(ext)-1]
		}
	}
	if ext := lastExtension(raw); ext != "" {
		if locales[ext] {
			p.Locale = ext
			raw = raw[:len(raw)-len(ext)-1]
		}
	}

	p.Path = contentfront.NormalizePath(raw)
	return p
}

func lastExtension(path string) string {
	slash := strings.LastIndexByte(path, '/')
	dot := strings.LastIndexByte(path, '.')
	if dot <= slash {
		return ""
	}
	return path[dot+1:]
}

func localeSet(locales []string) map[string]bool {
	set := make(map[string]bool, len(locales))
	for _, l := range locales {
		set[l] = true
	}
	return set
}
