// Package display renders parsed language tags with the conventional
// BCP 47 casing: language lowercase, script title-case, region upper-case.
// The parser itself stores everything lowercase; this package is the
// presentation layer on top of it.
package display

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	tonguetied "github.com/NineFX/tongue-tied"
)

// Format renders tag in the conventional mixed-case form. Grandfathered
// and private-use tags have no conventional casing and render verbatim.
func Format(tag tonguetied.Tag) string {
	switch t := tag.(type) {
	case tonguetied.LangTag:
		return formatLangTag(t)
	case tonguetied.PrivateUse:
		return string(t)
	case tonguetied.Grandfathered:
		return string(t)
	default:
		return ""
	}
}

func formatLangTag(t tonguetied.LangTag) string {
	parts := []string{t.Language}
	if t.Script != "" {
		// A Caser carries transform state, so build one per call rather
		// than sharing a package-level instance across goroutines.
		// Language-neutral title casing is what RFC 5646 section 2.1.1
		// recommends for script display.
		parts = append(parts, cases.Title(language.Und).String(t.Script))
	}
	if t.Region != "" {
		parts = append(parts, strings.ToUpper(t.Region))
	}
	parts = append(parts, t.Variants...)
	for _, ext := range t.Extensions {
		parts = append(parts, ext.Singleton)
		parts = append(parts, ext.Subtags...)
	}
	if t.PrivateUse != "" {
		parts = append(parts, "x", t.PrivateUse)
	}
	return strings.Join(parts, "-")
}
