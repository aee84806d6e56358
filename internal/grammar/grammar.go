// Package grammar implements the RFC 5646 tag productions over a subtag
// token sequence. Each recognizer consumes a greedy prefix of its input
// and hands the remainder to the next; none backtracks. The grammar has no
// cross-category length ambiguity, so a greedy single pass is exact.
package grammar

import (
	"strings"

	"github.com/NineFX/tongue-tied/errors"
	"github.com/NineFX/tongue-tied/internal/scanner"
	"github.com/NineFX/tongue-tied/internal/subtag"
)

// privateUseMarker introduces a private-use sequence.
const privateUseMarker = "x"

// maxExtlangs bounds the extended-language subtags chained onto a short
// primary language code.
const maxExtlangs = 3

// Langtag is the component breakdown of a structured language tag.
// All fields are lowercase; optional fields are empty when absent.
type Langtag struct {
	Language   string // primary code, with extlangs joined by '-'
	Script     string
	Region     string
	Variants   []string // input order, duplicates preserved
	Extensions []Extension
	PrivateUse string // dash-joined subtags, without the leading marker
}

// Extension is one singleton-introduced extension sequence.
type Extension struct {
	Singleton string // single character, never the private-use marker
	Subtags   []string
}

// PrivateUse recognizes a whole-tag private-use sequence: the marker token
// followed by one or more subtags of one to eight alphanumerics. On success
// it returns the dash-joined sequence including the marker.
func PrivateUse(tokens []string) (string, bool) {
	if len(tokens) < 2 || tokens[0] != privateUseMarker {
		return "", false
	}
	for _, t := range tokens[1:] {
		if !subtag.IsPrivateUseSubtag(t) {
			return "", false
		}
	}
	return scanner.Canonical(tokens), true
}

// ParseLangtag runs the full recognizer chain over the token sequence.
// The chain order encodes the ABNF production order: language, script,
// region, variants, extensions, private use. Any token left after the
// chain fails the parse.
func ParseLangtag(tokens []string) (Langtag, error) {
	var lt Langtag

	rest, err := language(&lt, tokens)
	if err != nil {
		return Langtag{}, err
	}
	rest = script(&lt, rest)
	rest = region(&lt, rest)
	rest = variants(&lt, rest)
	rest = extensions(&lt, rest)
	rest = privateUse(&lt, rest)

	if len(rest) > 0 {
		return Langtag{}, errors.Formatf("unexpected trailing subtags: %q", scanner.Canonical(rest))
	}
	return lt, nil
}

// language consumes the primary language subtag and, for two- and
// three-letter codes, up to three extended-language subtags.
func language(lt *Langtag, tokens []string) ([]string, error) {
	if len(tokens) == 0 {
		return nil, errors.Formatf("empty language tag")
	}

	head, rest := tokens[0], tokens[1:]
	switch {
	case len(head) >= 2 && len(head) <= 3 && subtag.AllAlpha(head):
		parts := []string{head}
		for len(rest) > 0 && len(parts) <= maxExtlangs && subtag.IsExtlang(rest[0]) {
			parts = append(parts, rest[0])
			rest = rest[1:]
		}
		lt.Language = strings.Join(parts, scanner.Separator)
		return rest, nil
	case len(head) == 4 && subtag.AllAlpha(head):
		// Reserved for future use, syntactically valid.
		lt.Language = head
		return rest, nil
	case len(head) >= 5 && len(head) <= 8 && subtag.AllAlpha(head):
		// Registered language subtag.
		lt.Language = head
		return rest, nil
	default:
		return nil, errors.Formatf("invalid language code: %q", head)
	}
}

func script(lt *Langtag, tokens []string) []string {
	if len(tokens) > 0 && subtag.IsScript(tokens[0]) {
		lt.Script = tokens[0]
		return tokens[1:]
	}
	return tokens
}

func region(lt *Langtag, tokens []string) []string {
	if len(tokens) > 0 && subtag.IsRegion(tokens[0]) {
		lt.Region = tokens[0]
		return tokens[1:]
	}
	return tokens
}

func variants(lt *Langtag, tokens []string) []string {
	for len(tokens) > 0 && subtag.IsVariant(tokens[0]) {
		lt.Variants = append(lt.Variants, tokens[0])
		tokens = tokens[1:]
	}
	return tokens
}

// extensions consumes singleton-introduced sequences. A singleton with no
// following subtags is not an extension, so the singleton token is left
// unconsumed for the trailing-subtag check.
func extensions(lt *Langtag, tokens []string) []string {
	for len(tokens) > 0 {
		head := tokens[0]
		if len(head) != 1 || !subtag.IsSingleton(head[0]) {
			break
		}
		end := 1
		for end < len(tokens) && subtag.IsExtensionSubtag(tokens[end]) {
			end++
		}
		if end == 1 {
			break
		}
		lt.Extensions = append(lt.Extensions, Extension{
			Singleton: head,
			Subtags:   tokens[1:end],
		})
		tokens = tokens[end:]
	}
	return tokens
}

// privateUse consumes an embedded private-use sequence at the end of the
// tag. A marker whose subtags fail validation is not consumed; the
// trailing-subtag check reports it instead.
func privateUse(lt *Langtag, tokens []string) []string {
	if len(tokens) < 2 || tokens[0] != privateUseMarker {
		return tokens
	}
	for _, t := range tokens[1:] {
		if !subtag.IsPrivateUseSubtag(t) {
			return tokens
		}
	}
	lt.PrivateUse = scanner.Canonical(tokens[1:])
	return nil
}
