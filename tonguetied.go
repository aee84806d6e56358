package tonguetied

import (
	"github.com/NineFX/tongue-tied/errors"
	"github.com/NineFX/tongue-tied/internal/grammar"
	"github.com/NineFX/tongue-tied/internal/scanner"
)

// Parse parses input as a BCP 47 (RFC 5646) language tag and reports which
// of the three tag shapes it has. Matching is purely syntactic: subtags are
// checked against the ABNF grammar, not against the IANA registry.
//
// The input is ASCII-lowercased before matching, so Parse("EN-us") and
// Parse("en-US") return equal tags. The three grammars are tried in fixed
// order: grandfathered, private-use, then the structured langtag
// production. The order matters; "zh-min-nan" is a grandfathered tag, not
// a langtag with a spurious extlang, and a bare "x" is a private-use
// marker, not a language code.
//
// On failure Parse returns a *errors.ParseError describing the most
// specific rejection, which is always the structured parser's. Parse never
// panics, for any input.
func Parse(input string) (Tag, error) {
	if input == "" {
		return nil, errors.Formatf("empty language tag")
	}

	tokens := scanner.Scan(input)

	if canonical := scanner.Canonical(tokens); grammar.Grandfathered(canonical) {
		return Grandfathered(canonical), nil
	}
	if raw, ok := grammar.PrivateUse(tokens); ok {
		return PrivateUse(raw), nil
	}

	lt, err := grammar.ParseLangtag(tokens)
	if err != nil {
		return nil, err
	}
	return newLangTag(lt), nil
}

// newLangTag lifts the grammar's component record into the public type.
func newLangTag(lt grammar.Langtag) LangTag {
	out := LangTag{
		Language:   lt.Language,
		Script:     lt.Script,
		Region:     lt.Region,
		Variants:   lt.Variants,
		PrivateUse: lt.PrivateUse,
	}
	for _, ext := range lt.Extensions {
		out.Extensions = append(out.Extensions, Extension{
			Singleton: ext.Singleton,
			Subtags:   ext.Subtags,
		})
	}
	return out
}
