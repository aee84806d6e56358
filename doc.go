/*
Package tonguetied parses BCP 47 (RFC 5646) language tags. Given an
arbitrary string it decides which of the three mutually exclusive tag
shapes the string has (grandfathered, private-use, or a structured
langtag) and extracts every component with the exact boundary rules of
the RFC's ABNF grammar.

The single entry point is Parse, which returns a Tag. A Tag is always
exactly one of three concrete types, and callers switch on the type:

	tag, err := tonguetied.Parse("zh-Hant-HK")
	if err != nil {
		// handle error
	}

	switch t := tag.(type) {
	case tonguetied.LangTag:
		// t.Language == "zh", t.Script == "hant", t.Region == "hk"
	case tonguetied.PrivateUse:
		// e.g. Parse("x-custom-lang") yields PrivateUse("x-custom-lang")
	case tonguetied.Grandfathered:
		// e.g. Parse("i-klingon") yields Grandfathered("i-klingon")
	}

Validation is syntactic only. A subtag is accepted when it matches the
grammar's length and character rules, whether or not it is registered
with IANA: "zz-zz" parses even though no such language or region exists.
Registry lookups, locale matching, and canonicalization are out of
scope; for those, see golang.org/x/text/language.

All components are stored ASCII-lowercase. The conventional mixed-case
rendering of a tag (title-case script, upper-case region) is a display
concern and lives in the display subpackage.

Parsing is pure and allocation-local: no package state is written, so
any number of goroutines may call Parse concurrently.
*/
package tonguetied
