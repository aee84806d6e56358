package tonguetied

// Tag is the result of a successful parse. Exactly one of the three
// concrete types holds: LangTag, PrivateUse, or Grandfathered. Consumers
// switch on the concrete type.
type Tag interface {
	tagNode()
}

// LangTag is a structured language tag broken into its components.
// All fields are lowercase. Optional fields are empty when absent.
type LangTag struct {
	// Language is the primary language subtag, with any extended-language
	// subtags joined by '-' (e.g. "zh-yue").
	Language string
	// Script is the four-letter script subtag, if present.
	Script string
	// Region is the two-letter or three-digit region subtag, if present.
	Region string
	// Variants lists variant subtags in input order. Duplicates are kept.
	Variants []string
	// Extensions lists singleton-introduced extension sequences in input
	// order.
	Extensions []Extension
	// PrivateUse is the dash-joined private-use remainder, without the
	// leading "x", if present.
	PrivateUse string
}

func (LangTag) tagNode() {}

// Extension is one extension sequence of a LangTag.
type Extension struct {
	// Singleton is the single-character marker, never "x".
	Singleton string
	// Subtags is the non-empty sequence following the singleton.
	Subtags []string
}

// PrivateUse is a whole tag consisting only of a private-use sequence,
// e.g. "x-custom-lang". The value is the full lowercase tag including the
// leading "x".
type PrivateUse string

func (PrivateUse) tagNode() {}

// Grandfathered is one of the 26 tags registered under pre-RFC 4646 rules
// and listed in RFC 5646 Appendix A, e.g. "i-klingon". The value is the
// full lowercase tag.
type Grandfathered string

func (Grandfathered) tagNode() {}
