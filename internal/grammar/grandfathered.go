package grammar

// grandfathered holds the 26 tags of RFC 5646 Appendix A, lowercased.
// These were registered under RFC 1766/3066 rules and do not fit the
// langtag production, so they are matched verbatim before anything else.
var grandfathered = map[string]struct{}{
	// irregular
	"en-gb-oed":  {},
	"i-ami":      {},
	"i-bnn":      {},
	"i-default":  {},
	"i-enochian": {},
	"i-hak":      {},
	"i-klingon":  {},
	"i-lux":      {},
	"i-mingo":    {},
	"i-navajo":   {},
	"i-pwn":      {},
	"i-tao":      {},
	"i-tay":      {},
	"i-tsu":      {},
	"sgn-be-fr":  {},
	"sgn-be-nl":  {},
	"sgn-ch-de":  {},
	// regular
	"art-lojban":  {},
	"cel-gaulish": {},
	"no-bok":      {},
	"no-nyn":      {},
	"zh-guoyu":    {},
	"zh-hakka":    {},
	"zh-min":      {},
	"zh-min-nan":  {},
	"zh-xiang":    {},
}

// Grandfathered reports whether the canonical lowercase tag string is one
// of the RFC 5646 Appendix A registrations.
func Grandfathered(canonical string) bool {
	_, ok := grandfathered[canonical]
	return ok
}

// GrandfatheredTags returns every Appendix A tag, for table-driven callers.
func GrandfatheredTags() []string {
	tags := make([]string, 0, len(grandfathered))
	for tag := range grandfathered {
		tags = append(tags, tag)
	}
	return tags
}
