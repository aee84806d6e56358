// Package scanner turns a raw language-tag string into the subtag token
// sequence the grammar operates on.
package scanner

import "strings"

// Separator joins subtags within a language tag.
const Separator = "-"

// Scan ASCII-lowercases input and splits it on the subtag separator.
// Empty tokens from leading, trailing, or doubled separators are kept;
// they fail every downstream grammar on their own.
func Scan(input string) []string {
	return strings.Split(lower(input), Separator)
}

// Canonical rejoins a token sequence into the canonical comparison string.
func Canonical(tokens []string) string {
	return strings.Join(tokens, Separator)
}

// lower folds ASCII upper case only, leaving non-ASCII bytes untouched so
// multi-byte sequences pass through intact and fail validation later.
func lower(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}

	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
