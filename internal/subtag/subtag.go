// Package subtag classifies the characters and subtag shapes of RFC 5646
// language tags. All predicates are ASCII-only; any byte outside the ASCII
// letter and digit ranges fails every check.
package subtag

// IsAlpha reports whether c is an ASCII letter.
func IsAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// IsDigit reports whether c is an ASCII digit.
func IsDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// IsAlphanum reports whether c is an ASCII letter or digit.
func IsAlphanum(c byte) bool {
	return IsAlpha(c) || IsDigit(c)
}

// IsSingleton reports whether c can introduce an extension: any ASCII
// letter or digit except 'x', which is reserved for private use.
func IsSingleton(c byte) bool {
	return IsAlphanum(c) && c != 'x' && c != 'X'
}

// AllAlpha reports whether s is non-empty and all ASCII letters.
func AllAlpha(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsAlpha(s[i]) {
			return false
		}
	}
	return true
}

// AllDigit reports whether s is non-empty and all ASCII digits.
func AllDigit(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsDigit(s[i]) {
			return false
		}
	}
	return true
}

// AllAlphanum reports whether s is non-empty and all ASCII letters or digits.
func AllAlphanum(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsAlphanum(s[i]) {
			return false
		}
	}
	return true
}

// IsExtlang reports whether s has the shape of an extended language
// subtag: exactly three letters.
func IsExtlang(s string) bool {
	return len(s) == 3 && AllAlpha(s)
}

// IsScript reports whether s has the shape of a script subtag: exactly
// four letters.
func IsScript(s string) bool {
	return len(s) == 4 && AllAlpha(s)
}

// IsRegion reports whether s has the shape of a region subtag: two
// letters or three digits.
func IsRegion(s string) bool {
	return (len(s) == 2 && AllAlpha(s)) || (len(s) == 3 && AllDigit(s))
}

// IsVariant reports whether s has the shape of a variant subtag: five to
// eight alphanumerics, or exactly four characters starting with a digit.
func IsVariant(s string) bool {
	if len(s) >= 5 && len(s) <= 8 {
		return AllAlphanum(s)
	}
	return len(s) == 4 && IsDigit(s[0]) && AllAlphanum(s)
}

// IsExtensionSubtag reports whether s can follow an extension singleton:
// two to eight alphanumerics. The length floor keeps singletons from being
// swallowed as extension payload.
func IsExtensionSubtag(s string) bool {
	return len(s) >= 2 && len(s) <= 8 && AllAlphanum(s)
}

// IsPrivateUseSubtag reports whether s can follow the 'x' marker: one to
// eight alphanumerics.
func IsPrivateUseSubtag(s string) bool {
	return len(s) >= 1 && len(s) <= 8 && AllAlphanum(s)
}
