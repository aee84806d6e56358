// Package errors defines the error values reported by the language-tag
// parser.
package errors

import "fmt"

// Kind discriminates the failure classes a parse can report.
type Kind int

const (
	// InvalidFormat reports input that matches none of the tag grammars.
	// Every failure the current grammar chain produces is of this kind.
	InvalidFormat Kind = iota
	// UnexpectedEnd reports input that ended where a subtag was required.
	UnexpectedEnd
	// InvalidCharacter reports a byte outside the tag alphabet.
	InvalidCharacter
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case InvalidFormat:
		return "invalid format"
	case UnexpectedEnd:
		return "unexpected end"
	case InvalidCharacter:
		return "invalid character"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseError describes why an input string is not a well-formed BCP 47
// language tag.
type ParseError struct {
	Kind    Kind
	Message string
	Char    byte // set when Kind is InvalidCharacter
	Pos     int  // byte offset into the input, set when Kind is InvalidCharacter
}

// Sentinel targets for errors.Is, one per kind. Matching ignores the
// message, so errors.Is(err, ErrInvalidFormat) holds for every
// InvalidFormat failure the parser reports.
var (
	ErrInvalidFormat    = &ParseError{Kind: InvalidFormat}
	ErrUnexpectedEnd    = &ParseError{Kind: UnexpectedEnd}
	ErrInvalidCharacter = &ParseError{Kind: InvalidCharacter}
)

func (e *ParseError) Error() string {
	switch e.Kind {
	case InvalidCharacter:
		return fmt.Sprintf("tonguetied: invalid character %q at position %d", e.Char, e.Pos)
	case UnexpectedEnd:
		return "tonguetied: unexpected end of input"
	default:
		return "tonguetied: " + e.Message
	}
}

// Is reports whether target is a ParseError of the same kind, making the
// sentinel values above usable with the standard errors.Is.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}

// Formatf builds an InvalidFormat parse error from a format string.
func Formatf(format string, args ...any) *ParseError {
	return &ParseError{Kind: InvalidFormat, Message: fmt.Sprintf(format, args...)}
}
