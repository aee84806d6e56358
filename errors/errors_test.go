package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		expected string
	}{
		{
			name:     "invalid format",
			err:      Formatf("invalid language code: %q", "a"),
			expected: `tonguetied: invalid language code: "a"`,
		},
		{
			name:     "unexpected end",
			err:      &ParseError{Kind: UnexpectedEnd},
			expected: "tonguetied: unexpected end of input",
		},
		{
			name:     "invalid character",
			err:      &ParseError{Kind: InvalidCharacter, Char: '_', Pos: 3},
			expected: `tonguetied: invalid character '_' at position 3`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

// The sentinels match any ParseError of their kind, whatever the message.
func TestParseErrorIs(t *testing.T) {
	err := Formatf("invalid language code: %q", "a")

	require.ErrorIs(t, err, ErrInvalidFormat)
	require.NotErrorIs(t, err, ErrUnexpectedEnd)
	require.NotErrorIs(t, err, ErrInvalidCharacter)

	var endErr error = &ParseError{Kind: UnexpectedEnd}
	require.ErrorIs(t, endErr, ErrUnexpectedEnd)

	charErr := &ParseError{Kind: InvalidCharacter, Char: '_', Pos: 3}
	require.ErrorIs(t, charErr, ErrInvalidCharacter)
	// Matching is by kind only; char and position do not have to agree.
	require.ErrorIs(t, charErr, &ParseError{Kind: InvalidCharacter, Char: '!', Pos: 0})

	require.False(t, stderrors.Is(err, stderrors.New("tonguetied: invalid language code: \"a\"")))
}

func TestKindString(t *testing.T) {
	require.Equal(t, "invalid format", InvalidFormat.String())
	require.Equal(t, "unexpected end", UnexpectedEnd.String())
	require.Equal(t, "invalid character", InvalidCharacter.String())
	require.Equal(t, "Kind(42)", Kind(42).String())
}
