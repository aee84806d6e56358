package tonguetied_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	tonguetied "github.com/NineFX/tongue-tied"
)

func FuzzParse(f *testing.F) {
	// Seed with one representative of every tag shape and the known
	// tricky boundaries.
	seeds := []string{
		"en",
		"en-US",
		"zh-Hant-HK",
		"zh-yue-gan-cmn",
		"de-CH-1901",
		"sl-rozaj-biske-1994",
		"en-US-u-islamcal",
		"en-a-bbb-b-ccc",
		"en-x-priv-use",
		"x-custom-lang",
		"i-klingon",
		"zh-min-nan",
		"en-a-x-foo",
		"en-a",
		"",
		"-",
		"---",
		"x",
		"x-",
		"EN-US",
		"français",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		// Invalid input is expected constantly; the fuzzer's job here is
		// finding inputs that panic, which the engine detects on its own.
		tag, err := tonguetied.Parse(input)
		if err != nil {
			return
		}

		// A successful parse must rebuild to a string that parses to the
		// same tag.
		rebuilt := canonical(tag)
		again, err := tonguetied.Parse(rebuilt)
		require.NoError(t, err, "re-parse failed for %q (from %q)", rebuilt, input)
		require.Equal(t, tag, again, "round trip changed the tag for %q", input)

		// The rebuilt form is the lowercase input: parsing never drops or
		// reorders subtags.
		require.Equal(t, strings.ToLower(input), rebuilt, "components do not cover the input %q", input)
	})
}
