package rxsyntax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLexRegexDelimiterTable(t *testing.T) {
	cases := []struct {
		input     string
		contents  string
		delim     [2]byte
		modifiers string
	}{
		{"@foo@", "foo", [2]byte{'@', '@'}, ""},
		{"/foo/i", "foo", [2]byte{'/', '/'}, "i"},
		{"#hello#", "hello", [2]byte{'#', '#'}, ""},
		{"{pcre pattern}smi", "pcre pattern", [2]byte{'{', '}'}, "smi"},
		{"<an[o]ther (example)!>ms", "an[o]ther (example)!", [2]byte{'<', '>'}, "ms"},
	}
	for _, tc := range cases {
		contents, delim, endPos, ok := LexRegex(tc.input, 0)
		require.True(t, ok, tc.input)
		require.Equal(t, tc.contents, contents, tc.input)
		require.Equal(t, tc.delim, delim, tc.input)
		modifiers, _ := lexModifiers(tc.input, endPos)
		require.Equal(t, tc.modifiers, modifiers, tc.input)
	}
}

func TestLexRegexRejectsAlnumOpener(t *testing.T) {
	_, _, _, ok := LexRegex("afooa", 0)
	require.False(t, ok)
}

func TestLexRegexRespectsEscapedCloser(t *testing.T) {
	contents, _, _, ok := LexRegex(`@foo\@bar@`, 0)
	require.True(t, ok)
	require.Equal(t, `foo\@bar`, contents)
}

func TestParseWithDelimitersRoundTrip(t *testing.T) {
	result, err := ParseWithDelimiters("/ab/i", Traditional)
	require.NoError(t, err)
	require.Equal(t, [2]byte{'/', '/'}, result.Delim)
	require.Equal(t, "i", result.Modifiers)
	require.Equal(t, OpConcatenation, result.Pattern.Expr.Op)
}

func TestParseWithDelimitersPropagatesInnerParseError(t *testing.T) {
	_, err := ParseWithDelimiters("/(/", Traditional)
	require.Error(t, err)
	pe, ok := err.(ParseError)
	require.True(t, ok)
	require.Equal(t, ErrUnexpectedEndOfInput, pe.Kind)
}

func TestParseWithDelimitersRejectsUndelimited(t *testing.T) {
	_, err := ParseWithDelimiters("abc", Traditional)
	require.Error(t, err)
}
