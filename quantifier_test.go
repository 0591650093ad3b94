package rxsyntax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLexQuantifierSimpleForms(t *testing.T) {
	cases := []struct {
		input string
		kind  AmountKind
	}{
		{"*", AmountZeroOrMore},
		{"+", AmountOneOrMore},
		{"?", AmountZeroOrOne},
	}
	for _, tc := range cases {
		c := newCursor(tc.input)
		amt, kind, ok := lexQuantifier(c, Traditional)
		require.True(t, ok, tc.input)
		require.Equal(t, tc.kind, amt.Kind, tc.input)
		require.Equal(t, QuantEager, kind, tc.input)
		require.True(t, c.isEmpty(), tc.input)
	}
}

func TestLexQuantifierLazyAndPossessive(t *testing.T) {
	c := newCursor("*?")
	_, kind, ok := lexQuantifier(c, Traditional)
	require.True(t, ok)
	require.Equal(t, QuantReluctant, kind)

	c = newCursor("*+")
	_, kind, ok = lexQuantifier(c, Traditional)
	require.True(t, ok)
	require.Equal(t, QuantPossessive, kind)
}

func TestLexQuantifierRangeForms(t *testing.T) {
	cases := []struct {
		input string
		want  Amount
	}{
		{"{3}", Amount{Kind: AmountExactly, Min: 3}},
		{"{3,}", Amount{Kind: AmountNOrMore, Min: 3}},
		{"{,5}", Amount{Kind: AmountUpToN, Max: 5}},
		{"{3,5}", Amount{Kind: AmountRange, Min: 3, Max: 5}},
	}
	for _, tc := range cases {
		c := newCursor(tc.input)
		amt, _, ok := lexQuantifier(c, Traditional)
		require.True(t, ok, tc.input)
		require.Equal(t, tc.want, amt, tc.input)
	}
}

func TestLexQuantifierRejectsWhitespaceInRange(t *testing.T) {
	c := newCursor("{3, 5}")
	_, _, ok := lexQuantifier(c, Traditional)
	require.False(t, ok)
	require.Equal(t, 0, c.checkpoint())
}

func TestLexQuantifierNoneAtNonQuantifier(t *testing.T) {
	c := newCursor("a")
	_, _, ok := lexQuantifier(c, Traditional)
	require.False(t, ok)
	require.Equal(t, 0, c.checkpoint())
}

func TestLexQuantifierExperimentalRanges(t *testing.T) {
	c := newCursor("{1...3}")
	amt, _, ok := lexQuantifier(c, ExperimentalRanges)
	require.True(t, ok)
	require.Equal(t, Amount{Kind: AmountRange, Min: 1, Max: 3}, amt)

	c = newCursor("{1..<3}")
	amt, _, ok = lexQuantifier(c, ExperimentalRanges)
	require.True(t, ok)
	require.Equal(t, Amount{Kind: AmountRange, Min: 1, Max: 2}, amt)
}

func TestLexQuantifierExperimentalRangesRequireOptIn(t *testing.T) {
	c := newCursor("{1...3}")
	_, _, ok := lexQuantifier(c, Traditional)
	require.False(t, ok)
}
