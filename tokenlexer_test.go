package rxsyntax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func tokenKinds(t *testing.T, input string) []tokenKind {
	t.Helper()
	var l tokenLexer
	l.Init(input)
	var kinds []tokenKind
	for l.HasMoreTokens() {
		kinds = append(kinds, l.NextToken().kind)
	}
	return kinds
}

func TestTokenLexerConcatInsertion(t *testing.T) {
	// Adjacent atoms get a synthetic Concat token spliced in between them.
	require.Equal(t, []tokenKind{tokChar, tokConcat, tokChar}, tokenKinds(t, "ab"))
}

func TestTokenLexerNoConcatAroundPipe(t *testing.T) {
	require.Equal(t, []tokenKind{tokChar, tokPipe, tokChar}, tokenKinds(t, "a|b"))
}

func TestTokenLexerNoConcatAfterOpenGroup(t *testing.T) {
	require.Equal(t, []tokenKind{tokLparen, tokChar, tokRparen}, tokenKinds(t, "(a)"))
}

func TestTokenLexerNonCaptureGroupFlags(t *testing.T) {
	require.Equal(t, []tokenKind{tokLparenFlags, tokChar, tokRparen}, tokenKinds(t, "(?:a)"))
}

func TestTokenLexerLookaroundIntroducers(t *testing.T) {
	cases := map[string]tokenKind{
		"(?=a)": tokLookahead,
		"(?!a)": tokNegLookahead,
		"(?<=a)": tokLookbehind,
		"(?<!a)": tokNegLookbehind,
		"(?>a)": tokAtomic,
	}
	for pattern, want := range cases {
		kinds := tokenKinds(t, pattern)
		require.Equal(t, want, kinds[0], pattern)
		require.Equal(t, tokRparen, kinds[len(kinds)-1], pattern)
	}
}

func TestTokenLexerNamedCaptureForms(t *testing.T) {
	require.Equal(t, tokLparenNameAngle, tokenKinds(t, "(?<name>a)")[0])
	require.Equal(t, tokLparenNameQuote, tokenKinds(t, "(?'name'a)")[0])
	require.Equal(t, tokLparenNameP, tokenKinds(t, "(?P<name>a)")[0])
}

func TestTokenLexerComment(t *testing.T) {
	require.Equal(t, []tokenKind{tokComment}, tokenKinds(t, "(?#hi)"))
}

func TestTokenLexerEscapeForms(t *testing.T) {
	require.Equal(t, tokEscapeUniFull, tokenKinds(t, `\p{Greek}`)[0])
	require.Equal(t, tokEscapeUni, tokenKinds(t, `\pL`)[0])
	require.Equal(t, tokEscapeHexFull, tokenKinds(t, `\x{41}`)[0])
	require.Equal(t, tokEscapeHex, tokenKinds(t, `\x41`)[0])
	require.Equal(t, tokEscapeOctal, tokenKinds(t, `\101`)[0])
	require.Equal(t, tokQ, tokenKinds(t, `\Qabc\E`)[0])
}

func TestTokenLexerCharClassPosix(t *testing.T) {
	require.Equal(t, []tokenKind{tokLbracket, tokPosixClass, tokRbracket}, tokenKinds(t, "[[:alpha:]]"))
}

func TestTokenLexerCharClassCaretAndMinus(t *testing.T) {
	kinds := tokenKinds(t, "[^a-z]")
	require.Equal(t, tokLbracketCaret, kinds[0])
	require.Contains(t, kinds, tokMinus)
	require.Equal(t, tokRbracket, kinds[len(kinds)-1])
}

func TestTokenKindStringMatchesLiterals(t *testing.T) {
	require.Equal(t, "(", tokLparen.String())
	require.Equal(t, ")", tokRparen.String())
	require.Equal(t, "(?P<name>", tokLparenNameP.String())
	require.Equal(t, `\Q`, tokQ.String())
}

func TestTokenLexerTrailingBackslashFails(t *testing.T) {
	require.Panics(t, func() {
		var l tokenLexer
		l.Init(`a\`)
	})
}
