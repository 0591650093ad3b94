package rxsyntax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func parseBackslashAtom(t *testing.T, pattern string, priorGroupCount int) Expr {
	t.Helper()
	c := newCursor(pattern)
	return lexBackslashAtom(c, Traditional, priorGroupCount)
}

func TestOctalLeadingZeroAlwaysOctal(t *testing.T) {
	got := parseBackslashAtom(t, `\0707`, 0)
	require.Equal(t, OpUnicodeScalar, got.Op)
	require.Equal(t, rune(0o070), got.Scalar)
}

func TestOctalDecimalBelowTenIsBackreference(t *testing.T) {
	got := parseBackslashAtom(t, `\5`, 0)
	require.Equal(t, OpBackreference, got.Op)
	require.Equal(t, 5, got.Ref.Number)
}

func TestOctalHighDigitIsBackreference(t *testing.T) {
	got := parseBackslashAtom(t, `\80`, 0)
	require.Equal(t, OpBackreference, got.Op)
	require.Equal(t, 80, got.Ref.Number)
}

func TestOctalDisambiguationByPriorGroupCount(t *testing.T) {
	// \10 with only 2 prior groups: 10 > 9 and 10 > priorGroupCount(2), so
	// it re-lexes as octal \10 -> U+0008.
	got := parseBackslashAtom(t, `\10`, 2)
	require.Equal(t, OpUnicodeScalar, got.Op)
	require.Equal(t, rune(0o10), got.Scalar)

	// Same text, but with 10 prior groups: 10 <= priorGroupCount, so it is
	// a backreference.
	got = parseBackslashAtom(t, `\10`, 10)
	require.Equal(t, OpBackreference, got.Op)
	require.Equal(t, 10, got.Ref.Number)
}

func TestOctalRunCapsAtThreeDigits(t *testing.T) {
	got := parseBackslashAtom(t, `\0123`, 0)
	require.Equal(t, OpUnicodeScalar, got.Op)
	require.Equal(t, rune(0o012), got.Scalar)
}
