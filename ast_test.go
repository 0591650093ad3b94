package rxsyntax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExprBeginEnd(t *testing.T) {
	e := Expr{Pos: Position{Begin: 3, End: 7}}
	require.Equal(t, 3, e.Begin())
	require.Equal(t, 7, e.End())
}

func TestExprLastArg(t *testing.T) {
	e := Expr{Args: []Expr{lit("a"), lit("b"), lit("c")}}
	require.Equal(t, "c", e.LastArg().Value)

	empty := Expr{}
	require.Nil(t, empty.LastArg())
}

func TestExprChildrenIsArgs(t *testing.T) {
	kids := []Expr{lit("a"), lit("b")}
	e := Expr{Args: kids}
	require.Equal(t, kids, e.Children())
}

func TestExprHasCapture(t *testing.T) {
	root := mustParse(t, "a(b)c", Traditional)
	require.True(t, root.HasCapture())

	root = mustParse(t, "abc", Traditional)
	require.False(t, root.HasCapture())

	root = mustParse(t, "a(?:b)c", Traditional)
	require.False(t, root.HasCapture())
}

func TestExprHasCaptureNested(t *testing.T) {
	root := mustParse(t, "(?:a(b))", Traditional)
	require.True(t, root.HasCapture())
}
