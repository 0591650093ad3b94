package rxsyntax

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestBuildCaptureStructureNoCaptures(t *testing.T) {
	root := mustParse(t, "abc", Traditional)
	shape := BuildCaptureStructure(root)
	require.Equal(t, CaptureAtom, shape.Kind)
}

func TestBuildCaptureStructureSingleCapture(t *testing.T) {
	root := mustParse(t, "a(b)c", Traditional)
	shape := BuildCaptureStructure(root)
	require.Equal(t, CaptureAtom, shape.Kind)
}

func TestBuildCaptureStructureMultipleCapturesIsTuple(t *testing.T) {
	root := mustParse(t, "(a)(b)", Traditional)
	shape := BuildCaptureStructure(root)
	require.Equal(t, CaptureTuple, shape.Kind)
	require.Len(t, shape.Elems, 2)
	require.Equal(t, CaptureAtom, shape.Elems[0].Kind)
	require.Equal(t, CaptureAtom, shape.Elems[1].Kind)
}

func TestBuildCaptureStructureOptionalUnderQuestionMark(t *testing.T) {
	root := mustParse(t, "(a)?", Traditional)
	shape := BuildCaptureStructure(root)
	require.Equal(t, CaptureOptional, shape.Kind)
	require.NotNil(t, shape.Inner)
	require.Equal(t, CaptureAtom, shape.Inner.Kind)
}

func TestBuildCaptureStructureArrayUnderStarAndPlus(t *testing.T) {
	for _, pattern := range []string{"(a)*", "(a)+"} {
		root := mustParse(t, pattern, Traditional)
		shape := BuildCaptureStructure(root)
		require.Equal(t, CaptureArray, shape.Kind, pattern)
	}
}

func TestBuildCaptureStructureNestedCaptures(t *testing.T) {
	root := mustParse(t, "((a)(b))", Traditional)
	shape := BuildCaptureStructure(root)
	require.Equal(t, CaptureTuple, shape.Kind)
	require.Len(t, shape.Elems, 3)
	for _, elem := range shape.Elems {
		require.Equal(t, CaptureAtom, elem.Kind)
	}
}

func TestBuildCaptureStructureQuantifiedNestedCapture(t *testing.T) {
	root := mustParse(t, "(a(b))*", Traditional)
	shape := BuildCaptureStructure(root)
	require.Equal(t, CaptureArray, shape.Kind)
	require.NotNil(t, shape.Inner)
	require.Equal(t, CaptureAtom, shape.Inner.Kind)
}

func TestCaptureShapeEncodeDecodeRoundTrip(t *testing.T) {
	cases := []CaptureShape{
		{Kind: CaptureAtom},
		{Kind: CaptureOptional, Inner: &CaptureShape{Kind: CaptureAtom}},
		{Kind: CaptureArray, Inner: &CaptureShape{Kind: CaptureOptional, Inner: &CaptureShape{Kind: CaptureAtom}}},
		{Kind: CaptureTuple, Elems: []CaptureShape{
			{Kind: CaptureAtom},
			{Kind: CaptureArray, Inner: &CaptureShape{Kind: CaptureAtom}},
		}},
	}
	for _, shape := range cases {
		buf := make([]byte, CaptureBufferSize(shape))
		n := EncodeCaptureShape(shape, buf)
		require.Equal(t, len(buf), n)
		decoded, consumed := DecodeCaptureShape(buf)
		require.Equal(t, len(buf), consumed)
		if diff := cmp.Diff(shape, decoded); diff != "" {
			t.Errorf("decode(encode(shape)) mismatch (-want +got):\n%s", diff)
		}
	}
}
