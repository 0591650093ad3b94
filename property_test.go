package rxsyntax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFoldLooseMatching(t *testing.T) {
	require.Equal(t, "greek", fold("Greek"))
	require.Equal(t, "greek", fold("is_Greek"))
	require.Equal(t, "greek", fold("IS-GREEK"))
	require.Equal(t, "greek", fold("  Greek "))
}

func TestClassifyPropertyKeyedGeneralCategory(t *testing.T) {
	pred := classifyPropertyKeyed("gc", "Lu")
	require.Equal(t, PropertyGeneralCategory, pred.Kind)
	require.Equal(t, "Lu", pred.Value)
	require.Equal(t, "General_Category", pred.Key)
}

func TestClassifyPropertyKeyedScript(t *testing.T) {
	pred := classifyPropertyKeyed("sc", "isGreek")
	require.Equal(t, PropertyScript, pred.Kind)
	require.Equal(t, "Greek", pred.Value)
}

func TestClassifyPropertyKeyedUnknownBlockIsOther(t *testing.T) {
	pred := classifyPropertyKeyed("blk", "Nonexistent_Block")
	require.Equal(t, PropertyOther, pred.Kind)
	require.Equal(t, "blk", pred.RawKey)
	require.Equal(t, "Nonexistent_Block", pred.RawValue)
}

func TestClassifyPropertyShorthandPriority(t *testing.T) {
	// General category is tried before script, before binary property.
	pred := classifyPropertyShorthand("L")
	require.Equal(t, PropertyGeneralCategory, pred.Kind)

	pred = classifyPropertyShorthand("Latin")
	require.Equal(t, PropertyScript, pred.Kind)

	pred = classifyPropertyShorthand("Alphabetic")
	require.Equal(t, PropertyBinary, pred.Kind)
}

func TestClassifyPropertyShorthandUnknownIsOther(t *testing.T) {
	pred := classifyPropertyShorthand("TotallyMadeUp")
	require.Equal(t, PropertyOther, pred.Kind)
	require.Equal(t, "TotallyMadeUp", pred.RawValue)
}

func TestClassifyPosixClass(t *testing.T) {
	pred := classifyPosixClass("Alpha")
	require.Equal(t, PropertyPosix, pred.Kind)
	require.Equal(t, "alpha", pred.Value)

	pred = classifyPosixClass("nope")
	require.Equal(t, PropertyOther, pred.Kind)
}
