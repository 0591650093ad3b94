package rxsyntax

// SyntaxOptions are orthogonal dialect flags threaded through the parser
// state rather than held in package globals (spec.md §9 "Dialect
// branching"). The zero value is `Traditional`.
type SyntaxOptions uint16

const (
	// Traditional is the default: every extension below is off.
	Traditional SyntaxOptions = 0

	ExperimentalQuotes SyntaxOptions = 1 << iota
	ExperimentalComments
	ExperimentalRanges
	ExperimentalCaptures
	NonSemanticWhitespace
)

// IgnoreWhitespace is an alias spec.md §6 lists alongside NonSemanticWhitespace.
const IgnoreWhitespace = NonSemanticWhitespace

func (o SyntaxOptions) has(flag SyntaxOptions) bool { return o&flag != 0 }

// MatchingOption is a single matching-option letter recognized inside
// `(?flags...)` groups (spec.md §4.7): `i J m n s U x w D P S W`, plus the
// two `y{g}`/`y{w}` text-segment-mode selectors. `y{w}` reuses the letter
// 'w', so matchingOptionSpec.TextSegment tells the two apart.
type MatchingOption byte

const (
	OptCaseInsensitive     MatchingOption = 'i'
	OptDupNames            MatchingOption = 'J'
	OptMultiline           MatchingOption = 'm'
	OptNamedCapturesOnly   MatchingOption = 'n'
	OptSingleLine          MatchingOption = 's' // dot matches newline
	OptReluctantByDefault  MatchingOption = 'U' // swap default quantifier greediness
	OptExtended            MatchingOption = 'x'
	OptExtraExtended       MatchingOption = 'X' // written as doubled "xx" in source
	OptUnicodeWordBoundary MatchingOption = 'w'
	OptASCIIOnlyDigit      MatchingOption = 'D'
	OptASCIIOnlyPOSIXProps MatchingOption = 'P'
	OptASCIIOnlySpace      MatchingOption = 'S'
	OptASCIIOnlyWord       MatchingOption = 'W'
	OptTextSegmentGrapheme MatchingOption = 'g' // y{g}
	OptTextSegmentWord     MatchingOption = 'w' // y{w}; TextSegment distinguishes this from OptUnicodeWordBoundary
)

// isTextSegmentMode marks the two y{...} forms, which cannot appear in a
// `removing` list (spec.md §4.7).
func isTextSegmentMode(spec matchingOptionSpec) bool {
	return spec.TextSegment
}

// MatchingOptionsSeq is the parsed `[^] adding* (- removing*)?` shape
// (spec.md §4.7).
type MatchingOptionsSeq struct {
	// Caret marks a leading `^`: unset all options first, then add.
	// A `^` sequence can never have a `removing` list.
	Caret  bool
	Add    []matchingOptionSpec
	Remove []matchingOptionSpec
}

// matchingOptionSpec pairs an option letter with whether it was written via
// the `y{...}` text-segment-mode syntax, since `y{g}`/`y{w}` and the plain
// letter options occupy disjoint namespaces despite `w` being reused.
type matchingOptionSpec struct {
	Opt         MatchingOption
	TextSegment bool
}
