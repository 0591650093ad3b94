package rxsyntax

import "strconv"

// groupIntro is what classifyGroupIntro figures out about a `(...` prefix
// before the parser decides whether to recurse into a body. Exactly one of
// three outcomes holds: referenceAtom is a fully-lexed, self-contained atom
// (the `)` closing it has already been consumed); isolatedOptions marks a
// `(?flags)` group with no body of its own (its scope is the remainder of
// the enclosing alternative, assembled by the parser); otherwise kind/name/
// options describe an ordinary bracketed group awaiting Alternation + ')'.
type groupIntro struct {
	kind      GroupKind
	name      string
	namedForm NamedCaptureForm
	options   MatchingOptionsSeq

	isolatedOptions bool
	referenceAtom   *Expr
}

var longFormSentinels = []struct {
	text string
	kind GroupKind
}{
	{"non_atomic_positive_lookahead:", GroupNonAtomicLookahead},
	{"non_atomic_positive_lookbehind:", GroupNonAtomicLookbehind},
	{"positive_lookahead:", GroupLookahead},
	{"negative_lookahead:", GroupNegativeLookahead},
	{"positive_lookbehind:", GroupLookbehind},
	{"negative_lookbehind:", GroupNegativeLookbehind},
	{"atomic_script_run:", GroupAtomicScriptRun},
	{"script_run:", GroupScriptRun},
	{"atomic:", GroupAtomicNonCapturing},
	{"napla:", GroupNonAtomicLookahead},
	{"naplb:", GroupNonAtomicLookbehind},
	{"pla:", GroupLookahead},
	{"nla:", GroupNegativeLookahead},
	{"plb:", GroupLookbehind},
	{"nlb:", GroupNegativeLookbehind},
	{"asr:", GroupAtomicScriptRun},
	{"sr:", GroupScriptRun},
}

// classifyGroupIntro consumes a group-start prefix (spec.md §4.5). The
// cursor must sit right after the leading '(' on entry; start is that '('s
// position, used only to anchor error/atom ranges.
func classifyGroupIntro(c *cursor, opts SyntaxOptions, start int) groupIntro {
	if opts.has(ExperimentalCaptures) && c.startsWith("_:") {
		c.pos += len("_:")
		return groupIntro{kind: GroupNonCapture}
	}

	if c.tryEat('*') {
		return classifyLongFormSentinel(c, start)
	}

	if !c.tryEat('?') {
		return groupIntro{kind: GroupCapture}
	}

	switch {
	case c.tryEat(':'):
		return groupIntro{kind: GroupNonCapture}
	case c.tryEat('|'):
		return groupIntro{kind: GroupNonCaptureReset}
	case c.tryEat('>'):
		return groupIntro{kind: GroupAtomicNonCapturing}
	case c.tryEat('='):
		return groupIntro{kind: GroupLookahead}
	case c.tryEat('!'):
		return groupIntro{kind: GroupNegativeLookahead}
	case c.tryEat('*'):
		return groupIntro{kind: GroupNonAtomicLookahead}
	case c.peekByte() == '<':
		return classifyAngleIntro(c, start)
	case c.peekByte() == 'P':
		return classifyPIntro(c, start)
	case c.peekByte() == '\'':
		c.eat()
		name := lexUntil(c, '\'')
		return groupIntro{kind: GroupNamedCapture, name: name, namedForm: NamedCaptureFormQuote}
	case c.peekByte() == '&':
		c.eat()
		name := lexUntil(c, ')')
		e := Expr{Op: OpSubpattern, Ref: Reference{Kind: RefNamed, Name: name}, Pos: Position{Begin: start, End: c.checkpoint()}}
		return groupIntro{referenceAtom: &e}
	case c.peekByte() == 'R':
		c.eat()
		if !c.tryEat(')') {
			fail(ErrExpected, Position{Begin: start, End: c.checkpoint()}, "expected ')' after \"(?R\"")
		}
		e := Expr{Op: OpSubpattern, Ref: Reference{Kind: RefRecurseWholePattern}, Pos: Position{Begin: start, End: c.checkpoint()}}
		return groupIntro{referenceAtom: &e}
	case c.peekByte() == '+' || c.peekByte() == '-':
		// A leading sign only commits to a relative subpattern call once a
		// digit run actually follows it; "(?-i:...)" has no digits and must
		// fall back to matching-options parsing (spec.md's group-like-
		// reference check precedes flag parsing but does not preempt it).
		if gi, ok := classifyRelativeGroupCall(c, start); ok {
			return gi
		}
		return classifyMatchingOptionsIntro(c, start)
	default:
		return classifyMatchingOptionsIntro(c, start)
	}
}

func classifyLongFormSentinel(c *cursor, start int) groupIntro {
	for _, f := range longFormSentinels {
		if c.tryEatSeq(f.text) {
			return groupIntro{kind: f.kind}
		}
	}
	fail(ErrUnknownGroupKind, Position{Begin: start, End: c.checkpoint()}, "unrecognized \"(*...)\" group kind")
	panic("unreachable")
}

func classifyAngleIntro(c *cursor, start int) groupIntro {
	c.eat() // '<'
	switch {
	case c.tryEat('='):
		return groupIntro{kind: GroupLookbehind}
	case c.tryEat('!'):
		return groupIntro{kind: GroupNegativeLookbehind}
	case c.tryEat('*'):
		return groupIntro{kind: GroupNonAtomicLookbehind}
	default:
		name := lexUntil(c, '>')
		return groupIntro{kind: GroupNamedCapture, name: name, namedForm: NamedCaptureFormAngle}
	}
}

func classifyPIntro(c *cursor, start int) groupIntro {
	c.eat() // 'P'
	switch {
	case c.tryEat('<'):
		name := lexUntil(c, '>')
		return groupIntro{kind: GroupNamedCapture, name: name, namedForm: NamedCaptureFormP}
	case c.tryEat('='):
		name := lexUntil(c, ')')
		e := Expr{Op: OpBackreference, Ref: Reference{Kind: RefNamed, Name: name}, Pos: Position{Begin: start, End: c.checkpoint()}}
		return groupIntro{referenceAtom: &e}
	case c.tryEat('>'):
		name := lexUntil(c, ')')
		e := Expr{Op: OpSubpattern, Ref: Reference{Kind: RefNamed, Name: name}, Pos: Position{Begin: start, End: c.checkpoint()}}
		return groupIntro{referenceAtom: &e}
	default:
		fail(ErrExpectedGroupSpecifier, Position{Begin: start, End: c.checkpoint()}, "expected '<', '=' or '>' after \"(?P\"")
		panic("unreachable")
	}
}

// classifyRelativeGroupCall consumes "(?+N)"/"(?-N)" subpattern-call forms.
// It reports ok=false, restoring the cursor to right after "(?" (via
// tryEating), when no digit run follows the sign: that shape belongs to
// classifyMatchingOptionsIntro instead ("(?-i:...)" removes a flag, it does
// not call group -i). Once a digit is found the form is unambiguous, so a
// missing closing ')' past that point is a real error, not a fallback.
func classifyRelativeGroupCall(c *cursor, start int) (groupIntro, bool) {
	type signedDigits struct {
		sign int
		text string
	}
	sd, ok := tryEating(c, func() (signedDigits, bool) {
		sign := 1
		switch {
		case c.tryEat('-'):
			sign = -1
		case c.tryEat('+'):
		default:
			return signedDigits{}, false
		}
		digitsStart := c.checkpoint()
		for isDigitByte(c.peekByte()) {
			c.eat()
		}
		if c.checkpoint() == digitsStart {
			return signedDigits{}, false
		}
		return signedDigits{sign: sign, text: c.input[digitsStart:c.checkpoint()]}, true
	})
	if !ok {
		return groupIntro{}, false
	}
	n, err := strconv.Atoi(sd.text)
	if err != nil {
		fail(ErrNumberOverflow, Position{Begin: start, End: c.checkpoint()}, "relative group number %q overflows", sd.text)
	}
	if !c.tryEat(')') {
		fail(ErrExpected, Position{Begin: start, End: c.checkpoint()}, "expected ')'")
	}
	e := Expr{
		Op:  OpSubpattern,
		Ref: Reference{Kind: RefRelative, Number: n * sd.sign},
		Pos: Position{Begin: start, End: c.checkpoint()},
	}
	return groupIntro{referenceAtom: &e}, true
}

func classifyMatchingOptionsIntro(c *cursor, start int) groupIntro {
	seq := lexMatchingOptionsSeq(c, start)
	switch {
	case c.tryEat(':'):
		return groupIntro{kind: GroupMatchingOptionsScoped, options: seq}
	case c.peekByte() == ')':
		return groupIntro{isolatedOptions: true, options: seq}
	default:
		fail(ErrExpected, Position{Begin: start, End: c.checkpoint()}, "expected ':' or ')' after matching options")
		panic("unreachable")
	}
}

func lexMatchingOptionsSeq(c *cursor, start int) MatchingOptionsSeq {
	var seq MatchingOptionsSeq
	if c.tryEat('^') {
		seq.Caret = true
	}
	seq.Add = lexMatchingOptionList(c)
	if c.tryEat('-') {
		if seq.Caret {
			fail(ErrCannotRemoveMatchingOptionsAfterCaret, Position{Begin: start, End: c.checkpoint()}, "cannot remove matching options after '^'")
		}
		seq.Remove = lexMatchingOptionList(c)
		for _, o := range seq.Remove {
			if o.TextSegment {
				fail(ErrCannotRemoveTextSegmentOptions, Position{Begin: start, End: c.checkpoint()}, "cannot remove text-segment options")
			}
		}
	}
	return seq
}

func lexMatchingOptionList(c *cursor) []matchingOptionSpec {
	var list []matchingOptionSpec
	for {
		b := c.peekByte()
		switch {
		case b == ':' || b == ')' || b == '-' || b == 0:
			return list
		case b == 'x':
			c.eat()
			if c.tryEat('x') {
				list = append(list, matchingOptionSpec{Opt: OptExtraExtended})
			} else {
				list = append(list, matchingOptionSpec{Opt: OptExtended})
			}
		case b == 'y':
			start := c.checkpoint()
			c.eat()
			if !c.tryEat('{') {
				fail(ErrExpected, Position{Begin: start, End: c.checkpoint()}, "expected '{' after 'y'")
			}
			switch {
			case c.tryEatSeq("g}"):
				list = append(list, matchingOptionSpec{Opt: OptTextSegmentGrapheme, TextSegment: true})
			case c.tryEatSeq("w}"):
				list = append(list, matchingOptionSpec{Opt: OptTextSegmentWord, TextSegment: true})
			default:
				fail(ErrInvalidMatchingOption, Position{Begin: start, End: c.checkpoint()}, "expected 'g' or 'w' in \"y{...}\"")
			}
		case isKnownMatchingOptionLetter(b):
			c.eat()
			list = append(list, matchingOptionSpec{Opt: MatchingOption(b)})
		default:
			pos := Position{Begin: c.checkpoint(), End: c.checkpoint() + 1}
			fail(ErrInvalidMatchingOption, pos, "invalid matching option %q", rune(b))
		}
	}
}

func isKnownMatchingOptionLetter(b byte) bool {
	switch MatchingOption(b) {
	case OptCaseInsensitive, OptDupNames, OptMultiline, OptNamedCapturesOnly,
		OptSingleLine, OptReluctantByDefault, OptUnicodeWordBoundary,
		OptASCIIOnlyDigit, OptASCIIOnlyPOSIXProps, OptASCIIOnlySpace, OptASCIIOnlyWord:
		return true
	default:
		return false
	}
}
