package rxsyntax

import "strings"

// This file holds the dialect-aware lexical routines the parser calls
// directly off the cursor (spec.md §4.3, §4.6): escape/scalar dispatch,
// character-property bodies, quotes, and comments. Unlike tokenlexer.go's
// single coarse pass, every routine here is invoked at the exact point in
// the grammar where its result is needed, so it can make decisions (how
// many hex digits, which bracket closed a name) the token lexer never has
// to.

// isEscapedBuiltinLetter reports whether b denotes one of the built-in
// escape classes that become an OpEscapedBuiltin atom verbatim.
func isEscapedBuiltinLetter(b byte) bool {
	switch b {
	case 'd', 'D', 'w', 'W', 's', 'S', 'b', 'B', 'A', 'Z', 'z', 'G':
		return true
	default:
		return false
	}
}

func isSpaceRune(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}

func hexDigitValue(b byte) (int, bool) {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0'), true
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10, true
	default:
		return 0, false
	}
}

func octalDigitValue(b byte) (int, bool) {
	if b >= '0' && b <= '7' {
		return int(b - '0'), true
	}
	return 0, false
}

// lexHexRun reads at most max (max<0 meaning unlimited) hex digits,
// returning the accumulated value and how many digits were consumed. min is
// not enforced here; callers check the returned count.
func lexHexRun(c *cursor, min, max int) (rune, int) {
	var v rune
	n := 0
	for max < 0 || n < max {
		d, ok := hexDigitValue(c.peekByte())
		if !ok {
			break
		}
		c.eat()
		v = v*16 + rune(d)
		n++
	}
	_ = min
	return v, n
}

func lexOctalRun(c *cursor, min, max int) (rune, int) {
	var v rune
	n := 0
	for max < 0 || n < max {
		d, ok := octalDigitValue(c.peekByte())
		if !ok {
			break
		}
		c.eat()
		v = v*8 + rune(d)
		n++
	}
	_ = min
	return v, n
}

func lexASCIIChar(c *cursor) rune {
	start := c.checkpoint()
	r := c.eat()
	if r > 0x7F {
		fail(ErrExpectedASCII, Position{Begin: start, End: c.checkpoint()}, "expected an ASCII character, found %q", r)
	}
	return r
}

func validateScalar(v rune, pos Position) rune {
	if v < 0 || v > 0x10FFFF || (v >= 0xD800 && v <= 0xDFFF) {
		fail(ErrInvalidScalar, pos, "invalid scalar value U+%04X", v)
	}
	return v
}

func scalarExpr(v rune, start, end int) Expr {
	validateScalar(v, Position{Begin: start, End: end})
	return Expr{Op: OpUnicodeScalar, Scalar: v, Pos: Position{Begin: start, End: end}}
}

// lexUntil reads up to (and consuming) closeCh, failing at end of input.
func lexUntil(c *cursor, closeCh byte) string {
	start := c.checkpoint()
	for {
		if c.isEmpty() {
			fail(ErrUnexpectedEndOfInput, Position{Begin: start, End: c.checkpoint()}, "unterminated group specifier")
		}
		if c.peekByte() == closeCh {
			break
		}
		c.eat()
	}
	name := c.input[start:c.checkpoint()]
	c.eatByte()
	return name
}

// --- Unicode scalar forms (spec.md §4.3) ---

func lexUnicodeScalarU(c *cursor, start int) Expr {
	c.eat() // 'u'
	if c.tryEat('{') {
		v, n := lexHexRun(c, 1, 8)
		if n == 0 {
			fail(ErrExpectedNumDigits, Position{Begin: start, End: c.checkpoint()}, `expected 1-8 hex digits in "\u{...}"`)
		}
		if !c.tryEat('}') {
			fail(ErrExpected, Position{Begin: start, End: c.checkpoint()}, "expected '}'")
		}
		return scalarExpr(v, start, c.checkpoint())
	}
	v, n := lexHexRun(c, 4, 4)
	if n != 4 {
		fail(ErrExpectedNumDigits, Position{Begin: start, End: c.checkpoint()}, `expected 4 hex digits after "\u"`)
	}
	return scalarExpr(v, start, c.checkpoint())
}

func lexHexScalarX(c *cursor, start int) Expr {
	c.eat() // 'x'
	if c.tryEat('{') {
		v, n := lexHexRun(c, 1, 8)
		if n == 0 {
			fail(ErrExpectedNumDigits, Position{Begin: start, End: c.checkpoint()}, `expected 1-8 hex digits in "\x{...}"`)
		}
		if !c.tryEat('}') {
			fail(ErrExpected, Position{Begin: start, End: c.checkpoint()}, "expected '}'")
		}
		return scalarExpr(v, start, c.checkpoint())
	}
	v, _ := lexHexRun(c, 0, 2)
	return scalarExpr(v, start, c.checkpoint())
}

func lexUnicodeScalarUUpper(c *cursor, start int) Expr {
	c.eat() // 'U'
	v, n := lexHexRun(c, 8, 8)
	if n != 8 {
		fail(ErrExpectedNumDigits, Position{Begin: start, End: c.checkpoint()}, `expected 8 hex digits after "\U"`)
	}
	return scalarExpr(v, start, c.checkpoint())
}

func lexOctalScalarO(c *cursor, start int) Expr {
	c.eat() // 'o'
	if !c.tryEat('{') {
		fail(ErrExpected, Position{Begin: start, End: c.checkpoint()}, `expected '{' after "\o"`)
	}
	v, n := lexOctalRun(c, 1, -1)
	if n == 0 {
		fail(ErrExpectedNumDigits, Position{Begin: start, End: c.checkpoint()}, `expected one or more octal digits in "\o{...}"`)
	}
	if !c.tryEat('}') {
		fail(ErrExpected, Position{Begin: start, End: c.checkpoint()}, "expected '}'")
	}
	return scalarExpr(v, start, c.checkpoint())
}

func lexNamedOrScalarN(c *cursor, start int) Expr {
	c.eat() // 'N'
	if !c.tryEat('{') {
		fail(ErrExpected, Position{Begin: start, End: c.checkpoint()}, `expected '{' after "\N"`)
	}
	if c.tryEatSeq("U+") {
		v, n := lexHexRun(c, 1, 8)
		if n == 0 {
			fail(ErrExpectedNumDigits, Position{Begin: start, End: c.checkpoint()}, `expected 1-8 hex digits in "\N{U+...}"`)
		}
		if !c.tryEat('}') {
			fail(ErrExpected, Position{Begin: start, End: c.checkpoint()}, "expected '}'")
		}
		return scalarExpr(v, start, c.checkpoint())
	}
	name := lexUntil(c, '}')
	if name == "" {
		fail(ErrExpectedNonEmptyContents, Position{Begin: start, End: c.checkpoint()}, `expected a name in "\N{...}"`)
	}
	return Expr{Op: OpNamedCharacter, Value: name, Pos: Position{Begin: start, End: c.checkpoint()}}
}

func lexCharacterProperty(c *cursor, start int, negated bool) Expr {
	c.eat() // 'p' or 'P'
	if !c.tryEat('{') {
		fail(ErrExpected, Position{Begin: start, End: c.checkpoint()}, `expected '{' after "\p"/"\P"`)
	}
	body := lexUntil(c, '}')
	pred := classifyPropertyBody(body)
	return Expr{
		Op:       OpCharacterProperty,
		Negated:  negated,
		Property: pred,
		Pos:      Position{Begin: start, End: c.checkpoint()},
	}
}

func classifyPropertyBody(body string) PropertyPredicate {
	if i := strings.IndexByte(body, '='); i >= 0 {
		return classifyPropertyKeyed(strings.TrimSpace(body[:i]), strings.TrimSpace(body[i+1:]))
	}
	return classifyPropertyShorthand(strings.TrimSpace(body))
}

// --- Keyboard escapes (spec.md §4.3) ---

func lexKeyboardControlC(c *cursor, start int) Expr {
	c.eat() // 'c'
	x := lexASCIIChar(c)
	return Expr{Op: OpKeyboardControl, Value: string(x), Pos: Position{Begin: start, End: c.checkpoint()}}
}

func lexKeyboardControlCDash(c *cursor, start int) Expr {
	c.eat() // 'C'
	if !c.tryEat('-') {
		fail(ErrExpected, Position{Begin: start, End: c.checkpoint()}, `expected '-' after "\C"`)
	}
	x := lexASCIIChar(c)
	return Expr{Op: OpKeyboardControl, Value: string(x), Pos: Position{Begin: start, End: c.checkpoint()}}
}

func lexKeyboardMeta(c *cursor, start int) Expr {
	c.eat() // 'M'
	if !c.tryEat('-') {
		fail(ErrExpected, Position{Begin: start, End: c.checkpoint()}, `expected '-' after "\M"`)
	}
	if c.tryEatSeq(`\C-`) {
		x := lexASCIIChar(c)
		return Expr{Op: OpKeyboardMetaControl, Value: string(x), Pos: Position{Begin: start, End: c.checkpoint()}}
	}
	x := lexASCIIChar(c)
	return Expr{Op: OpKeyboardMeta, Value: string(x), Pos: Position{Begin: start, End: c.checkpoint()}}
}

// lexBackslashAtom dispatches a top-level (outside-class) escape sequence.
// The cursor sits at the '\' on entry.
func lexBackslashAtom(c *cursor, opts SyntaxOptions, priorGroupCount int) Expr {
	start := c.checkpoint()
	c.eat() // '\'
	if c.isEmpty() {
		fail(ErrUnexpectedEndOfInput, Position{Begin: start, End: c.checkpoint()}, "expected escape sequence, found end of pattern")
	}
	ch, _ := c.peek()
	switch {
	case ch == 'u':
		return lexUnicodeScalarU(c, start)
	case ch == 'x':
		return lexHexScalarX(c, start)
	case ch == 'U':
		return lexUnicodeScalarUUpper(c, start)
	case ch == 'o':
		return lexOctalScalarO(c, start)
	case ch == 'N':
		return lexNamedOrScalarN(c, start)
	case ch == 'p' || ch == 'P':
		return lexCharacterProperty(c, start, ch == 'P')
	case ch == 'c':
		return lexKeyboardControlC(c, start)
	case ch == 'C':
		return lexKeyboardControlCDash(c, start)
	case ch == 'M':
		return lexKeyboardMeta(c, start)
	case ch == 'g':
		return lexReferenceG(c, start)
	case ch == 'k':
		return lexReferenceK(c, start)
	case isDigitByte(byte(ch)):
		return lexOctalOrBackref(c, start, priorGroupCount)
	case isEscapedBuiltinLetter(byte(ch)):
		c.eat()
		return Expr{Op: OpEscapedBuiltin, Value: string(ch), Pos: Position{Begin: start, End: c.checkpoint()}}
	default:
		c.eat()
		return Expr{Op: OpLiteralChar, Value: string(ch), Pos: Position{Begin: start, End: c.checkpoint()}}
	}
}

// lexBackslashClassAtom dispatches an escape sequence inside a custom
// character class: a strict subset of lexBackslashAtom that excludes
// backreferences, subpattern calls, and keyboard escapes. Anchor escapes
// are not excluded: \b, \B, \A, \Z, \z and \G are accepted here as
// OpEscapedBuiltin members, like the other built-in escape letters.
func lexBackslashClassAtom(c *cursor) Expr {
	start := c.checkpoint()
	c.eat() // '\'
	if c.isEmpty() {
		fail(ErrUnexpectedEndOfInput, Position{Begin: start, End: c.checkpoint()}, "expected escape sequence, found end of pattern")
	}
	ch, _ := c.peek()
	switch {
	case ch == 'u':
		return lexUnicodeScalarU(c, start)
	case ch == 'x':
		return lexHexScalarX(c, start)
	case ch == 'U':
		return lexUnicodeScalarUUpper(c, start)
	case ch == 'o':
		return lexOctalScalarO(c, start)
	case ch == 'N':
		return lexNamedOrScalarN(c, start)
	case ch == 'p' || ch == 'P':
		return lexCharacterProperty(c, start, ch == 'P')
	case isDigitByte(byte(ch)):
		v, _ := lexOctalRun(c, 1, 3)
		return scalarExpr(v, start, c.checkpoint())
	case isEscapedBuiltinLetter(byte(ch)):
		c.eat()
		return Expr{Op: OpEscapedBuiltin, Value: string(ch), Pos: Position{Begin: start, End: c.checkpoint()}}
	default:
		c.eat()
		return Expr{Op: OpLiteralChar, Value: string(ch), Pos: Position{Begin: start, End: c.checkpoint()}}
	}
}
