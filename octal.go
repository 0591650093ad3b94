package rxsyntax

import "strconv"

// lexOctalOrBackref resolves the `\` + digits ambiguity per spec.md §4.4.
// The cursor sits right after the backslash on entry; priorGroupCount is
// the number of capturing groups opened so far in the enclosing parse.
func lexOctalOrBackref(c *cursor, start int, priorGroupCount int) Expr {
	d0 := c.peekByte()

	if d0 == '0' {
		v, _ := lexOctalRun(c, 1, 3)
		return scalarExpr(v, start, c.checkpoint())
	}

	digitsStart := c.checkpoint()
	for isDigitByte(c.peekByte()) {
		c.eat()
	}
	decText := c.input[digitsStart:c.checkpoint()]
	n, err := strconv.Atoi(decText)
	if err != nil {
		fail(ErrNumberOverflow, Position{Begin: start, End: c.checkpoint()}, "reference number %q overflows", decText)
	}

	isBackref := (n >= 1 && n <= 9) || d0 == '8' || d0 == '9' || n <= priorGroupCount
	if isBackref {
		return Expr{
			Op:  OpBackreference,
			Ref: Reference{Kind: RefAbsolute, Number: n},
			Pos: Position{Begin: start, End: c.checkpoint()},
		}
	}

	// Re-interpret as octal: rewind to right after the backslash and retake
	// up to 3 octal digits from d0 (lexOctalRun naturally stops at the first
	// non-octal digit, so "\18" becomes U+0001 followed by a literal '8').
	c.restore(digitsStart)
	v, _ := lexOctalRun(c, 1, 3)
	return scalarExpr(v, start, c.checkpoint())
}
