package rxsyntax

import "strconv"

// This file lexes the escaped reference forms of spec.md §4.3: `\gN`,
// `\g{...}`, `\g<...>`, `\g'...'` (subpattern calls when bracketed by angle
// or quote, decimal backreferences otherwise — the Oniguruma/Perl split
// this package follows, recorded in DESIGN.md) and `\k<...>`, `\k'...'`,
// `\k{...}` (always backreferences, named or numbered).

func lexReferenceG(c *cursor, start int) Expr {
	c.eat() // 'g'
	switch {
	case c.tryEat('<'):
		return lexBracketedReference(c, start, '>', OpSubpattern)
	case c.tryEat('\''):
		return lexBracketedReference(c, start, '\'', OpSubpattern)
	case c.tryEat('{'):
		return lexBracketedReference(c, start, '}', OpBackreference)
	default:
		return lexBareNumericReference(c, start, OpBackreference)
	}
}

func lexReferenceK(c *cursor, start int) Expr {
	c.eat() // 'k'
	switch {
	case c.tryEat('<'):
		return lexBracketedReference(c, start, '>', OpBackreference)
	case c.tryEat('\''):
		return lexBracketedReference(c, start, '\'', OpBackreference)
	case c.tryEat('{'):
		return lexBracketedReference(c, start, '}', OpBackreference)
	default:
		fail(ErrExpected, Position{Begin: start, End: c.checkpoint()}, `expected '<', '\'' or '{' after "\k"`)
		panic("unreachable")
	}
}

func lexBracketedReference(c *cursor, start int, closeCh byte, op Op) Expr {
	body := lexUntil(c, closeCh)
	ref := parseReferenceBody(body, Position{Begin: start, End: c.checkpoint()})
	return Expr{Op: op, Ref: ref, Pos: Position{Begin: start, End: c.checkpoint()}}
}

func lexBareNumericReference(c *cursor, start int, op Op) Expr {
	relative := false
	sign := 1
	switch {
	case c.tryEat('-'):
		relative = true
		sign = -1
	case c.tryEat('+'):
		relative = true
	}
	digitsStart := c.checkpoint()
	for isDigitByte(c.peekByte()) {
		c.eat()
	}
	if c.checkpoint() == digitsStart {
		fail(ErrExpectedNumber, Position{Begin: start, End: c.checkpoint()}, "expected a reference number")
	}
	n, err := strconv.Atoi(c.input[digitsStart:c.checkpoint()])
	if err != nil {
		fail(ErrNumberOverflow, Position{Begin: start, End: c.checkpoint()}, "reference number overflows")
	}
	ref := Reference{Kind: RefAbsolute, Number: n * sign}
	if relative {
		ref.Kind = RefRelative
	}
	return Expr{Op: op, Ref: ref, Pos: Position{Begin: start, End: c.checkpoint()}}
}

// parseReferenceBody classifies the content of a bracketed reference as a
// signed/unsigned number or a name.
func parseReferenceBody(body string, pos Position) Reference {
	if body == "" {
		fail(ErrExpectedNonEmptyContents, pos, "expected a non-empty reference specifier")
	}
	d0 := body[0]
	if d0 == '+' || d0 == '-' || (d0 >= '0' && d0 <= '9') {
		sign := 1
		text := body
		relative := false
		if d0 == '+' || d0 == '-' {
			relative = true
			if d0 == '-' {
				sign = -1
			}
			text = body[1:]
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			fail(ErrExpectedNumber, pos, "expected a reference number, found %q", body)
		}
		if relative {
			return Reference{Kind: RefRelative, Number: n * sign}
		}
		return Reference{Kind: RefAbsolute, Number: n}
	}
	return Reference{Kind: RefNamed, Name: body}
}
