package rxsyntax

// lexQuantifier attempts to lex a quantifier at the cursor (spec.md §4.5):
// `*`, `+`, `?`, or a `{range}`, followed by an optional laziness suffix.
// It reports ok=false, with the cursor untouched, when none is present.
func lexQuantifier(c *cursor, opts SyntaxOptions) (Amount, QuantKind, bool) {
	var amt Amount
	switch {
	case c.tryEat('*'):
		amt = Amount{Kind: AmountZeroOrMore}
	case c.tryEat('+'):
		amt = Amount{Kind: AmountOneOrMore}
	case c.tryEat('?'):
		amt = Amount{Kind: AmountZeroOrOne}
	case c.peekByte() == '{':
		a, ok := tryEating(c, func() (Amount, bool) { return lexRepeatRange(c, opts) })
		if !ok {
			return Amount{}, QuantEager, false
		}
		amt = a
	default:
		return Amount{}, QuantEager, false
	}

	kind := QuantEager
	switch {
	case c.tryEat('?'):
		kind = QuantReluctant
	case c.tryEat('+'):
		kind = QuantPossessive
	}
	return amt, kind, true
}

// lexRepeatRange lexes the body of a `{...}` quantifier, assuming the
// cursor is positioned at the opening `{`. It returns ok=false (restored by
// the caller's tryEating) for anything that isn't a well-formed range,
// which is how "a{3, 5}" ends up parsed as literal characters: the space
// after the comma isn't a digit, so lexUintDigits fails, the trailing '}'
// expectation fails, and the whole attempt unwinds.
func lexRepeatRange(c *cursor, opts SyntaxOptions) (Amount, bool) {
	if !c.tryEat('{') {
		return Amount{}, false
	}

	minVal, hasMin := lexUintDigits(c)

	if opts.has(ExperimentalRanges) {
		switch {
		case c.tryEatSeq("..<"):
			maxVal, hasMax := lexUintDigits(c)
			if !hasMax || !c.tryEat('}') {
				return Amount{}, false
			}
			maxVal--
			if hasMin {
				return Amount{Kind: AmountRange, Min: minVal, Max: maxVal}, true
			}
			return Amount{Kind: AmountUpToN, Max: maxVal}, true
		case c.tryEatSeq("..."):
			maxVal, hasMax := lexUintDigits(c)
			if !hasMax || !c.tryEat('}') {
				return Amount{}, false
			}
			if hasMin {
				return Amount{Kind: AmountRange, Min: minVal, Max: maxVal}, true
			}
			return Amount{Kind: AmountUpToN, Max: maxVal}, true
		}
	}

	switch {
	case c.tryEat('}'):
		if !hasMin {
			return Amount{}, false
		}
		return Amount{Kind: AmountExactly, Min: minVal}, true
	case c.tryEat(','):
		maxVal, hasMax := lexUintDigits(c)
		if !c.tryEat('}') {
			return Amount{}, false
		}
		switch {
		case hasMin && hasMax:
			return Amount{Kind: AmountRange, Min: minVal, Max: maxVal}, true
		case hasMin:
			return Amount{Kind: AmountNOrMore, Min: minVal}, true
		case hasMax:
			return Amount{Kind: AmountUpToN, Max: maxVal}, true
		default:
			return Amount{}, false
		}
	default:
		return Amount{}, false
	}
}

func lexUintDigits(c *cursor) (int, bool) {
	start := c.checkpoint()
	n := 0
	for isDigitByte(c.peekByte()) {
		n = n*10 + int(c.eatByte()-'0')
	}
	return n, c.checkpoint() != start
}
