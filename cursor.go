package rxsyntax

import "unicode/utf8"

// cursor is a positioned rune stream over the pattern text, with
// transactional checkpointing. It holds no I/O; it is pure data plus
// deterministic operations (spec.md §4.1). It generalizes the index-walking
// style of quasilyte-regex/syntax/lexer.go's Init loop (the `i`, `size`
// pair fed through utf8.DecodeRuneInString) into a reusable type, since both
// the lexical analyzer and the parser need to rewind speculative lookahead
// directly on the stream.
type cursor struct {
	input string
	pos   int
}

func newCursor(input string) *cursor {
	return &cursor{input: input}
}

func (c *cursor) isEmpty() bool { return c.pos >= len(c.input) }

func (c *cursor) checkpoint() int { return c.pos }

func (c *cursor) restore(mark int) { c.pos = mark }

// peek returns the rune at the current position without consuming it, or
// (0, false) at end of input.
func (c *cursor) peek() (rune, bool) {
	if c.isEmpty() {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.input[c.pos:])
	return r, true
}

// peekAt returns the rune n positions ahead of the current one, or
// (0, false) if that position doesn't exist.
func (c *cursor) peekAt(n int) (rune, bool) {
	i := c.pos
	for ; n > 0 && i < len(c.input); n-- {
		_, size := utf8.DecodeRuneInString(c.input[i:])
		i += size
	}
	if n > 0 || i >= len(c.input) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.input[i:])
	return r, true
}

func (c *cursor) startsWith(s string) bool {
	return len(c.input)-c.pos >= len(s) && c.input[c.pos:c.pos+len(s)] == s
}

// eat consumes and returns the next rune, asserting the stream is non-empty.
func (c *cursor) eat() rune {
	r, ok := c.peek()
	if !ok {
		fail(ErrUnexpectedEndOfInput, Position{Begin: c.pos, End: c.pos}, "unexpected end of pattern")
	}
	_, size := utf8.DecodeRuneInString(c.input[c.pos:])
	c.pos += size
	return r
}

// eatByte consumes and returns the next byte, asserting the stream is non-empty.
// Used by ASCII-only lexical routines (escapes, digit runs) that never need
// to decode multi-byte runes.
func (c *cursor) eatByte() byte {
	if c.isEmpty() {
		fail(ErrUnexpectedEndOfInput, Position{Begin: c.pos, End: c.pos}, "unexpected end of pattern")
	}
	b := c.input[c.pos]
	c.pos++
	return b
}

func (c *cursor) byteAt(offset int) byte {
	i := c.pos + offset
	if i < 0 || i >= len(c.input) {
		return 0
	}
	return c.input[i]
}

func (c *cursor) peekByte() byte { return c.byteAt(0) }

// tryEat consumes ch and reports success, leaving the cursor untouched on failure.
func (c *cursor) tryEat(ch rune) bool {
	r, ok := c.peek()
	if !ok || r != ch {
		return false
	}
	c.eat()
	return true
}

// tryEatSeq consumes s and reports success, leaving the cursor untouched on failure.
func (c *cursor) tryEatSeq(s string) bool {
	if !c.startsWith(s) {
		return false
	}
	c.pos += len(s)
	return true
}

// eatWhile consumes runes while pred holds and returns how many were consumed.
func (c *cursor) eatWhile(pred func(rune) bool) int {
	n := 0
	for {
		r, ok := c.peek()
		if !ok || !pred(r) {
			return n
		}
		c.eat()
		n++
	}
}

// eatUpTo consumes at most max runes while pred holds.
func (c *cursor) eatUpTo(max int, pred func(rune) bool) int {
	n := 0
	for n < max {
		r, ok := c.peek()
		if !ok || !pred(r) {
			return n
		}
		c.eat()
		n++
	}
	return n
}

// tryEating runs fn with transactional semantics: on a nil return value the
// cursor is restored to its pre-call position; on a thrown ParseError it is
// left where the failure occurred (spec.md §4.1). fn returns (value, ok).
func tryEating[T any](c *cursor, fn func() (T, bool)) (T, bool) {
	mark := c.checkpoint()
	v, ok := fn()
	if !ok {
		c.restore(mark)
	}
	return v, ok
}

// recordLoc snapshots the start position, runs fn, and wraps its result in a
// Located spanning [start, current).
func recordLoc[T any](c *cursor, fn func() T) Located[T] {
	start := c.checkpoint()
	v := fn()
	return locate(v, Position{Begin: start, End: c.checkpoint()})
}
