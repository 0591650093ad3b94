package rxsyntax

import "strings"

// Pattern is the result of a successful parse: the source text alongside
// its fully-resolved AST (spec.md §3).
type Pattern struct {
	Source string
	Expr   Expr
}

// Parser is a single recursive-descent pass over one pattern (spec.md
// §4.7). It is not reused across patterns; NewParser/Parse always start
// fresh over a cursor, mirroring quasilyte-regex/syntax/parser.go's
// Parser.Parse method, which is also the source of this package's
// panic/recover error-propagation idiom (errors.go's recoverParseError).
type Parser struct {
	c               *cursor
	syntax          SyntaxOptions
	priorGroupCount int
	source          string
}

// NewParser builds a Parser configured with the given dialect flags. The
// zero value of SyntaxOptions is Traditional.
func NewParser(syntax SyntaxOptions) *Parser {
	return &Parser{syntax: syntax}
}

// Parse parses pattern under the parser's configured SyntaxOptions,
// returning the first error encountered with no attempt at recovery
// (spec.md §7).
func (p *Parser) Parse(pattern string) (result Pattern, err error) {
	defer recoverParseError(&err)

	p.c = newCursor(pattern)
	p.priorGroupCount = 0
	p.source = pattern

	if pattern == "" {
		return Pattern{Source: pattern, Expr: Expr{Op: OpEmpty}}, nil
	}

	expr := p.parseAlternation()
	if !p.c.isEmpty() {
		fail(ErrExpected, Position{Begin: p.c.checkpoint(), End: p.c.checkpoint()}, "unexpected %q", p.c.peekByte())
	}
	return Pattern{Source: pattern, Expr: expr}, nil
}

// Parse is a package-level convenience wrapping NewParser(syntax).Parse,
// matching spec.md §6's `parse(input, syntax_flags)` entry point.
func Parse(pattern string, syntax SyntaxOptions) (Pattern, error) {
	return NewParser(syntax).Parse(pattern)
}

// --- Alternation / Concatenation / Quantified (spec.md §4.7) ---

func (p *Parser) parseAlternation() Expr {
	start := p.c.checkpoint()
	first := p.parseConcatenation()
	if p.c.peekByte() != '|' {
		return first
	}

	branches := []Expr{first}
	var pipes []Position
	for p.c.peekByte() == '|' {
		pipeStart := p.c.checkpoint()
		p.c.eat()
		pipes = append(pipes, Position{Begin: pipeStart, End: p.c.checkpoint()})
		branches = append(branches, p.parseConcatenation())
	}
	return Expr{
		Op:    OpAlternation,
		Args:  branches,
		Pipes: pipes,
		Pos:   Position{Begin: start, End: p.c.checkpoint()},
	}
}

func (p *Parser) atConcatenationEnd() bool {
	if p.c.isEmpty() {
		return true
	}
	b := p.c.peekByte()
	return b == '|' || b == ')'
}

func (p *Parser) parseConcatenation() Expr {
	start := p.c.checkpoint()
	var items []Expr
	for !p.atConcatenationEnd() {
		items = append(items, p.parseQuantified())
	}
	switch len(items) {
	case 0:
		return Expr{Op: OpEmpty, Pos: Position{Begin: start, End: p.c.checkpoint()}}
	case 1:
		return items[0]
	default:
		return Expr{Op: OpConcatenation, Args: items, Pos: Position{Begin: start, End: p.c.checkpoint()}}
	}
}

func (p *Parser) isQuantifiable(e Expr) bool {
	switch e.Op {
	case OpQuote, OpTrivia, OpChangeMatchingOptions:
		return false
	default:
		return true
	}
}

func (p *Parser) parseQuantified() Expr {
	atom := p.parseAtom()
	if !p.isQuantifiable(atom) {
		if _, _, ok := lexQuantifier(p.c, p.syntax); ok {
			fail(ErrQuantifierWithoutOperand, atom.Pos, "quantifier cannot follow this atom")
		}
		return atom
	}
	amt, kind, ok := lexQuantifier(p.c, p.syntax)
	if !ok {
		return atom
	}
	return Expr{
		Op:        OpQuantification,
		Amount:    amt,
		QuantKind: kind,
		Args:      []Expr{atom},
		Pos:       Position{Begin: atom.Pos.Begin, End: p.c.checkpoint()},
	}
}

// --- Atom (spec.md §4.7) ---

func (p *Parser) parseAtom() Expr {
	if p.syntax.has(NonSemanticWhitespace) && isSpaceRune(runeOrZero(p.c)) {
		start := p.c.checkpoint()
		p.c.eatWhile(isSpaceRune)
		return Expr{Op: OpTrivia, TriviaForm: TriviaFormWhitespace, Value: p.source[start:p.c.checkpoint()], Pos: Position{Begin: start, End: p.c.checkpoint()}}
	}

	ch, ok := p.c.peek()
	if !ok {
		fail(ErrUnexpectedEndOfInput, Position{Begin: p.c.checkpoint(), End: p.c.checkpoint()}, "unexpected end of pattern")
	}

	switch ch {
	case '^':
		return p.parseMetaRune(OpStartOfLine)
	case '$':
		return p.parseMetaRune(OpEndOfLine)
	case '.':
		return p.parseMetaRune(OpAnyCharacter)
	case '(':
		if p.c.startsWith("(?#") {
			return p.parseComment()
		}
		return p.parseGroupOrReferenceAtom()
	case '[':
		return p.parseCustomCharClass()
	case '\\':
		if p.c.byteAt(1) == 'Q' {
			return p.parseBackslashQQuote()
		}
		return lexBackslashAtom(p.c, p.syntax, p.priorGroupCount)
	case '"':
		if p.syntax.has(ExperimentalQuotes) {
			return p.parseExperimentalQuote()
		}
		return p.parseLiteralChar()
	case '/':
		if p.syntax.has(ExperimentalComments) && p.c.byteAt(1) == '*' {
			return p.parseSlashStarComment()
		}
		return p.parseLiteralChar()
	case '*', '+', '?':
		fail(ErrQuantifierWithoutOperand, Position{Begin: p.c.checkpoint(), End: p.c.checkpoint() + 1}, "quantifier has no preceding atom to repeat")
		panic("unreachable")
	default:
		return p.parseLiteralChar()
	}
}

func runeOrZero(c *cursor) rune {
	r, ok := c.peek()
	if !ok {
		return 0
	}
	return r
}

func (p *Parser) parseMetaRune(op Op) Expr {
	start := p.c.checkpoint()
	p.c.eat()
	return Expr{Op: op, Pos: Position{Begin: start, End: p.c.checkpoint()}}
}

func (p *Parser) parseLiteralChar() Expr {
	start := p.c.checkpoint()
	ch := p.c.eat()
	return Expr{Op: OpLiteralChar, Value: string(ch), Pos: Position{Begin: start, End: p.c.checkpoint()}}
}

func (p *Parser) parseBackslashQQuote() Expr {
	start := p.c.checkpoint()
	p.c.pos += len(`\Q`)
	contentStart := p.c.checkpoint()
	idx := strings.Index(p.source[contentStart:], `\E`)
	if idx < 0 {
		p.c.pos = len(p.source)
		return Expr{Op: OpQuote, Value: p.source[contentStart:], QuoteForm: QuoteFormUnclosed, Pos: Position{Begin: start, End: p.c.checkpoint()}}
	}
	content := p.source[contentStart : contentStart+idx]
	p.c.pos = contentStart + idx + len(`\E`)
	return Expr{Op: OpQuote, Value: content, QuoteForm: QuoteFormClosed, Pos: Position{Begin: start, End: p.c.checkpoint()}}
}

func (p *Parser) parseExperimentalQuote() Expr {
	start := p.c.checkpoint()
	p.c.eat() // opening '"'
	var b strings.Builder
	for {
		ch, ok := p.c.peek()
		if !ok {
			return Expr{Op: OpQuote, Value: b.String(), QuoteForm: QuoteFormUnclosed, Pos: Position{Begin: start, End: p.c.checkpoint()}}
		}
		if ch == '\\' && p.c.byteAt(1) == '"' {
			p.c.eat()
			p.c.eat()
			b.WriteByte('"')
			continue
		}
		if ch == '"' {
			p.c.eat()
			return Expr{Op: OpQuote, Value: b.String(), QuoteForm: QuoteFormClosed, Pos: Position{Begin: start, End: p.c.checkpoint()}}
		}
		p.c.eat()
		b.WriteRune(ch)
	}
}

func (p *Parser) parseComment() Expr {
	start := p.c.checkpoint()
	p.c.pos += len("(?#")
	contentStart := p.c.checkpoint()
	for {
		if p.c.isEmpty() {
			return Expr{Op: OpTrivia, TriviaForm: TriviaFormComment, Value: p.source[contentStart:], Pos: Position{Begin: start, End: p.c.checkpoint()}}
		}
		if p.c.peekByte() == '\\' && p.c.pos+1 < len(p.source) {
			p.c.pos += 2
			continue
		}
		if p.c.peekByte() == ')' {
			content := p.source[contentStart:p.c.checkpoint()]
			p.c.eat()
			return Expr{Op: OpTrivia, TriviaForm: TriviaFormComment, Value: content, Pos: Position{Begin: start, End: p.c.checkpoint()}}
		}
		p.c.eat()
	}
}

func (p *Parser) parseSlashStarComment() Expr {
	start := p.c.checkpoint()
	p.c.pos += len("/*")
	contentStart := p.c.checkpoint()
	idx := strings.Index(p.source[contentStart:], "*/")
	if idx < 0 {
		p.c.pos = len(p.source)
		return Expr{Op: OpTrivia, TriviaForm: TriviaFormComment, Value: p.source[contentStart:], Pos: Position{Begin: start, End: p.c.checkpoint()}}
	}
	content := p.source[contentStart : contentStart+idx]
	p.c.pos = contentStart + idx + len("*/")
	return Expr{Op: OpTrivia, TriviaForm: TriviaFormComment, Value: content, Pos: Position{Begin: start, End: p.c.checkpoint()}}
}

// --- Groups (spec.md §4.5, §4.7) ---

func (p *Parser) parseGroupOrReferenceAtom() Expr {
	start := p.c.checkpoint()
	p.c.eat() // '('
	gi := classifyGroupIntro(p.c, p.syntax, start)

	if gi.referenceAtom != nil {
		return *gi.referenceAtom
	}

	if gi.isolatedOptions {
		node := Expr{Op: OpChangeMatchingOptions, Options: gi.options, Isolated: true}
		p.c.eat() // ')' closing "(?flags"
		body := p.parseConcatenation()
		node.Args = []Expr{body}
		node.Pos = Position{Begin: start, End: p.c.checkpoint()}
		return node
	}

	if gi.kind == GroupCapture || gi.kind == GroupNamedCapture {
		p.priorGroupCount++
	}

	body := p.parseAlternation()
	if !p.c.tryEat(')') {
		if p.c.isEmpty() {
			fail(ErrUnexpectedEndOfInput, Position{Begin: p.c.checkpoint(), End: p.c.checkpoint()}, "expected ')', found end of pattern")
		}
		fail(ErrExpected, Position{Begin: start, End: p.c.checkpoint()}, "expected ')'")
	}
	return Expr{
		Op:               OpGroup,
		GroupKind:        gi.kind,
		Value:            gi.name,
		NamedCaptureForm: gi.namedForm,
		Options:          gi.options,
		Args:             []Expr{body},
		Pos:              Position{Begin: start, End: p.c.checkpoint()},
	}
}

// --- Custom character class (spec.md §4.8) ---

func (p *Parser) parseCustomCharClass() Expr {
	start := p.c.checkpoint()
	p.c.eat() // '['
	negated := p.c.tryEat('^')
	members := p.parseCharClassMemberRuns()
	if !p.c.tryEat(']') {
		fail(ErrUnexpectedEndOfInput, Position{Begin: start, End: p.c.checkpoint()}, "unterminated character class")
	}
	return Expr{Op: OpCustomCharClass, Negated: negated, Args: members, Pos: Position{Begin: start, End: p.c.checkpoint()}}
}

func (p *Parser) isSetOpStart() bool {
	return p.c.startsWith("&&") || p.c.startsWith("--") || p.c.startsWith("~~")
}

func (p *Parser) tryEatSetOp() (SetOp, bool) {
	switch {
	case p.c.tryEatSeq("&&"):
		return SetOpIntersect, true
	case p.c.tryEatSeq("--"):
		return SetOpSubtract, true
	case p.c.tryEatSeq("~~"):
		return SetOpSymDiff, true
	default:
		return 0, false
	}
}

func runListPos(run []Expr) Position {
	if len(run) == 0 {
		return Position{}
	}
	return combinePos(run[0].Pos, run[len(run)-1].Pos)
}

func (p *Parser) parseCharClassMemberRuns() []Expr {
	lhs := p.parseCharClassRun()
	for {
		op, ok := p.tryEatSetOp()
		if !ok {
			break
		}
		rhs := p.parseCharClassRun()
		combined := Expr{
			Op:    OpSetOperation,
			SetOp: op,
			Args: []Expr{
				{Op: OpMemberList, Args: lhs, Pos: runListPos(lhs)},
				{Op: OpMemberList, Args: rhs, Pos: runListPos(rhs)},
			},
			Pos: combinePos(runListPos(lhs), runListPos(rhs)),
		}
		lhs = []Expr{combined}
	}
	return lhs
}

func (p *Parser) parseCharClassRun() []Expr {
	var members []Expr
	for {
		if p.c.isEmpty() || p.c.peekByte() == ']' || p.isSetOpStart() {
			return members
		}
		members = append(members, p.parseCharClassMember())
	}
}

func (p *Parser) parseCharClassMember() Expr {
	if p.c.peekByte() == '[' {
		if posix, ok := tryEating(p.c, p.tryParsePosixClass); ok {
			return posix
		}
		return p.parseCustomCharClass()
	}

	first := p.parseCharClassAtom()

	if p.c.peekByte() == '-' && !p.c.startsWith("--") {
		mark := p.c.checkpoint()
		p.c.eat() // '-'
		if p.c.isEmpty() || p.c.peekByte() == ']' || p.isSetOpStart() {
			p.c.restore(mark)
			return first
		}
		second := p.parseCharClassAtom()
		return Expr{Op: OpCharRange, Args: []Expr{first, second}, Pos: combinePos(first.Pos, second.Pos)}
	}
	return first
}

func (p *Parser) tryParsePosixClass() (Expr, bool) {
	start := p.c.checkpoint()
	if !p.c.tryEatSeq("[:") {
		return Expr{}, false
	}
	negated := p.c.tryEat('^')
	nameStart := p.c.checkpoint()
	for {
		if p.c.isEmpty() {
			return Expr{}, false
		}
		if p.c.startsWith(":]") {
			break
		}
		p.c.eat()
	}
	name := p.source[nameStart:p.c.checkpoint()]
	p.c.pos += len(":]")
	pred := classifyPosixClass(name)
	return Expr{Op: OpPosixClass, Negated: negated, Value: name, Property: pred, Pos: Position{Begin: start, End: p.c.checkpoint()}}, true
}

func (p *Parser) parseCharClassAtom() Expr {
	if p.c.peekByte() == '\\' {
		return lexBackslashClassAtom(p.c)
	}
	return p.parseLiteralChar()
}
