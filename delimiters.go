package rxsyntax

// This file implements spec.md §6's delimiter-handling entry points,
// grounded on quasilyte-regex/syntax/pcre_test.go's TestParsePCRE table
// (`@@`, `//i`, `#hello#`, `{pcre pattern}smi`, `<an[o]ther (example)!>ms`):
// a non-alphanumeric, non-backslash, non-whitespace byte opens a literal;
// the four bracket pairs close with their mirror, everything else repeats
// the opening byte; trailing letters after the closing delimiter are
// modifiers.

var bracketClosers = map[byte]byte{
	'(': ')',
	'[': ']',
	'{': '}',
	'<': '>',
}

// LexRegex detects one delimited regex literal starting at input[start:]
// without parsing its contents, for tooling that only needs the span
// (spec.md §6: "lex_regex(start, end) -> (contents, delimiter, end_ptr)").
// It reports ok=false if input[start] cannot open a delimited literal or no
// matching unescaped closer is found.
func LexRegex(input string, start int) (contents string, delim [2]byte, endPos int, ok bool) {
	if start >= len(input) {
		return "", [2]byte{}, start, false
	}
	open := input[start]
	if isAlphanumericByte(open) || isSpaceByte(open) || open == '\\' {
		return "", [2]byte{}, start, false
	}
	closer, isBracket := bracketClosers[open]
	if !isBracket {
		closer = open
	}

	i := start + 1
	for i < len(input) {
		if input[i] == '\\' && i+1 < len(input) {
			i += 2
			continue
		}
		if input[i] == closer {
			return input[start+1 : i], [2]byte{open, closer}, i + 1, true
		}
		i++
	}
	return "", [2]byte{}, start, false
}

// lexModifiers consumes the run of ASCII letters immediately following a
// delimiter close, returning it and the position after it.
func lexModifiers(input string, pos int) (string, int) {
	start := pos
	for pos < len(input) && isASCIILetter(input[pos]) {
		pos++
	}
	return input[start:pos], pos
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// DelimitedPattern is the result of ParseWithDelimiters: the parsed pattern
// plus the bookkeeping a caller needs to reconstruct the original literal.
type DelimitedPattern struct {
	Pattern   Pattern
	Delim     [2]byte
	Modifiers string
}

// ParseWithDelimiters detects and strips one recognized regex-literal
// delimiter pair and parses the inner content (spec.md §6:
// "parse_with_delimiters(input) -> AST | ParseError").
func ParseWithDelimiters(input string, syntax SyntaxOptions) (result DelimitedPattern, err error) {
	defer recoverParseError(&err)

	contents, delim, endPos, ok := LexRegex(input, 0)
	if !ok {
		fail(ErrExpected, Position{Begin: 0, End: len(input)}, "expected a delimited regex literal")
	}
	modifiers, _ := lexModifiers(input, endPos)

	pattern, perr := NewParser(syntax).Parse(contents)
	if perr != nil {
		panic(perr)
	}
	return DelimitedPattern{Pattern: pattern, Delim: delim, Modifiers: modifiers}, nil
}
