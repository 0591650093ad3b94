package rxsyntax

import (
	"fmt"
	"strings"
)

// Dump renders e as a stable, position-insensitive s-expression, for use in
// diagnostics and golden tests (spec.md §6: "a stable dump format"). It
// generalizes quasilyte-regex/syntax/ast.go's FormatSyntax/formatExprSyntax
// recursive-descent-over-Args approach to this package's richer Expr shape.
func (e *Expr) Dump() string {
	var b strings.Builder
	e.dump(&b)
	return b.String()
}

// scalarValue returns the single codepoint e denotes when it is either a
// resolved unicode-scalar atom or a single-rune literal, and whether it
// denotes one at all. Dump renders both the same way so that "\x41", "A",
// and "\u{41}" compare equal under Equal (spec.md §8, invariant 4).
func (e *Expr) scalarValue() (rune, bool) {
	switch e.Op {
	case OpUnicodeScalar:
		return e.Scalar, true
	case OpLiteralChar:
		rs := []rune(e.Value)
		if len(rs) == 1 {
			return rs[0], true
		}
	}
	return 0, false
}

func (e *Expr) dump(b *strings.Builder) {
	if v, ok := e.scalarValue(); ok {
		fmt.Fprintf(b, "(Char U+%04X)", v)
		return
	}
	b.WriteByte('(')
	b.WriteString(e.Op.String())
	for _, extra := range e.dumpExtras() {
		b.WriteByte(' ')
		b.WriteString(extra)
	}
	for i := range e.Args {
		b.WriteByte(' ')
		e.Args[i].dump(b)
	}
	b.WriteByte(')')
}

func (e *Expr) dumpExtras() []string {
	var extras []string
	if e.Value != "" {
		extras = append(extras, fmt.Sprintf("%q", e.Value))
	}
	switch e.Op {
	case OpGroup:
		extras = append(extras, e.GroupKind.dumpString())
		if e.GroupKind == GroupNamedCapture {
			extras = append(extras, e.NamedCaptureForm.dumpString())
		}
		if e.GroupKind == GroupMatchingOptionsScoped {
			extras = append(extras, e.Options.dumpString())
		}
	case OpQuantification:
		extras = append(extras, e.Amount.dumpString(), e.QuantKind.dumpString())
	case OpCustomCharClass, OpCharacterProperty, OpPosixClass:
		if e.Negated {
			extras = append(extras, "negated")
		}
	case OpSetOperation:
		extras = append(extras, e.SetOp.dumpString())
	case OpBackreference, OpSubpattern:
		extras = append(extras, e.Ref.dumpString())
	case OpChangeMatchingOptions:
		extras = append(extras, e.Options.dumpString())
	case OpQuote:
		if e.QuoteForm == QuoteFormUnclosed {
			extras = append(extras, "unclosed")
		}
	}
	if e.Op == OpCharacterProperty {
		if e.Property.Kind != PropertyOther {
			extras = append(extras, e.Property.dumpString())
		} else {
			extras = append(extras, fmt.Sprintf("prop=other(%q,%q)", e.Property.RawKey, e.Property.RawValue))
		}
	}
	return extras
}

func (k GroupKind) dumpString() string {
	switch k {
	case GroupCapture:
		return "capture"
	case GroupNamedCapture:
		return "named-capture"
	case GroupNonCapture:
		return "non-capture"
	case GroupNonCaptureReset:
		return "non-capture-reset"
	case GroupAtomicNonCapturing:
		return "atomic"
	case GroupLookahead:
		return "lookahead"
	case GroupNegativeLookahead:
		return "negative-lookahead"
	case GroupNonAtomicLookahead:
		return "non-atomic-lookahead"
	case GroupLookbehind:
		return "lookbehind"
	case GroupNegativeLookbehind:
		return "negative-lookbehind"
	case GroupNonAtomicLookbehind:
		return "non-atomic-lookbehind"
	case GroupScriptRun:
		return "script-run"
	case GroupAtomicScriptRun:
		return "atomic-script-run"
	case GroupMatchingOptionsScoped:
		return "matching-options-scoped"
	default:
		return "none"
	}
}

func (f NamedCaptureForm) dumpString() string {
	switch f {
	case NamedCaptureFormP:
		return "form=P"
	case NamedCaptureFormAngle:
		return "form=angle"
	case NamedCaptureFormQuote:
		return "form=quote"
	default:
		return "form=?"
	}
}

func (a Amount) dumpString() string {
	switch a.Kind {
	case AmountZeroOrMore:
		return "*"
	case AmountOneOrMore:
		return "+"
	case AmountZeroOrOne:
		return "?"
	case AmountExactly:
		return fmt.Sprintf("{%d}", a.Min)
	case AmountNOrMore:
		return fmt.Sprintf("{%d,}", a.Min)
	case AmountUpToN:
		return fmt.Sprintf("{,%d}", a.Max)
	case AmountRange:
		return fmt.Sprintf("{%d,%d}", a.Min, a.Max)
	default:
		return "?amount"
	}
}

func (k QuantKind) dumpString() string {
	switch k {
	case QuantEager:
		return "eager"
	case QuantReluctant:
		return "reluctant"
	case QuantPossessive:
		return "possessive"
	default:
		return "?quant"
	}
}

func (s SetOp) dumpString() string {
	switch s {
	case SetOpIntersect:
		return "&&"
	case SetOpSubtract:
		return "--"
	case SetOpSymDiff:
		return "~~"
	default:
		return "?setop"
	}
}

func (r Reference) dumpString() string {
	switch r.Kind {
	case RefAbsolute:
		return fmt.Sprintf("ref=%d", r.Number)
	case RefRelative:
		return fmt.Sprintf("ref=%+d", r.Number)
	case RefNamed:
		return fmt.Sprintf("ref=%s", r.Name)
	case RefRecurseWholePattern:
		return "ref=recurse"
	default:
		return "ref=?"
	}
}

func (p PropertyPredicate) dumpString() string {
	if p.Key != "" {
		return fmt.Sprintf("prop=%s=%s", p.Key, p.Value)
	}
	return fmt.Sprintf("prop=%s", p.Value)
}

func (s MatchingOptionsSeq) dumpString() string {
	var b strings.Builder
	if s.Caret {
		b.WriteByte('^')
	}
	for _, o := range s.Add {
		b.WriteString(o.dumpString())
	}
	if len(s.Remove) > 0 {
		b.WriteByte('-')
		for _, o := range s.Remove {
			b.WriteString(o.dumpString())
		}
	}
	return b.String()
}

func (o matchingOptionSpec) dumpString() string {
	if o.TextSegment {
		return fmt.Sprintf("y{%c}", o.Opt)
	}
	return string(rune(o.Opt))
}

// Equal reports whether e and other are structurally equal, ignoring
// source positions (spec.md §8 "Idempotent normalization": two inputs that
// differ only in cosmetically-equivalent escape forms, e.g. "\u{41}" vs
// "\x41" vs "A", must compare equal once reduced to their scalar atoms).
func (e *Expr) Equal(other *Expr) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.Dump() == other.Dump()
}
