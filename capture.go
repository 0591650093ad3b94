package rxsyntax

// CaptureShapeKind tags the shape a capturing group (or group of captures)
// contributes to the overall capture structure (spec.md §4.9).
type CaptureShapeKind byte

const (
	CaptureAtom CaptureShapeKind = iota
	CaptureOptional
	CaptureArray
	CaptureTuple
)

// CaptureShape is the accumulated shape of every capturing group in a
// parsed pattern, built left-to-right over the AST. A plain capture is an
// atom; one nested under an optional quantifier becomes Optional; one
// nested under a repeating quantifier becomes Array; multiple captures at
// the same level become a Tuple in encounter order.
type CaptureShape struct {
	Kind  CaptureShapeKind
	Inner *CaptureShape // meaningful for Optional/Array
	Elems []CaptureShape // meaningful for Tuple
}

// BuildCaptureStructure walks root and accumulates the capture structure
// spec.md §4.9 describes. A pattern with no captures yields a bare Atom
// (the whole match, with no captured groups).
func BuildCaptureStructure(root Expr) CaptureShape {
	var caps []CaptureShape
	walkCaptures(root, &caps)
	return captureShapeOf(caps)
}

// captureShapeOf collapses a flat, document-order list of sibling capture
// shapes the way spec.md §4.9 describes: none is the whole-match atom, one
// is that shape directly, two or more become a Tuple in encounter order.
func captureShapeOf(caps []CaptureShape) CaptureShape {
	switch len(caps) {
	case 0:
		return CaptureShape{Kind: CaptureAtom}
	case 1:
		return caps[0]
	default:
		return CaptureShape{Kind: CaptureTuple, Elems: caps}
	}
}

func walkCaptures(e Expr, out *[]CaptureShape) {
	if e.Op == OpQuantification {
		child := e.Args[0]
		if child.Op == OpGroup && isCaptureKind(child.GroupKind) {
			kind := shapeKindForAmount(e.Amount)
			if kind == CaptureAtom {
				// {n} with n==1 is a no-op for capture-shape purposes: the
				// quantified group still contributes exactly one occurrence,
				// so it (and anything nested inside it) is walked flat, same
				// as an unquantified capturing group.
				*out = append(*out, CaptureShape{Kind: CaptureAtom})
				walkCaptures(child.Args[0], out)
				return
			}
			var innerCaps []CaptureShape
			walkCaptures(child.Args[0], &innerCaps)
			inner := captureShapeOf(innerCaps)
			*out = append(*out, CaptureShape{Kind: kind, Inner: &inner})
			return
		}
		walkCaptures(child, out)
		return
	}

	if e.Op == OpGroup && isCaptureKind(e.GroupKind) {
		*out = append(*out, CaptureShape{Kind: CaptureAtom})
	}
	for i := range e.Args {
		walkCaptures(e.Args[i], out)
	}
}

func isCaptureKind(k GroupKind) bool {
	return k == GroupCapture || k == GroupNamedCapture
}

func shapeKindForAmount(a Amount) CaptureShapeKind {
	switch a.Kind {
	case AmountZeroOrOne, AmountUpToN:
		return CaptureOptional
	case AmountZeroOrMore, AmountOneOrMore, AmountNOrMore:
		return CaptureArray
	case AmountRange:
		if a.Min == 0 {
			return CaptureOptional
		}
		return CaptureArray
	case AmountExactly:
		if a.Min == 1 {
			return CaptureAtom
		}
		return CaptureArray
	default:
		return CaptureAtom
	}
}

// CaptureBufferSize returns the number of bytes EncodeCaptureShape needs
// for s (spec.md §4.9: "a binary serialization interface... buffer-size
// -> encode -> decode"). The wire format is this package's own and is not
// meant to be shared outside a round-trip of encode/decode.
func CaptureBufferSize(s CaptureShape) int {
	switch s.Kind {
	case CaptureOptional, CaptureArray:
		return 1 + CaptureBufferSize(*s.Inner)
	case CaptureTuple:
		n := 2
		for _, e := range s.Elems {
			n += CaptureBufferSize(e)
		}
		return n
	default:
		return 1
	}
}

// EncodeCaptureShape writes s into buf (which must be at least
// CaptureBufferSize(s) bytes) and returns the number of bytes written.
func EncodeCaptureShape(s CaptureShape, buf []byte) int {
	buf[0] = byte(s.Kind)
	switch s.Kind {
	case CaptureOptional, CaptureArray:
		return 1 + EncodeCaptureShape(*s.Inner, buf[1:])
	case CaptureTuple:
		buf[1] = byte(len(s.Elems))
		off := 2
		for _, e := range s.Elems {
			off += EncodeCaptureShape(e, buf[off:])
		}
		return off
	default:
		return 1
	}
}

// DecodeCaptureShape reads a CaptureShape previously written by
// EncodeCaptureShape, returning the value and the number of bytes
// consumed from buf.
func DecodeCaptureShape(buf []byte) (CaptureShape, int) {
	kind := CaptureShapeKind(buf[0])
	switch kind {
	case CaptureOptional, CaptureArray:
		inner, n := DecodeCaptureShape(buf[1:])
		return CaptureShape{Kind: kind, Inner: &inner}, 1 + n
	case CaptureTuple:
		count := int(buf[1])
		elems := make([]CaptureShape, count)
		off := 2
		for i := 0; i < count; i++ {
			e, n := DecodeCaptureShape(buf[off:])
			elems[i] = e
			off += n
		}
		return CaptureShape{Kind: CaptureTuple, Elems: elems}, off
	default:
		return CaptureShape{Kind: kind}, 1
	}
}
