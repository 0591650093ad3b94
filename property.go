package rxsyntax

import "strings"

// PropertyKind is the recognized axis of a classified \p{...} predicate.
// Unknown key/value combinations are preserved verbatim (spec.md §4.3,
// §9 "Unknown property values are preserved verbatim as other(key,value) so
// that the AST round-trips across classifier databases; this is deliberate,
// not a bug") rather than rejected, since the actual Unicode property
// database is an external, opaque collaborator this package never embeds
// (spec.md §1 Non-goals: "runtime codepoint property databases").
type PropertyKind byte

const (
	PropertyOther PropertyKind = iota
	PropertyGeneralCategory
	PropertyScript
	PropertyScriptExtensions
	PropertyBlock
	PropertyBinary
	PropertyPosix // POSIX class used as a character-property predicate, e.g. [:alpha:]
)

// PropertyPredicate is the classified form of a \p{...}/\P{...} body, or of
// a POSIX class name used as a property atom.
type PropertyPredicate struct {
	Kind PropertyKind
	// Key is the normalized axis name (e.g. "General_Category", "Script")
	// when the source spelled it explicitly via KEY=VALUE, or "" when the
	// key was inferred from VALUE alone.
	Key string
	// Value is the normalized, canonical value name when Kind != PropertyOther;
	// otherwise it is the raw, unrecognized value text.
	Value string
	// RawKey/RawValue preserve the source spelling verbatim, used when
	// Kind == PropertyOther so the predicate round-trips.
	RawKey   string
	RawValue string
}

// generalCategories maps every short and long general-category alias this
// package recognizes to its canonical short code.
var generalCategories = map[string]string{
	"l": "L", "letter": "L",
	"lu": "Lu", "uppercaseletter": "Lu",
	"ll": "Ll", "lowercaseletter": "Ll",
	"lt": "Lt", "titlecaseletter": "Lt",
	"lm": "Lm", "modifierletter": "Lm",
	"lo": "Lo", "otherletter": "Lo",
	"m": "M", "mark": "M", "combiningmark": "M",
	"mn": "Mn", "nonspacingmark": "Mn",
	"mc": "Mc", "spacingmark": "Mc",
	"me": "Me", "enclosingmark": "Me",
	"n": "N", "number": "N",
	"nd": "Nd", "decimalnumber": "Nd", "digit": "Nd",
	"nl": "Nl", "letternumber": "Nl",
	"no": "No", "othernumber": "No",
	"p": "P", "punctuation": "P", "punct": "P",
	"pc": "Pc", "connectorpunctuation": "Pc",
	"pd": "Pd", "dashpunctuation": "Pd",
	"ps": "Ps", "openpunctuation": "Ps",
	"pe": "Pe", "closepunctuation": "Pe",
	"pi": "Pi", "initialpunctuation": "Pi",
	"pf": "Pf", "finalpunctuation": "Pf",
	"po": "Po", "otherpunctuation": "Po",
	"s": "S", "symbol": "S",
	"sm": "Sm", "mathsymbol": "Sm",
	"sc": "Sc", "currencysymbol": "Sc",
	"sk": "Sk", "modifiersymbol": "Sk",
	"so": "So", "othersymbol": "So",
	"z": "Z", "separator": "Z",
	"zs": "Zs", "spaceseparator": "Zs",
	"zl": "Zl", "lineseparator": "Zl",
	"zp": "Zp", "paragraphseparator": "Zp",
	"c": "C", "other": "C",
	"cc": "Cc", "control": "Cc", "cntrl": "Cc",
	"cf": "Cf", "format": "Cf",
	"cs": "Cs", "surrogate": "Cs",
	"co": "Co", "privateuse": "Co",
	"cn": "Cn", "unassigned": "Cn",
}

// scripts is a representative (not exhaustive) set of script names; an
// unrecognized script value becomes PropertyOther rather than an error.
var scripts = map[string]string{
	"latin": "Latin", "greek": "Greek", "cyrillic": "Cyrillic",
	"armenian": "Armenian", "hebrew": "Hebrew", "arabic": "Arabic",
	"syriac": "Syriac", "thaana": "Thaana", "devanagari": "Devanagari",
	"bengali": "Bengali", "gurmukhi": "Gurmukhi", "gujarati": "Gujarati",
	"oriya": "Oriya", "tamil": "Tamil", "telugu": "Telugu",
	"kannada": "Kannada", "malayalam": "Malayalam", "sinhala": "Sinhala",
	"thai": "Thai", "lao": "Lao", "tibetan": "Tibetan",
	"myanmar": "Myanmar", "georgian": "Georgian", "hangul": "Hangul",
	"ethiopic": "Ethiopic", "cherokee": "Cherokee", "ogham": "Ogham",
	"runic": "Runic", "khmer": "Khmer", "mongolian": "Mongolian",
	"hiragana": "Hiragana", "katakana": "Katakana", "bopomofo": "Bopomofo",
	"han": "Han", "yi": "Yi", "common": "Common", "inherited": "Inherited",
	"braille": "Braille",
}

// binaryProperties is a representative set of Unicode binary property names.
var binaryProperties = map[string]string{
	"alphabetic": "Alphabetic", "alpha": "Alphabetic",
	"whitespace": "White_Space", "wspace": "White_Space", "space": "White_Space",
	"uppercase": "Uppercase", "upper": "Uppercase",
	"lowercase": "Lowercase", "lower": "Lowercase",
	"assigned": "Assigned",
	"any": "Any",
	"asciihexdigit": "ASCII_Hex_Digit", "ahex": "ASCII_Hex_Digit",
	"ideographic": "Ideographic", "ideo": "Ideographic",
	"emoji": "Emoji",
	"diacritic": "Diacritic", "dia": "Diacritic",
	"math": "Math",
	"quotationmark": "Quotation_Mark", "qmark": "Quotation_Mark",
}

// posixClasses are the ASCII bracket classes ([:name:]) available both as
// custom-character-class members and, per spec.md §4.3, as property atoms.
var posixClasses = map[string]string{
	"alpha": "alpha", "digit": "digit", "alnum": "alnum", "upper": "upper",
	"lower": "lower", "space": "space", "blank": "blank", "punct": "punct",
	"cntrl": "cntrl", "graph": "graph", "print": "print", "xdigit": "xdigit",
	"word": "word", "ascii": "ascii",
}

// fold implements the loose-matching rule of UAX44-LM3: case-insensitive,
// ignoring underscores, hyphens, and whitespace, with an optional leading
// "is" stripped.
func fold(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '_', '-', ' ', '\t', '\n':
			continue
		default:
			b.WriteRune(toLowerASCII(r))
		}
	}
	folded := b.String()
	if strings.HasPrefix(folded, "is") && len(folded) > 2 {
		folded = folded[2:]
	}
	return folded
}

func toLowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// classifyPropertyKeyed classifies a `KEY = VALUE` \p{...} body.
func classifyPropertyKeyed(rawKey, rawValue string) PropertyPredicate {
	switch fold(rawKey) {
	case "gc", "generalcategory":
		if canon, ok := generalCategories[fold(rawValue)]; ok {
			return PropertyPredicate{Kind: PropertyGeneralCategory, Key: "General_Category", Value: canon, RawKey: rawKey, RawValue: rawValue}
		}
	case "sc", "script":
		if canon, ok := scripts[fold(rawValue)]; ok {
			return PropertyPredicate{Kind: PropertyScript, Key: "Script", Value: canon, RawKey: rawKey, RawValue: rawValue}
		}
	case "scx", "scriptextensions":
		if canon, ok := scripts[fold(rawValue)]; ok {
			return PropertyPredicate{Kind: PropertyScriptExtensions, Key: "Script_Extensions", Value: canon, RawKey: rawKey, RawValue: rawValue}
		}
	case "blk", "block":
		// Block names are numerous and not modeled beyond round-trip;
		// always preserved as `other` with the Block axis recorded.
	}
	return PropertyPredicate{Kind: PropertyOther, RawKey: rawKey, RawValue: rawValue}
}

// classifyPropertyShorthand classifies a bare `VALUE` \p{...} body (no `=`),
// trying general category, then script, then binary property, in that
// order, per spec.md §4.3.
func classifyPropertyShorthand(rawValue string) PropertyPredicate {
	folded := fold(rawValue)
	if canon, ok := generalCategories[folded]; ok {
		return PropertyPredicate{Kind: PropertyGeneralCategory, Value: canon, RawValue: rawValue}
	}
	if canon, ok := scripts[folded]; ok {
		return PropertyPredicate{Kind: PropertyScript, Value: canon, RawValue: rawValue}
	}
	if canon, ok := binaryProperties[folded]; ok {
		return PropertyPredicate{Kind: PropertyBinary, Value: canon, RawValue: rawValue}
	}
	return PropertyPredicate{Kind: PropertyOther, RawValue: rawValue}
}

// classifyPosixClass classifies a `[:name:]` body used as a property atom.
func classifyPosixClass(name string) PropertyPredicate {
	if canon, ok := posixClasses[fold(name)]; ok {
		return PropertyPredicate{Kind: PropertyPosix, Value: canon, RawValue: name}
	}
	return PropertyPredicate{Kind: PropertyOther, RawValue: name}
}
