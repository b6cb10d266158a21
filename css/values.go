// This file contains the typed CSS value/selector/stylesheet model and a
// handful of value-parsing utilities used across the browser.
//
// Spec references:
// - CSS Syntax Module Level 3 §4.3 Tokenizer Algorithms (numeric types)
// - CSS 2.1 §15.7 Font size: https://www.w3.org/TR/CSS21/fonts.html#font-size-props
package css

import "strconv"

// Unit distinguishes the two dimension units this engine recognizes.
type Unit int

const (
	UnitNone Unit = iota
	UnitPx
)

// ValueKind tags the closed Value variant set.
type ValueKind int

const (
	ValueNotDeclared ValueKind = iota
	ValueKeyword
	ValueRgb
	ValueDimension
	ValuePercentage
)

// Rgb is an 8-bit-per-channel color with an alpha in [0,1].
type Rgb struct {
	R, G, B uint8
	A       float64
}

// Value is the closed variant set a declaration's value sequence is built
// from: Keyword(string), Rgb{r,g,b,a}, Dimension(number, Unit),
// Percentage(number), and the NotDeclared sentinel used for properties
// (like border-color) that resolve against another property at use time.
type Value struct {
	Kind    ValueKind
	Keyword string
	Color   Rgb
	Num     float64
	Unit    Unit
}

func KeywordValue(k string) Value          { return Value{Kind: ValueKeyword, Keyword: k} }
func RgbValue(r Rgb) Value                  { return Value{Kind: ValueRgb, Color: r} }
func DimensionValue(n float64, u Unit) Value { return Value{Kind: ValueDimension, Num: n, Unit: u} }
func PercentageValue(n float64) Value       { return Value{Kind: ValuePercentage, Num: n} }

var NotDeclaredValue = Value{Kind: ValueNotDeclared}

func (v Value) IsKeyword(k string) bool { return v.Kind == ValueKeyword && v.Keyword == k }

// SimpleSelector is the only selector shape this engine supports: a
// tag-name/id/class-list conjunction, with no combinators. A zero-value
// SimpleSelector (no tag, no id, no classes) is the universal selector.
type SimpleSelector struct {
	TagName    string
	HasTagName bool
	ID         string
	HasID      bool
	Classes    []string
}

// IsUniversal reports whether the selector matches every element.
func (s SimpleSelector) IsUniversal() bool {
	return !s.HasTagName && !s.HasID && len(s.Classes) == 0
}

// Specificity is the (a,b,c) triple — ids, classes, type selectors — used
// to order rules within the cascade. The universal selector contributes
// nothing to any component.
type Specificity struct {
	A, B, C int
}

// Less orders specificities lexicographically, ascending.
func (s Specificity) Less(o Specificity) bool {
	if s.A != o.A {
		return s.A < o.A
	}
	if s.B != o.B {
		return s.B < o.B
	}
	return s.C < o.C
}

// Specificity computes this selector's (a,b,c) triple.
func (s SimpleSelector) Specificity() Specificity {
	spec := Specificity{}
	if s.HasID {
		spec.A = 1
	}
	spec.B = len(s.Classes)
	if s.HasTagName {
		spec.C = 1
	}
	return spec
}

// Matches reports whether the selector matches an element with the given
// tag name, optional id, and class list. Class matching is exact-string
// membership; id matching is exact; tag matching is case-sensitive (the
// DOM producer is responsible for normalization).
func (s SimpleSelector) Matches(tagName string, id string, hasID bool, classes []string) bool {
	if s.IsUniversal() {
		return true
	}
	if s.HasTagName && s.TagName != tagName {
		return false
	}
	if s.HasID {
		if !hasID || s.ID != id {
			return false
		}
	}
	for _, want := range s.Classes {
		found := false
		for _, have := range classes {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Declaration is a single `name: value-sequence` pair.
type Declaration struct {
	Name  string
	Value []Value
}

// Rule is a selector paired with its declaration list.
type Rule struct {
	Selector     SimpleSelector
	Declarations []Declaration
}

// Specificity delegates to the rule's selector.
func (r Rule) Specificity() Specificity { return r.Selector.Specificity() }

// Stylesheet is an ordered sequence of rules, all sharing one origin
// (user-agent or author) — origin itself is tracked by the caller (see
// style.StyleTree), not stored on the stylesheet.
type Stylesheet struct {
	Rules []Rule
}

// BaseFontHeight is the default 'medium' font size in pixels, matching the
// registry's font-size initial value.
const BaseFontHeight = 16.0

// namedFontSizes maps the CSS2.1 §15.7 absolute font-size keywords to
// their pixel equivalents, medium anchored at BaseFontHeight.
var namedFontSizes = map[string]float64{
	"xx-small": 9.0,
	"x-small":  10.0,
	"small":    12.0,
	"medium":   BaseFontHeight,
	"large":    18.0,
	"x-large":  24.0,
	"xx-large": 32.0,
}

// NamedFontSize resolves one of the absolute font-size keywords to its
// pixel size. ok is false for any keyword this engine doesn't recognize
// (relative sizes "larger"/"smaller" included).
func NamedFontSize(keyword string) (px float64, ok bool) {
	px, ok = namedFontSizes[keyword]
	return px, ok
}

// ParseFontSize parses a CSS font-size value already reduced to a Value
// and returns the size in pixels. Returns 0 for anything it can't
// resolve (a non-px dimension, or a keyword NamedFontSize doesn't know).
func ParseFontSize(v Value) float64 {
	switch v.Kind {
	case ValueDimension:
		if v.Unit == UnitPx || v.Num == 0 {
			return v.Num
		}
		return 0
	case ValueKeyword:
		if size, ok := NamedFontSize(v.Keyword); ok {
			return size
		}
	}
	return 0
}

// ParseFontSizeString is a convenience wrapper over ParseFontSize for
// tests and call sites that only have raw text (e.g. px literals baked
// into Go source rather than parsed CSS).
func ParseFontSizeString(s string) float64 {
	if s == "" {
		return 0
	}
	if n := len(s); n > 2 && s[n-2:] == "px" {
		if f, err := strconv.ParseFloat(s[:n-2], 64); err == nil {
			return f
		}
		return 0
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return ParseFontSize(KeywordValue(s))
}
