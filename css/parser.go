// Spec references:
// - this engine's simplified grammar: selector-list '{' declaration-list '}'
// - CSS 2.1 §4.1.8 Declarations and properties (recovery behavior)
//
// Implemented features:
// - Rule parsing: comma-separated SimpleSelectors (no combinators — see
//   Non-goals) each sharing one cloned declaration list.
// - Declaration parsing into typed Value sequences: Keyword, Rgb (via
//   rgb(r,g,b) / rgb(r,g,b,a)), Dimension (px or unitless), Percentage.
// - parse_list_of_declarations entry point for inline style attributes.
// - @-rule skipping (balanced-brace or semicolon-terminated).
// - Recovery: a malformed declaration (no ':') is dropped and parsing
//   resumes at the next ';' or '}'; an out-of-range rgb() is dropped.
package css

// Parser consumes a CSS token stream and builds a Stylesheet.
type Parser struct {
	tokenizer *Tokenizer
}

// NewParser creates a new CSS parser over raw (unpreprocessed) input.
func NewParser(input string) *Parser {
	return &Parser{tokenizer: NewTokenizer(input)}
}

// Parse parses a full stylesheet: `parse(stylesheet-text) → Stylesheet`.
func Parse(input string) Stylesheet {
	return NewParser(input).Parse()
}

// ParseDeclarationList parses a bare declaration list, as found inside an
// inline `style="..."` attribute: `parse_list_of_declarations(text) →
// sequence of Declaration`.
func ParseDeclarationList(input string) []Declaration {
	p := NewParser(input)
	return p.parseDeclarations(false)
}

// Parse parses the CSS input and returns a stylesheet.
func (p *Parser) Parse() Stylesheet {
	var sheet Stylesheet

	for {
		p.tokenizer.SkipWhitespace()
		token := p.tokenizer.Peek()
		if token.Type == EOFToken {
			break
		}

		if token.Type == AtKeywordToken {
			p.skipAtRule()
			continue
		}

		rules, ok := p.parseRule()
		if ok {
			sheet.Rules = append(sheet.Rules, rules...)
		}
	}

	return sheet
}

// skipAtRule consumes an @-rule without interpreting it: per spec.md's
// Non-goals, @rules beyond trivial skipping are out of scope.
func (p *Parser) skipAtRule() {
	p.tokenizer.Next() // the @keyword itself

	depth := 0
	for {
		token := p.tokenizer.Next()
		if token.Type == EOFToken {
			return
		}
		if token.Type == SemicolonToken && depth == 0 {
			return
		}
		if token.Type == LeftBraceToken {
			depth++
		}
		if token.Type == RightBraceToken {
			depth--
			if depth <= 0 {
				return
			}
		}
	}
}

// parseRule parses `selector-list { declaration-list }` and expands the
// selector list into one Rule per comma-separated selector, each carrying
// a cloned copy of the shared declaration list.
func (p *Parser) parseRule() ([]Rule, bool) {
	selectors := p.parseSelectorList()
	if len(selectors) == 0 {
		p.recoverToRuleBoundary()
		return nil, false
	}

	p.tokenizer.SkipWhitespace()
	if p.tokenizer.Next().Type != LeftBraceToken {
		return nil, false
	}

	declarations := p.parseDeclarations(true)

	rules := make([]Rule, 0, len(selectors))
	for _, sel := range selectors {
		declsCopy := make([]Declaration, len(declarations))
		copy(declsCopy, declarations)
		rules = append(rules, Rule{Selector: sel, Declarations: declsCopy})
	}
	return rules, true
}

// recoverToRuleBoundary discards tokens up to the next '}' (or EOF) so a
// malformed rule never hangs the parser.
func (p *Parser) recoverToRuleBoundary() {
	for {
		token := p.tokenizer.Next()
		if token.Type == RightBraceToken || token.Type == EOFToken {
			return
		}
	}
}

// parseSelectorList parses a comma-separated list of simple selectors.
func (p *Parser) parseSelectorList() []SimpleSelector {
	var selectors []SimpleSelector

	for {
		p.tokenizer.SkipWhitespace()

		sel, ok := p.parseSimpleSelector()
		if ok {
			selectors = append(selectors, sel)
		}

		p.tokenizer.SkipWhitespace()
		if ok {
			// Whatever follows the simple selector (a descendant chain)
			// up to the next ',' or '{' is not collected.
			for {
				next := p.tokenizer.Peek().Type
				if next == CommaToken || next == LeftBraceToken || next == RightBraceToken || next == EOFToken {
					break
				}
				p.tokenizer.Next()
			}
		}
		if p.tokenizer.Peek().Type == CommaToken {
			p.tokenizer.Next()
			continue
		}
		break
	}

	return selectors
}

// parseSimpleSelector parses one `#id`, `.class`, `*`, or tag-name atom
// sequence, terminated by whitespace, '{', or ','. No combinators: a
// whitespace gap ends the selector rather than starting a descendant
// combinator (see spec.md Non-goals).
func (p *Parser) parseSimpleSelector() (SimpleSelector, bool) {
	var sel SimpleSelector
	matchedAny := false

	token := p.tokenizer.Peek()
	if token.Type == DelimToken && token.Value == "*" {
		p.tokenizer.Next()
		matchedAny = true
	} else if token.Type == IdentToken {
		p.tokenizer.Next()
		sel.TagName = token.Value
		sel.HasTagName = true
		matchedAny = true
	}

	for {
		token = p.tokenizer.Peek()
		switch {
		case token.Type == HashToken:
			p.tokenizer.Next()
			sel.ID = token.Value
			sel.HasID = true
			matchedAny = true
		case token.Type == DelimToken && token.Value == ".":
			p.tokenizer.Next()
			name := p.tokenizer.Next()
			if name.Type == IdentToken {
				sel.Classes = append(sel.Classes, name.Value)
				matchedAny = true
			}
		case token.Type == LeftBracketToken:
			// Attribute selectors are not supported; skip the bracketed
			// group so the parser stays in sync.
			p.tokenizer.Next()
			for {
				t := p.tokenizer.Next()
				if t.Type == RightBracketToken || t.Type == EOFToken {
					break
				}
			}
		default:
			if !matchedAny {
				return SimpleSelector{}, false
			}
			return sel, true
		}
	}
}

// parseDeclarations parses `ident : value-sequence ;`* until a closing
// brace (if insideBlock) or EOF.
func (p *Parser) parseDeclarations(insideBlock bool) []Declaration {
	var decls []Declaration

	for {
		p.tokenizer.SkipWhitespace()

		token := p.tokenizer.Peek()
		if token.Type == EOFToken {
			break
		}
		if insideBlock && token.Type == RightBraceToken {
			break
		}

		decl, ok := p.parseDeclaration(insideBlock)
		if ok {
			decls = append(decls, decl)
		}

		p.tokenizer.SkipWhitespace()
		token = p.tokenizer.Peek()
		if token.Type == SemicolonToken {
			p.tokenizer.Next()
		} else if insideBlock && token.Type == RightBraceToken {
			break
		} else if !insideBlock && token.Type == EOFToken {
			break
		}
	}

	if insideBlock {
		p.tokenizer.SkipWhitespace()
		if p.tokenizer.Peek().Type == RightBraceToken {
			p.tokenizer.Next()
		} else {
			// Recovered from a malformed declaration mid-block: skip to
			// the rule's closing brace.
			for {
				t := p.tokenizer.Next()
				if t.Type == RightBraceToken || t.Type == EOFToken {
					break
				}
			}
		}
	}

	return decls
}

// parseDeclaration parses one `ident : value-sequence`. On a missing
// colon, the declaration is rejected and the caller's recovery (skip to
// next ';' or '}') takes over.
func (p *Parser) parseDeclaration(insideBlock bool) (Declaration, bool) {
	p.tokenizer.SkipWhitespace()

	name := p.tokenizer.Next()
	if name.Type != IdentToken {
		p.recoverToDeclarationBoundary(insideBlock)
		return Declaration{}, false
	}

	p.tokenizer.SkipWhitespace()
	if p.tokenizer.Next().Type != ColonToken {
		p.recoverToDeclarationBoundary(insideBlock)
		return Declaration{}, false
	}

	p.tokenizer.SkipWhitespace()
	values := p.parseValueSequence(insideBlock)

	return Declaration{Name: name.Value, Value: values}, true
}

// recoverToDeclarationBoundary discards tokens up to the next ';' or '}'
// (or EOF) after a malformed declaration.
func (p *Parser) recoverToDeclarationBoundary(insideBlock bool) {
	for {
		token := p.tokenizer.Peek()
		if token.Type == SemicolonToken || token.Type == EOFToken {
			return
		}
		if insideBlock && token.Type == RightBraceToken {
			return
		}
		p.tokenizer.Next()
	}
}

// parseValueSequence parses one or more Value atoms separated by
// whitespace, stopping at ';', '}' (if insideBlock), or EOF.
func (p *Parser) parseValueSequence(insideBlock bool) []Value {
	var values []Value

	for {
		p.tokenizer.SkipWhitespace()
		token := p.tokenizer.Peek()
		if token.Type == SemicolonToken || token.Type == EOFToken {
			break
		}
		if insideBlock && token.Type == RightBraceToken {
			break
		}

		v, ok := p.parseValueAtom()
		if !ok {
			break
		}
		values = append(values, v)
	}

	return values
}

// parseValueAtom parses a single Value: a keyword, a px/unitless
// dimension, a percentage, or an `rgb(...)` function.
func (p *Parser) parseValueAtom() (Value, bool) {
	token := p.tokenizer.Next()

	switch token.Type {
	case IdentToken:
		return KeywordValue(token.Value), true
	case DimensionToken:
		unit := UnitNone
		if token.Unit == "px" {
			unit = UnitPx
		}
		return DimensionValue(token.Num, unit), true
	case NumberToken:
		return DimensionValue(token.Num, UnitNone), true
	case PercentageToken:
		return PercentageValue(token.Num), true
	case HashToken:
		if rgb, ok := parseHexColor(token.Value); ok {
			return RgbValue(rgb), true
		}
		return Value{}, false
	case FunctionToken:
		if token.Value == "rgb" || token.Value == "rgba" {
			return p.parseRgbFunction()
		}
		p.skipFunctionArgs()
		return Value{}, false
	default:
		return Value{}, false
	}
}

// parseRgbFunction parses `rgb(n,n,n)` or `rgb(n,n,n,a)` (the opening
// '(' has already been consumed as part of the Function token). Each
// channel must be an integer in [0,255]; out of range yields no value,
// per spec.md's "RGB parsing" testable property.
func (p *Parser) parseRgbFunction() (Value, bool) {
	channels := make([]int, 0, 3)
	alpha := 1.0

	for i := 0; i < 4; i++ {
		p.tokenizer.SkipWhitespace()
		token := p.tokenizer.Next()
		if token.Type != NumberToken || (i < 3 && token.NumFlag != NumberIsInteger) {
			p.skipToCloseParen()
			return Value{}, false
		}
		if i < 3 {
			channels = append(channels, int(token.Num))
		} else {
			alpha = token.Num
		}

		p.tokenizer.SkipWhitespace()
		next := p.tokenizer.Peek()
		if next.Type == RightParenToken {
			p.tokenizer.Next()
			break
		}
		if next.Type == CommaToken {
			p.tokenizer.Next()
			continue
		}
		p.skipToCloseParen()
		return Value{}, false
	}

	if len(channels) != 3 {
		return Value{}, false
	}
	for _, c := range channels {
		if c < 0 || c > 255 {
			return Value{}, false
		}
	}

	return RgbValue(Rgb{R: uint8(channels[0]), G: uint8(channels[1]), B: uint8(channels[2]), A: alpha}), true
}

func (p *Parser) skipFunctionArgs() { p.skipToCloseParen() }

func (p *Parser) skipToCloseParen() {
	depth := 1
	for {
		token := p.tokenizer.Next()
		if token.Type == EOFToken {
			return
		}
		if token.Type == LeftParenToken {
			depth++
		}
		if token.Type == RightParenToken {
			depth--
			if depth == 0 {
				return
			}
		}
	}
}

// parseHexColor parses a #rgb or #rrggbb hash token body into an Rgb
// value; used for hex color literals inside declaration values.
func parseHexColor(hex string) (Rgb, bool) {
	expand := func(c byte) (byte, bool) {
		switch {
		case c >= '0' && c <= '9':
			return c - '0', true
		case c >= 'a' && c <= 'f':
			return c - 'a' + 10, true
		case c >= 'A' && c <= 'F':
			return c - 'A' + 10, true
		default:
			return 0, false
		}
	}
	hexByte := func(hi, lo byte) (byte, bool) {
		h, ok1 := expand(hi)
		l, ok2 := expand(lo)
		if !ok1 || !ok2 {
			return 0, false
		}
		return h<<4 | l, true
	}

	switch len(hex) {
	case 3:
		r, ok1 := hexByte(hex[0], hex[0])
		g, ok2 := hexByte(hex[1], hex[1])
		b, ok3 := hexByte(hex[2], hex[2])
		if !ok1 || !ok2 || !ok3 {
			return Rgb{}, false
		}
		return Rgb{R: r, G: g, B: b, A: 1}, true
	case 6:
		r, ok1 := hexByte(hex[0], hex[1])
		g, ok2 := hexByte(hex[2], hex[3])
		b, ok3 := hexByte(hex[4], hex[5])
		if !ok1 || !ok2 || !ok3 {
			return Rgb{}, false
		}
		return Rgb{R: r, G: g, B: b, A: 1}, true
	default:
		return Rgb{}, false
	}
}
