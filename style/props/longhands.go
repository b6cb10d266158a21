package props

import "github.com/carlosmndzg/ferrum/css"

// simple builds a Def for a non-shorthand property whose declaration is a
// single value atom validated by valid and, if valid, stored verbatim.
func simple(name string, inheritable bool, valid func(css.Value) bool, initial css.Value) *Def {
	return &Def{
		Name:        name,
		Inheritable: inheritable,
		Initial:     []LonghandValue{{Name: name, Value: initial}},
		Build: func(values []css.Value) []LonghandValue {
			if len(values) != 1 || !valid(values[0]) {
				return nil
			}
			return []LonghandValue{{Name: name, Value: values[0]}}
		},
	}
}

// sideDef builds one of the four margin-* or padding-* longhands. The
// shorthand expanders in shorthands.go do not call it; they validate
// each side with the same predicates (marginWidth, paddingWidth).
func sideDef(name string, inheritable bool, valid func(css.Value) bool, initial css.Value) *Def {
	return simple(name, inheritable, valid, initial)
}

func colorDef() *Def {
	return &Def{
		Name:        "color",
		Inheritable: true,
		Initial:     []LonghandValue{{Name: "color", Value: colorResolved(css.KeywordValue("black"))}},
		Build: func(values []css.Value) []LonghandValue {
			if len(values) != 1 || !colorValid(values[0]) {
				return nil
			}
			return []LonghandValue{{Name: "color", Value: colorResolved(values[0])}}
		},
	}
}

func backgroundColorDef() *Def {
	return &Def{
		Name:        "background-color",
		Inheritable: false,
		Initial:     []LonghandValue{{Name: "background-color", Value: css.RgbValue(css.Rgb{R: 0, G: 0, B: 0, A: 0})}},
		Build: func(values []css.Value) []LonghandValue {
			if len(values) != 1 || !colorValid(values[0]) {
				return nil
			}
			return []LonghandValue{{Name: "background-color", Value: colorResolved(values[0])}}
		},
	}
}

// colorResolved normalizes a valid color Value to an rgb-kind Value:
// named keywords are looked up, rgb()/rgba() atoms pass through as-is.
func colorResolved(v css.Value) css.Value {
	if v.Kind == css.ValueRgb {
		return v
	}
	if rgb, ok := colorKeywordToRgb(v.Keyword); ok {
		return css.RgbValue(rgb)
	}
	return v
}

func displayDef() *Def {
	return &Def{
		Name:        "display",
		Inheritable: false,
		Initial:     []LonghandValue{{Name: "display", Value: css.KeywordValue("inline")}},
		Build: func(values []css.Value) []LonghandValue {
			if len(values) != 1 || !keyword(values[0], "block", "inline", "none") {
				return nil
			}
			return []LonghandValue{{Name: "display", Value: values[0]}}
		},
	}
}

func fontSizeDef() *Def {
	return &Def{
		Name:        "font-size",
		Inheritable: true,
		Initial:     []LonghandValue{{Name: "font-size", Value: css.DimensionValue(css.BaseFontHeight, css.UnitPx)}},
		Build: func(values []css.Value) []LonghandValue {
			if len(values) != 1 {
				return nil
			}
			v := values[0]
			if length(v) || percentage(v) {
				return []LonghandValue{{Name: "font-size", Value: v}}
			}
			if v.Kind == css.ValueKeyword {
				if px := css.ParseFontSize(v); px != 0 {
					return []LonghandValue{{Name: "font-size", Value: css.DimensionValue(px, css.UnitPx)}}
				}
			}
			return nil
		},
	}
}

func fontWeightDef() *Def {
	return &Def{
		Name:        "font-weight",
		Inheritable: true,
		Initial:     []LonghandValue{{Name: "font-weight", Value: css.KeywordValue("normal")}},
		Build: func(values []css.Value) []LonghandValue {
			if len(values) != 1 || !fontWeightValid(values[0]) {
				return nil
			}
			return []LonghandValue{{Name: "font-weight", Value: values[0]}}
		},
	}
}

func heightDef() *Def {
	return &Def{
		Name:        "height",
		Inheritable: false,
		Initial:     []LonghandValue{{Name: "height", Value: css.KeywordValue("auto")}},
		Build: func(values []css.Value) []LonghandValue {
			if len(values) != 1 || !(length(values[0]) || percentage(values[0]) || keyword(values[0], "auto")) {
				return nil
			}
			return []LonghandValue{{Name: "height", Value: values[0]}}
		},
	}
}

func widthDef() *Def {
	return &Def{
		Name:        "width",
		Inheritable: false,
		Initial:     []LonghandValue{{Name: "width", Value: css.KeywordValue("auto")}},
		Build: func(values []css.Value) []LonghandValue {
			if len(values) != 1 || !(length(values[0]) || percentage(values[0]) || keyword(values[0], "auto")) {
				return nil
			}
			return []LonghandValue{{Name: "width", Value: values[0]}}
		},
	}
}

func lineHeightDef() *Def {
	return &Def{
		Name:        "line-height",
		Inheritable: true,
		Initial:     []LonghandValue{{Name: "line-height", Value: css.DimensionValue(1.2, css.UnitNone)}},
		Build: func(values []css.Value) []LonghandValue {
			if len(values) != 1 || !number(values[0]) {
				return nil
			}
			return []LonghandValue{{Name: "line-height", Value: values[0]}}
		},
	}
}

func textAlignDef() *Def {
	return &Def{
		Name:        "text-align",
		Inheritable: true,
		Initial:     []LonghandValue{{Name: "text-align", Value: css.KeywordValue("left")}},
		Build: func(values []css.Value) []LonghandValue {
			if len(values) != 1 || !keyword(values[0], "left", "right", "center", "justify") {
				return nil
			}
			return []LonghandValue{{Name: "text-align", Value: values[0]}}
		},
	}
}

func borderStyleDef() *Def {
	return &Def{
		Name:        "border-style",
		Inheritable: false,
		Initial:     []LonghandValue{{Name: "border-style", Value: css.KeywordValue("none")}},
		Build: func(values []css.Value) []LonghandValue {
			if len(values) != 1 || !borderStyleValid(values[0]) {
				return nil
			}
			return []LonghandValue{{Name: "border-style", Value: values[0]}}
		},
	}
}

func borderWidthDef() *Def {
	return &Def{
		Name:        "border-width",
		Inheritable: false,
		Initial:     []LonghandValue{{Name: "border-width", Value: css.KeywordValue("medium")}},
		Build: func(values []css.Value) []LonghandValue {
			if len(values) != 1 || !borderWidthValid(values[0]) {
				return nil
			}
			return []LonghandValue{{Name: "border-width", Value: values[0]}}
		},
	}
}

func borderColorDef() *Def {
	return &Def{
		Name:        "border-color",
		Inheritable: false,
		Initial:     []LonghandValue{{Name: "border-color", Value: css.NotDeclaredValue}},
		Build: func(values []css.Value) []LonghandValue {
			if len(values) != 1 || !colorValid(values[0]) {
				return nil
			}
			return []LonghandValue{{Name: "border-color", Value: colorResolved(values[0])}}
		},
	}
}
