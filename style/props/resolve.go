package props

import "github.com/carlosmndzg/ferrum/css"

// IsAuto reports whether v is the keyword "auto".
func IsAuto(v css.Value) bool { return keyword(v, "auto") }

// IsPercentage reports whether v is a Percentage value.
func IsPercentage(v css.Value) bool { return v.Kind == css.ValuePercentage }

// ActualLength resolves a width/height/margin/padding Value against a
// base (the containing block's content width, per CSS: even vertical
// margins/paddings resolve against the containing block's *width*).
// "auto" and any other non-numeric value resolve to 0, matching
// original_source's Width::actual_value/MarginTop::actual_value.
func ActualLength(v css.Value, base float64) float64 {
	switch v.Kind {
	case css.ValueDimension:
		return v.Num
	case css.ValuePercentage:
		return base * v.Num / 100
	default:
		return 0
	}
}

// FontWeightNumeric resolves a font-weight Value (numeric or keyword) to
// its CSS numeric weight.
func FontWeightNumeric(v css.Value) int {
	if v.Kind == css.ValueDimension {
		return int(v.Num)
	}
	switch v.Keyword {
	case "bold":
		return 700
	default:
		return 400
	}
}

// BorderWidthNumeric resolves border-width against border-style: a
// "none" or "hidden" style zeroes the border regardless of the declared
// width, per original_source's BorderWidth::actual_value.
func BorderWidthNumeric(width, style css.Value) float64 {
	if keyword(style, "none", "hidden") {
		return 0
	}
	if width.Kind == css.ValueDimension {
		return width.Num
	}
	switch width.Keyword {
	case "thin":
		return 1
	case "thick":
		return 5
	default: // "medium"
		return 3
	}
}

// ResolveBorderColor substitutes the current `color` value when
// border-color was never declared (css.ValueNotDeclared), matching
// original_source's BorderColor::actual_value "currentcolor" fallback.
func ResolveBorderColor(borderColor, color css.Value) css.Value {
	if borderColor.Kind == css.ValueNotDeclared {
		return color
	}
	return borderColor
}
