package props

import "github.com/carlosmndzg/ferrum/css"

// expandBox applies the standard CSS 1/2/3/4-value expansion rule to a
// box-model shorthand (margin, padding): 1 value sets all four sides, 2
// set (top/bottom, right/left), 3 set (top, right/left, bottom), 4 set
// each side individually.
func expandBox(values []css.Value) (top, right, bottom, left css.Value, ok bool) {
	switch len(values) {
	case 1:
		return values[0], values[0], values[0], values[0], true
	case 2:
		return values[0], values[1], values[0], values[1], true
	case 3:
		return values[0], values[1], values[2], values[1], true
	case 4:
		return values[0], values[1], values[2], values[3], true
	default:
		return css.Value{}, css.Value{}, css.Value{}, css.Value{}, false
	}
}

func marginShorthandDef() *Def {
	return &Def{
		Name:      "margin",
		Shorthand: true,
		Build: func(values []css.Value) []LonghandValue {
			top, right, bottom, left, ok := expandBox(values)
			if !ok {
				return nil
			}
			for _, v := range []css.Value{top, right, bottom, left} {
				if !marginWidth(v) {
					return nil
				}
			}
			return []LonghandValue{
				{Name: "margin-top", Value: top},
				{Name: "margin-right", Value: right},
				{Name: "margin-bottom", Value: bottom},
				{Name: "margin-left", Value: left},
			}
		},
	}
}

func paddingShorthandDef() *Def {
	return &Def{
		Name:      "padding",
		Shorthand: true,
		Build: func(values []css.Value) []LonghandValue {
			top, right, bottom, left, ok := expandBox(values)
			if !ok {
				return nil
			}
			for _, v := range []css.Value{top, right, bottom, left} {
				if !paddingWidth(v) {
					return nil
				}
			}
			return []LonghandValue{
				{Name: "padding-top", Value: top},
				{Name: "padding-right", Value: right},
				{Name: "padding-bottom", Value: bottom},
				{Name: "padding-left", Value: left},
			}
		},
	}
}

// borderShorthandDef classifies border's value atoms into at most one
// width, one style, and one color, in any order, the way CSS itself
// allows ("border: 1px solid black" and "border: solid black 1px" are
// both valid). Any atom that cannot be classified, or any role filled
// twice, invalidates the whole declaration.
func borderShorthandDef() *Def {
	return &Def{
		Name:      "border",
		Shorthand: true,
		Build: func(values []css.Value) []LonghandValue {
			if len(values) == 0 || len(values) > 3 {
				return nil
			}
			var width, style, color *css.Value
			for i := range values {
				v := values[i]
				switch {
				case borderWidthValid(v) && width == nil:
					width = &v
				case borderStyleValid(v) && style == nil:
					style = &v
				case colorValid(v) && color == nil:
					color = &v
				default:
					return nil
				}
			}
			var out []LonghandValue
			if width != nil {
				out = append(out, LonghandValue{Name: "border-width", Value: *width})
			}
			if style != nil {
				out = append(out, LonghandValue{Name: "border-style", Value: *style})
			}
			if color != nil {
				out = append(out, LonghandValue{Name: "border-color", Value: colorResolved(*color)})
			}
			return out
		},
	}
}
