// Package props implements the process-wide Property Registry: typed
// property definitions, shorthand expansion, inheritance flags, initial
// values, and the validation predicates each property's maybe_new builds
// on.
//
// Grounded on the reference implementation's
// style::properties::PropertyRegistry and style::validations::Validations
// (an exhaustive set of small, composable predicates over css.Value).
package props

import "github.com/carlosmndzg/ferrum/css"

// length reports whether v is a Dimension in px, or a zero dimension of
// any unit (CSS treats 0 as unit-less regardless of declared unit).
func length(v css.Value) bool {
	if v.Kind != css.ValueDimension {
		return false
	}
	if v.Num == 0 {
		return true
	}
	return v.Unit == css.UnitPx
}

func percentage(v css.Value) bool { return v.Kind == css.ValuePercentage }

func keyword(v css.Value, allowed ...string) bool {
	if v.Kind != css.ValueKeyword {
		return false
	}
	for _, k := range allowed {
		if v.Keyword == k {
			return true
		}
	}
	return false
}

func wideKeyword(v css.Value) bool { return keyword(v, "inherit", "initial", "unset") }

func marginWidth(v css.Value) bool {
	return length(v) || percentage(v) || keyword(v, "auto")
}

func paddingWidth(v css.Value) bool {
	return length(v) || percentage(v)
}

func borderStyleValid(v css.Value) bool {
	return keyword(v, "none", "hidden", "solid")
}

func borderWidthValid(v css.Value) bool {
	return length(v) || keyword(v, "thin", "medium", "thick")
}

// numbers reports whether v is an integral, unitless Dimension whose
// value is one of the given whole numbers.
func numbers(v css.Value, allowed ...int) bool {
	if v.Kind != css.ValueDimension || v.Unit != css.UnitNone {
		return false
	}
	if v.Num != float64(int(v.Num)) {
		return false
	}
	n := int(v.Num)
	for _, a := range allowed {
		if n == a {
			return true
		}
	}
	return false
}

func fontWeightValid(v css.Value) bool {
	return keyword(v, "normal", "bold") ||
		numbers(v, 100, 200, 300, 400, 500, 600, 700, 800, 900)
}

func number(v css.Value) bool {
	return v.Kind == css.ValueDimension && v.Unit == css.UnitNone
}

// namedColors is the CSS Level 3 extended color keyword palette, mapped
// to its exact channels (https://www.w3.org/TR/css-color-3/#svg-color).
var namedColors = map[string]css.Rgb{
	"transparent": {R: 0, G: 0, B: 0, A: 0},

	"black": {R: 0, G: 0, B: 0, A: 1}, "silver": {R: 192, G: 192, B: 192, A: 1},
	"gray": {R: 128, G: 128, B: 128, A: 1}, "grey": {R: 128, G: 128, B: 128, A: 1},
	"white": {R: 255, G: 255, B: 255, A: 1}, "maroon": {R: 128, G: 0, B: 0, A: 1},
	"red": {R: 255, G: 0, B: 0, A: 1}, "purple": {R: 128, G: 0, B: 128, A: 1},
	"fuchsia": {R: 255, G: 0, B: 255, A: 1}, "magenta": {R: 255, G: 0, B: 255, A: 1},
	"green": {R: 0, G: 128, B: 0, A: 1}, "lime": {R: 0, G: 255, B: 0, A: 1},
	"olive": {R: 128, G: 128, B: 0, A: 1}, "yellow": {R: 255, G: 255, B: 0, A: 1},
	"navy": {R: 0, G: 0, B: 128, A: 1}, "blue": {R: 0, G: 0, B: 255, A: 1},
	"teal": {R: 0, G: 128, B: 128, A: 1}, "aqua": {R: 0, G: 255, B: 255, A: 1},
	"cyan": {R: 0, G: 255, B: 255, A: 1}, "orange": {R: 255, G: 165, B: 0, A: 1},

	"aliceblue": {R: 240, G: 248, B: 255, A: 1}, "antiquewhite": {R: 250, G: 235, B: 215, A: 1},
	"aquamarine": {R: 127, G: 255, B: 212, A: 1}, "azure": {R: 240, G: 255, B: 255, A: 1},
	"beige": {R: 245, G: 245, B: 220, A: 1}, "bisque": {R: 255, G: 228, B: 196, A: 1},
	"blanchedalmond": {R: 255, G: 235, B: 205, A: 1}, "blueviolet": {R: 138, G: 43, B: 226, A: 1},
	"brown": {R: 165, G: 42, B: 42, A: 1}, "burlywood": {R: 222, G: 184, B: 135, A: 1},
	"cadetblue": {R: 95, G: 158, B: 160, A: 1}, "chartreuse": {R: 127, G: 255, B: 0, A: 1},
	"chocolate": {R: 210, G: 105, B: 30, A: 1}, "coral": {R: 255, G: 127, B: 80, A: 1},
	"cornflowerblue": {R: 100, G: 149, B: 237, A: 1}, "cornsilk": {R: 255, G: 248, B: 220, A: 1},
	"crimson": {R: 220, G: 20, B: 60, A: 1}, "darkblue": {R: 0, G: 0, B: 139, A: 1},
	"darkcyan": {R: 0, G: 139, B: 139, A: 1}, "darkgoldenrod": {R: 184, G: 134, B: 11, A: 1},
	"darkgray": {R: 169, G: 169, B: 169, A: 1}, "darkgrey": {R: 169, G: 169, B: 169, A: 1},
	"darkgreen": {R: 0, G: 100, B: 0, A: 1}, "darkkhaki": {R: 189, G: 183, B: 107, A: 1},
	"darkmagenta": {R: 139, G: 0, B: 139, A: 1}, "darkolivegreen": {R: 85, G: 107, B: 47, A: 1},
	"darkorange": {R: 255, G: 140, B: 0, A: 1}, "darkorchid": {R: 153, G: 50, B: 204, A: 1},
	"darkred": {R: 139, G: 0, B: 0, A: 1}, "darksalmon": {R: 233, G: 150, B: 122, A: 1},
	"darkseagreen": {R: 143, G: 188, B: 143, A: 1}, "darkslateblue": {R: 72, G: 61, B: 139, A: 1},
	"darkslategray": {R: 47, G: 79, B: 79, A: 1}, "darkslategrey": {R: 47, G: 79, B: 79, A: 1},
	"darkturquoise": {R: 0, G: 206, B: 209, A: 1}, "darkviolet": {R: 148, G: 0, B: 211, A: 1},
	"deeppink": {R: 255, G: 20, B: 147, A: 1}, "deepskyblue": {R: 0, G: 191, B: 255, A: 1},
	"dimgray": {R: 105, G: 105, B: 105, A: 1}, "dimgrey": {R: 105, G: 105, B: 105, A: 1},
	"dodgerblue": {R: 30, G: 144, B: 255, A: 1}, "firebrick": {R: 178, G: 34, B: 34, A: 1},
	"floralwhite": {R: 255, G: 250, B: 240, A: 1}, "forestgreen": {R: 34, G: 139, B: 34, A: 1},
	"gainsboro": {R: 220, G: 220, B: 220, A: 1}, "ghostwhite": {R: 248, G: 248, B: 255, A: 1},
	"gold": {R: 255, G: 215, B: 0, A: 1}, "goldenrod": {R: 218, G: 165, B: 32, A: 1},
	"greenyellow": {R: 173, G: 255, B: 47, A: 1}, "honeydew": {R: 240, G: 255, B: 240, A: 1},
	"hotpink": {R: 255, G: 105, B: 180, A: 1}, "indianred": {R: 205, G: 92, B: 92, A: 1},
	"indigo": {R: 75, G: 0, B: 130, A: 1}, "ivory": {R: 255, G: 255, B: 240, A: 1},
	"khaki": {R: 240, G: 230, B: 140, A: 1}, "lavender": {R: 230, G: 230, B: 250, A: 1},
	"lavenderblush": {R: 255, G: 240, B: 245, A: 1}, "lawngreen": {R: 124, G: 252, B: 0, A: 1},
	"lemonchiffon": {R: 255, G: 250, B: 205, A: 1}, "lightblue": {R: 173, G: 216, B: 230, A: 1},
	"lightcoral": {R: 240, G: 128, B: 128, A: 1}, "lightcyan": {R: 224, G: 255, B: 255, A: 1},
	"lightgoldenrodyellow": {R: 250, G: 250, B: 210, A: 1}, "lightgray": {R: 211, G: 211, B: 211, A: 1},
	"lightgreen": {R: 144, G: 238, B: 144, A: 1}, "lightgrey": {R: 211, G: 211, B: 211, A: 1},
	"lightpink": {R: 255, G: 182, B: 193, A: 1}, "lightsalmon": {R: 255, G: 160, B: 122, A: 1},
	"lightseagreen": {R: 32, G: 178, B: 170, A: 1}, "lightskyblue": {R: 135, G: 206, B: 250, A: 1},
	"lightslategray": {R: 119, G: 136, B: 153, A: 1}, "lightslategrey": {R: 119, G: 136, B: 153, A: 1},
	"lightsteelblue": {R: 176, G: 196, B: 222, A: 1}, "lightyellow": {R: 255, G: 255, B: 224, A: 1},
	"limegreen": {R: 50, G: 205, B: 50, A: 1}, "linen": {R: 250, G: 240, B: 230, A: 1},
	"mediumaquamarine": {R: 102, G: 205, B: 170, A: 1}, "mediumblue": {R: 0, G: 0, B: 205, A: 1},
	"mediumorchid": {R: 186, G: 85, B: 211, A: 1}, "mediumpurple": {R: 147, G: 112, B: 219, A: 1},
	"mediumseagreen": {R: 60, G: 179, B: 113, A: 1}, "mediumslateblue": {R: 123, G: 104, B: 238, A: 1},
	"mediumspringgreen": {R: 0, G: 250, B: 154, A: 1}, "mediumturquoise": {R: 72, G: 209, B: 204, A: 1},
	"mediumvioletred": {R: 199, G: 21, B: 133, A: 1}, "midnightblue": {R: 25, G: 25, B: 112, A: 1},
	"mintcream": {R: 245, G: 255, B: 250, A: 1}, "mistyrose": {R: 255, G: 228, B: 225, A: 1},
	"moccasin": {R: 255, G: 228, B: 181, A: 1}, "navajowhite": {R: 255, G: 222, B: 173, A: 1},
	"oldlace": {R: 253, G: 245, B: 230, A: 1}, "olivedrab": {R: 107, G: 142, B: 35, A: 1},
	"orangered": {R: 255, G: 69, B: 0, A: 1}, "orchid": {R: 218, G: 112, B: 214, A: 1},
	"palegoldenrod": {R: 238, G: 232, B: 170, A: 1}, "palegreen": {R: 152, G: 251, B: 152, A: 1},
	"paleturquoise": {R: 175, G: 238, B: 238, A: 1}, "palevioletred": {R: 219, G: 112, B: 147, A: 1},
	"papayawhip": {R: 255, G: 239, B: 213, A: 1}, "peachpuff": {R: 255, G: 218, B: 185, A: 1},
	"peru": {R: 205, G: 133, B: 63, A: 1}, "pink": {R: 255, G: 192, B: 203, A: 1},
	"plum": {R: 221, G: 160, B: 221, A: 1}, "powderblue": {R: 176, G: 224, B: 230, A: 1},
	"rebeccapurple": {R: 102, G: 51, B: 153, A: 1}, "rosybrown": {R: 188, G: 143, B: 143, A: 1},
	"royalblue": {R: 65, G: 105, B: 225, A: 1}, "saddlebrown": {R: 139, G: 69, B: 19, A: 1},
	"salmon": {R: 250, G: 128, B: 114, A: 1}, "sandybrown": {R: 244, G: 164, B: 96, A: 1},
	"seagreen": {R: 46, G: 139, B: 87, A: 1}, "seashell": {R: 255, G: 245, B: 238, A: 1},
	"sienna": {R: 160, G: 82, B: 45, A: 1}, "skyblue": {R: 135, G: 206, B: 235, A: 1},
	"slateblue": {R: 106, G: 90, B: 205, A: 1}, "slategray": {R: 112, G: 128, B: 144, A: 1},
	"slategrey": {R: 112, G: 128, B: 144, A: 1}, "snow": {R: 255, G: 250, B: 250, A: 1},
	"springgreen": {R: 0, G: 255, B: 127, A: 1}, "steelblue": {R: 70, G: 130, B: 180, A: 1},
	"tan": {R: 210, G: 180, B: 140, A: 1}, "thistle": {R: 216, G: 191, B: 216, A: 1},
	"tomato": {R: 255, G: 99, B: 71, A: 1}, "turquoise": {R: 64, G: 224, B: 208, A: 1},
	"violet": {R: 238, G: 130, B: 238, A: 1}, "wheat": {R: 245, G: 222, B: 179, A: 1},
	"whitesmoke": {R: 245, G: 245, B: 245, A: 1}, "yellowgreen": {R: 154, G: 205, B: 50, A: 1},
}

func colorValid(v css.Value) bool {
	if v.Kind == css.ValueRgb {
		return true
	}
	if v.Kind != css.ValueKeyword {
		return false
	}
	_, ok := namedColors[v.Keyword]
	return ok
}

// colorKeywordToRgb resolves a named-color keyword to its Rgb value.
func colorKeywordToRgb(keyword string) (css.Rgb, bool) {
	rgb, ok := namedColors[keyword]
	return rgb, ok
}
