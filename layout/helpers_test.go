package layout

import (
	"github.com/carlosmndzg/ferrum/css"
	"github.com/carlosmndzg/ferrum/dom"
	"github.com/carlosmndzg/ferrum/style"
)

// defaultValues returns the registry's initial values for every
// property handleBlock/handleInline/buildBox touch, so tests only need
// to override the handful a scenario cares about.
func defaultValues() map[string]css.Value {
	return map[string]css.Value{
		"display":       css.KeywordValue("inline"),
		"width":         css.KeywordValue("auto"),
		"height":        css.KeywordValue("auto"),
		"margin-top":    css.DimensionValue(0, css.UnitPx),
		"margin-right":  css.DimensionValue(0, css.UnitPx),
		"margin-bottom": css.DimensionValue(0, css.UnitPx),
		"margin-left":   css.DimensionValue(0, css.UnitPx),
		"padding-top":   css.DimensionValue(0, css.UnitPx),
		"padding-right": css.DimensionValue(0, css.UnitPx),
		"padding-bottom": css.DimensionValue(0, css.UnitPx),
		"padding-left":  css.DimensionValue(0, css.UnitPx),
		"border-width":  css.KeywordValue("medium"),
		"border-style":  css.KeywordValue("none"),
		"border-color":  css.NotDeclaredValue,
		"color":         css.RgbValue(css.Rgb{R: 0, G: 0, B: 0, A: 1}),
		"font-size":     css.DimensionValue(16, css.UnitPx),
		"font-weight":   css.DimensionValue(400, css.UnitNone),
		"line-height":   css.DimensionValue(1.2, css.UnitNone),
		"text-align":    css.KeywordValue("left"),
	}
}

func withOverrides(overrides map[string]css.Value) map[string]css.Value {
	values := defaultValues()
	for k, v := range overrides {
		values[k] = v
	}
	return values
}

// el builds a StyledNode for an element, with the given resolved values
// and already-built children.
func el(tag string, values map[string]css.Value, children ...*style.StyledNode) *style.StyledNode {
	node := dom.NewElement(tag)
	styled := &style.StyledNode{Node: node, Values: values}
	for _, child := range children {
		node.AppendChild(child.Node)
		styled.Children = append(styled.Children, child)
	}
	return styled
}

// text builds a StyledNode for a text node, inheriting the given
// values (as a real cascade would copy them down from the parent).
func text(content string, values map[string]css.Value) *style.StyledNode {
	node := dom.NewText(content)
	return &style.StyledNode{Node: node, Values: values}
}

// fakeFonts is a deterministic fontmetrics.Provider: every rune costs a
// fixed width, scaled by font size relative to a 16px baseline.
type fakeFonts struct {
	perRune float64
}

func (f fakeFonts) WordWidth(word string, size float64, weight int) float64 {
	scale := size / 16
	return float64(len([]rune(word))) * f.perRune * scale
}

func (f fakeFonts) LineMetrics(size float64, weight int) (float64, float64) {
	return size * 0.8, size * 0.2
}

// fakeImages is a deterministic imagemetrics.Provider keyed by src.
type fakeImages struct {
	sizes map[string][2]float64
}

func (f fakeImages) IntrinsicSize(src string) (float64, float64, bool) {
	dims, ok := f.sizes[src]
	return dims[0], dims[1], ok
}

func testEnv() *Environment {
	return &Environment{
		Fonts:  fakeFonts{perRune: 10},
		Images: fakeImages{sizes: map[string][2]float64{}},
	}
}
