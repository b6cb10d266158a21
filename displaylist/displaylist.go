// Package displaylist walks a finished layout tree and emits the
// resolution-independent draw commands a rasterizer consumes: filled
// rectangles, borders, text runs, and images, in paint order.
//
// Spec references:
// - CSS 2.1 §8 Box model (padding/border box geometry drawn here)
// - CSS 2.1 §14 Colors and backgrounds
package displaylist

import (
	"github.com/carlosmndzg/ferrum/css"
	"github.com/carlosmndzg/ferrum/dom"
	"github.com/carlosmndzg/ferrum/layout"
	"github.com/carlosmndzg/ferrum/style/props"
)

// DrawRectangle fills the padding box with a background color.
type DrawRectangle struct {
	X, Y, Width, Height float64
	Color               css.Rgb
}

// DrawBorder paints the four border edges around the padding box as
// filled rectangles, each Width thick.
type DrawBorder struct {
	X, Y, Width, Height float64
	BorderWidth         float64
	Color               css.Rgb
}

// DrawText paints one shaped word at its already-computed baseline
// position.
type DrawText struct {
	X, Y       float64
	Text       string
	FontSize   float64
	FontWeight int
	Color      css.Rgb
}

// DrawImage paints a replaced element's resource, resized to the
// content box. The rasterizer is responsible for the actual resize
// (nearest-neighbor, per spec.md §4.10) and for resolving Path.
type DrawImage struct {
	X, Y, Width, Height float64
	Path                string
}

// Command is the closed variant set a display list is built from.
type Command interface{ isCommand() }

func (DrawRectangle) isCommand() {}
func (DrawBorder) isCommand()    {}
func (DrawText) isCommand()      {}
func (DrawImage) isCommand()     {}

// DisplayList is a flat, draw-ordered command sequence plus the set of
// font weights its DrawText commands reference, so a rasterizer can
// preload every face it will need before painting the first word.
type DisplayList struct {
	Commands    []Command
	FontWeights map[int]bool
}

// Build walks root in pre-order (a node's own background/border paint
// before its children's) and returns the resulting display list.
func Build(root *layout.Node) *DisplayList {
	dl := &DisplayList{FontWeights: make(map[int]bool)}
	walk(root, dl)
	return dl
}

func walk(node *layout.Node, dl *DisplayList) {
	switch node.Kind {
	case layout.BlockBox, layout.InlineBox:
		paintBox(node, dl)
	case layout.WordBox:
		paintWord(node, dl)
	}

	for _, child := range node.Children {
		walk(child, dl)
	}
}

func paintBox(node *layout.Node, dl *DisplayList) {
	styled := node.Styled
	if styled == nil {
		return
	}

	paddingBox := node.Dimensions.PaddingBox()
	bg := styled.Value("background-color")
	if bg.Kind == css.ValueRgb && bg.Color.A > 0 {
		dl.Commands = append(dl.Commands, DrawRectangle{
			X: paddingBox.X, Y: paddingBox.Y, Width: paddingBox.Width, Height: paddingBox.Height,
			Color: bg.Color,
		})
	}

	borderStyle := styled.Value("border-style")
	if !borderStyle.IsKeyword("none") && !borderStyle.IsKeyword("hidden") {
		borderWidth := props.BorderWidthNumeric(styled.Value("border-width"), borderStyle)
		if borderWidth > 0 {
			borderColor := props.ResolveBorderColor(styled.Value("border-color"), styled.Value("color"))
			borderBox := node.Dimensions.BorderBox()
			dl.Commands = append(dl.Commands, DrawBorder{
				X: borderBox.X, Y: borderBox.Y, Width: borderBox.Width, Height: borderBox.Height,
				BorderWidth: borderWidth, Color: borderColor.Color,
			})
		}
	}

	if styled.Node.Type == dom.ElementNode && styled.Node.Data == "img" {
		src := styled.Node.GetAttribute("src")
		if src != "" {
			content := node.Dimensions.Content
			dl.Commands = append(dl.Commands, DrawImage{
				X: content.X, Y: content.Y, Width: content.Width, Height: content.Height,
				Path: src,
			})
		}
	}
}

func paintWord(node *layout.Node, dl *DisplayList) {
	word := node.Word
	dl.Commands = append(dl.Commands, DrawText{
		X: node.Dimensions.Content.X, Y: node.Dimensions.Content.Y,
		Text: word.Text, FontSize: word.FontSize, FontWeight: word.FontWeight,
		Color: word.Color,
	})
	dl.FontWeights[word.FontWeight] = true
}
