// Package layout builds the box tree from a styled tree and computes its
// geometry: the block formatting context for block-level boxes, and the
// inline formatting context for word shaping, line breaking, and text
// alignment.
//
// Spec references:
// - CSS 2.1 §8 Box model: https://www.w3.org/TR/CSS21/box.html
// - CSS 2.1 §9 Visual formatting model: https://www.w3.org/TR/CSS21/visuren.html
// - CSS 2.1 §10 Visual formatting model details: https://www.w3.org/TR/CSS21/visudet.html
package layout

import (
	"github.com/carlosmndzg/ferrum/css"
	"github.com/carlosmndzg/ferrum/style"
)

// Rect is an axis-aligned box in the viewport's coordinate space.
type Rect struct {
	X, Y, Width, Height float64
}

// EdgeSizes holds the four edge widths of a box's padding, border, or
// margin area.
type EdgeSizes struct {
	Top, Right, Bottom, Left float64
}

// Dimensions is the full box model for one layout node: a content rect
// plus the three surrounding edge areas.
type Dimensions struct {
	Content Rect
	Padding EdgeSizes
	Border  EdgeSizes
	Margin  EdgeSizes
}

// PaddingBox expands Content by Padding.
func (d Dimensions) PaddingBox() Rect {
	return expandRect(d.Content, d.Padding)
}

// BorderBox expands Content by Padding and Border.
func (d Dimensions) BorderBox() Rect {
	r := expandRect(d.Content, d.Padding)
	return expandRect(r, d.Border)
}

func expandRect(r Rect, edges EdgeSizes) Rect {
	return Rect{
		X:      r.X - edges.Left,
		Y:      r.Y - edges.Top,
		Width:  r.Width + edges.Left + edges.Right,
		Height: r.Height + edges.Top + edges.Bottom,
	}
}

// FormattingContext selects which algorithm a Block box's children are
// laid out with.
type FormattingContext int

const (
	BlockContext FormattingContext = iota
	InlineContext
)

// BoxKind tags the closed BoxType variant set named by the box tree
// model: a Block or Inline box carries a reference back into the styled
// tree; Anonymous, Line, and Word never do.
type BoxKind int

const (
	BlockBox BoxKind = iota
	InlineBox
	AnonymousBox
	LineBox
	WordBox
)

// WordData is the payload of a Word box: the shaped text run plus every
// inherited property the inline formatting context and the display-list
// builder need, captured at word-extraction time so neither has to walk
// back into the styled tree.
type WordData struct {
	Text        string
	Width       float64
	FontSize    float64
	LineHeight  float64
	FontWeight  int
	Color       css.Rgb
	GlyphHeight float64 // ascent+descent at (FontSize, FontWeight), from fontmetrics.Provider.LineMetrics
}

// Node is one box in the layout tree. Which fields are meaningful
// depends on Kind: Block and Inline carry Styled and, for Block, FC;
// Word carries Word; Anonymous and Line carry neither.
type Node struct {
	Kind       BoxKind
	Styled     *style.StyledNode
	FC         FormattingContext
	Word       WordData
	Dimensions Dimensions
	Children   []*Node
}

func newBlockNode(styled *style.StyledNode, fc FormattingContext) *Node {
	return &Node{Kind: BlockBox, Styled: styled, FC: fc}
}

func newInlineNode(styled *style.StyledNode) *Node {
	return &Node{Kind: InlineBox, Styled: styled}
}

func newAnonymousNode() *Node {
	return &Node{Kind: AnonymousBox}
}

func newLineNode() *Node {
	return &Node{Kind: LineBox}
}

func newWordNode(word WordData) *Node {
	return &Node{Kind: WordBox, Word: word}
}
