package layout

import (
	"testing"

	"github.com/carlosmndzg/ferrum/css"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inlineNode wraps a text run as the Inline-kind box handleInline
// expects as input (what buildBox would have produced for a bare text
// child of a block-context parent, before word extraction runs).
func inlineNode(content string, values map[string]css.Value) *Node {
	return &Node{Kind: InlineBox, Styled: text(content, values)}
}

// TestHandleInlineLineBreaking reproduces end-to-end scenario 5: a
// paragraph "one two three four" in a container that fits exactly
// "one two" breaks into two lines: ["one"," ","two"] and
// ["three"," ","four"].
func TestHandleInlineLineBreaking(t *testing.T) {
	values := defaultValues()
	node := &Node{Kind: BlockBox, FC: InlineContext, Children: []*Node{
		inlineNode("one two three four", values),
	}}
	// fakeFonts charges 10px/rune at the default 16px font-size: "one"
	// and "two" are 30px each, "three"/"four" are 50px/40px, with a
	// 10px space between every pair. "one two " (80px) plus "three"
	// (50px) overflows a 100px container, but "three four" (100px)
	// fits together on the next line.
	node.Dimensions.Content.Width = 100

	require.NoError(t, handleInline(node, css.KeywordValue("left"), nil, testEnv()))

	require.Len(t, node.Children, 2)

	line1 := wordTexts(node.Children[0])
	line2 := wordTexts(node.Children[1])

	assert.Equal(t, []string{"one", " ", "two"}, line1)
	assert.Equal(t, []string{"three", " ", "four"}, line2)
}

func wordTexts(line *Node) []string {
	var out []string
	for _, w := range line.Children {
		out = append(out, w.Word.Text)
	}
	return out
}

// TestHandleInlineRightAlignment checks the right-alignment testable
// property: after text-align:right, each line's rightmost word's right
// edge equals containing.x + containing.width.
func TestHandleInlineRightAlignment(t *testing.T) {
	values := defaultValues()
	node := &Node{Kind: BlockBox, FC: InlineContext, Children: []*Node{
		inlineNode("one two", values),
	}}
	node.Dimensions.Content.Width = 200
	node.Dimensions.Content.X = 10

	require.NoError(t, handleInline(node, css.KeywordValue("right"), nil, testEnv()))

	require.Len(t, node.Children, 1)
	line := node.Children[0]
	last := line.Children[len(line.Children)-1]

	assert.InDelta(t, 210.0, last.Dimensions.Content.X+last.Dimensions.Content.Width, 0.0001)
}

// lopsidedFonts is a fontmetrics.Provider whose ascent+descent doesn't
// sum back to the requested size, so a test using it can tell whether a
// word's box height came from LineMetrics or was just copied from
// FontSize.
type lopsidedFonts struct{}

func (lopsidedFonts) WordWidth(word string, size float64, weight int) float64 {
	return float64(len([]rune(word))) * size
}

func (lopsidedFonts) LineMetrics(size float64, weight int) (float64, float64) {
	return size * 2, size
}

// TestHandleInlineUsesLineMetricsForWordHeight checks that a word box's
// height comes from the font provider's LineMetrics (ascent+descent),
// not straight from the styled font-size.
func TestHandleInlineUsesLineMetricsForWordHeight(t *testing.T) {
	values := defaultValues()
	node := &Node{Kind: BlockBox, FC: InlineContext, Children: []*Node{
		inlineNode("hi", values),
	}}
	node.Dimensions.Content.Width = 500

	env := &Environment{Fonts: lopsidedFonts{}, Images: fakeImages{sizes: map[string][2]float64{}}}
	require.NoError(t, handleInline(node, css.KeywordValue("left"), nil, env))

	require.Len(t, node.Children, 1)
	word := node.Children[0].Children[0]

	fontSize := values["font-size"].Num
	assert.Equal(t, fontSize*3, word.Dimensions.Content.Height)
}

// TestHandleInlineJustify exercises the justify testable property from
// end-to-end scenario 6 (a line in a 300px container, last line
// excluded from justification): the first word sits at the container's
// left edge, the last word's right edge sits exactly at the container's
// right edge, and the freed space (container width plus the removed
// spaces' width, minus the original line width) is split evenly across
// the gaps between the remaining words.
func TestHandleInlineJustify(t *testing.T) {
	line := newLineNode()
	w1 := newWordNode(WordData{Text: "aaaaa"}) // 50px @ 10px/rune
	w2 := newWordNode(WordData{Text: " "})     // 10px space
	w3 := newWordNode(WordData{Text: "bbbbb"}) // 50px
	w4 := newWordNode(WordData{Text: " "})     // 10px space
	w5 := newWordNode(WordData{Text: "ccccc"}) // 50px
	w1.Dimensions.Content.Width = 50
	w2.Dimensions.Content.Width = 10
	w3.Dimensions.Content.Width = 50
	w4.Dimensions.Content.Width = 10
	w5.Dimensions.Content.Width = 50
	line.Children = []*Node{w1, w2, w3, w4, w5}
	line.Dimensions.Content.Width = 170 // 50+10+50+10+50

	justifyLine(line, 300, 0)

	assert.Equal(t, []*Node{w1, w3, w5}, line.Children)
	assert.Equal(t, 0.0, w1.Dimensions.Content.X)
	assert.Equal(t, 125.0, w3.Dimensions.Content.X)
	assert.Equal(t, 300.0-w5.Dimensions.Content.Width, w5.Dimensions.Content.X)
}

func TestJustifyLineSingleWordNoRedistribution(t *testing.T) {
	line := newLineNode()
	w1 := newWordNode(WordData{Text: "solo"})
	w1.Dimensions.Content.Width = 40
	w1.Dimensions.Content.X = 5
	line.Children = []*Node{w1}
	line.Dimensions.Content.Width = 40

	justifyLine(line, 300, 0)

	assert.Equal(t, 5.0, w1.Dimensions.Content.X)
}

func TestCollapseWhitespaceRunsMergesAdjacentSpaces(t *testing.T) {
	words := []WordData{
		{Text: "foo"},
		{Text: " "},
		{Text: "\n"},
		{Text: "\t"},
		{Text: "bar"},
	}

	collapsed := collapseWhitespaceRuns(words)

	require.Len(t, collapsed, 3)
	assert.Equal(t, "foo", collapsed[0].Text)
	assert.Equal(t, " ", collapsed[1].Text)
	assert.Equal(t, "bar", collapsed[2].Text)
}

func TestTrimEdgeWhitespaceRemovesLeadingAndTrailingSpaceOnly(t *testing.T) {
	words := []WordData{{Text: " "}, {Text: "foo"}, {Text: " "}}

	trimmed := trimEdgeWhitespace(words)

	require.Len(t, trimmed, 1)
	assert.Equal(t, "foo", trimmed[0].Text)
}
