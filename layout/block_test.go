package layout

import (
	"testing"

	"github.com/carlosmndzg/ferrum/css"
	"github.com/stretchr/testify/assert"
)

// cb builds a containing block of the given content width, with no
// accumulated height.
func cb(width float64) Dimensions {
	return Dimensions{Content: Rect{Width: width}}
}

func TestComputeBlockWidthAllNonAutoSolvesMarginRight(t *testing.T) {
	node := &Node{Kind: BlockBox, Styled: el("div", withOverrides(map[string]css.Value{
		"display":     css.KeywordValue("block"),
		"width":       css.DimensionValue(200, css.UnitPx),
		"margin-left": css.DimensionValue(50, css.UnitPx),
	}))}

	err := computeBlockWidth(node, cb(800), nil, testEnv())
	assert.NoError(t, err)
	assert.Equal(t, 200.0, node.Dimensions.Content.Width)
	assert.Equal(t, 50.0, node.Dimensions.Margin.Left)
	assert.Equal(t, 550.0, node.Dimensions.Margin.Right)
}

func TestComputeBlockWidthAutoWidthAbsorbsSlack(t *testing.T) {
	node := &Node{Kind: BlockBox, Styled: el("div", withOverrides(map[string]css.Value{
		"display":      css.KeywordValue("block"),
		"margin-left":  css.DimensionValue(100, css.UnitPx),
		"margin-right": css.DimensionValue(100, css.UnitPx),
	}))}

	assert.NoError(t, computeBlockWidth(node, cb(800), nil, testEnv()))
	assert.Equal(t, 600.0, node.Dimensions.Content.Width)
}

func TestComputeBlockWidthAutoLeftMarginOnly(t *testing.T) {
	node := &Node{Kind: BlockBox, Styled: el("div", withOverrides(map[string]css.Value{
		"display":      css.KeywordValue("block"),
		"width":        css.DimensionValue(200, css.UnitPx),
		"margin-left":  css.KeywordValue("auto"),
		"margin-right": css.DimensionValue(50, css.UnitPx),
	}))}

	assert.NoError(t, computeBlockWidth(node, cb(800), nil, testEnv()))
	assert.Equal(t, 550.0, node.Dimensions.Margin.Left)
	assert.Equal(t, 50.0, node.Dimensions.Margin.Right)
}

func TestComputeBlockWidthAutoRightMarginOnly(t *testing.T) {
	node := &Node{Kind: BlockBox, Styled: el("div", withOverrides(map[string]css.Value{
		"display":      css.KeywordValue("block"),
		"width":        css.DimensionValue(200, css.UnitPx),
		"margin-left":  css.DimensionValue(50, css.UnitPx),
		"margin-right": css.KeywordValue("auto"),
	}))}

	assert.NoError(t, computeBlockWidth(node, cb(800), nil, testEnv()))
	assert.Equal(t, 50.0, node.Dimensions.Margin.Left)
	assert.Equal(t, 550.0, node.Dimensions.Margin.Right)
}

func TestComputeBlockWidthBothMarginsAutoCenters(t *testing.T) {
	node := &Node{Kind: BlockBox, Styled: el("div", withOverrides(map[string]css.Value{
		"display":      css.KeywordValue("block"),
		"width":        css.DimensionValue(200, css.UnitPx),
		"margin-left":  css.KeywordValue("auto"),
		"margin-right": css.KeywordValue("auto"),
	}))}

	assert.NoError(t, computeBlockWidth(node, cb(800), nil, testEnv()))
	assert.Equal(t, 300.0, node.Dimensions.Margin.Left)
	assert.Equal(t, 300.0, node.Dimensions.Margin.Right)
}

func TestComputeBlockWidthOverconstrainedAutoMarginIsZero(t *testing.T) {
	node := &Node{Kind: BlockBox, Styled: el("div", withOverrides(map[string]css.Value{
		"display":      css.KeywordValue("block"),
		"width":        css.DimensionValue(1000, css.UnitPx),
		"margin-left":  css.KeywordValue("auto"),
		"margin-right": css.DimensionValue(50, css.UnitPx),
	}))}

	assert.NoError(t, computeBlockWidth(node, cb(800), nil, testEnv()))
	assert.Equal(t, 0.0, node.Dimensions.Margin.Left)
	assert.Equal(t, 1000.0, node.Dimensions.Content.Width)
}

func TestComputeReplacedWidthIntrinsicWhenBothAuto(t *testing.T) {
	img := el("img", withOverrides(map[string]css.Value{"display": css.KeywordValue("block")}))
	img.Node.SetAttribute("src", "cat.png")
	env := &Environment{Fonts: fakeFonts{perRune: 10}, Images: fakeImages{sizes: map[string][2]float64{"cat.png": {120, 60}}}}

	node := &Node{Kind: BlockBox, Styled: img}
	assert.NoError(t, computeBlockWidth(node, cb(800), nil, env))
	assert.Equal(t, 120.0, node.Dimensions.Content.Width)
}

func TestComputeReplacedHeightUsesIntrinsicRatio(t *testing.T) {
	img := el("img", withOverrides(map[string]css.Value{"display": css.KeywordValue("block")}))
	img.Node.SetAttribute("src", "cat.png")
	env := &Environment{Fonts: fakeFonts{perRune: 10}, Images: fakeImages{sizes: map[string][2]float64{"cat.png": {120, 60}}}}

	node := &Node{Kind: BlockBox, Styled: img}
	assert.NoError(t, computeBlockWidth(node, cb(800), nil, env))
	assert.NoError(t, computeBlockHeight(node, cb(800), nil, env))

	assert.Equal(t, 60.0, node.Dimensions.Content.Height)
}

func TestHandleBlockAccumulatesChildOuterHeights(t *testing.T) {
	blockValues := withOverrides(map[string]css.Value{
		"display": css.KeywordValue("block"),
		"height":  css.DimensionValue(50, css.UnitPx),
	})
	child1 := &Node{Kind: BlockBox, Styled: el("div", blockValues)}
	child2 := &Node{Kind: BlockBox, Styled: el("div", withOverrides(map[string]css.Value{
		"display":      css.KeywordValue("block"),
		"height":       css.DimensionValue(30, css.UnitPx),
		"margin-top":   css.DimensionValue(10, css.UnitPx),
		"margin-bottom": css.DimensionValue(5, css.UnitPx),
	}))}

	parent := &Node{
		Kind:     BlockBox,
		FC:       BlockContext,
		Children: []*Node{child1, child2},
	}
	parent.Dimensions.Content.Width = 800

	assert.NoError(t, handleBlock(parent, nil, testEnv()))
	assert.Equal(t, 95.0, parent.Dimensions.Content.Height)
	assert.Equal(t, 0.0, child1.Dimensions.Content.Y)
	assert.Equal(t, 60.0, child2.Dimensions.Content.Y)
}
