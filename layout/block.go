package layout

import (
	"github.com/carlosmndzg/ferrum/css"
	"github.com/carlosmndzg/ferrum/style"
	"github.com/carlosmndzg/ferrum/style/props"
)

// computeLayout dispatches geometry computation by box kind. Only Block
// and Anonymous boxes compute their own geometry; Inline boxes are
// flattened away by the inline formatting context before their geometry
// would ever matter, and Line/Word geometry is assigned entirely by
// handleInline.
func computeLayout(node *Node, containingBlock Dimensions, desiredHeight *float64, env *Environment) error {
	switch node.Kind {
	case BlockBox:
		return computeBlockLayout(node, containingBlock, desiredHeight, env)
	case AnonymousBox:
		return computeAnonymousLayout(node, containingBlock, env)
	default:
		return nil
	}
}

func computeBlockLayout(node *Node, containingBlock Dimensions, desiredHeight *float64, env *Environment) error {
	if err := computeBlockWidth(node, containingBlock, desiredHeight, env); err != nil {
		return err
	}
	computeBlockPosition(node, containingBlock)
	return computeBlockHeight(node, containingBlock, desiredHeight, env)
}

func computeBlockWidth(node *Node, containingBlock Dimensions, desiredHeight *float64, env *Environment) error {
	styled := node.Styled
	containingWidth := containingBlock.Content.Width

	isWidthAuto := props.IsAuto(styled.Value("width"))
	isMarginLeftAuto := props.IsAuto(styled.Value("margin-left"))
	isMarginRightAuto := props.IsAuto(styled.Value("margin-right"))

	paddingLeft := props.ActualLength(styled.Value("padding-left"), containingWidth)
	paddingRight := props.ActualLength(styled.Value("padding-right"), containingWidth)
	borderLeft := props.BorderWidthNumeric(styled.Value("border-width"), styled.Value("border-style"))
	borderRight := borderLeft

	width := props.ActualLength(styled.Value("width"), containingWidth)
	marginLeft := props.ActualLength(styled.Value("margin-left"), containingWidth)
	marginRight := props.ActualLength(styled.Value("margin-right"), containingWidth)

	if isReplacedElement(styled) {
		isWidthAuto = false
		width = computeReplacedWidth(styled, containingBlock, desiredHeight, env)
	}

	borderBoxSize := width + paddingLeft + paddingRight + borderLeft + borderRight

	switch {
	case !isWidthAuto && (isMarginLeftAuto || isMarginRightAuto) && borderBoxSize > containingWidth:
		// Overconstrained with an auto margin: leave the auto margin(s)
		// at their already-resolved value (0); the overflow is absorbed
		// by letting the border box exceed the containing width.
	case !isWidthAuto && !isMarginLeftAuto && !isMarginRightAuto:
		marginRight = containingWidth - width - marginLeft - paddingLeft - paddingRight - borderLeft - borderRight
	case isWidthAuto:
		width = containingWidth - marginLeft - marginRight - paddingLeft - paddingRight - borderLeft - borderRight
	case !isWidthAuto && isMarginLeftAuto && !isMarginRightAuto:
		marginLeft = containingWidth - width - marginRight - paddingLeft - paddingRight - borderLeft - borderRight
	case !isWidthAuto && !isMarginLeftAuto && isMarginRightAuto:
		marginRight = containingWidth - width - marginLeft - paddingLeft - paddingRight - borderLeft - borderRight
	case !isWidthAuto && isMarginLeftAuto && isMarginRightAuto:
		marginLeft = (containingWidth - borderBoxSize) / 2
		marginRight = marginLeft
	}

	node.Dimensions.Content.Width = width
	node.Dimensions.Padding.Left = paddingLeft
	node.Dimensions.Padding.Right = paddingRight
	node.Dimensions.Border.Left = borderLeft
	node.Dimensions.Border.Right = borderRight
	node.Dimensions.Margin.Left = marginLeft
	node.Dimensions.Margin.Right = marginRight

	return nil
}

// computeReplacedWidth resolves a replaced element's (<img>'s) width,
// per CSS 2.1 §10.3.2: the intrinsic width when both width and height
// are auto, the height-driven value scaled by the intrinsic aspect
// ratio when only width is auto, or the declared width otherwise.
func computeReplacedWidth(styled *style.StyledNode, containingBlock Dimensions, desiredHeight *float64, env *Environment) float64 {
	isWidthAuto := props.IsAuto(styled.Value("width"))
	isHeightAuto := props.IsAuto(styled.Value("height"))
	declaredWidth := props.ActualLength(styled.Value("width"), containingBlock.Content.Width)

	intrinsicWidth, intrinsicHeight := intrinsicImageDimensions(styled, env)
	ratio := intrinsicRatio(intrinsicWidth, intrinsicHeight)

	switch {
	case isWidthAuto && isHeightAuto:
		return intrinsicWidth
	case isWidthAuto:
		height := 0.0
		if desiredHeight != nil {
			height = *desiredHeight
		}
		return height * ratio
	default:
		return declaredWidth
	}
}

func intrinsicImageDimensions(styled *style.StyledNode, env *Environment) (float64, float64) {
	src := styled.Node.GetAttribute("src")
	if src == "" || env == nil || env.Images == nil {
		return 0, 0
	}
	width, height, ok := env.Images.IntrinsicSize(src)
	if !ok {
		return 0, 0
	}
	return width, height
}

// intrinsicRatio guards against a zero-height image rather than
// propagating a NaN/Inf through the layout that follows.
func intrinsicRatio(width, height float64) float64 {
	if height == 0 {
		return 0
	}
	return width / height
}

func computeBlockPosition(node *Node, containingBlock Dimensions) {
	styled := node.Styled
	containingWidth := containingBlock.Content.Width

	marginTop := props.ActualLength(styled.Value("margin-top"), containingWidth)
	marginBottom := props.ActualLength(styled.Value("margin-bottom"), containingWidth)
	paddingTop := props.ActualLength(styled.Value("padding-top"), containingWidth)
	paddingBottom := props.ActualLength(styled.Value("padding-bottom"), containingWidth)
	borderTop := props.BorderWidthNumeric(styled.Value("border-width"), styled.Value("border-style"))
	borderBottom := borderTop

	node.Dimensions.Margin.Top = marginTop
	node.Dimensions.Margin.Bottom = marginBottom
	node.Dimensions.Padding.Top = paddingTop
	node.Dimensions.Padding.Bottom = paddingBottom
	node.Dimensions.Border.Top = borderTop
	node.Dimensions.Border.Bottom = borderBottom

	node.Dimensions.Content.X = containingBlock.Content.X +
		node.Dimensions.Margin.Left + node.Dimensions.Padding.Left + node.Dimensions.Border.Left

	node.Dimensions.Content.Y = containingBlock.Content.Y + containingBlock.Content.Height +
		node.Dimensions.Margin.Top + node.Dimensions.Padding.Top + node.Dimensions.Border.Top
}

func computeBlockHeight(node *Node, containingBlock Dimensions, desiredHeight *float64, env *Environment) error {
	if isReplacedElement(node.Styled) {
		computeReplacedHeight(node, desiredHeight, env)
		return nil
	}

	switch node.FC {
	case BlockContext:
		return handleBlock(node, desiredHeight, env)
	default:
		return handleInline(node, node.Styled.Value("text-align"), desiredHeight, env)
	}
}

func computeReplacedHeight(node *Node, desiredHeight *float64, env *Environment) {
	if desiredHeight != nil {
		node.Dimensions.Content.Height = *desiredHeight
		return
	}

	intrinsicWidth, intrinsicHeight := intrinsicImageDimensions(node.Styled, env)
	ratio := intrinsicRatio(intrinsicWidth, intrinsicHeight)
	if ratio == 0 {
		node.Dimensions.Content.Height = 0
		return
	}
	node.Dimensions.Content.Height = node.Dimensions.Content.Width / ratio
}

// handleBlock lays out each child of a Block formatting context in
// normal flow, accumulating its outer (margin+border+padding+content)
// height into the parent's content height.
func handleBlock(node *Node, desiredHeight *float64, env *Environment) error {
	for _, child := range node.Children {
		childDesiredHeight := computeDesiredHeight(child, desiredHeight)

		if err := computeLayout(child, node.Dimensions, childDesiredHeight, env); err != nil {
			return err
		}

		node.Dimensions.Content.Height += child.Dimensions.Margin.Top +
			child.Dimensions.Border.Top +
			child.Dimensions.Padding.Top +
			child.Dimensions.Content.Height +
			child.Dimensions.Padding.Bottom +
			child.Dimensions.Border.Bottom +
			child.Dimensions.Margin.Bottom
	}

	if desiredHeight != nil {
		node.Dimensions.Content.Height = *desiredHeight
	}

	return nil
}

func computeAnonymousLayout(node *Node, containingBlock Dimensions, env *Environment) error {
	node.Dimensions.Content.Width = containingBlock.Content.Width
	node.Dimensions.Content.X = containingBlock.Content.X
	node.Dimensions.Content.Y = containingBlock.Content.Y + containingBlock.Content.Height

	return handleInline(node, anonymousTextAlign(node), nil, env)
}

// anonymousTextAlign reads text-align from the first inline child's
// styled node, matching the CSS rule that an anonymous block box is not
// itself styleable and inherits its alignment from its content.
func anonymousTextAlign(node *Node) css.Value {
	if len(node.Children) == 0 {
		return css.KeywordValue("left")
	}
	return node.Children[0].Styled.Value("text-align")
}
