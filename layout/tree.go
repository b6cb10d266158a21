package layout

import (
	"fmt"

	"github.com/carlosmndzg/ferrum/ferrumerr"
	"github.com/carlosmndzg/ferrum/style"
	"github.com/carlosmndzg/ferrum/style/props"
)

// BuildTree constructs the box tree from a styled tree and immediately
// computes its geometry against a viewport of (width, height) device
// pixels. The returned node is the initial containing block: a
// synthetic Block box with no styled reference whose single child is
// the box built from root.
//
// An inline-level styled node that ends up with a block-level child is
// a structural violation (CSS §9.2.2 forbids block content inside
// inline boxes); BuildTree reports it as an error rather than fabricating
// a box for it.
func BuildTree(root *style.StyledNode, viewportWidth, viewportHeight float64, env *Environment) (*Node, error) {
	child, err := buildBox(root)
	if err != nil {
		return nil, err
	}

	icb := &Node{Kind: BlockBox}
	icb.Dimensions.Content.Width = viewportWidth
	icb.Children = []*Node{child}

	containingBlock := icb.Dimensions
	desiredHeight := computeDesiredHeight(child, &viewportHeight)

	if err := computeLayout(child, containingBlock, desiredHeight, env); err != nil {
		return nil, err
	}

	child.Dimensions.Content.Height = viewportHeight
	icb.Dimensions.Content.Height = viewportHeight

	return icb, nil
}

// buildBox recursively converts one styled node, and every displayed
// descendant, into its box-tree shape: block-level children are
// appended directly, inline-level children are appended directly when
// the parent runs an inline formatting context, and wrapped (merging
// consecutive runs) into Anonymous boxes when the parent runs a block
// formatting context.
func buildBox(styled *style.StyledNode) (*Node, error) {
	displayed := displayedChildren(styled)
	fc := formattingContextFor(displayed)

	if isInlineLevel(styled) && len(displayed) > 0 && fc == BlockContext {
		return nil, fmt.Errorf("inline-level node %q has block-level children: %w", styled.Node.Data, ferrumerr.ErrStructural)
	}

	node := &Node{}

	for _, child := range displayed {
		switch {
		case isBlockLevel(child):
			childBox, err := buildBox(child)
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, childBox)

		case isInlineLevel(child):
			if fc == InlineContext {
				childBox, err := buildBox(child)
				if err != nil {
					return nil, err
				}
				node.Children = append(node.Children, childBox)
				continue
			}

			if isOnlyWhitespace(child) {
				continue
			}

			childBox, err := buildBox(child)
			if err != nil {
				return nil, err
			}

			if n := len(node.Children); n > 0 && node.Children[n-1].Kind == AnonymousBox {
				last := node.Children[n-1]
				last.Children = append(last.Children, childBox)
			} else {
				anon := newAnonymousNode()
				anon.Children = append(anon.Children, childBox)
				node.Children = append(node.Children, anon)
			}
		}
	}

	if isBlockLevel(styled) {
		node.Kind = BlockBox
		node.Styled = styled
		node.FC = fc
	} else {
		node.Kind = InlineBox
		node.Styled = styled
	}

	return node, nil
}

// computeDesiredHeight resolves a Block node's own declared height
// against its parent's desired height, per CSS percentage-height rules:
// "auto" (or a percentage with no base to resolve against) defers to
// the content-driven height computed during layout.
func computeDesiredHeight(node *Node, parentDesiredHeight *float64) *float64 {
	if node.Kind != BlockBox {
		return nil
	}

	height := node.Styled.Value("height")
	if props.IsAuto(height) {
		return nil
	}
	if props.IsPercentage(height) && parentDesiredHeight == nil {
		return nil
	}

	base := 0.0
	if parentDesiredHeight != nil {
		base = *parentDesiredHeight
	}
	resolved := props.ActualLength(height, base)
	return &resolved
}
