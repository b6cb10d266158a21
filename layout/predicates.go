package layout

import (
	"strings"

	"github.com/carlosmndzg/ferrum/dom"
	"github.com/carlosmndzg/ferrum/style"
)

// isBlockLevel reports whether a styled node generates a block-level box.
// Text nodes are never block-level.
func isBlockLevel(styled *style.StyledNode) bool {
	return styled.Node.Type == dom.ElementNode && styled.Value("display").IsKeyword("block")
}

// isInlineLevel reports whether a styled node generates an inline-level
// box: every text node, plus elements whose display is "inline".
func isInlineLevel(styled *style.StyledNode) bool {
	if styled.Node.Type == dom.TextNode {
		return true
	}
	return styled.Node.Type == dom.ElementNode && styled.Value("display").IsKeyword("inline")
}

// isDisplayNone reports whether a styled element is removed from the box
// tree entirely. Text nodes are always displayed.
func isDisplayNone(styled *style.StyledNode) bool {
	return styled.Node.Type == dom.ElementNode && styled.Value("display").IsKeyword("none")
}

// isReplacedElement reports whether a styled node is a replaced element
// (an <img>), which computes its own intrinsic width/height instead of
// running the normal block width/height algorithm.
func isReplacedElement(styled *style.StyledNode) bool {
	return styled.Node.Type == dom.ElementNode && styled.Node.Data == "img"
}

// isOnlyWhitespace reports whether a text node's content is entirely
// whitespace; such nodes are skipped when wrapping inline content in an
// Anonymous box under a Block formatting context.
func isOnlyWhitespace(styled *style.StyledNode) bool {
	return styled.Node.Type == dom.TextNode && strings.TrimSpace(styled.Node.Data) == ""
}

// displayedChildren returns styled's children with display:none elements
// filtered out.
func displayedChildren(styled *style.StyledNode) []*style.StyledNode {
	var displayed []*style.StyledNode
	for _, child := range styled.Children {
		if isDisplayNone(child) {
			continue
		}
		displayed = append(displayed, child)
	}
	return displayed
}

// formattingContextFor determines a node's formatting context from its
// already-filtered displayed children: Block if any of them is
// block-level, Inline otherwise (including when there are none).
func formattingContextFor(displayed []*style.StyledNode) FormattingContext {
	for _, child := range displayed {
		if isBlockLevel(child) {
			return BlockContext
		}
	}
	return InlineContext
}
