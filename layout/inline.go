package layout

import (
	"strings"

	"github.com/carlosmndzg/ferrum/css"
	"github.com/carlosmndzg/ferrum/dom"
	"github.com/carlosmndzg/ferrum/style/props"
)

// lineHeightCorrection is the fraction of a line's height, beyond its
// natural font-size-driven box, used to position each word's baseline:
// a touch more than the line box itself so descenders clear the line
// below without the whole line growing.
const lineHeightCorrection = 1.1

// handleInline runs the inline formatting context over node's current
// (Inline-kind) children, replacing them with a sequence of Line boxes
// each containing Word boxes, and sets node's content height from the
// stacked line heights (or desiredHeight, if supplied).
func handleInline(node *Node, textAlign css.Value, desiredHeight *float64, env *Environment) error {
	if len(node.Children) == 0 {
		if desiredHeight != nil {
			node.Dimensions.Content.Height = *desiredHeight
		}
		return nil
	}

	containingWidth := node.Dimensions.Content.Width
	containingX := node.Dimensions.Content.X
	containingY := node.Dimensions.Content.Y

	words := extractWords(node.Children, env)
	node.Children = breakLines(words, containingWidth, containingX)

	applyTextAlign(node.Children, textAlign, containingWidth, containingX)

	accHeight := 0.0
	for _, line := range node.Children {
		maxLineHeight, maxFontSize := lineVerticalMetrics(line)

		line.Dimensions.Content.Height = maxLineHeight
		line.Dimensions.Content.Y = containingY + accHeight
		accHeight += maxLineHeight

		baselineY := line.Dimensions.Content.Y + line.Dimensions.Content.Height -
			(line.Dimensions.Content.Height*lineHeightCorrection-maxFontSize)/2

		for _, word := range line.Children {
			word.Dimensions.Content.Y = baselineY
		}
	}

	if desiredHeight != nil {
		node.Dimensions.Content.Height = *desiredHeight
	} else {
		node.Dimensions.Content.Height = accHeight
	}

	return nil
}

// extractWords flattens a run of Inline boxes into a linear Word
// sequence: element boxes recurse into their children, text boxes split
// at whitespace boundaries into one Word per non-empty run plus one
// single-space Word per whitespace run. Runs of whitespace Words are
// then collapsed to a single space, and a leading or trailing
// whitespace Word is trimmed.
func extractWords(inlineNodes []*Node, env *Environment) []WordData {
	var words []WordData
	for _, node := range inlineNodes {
		words = append(words, extractWordsFromOne(node)...)
	}

	words = collapseWhitespaceRuns(words)
	words = trimEdgeWhitespace(words)

	for i := range words {
		words[i].Width = measureWord(words[i], env)
		words[i].GlyphHeight = measureGlyphHeight(words[i], env)
	}

	return words
}

func extractWordsFromOne(node *Node) []WordData {
	styled := node.Styled

	if styled.Node.Type == dom.ElementNode {
		var words []WordData
		for _, child := range node.Children {
			words = append(words, extractWordsFromOne(child)...)
		}
		return words
	}

	lineHeight := parseUnitlessNumber(styled.Value("line-height"))
	fontSize := styled.Value("font-size").Num
	fontWeight := props.FontWeightNumeric(styled.Value("font-weight"))
	color := styled.Value("color").Color

	var words []WordData
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, WordData{
				Text: current.String(), FontSize: fontSize, LineHeight: lineHeight,
				FontWeight: fontWeight, Color: color,
			})
			current.Reset()
		}
	}

	for _, r := range styled.Node.Data {
		if isInlineWhitespace(r) {
			flush()
			words = append(words, WordData{
				Text: " ", FontSize: fontSize, LineHeight: lineHeight,
				FontWeight: fontWeight, Color: color,
			})
		} else {
			current.WriteRune(r)
		}
	}
	flush()

	return words
}

func isInlineWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f'
}

func parseUnitlessNumber(v css.Value) float64 {
	if v.Kind == css.ValueDimension {
		return v.Num
	}
	return 1.2
}

// collapseWhitespaceRuns replaces every maximal run of whitespace-only
// Words with a single space Word, matching HTML's whitespace collapsing
// across element boundaries (e.g. "foo </b> bar" has one space between
// the two text runs, not two).
func collapseWhitespaceRuns(words []WordData) []WordData {
	var collapsed []WordData
	i := 0
	for i < len(words) {
		if strings.TrimSpace(words[i].Text) == "" {
			j := i + 1
			for j < len(words) && strings.TrimSpace(words[j].Text) == "" {
				j++
			}
			space := words[i]
			space.Text = " "
			collapsed = append(collapsed, space)
			i = j
			continue
		}
		collapsed = append(collapsed, words[i])
		i++
	}
	return collapsed
}

func trimEdgeWhitespace(words []WordData) []WordData {
	if len(words) > 0 && strings.TrimSpace(words[0].Text) == "" {
		words = words[1:]
	}
	if len(words) > 0 && strings.TrimSpace(words[len(words)-1].Text) == "" {
		words = words[:len(words)-1]
	}
	return words
}

func measureWord(word WordData, env *Environment) float64 {
	if env == nil || env.Fonts == nil {
		return 0
	}
	return env.Fonts.WordWidth(word.Text, word.FontSize, word.FontWeight)
}

// measureGlyphHeight reports the face's ascent+descent at the word's
// (FontSize, FontWeight), falling back to FontSize itself when no font
// provider is available.
func measureGlyphHeight(word WordData, env *Environment) float64 {
	if env == nil || env.Fonts == nil {
		return word.FontSize
	}
	ascent, descent := env.Fonts.LineMetrics(word.FontSize, word.FontWeight)
	return ascent + descent
}

// breakLines runs the greedy, first-fit line-breaking algorithm over a
// flat word list, producing Line boxes each holding Word boxes already
// positioned at their horizontal (pre-alignment) x.
func breakLines(words []WordData, containingWidth, containingX float64) []*Node {
	var lines []*Node
	current := newLineNode()
	current.Dimensions.Content.X = containingX

	for i := 0; i < len(words); {
		word := words[i]
		isWhitespace := strings.TrimSpace(word.Text) == ""

		fits := current.Dimensions.Content.Width+word.Width <= containingWidth && len(current.Children) > 0
		startsLine := len(current.Children) == 0 && !isWhitespace

		switch {
		case startsLine || fits:
			wordNode := newWordNode(word)
			wordNode.Dimensions.Content.Width = word.Width
			wordNode.Dimensions.Content.Height = word.GlyphHeight
			wordNode.Dimensions.Content.X = containingX + current.Dimensions.Content.Width

			current.Dimensions.Content.Width += word.Width
			current.Children = append(current.Children, wordNode)
			i++

		case isWhitespace:
			i++

		default:
			lines = append(lines, current)
			current = newLineNode()
			current.Dimensions.Content.X = containingX
		}
	}

	if len(current.Children) > 0 {
		lines = append(lines, current)
	}

	for _, line := range lines {
		trimTrailingWhitespace(line)
	}

	return lines
}

func trimTrailingWhitespace(line *Node) {
	n := len(line.Children)
	if n == 0 {
		return
	}
	last := line.Children[n-1]
	if strings.TrimSpace(last.Word.Text) == "" {
		line.Dimensions.Content.Width -= last.Dimensions.Content.Width
		line.Children = line.Children[:n-1]
	}
}

func lineVerticalMetrics(line *Node) (maxHeight, maxFontSize float64) {
	for _, word := range line.Children {
		if word.Dimensions.Content.Height > maxFontSize {
			maxFontSize = word.Dimensions.Content.Height
		}
		scaled := word.Dimensions.Content.Height * word.Word.LineHeight
		if scaled > maxHeight {
			maxHeight = scaled
		}
	}
	return maxHeight, maxFontSize
}

// applyTextAlign shifts each line's words per the node's text-align
// value. left is a no-op; center and right shift every word uniformly;
// justify (applied to every line but the last) removes the line's space
// words and redistributes the freed width evenly among the remaining
// words.
func applyTextAlign(lines []*Node, textAlign css.Value, containingWidth, containingX float64) {
	switch {
	case textAlign.IsKeyword("center"):
		for _, line := range lines {
			shift := (containingWidth - line.Dimensions.Content.Width) / 2
			shiftLine(line, shift)
		}
	case textAlign.IsKeyword("right"):
		for _, line := range lines {
			shift := containingWidth - line.Dimensions.Content.Width
			shiftLine(line, shift)
		}
	case textAlign.IsKeyword("justify"):
		for i, line := range lines {
			if i == len(lines)-1 {
				continue
			}
			justifyLine(line, containingWidth, containingX)
		}
	}
}

func shiftLine(line *Node, dx float64) {
	for _, word := range line.Children {
		word.Dimensions.Content.X += dx
	}
}

// justifyLine removes a line's space words and spreads the width they
// (plus any slack between the line and the containing block) freed up
// evenly between the gaps separating the remaining words.
func justifyLine(line *Node, containingWidth, containingX float64) {
	var removedWidth float64
	var words []*Node
	for _, word := range line.Children {
		if strings.TrimSpace(word.Word.Text) == "" {
			removedWidth += word.Dimensions.Content.Width
			continue
		}
		words = append(words, word)
	}

	if len(words) <= 1 {
		line.Children = words
		return
	}

	freeSpace := containingWidth + removedWidth - line.Dimensions.Content.Width
	gap := freeSpace / float64(len(words)-1)

	x := containingX
	for i, word := range words {
		word.Dimensions.Content.X = x
		x += word.Dimensions.Content.Width
		if i < len(words)-1 {
			x += gap
		}
	}

	line.Children = words
}
