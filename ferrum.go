// Package ferrum drives the full pipeline end to end: HTML source to a
// finished display list. It is the one entry point cmd/browser and the
// reftest harness both call, so the wiring between stages lives in
// exactly one place.
package ferrum

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/carlosmndzg/ferrum/css"
	"github.com/carlosmndzg/ferrum/displaylist"
	"github.com/carlosmndzg/ferrum/dom"
	"github.com/carlosmndzg/ferrum/ferrumerr"
	"github.com/carlosmndzg/ferrum/html"
	"github.com/carlosmndzg/ferrum/layout"
	"github.com/carlosmndzg/ferrum/logging"
	"github.com/carlosmndzg/ferrum/style"
	"github.com/carlosmndzg/ferrum/style/props"
	"go.uber.org/zap"
)

// inlineStyleRe extracts the contents of every <style> element. A full
// DOM-walk based extractor would also work, but the HTML parser here
// does not track raw text-element boundaries, so this mirrors the
// regex-based extraction the teacher's cmd/browser used.
var inlineStyleRe = regexp.MustCompile(`(?is)<style[^>]*>(.*?)</style>`)

// Document is the result of rendering one HTML document: every
// intermediate stage, so a caller can inspect the DOM or style tree
// without re-running the pipeline.
type Document struct {
	DOM         *dom.Node
	Styled      *style.StyledNode
	Layout      *layout.Node
	DisplayList *displaylist.DisplayList
}

// Render runs the full pipeline: HTML parsing, stylesheet collection
// (inline <style> elements plus external <link rel="stylesheet">
// resources, resolved against baseDir), cascade, layout against a
// viewport of (viewportWidth, viewportHeight) device pixels, and
// display-list construction.
//
// baseDir resolves relative <img src> and <link href> values; pass ""
// when the document has no external resources to fetch.
func Render(htmlSource string, baseDir string, viewportWidth, viewportHeight float64) (*Document, error) {
	logger := logging.ForRender()

	if viewportWidth <= 0 || viewportHeight <= 0 {
		return nil, fmt.Errorf("invalid viewport %gx%g: %w", viewportWidth, viewportHeight, ferrumerr.ErrDriver)
	}

	docNode := html.Parse(htmlSource)
	dom.ResolveURLs(docNode, baseDir)

	authorCSS := extractInlineCSS(htmlSource)
	authorCSS += dom.FetchExternalStylesheets(docNode)
	authorSheet := css.Parse(authorCSS)

	registry := props.New()
	uaSheet := style.DefaultUserAgentStylesheet()
	styledTree := style.StyleTree(documentElement(docNode), registry, uaSheet, &authorSheet)

	env := layout.NewEnvironment(baseDir)
	root, err := layout.BuildTree(styledTree, viewportWidth, viewportHeight, env)
	if err != nil {
		logger.Error("layout failed", zap.Error(err))
		return nil, err
	}

	dl := displaylist.Build(root)

	return &Document{
		DOM:         docNode,
		Styled:      styledTree,
		Layout:      root,
		DisplayList: dl,
	}, nil
}

// documentElement returns doc's root element (conventionally <html>), the
// node the style/layout pipeline is rooted at. html.Parse never classifies
// the #document node itself as block- or inline-level, so feeding it
// straight into the layout tree builder would produce an unstyled,
// unlaid-out box; the original build_style_tree instead starts from the
// document's root element. Falls back to doc itself for a document with
// no element children (e.g. empty input).
func documentElement(doc *dom.Node) *dom.Node {
	for _, child := range doc.Children {
		if child.Type == dom.ElementNode {
			return child
		}
	}
	return doc
}

func extractInlineCSS(htmlSource string) string {
	matches := inlineStyleRe.FindAllStringSubmatch(htmlSource, -1)

	var b strings.Builder
	for _, m := range matches {
		if len(m) > 1 {
			b.WriteString(m[1])
			b.WriteString("\n")
		}
	}
	return b.String()
}
