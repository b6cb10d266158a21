// Package style implements the CSS cascade: matching selectors against
// DOM nodes, ordering declarations by origin and specificity, expanding
// shorthands through the property registry, and resolving each styled
// node's final, fully-inherited property values.
package style

import (
	"sort"

	"github.com/carlosmndzg/ferrum/css"
	"github.com/carlosmndzg/ferrum/dom"
	"github.com/carlosmndzg/ferrum/style/props"
)

// StyledNode is a DOM node paired with its fully cascaded, fully
// inherited property values — one entry per registry longhand, always
// present (the cascade never leaves a property unset).
type StyledNode struct {
	Node     *dom.Node
	Values   map[string]css.Value
	Children []*StyledNode
}

// Value returns the node's resolved value for name, or the zero Value
// (Kind == css.ValueNotDeclared) if name is not a registered longhand.
func (s *StyledNode) Value(name string) css.Value {
	return s.Values[name]
}

// matchedRule is a rule paired with the specificity of the selector that
// matched, used only to order declarations within one origin.
type matchedRule struct {
	rule        *css.Rule
	specificity css.Specificity
}

// StyleTree walks a DOM tree and computes cascaded styles for every
// node, in registry longhand order. ua is cascaded before author; an
// element's inline "style" attribute, if any, is applied after both and
// wins regardless of specificity.
func StyleTree(root *dom.Node, registry *props.Registry, ua, author *css.Stylesheet) *StyledNode {
	return styleNode(root, registry, ua, author, nil)
}

func styleNode(node *dom.Node, registry *props.Registry, ua, author *css.Stylesheet, parent *StyledNode) *StyledNode {
	declared := make(map[string]css.Value)

	if node.Type == dom.ElementNode {
		applyOrigin(declared, registry, node, ua)
		applyOrigin(declared, registry, node, author)
		applyInline(declared, registry, node)
	}

	values := make(map[string]css.Value, len(registry.Longhands()))
	for _, name := range registry.Longhands() {
		if v, ok := declared[name]; ok {
			values[name] = v
			continue
		}
		if registry.IsInheritable(name) && parent != nil {
			values[name] = parent.Values[name]
			continue
		}
		if initial := registry.InitialValue(name); len(initial) == 1 {
			values[name] = initial[0].Value
		}
	}

	styled := &StyledNode{Node: node, Values: values}
	for _, child := range node.Children {
		styled.Children = append(styled.Children, styleNode(child, registry, ua, author, styled))
	}
	return styled
}

// applyOrigin matches node against every rule in sheet, orders the
// matches by ascending specificity (ties keep stylesheet order), and
// applies their declarations into declared — later (more specific)
// matches overwrite earlier ones.
func applyOrigin(declared map[string]css.Value, registry *props.Registry, node *dom.Node, sheet *css.Stylesheet) {
	if sheet == nil {
		return
	}

	classes := node.Classes()
	id := node.ID()
	hasID := node.GetAttribute("id") != ""

	var matches []matchedRule
	for i := range sheet.Rules {
		rule := &sheet.Rules[i]
		if rule.Selector.Matches(node.Data, id, hasID, classes) {
			matches = append(matches, matchedRule{rule: rule, specificity: rule.Specificity()})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].specificity.Less(matches[j].specificity)
	})

	for _, m := range matches {
		for _, decl := range m.rule.Declarations {
			for _, lh := range registry.Create(decl.Name, decl.Value) {
				declared[lh.Name] = lh.Value
			}
		}
	}
}

// applyInline parses node's "style" attribute, if present, and applies
// its declarations last — inline style always wins over any selector
// match, regardless of specificity.
func applyInline(declared map[string]css.Value, registry *props.Registry, node *dom.Node) {
	attr := node.GetAttribute("style")
	if attr == "" {
		return
	}
	for _, decl := range css.ParseDeclarationList(attr) {
		for _, lh := range registry.Create(decl.Name, decl.Value) {
			declared[lh.Name] = lh.Value
		}
	}
}
