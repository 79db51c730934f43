package style

import (
	"sort"

	"github.com/npillmayer/littlebrowser/cssom"
	"github.com/npillmayer/littlebrowser/dom"
	"github.com/npillmayer/littlebrowser/tree"
)

// matches reports whether elem satisfies selector: if the selector
// carries a tag name it must equal the element's tag; if it carries an id
// it must equal the element's id attribute; every class named by the
// selector must be present in the element's class set. A wildcard
// (zero-valued) selector matches every element.
func matches(elem *dom.Node, selector cssom.Selector) bool {
	if selector.HasTagName() && elem.Element.TagName != selector.TagName {
		return false
	}
	if selector.HasID() {
		var id string
		switch m := elem.ID().Match(); m {
		case m.Just(&id):
			if id != selector.ID {
				return false
			}
		case m.Nothing():
			return false
		}
	}
	for _, class := range selector.Classes {
		if !elem.HasClass(class) {
			return false
		}
	}
	return true
}

type matchedRule struct {
	specificity cssom.Specificity
	rule        cssom.Rule
}

// matchRule finds the first selector, in source order within the rule,
// that matches elem, and yields the corresponding matchedRule. A rule
// with no matching selector does not apply.
func matchRule(elem *dom.Node, rule cssom.Rule) (matchedRule, bool) {
	for _, sel := range rule.Selectors {
		if matches(elem, sel) {
			tracer().Debugf("rule matched element %s via selector %+v", elem.Element.TagName, sel)
			return matchedRule{specificity: sel.Specificity(), rule: rule}, true
		}
	}
	return matchedRule{}, false
}

// matchingRules collects every matchedRule for elem across the
// stylesheet, preserving source order.
func matchingRules(elem *dom.Node, sheet *cssom.Stylesheet) []matchedRule {
	var matched []matchedRule
	if sheet == nil {
		return matched
	}
	for _, rule := range sheet.Rules {
		if mr, ok := matchRule(elem, rule); ok {
			matched = append(matched, mr)
		}
	}
	return matched
}

// specifiedValues computes the cascade result for elem: matched rules are
// stable-sorted by specificity ascending (source order is preserved among
// ties), then visited in that order, each rule's declarations assigned in
// source order and overwriting earlier values. The net effect is that the
// highest-specificity rule wins, and among equal specificity the later
// rule in source order wins.
func specifiedValues(elem *dom.Node, sheet *cssom.Stylesheet) PropertyMap {
	values := PropertyMap{}
	matched := matchingRules(elem, sheet)
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].specificity.Less(matched[j].specificity)
	})
	for _, mr := range matched {
		for _, decl := range mr.rule.Declarations {
			values[decl.Name] = decl.Value
		}
	}
	return values
}

// StyleTree recursively builds a Styled Tree mirroring root. Text nodes
// receive an empty property map; Element nodes receive the cascade result
// against sheet. Children are produced in document order.
func StyleTree(root *dom.Node, sheet *cssom.Stylesheet) *tree.Node[*StyledNode] {
	var values PropertyMap
	if root.IsElement() {
		values = specifiedValues(root, sheet)
	} else {
		values = PropertyMap{}
	}
	node := newStyledNode(root, values)
	for _, child := range root.Children() {
		node.AddChild(StyleTree(child, sheet))
	}
	return node
}
