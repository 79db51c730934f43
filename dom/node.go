package dom

import (
	"strings"

	"github.com/npillmayer/littlebrowser/maybe"
)

// AttrMap is the attribute set of an Element: name maps to opaque string
// value, names unique.
type AttrMap map[string]string

// NodeType discriminates the two kinds of Node.
type NodeType int

const (
	// TextNode carries opaque character data and has no children.
	TextNode NodeType = iota
	// ElementNode carries a tag name and an attribute map.
	ElementNode
)

// Node is either a Text node or an Element node, per the document tree of
// a rendering pass. Every node owns an ordered sequence of children; a
// Text node's children slice is always empty.
type Node struct {
	Type     NodeType
	Text     string   // valid iff Type == TextNode
	Element  *ElementData // valid iff Type == ElementNode
	children []*Node
}

// ElementData holds the tag name and attribute map of an Element node.
type ElementData struct {
	TagName    string
	Attributes AttrMap
}

// NewText creates a childless Text node carrying data verbatim.
func NewText(data string) *Node {
	return &Node{Type: TextNode, Text: data}
}

// NewElement creates an Element node with the given tag name, attribute
// map and children, in document order.
func NewElement(tagName string, attrs AttrMap, children []*Node) *Node {
	if attrs == nil {
		attrs = AttrMap{}
	}
	return &Node{
		Type:     ElementNode,
		Element:  &ElementData{TagName: tagName, Attributes: attrs},
		children: children,
	}
}

// Children returns node's children in document order. Always empty for a
// Text node.
func (node *Node) Children() []*Node {
	return node.children
}

// AppendChild appends child as the last child of node.
func (node *Node) AppendChild(child *Node) {
	node.children = append(node.children, child)
}

// IsElement reports whether node is an Element node.
func (node *Node) IsElement() bool {
	return node != nil && node.Type == ElementNode
}

// IsText reports whether node is a Text node.
func (node *Node) IsText() bool {
	return node != nil && node.Type == TextNode
}

// ID returns the value of this element's id attribute, or Nothing if it is
// absent. Calling ID on a Text node always returns Nothing.
func (node *Node) ID() maybe.Maybe[string] {
	if node == nil || node.Element == nil {
		return maybe.Nothing[string]()
	}
	if id, ok := node.Element.Attributes["id"]; ok {
		return maybe.Just(id)
	}
	return maybe.Nothing[string]()
}

// Classes returns the set of class names obtained by splitting the class
// attribute on single-space characters. An absent class attribute yields
// an empty set. Calling Classes on a Text node always returns an empty set.
func (node *Node) Classes() map[string]struct{} {
	classes := map[string]struct{}{}
	if node == nil || node.Element == nil {
		return classes
	}
	list, ok := node.Element.Attributes["class"]
	if !ok {
		return classes
	}
	for _, c := range strings.Split(list, " ") {
		if c == "" {
			continue
		}
		classes[c] = struct{}{}
	}
	return classes
}

// HasClass reports whether name is a member of node's class set.
func (node *Node) HasClass(name string) bool {
	_, ok := node.Classes()[name]
	return ok
}
