package style

import (
	"github.com/npillmayer/littlebrowser/cssom"
	"github.com/npillmayer/littlebrowser/dom"
	"github.com/npillmayer/littlebrowser/tree"
)

// PropertyMap is the specified-values mapping from property name to Value,
// built by the cascade for a single element (empty for Text nodes).
type PropertyMap map[string]cssom.Value

// StyledNode is a style node, the building block of the Styled Tree: it
// builds on top of the generic tree substrate and borrows a reference to
// its source DOM node, per the shared-borrows rule — the Styled Tree must
// not outlive the Document Tree it borrows from.
type StyledNode struct {
	tree.Node[*StyledNode]
	domNode        *dom.Node
	specifiedValues PropertyMap
}

// newStyledNode creates a styled node wrapping domNode, with the given
// specified-values map, and links the node's Payload to itself so that
// Node() can recover it from the generic tree.Node.
func newStyledNode(domNode *dom.Node, values PropertyMap) *tree.Node[*StyledNode] {
	sn := &StyledNode{domNode: domNode, specifiedValues: values}
	sn.Payload = sn
	return &sn.Node
}

// Node recovers the StyledNode payload from a generic tree node.
func Node(n *tree.Node[*StyledNode]) *StyledNode {
	if n == nil {
		return nil
	}
	return n.Payload
}

// DOMNode returns the document node this styled node mirrors.
func (sn *StyledNode) DOMNode() *dom.Node {
	return sn.domNode
}

// Value returns the specified value of property name; ok is false if it
// was not set by the cascade.
func (sn *StyledNode) Value(name string) (cssom.Value, bool) {
	v, ok := sn.specifiedValues[name]
	return v, ok
}

// Lookup returns the specified value of property name, or of fallback if
// name is absent, or otherwise a clone of def.
func (sn *StyledNode) Lookup(name, fallback string, def cssom.Value) cssom.Value {
	if v, ok := sn.Value(name); ok {
		return v
	}
	if v, ok := sn.Value(fallback); ok {
		return v
	}
	return def
}

// Display is the computed value of the display property: Block, Inline,
// or None.
type Display uint8

const (
	// Inline is the default display, used whenever display is absent,
	// non-keyword, or an unrecognized keyword.
	Inline Display = iota
	// Block marks a box that participates in block-level layout.
	Block
	// None excludes the node and its subtree from the Layout Tree.
	None
)

func (d Display) String() string {
	switch d {
	case Block:
		return "block"
	case None:
		return "none"
	}
	return "inline"
}

// Display returns the computed display of sn: Block if display is
// Keyword("block"), None if Keyword("none"), Inline in every other case.
func (sn *StyledNode) Display() Display {
	v, ok := sn.Value("display")
	if !ok {
		return Inline
	}
	var kw string
	switch m := v.Match(); m {
	case m.Keyword(&kw):
	default:
		return Inline
	}
	switch kw {
	case "block":
		return Block
	case "none":
		return None
	}
	return Inline
}
