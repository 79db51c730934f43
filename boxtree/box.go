package boxtree

import (
	"errors"

	"github.com/npillmayer/littlebrowser/style"
	"github.com/npillmayer/littlebrowser/tree"
)

// ErrAnonymousStyleQuery is returned when asking an AnonymousBlock box for
// its backing styled node — a programmer error, since AnonymousBlock
// carries no style payload by construction.
var ErrAnonymousStyleQuery = errors.New("boxtree: anonymous block box has no style node")

// ErrInvalidRootDisplay is returned when building a Layout Tree whose
// styled root has display: none.
var ErrInvalidRootDisplay = errors.New("boxtree: root styled node has display: none")

type boxKind uint8

const (
	blockNode boxKind = iota
	inlineNode
	anonymousBlock
)

// BoxType is a tagged variant over the three kinds of layout box: a
// BlockNode or InlineNode backed by a styled node, or an AnonymousBlock
// carrying no payload.
type BoxType struct {
	kind   boxKind
	styled *style.StyledNode
}

func blockBox(sn *style.StyledNode) BoxType  { return BoxType{kind: blockNode, styled: sn} }
func inlineBox(sn *style.StyledNode) BoxType { return BoxType{kind: inlineNode, styled: sn} }
func anonymousBox() BoxType                  { return BoxType{kind: anonymousBlock} }

// IsBlock reports whether t is a BlockNode.
func (t BoxType) IsBlock() bool { return t.kind == blockNode }

// IsInline reports whether t is an InlineNode.
func (t BoxType) IsInline() bool { return t.kind == inlineNode }

// IsAnonymous reports whether t is an AnonymousBlock.
func (t BoxType) IsAnonymous() bool { return t.kind == anonymousBlock }

// StyleNode returns the backing styled node of a BlockNode or InlineNode.
// Querying an AnonymousBlock returns ErrAnonymousStyleQuery.
func (t BoxType) StyleNode() (*style.StyledNode, error) {
	if t.kind == anonymousBlock {
		return nil, ErrAnonymousStyleQuery
	}
	return t.styled, nil
}

// LayoutBox is one node of the Layout Tree, built on top of the generic
// tree substrate per the module's convention for parallel trees
// (Document, Styled, Layout): dimensions (initially zero, filled in by
// Layout), a BoxType, and an ordered sequence of children.
type LayoutBox struct {
	tree.Node[*LayoutBox]
	Dimensions Dimensions
	BoxType    BoxType
}

func newLayoutBox(t BoxType) *tree.Node[*LayoutBox] {
	lb := &LayoutBox{BoxType: t}
	lb.Payload = lb
	return &lb.Node
}

// Box recovers the LayoutBox payload from a generic tree node.
func Box(n *tree.Node[*LayoutBox]) *LayoutBox {
	if n == nil {
		return nil
	}
	return n.Payload
}

// Children returns box's children layout boxes, in order.
func (b *LayoutBox) Children() []*LayoutBox {
	nodes := b.Node.Children()
	children := make([]*LayoutBox, len(nodes))
	for i, n := range nodes {
		children[i] = Box(n)
	}
	return children
}
