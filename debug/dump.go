package debug

import (
	"fmt"

	tp "github.com/xlab/treeprint"

	"github.com/npillmayer/littlebrowser/boxtree"
	"github.com/npillmayer/littlebrowser/dom"
	"github.com/npillmayer/littlebrowser/style"
	"github.com/npillmayer/littlebrowser/tree"
)

// DumpDOM renders a Document Tree as an indented tree of tag names and
// Text node contents.
func DumpDOM(root *dom.Node) string {
	p := tp.New()
	ppDOM(p, root)
	return p.String()
}

func ppDOM(p tp.Tree, n *dom.Node) {
	if n == nil {
		return
	}
	if n.IsText() {
		p.AddNode(fmt.Sprintf("#text %q", n.Text))
		return
	}
	label := n.Element.TagName
	children := n.Children()
	if len(children) == 0 {
		p.AddNode(label)
		return
	}
	branch := p.AddBranch(label)
	for _, ch := range children {
		ppDOM(branch, ch)
	}
}

// DumpStyled renders a Styled Tree as an indented tree, annotating each
// node with its computed display.
func DumpStyled(root *tree.Node[*style.StyledNode]) string {
	p := tp.New()
	ppStyled(p, root)
	return p.String()
}

func ppStyled(p tp.Tree, n *tree.Node[*style.StyledNode]) {
	if n == nil {
		return
	}
	sn := style.Node(n)
	label := styledLabel(sn)
	children := n.Children()
	if len(children) == 0 {
		p.AddNode(label)
		return
	}
	branch := p.AddBranch(label)
	for _, ch := range children {
		ppStyled(branch, ch)
	}
}

func styledLabel(sn *style.StyledNode) string {
	dn := sn.DOMNode()
	if dn.IsText() {
		return fmt.Sprintf("#text %q", dn.Text)
	}
	return fmt.Sprintf("%s [display:%s]", dn.Element.TagName, sn.Display())
}

// DumpLayout renders a Layout Tree as an indented tree, annotating each
// box with its kind and content-box geometry.
func DumpLayout(root *tree.Node[*boxtree.LayoutBox]) string {
	p := tp.New()
	ppLayout(p, root)
	return p.String()
}

func ppLayout(p tp.Tree, n *tree.Node[*boxtree.LayoutBox]) {
	if n == nil {
		return
	}
	box := boxtree.Box(n)
	label := layoutLabel(box)
	children := n.Children()
	if len(children) == 0 {
		p.AddNode(label)
		return
	}
	branch := p.AddBranch(label)
	for _, ch := range children {
		ppLayout(branch, ch)
	}
}

func layoutLabel(box *boxtree.LayoutBox) string {
	kind := "anonymous"
	switch {
	case box.BoxType.IsBlock():
		kind = "block"
	case box.BoxType.IsInline():
		kind = "inline"
	}
	c := box.Dimensions.Content
	return fmt.Sprintf("%s (x=%.0f y=%.0f w=%.0f h=%.0f)", kind, c.X, c.Y, c.Width, c.Height)
}
