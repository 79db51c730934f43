package boxtree

import (
	"github.com/npillmayer/littlebrowser/style"
	"github.com/npillmayer/littlebrowser/tree"
)

// Build constructs the Layout Tree from a Styled Tree, omitting any
// subtree whose root has display: none. It performs no layout
// calculations; geometry is left at its zero value until Layout runs.
//
// The root box's type mirrors styled's display: Block if block, Inline if
// inline, and ErrInvalidRootDisplay if the styled root itself has
// display: none (there would be nothing to build).
func Build(styled *tree.Node[*style.StyledNode]) (*tree.Node[*LayoutBox], error) {
	sn := style.Node(styled)
	var boxType BoxType
	switch sn.Display() {
	case style.Block:
		boxType = blockBox(sn)
	case style.Inline:
		boxType = inlineBox(sn)
	default:
		return nil, ErrInvalidRootDisplay
	}

	root := newLayoutBox(boxType)
	for _, child := range styled.Children() {
		if err := addChild(root, child); err != nil {
			return nil, err
		}
	}
	return root, nil
}

// addChild builds the layout subtree for styledChild and attaches it to
// root according to its display: a block child is appended directly, an
// inline child is appended to root's inline container, and a display:none
// child is skipped.
func addChild(root *tree.Node[*LayoutBox], styledChild *tree.Node[*style.StyledNode]) error {
	sn := style.Node(styledChild)
	switch sn.Display() {
	case style.Block:
		child, err := buildSubtree(styledChild, blockBox(sn))
		if err != nil {
			return err
		}
		root.AddChild(child)
	case style.Inline:
		child, err := buildSubtree(styledChild, inlineBox(sn))
		if err != nil {
			return err
		}
		inlineContainer(root).AddChild(child)
	case style.None:
		tracer().Debugf("skipping display:none subtree")
	}
	return nil
}

// buildSubtree builds the layout subtree rooted at a box of the given
// type for styled, recursing over its children the same way Build does
// for the top-level root.
func buildSubtree(styled *tree.Node[*style.StyledNode], boxType BoxType) (*tree.Node[*LayoutBox], error) {
	node := newLayoutBox(boxType)
	for _, child := range styled.Children() {
		if err := addChild(node, child); err != nil {
			return nil, err
		}
	}
	return node, nil
}

// inlineContainer returns the tree node that a new inline child of root
// should be appended to. If root is itself Inline or Anonymous, it is its
// own inline container. If root is Block: its last child is reused if it
// is already an AnonymousBlock, otherwise a fresh AnonymousBlock is
// appended and used. This guarantees consecutive inline children under a
// block parent share one anonymous wrapper.
func inlineContainer(root *tree.Node[*LayoutBox]) *tree.Node[*LayoutBox] {
	box := Box(root)
	if box.BoxType.IsInline() || box.BoxType.IsAnonymous() {
		return root
	}
	if last, ok := root.LastChild(); ok && Box(last).BoxType.IsAnonymous() {
		return last
	}
	tracer().Debugf("inserting anonymous block for inline children")
	anon := newLayoutBox(anonymousBox())
	root.AddChild(anon)
	return anon
}
