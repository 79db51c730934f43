package boxtree

import (
	"github.com/npillmayer/littlebrowser/cssom"
	"github.com/npillmayer/littlebrowser/style"
	"github.com/npillmayer/littlebrowser/tree"
)

var zeroPx = cssom.Length(0, cssom.Px)
var autoKeyword = cssom.Keyword("auto")

// Layout lays out the tree rooted at node against containingBlock,
// dispatching on box type: only a BlockNode is laid out in this core;
// InlineNode and AnonymousBlock are no-ops, left at their zero
// dimensions.
func Layout(node *tree.Node[*LayoutBox], containingBlock Dimensions) error {
	box := Box(node)
	if !box.BoxType.IsBlock() {
		return nil
	}
	return layoutBlock(node, containingBlock)
}

func layoutBlock(node *tree.Node[*LayoutBox], containingBlock Dimensions) error {
	box := Box(node)
	sn, err := box.BoxType.StyleNode()
	if err != nil {
		return err
	}

	calculateWidth(box, sn, containingBlock)
	calculatePosition(box, sn, containingBlock)

	if err := layoutChildren(node, box); err != nil {
		return err
	}

	calculateHeight(box, sn)
	return nil
}

// calculateWidth is Phase 1 of the block layout algorithm: it depends
// only on the containing block's width.
func calculateWidth(box *LayoutBox, sn *style.StyledNode, containingBlock Dimensions) {
	width, ok := sn.Value("width")
	if !ok {
		width = autoKeyword
	}

	// An absent margin-left/margin-right (no longhand, no shorthand) falls
	// back to auto, not 0 — otherwise an explicit width with no margin
	// declared at all could never hit the centering case below.
	marginLeft := sn.Lookup("margin-left", "margin", autoKeyword)
	marginRight := sn.Lookup("margin-right", "margin", autoKeyword)
	borderLeft := sn.Lookup("border-left-width", "border-width", zeroPx)
	borderRight := sn.Lookup("border-right-width", "border-width", zeroPx)
	paddingLeft := sn.Lookup("padding-left", "padding", zeroPx)
	paddingRight := sn.Lookup("padding-right", "padding", zeroPx)

	total := width.ToPx() + marginLeft.ToPx() + marginRight.ToPx() +
		borderLeft.ToPx() + borderRight.ToPx() + paddingLeft.ToPx() + paddingRight.ToPx()

	if !width.IsAuto() && total > containingBlock.Content.Width {
		if marginLeft.IsAuto() {
			marginLeft = zeroPx
		}
		if marginRight.IsAuto() {
			marginRight = zeroPx
		}
	}

	underflow := containingBlock.Content.Width - total

	widthAuto := width.IsAuto()
	marginLeftAuto := marginLeft.IsAuto()
	marginRightAuto := marginRight.IsAuto()
	tracer().Debugf("width resolution: width auto=%v, margin-left auto=%v, margin-right auto=%v",
		widthAuto, marginLeftAuto, marginRightAuto)

	switch {
	case !widthAuto && !marginLeftAuto && !marginRightAuto:
		// Overconstrained: the right margin absorbs the slack, possibly
		// going negative.
		marginRight = cssom.Length(marginRight.ToPx()+underflow, cssom.Px)
	case !widthAuto && !marginLeftAuto && marginRightAuto:
		marginRight = cssom.Length(underflow, cssom.Px)
	case !widthAuto && marginLeftAuto && !marginRightAuto:
		marginLeft = cssom.Length(underflow, cssom.Px)
	case !widthAuto && marginLeftAuto && marginRightAuto:
		marginLeft = cssom.Length(underflow/2, cssom.Px)
		marginRight = cssom.Length(underflow/2, cssom.Px)
	default: // width is auto
		if marginLeftAuto {
			marginLeft = zeroPx
		}
		if marginRightAuto {
			marginRight = zeroPx
		}
		if underflow >= 0 {
			width = cssom.Length(underflow, cssom.Px)
		} else {
			width = zeroPx
			marginRight = cssom.Length(marginRight.ToPx()+underflow, cssom.Px)
		}
	}

	box.Dimensions.Content.Width = width.ToPx()
	box.Dimensions.Padding.Left = paddingLeft.ToPx()
	box.Dimensions.Padding.Right = paddingRight.ToPx()
	box.Dimensions.Border.Left = borderLeft.ToPx()
	box.Dimensions.Border.Right = borderRight.ToPx()
	box.Dimensions.Margin.Left = marginLeft.ToPx()
	box.Dimensions.Margin.Right = marginRight.ToPx()
}

// calculatePosition is Phase 2: top-edge offsets and x placement.
func calculatePosition(box *LayoutBox, sn *style.StyledNode, containingBlock Dimensions) {
	d := &box.Dimensions

	d.Margin.Top = sn.Lookup("margin-top", "margin", zeroPx).ToPx()
	d.Margin.Bottom = sn.Lookup("margin-bottom", "margin", zeroPx).ToPx()
	d.Border.Top = sn.Lookup("border-top-width", "border-width", zeroPx).ToPx()
	d.Border.Bottom = sn.Lookup("border-bottom-width", "border-width", zeroPx).ToPx()
	d.Padding.Top = sn.Lookup("padding-top", "padding", zeroPx).ToPx()
	d.Padding.Bottom = sn.Lookup("padding-bottom", "padding", zeroPx).ToPx()

	d.Content.X = containingBlock.Content.X + d.Margin.Left + d.Border.Left + d.Padding.Left
	d.Content.Y = containingBlock.Content.Y + containingBlock.Content.Height +
		d.Margin.Top + d.Border.Top + d.Padding.Top
}

// layoutChildren is Phase 3: each child is laid out against the parent's
// current dimensions, and the parent's content height is incremented by
// the child's margin-box height immediately after — exactly what makes
// siblings stack vertically.
func layoutChildren(node *tree.Node[*LayoutBox], box *LayoutBox) error {
	for _, childNode := range node.Children() {
		if err := Layout(childNode, box.Dimensions); err != nil {
			return err
		}
		child := Box(childNode)
		box.Dimensions.Content.Height += child.Dimensions.MarginBox().Height
	}
	return nil
}

// calculateHeight is Phase 4: an explicit height overrides the height
// accumulated from children in Phase 3.
func calculateHeight(box *LayoutBox, sn *style.StyledNode) {
	v, ok := sn.Value("height")
	if !ok {
		return
	}
	var h float64
	var unit cssom.Unit
	switch m := v.Match(); m {
	case m.Length(&h, &unit):
		box.Dimensions.Content.Height = h
	}
}
