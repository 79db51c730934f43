package boxtree

// Rect is an axis-aligned pixel rectangle: (x, y) is its top-left corner
// relative to the document origin, (width, height) its extent.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// expandedBy returns r expanded outward on all four sides by edges,
// i.e. r ⊕ edges: Rect(r.x−edges.left, r.y−edges.top,
// r.width+edges.left+edges.right, r.height+edges.top+edges.bottom).
func (r Rect) expandedBy(edges EdgeSizes) Rect {
	return Rect{
		X:      r.X - edges.Left,
		Y:      r.Y - edges.Top,
		Width:  r.Width + edges.Left + edges.Right,
		Height: r.Height + edges.Top + edges.Bottom,
	}
}

// EdgeSizes is a four-way pixel offset: left, right, top, bottom.
type EdgeSizes struct {
	Left, Right, Top, Bottom float64
}

// Dimensions is the full box model of a layout box: the content Rect plus
// the padding/border/margin edges surrounding it.
type Dimensions struct {
	Content Rect
	Padding EdgeSizes
	Border  EdgeSizes
	Margin  EdgeSizes
}

// PaddingBox returns the content rect expanded outward by padding.
func (d Dimensions) PaddingBox() Rect {
	return d.Content.expandedBy(d.Padding)
}

// BorderBox returns the padding box expanded outward by border.
func (d Dimensions) BorderBox() Rect {
	return d.PaddingBox().expandedBy(d.Border)
}

// MarginBox returns the border box expanded outward by margin.
func (d Dimensions) MarginBox() Rect {
	return d.BorderBox().expandedBy(d.Margin)
}
