package boxtree

import (
	"github.com/npillmayer/littlebrowser/cssom"
	"github.com/npillmayer/littlebrowser/dom"
	"github.com/npillmayer/littlebrowser/style"
	"github.com/npillmayer/littlebrowser/tree"
)

// InitialContainingBlock returns the Dimensions a driver must pass to
// Layout for the root of a rendering pass: content.width set to the
// viewport width, content.height 0, content.x = content.y = 0, and zero
// padding/border/margin.
func InitialContainingBlock(viewportWidth float64) Dimensions {
	return Dimensions{Content: Rect{Width: viewportWidth}}
}

// Render runs the full three-stage pipeline — style, build, layout — over
// a parsed document and a stylesheet, against a viewport of the given
// width. It is a thin driver, not part of the core: each stage remains a
// pure function of its inputs, invoked here in sequence.
func Render(root *dom.Node, sheet *cssom.Stylesheet, viewportWidth float64) (*tree.Node[*LayoutBox], error) {
	styled := style.StyleTree(root, sheet)
	laidOutTree, err := Build(styled)
	if err != nil {
		return nil, err
	}
	if err := Layout(laidOutTree, InitialContainingBlock(viewportWidth)); err != nil {
		return nil, err
	}
	return laidOutTree, nil
}
