package style_test

import (
	"testing"

	"github.com/npillmayer/littlebrowser/cssom"
	"github.com/npillmayer/littlebrowser/cssparse"
	"github.com/npillmayer/littlebrowser/dom"
	"github.com/npillmayer/littlebrowser/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSheet(t *testing.T, css string) *cssom.Stylesheet {
	t.Helper()
	sheet, err := cssparse.Parse(css)
	require.NoError(t, err)
	return sheet
}

func TestStyleTreeWithEmptyStylesheet(t *testing.T) {
	root := dom.NewElement("div", nil, nil)
	styled := style.Node(style.StyleTree(root, cssom.NewStylesheet(nil)))
	_, ok := styled.Value("color")
	assert.False(t, ok)
}

func TestStyleTreeTextNodeHasEmptyValues(t *testing.T) {
	text := dom.NewText("hello")
	styled := style.Node(style.StyleTree(text, cssom.NewStylesheet(nil)))
	_, ok := styled.Value("color")
	assert.False(t, ok)
}

func TestStyleTreeSingleRule(t *testing.T) {
	root := dom.NewElement("div", dom.AttrMap{"id": "main"}, nil)
	sheet := mustSheet(t, `div#main { color: red; }`)
	styled := style.Node(style.StyleTree(root, sheet))
	v, ok := styled.Value("color")
	require.True(t, ok)
	assert.True(t, v.IsKeyword("red"))
}

func TestStyleTreeNestedElements(t *testing.T) {
	child := dom.NewElement("p", nil, nil)
	root := dom.NewElement("div", nil, []*dom.Node{child})
	sheet := mustSheet(t, `p { margin: 10px; }`)
	styledRoot := style.StyleTree(root, sheet)
	styledChild := style.Node(styledRoot.Children()[0])
	v, ok := styledChild.Value("margin")
	require.True(t, ok)
	assert.Equal(t, float64(10), v.ToPx())
}

func TestCascadeConflictingRulesLaterWins(t *testing.T) {
	root := dom.NewElement("div", nil, nil)
	sheet := mustSheet(t, `div { color: red } div { color: blue }`)
	styled := style.Node(style.StyleTree(root, sheet))
	v, _ := styled.Value("color")
	assert.True(t, v.IsKeyword("blue"))
}

// S6. Cascade specificity.
func TestCascadeSpecificityWins(t *testing.T) {
	root := dom.NewElement("div", dom.AttrMap{"id": "x", "class": "y"}, nil)
	sheet := mustSheet(t, `div { color: red } .y { color: green } #x { color: blue }`)
	styled := style.Node(style.StyleTree(root, sheet))
	v, _ := styled.Value("color")
	assert.True(t, v.IsKeyword("blue"))
}

func TestDisplayDefaultsToInline(t *testing.T) {
	root := dom.NewElement("span", nil, nil)
	styled := style.Node(style.StyleTree(root, cssom.NewStylesheet(nil)))
	assert.Equal(t, style.Inline, styled.Display())
}

func TestDisplayBlockAndNone(t *testing.T) {
	blockEl := dom.NewElement("div", nil, nil)
	noneEl := dom.NewElement("div", dom.AttrMap{"class": "hidden"}, nil)
	sheet := mustSheet(t, `div { display: block; } .hidden { display: none; }`)

	blockStyled := style.Node(style.StyleTree(blockEl, sheet))
	assert.Equal(t, style.Block, blockStyled.Display())

	noneStyled := style.Node(style.StyleTree(noneEl, sheet))
	assert.Equal(t, style.None, noneStyled.Display())
}

func TestSelectorClassesMustAllBePresent(t *testing.T) {
	// Non-inverted semantics: a selector naming classes y and z only
	// matches an element carrying both.
	el := dom.NewElement("div", dom.AttrMap{"class": "y"}, nil)
	sheet := mustSheet(t, `.y.z { color: red; }`)
	styled := style.Node(style.StyleTree(el, sheet))
	_, ok := styled.Value("color")
	assert.False(t, ok, "expected no match: element lacks class z")

	el2 := dom.NewElement("div", dom.AttrMap{"class": "y z"}, nil)
	styled2 := style.Node(style.StyleTree(el2, sheet))
	v, ok := styled2.Value("color")
	require.True(t, ok, "expected match: element carries both y and z")
	assert.True(t, v.IsKeyword("red"))
}

func TestLookupFallsBackToShorthandThenDefault(t *testing.T) {
	root := dom.NewElement("div", nil, nil)
	sheet := mustSheet(t, `div { margin: 5px; }`)
	styled := style.Node(style.StyleTree(root, sheet))

	v := styled.Lookup("margin-left", "margin", cssom.Length(0, cssom.Px))
	assert.Equal(t, float64(5), v.ToPx())

	v2 := styled.Lookup("padding-left", "padding", cssom.Length(0, cssom.Px))
	assert.Equal(t, float64(0), v2.ToPx())
}
