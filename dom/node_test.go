package dom_test

import (
	"testing"

	"github.com/npillmayer/littlebrowser/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDPresentAndAbsent(t *testing.T) {
	withID := dom.NewElement("div", dom.AttrMap{"id": "x"}, nil)
	var id string
	switch m := withID.ID().Match(); m {
	case m.Just(&id):
	case m.Nothing():
		t.Fatal("expected id to be present")
	}
	assert.Equal(t, "x", id)

	withoutID := dom.NewElement("div", dom.AttrMap{}, nil)
	switch m := withoutID.ID().Match(); m {
	case m.Just(&id):
		t.Fatal("expected id to be absent")
	case m.Nothing():
	}
}

func TestClassesSplitOnSpace(t *testing.T) {
	el := dom.NewElement("div", dom.AttrMap{"class": "a b c"}, nil)
	classes := el.Classes()
	require.Len(t, classes, 3)
	assert.True(t, el.HasClass("a"))
	assert.True(t, el.HasClass("b"))
	assert.True(t, el.HasClass("c"))
	assert.False(t, el.HasClass("d"))
}

func TestClassesAbsentIsEmptySet(t *testing.T) {
	el := dom.NewElement("div", dom.AttrMap{}, nil)
	assert.Empty(t, el.Classes())
}

func TestTextNodeHasNoChildrenNoClassesNoID(t *testing.T) {
	text := dom.NewText("hello")
	assert.True(t, text.IsText())
	assert.False(t, text.IsElement())
	assert.Empty(t, text.Children())
	assert.Empty(t, text.Classes())

	var id string
	switch m := text.ID().Match(); m {
	case m.Just(&id):
		t.Fatal("text node should never have an id")
	case m.Nothing():
	}
}

func TestAppendChildPreservesOrder(t *testing.T) {
	root := dom.NewElement("p", nil, nil)
	root.AppendChild(dom.NewText("a"))
	root.AppendChild(dom.NewText("b"))
	children := root.Children()
	require.Len(t, children, 2)
	assert.Equal(t, "a", children[0].Text)
	assert.Equal(t, "b", children[1].Text)
}
