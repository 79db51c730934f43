package tree_test

import (
	"testing"

	"github.com/npillmayer/littlebrowser/tree"
)

func TestNewNodeIsChildless(t *testing.T) {
	n := tree.NewNode("root")
	if n.ChildCount() != 0 {
		t.Errorf("expected fresh node to have no children, has %d", n.ChildCount())
	}
	if n.Parent() != nil {
		t.Errorf("expected fresh node to have no parent")
	}
	if _, ok := n.LastChild(); ok {
		t.Errorf("expected LastChild on empty node to report ok=false")
	}
}

func TestAddChildLinksParent(t *testing.T) {
	root := tree.NewNode("root")
	a := tree.NewNode("a")
	b := tree.NewNode("b")

	root.AddChild(a).AddChild(b)

	if root.ChildCount() != 2 {
		t.Fatalf("expected 2 children, got %d", root.ChildCount())
	}
	if a.Parent() != root {
		t.Errorf("expected a's parent to be root")
	}
	if b.Parent() != root {
		t.Errorf("expected b's parent to be root")
	}

	children := root.Children()
	if children[0] != a || children[1] != b {
		t.Errorf("expected children in insertion order [a, b], got %v", children)
	}

	last, ok := root.LastChild()
	if !ok || last != b {
		t.Errorf("expected LastChild to be b, got %v (ok=%v)", last, ok)
	}
}

func TestChildrenSnapshotIsIndependent(t *testing.T) {
	root := tree.NewNode("root")
	root.AddChild(tree.NewNode("a"))

	snapshot := root.Children()
	root.AddChild(tree.NewNode("b"))

	if len(snapshot) != 1 {
		t.Errorf("expected snapshot taken before second AddChild to retain length 1, got %d", len(snapshot))
	}
	if root.ChildCount() != 2 {
		t.Errorf("expected root to now have 2 children, got %d", root.ChildCount())
	}
}
