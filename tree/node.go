/*
Package tree provides a small generic tree type shared by the styled and
layout trees of a rendering pass. The document tree (package dom) is a
plain recursive struct and does not use it.

In a fully object-oriented language we would subclass a tree type for each
of these. In Go we resort to composition instead: the styled and layout
node types embed Node[T] and add their own payload accessors on top of it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tree

import (
	"fmt"
	"sync"
)

// Node is the base type every tree in this module is built from. Child
// access is protected by a mutex so that a tree which is done being built
// may be safely read from multiple goroutines — relevant once several
// independent rendering passes run concurrently over separate inputs (see
// the concurrency model described for the rendering pipeline).
type Node[T comparable] struct {
	parent   *Node[T]
	children childrenSlice[T]
	Payload  T // the node's type-specific data, e.g. a *StyledNode or a *LayoutBox
}

// NewNode creates a new, childless tree node carrying payload.
func NewNode[T comparable](payload T) *Node[T] {
	return &Node[T]{Payload: payload}
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("(Node #ch=%d %v)", node.ChildCount(), node.Payload)
}

// AddChild appends ch as the last child of node, linking ch's parent
// pointer back to node. Returns node, to allow chaining of AddChild calls.
func (node *Node[T]) AddChild(ch *Node[T]) *Node[T] {
	if ch != nil {
		node.children.add(ch, node)
	}
	return node
}

// Parent returns the parent of node, or nil for a tree root.
func (node *Node[T]) Parent() *Node[T] {
	return node.parent
}

// ChildCount returns the number of direct children of node.
func (node *Node[T]) ChildCount() int {
	return node.children.length()
}

// Children returns a snapshot slice of node's direct children, in the
// order they were added.
func (node *Node[T]) Children() []*Node[T] {
	return node.children.asSlice()
}

// LastChild returns the last child of node, or (nil, false) if node has no
// children.
func (node *Node[T]) LastChild() (*Node[T], bool) {
	return node.children.last()
}

// --- concurrency-safe slice of children --------------------------------

type childrenSlice[T comparable] struct {
	sync.RWMutex
	slice []*Node[T]
}

func (chs *childrenSlice[T]) length() int {
	chs.RLock()
	defer chs.RUnlock()
	return len(chs.slice)
}

func (chs *childrenSlice[T]) add(child *Node[T], parent *Node[T]) {
	chs.Lock()
	defer chs.Unlock()
	chs.slice = append(chs.slice, child)
	child.parent = parent
}

func (chs *childrenSlice[T]) last() (*Node[T], bool) {
	chs.RLock()
	defer chs.RUnlock()
	if len(chs.slice) == 0 {
		return nil, false
	}
	return chs.slice[len(chs.slice)-1], true
}

func (chs *childrenSlice[T]) asSlice() []*Node[T] {
	chs.RLock()
	defer chs.RUnlock()
	children := make([]*Node[T], len(chs.slice))
	copy(children, chs.slice)
	return children
}
