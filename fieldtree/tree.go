// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fieldtree groups properties into a tree of named groups,
// according to their paths, and produces the ordered sequence of
// entries to render for a given search.
package fieldtree

import (
	"cmp"
	"iter"
	"slices"

	"cogentcore.org/inspector/meta"
	"cogentcore.org/inspector/settings"
)

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)

// SpacerSize is the relative size of the spacers that close expanded groups.
const SpacerSize = 0.5

// Tree is a tree of groups built from a flat list of properties.
// It is rebuilt from scratch for every registration; the expanded
// state of groups survives rebuilds through its [settings.Store].
type Tree struct {

	// Root is the root node, which has no name and no path.
	Root *Node

	// Properties are all of the properties of the tree,
	// in registration order.
	Properties []*meta.Property
}

// New returns a new [Tree] for the given properties. The expanded state
// of groups is read from and saved to the given store; if it is nil,
// a new [settings.MemoryStore] is used.
func New(props []*meta.Property, store settings.Store) *Tree {
	if store == nil {
		store = settings.NewMemoryStore(nil)
	}
	t := &Tree{Properties: props}
	t.Root = newNode("", "", nil, store)
	for _, p := range props {
		cur := t.Root
		for _, tok := range meta.SplitPath(p.Path) {
			cur = cur.requireChild(tok, p.Order)
		}
		cur.Properties = append(cur.Properties, p)
	}
	return t
}

// NodeByPath returns the node for the given path, split with
// [meta.SplitPath], or nil if there is none. An empty path
// gives the root node.
func (t *Tree) NodeByPath(path string) *Node {
	cur := t.Root
	for _, tok := range meta.SplitPath(path) {
		cur = cur.Child(tok)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Walk calls the given function on every node of the tree, in pre-order.
// See [Node.Walk].
func (t *Tree) Walk(fun func(n *Node) bool) {
	t.Root.Walk(fun)
}

// item is one element of the traversal stack: either a node
// that remains to be expanded or a property to yield.
type item struct {
	node *Node
	prop *meta.Property
}

func (it item) order() int {
	if it.node != nil {
		return it.node.OrderValue()
	}
	return it.prop.OrderValue()
}

// Fields returns the sequence of properties to render for the given search,
// including the synthetic group headers and spacers. For each group:
//   - nothing is emitted if no property of its subtree is visible.
//   - a group header is emitted first (key = name, value = path).
//   - if it is expanded, its child groups and visible properties follow,
//     sorted by order, with groups first for equal orders, and each child
//     group is fully emitted before the next entry.
//   - if it is expanded, a spacer (key = name + "-spacer") closes it.
//
// The root has no header and no spacer. Visibility is computed anew
// every time the sequence is ranged over.
func (t *Tree) Fields(search string) iter.Seq[*meta.Property] {
	return func(yield func(*meta.Property) bool) {
		stack := []item{{node: t.Root}}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if cur.prop != nil {
				if !yield(cur.prop) {
					return
				}
				continue
			}
			stack = t.expand(stack, cur.node, search)
		}
	}
}

// expand pushes the entries of the given node onto the stack,
// such that they are popped in render order.
func (t *Tree) expand(stack []item, n *Node, search string) []item {
	if !n.IsRoot() {
		if vis, _ := n.Count(search); vis == 0 {
			return stack
		}
	}
	var cands []item
	if n.Expanded() {
		for _, c := range n.Children.Values {
			cands = append(cands, item{node: c})
		}
		for _, p := range n.VisibleProperties(search) {
			cands = append(cands, item{prop: p})
		}
		// nodes come before properties in cands, so a stable sort
		// keeps them first for equal orders
		slices.SortStableFunc(cands, func(a, b item) int {
			return cmp.Compare(a.order(), b.order())
		})
	}
	if !n.IsRoot() && n.Expanded() {
		stack = append(stack, item{prop: &meta.Property{
			Key:   n.Name + "-spacer",
			Value: SpacerSize,
			Type:  meta.TypeSpacer,
			Order: n.Order,
		}})
	}
	for i := len(cands) - 1; i >= 0; i-- {
		stack = append(stack, cands[i])
	}
	if !n.IsRoot() {
		stack = append(stack, item{prop: meta.Group(n.Name, n.Path, n.Order)})
	}
	return stack
}
