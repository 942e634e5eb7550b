// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fieldtree

import (
	"fmt"
	"strings"

	"cogentcore.org/inspector/base/errors"
	"cogentcore.org/inspector/base/keylist"
	"cogentcore.org/inspector/meta"
	"cogentcore.org/inspector/settings"
)

// StoreKeyPrefix is the prefix of the keys under which
// the expanded state of groups is stored.
const StoreKeyPrefix = "inspector-group-"

// Node is one group of the tree. The root node has an empty name and path.
type Node struct {

	// Name is the name of the group, which is one token of a property path.
	Name string

	// Path is the full path of the group from the root,
	// with its tokens joined by slashes (eg: physics/ball).
	Path string

	// Order is the render priority of the group: the order
	// of the first property that created it, if any.
	Order *int

	// Children are the child groups, unique by name,
	// in the order in which they were first seen.
	Children keylist.List[string, *Node]

	// Properties are the properties attached directly to this group.
	Properties []*meta.Property

	// Parent is the parent group, or nil for the root.
	Parent *Node

	expanded bool
	store    settings.Store
}

// newNode returns a new node, reading its expanded state from the store.
func newNode(name, path string, parent *Node, store settings.Store) *Node {
	n := &Node{Name: name, Path: path, Parent: parent, store: store, expanded: true}
	if !n.IsRoot() {
		if v, ok := store.Get(n.StoreKey()); ok && v == "false" {
			n.expanded = false
		}
	}
	return n
}

// IsRoot returns whether this is the root node.
func (n *Node) IsRoot() bool {
	return n.Parent == nil
}

// StoreKey returns the key under which the expanded state
// of the node is stored.
func (n *Node) StoreKey() string {
	return StoreKeyPrefix + n.Path
}

// Expanded returns whether the node is expanded.
// The root node is always expanded.
func (n *Node) Expanded() bool {
	return n.expanded
}

// SetExpanded sets whether the node is expanded and saves it in the store.
// It has no effect on the root node.
func (n *Node) SetExpanded(expanded bool) error {
	if n.IsRoot() {
		return nil
	}
	n.expanded = expanded
	return errors.Log(n.store.Set(n.StoreKey(), fmt.Sprint(expanded)))
}

// Toggle toggles whether the node is expanded. See [Node.SetExpanded].
func (n *Node) Toggle() error {
	return n.SetExpanded(!n.expanded)
}

// OrderValue returns the order of the node, which is 0 if unset.
func (n *Node) OrderValue() int {
	if n.Order == nil {
		return 0
	}
	return *n.Order
}

// Child returns the child with the given name, or nil if there is none.
func (n *Node) Child(name string) *Node {
	c, _ := n.Children.AtTry(name)
	return c
}

// requireChild returns the child with the given name,
// making it with the given order if needed.
func (n *Node) requireChild(name string, order *int) *Node {
	return n.Children.Require(name, func() *Node {
		path := name
		if !n.IsRoot() {
			path = n.Path + "/" + name
		}
		c := newNode(name, path, n, n.store)
		c.Order = order
		return c
	})
}

// Matches returns whether the given property is visible for the given
// search: all properties are visible for an empty search, otherwise only
// those whose key contains the search, ignoring case.
func Matches(p *meta.Property, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Key), strings.ToLower(search))
}

// VisibleProperties returns the properties of this node
// that are visible for the given search.
func (n *Node) VisibleProperties(search string) []*meta.Property {
	var vis []*meta.Property
	for _, p := range n.Properties {
		if Matches(p, search) {
			vis = append(vis, p)
		}
	}
	return vis
}

// Count returns the number of properties in the subtree of this node
// that are visible for the given search, and the total number.
func (n *Node) Count(search string) (visible, total int) {
	n.Walk(func(c *Node) bool {
		visible += len(c.VisibleProperties(search))
		total += len(c.Properties)
		return Continue
	})
	return
}

// CountLabel returns the count label of the node for the given search:
// "(n)" when all properties are visible, or "(visible/n)" otherwise.
func (n *Node) CountLabel(search string) string {
	vis, total := n.Count(search)
	if vis == total {
		return fmt.Sprintf("(%d)", total)
	}
	return fmt.Sprintf("(%d/%d)", vis, total)
}

// Walk calls the given function on this node and its descendants,
// in pre-order. The children of a node are skipped when the function
// returns [Break] for it.
func (n *Node) Walk(fun func(n *Node) bool) {
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fun(cur) {
			continue
		}
		for i := cur.Children.Len() - 1; i >= 0; i-- {
			stack = append(stack, cur.Children.Values[i])
		}
	}
}

func (n *Node) String() string {
	if n.IsRoot() {
		return "root"
	}
	return n.Path
}
