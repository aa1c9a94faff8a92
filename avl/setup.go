// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/forest/item"
	"github.com/bitmark-inc/forest/metrics"
)

// Tree - type to hold the root node of a tree
type Tree struct {
	root    *Node
	count   int
	rotated *metrics.Counter
	heights *metrics.Histogram
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// NewWithMetrics - create an empty tree that reports a rotation
// counter as "avl.rotate" and a height histogram as "avl.height"
func NewWithMetrics(registry *metrics.Registry) *Tree {
	tree := New()
	tree.rotated = new(metrics.Counter)
	tree.heights = metrics.NewHistogram()
	registry.Register("avl.rotate", tree.rotated)
	registry.Register("avl.height", tree.heights)
	return tree
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Height - number of levels in the tree, zero when empty
//
// Derived by descending the higher branch at each node, so this is
// O(log n) and does not walk the whole tree.
func (tree *Tree) Height() int {
	h := 0
	for p := tree.root; nil != p; {
		h += 1
		if p.balance > 0 {
			p = p.right
		} else {
			p = p.left
		}
	}
	return h
}

// internal: bump the rotation counter if metrics are attached
func (tree *Tree) countRotation() {
	if nil != tree.rotated {
		tree.rotated.Increment()
	}
}

// internal: record the current height if metrics are attached
func (tree *Tree) recordHeight() {
	if nil != tree.heights {
		tree.heights.Update(tree.Height())
	}
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node) GetChildrenByDepth(depth uint) []*Node {
	nodes := []*Node{}

	if depth == 0 {
		nodes = []*Node{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.GetChildrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// Key - read the key from a node item
func (p *Node) Key() item.Item {
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() interface{} {
	return p.value
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Left - return the left child or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - return the right child or nil
func (p *Node) Right() *Node {
	return p.right
}

// Balance - height of right sub-tree minus height of left sub-tree
func (p *Node) Balance() int {
	return p.balance
}

// Depth - get the depth of a node
func (p *Node) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}
