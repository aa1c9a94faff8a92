// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
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
// counter as "rbt.rotate" and a height histogram as "rbt.height"
func NewWithMetrics(registry *metrics.Registry) *Tree {
	tree := New()
	tree.rotated = new(metrics.Counter)
	tree.heights = metrics.NewHistogram()
	registry.Register("rbt.rotate", tree.rotated)
	registry.Register("rbt.height", tree.heights)
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
// each node stores its own height and the mutation paths keep the
// stored values current, so this is a constant time read
func (tree *Tree) Height() int {
	return nodeHeight(tree.root)
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
