// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
}

// New - create an initially empty sorted tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
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
// unlike the balanced trees this can be as bad as Count()
func (tree *Tree) Height() int {
	return height(tree.root)
}

func height(p *Node) int {
	if nil == p {
		return 0
	}
	hl := height(p.left)
	hr := height(p.right)
	if hr > hl {
		return hr + 1
	}
	return hl + 1
}
