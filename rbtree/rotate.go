// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/forest/fault"
)

// The two local rotations.  Each takes the pivot node of a sub-tree,
// repairs the child and parent links in O(1) and re-points the tree
// root when the pivot was the root.  The in-order sequence of the
// sub-tree is unchanged; colours are left to the caller.
//
// The double rotations of the repair walks are composed from these,
// inner rotation first, then outer.

// rotateLeft - pivot's right child becomes the sub-tree root
func (tree *Tree) rotateLeft(p *Node) {
	p1 := p.right
	if nil == p1 {
		fault.Panicf("rbtree: rotate left: %v has no right child", p.key)
	}

	p.right = p1.left
	if nil != p1.left {
		p1.left.up = p
	}
	p1.up = p.up

	switch {
	case nil == p.up:
		tree.root = p1
	case p == p.up.left:
		p.up.left = p1
	default:
		p.up.right = p1
	}

	p1.left = p
	p.up = p1

	fixHeight(p)
	fixHeight(p1)
	tree.countRotation()
}

// rotateRight - pivot's left child becomes the sub-tree root
func (tree *Tree) rotateRight(p *Node) {
	p1 := p.left
	if nil == p1 {
		fault.Panicf("rbtree: rotate right: %v has no left child", p.key)
	}

	p.left = p1.right
	if nil != p1.right {
		p1.right.up = p
	}
	p1.up = p.up

	switch {
	case nil == p.up:
		tree.root = p1
	case p == p.up.right:
		p.up.right = p1
	default:
		p.up.left = p1
	}

	p1.right = p
	p.up = p1

	fixHeight(p)
	fixHeight(p1)
	tree.countRotation()
}
