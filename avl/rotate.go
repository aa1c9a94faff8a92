// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/forest/fault"
)

// The four local rotations.  Each takes the pivot node of an
// unbalanced sub-tree, repairs child links, parent links, the
// sub-tree node counts and the balance values, and returns the new
// sub-tree root.  The in-order sequence of the sub-tree is unchanged.
//
// The single rotations also report whether the sub-tree height
// shrank: during insertion repair the pivot's child can never be
// level so the height always shrinks back to its pre-insert value
// and the flag is ignored; during deletion repair a level child
// absorbs the rotation without a height change and the repair walk
// stops.  The double rotations always shrink the sub-tree.

// single RR rotation: pivot's right child becomes the sub-tree root
func (tree *Tree) rotateLeft(p *Node) (*Node, bool) {
	p1 := p.right
	if nil == p1 {
		fault.Panicf("avl: rotate left: %v has no right child", p.key)
	}

	shrunk := true
	p.right = p1.left
	p1.left = p

	if 0 == p1.balance {
		p.balance = 1
		p1.balance = -1
		shrunk = false
	} else {
		p.balance = 0
		p1.balance = 0
	}

	nn := 1 + p.leftNodes + p1.leftNodes
	p.rightNodes = p1.leftNodes
	p1.leftNodes = nn

	p1.up = p.up
	p.up = p1
	if nil != p.right {
		p.right.up = p
	}

	tree.countRotation()
	return p1, shrunk
}

// single LL rotation: pivot's left child becomes the sub-tree root
func (tree *Tree) rotateRight(p *Node) (*Node, bool) {
	p1 := p.left
	if nil == p1 {
		fault.Panicf("avl: rotate right: %v has no left child", p.key)
	}

	shrunk := true
	p.left = p1.right
	p1.right = p

	if 0 == p1.balance {
		p.balance = -1
		p1.balance = 1
		shrunk = false
	} else {
		p.balance = 0
		p1.balance = 0
	}

	nn := 1 + p1.rightNodes + p.rightNodes
	p.leftNodes = p1.rightNodes
	p1.rightNodes = nn

	p1.up = p.up
	p.up = p1
	if nil != p.left {
		p.left.up = p
	}

	tree.countRotation()
	return p1, shrunk
}

// double LR rotation: rotate pivot's left child left, then the pivot
// right; the inner grandchild becomes the sub-tree root
func (tree *Tree) rotateLeftRight(p *Node) *Node {
	p1 := p.left
	if nil == p1 || nil == p1.right {
		fault.Panicf("avl: rotate left-right: %v lacks inner grandchild", p.key)
	}

	p2 := p1.right
	p1.right = p2.left
	p2.left = p1
	p.left = p2.right
	p2.right = p

	if -1 == p2.balance {
		p.balance = 1
	} else {
		p.balance = 0
	}
	if +1 == p2.balance {
		p1.balance = -1
	} else {
		p1.balance = 0
	}
	p2.balance = 0

	nl := 1 + p1.leftNodes + p2.leftNodes
	nr := 1 + p2.rightNodes + p.rightNodes

	p1.rightNodes = p2.leftNodes
	p.leftNodes = p2.rightNodes

	p2.leftNodes = nl
	p2.rightNodes = nr

	if nil != p.left {
		p.left.up = p
	}
	if nil != p1.right {
		p1.right.up = p1
	}
	p2.up = p.up
	p.up = p2
	p1.up = p2

	tree.countRotation()
	return p2
}

// double RL rotation: rotate pivot's right child right, then the
// pivot left; the inner grandchild becomes the sub-tree root
func (tree *Tree) rotateRightLeft(p *Node) *Node {
	p1 := p.right
	if nil == p1 || nil == p1.left {
		fault.Panicf("avl: rotate right-left: %v lacks inner grandchild", p.key)
	}

	p2 := p1.left
	p1.left = p2.right
	p2.right = p1
	p.right = p2.left
	p2.left = p

	if +1 == p2.balance {
		p.balance = -1
	} else {
		p.balance = 0
	}
	if -1 == p2.balance {
		p1.balance = 1
	} else {
		p1.balance = 0
	}
	p2.balance = 0

	nl := 1 + p.leftNodes + p2.leftNodes
	nr := 1 + p2.rightNodes + p1.rightNodes

	p.rightNodes = p2.leftNodes
	p1.leftNodes = p2.rightNodes

	p2.leftNodes = nl
	p2.rightNodes = nr

	if nil != p.right {
		p.right.up = p
	}
	if nil != p1.left {
		p1.left.up = p1
	}
	p2.up = p.up
	p.up = p2
	p1.up = p2

	tree.countRotation()
	return p2
}
