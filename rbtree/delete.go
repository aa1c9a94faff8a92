// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/forest/fault"
	"github.com/bitmark-inc/forest/item"
)

// Delete - removes a specific item from the tree
//
// returns the stored value; fails with fault.ErrEmptyTree on an
// empty tree and fault.ErrKeyNotFound when the key is absent, in
// both cases without changing the tree
func (tree *Tree) Delete(key item.Item) (interface{}, error) {
	if nil == tree.root {
		return nil, fault.ErrEmptyTree
	}
	n := tree.Search(key)
	if nil == n {
		return nil, fault.ErrKeyNotFound
	}
	value := n.value
	tree.remove(n)
	tree.count -= 1
	tree.recordHeight()
	return value, nil
}

// replace the sub-tree rooted at u by the one rooted at v
func (tree *Tree) transplant(u *Node, v *Node) {
	switch {
	case nil == u.up:
		tree.root = v
	case u == u.up.left:
		u.up.left = v
	default:
		u.up.right = v
	}
	if nil != v {
		v.up = u.up
	}
}

// unlink a node, reducing the two child case by swapping in the
// in-order successor, then repair if a black node left a path
func (tree *Tree) remove(n *Node) {
	removed := n.colour
	var x *Node      // the node taking the removed position, may be nil
	var parent *Node // the parent of that position after unlinking

	switch {
	case nil == n.left:
		x = n.right
		parent = n.up
		tree.transplant(n, n.right)
	case nil == n.right:
		x = n.left
		parent = n.up
		tree.transplant(n, n.left)
	default:
		s := n.right.first() // in-order successor, has no left child
		removed = s.colour
		x = s.right
		if s.up == n {
			parent = s
		} else {
			parent = s.up
			tree.transplant(s, s.right)
			s.right = n.right
			s.right.up = s
		}
		tree.transplant(n, s)
		s.left = n.left
		s.left.up = s
		s.colour = n.colour
	}

	if BLACK == removed {
		tree.deleteRepair(x, parent)
	}
	fixHeightsUpward(parent)
}

// repair walk after deletion: x carries a double black deficiency,
// parent is tracked explicitly because x may be a nil leaf
func (tree *Tree) deleteRepair(x *Node, parent *Node) {
	for x != tree.root && isBlack(x) {
		if x == parent.left {
			s := parent.right
			if nil == s {
				fault.Panicf("rbtree: delete repair: %v has no right sibling", parent.key)
			}
			if isRed(s) {
				// red sibling: rotate so the sibling is black
				s.colour = BLACK
				parent.colour = RED
				tree.rotateLeft(parent)
				s = parent.right
			}
			if isBlack(s.left) && isBlack(s.right) {
				// push the deficiency to the parent
				s.colour = RED
				x = parent
				parent = x.up
			} else {
				if isBlack(s.right) {
					// inner red child: rotate it to the outside
					s.left.colour = BLACK
					s.colour = RED
					tree.rotateRight(s)
					s = parent.right
				}
				// terminal case: outer red child
				s.colour = parent.colour
				parent.colour = BLACK
				s.right.colour = BLACK
				tree.rotateLeft(parent)
				x = tree.root
			}
		} else {
			s := parent.left
			if nil == s {
				fault.Panicf("rbtree: delete repair: %v has no left sibling", parent.key)
			}
			if isRed(s) {
				s.colour = BLACK
				parent.colour = RED
				tree.rotateRight(parent)
				s = parent.left
			}
			if isBlack(s.left) && isBlack(s.right) {
				s.colour = RED
				x = parent
				parent = x.up
			} else {
				if isBlack(s.left) {
					s.right.colour = BLACK
					s.colour = RED
					tree.rotateLeft(s)
					s = parent.left
				}
				s.colour = parent.colour
				parent.colour = BLACK
				s.left.colour = BLACK
				tree.rotateRight(parent)
				x = tree.root
			}
		}
	}
	if nil != x {
		x.colour = BLACK
	}
}
