// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/forest/fault"
	"github.com/bitmark-inc/forest/item"
)

// Insert - insert a new node into the tree
//
// fails with fault.ErrKeyAlreadyExists if the key is already stored,
// leaving the tree unchanged
func (tree *Tree) Insert(key item.Item, value interface{}) error {
	_, err := tree.insert(key, value, false)
	return err
}

// Upsert - insert a new node or overwrite the value of an existing
// one, returns true if a new node was added
func (tree *Tree) Upsert(key item.Item, value interface{}) bool {
	added, _ := tree.insert(key, value, true)
	return added
}

// internal routine for insert
// overwrite selects the duplicate key policy
func (tree *Tree) insert(key item.Item, value interface{}, overwrite bool) (bool, error) {
	var parent *Node
	p := tree.root
	isLeft := false

	for nil != p {
		parent = p
		switch c := p.key.Compare(key); {
		case c > 0: // p.key > key
			p = p.left
			isLeft = true
		case c < 0: // p.key < key
			p = p.right
			isLeft = false
		default:
			if !overwrite {
				return false, fault.ErrKeyAlreadyExists
			}
			p.value = value
			return false, nil
		}
	}

	// the new node starts red so no path gains a black node
	n := &Node{
		key:    key,
		value:  value,
		colour: RED,
		height: 1,
		up:     parent,
	}
	switch {
	case nil == parent:
		tree.root = n
	case isLeft:
		parent.left = n
	default:
		parent.right = n
	}

	tree.insertRepair(n)
	fixHeightsUpward(n)
	tree.count += 1
	tree.recordHeight()
	return true, nil
}

// repair walk after insertion: resolve red-red violations upward
//
// a red parent is never the root, so the grandparent always exists
// inside the loop
func (tree *Tree) insertRepair(n *Node) {
	for isRed(n.up) {
		parent := n.up
		grand := parent.up

		if parent == grand.left {
			uncle := grand.right
			if isRed(uncle) {
				// red uncle: push the extra red upward
				parent.colour = BLACK
				uncle.colour = BLACK
				grand.colour = RED
				n = grand
			} else {
				if n == parent.right {
					// inner grandchild: rotate to the outer shape first
					n = parent
					tree.rotateLeft(n)
					parent = n.up
				}
				parent.colour = BLACK
				grand.colour = RED
				tree.rotateRight(grand)
			}
		} else {
			uncle := grand.left
			if isRed(uncle) {
				parent.colour = BLACK
				uncle.colour = BLACK
				grand.colour = RED
				n = grand
			} else {
				if n == parent.left {
					n = parent
					tree.rotateRight(n)
					parent = n.up
				}
				parent.colour = BLACK
				grand.colour = RED
				tree.rotateLeft(grand)
			}
		}
	}
	tree.root.colour = BLACK
}
