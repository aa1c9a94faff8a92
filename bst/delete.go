// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/forest/fault"
	"github.com/bitmark-inc/forest/item"
)

// Delete - remove a key from the tree and return its stored value
//
// fails with fault.ErrEmptyTree or fault.ErrKeyNotFound
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

// unlink a node, moving its in-order successor into its place when
// both children are present
func (tree *Tree) remove(n *Node) {
	switch {
	case nil == n.left:
		tree.transplant(n, n.right)

	case nil == n.right:
		tree.transplant(n, n.left)

	default:
		s := n.right.first()
		if s.up != n {
			tree.transplant(s, s.right)
			s.right = n.right
			s.right.up = s
		}
		tree.transplant(n, s)
		s.left = n.left
		s.left.up = s
	}

	n.left = nil
	n.right = nil
	n.up = nil
}
