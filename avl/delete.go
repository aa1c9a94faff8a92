// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

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
	value, removed, _ := tree.delete(key, &tree.root)
	if !removed {
		return nil, fault.ErrKeyNotFound
	}
	tree.count -= 1
	tree.recordHeight()
	return value, nil
}

// delete repair: left branch has shrunk
func (tree *Tree) balanceLeft(pp **Node) bool {
	h := true
	p := *pp
	switch p.balance {
	case -1:
		p.balance = 0
	case 0:
		p.balance = 1
		h = false
	default: // balance == +1, rebalance
		if p.right.balance >= 0 {
			*pp, h = tree.rotateLeft(p)
		} else {
			*pp = tree.rotateRightLeft(p)
		}
	}
	return h
}

// delete repair: right branch has shrunk
func (tree *Tree) balanceRight(pp **Node) bool {
	h := true
	p := *pp
	switch p.balance {
	case +1:
		p.balance = 0
	case 0:
		p.balance = -1
		h = false
	default: // balance == -1, rebalance
		if p.left.balance <= 0 {
			*pp, h = tree.rotateRight(p)
		} else {
			*pp = tree.rotateLeftRight(p)
		}
	}
	return h
}

// delete: replace a node having two children by its in-order
// predecessor, the rightmost node of the left sub-tree
func (tree *Tree) del(qq **Node, rr **Node) bool {
	h := false
	if nil != (*rr).right {
		h = tree.del(qq, &(*rr).right)
		(*rr).rightNodes -= 1
		if h {
			h = tree.balanceRight(rr)
		}
	} else {
		q := *qq
		r := *rr
		rl := r.left
		if nil != rl {
			rl.up = r.up
		}

		if r != q.left {
			r.left = q.left
			r.leftNodes = q.leftNodes - 1
		}
		r.right = q.right
		r.up = q.up
		r.balance = q.balance
		r.rightNodes = q.rightNodes

		if nil != r.right {
			r.right.up = r
		}
		if nil != r.left {
			r.left.up = r
		}

		*qq = r
		*rr = rl

		h = true
	}
	return h
}

// internal delete routine
func (tree *Tree) delete(key item.Item, pp **Node) (interface{}, bool, bool) {
	h := false
	if nil == *pp { // key not in tree
		return nil, false, h
	}
	value := interface{}(nil)
	removed := false
	switch c := (*pp).key.Compare(key); {
	case c > 0: // (*pp).key > key
		value, removed, h = tree.delete(key, &(*pp).left)
		if removed {
			(*pp).leftNodes -= 1
		}
		if h {
			h = tree.balanceLeft(pp)
		}
	case c < 0: // (*pp).key < key
		value, removed, h = tree.delete(key, &(*pp).right)
		if removed {
			(*pp).rightNodes -= 1
		}
		if h {
			h = tree.balanceRight(pp)
		}
	default: // found: delete p
		q := *pp
		value = q.value // preserve the value part
		if nil == q.right {
			if nil != q.left {
				q.left.up = q.up
			}
			*pp = q.left
			h = true
		} else if nil == q.left {
			q.right.up = q.up
			*pp = q.right
			h = true
		} else {
			h = tree.del(pp, &q.left)
			(*pp).left = q.left // p has changed, but q.left has left link value
			if h {
				h = tree.balanceLeft(pp)
			}
		}
		freeNode(q)    // return deleted node to pool
		removed = true // indicate that an item was removed
	}
	return value, removed, h
}
