// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/forest/fault"
	"github.com/bitmark-inc/forest/item"
)

// Insert - insert a new node into the tree
//
// fails with fault.ErrKeyAlreadyExists if the key is already stored,
// leaving the tree unchanged
func (tree *Tree) Insert(key item.Item, value interface{}) error {
	root, added, _, err := tree.insert(key, value, tree.root, false)
	if nil != err {
		return err
	}
	tree.root = root
	if added {
		tree.count += 1
	}
	tree.recordHeight()
	return nil
}

// Upsert - insert a new node or overwrite the value of an existing
// one, returns true if a new node was added
func (tree *Tree) Upsert(key item.Item, value interface{}) bool {
	root, added, _, _ := tree.insert(key, value, tree.root, true)
	tree.root = root
	if added {
		tree.count += 1
	}
	tree.recordHeight()
	return added
}

// internal routine for insert
//
// returns the possibly changed sub-tree root, whether a node was
// added, whether the sub-tree height grew and the duplicate key
// status; overwrite selects the duplicate key policy
func (tree *Tree) insert(key item.Item, value interface{}, p *Node, overwrite bool) (*Node, bool, bool, error) {
	if nil == p { // insert new node
		p = newNode(key, value)
		return p, true, true, nil
	}
	added := false
	grown := false
	var err error
	switch c := p.key.Compare(key); {
	case c > 0: // p.key > key
		p.left, added, grown, err = tree.insert(key, value, p.left, overwrite)
		if added {
			p.leftNodes += 1
		}
		if grown {
			p.left.up = p

			// left branch has grown
			switch p.balance {
			case +1:
				p.balance = 0
				grown = false
			case 0:
				p.balance = -1
			default: // balance == -1, rebalance
				if -1 == p.left.balance {
					p, _ = tree.rotateRight(p)
				} else {
					p = tree.rotateLeftRight(p)
				}
				grown = false
			}
		}
	case c < 0: // p.key < key
		p.right, added, grown, err = tree.insert(key, value, p.right, overwrite)
		if added {
			p.rightNodes += 1
		}
		if grown {
			p.right.up = p

			// right branch has grown
			switch p.balance {
			case -1:
				p.balance = 0
				grown = false
			case 0:
				p.balance = 1
			default: // balance == +1, rebalance
				if 1 == p.right.balance {
					p, _ = tree.rotateLeft(p)
				} else {
					p = tree.rotateRightLeft(p)
				}
				grown = false
			}
		}
	default:
		if overwrite {
			p.value = value
		} else {
			err = fault.ErrKeyAlreadyExists
		}
	}
	return p, added, grown, err
}
