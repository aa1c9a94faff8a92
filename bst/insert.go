// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/forest/fault"
	"github.com/bitmark-inc/forest/item"
)

// Insert - add a key and its value to the tree
//
// fails with fault.ErrKeyAlreadyExists if the key is present; the
// stored value is left untouched in that case
func (tree *Tree) Insert(key item.Item, value interface{}) error {
	_, err := tree.insert(key, value, false)
	return err
}

// Upsert - add a key and its value, overwriting the value if the key
// is already present
//
// returns true if a new node was created
func (tree *Tree) Upsert(key item.Item, value interface{}) bool {
	added, _ := tree.insert(key, value, true)
	return added
}

func (tree *Tree) insert(key item.Item, value interface{}, overwrite bool) (bool, error) {

	var parent *Node
	isLeft := false

	p := tree.root
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

	n := &Node{
		key:   key,
		value: value,
		up:    parent,
	}
	if nil == parent {
		tree.root = n
	} else if isLeft {
		parent.left = n
	} else {
		parent.right = n
	}
	tree.count += 1
	return true, nil
}
