// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/forest/fault"
	"github.com/bitmark-inc/forest/item"
)

// Search - find the node holding a specific key, nil if absent
func (tree *Tree) Search(key item.Item) *Node {
	p := tree.root
	for nil != p {
		switch c := p.key.Compare(key); {
		case c > 0: // p.key > key
			p = p.left
		case c < 0: // p.key < key
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// SearchValue - find the value stored under a key
//
// fails with fault.ErrKeyNotFound; never modifies the tree
func (tree *Tree) SearchValue(key item.Item) (interface{}, error) {
	node := tree.Search(key)
	if nil == node {
		return nil, fault.ErrKeyNotFound
	}
	return node.value, nil
}
