// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/forest/fault"
	"github.com/bitmark-inc/forest/item"
)

// Search - find a specific item
//
// returns the node and its in-order index, or nil and -1
func (tree *Tree) Search(key item.Item) (*Node, int) {
	return search(key, tree.root, 0)
}

// SearchValue - find the value stored under a key
//
// fails with fault.ErrKeyNotFound; never modifies the tree
func (tree *Tree) SearchValue(key item.Item) (interface{}, error) {
	node, _ := tree.Search(key)
	if nil == node {
		return nil, fault.ErrKeyNotFound
	}
	return node.value, nil
}

func search(key item.Item, tree *Node, index int) (*Node, int) {
	if nil == tree {
		return nil, -1
	}

	switch c := tree.key.Compare(key); {
	case c > 0: // tree.key > key
		return search(key, tree.left, index)
	case c < 0: // tree.key < key
		return search(key, tree.right, index+tree.leftNodes+1)
	default:
		return tree, index + tree.leftNodes
	}
}
