// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/forest/item"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return checkup(tree.root, nil)
}

func checkup(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	return checkup(p.left, p) && checkup(p.right, p)
}

// CheckOrder - check that an in-order walk gives strictly ascending
// keys
func (tree *Tree) CheckOrder() bool {
	var previous item.Item
	for p := tree.First(); nil != p; p = p.Next() {
		if nil != previous && previous.Compare(p.key) >= 0 {
			return false
		}
		previous = p.key
	}
	return true
}
