// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/forest/item"
)

// Node - a node of the tree
type Node struct {
	left  *Node
	right *Node
	up    *Node
	key   item.Item
	value interface{}
}

// Key - read the key of a node item
func (p *Node) Key() item.Item {
	return p.key
}

// Value - read the value of a node item
func (p *Node) Value() interface{} {
	return p.value
}

// Parent - the node above this one, nil for the root
func (p *Node) Parent() *Node {
	return p.up
}

// Left - the left child, nil if none
func (p *Node) Left() *Node {
	return p.left
}

// Right - the right child, nil if none
func (p *Node) Right() *Node {
	return p.right
}

// Depth - the number of up links to the root node
func (p *Node) Depth() uint {
	depth := uint(0)
	for nil != p.up {
		depth += 1
		p = p.up
	}
	return depth
}
