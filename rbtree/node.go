// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/forest/item"
)

// Colour - the balance tag carried by every node
type Colour int

// node colours; missing children count as BLACK
const (
	RED Colour = iota
	BLACK
)

// String - for the %s format
func (c Colour) String() string {
	if RED == c {
		return "red"
	}
	return "black"
}

// Node - a node in the tree
type Node struct {
	left   *Node       // left sub-tree
	right  *Node       // right sub-tree
	up     *Node       // points to parent node
	key    item.Item   // key part for ordering
	value  interface{} // value part for data storage
	colour Colour      // RED or BLACK
	height int         // longest path to a leaf, counted in nodes
}

// a nil node has height zero
func nodeHeight(p *Node) int {
	if nil == p {
		return 0
	}
	return p.height
}

// recompute a node's height from its children
func fixHeight(p *Node) {
	h := nodeHeight(p.left)
	if r := nodeHeight(p.right); r > h {
		h = r
	}
	p.height = h + 1
}

// restore the stored heights on the path from p to the root
//
// rotations fix the heights of the two nodes they move, so after a
// repair walk only the remaining ancestors of the changed node can
// still be stale
func fixHeightsUpward(p *Node) {
	for ; nil != p; p = p.up {
		fixHeight(p)
	}
}

// a nil node is a black leaf
func isRed(p *Node) bool {
	return nil != p && RED == p.colour
}

func isBlack(p *Node) bool {
	return nil == p || BLACK == p.colour
}

// Key - read the key from a node item
func (p *Node) Key() item.Item {
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() interface{} {
	return p.value
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Left - return the left child or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - return the right child or nil
func (p *Node) Right() *Node {
	return p.right
}

// Colour - read the colour tag of a node
func (p *Node) Colour() Colour {
	return p.colour
}

// Depth - get the depth of a node
func (p *Node) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}
