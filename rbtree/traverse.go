// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/forest/item"
)

// Order - the sequence a cursor yields nodes in
type Order int

// supported traversal orders
const (
	InOrder   Order = iota // left, node, right: ascending keys
	PreOrder               // node, left, right
	PostOrder              // left, right, node
)

// Cursor - a single walk through the tree
//
// Each call to Traverse starts a fresh walk over the tree as it is
// at that moment.  The walk is lazy; modifying the tree while a
// cursor is live gives undefined results for that cursor.
type Cursor struct {
	order Order
	stack []frame
}

// one pending node; expanded marks that its children are already
// stacked and only the node itself remains to be yielded
type frame struct {
	node     *Node
	expanded bool
}

// Traverse - start a walk over the current tree content
func (tree *Tree) Traverse(order Order) *Cursor {
	cur := &Cursor{
		order: order,
		stack: make([]frame, 0, 16),
	}
	cur.push(tree.root, false)
	return cur
}

// Next - the next key and value of the walk, ok is false when the
// walk is finished
func (cur *Cursor) Next() (item.Item, interface{}, bool) {
	for 0 != len(cur.stack) {
		top := cur.stack[len(cur.stack)-1]
		cur.stack = cur.stack[:len(cur.stack)-1]

		p := top.node
		if top.expanded {
			return p.key, p.value, true
		}

		switch cur.order {
		case PreOrder:
			cur.push(p.right, false)
			cur.push(p.left, false)
			return p.key, p.value, true
		case PostOrder:
			cur.push(p, true)
			cur.push(p.right, false)
			cur.push(p.left, false)
		default: // InOrder
			cur.push(p.right, false)
			cur.push(p, true)
			cur.push(p.left, false)
		}
	}
	return nil, nil, false
}

func (cur *Cursor) push(p *Node, expanded bool) {
	if nil != p {
		cur.stack = append(cur.stack, frame{node: p, expanded: expanded})
	}
}
