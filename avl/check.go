// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		fmt.Printf("fail at node: %v   actual: %v  expected: %v\n", p.key, p.up, up)
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// CheckCounts - check the sub-tree node counts for consistency
func (tree *Tree) CheckCounts() bool {
	n, ok := checkcounts(tree.root)
	return ok && n == tree.count
}

// internal: returns the node count of a sub-tree
func checkcounts(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	nl, okl := checkcounts(p.left)
	nr, okr := checkcounts(p.right)
	if !okl || !okr {
		return 0, false
	}
	if nl != p.leftNodes || nr != p.rightNodes {
		fmt.Printf("fail at node: %v   counts: [%d,%d]  expected: [%d,%d]\n",
			p.key, p.leftNodes, p.rightNodes, nl, nr)
		return 0, false
	}
	return nl + nr + 1, true
}

// CheckBalance - verify the AVL height condition and the stored
// balance value at every node
func (tree *Tree) CheckBalance() bool {
	_, ok := checkbalance(tree.root)
	return ok
}

// internal: returns the height of a sub-tree
func checkbalance(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	hl, okl := checkbalance(p.left)
	hr, okr := checkbalance(p.right)
	if !okl || !okr {
		return 0, false
	}
	d := hr - hl
	if d < -1 || d > 1 || d != p.balance {
		fmt.Printf("fail at node: %v   balance: %+d  heights: [%d,%d]\n", p.key, p.balance, hl, hr)
		return 0, false
	}
	h := hl
	if hr > h {
		h = hr
	}
	return h + 1, true
}

// CheckOrder - verify the binary search tree key ordering
func (tree *Tree) CheckOrder() bool {
	ok := true
	var prev *Node
	for p := tree.First(); nil != p; p = p.Next() {
		if nil != prev && prev.key.Compare(p.key) >= 0 {
			fmt.Printf("fail at node: %v   not greater than: %v\n", p.key, prev.key)
			ok = false
		}
		prev = p
	}
	return ok
}
