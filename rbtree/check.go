// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

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

// CheckRedBlack - verify the red-black conditions:
// the root is black, no red node has a red child and every path to
// a missing leaf passes the same number of black nodes
func (tree *Tree) CheckRedBlack() bool {
	if isRed(tree.root) {
		fmt.Printf("fail: root is red\n")
		return false
	}
	_, _, ok := checkrb(tree.root)
	return ok
}

// internal: returns the black height and the plain height of a
// sub-tree, also verifying the height stored in each node
func checkrb(p *Node) (int, int, bool) {
	if nil == p {
		return 0, 0, true
	}
	bl, hl, okl := checkrb(p.left)
	br, hr, okr := checkrb(p.right)
	if !okl || !okr {
		return 0, 0, false
	}
	if bl != br {
		fmt.Printf("fail at node: %v   black heights: [%d,%d]\n", p.key, bl, br)
		return 0, 0, false
	}
	if RED == p.colour && (isRed(p.left) || isRed(p.right)) {
		fmt.Printf("fail at node: %v   red node has red child\n", p.key)
		return 0, 0, false
	}
	h := hl
	if hr > h {
		h = hr
	}
	h += 1
	if h != p.height {
		fmt.Printf("fail at node: %v   stored height: %d  actual: %d\n", p.key, p.height, h)
		return 0, 0, false
	}
	if BLACK == p.colour {
		bl += 1
	}
	return bl, h, true
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
