// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/forest/avl"
	"github.com/bitmark-inc/forest/bst"
	"github.com/bitmark-inc/forest/fault"
	"github.com/bitmark-inc/forest/item"
	"github.com/bitmark-inc/forest/metrics"
	"github.com/bitmark-inc/forest/rbtree"
)

// the operations the demo needs from any tree variant
type tree interface {
	Upsert(key item.Item, value interface{}) bool
	Delete(key item.Item) (interface{}, error)
	Count() int
	IsEmpty() bool
	Check() bool
	Print(printData bool) int
}

// newTree - construct the variant selected by name
func newTree(name string, registry *metrics.Registry) (tree, error) {
	switch name {
	case "avl":
		return avlTree{avl.NewWithMetrics(registry)}, nil
	case "rbt":
		return rbTree{rbtree.NewWithMetrics(registry)}, nil
	case "bst":
		return bstTree{bst.New()}, nil
	default:
		return nil, fault.ErrUnsupportedTreeVariant
	}
}

type avlTree struct {
	*avl.Tree
}

func (t avlTree) Check() bool {
	return t.CheckUp() && t.CheckCounts() && t.CheckBalance() && t.CheckOrder()
}

type rbTree struct {
	*rbtree.Tree
}

func (t rbTree) Check() bool {
	return t.CheckUp() && t.CheckRedBlack() && t.CheckOrder()
}

type bstTree struct {
	*bst.Tree
}

func (t bstTree) Check() bool {
	return t.CheckUp() && t.CheckOrder()
}
