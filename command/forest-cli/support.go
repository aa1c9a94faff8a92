// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/forest/avl"
	"github.com/bitmark-inc/forest/bst"
	"github.com/bitmark-inc/forest/fault"
	"github.com/bitmark-inc/forest/item"
	"github.com/bitmark-inc/forest/rbtree"
)

// the operations the commands need from any tree variant
type tree interface {
	Insert(key item.Item, value interface{}) error
	Count() int
	Print(printData bool) int
	Walk(order string, fn func(key item.Item, value interface{})) error
	Check() []string
}

// one entry from the command line, "KEY" or "KEY:VALUE"
type entry struct {
	key   string
	value string
}

func parseArguments(c *cli.Context) ([]entry, error) {
	args := c.Args()
	if 0 == len(args) {
		return nil, fmt.Errorf("missing arguments: expected KEY[:VALUE]…")
	}
	entries := make([]entry, len(args))
	for i, arg := range args {
		s := strings.SplitN(arg, ":", 2)
		if "" == s[0] {
			return nil, fmt.Errorf("empty key in argument: %q", arg)
		}
		entries[i].key = s[0]
		if 2 == len(s) {
			entries[i].value = s[1]
		}
	}
	return entries, nil
}

// keys of one tree must share a concrete type: integer keys are used
// only when every key parses as an integer
func makeKey(e entry, numeric bool) item.Item {
	if numeric {
		n, _ := strconv.Atoi(e.key)
		return item.Int(n)
	}
	return item.String(e.key)
}

func allNumeric(entries []entry) bool {
	for _, e := range entries {
		if _, err := strconv.Atoi(e.key); nil != err {
			return false
		}
	}
	return true
}

// build the selected variant from command line arguments
func buildTree(c *cli.Context) (tree, error) {
	entries, err := parseArguments(c)
	if nil != err {
		return nil, err
	}

	var t tree
	variant := c.GlobalString("tree")
	switch variant {
	case "avl":
		t = avlTree{avl.New()}
	case "rbt":
		t = rbTree{rbtree.New()}
	case "bst":
		t = bstTree{bst.New()}
	default:
		return nil, fmt.Errorf("tree: %q can only be avl/rbt/bst", variant)
	}

	numeric := allNumeric(entries)
	for _, e := range entries {
		if err := t.Insert(makeKey(e, numeric), e.value); nil != err {
			return nil, fmt.Errorf("insert of %q: %s", e.key, err)
		}
	}
	return t, nil
}

type avlTree struct {
	*avl.Tree
}

func (t avlTree) Walk(order string, fn func(item.Item, interface{})) error {
	o, err := walkOrder(order)
	if nil != err {
		return err
	}
	cur := t.Traverse([]avl.Order{avl.InOrder, avl.PreOrder, avl.PostOrder}[o])
	for {
		key, value, ok := cur.Next()
		if !ok {
			return nil
		}
		fn(key, value)
	}
}

func (t avlTree) Check() []string {
	failed := []string{}
	if !t.CheckUp() {
		failed = append(failed, "up links")
	}
	if !t.CheckCounts() {
		failed = append(failed, "subtree counts")
	}
	if !t.CheckBalance() {
		failed = append(failed, "balance")
	}
	if !t.CheckOrder() {
		failed = append(failed, "key order")
	}
	return failed
}

type rbTree struct {
	*rbtree.Tree
}

func (t rbTree) Walk(order string, fn func(item.Item, interface{})) error {
	o, err := walkOrder(order)
	if nil != err {
		return err
	}
	cur := t.Traverse([]rbtree.Order{rbtree.InOrder, rbtree.PreOrder, rbtree.PostOrder}[o])
	for {
		key, value, ok := cur.Next()
		if !ok {
			return nil
		}
		fn(key, value)
	}
}

func (t rbTree) Check() []string {
	failed := []string{}
	if !t.CheckUp() {
		failed = append(failed, "up links")
	}
	if !t.CheckRedBlack() {
		failed = append(failed, "red-black conditions")
	}
	if !t.CheckOrder() {
		failed = append(failed, "key order")
	}
	return failed
}

type bstTree struct {
	*bst.Tree
}

func (t bstTree) Walk(order string, fn func(item.Item, interface{})) error {
	o, err := walkOrder(order)
	if nil != err {
		return err
	}
	cur := t.Traverse([]bst.Order{bst.InOrder, bst.PreOrder, bst.PostOrder}[o])
	for {
		key, value, ok := cur.Next()
		if !ok {
			return nil
		}
		fn(key, value)
	}
}

func (t bstTree) Check() []string {
	failed := []string{}
	if !t.CheckUp() {
		failed = append(failed, "up links")
	}
	if !t.CheckOrder() {
		failed = append(failed, "key order")
	}
	return failed
}

// the three packages share order numbering so one index fits all
func walkOrder(order string) (int, error) {
	switch order {
	case "in":
		return 0, nil
	case "pre":
		return 1, nil
	case "post":
		return 2, nil
	default:
		return 0, fmt.Errorf("order: %q: %s", order, fault.ErrUnsupportedOrder)
	}
}
