// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - a plain unbalanced binary search tree with parent
// pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// There is no rebalancing, so sorted insertions degrade the tree to
// a list; use the avl or rbtree packages when the insertion order is
// not under control.  Insert rejects duplicate keys; use Upsert to
// overwrite the stored value instead.
package bst
