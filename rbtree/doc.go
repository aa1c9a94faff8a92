// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rbtree - a red-black balanced tree with parent pointers to
// allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Missing children are treated as black leaf nodes, so no sentinel
// node is allocated; the repair walks track the parent explicitly
// instead.  Insert rejects duplicate keys; use Upsert to overwrite
// the stored value instead.
package rbtree
