// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The base algorithm was described in an old book by Niklaus Wirth
// called Algorithms + Data Structures = Programs.
//
// Each node also carries the size of its left and right sub-trees so
// nodes can be fetched by in-order index.  Insert rejects duplicate
// keys; use Upsert to overwrite the stored value instead.  Delete
// does not copy data around so that previous nodes can be deleted
// during iteration.
package avl
