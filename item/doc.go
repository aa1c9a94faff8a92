// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package item - the key ordering contract shared by the tree packages
//
// A key must implement Compare, which has to be a strict total order
// over every key ever stored in one tree.  The trees never check
// this; an inconsistent Compare silently corrupts ordering.
package item
