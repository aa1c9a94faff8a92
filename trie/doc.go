// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package trie - a byte-wise prefix tree over string keys
//
// Note: an individual trie is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Keys share storage for common prefixes and enumeration by prefix
// is linear in the output.  Keys are arbitrary byte strings; the
// empty string is a valid key.  Insert rejects duplicate keys; use
// Upsert to overwrite the stored value instead.
package trie
