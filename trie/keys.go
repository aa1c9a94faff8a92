// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trie

import (
	"sort"
)

// Keys - all stored keys starting with a prefix in lexical order
//
// an empty prefix enumerates every key; an unknown prefix gives an
// empty slice, never nil error
func (tree *Tree) Keys(prefix string) []string {
	keys := []string{}
	p := tree.node(prefix)
	if nil == p {
		return keys
	}
	return collect(p, []byte(prefix), keys)
}

func collect(p *Node, prefix []byte, keys []string) []string {
	if p.terminal {
		keys = append(keys, string(prefix))
	}

	bytes := make([]int, 0, len(p.children))
	for b := range p.children {
		bytes = append(bytes, int(b))
	}
	sort.Ints(bytes)

	for _, b := range bytes {
		keys = collect(p.children[byte(b)], append(prefix, byte(b)), keys)
	}
	return keys
}
