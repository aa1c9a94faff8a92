// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trie

import (
	"github.com/bitmark-inc/forest/fault"
)

// Node - one byte of stored keys; terminal marks that a key ends
// here, distinguishing a stored key from a mere prefix
type Node struct {
	children map[byte]*Node
	value    interface{}
	terminal bool
}

// Tree - type to hold the root node of a trie
type Tree struct {
	root  *Node
	count int
}

// New - create an initially empty trie
func New() *Tree {
	return &Tree{
		root:  newNode(),
		count: 0,
	}
}

func newNode() *Node {
	return &Node{
		children: make(map[byte]*Node),
	}
}

// IsEmpty - true if trie contains no keys
func (tree *Tree) IsEmpty() bool {
	return 0 == tree.count
}

// Count - number of keys currently stored
func (tree *Tree) Count() int {
	return tree.count
}

// Insert - add a key and its value to the trie
//
// fails with fault.ErrKeyAlreadyExists if the key is present; the
// stored value is left untouched in that case
func (tree *Tree) Insert(key string, value interface{}) error {
	_, err := tree.insert(key, value, false)
	return err
}

// Upsert - add a key and its value, overwriting the value if the key
// is already present
//
// returns true if a new key was stored
func (tree *Tree) Upsert(key string, value interface{}) bool {
	added, _ := tree.insert(key, value, true)
	return added
}

func (tree *Tree) insert(key string, value interface{}, overwrite bool) (bool, error) {
	p := tree.root
	for i := 0; i < len(key); i += 1 {
		child, ok := p.children[key[i]]
		if !ok {
			child = newNode()
			p.children[key[i]] = child
		}
		p = child
	}
	if p.terminal {
		if !overwrite {
			return false, fault.ErrKeyAlreadyExists
		}
		p.value = value
		return false, nil
	}
	p.terminal = true
	p.value = value
	tree.count += 1
	return true, nil
}

// Search - find the value stored under a key
//
// fails with fault.ErrKeyNotFound; a key that is only a prefix of
// stored keys is not found
func (tree *Tree) Search(key string) (interface{}, error) {
	p := tree.node(key)
	if nil == p || !p.terminal {
		return nil, fault.ErrKeyNotFound
	}
	return p.value, nil
}

// Has - true if the exact key is stored
func (tree *Tree) Has(key string) bool {
	p := tree.node(key)
	return nil != p && p.terminal
}

// internal: descend to the node a key (or prefix) ends at
func (tree *Tree) node(key string) *Node {
	p := tree.root
	for i := 0; i < len(key); i += 1 {
		child, ok := p.children[key[i]]
		if !ok {
			return nil
		}
		p = child
	}
	return p
}

// Delete - remove a key from the trie and return its stored value
//
// fails with fault.ErrEmptyTree or fault.ErrKeyNotFound; branches
// left without any terminal below them are pruned
func (tree *Tree) Delete(key string) (interface{}, error) {
	if 0 == tree.count {
		return nil, fault.ErrEmptyTree
	}

	// record the path so empty branches can be unlinked bottom-up
	path := make([]*Node, 0, len(key)+1)
	p := tree.root
	path = append(path, p)
	for i := 0; i < len(key); i += 1 {
		child, ok := p.children[key[i]]
		if !ok {
			return nil, fault.ErrKeyNotFound
		}
		p = child
		path = append(path, p)
	}
	if !p.terminal {
		return nil, fault.ErrKeyNotFound
	}

	value := p.value
	p.terminal = false
	p.value = nil
	tree.count -= 1

	for i := len(path) - 1; i > 0; i -= 1 {
		n := path[i]
		if n.terminal || 0 != len(n.children) {
			break
		}
		delete(path[i-1].children, key[i-1])
	}

	return value, nil
}
