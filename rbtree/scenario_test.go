// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree_test

import (
	"testing"

	"github.com/bitmark-inc/forest/item"
	"github.com/bitmark-inc/forest/metrics"
	"github.com/bitmark-inc/forest/rbtree"
)

// a red uncle forces recolouring only, no structural change
func TestInsertRecolour(t *testing.T) {
	registry := metrics.NewRegistry()
	tree := rbtree.NewWithMetrics(registry)

	for _, n := range []int{20, 10, 30, 25, 35} {
		if err := tree.Insert(item.Int(n), n); nil != err {
			t.Fatalf("insert of %d returned error: %v", n, err)
		}
	}

	// 25 and 35 are the red children of 30; inserting 23 recolours
	// 25 and 35 black and pushes red up to 30
	if err := tree.Insert(item.Int(23), 23); nil != err {
		t.Fatalf("insert of 23 returned error: %v", err)
	}

	rotated := registry.Get("rbt.rotate").(*metrics.Counter)
	if !rotated.IsZero() {
		t.Fatalf("rotations: %d  expected: 0", rotated.Uint64())
	}

	root := tree.Root()
	if 0 != root.Key().Compare(item.Int(20)) {
		t.Fatalf("root: %v  expected: 20", root.Key())
	}
	if rbtree.BLACK != root.Colour() {
		t.Fatalf("root colour: %s  expected: B", root.Colour())
	}

	thirty := tree.Search(item.Int(30))
	if nil == thirty {
		t.Fatal("key 30 not found")
	}
	if rbtree.RED != thirty.Colour() {
		t.Fatalf("node 30 colour: %s  expected: R", thirty.Colour())
	}
	if rbtree.BLACK != thirty.Left().Colour() || rbtree.BLACK != thirty.Right().Colour() {
		t.Fatal("children of 30 should have turned black")
	}

	verify(t, tree, "recolour")
}

// ascending inserts exercise the left rotation path
func TestInsertAscending(t *testing.T) {
	registry := metrics.NewRegistry()
	tree := rbtree.NewWithMetrics(registry)

	for n := 1; n <= 64; n += 1 {
		if err := tree.Insert(item.Int(n), n); nil != err {
			t.Fatalf("insert of %d returned error: %v", n, err)
		}
		verify(t, tree, "ascending")
	}

	rotated := registry.Get("rbt.rotate").(*metrics.Counter)
	if rotated.IsZero() {
		t.Fatal("ascending inserts performed no rotations")
	}

	// a red-black tree of n keys has height at most 2*lg(n+1)
	if h := tree.Height(); h > 12 {
		t.Fatalf("height: %d  expected: <= 12", h)
	}
}

// inner-grandchild insertion needs the double rotation path
func TestInsertInner(t *testing.T) {
	tree := rbtree.New()

	for _, n := range []int{30, 10, 20} {
		if err := tree.Insert(item.Int(n), n); nil != err {
			t.Fatalf("insert of %d returned error: %v", n, err)
		}
	}

	root := tree.Root()
	if 0 != root.Key().Compare(item.Int(20)) {
		t.Fatalf("root: %v  expected: 20", root.Key())
	}
	if rbtree.BLACK != root.Colour() {
		t.Fatalf("root colour: %s  expected: B", root.Colour())
	}
	if rbtree.RED != root.Left().Colour() || rbtree.RED != root.Right().Colour() {
		t.Fatal("children should both be red")
	}
	verify(t, tree, "inner")
}

// fill then tear down in a scrambled order
func TestRoundTrip(t *testing.T) {
	registry := metrics.NewRegistry()
	tree := rbtree.NewWithMetrics(registry)

	const total = 500

	for i := 0; i < total; i += 1 {
		if err := tree.Insert(item.Int(i), i*10); nil != err {
			t.Fatalf("insert of %d returned error: %v", i, err)
		}
	}
	verify(t, tree, "fill")
	if total != tree.Count() {
		t.Fatalf("count: %d  expected: %d", tree.Count(), total)
	}

	// 127 and 89 are coprime to 500, so this visits every key once
	for i := 0; i < total; i += 1 {
		k := (i*127 + 89) % total
		value, err := tree.Delete(item.Int(k))
		if nil != err {
			t.Fatalf("delete of %d returned error: %v", k, err)
		}
		if k*10 != value {
			t.Fatalf("delete of %d returned: %v  expected: %d", k, value, k*10)
		}
		verify(t, tree, "tear down")
	}

	if !tree.IsEmpty() || nil != tree.Root() {
		t.Fatal("tree not empty after round trip")
	}

	// one height sample per insert and one per delete
	heights := registry.Get("rbt.height").(*metrics.Histogram)
	if heights.Count() != 2*total {
		t.Fatalf("height samples: %d  expected: %d", heights.Count(), 2*total)
	}
}

// measure the height by walking the node structure
func measuredHeight(p *rbtree.Node) int {
	if nil == p {
		return 0
	}
	hl := measuredHeight(p.Left())
	hr := measuredHeight(p.Right())
	if hr > hl {
		return hr + 1
	}
	return hl + 1
}

// Height reads a value maintained across inserts and deletes, so it
// must agree with a full walk after every mutation
func TestHeightTracking(t *testing.T) {
	tree := rbtree.New()

	if 0 != tree.Height() {
		t.Fatalf("empty height: %d  expected: 0", tree.Height())
	}

	const total = 200
	for i := 0; i < total; i += 1 {
		key := item.Int((i * 37) % total)
		if err := tree.Insert(key, i); nil != err {
			t.Fatalf("insert of %v returned error: %v", key, err)
		}
		if h := measuredHeight(tree.Root()); h != tree.Height() {
			t.Fatalf("height after insert of %v: %d  expected: %d", key, tree.Height(), h)
		}
	}

	for i := 0; i < total; i += 1 {
		key := item.Int((i * 59) % total)
		if _, err := tree.Delete(key); nil != err {
			t.Fatalf("delete of %v returned error: %v", key, err)
		}
		if h := measuredHeight(tree.Root()); h != tree.Height() {
			t.Fatalf("height after delete of %v: %d  expected: %d", key, tree.Height(), h)
		}
	}

	if 0 != tree.Height() {
		t.Fatalf("final height: %d  expected: 0", tree.Height())
	}
}
