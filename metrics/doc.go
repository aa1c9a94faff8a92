// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metrics - simple counters and histograms for measuring
// tree behaviour
//
// The avl and rbtree packages can be created with a registry, in
// which case they register a rotation counter and a height histogram
// and feed them on every mutation.  The registry itself is safe for
// concurrent reads, the histogram is not; it follows the same
// single-owner rule as the trees it measures.
package metrics
