// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"math"
	"sort"
)

// Histogram - records a series of integer samples
type Histogram struct {
	values []int
}

// Report - summary statistics of a histogram
type Report struct {
	Count  int
	Min    int
	Max    int
	Mean   float64
	Median float64
	StdDev float64
	P75    float64
	P95    float64
	P99    float64
}

// NewHistogram - create an empty histogram
func NewHistogram() *Histogram {
	return &Histogram{
		values: make([]int, 0, 64),
	}
}

// Update - record one sample
func (h *Histogram) Update(value int) {
	h.values = append(h.values, value)
}

// Count - number of recorded samples
func (h *Histogram) Count() int {
	return len(h.values)
}

// Report - compute the summary of all samples recorded so far
// an empty histogram yields the zero report
func (h *Histogram) Report() Report {
	n := len(h.values)
	if 0 == n {
		return Report{}
	}

	sorted := make([]int, n)
	copy(sorted, h.values)
	sort.Ints(sorted)

	sum := 0
	for _, v := range sorted {
		sum += v
	}
	mean := float64(sum) / float64(n)

	variance := 0.0
	for _, v := range sorted {
		d := float64(v) - mean
		variance += d * d
	}
	variance /= float64(n)

	return Report{
		Count:  n,
		Min:    sorted[0],
		Max:    sorted[n-1],
		Mean:   mean,
		Median: percentile(sorted, 50),
		StdDev: math.Sqrt(variance),
		P75:    percentile(sorted, 75),
		P95:    percentile(sorted, 95),
		P99:    percentile(sorted, 99),
	}
}

// linear interpolation between closest ranks, values must be sorted
func percentile(sorted []int, p float64) float64 {
	n := len(sorted)
	if 1 == n {
		return float64(sorted[0])
	}
	rank := p / 100 * float64(n-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return float64(sorted[lo])
	}
	f := rank - float64(lo)
	return float64(sorted[lo])*(1-f) + float64(sorted[hi])*f
}
