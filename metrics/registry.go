// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"sort"
	"sync"
)

// Metric - anything that can be stored in a registry
type Metric interface{}

// Registry - named collection of metrics
type Registry struct {
	sync.RWMutex
	registry map[string]Metric
}

// NewRegistry - create an empty registry
func NewRegistry() *Registry {
	return &Registry{
		registry: make(map[string]Metric),
	}
}

// Register - store a metric under a name, replacing any previous one
func (r *Registry) Register(name string, metric Metric) {
	r.Lock()
	r.registry[name] = metric
	r.Unlock()
}

// Get - fetch a metric by name, nil if not registered
func (r *Registry) Get(name string) Metric {
	r.RLock()
	m := r.registry[name]
	r.RUnlock()
	return m
}

// Names - all registered names in sorted order
func (r *Registry) Names() []string {
	r.RLock()
	names := make([]string, 0, len(r.registry))
	for name := range r.registry {
		names = append(names, name)
	}
	r.RUnlock()
	sort.Strings(names)
	return names
}
