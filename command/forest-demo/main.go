// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// exercise one of the tree variants with pseudo-random keys
//
// fills the chosen tree, verifies its invariants, empties it again
// and prints the collected metrics
package main

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/forest/fault"
	"github.com/bitmark-inc/forest/item"
	"github.com/bitmark-inc/forest/metrics"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "config", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "tree", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 't'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'n'},
		{Long: "seed", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
		{Long: "print", HasArg: getoptions.NO_ARGUMENT, Short: 'p'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if err != nil {
		exitwithstatus.Message("option parse error: %s", err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--config=FILE] [--tree=avl|rbt|bst] [--count=N] [--seed=N] [--print]", program)
	}

	if len(arguments) > 0 {
		exitwithstatus.Message("%s: extraneous extra arguments", program)
	}

	theConfiguration := defaultConfiguration()
	if len(options["config"]) > 0 {
		theConfiguration, err = getConfiguration(options["config"][0])
		if err != nil {
			exitwithstatus.Message("%s: configuration error: %s", program, err)
		}
	}

	if len(options["tree"]) > 0 {
		theConfiguration.Tree = options["tree"][0]
	}
	if len(options["count"]) > 0 {
		theConfiguration.Count, err = strconv.Atoi(options["count"][0])
		if err != nil {
			exitwithstatus.Message("%s: convert count error: %s", program, err)
		}
	}
	if len(options["seed"]) > 0 {
		theConfiguration.Seed, err = strconv.Atoi(options["seed"][0])
		if err != nil {
			exitwithstatus.Message("%s: convert seed error: %s", program, err)
		}
	}
	if theConfiguration.Count < 1 {
		exitwithstatus.Message("%s: invalid count: %d", program, theConfiguration.Count)
	}

	verbose := len(options["verbose"]) > 0
	printTree := len(options["print"]) > 0

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	fault.Initialise()
	defer fault.Finalise()

	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	registry := metrics.NewRegistry()
	tree, err := newTree(theConfiguration.Tree, registry)
	if err != nil {
		exitwithstatus.Message("%s: unsupported tree: %q", program, theConfiguration.Tree)
	}

	rnd := rand.New(rand.NewSource(int64(theConfiguration.Seed)))
	keys := make([]item.Int, theConfiguration.Count)
	for i := 0; i < theConfiguration.Count; i += 1 {
		keys[i] = item.Int(rnd.Intn(10 * theConfiguration.Count))
	}

	// fill
	stored := 0
	for _, key := range keys {
		if tree.Upsert(key, "data:"+key.String()) {
			stored += 1
		}
	}
	log.Infof("stored: %d of %d keys", stored, len(keys))
	if stored != tree.Count() {
		log.Criticalf("count mismatch: %d != %d", tree.Count(), stored)
		exitwithstatus.Message("%s: count mismatch: %d != %d", program, tree.Count(), stored)
	}
	if !tree.Check() {
		tree.Print(verbose)
		exitwithstatus.Message("%s: after fill: %s", program, fault.ErrInvariantViolation)
	}
	fmt.Printf("stored: %8d unique keys of: %8d generated\n", stored, len(keys))

	if printTree {
		depth := tree.Print(verbose)
		fmt.Printf("depth: %d\n", depth)
	}

	// empty the tree again, in a different key order
	rnd.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
	for _, key := range keys {
		value, err := tree.Delete(key)
		if nil != err {
			continue // duplicates from the fill stage
		}
		if verbose {
			fmt.Printf("deleted: %v → %v\n", key, value)
		}
	}
	if !tree.IsEmpty() {
		tree.Print(verbose)
		exitwithstatus.Message("%s: tree not empty after deleting all keys", program)
	}
	if !tree.Check() {
		exitwithstatus.Message("%s: after tear down: %s", program, fault.ErrInvariantViolation)
	}
	fmt.Printf("deleted: %7d keys, tree is empty\n", stored)

	report(registry)
}

// print every registered metric
func report(registry *metrics.Registry) {
	for _, name := range registry.Names() {
		switch m := registry.Get(name).(type) {
		case *metrics.Counter:
			fmt.Printf("%-12s %10d\n", name, m.Uint64())
		case *metrics.Histogram:
			r := m.Report()
			fmt.Printf("%-12s samples: %d  min: %d  max: %d  mean: %.2f  median: %.1f  stddev: %.2f  p95: %.1f\n",
				name, r.Count, r.Min, r.Max, r.Mean, r.Median, r.StdDev, r.P95)
		}
	}
}
