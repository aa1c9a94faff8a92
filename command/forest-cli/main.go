// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// command line front end for the tree packages
//
// builds a tree from keys given as arguments, then prints, walks,
// checks or indexes it
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "forest-cli"
	app.Usage = "build and inspect ordered trees"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "tree, t",
			Value: "avl",
			Usage: " tree `VARIANT` [avl|rbt|bst]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "insert",
			Usage:     "build a tree from KEY or KEY:VALUE arguments and print it",
			ArgsUsage: "KEY[:VALUE]…",
			Action:    runInsert,
		},
		{
			Name:      "traverse",
			Usage:     "build a tree and walk it in a given order",
			ArgsUsage: "KEY[:VALUE]…",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "order, o",
					Value: "in",
					Usage: " walk `ORDER` [in|pre|post]",
				},
			},
			Action: runTraverse,
		},
		{
			Name:      "check",
			Usage:     "build a tree and run its invariant checkers",
			ArgsUsage: "KEY[:VALUE]…",
			Action:    runCheck,
		},
		{
			Name:      "index",
			Usage:     "fetch a key by in-order index, avl only",
			ArgsUsage: "KEY[:VALUE]…",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "index, i",
					Value: 0,
					Usage: " in-order `INDEX` to fetch",
				},
			},
			Action: runIndex,
		},
		{
			Name:  "version",
			Usage: "display forest-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
