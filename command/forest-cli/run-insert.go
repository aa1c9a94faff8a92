// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runInsert(c *cli.Context) error {

	t, err := buildTree(c)
	if nil != err {
		return err
	}

	depth := t.Print(c.GlobalBool("verbose"))
	fmt.Fprintf(c.App.Writer, "keys: %d  depth: %d\n", t.Count(), depth)
	return nil
}
