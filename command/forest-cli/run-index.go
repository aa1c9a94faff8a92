// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runIndex(c *cli.Context) error {

	t, err := buildTree(c)
	if nil != err {
		return err
	}

	a, ok := t.(avlTree)
	if !ok {
		return fmt.Errorf("index lookup needs --tree=avl")
	}

	i := c.Int("index")
	node := a.Get(i)
	if nil == node {
		return fmt.Errorf("index out of range: %d of %d", i, a.Count())
	}

	if c.GlobalBool("verbose") {
		fmt.Fprintf(c.App.Writer, "%d: %v → %v\n", i, node.Key(), node.Value())
	} else {
		fmt.Fprintf(c.App.Writer, "%v\n", node.Key())
	}
	return nil
}
