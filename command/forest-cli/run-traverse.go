// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/forest/item"
)

func runTraverse(c *cli.Context) error {

	t, err := buildTree(c)
	if nil != err {
		return err
	}

	verbose := c.GlobalBool("verbose")
	return t.Walk(c.String("order"), func(key item.Item, value interface{}) {
		if verbose {
			fmt.Fprintf(c.App.Writer, "%v → %v\n", key, value)
		} else {
			fmt.Fprintf(c.App.Writer, "%v\n", key)
		}
	})
}
