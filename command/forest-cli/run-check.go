// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"
)

func runCheck(c *cli.Context) error {

	t, err := buildTree(c)
	if nil != err {
		return err
	}

	failed := t.Check()
	if 0 != len(failed) {
		t.Print(c.GlobalBool("verbose"))
		return fmt.Errorf("checks failed: %s", strings.Join(failed, ", "))
	}

	fmt.Fprintf(c.App.Writer, "ok: %d keys\n", t.Count())
	return nil
}
