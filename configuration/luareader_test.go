// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/forest/configuration"
	"github.com/bitmark-inc/forest/fault"
)

type testConfiguration struct {
	Tree  string `gluamapper:"tree"`
	Keys  int    `gluamapper:"keys"`
	Check bool   `gluamapper:"check"`
}

const sampleLua = `
local M = {}
M.tree = "avl"
M.keys = 1000
M.check = true
return M
`

func TestParseConfigurationFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration-test")
	if nil != err {
		t.Fatalf("temp dir: %v", err)
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "test.conf")
	err = ioutil.WriteFile(fileName, []byte(sampleLua), 0600)
	if nil != err {
		t.Fatalf("write: %v", err)
	}

	var config testConfiguration
	err = configuration.ParseConfigurationFile(fileName, &config)
	if nil != err {
		t.Fatalf("parse returned error: %v", err)
	}

	assert.Equal(t, "avl", config.Tree, "tree")
	assert.Equal(t, 1000, config.Keys, "keys")
	assert.Equal(t, true, config.Check, "check")
}

func TestParseRejectsNonPointer(t *testing.T) {
	var config testConfiguration
	err := configuration.ParseConfigurationFile("ignored.conf", config)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "non-pointer config")

	s := "not a struct"
	err = configuration.ParseConfigurationFile("ignored.conf", &s)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "pointer to non-struct")
}

func TestParseMissingFile(t *testing.T) {
	var config testConfiguration
	err := configuration.ParseConfigurationFile("/nonexistent/path/test.conf", &config)
	if nil == err {
		t.Fatal("missing file did not return an error")
	}
}
