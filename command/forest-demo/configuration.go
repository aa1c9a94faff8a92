// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/forest/configuration"
)

// Configuration - the demo settings; a Lua configuration file can
// override any of the defaults, command line options override both
type Configuration struct {
	Tree    string               `gluamapper:"tree"`
	Count   int                  `gluamapper:"count"`
	Seed    int                  `gluamapper:"seed"`
	Logging logger.Configuration `gluamapper:"logging"`
}

const (
	defaultTree  = "avl"
	defaultCount = 1000
	defaultSeed  = 1
)

func defaultConfiguration() *Configuration {
	return &Configuration{
		Tree:  defaultTree,
		Count: defaultCount,
		Seed:  defaultSeed,
		Logging: logger.Configuration{
			Directory: ".",
			File:      "forest-demo.log",
			Size:      1048576,
			Count:     10,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}
}

// read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	options := defaultConfiguration()
	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	return options, nil
}
