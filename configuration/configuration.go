// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - daemon configuration
//
// configuration files are Lua programs returning one table; see the
// sample file under templates
package configuration

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/kittyd/util"
)

// basic defaults (directories and files are relative to the
// "data_directory" from the configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "kitty.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "kittyd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultStakeAmount      = 1000
	defaultMinimumBalance   = 1
	defaultMaximumClaimSize = 64
)

// DatabaseType - where the LevelDB database lives
type DatabaseType struct {
	Directory string `gluamapper:"directory"`
	Name      string `gluamapper:"name"`
}

// LoggingType - mapped onto the logger configuration
type LoggingType struct {
	Directory string            `gluamapper:"directory"`
	File      string            `gluamapper:"file"`
	Size      int               `gluamapper:"size"`
	Count     int               `gluamapper:"count"`
	Console   bool              `gluamapper:"console"`
	Levels    map[string]string `gluamapper:"levels"`
}

// Configuration - the daemon settings
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory"`
	PidFile       string       `gluamapper:"pidfile"`
	Database      DatabaseType `gluamapper:"database"`

	StakeAmount      uint64 `gluamapper:"stake_amount"`
	MinimumBalance   uint64 `gluamapper:"minimum_balance"`
	MaximumClaimSize int    `gluamapper:"maximum_claim_size"`

	// hexadecimal host entropy for genome derivation
	Entropy string `gluamapper:"entropy"`

	Listen string `gluamapper:"listen"`

	Logging LoggingType `gluamapper:"logging"`
}

// EntropyBytes - decode the configured entropy value
func (configuration *Configuration) EntropyBytes() ([]byte, error) {
	return hex.DecodeString(configuration.Entropy)
}

// GetConfiguration - read, decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PID file by default

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		StakeAmount:      defaultStakeAmount,
		MinimumBalance:   defaultMinimumBalance,
		MaximumClaimSize: defaultMaximumClaimSize,

		Listen: "127.0.0.1:2160",

		Logging: LoggingType{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				"DEFAULT": "critical",
			},
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// the entropy value comes from the host, there is no default
	if _, err := options.EntropyBytes(); nil != err {
		return nil, fmt.Errorf("entropy: %q is not valid hexadecimal", options.Entropy)
	}
	if "" == options.Entropy {
		return nil, fmt.Errorf("entropy is required")
	}

	if 0 == options.StakeAmount {
		return nil, fmt.Errorf("stake_amount must not be zero")
	}
	if options.MaximumClaimSize <= 0 {
		return nil, fmt.Errorf("maximum_claim_size must be positive")
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// optional absolute paths i.e. blank or an absolute path
	if "" != options.PidFile {
		options.PidFile = util.EnsureAbsolute(options.DataDirectory, options.PidFile)
	}

	// fail if the database name is not a simple file name
	switch filepath.Dir(options.Database.Name) {
	case "", ".":
	default:
		return nil, fmt.Errorf("database name: %q is not a plain name", options.Database.Name)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}
	options.Database.Name = util.EnsureAbsolute(options.Database.Directory, options.Database.Name)

	// done
	return options, nil
}
