// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package templates - skeleton configuration for new installations
package templates

const (
	/**** Configuration template ****/
	ConfigurationTemplate = `-- kittyd.conf  -*- mode: lua -*-

local M = {}

-- all relative paths are resolved against this directory
-- "." means the directory holding this configuration file
M.data_directory = arg[0]:match("(.*/)") or "."

-- optional PID file, comment out when running under a supervisor
--M.pidfile = "kittyd.pid"

-- LevelDB storage
M.database = {
    directory = "data",
    name = "kitty.leveldb",
}

-- funds reserved from a creator for each minted kitty
M.stake_amount = 1000

-- balance that must remain after a keep-alive payment
M.minimum_balance = 1

-- upper bound on claim key size in bytes
M.maximum_claim_size = 64

-- REQUIRED: host secret for genome derivation, hexadecimal
-- e.g. openssl rand -hex 32
M.entropy = ""

-- JSON RPC listen address
M.listen = "127.0.0.1:2160"

M.logging = {
    directory = "log",
    file = "kittyd.log",
    size = 1048576,
    count = 10,
    console = false,
    levels = {
        DEFAULT = "info",
    },
}

return M
`
)
