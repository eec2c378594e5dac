// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintains a single LevelDB database with a series of prefixed
// key spaces ("pools"), one pool for each conceptual map:
//
//	kitties:  kitty id     -> genome
//	owners:   kitty id     -> owner account
//	prices:   kitty id     -> ask price (present only while listed)
//	claims:   claim bytes  -> block number + owner account
//	control:  fixed keys   -> counters (next kitty id)
//	balances: account      -> free + reserved funds
//
// each pool prepends a single byte prefix to its keys so all pools
// can share one database
//
// a Transaction accumulates a write set which is committed as one
// atomic batch; a failed operation simply never commits its batch so
// no partial state can be observed
package storage
