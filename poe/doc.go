// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package poe - proof of existence claims
//
// a claim maps an arbitrary byte sequence to the account that
// registered it and the block height of registration; a key holds at
// most one active record, only the recorded owner may revoke or pass
// it on, and revoked keys become claimable again
package poe
