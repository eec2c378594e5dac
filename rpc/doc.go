// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON RPC interface to the ledger services
//
// one service per concern:
//
//	Kitties    - create, transfer, breed and inspect kitties
//	Market     - list for sale and buy
//	Claims     - proof of existence records
//	Depository - account funding and balances
//
// accounts travel as Base58 strings, claims as hexadecimal
package rpc
