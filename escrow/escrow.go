// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package escrow - the balance ledger contract
//
// the registry only consumes the reserve / unreserve / transfer
// contract of a balances ledger; the accounting behind it is regarded
// as an external, already correct service
package escrow

import (
	"github.com/bitmark-inc/kittyd/account"
)

// Ledger - balance operations consumed by the registry and market
//
// every call is atomic: either the full balance movement happens or
// nothing does
type Ledger interface {

	// Reserve - hold an amount of the account's free balance
	Reserve(acct *account.Account, amount uint64) error

	// Unreserve - release a held amount back to free balance
	//
	// releasing more than is currently held releases only the held
	// amount; this call cannot fail
	Unreserve(acct *account.Account, amount uint64)

	// Transfer - move free balance between accounts
	//
	// keepAlive forbids reducing the payer below the minimum
	// existential balance
	Transfer(from *account.Account, to *account.Account, amount uint64, keepAlive bool) error
}
