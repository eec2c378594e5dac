// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/storage"
)

// balance record: 8 byte free amount || 8 byte reserved amount
const recordLength = 16

// Book - a pool backed Ledger implementation
//
// used by the daemon as its local balances service; per-account
// records live in the balances pool keyed by public key
type Book struct {
	sync.Mutex
	pool    *storage.PoolHandle
	minimum uint64
}

// NewBook - create a ledger over a storage pool
//
// minimumBalance is the existential amount a keep-alive transfer may
// not go below
func NewBook(pool *storage.PoolHandle, minimumBalance uint64) *Book {
	return &Book{
		pool:    pool,
		minimum: minimumBalance,
	}
}

// read an account record, missing accounts have zero balances
func (book *Book) read(acct *account.Account) (uint64, uint64) {
	buffer := book.pool.Get(acct.Bytes())
	if nil == buffer {
		return 0, 0
	}
	if recordLength != len(buffer) {
		logger.Panicf("escrow: truncated balance record for: %s", acct)
	}
	free := binary.BigEndian.Uint64(buffer[:8])
	reserved := binary.BigEndian.Uint64(buffer[8:])
	return free, reserved
}

func balanceRecord(free uint64, reserved uint64) []byte {
	buffer := make([]byte, recordLength)
	binary.BigEndian.PutUint64(buffer[:8], free)
	binary.BigEndian.PutUint64(buffer[8:], reserved)
	return buffer
}

// Deposit - credit free balance
//
// the funding entry point; a real currency ledger would feed this
// from its own issuance rules
func (book *Book) Deposit(acct *account.Account, amount uint64) {
	book.Lock()
	defer book.Unlock()

	free, reserved := book.read(acct)
	book.pool.Put(acct.Bytes(), balanceRecord(free+amount, reserved))
}

// Balance - current free and reserved amounts
func (book *Book) Balance(acct *account.Account) (uint64, uint64) {
	book.Lock()
	defer book.Unlock()

	return book.read(acct)
}

// Reserve - hold an amount of the account's free balance
func (book *Book) Reserve(acct *account.Account, amount uint64) error {
	book.Lock()
	defer book.Unlock()

	free, reserved := book.read(acct)
	if free < amount {
		return fault.ErrInsufficientFunds
	}
	book.pool.Put(acct.Bytes(), balanceRecord(free-amount, reserved+amount))
	return nil
}

// Unreserve - release a held amount, clamped to the held total
func (book *Book) Unreserve(acct *account.Account, amount uint64) {
	book.Lock()
	defer book.Unlock()

	free, reserved := book.read(acct)
	if amount > reserved {
		amount = reserved
	}
	book.pool.Put(acct.Bytes(), balanceRecord(free+amount, reserved-amount))
}

// Transfer - move free balance between accounts as one batch
func (book *Book) Transfer(from *account.Account, to *account.Account, amount uint64, keepAlive bool) error {
	book.Lock()
	defer book.Unlock()

	freeFrom, reservedFrom := book.read(from)
	if freeFrom < amount {
		return fault.ErrInsufficientFunds
	}
	if keepAlive && freeFrom-amount < book.minimum {
		return fault.ErrInsufficientFunds
	}

	if from.Equal(to) {
		return nil
	}

	freeTo, reservedTo := book.read(to)

	trx := storage.NewTransaction()
	trx.Put(book.pool, from.Bytes(), balanceRecord(freeFrom-amount, reservedFrom))
	trx.Put(book.pool, to.Bytes(), balanceRecord(freeTo+amount, reservedTo))
	trx.Commit()
	return nil
}
