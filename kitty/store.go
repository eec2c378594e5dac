// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitty

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/storage"
)

// storage records:
//
//	kitties: id -> genome
//	owners:  id -> owner public key
//	prices:  id -> 8 byte big endian ask price
//
// reads go straight to the pools; all writes pass through a
// storage.Transaction so an operation either commits every record of
// its transition or none of them

// single lock over all kitty state: every service operation that
// reads a record and later commits a transition must hold this for
// the whole read-check-commit span, otherwise a transfer can slip
// between a purchase's owner read and its ownership commit
var storeLock sync.Mutex

// Lock - serialise an operation over kitty state
func Lock() {
	storeLock.Lock()
}

// Unlock - release the operation lock
func Unlock() {
	storeLock.Unlock()
}

// Exists - check if a kitty record is present
func Exists(kittyID ID) bool {
	return storage.Pool.Kitties.Has(kittyID.Bytes())
}

// Get - fetch a genome
//
// second value is false if the kitty does not exist
func Get(kittyID ID) (Genome, bool) {
	buffer := storage.Pool.Kitties.Get(kittyID.Bytes())
	if nil == buffer {
		return Genome{}, false
	}
	genome, err := GenomeFromBytes(buffer)
	logger.PanicIfError("kitty.Get", err)
	return genome, true
}

// OwnerOf - fetch the current owner
//
// returns nil if the kitty does not exist; a stored kitty always has
// exactly one owner record
func OwnerOf(kittyID ID) *account.Account {
	buffer := storage.Pool.Owners.Get(kittyID.Bytes())
	if nil == buffer {
		return nil
	}
	owner, err := account.FromBytes(buffer)
	logger.PanicIfError("kitty.OwnerOf", err)
	return owner
}

// Insert - buffer a new kitty and its owner record
//
// the id must be freshly allocated; an existing record indicates an
// allocator fault
func Insert(trx *storage.Transaction, kittyID ID, genome Genome, owner *account.Account) error {
	if storage.Pool.Kitties.Has(kittyID.Bytes()) {
		return fault.ErrKittyAlreadyExists
	}
	trx.Put(storage.Pool.Kitties, kittyID.Bytes(), genome[:])
	trx.Put(storage.Pool.Owners, kittyID.Bytes(), owner.Bytes())
	return nil
}

// SetOwner - buffer an ownership overwrite
//
// genome and price records are left untouched
func SetOwner(trx *storage.Transaction, kittyID ID, newOwner *account.Account) error {
	if !storage.Pool.Owners.Has(kittyID.Bytes()) {
		return fault.ErrKittyDoesNotExist
	}
	trx.Put(storage.Pool.Owners, kittyID.Bytes(), newOwner.Bytes())
	return nil
}

// SetPrice - buffer an ask price, overwriting any previous listing
func SetPrice(trx *storage.Transaction, kittyID ID, price uint64) {
	trx.PutN(storage.Pool.Prices, kittyID.Bytes(), price)
}

// ClearPrice - buffer removal of a listing
func ClearPrice(trx *storage.Transaction, kittyID ID) {
	trx.Delete(storage.Pool.Prices, kittyID.Bytes())
}

// PriceOf - fetch the current ask price
//
// second value is false if the kitty is not listed for sale
func PriceOf(kittyID ID) (uint64, bool) {
	return storage.Pool.Prices.GetN(kittyID.Bytes())
}
