// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package poe

import (
	"bytes"
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/messagebus"
	"github.com/bitmark-inc/kittyd/storage"
)

// tag on emitted events
const tag = "poe"

// ClaimCreated - a byte sequence was registered
type ClaimCreated struct {
	Owner *account.Account
	Claim []byte
}

// ClaimRevoked - an owner removed its record
type ClaimRevoked struct {
	Owner *account.Account
	Claim []byte
}

// ClaimTransferred - a record was reassigned to a new owner
type ClaimTransferred struct {
	From  *account.Account
	Claim []byte
	To    *account.Account
}

// Registry - the claim registry service
type Registry struct {
	sync.Mutex // one operation commits fully before the next starts

	log         *logger.L
	bus         *messagebus.Bus
	maximumSize int
	height      func() uint64
}

// New - create the claim registry service
//
// maximumClaimSize bounds the key length; height supplies the block
// height recorded with each claim
func New(bus *messagebus.Bus, maximumClaimSize int, height func() uint64) *Registry {
	return &Registry{
		log:         logger.New("poe"),
		bus:         bus,
		maximumSize: maximumClaimSize,
		height:      height,
	}
}

// claim record: 8 byte big endian block height || owner public key
func claimRecord(height uint64, owner *account.Account) []byte {
	buffer := make([]byte, 8, 8+len(owner.Bytes()))
	binary.BigEndian.PutUint64(buffer, height)
	return append(buffer, owner.Bytes()...)
}

// Create - register a byte sequence to the caller
func (r *Registry) Create(caller *account.Account, claim []byte) error {
	r.Lock()
	defer r.Unlock()

	if storage.Pool.Claims.Has(claim) {
		return fault.ErrClaimAlreadyExists
	}
	if len(claim) > r.maximumSize {
		return fault.ErrClaimTooLarge
	}

	storage.Pool.Claims.Put(claim, claimRecord(r.height(), caller))

	r.log.Infof("claim created: %x  owner: %s", claim, caller)
	r.bus.Send(tag, ClaimCreated{
		Owner: caller,
		Claim: claim,
	})
	return nil
}

// Revoke - remove the caller's record, freeing the key
func (r *Registry) Revoke(caller *account.Account, claim []byte) error {
	r.Lock()
	defer r.Unlock()

	_, ownerBytes := storage.Pool.Claims.GetNB(claim)
	if nil == ownerBytes {
		return fault.ErrClaimNotFound
	}
	if !bytes.Equal(caller.Bytes(), ownerBytes) {
		return fault.ErrNotClaimOwner
	}

	storage.Pool.Claims.Delete(claim)

	r.log.Infof("claim revoked: %x  owner: %s", claim, caller)
	r.bus.Send(tag, ClaimRevoked{
		Owner: caller,
		Claim: claim,
	})
	return nil
}

// Transfer - reassign the caller's record to a new owner
//
// the record is stamped with the current height, not the original
// registration height
func (r *Registry) Transfer(caller *account.Account, claim []byte, newOwner *account.Account) error {
	r.Lock()
	defer r.Unlock()

	_, ownerBytes := storage.Pool.Claims.GetNB(claim)
	if nil == ownerBytes {
		return fault.ErrClaimNotFound
	}
	if !bytes.Equal(caller.Bytes(), ownerBytes) {
		return fault.ErrNotClaimOwner
	}

	storage.Pool.Claims.Put(claim, claimRecord(r.height(), newOwner))

	r.log.Infof("claim transferred: %x  from: %s  to: %s", claim, caller, newOwner)
	r.bus.Send(tag, ClaimTransferred{
		From:  caller,
		Claim: claim,
		To:    newOwner,
	})
	return nil
}

// Owner - current owner and registration height of a claim
//
// second value is false if the claim is not registered
func (r *Registry) Owner(claim []byte) (*account.Account, uint64, bool) {
	height, ownerBytes := storage.Pool.Claims.GetNB(claim)
	if nil == ownerBytes {
		return nil, 0, false
	}
	owner, err := account.FromBytes(ownerBytes)
	logger.PanicIfError("poe.Owner", err)
	return owner, height, true
}
