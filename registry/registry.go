// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"math"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/escrow"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/messagebus"
	"github.com/bitmark-inc/kittyd/random"
	"github.com/bitmark-inc/kittyd/storage"
)

// tag on emitted events
const tag = "registry"

// the first id ever allocated
const firstKittyID = kitty.ID(1)

// control pool key holding the next kitty id
var nextKittyKey = []byte("K")

// Created - a new kitty exists, by direct creation or by breeding
type Created struct {
	Owner *account.Account
	Kitty kitty.ID
}

// Transferred - plain ownership change
type Transferred struct {
	From  *account.Account
	To    *account.Account
	Kitty kitty.ID
}

// Registry - the asset registry service
//
// operations serialise on the kitty store lock, shared with the
// marketplace, so one transition commits fully before the next starts
type Registry struct {
	log    *logger.L
	random random.Source
	ledger escrow.Ledger
	bus    *messagebus.Bus
	stake  uint64
	calls  counter.Counter
}

// New - create the registry service
//
// stakeAmount is reserved from the creator on every direct create
func New(source random.Source, ledger escrow.Ledger, bus *messagebus.Bus, stakeAmount uint64) *Registry {
	return &Registry{
		log:    logger.New("registry"),
		random: source,
		ledger: ledger,
		bus:    bus,
		stake:  stakeAmount,
	}
}

// read the next id to allocate
//
// the counter is only advanced by the commit of a successful
// creation, so a failed call never consumes an id
func nextID() (kitty.ID, error) {
	next, ok := storage.Pool.Control.GetN(nextKittyKey)
	if !ok {
		return firstKittyID, nil
	}
	if math.MaxUint64 == next {
		return 0, fault.ErrKittyCountOverflow
	}
	return kitty.ID(next), nil
}

// Create - allocate a brand new kitty to the caller
//
// the configured stake is reserved against the caller; a derived
// genome is stored and the id counter advances by one
func (r *Registry) Create(caller *account.Account) (kitty.ID, error) {
	kitty.Lock()
	defer kitty.Unlock()

	kittyID, err := nextID()
	if nil != err {
		return 0, err
	}

	if err := r.ledger.Reserve(caller, r.stake); nil != err {
		return 0, err
	}

	genome := r.random.Derive(caller, r.calls.Increment())

	trx := storage.NewTransaction()
	if err := kitty.Insert(trx, kittyID, genome, caller); nil != err {
		// unwind the reservation, nothing was committed
		r.ledger.Unreserve(caller, r.stake)
		return 0, err
	}
	trx.PutN(storage.Pool.Control, nextKittyKey, uint64(kittyID)+1)
	trx.Commit()

	r.log.Infof("created: %d  owner: %s  genome: %s", kittyID, caller, genome)
	r.bus.Send(tag, Created{
		Owner: caller,
		Kitty: kittyID,
	})
	return kittyID, nil
}

// Transfer - plain ownership change
//
// touches neither the stake nor any ask price: a listing set by the
// previous owner survives the transfer
func (r *Registry) Transfer(caller *account.Account, newOwner *account.Account, kittyID kitty.ID) error {
	kitty.Lock()
	defer kitty.Unlock()

	owner := kitty.OwnerOf(kittyID)
	if nil == owner || !owner.Equal(caller) {
		return fault.ErrNotKittyOwner
	}

	trx := storage.NewTransaction()
	if err := kitty.SetOwner(trx, kittyID, newOwner); nil != err {
		return err
	}
	trx.Commit()

	r.log.Infof("transferred: %d  from: %s  to: %s", kittyID, caller, newOwner)
	r.bus.Send(tag, Transferred{
		From:  caller,
		To:    newOwner,
		Kitty: kittyID,
	})
	return nil
}

// Breed - derive a new kitty from two distinct parents
//
// each genome bit of the child is selected from one of the parents
// by a random selector; no stake is reserved for bred kitties
func (r *Registry) Breed(caller *account.Account, parent1 kitty.ID, parent2 kitty.ID) (kitty.ID, error) {
	kitty.Lock()
	defer kitty.Unlock()

	if parent1 == parent2 {
		return 0, fault.ErrSameParentKitty
	}

	genome1, ok := kitty.Get(parent1)
	if !ok {
		return 0, fault.ErrKittyDoesNotExist
	}
	genome2, ok := kitty.Get(parent2)
	if !ok {
		return 0, fault.ErrKittyDoesNotExist
	}

	kittyID, err := nextID()
	if nil != err {
		return 0, err
	}

	selector := r.random.Derive(caller, r.calls.Increment())
	child := kitty.Mix(selector, genome1, genome2)

	trx := storage.NewTransaction()
	if err := kitty.Insert(trx, kittyID, child, caller); nil != err {
		return 0, err
	}
	trx.PutN(storage.Pool.Control, nextKittyKey, uint64(kittyID)+1)
	trx.Commit()

	r.log.Infof("bred: %d  owner: %s  parents: %d, %d", kittyID, caller, parent1, parent2)
	r.bus.Send(tag, Created{
		Owner: caller,
		Kitty: kittyID,
	})
	return kittyID, nil
}
