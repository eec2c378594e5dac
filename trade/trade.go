// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trade

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/escrow"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/messagebus"
	"github.com/bitmark-inc/kittyd/storage"
)

// tag on emitted events
const tag = "trade"

// Listed - an ask price was attached
type Listed struct {
	Owner *account.Account
	Kitty kitty.ID
	Price uint64
}

// Bought - a listed kitty changed hands for its ask price
type Bought struct {
	Buyer *account.Account
	Kitty kitty.ID
	Price uint64
}

// Market - the marketplace service
//
// operations serialise on the kitty store lock, shared with the
// registry, so a transfer cannot commit inside a purchase
type Market struct {
	log    *logger.L
	ledger escrow.Ledger
	bus    *messagebus.Bus
	stake  uint64
}

// New - create the marketplace service
//
// stakeAmount must match the registry's creation stake: a purchase
// releases exactly that amount back to the seller
func New(ledger escrow.Ledger, bus *messagebus.Bus, stakeAmount uint64) *Market {
	return &Market{
		log:    logger.New("trade"),
		ledger: ledger,
		bus:    bus,
		stake:  stakeAmount,
	}
}

// List - put an owned kitty up for sale
//
// re-listing simply overwrites the previous ask price
func (m *Market) List(caller *account.Account, kittyID kitty.ID, price uint64) error {
	kitty.Lock()
	defer kitty.Unlock()

	owner := kitty.OwnerOf(kittyID)
	if nil == owner {
		return fault.ErrKittyDoesNotExist
	}
	if !owner.Equal(caller) {
		return fault.ErrNotKittyOwner
	}

	trx := storage.NewTransaction()
	kitty.SetPrice(trx, kittyID, price)
	trx.Commit()

	m.log.Infof("listed: %d  owner: %s  price: %d", kittyID, caller, price)
	m.bus.Send(tag, Listed{
		Owner: caller,
		Kitty: kittyID,
		Price: price,
	})
	return nil
}

// Buy - purchase a listed kitty at its ask price
//
// the offer must cover the ask price but only the ask price is paid;
// the settlement transfer keeps the buyer above the existential
// minimum, the seller's stake is released and the listing removed
func (m *Market) Buy(caller *account.Account, kittyID kitty.ID, offer uint64) error {
	kitty.Lock()
	defer kitty.Unlock()

	owner := kitty.OwnerOf(kittyID)
	if nil == owner {
		return fault.ErrKittyDoesNotExist
	}
	if owner.Equal(caller) {
		return fault.ErrBuyerIsAlreadyOwner
	}

	price, ok := kitty.PriceOf(kittyID)
	if !ok {
		return fault.ErrKittyIsNotForSale
	}
	if offer < price {
		return fault.ErrOfferTooLow
	}

	// settlement first: a failed payment leaves everything untouched
	if err := m.ledger.Transfer(caller, owner, price, true); nil != err {
		return err
	}
	m.ledger.Unreserve(owner, m.stake)

	trx := storage.NewTransaction()
	kitty.ClearPrice(trx, kittyID)
	if err := kitty.SetOwner(trx, kittyID, caller); nil != err {
		// owner record was read above, this cannot happen
		logger.Panicf("trade.Buy: set owner: %s", err)
	}
	trx.Commit()

	m.log.Infof("bought: %d  buyer: %s  seller: %s  price: %d", kittyID, caller, owner, price)
	m.bus.Send(tag, Bought{
		Buyer: caller,
		Kitty: kittyID,
		Price: price,
	})
	return nil
}
