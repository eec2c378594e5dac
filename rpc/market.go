// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/trade"
)

// Market - type for the RPC
type Market struct {
	log    *logger.L
	market *trade.Market
}

// Market sell
// -----------

// MarketSellArguments - arguments for RPC
type MarketSellArguments struct {
	Owner string `json:"owner"` // base58
	Kitty uint64 `json:"kitty,string"`
	Price uint64 `json:"price,string"`
}

// MarketSellReply - result of sell RPC
type MarketSellReply struct {
	Kitty uint64 `json:"kitty,string"`
	Price uint64 `json:"price,string"`
}

// Sell - list a kitty at an ask price, overwriting any earlier listing
func (m *Market) Sell(arguments *MarketSellArguments, reply *MarketSellReply) error {
	m.log.Infof("Market.Sell: %+v", arguments)

	owner, err := account.FromBase58(arguments.Owner)
	if nil != err {
		return err
	}

	if err := m.market.List(owner, kitty.ID(arguments.Kitty), arguments.Price); nil != err {
		return err
	}

	reply.Kitty = arguments.Kitty
	reply.Price = arguments.Price
	return nil
}

// Market buy
// ----------

// MarketBuyArguments - arguments for RPC
type MarketBuyArguments struct {
	Buyer string `json:"buyer"` // base58
	Kitty uint64 `json:"kitty,string"`
	Offer uint64 `json:"offer,string"`
}

// MarketBuyReply - result of buy RPC
type MarketBuyReply struct {
	Kitty uint64 `json:"kitty,string"`
	Owner string `json:"owner"` // base58
}

// Buy - settle a listed kitty at its ask price
func (m *Market) Buy(arguments *MarketBuyArguments, reply *MarketBuyReply) error {
	m.log.Infof("Market.Buy: %+v", arguments)

	buyer, err := account.FromBase58(arguments.Buyer)
	if nil != err {
		return err
	}

	if err := m.market.Buy(buyer, kitty.ID(arguments.Kitty), arguments.Offer); nil != err {
		return err
	}

	reply.Kitty = arguments.Kitty
	reply.Owner = buyer.String()
	return nil
}
