// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/escrow"
)

// Depository - type for the RPC
type Depository struct {
	log  *logger.L
	book *escrow.Book
}

// DepositoryDepositArguments - arguments for RPC
type DepositoryDepositArguments struct {
	Owner  string `json:"owner"` // base58
	Amount uint64 `json:"amount,string"`
}

// DepositoryBalanceArguments - arguments for RPC
type DepositoryBalanceArguments struct {
	Owner string `json:"owner"` // base58
}

// DepositoryBalanceReply - both balance components of an account
type DepositoryBalanceReply struct {
	Free     uint64 `json:"free,string"`
	Reserved uint64 `json:"reserved,string"`
}

// Deposit - credit an account, returns the updated balance
func (d *Depository) Deposit(arguments *DepositoryDepositArguments, reply *DepositoryBalanceReply) error {
	d.log.Infof("Depository.Deposit: %+v", arguments)

	owner, err := account.FromBase58(arguments.Owner)
	if nil != err {
		return err
	}

	d.book.Deposit(owner, arguments.Amount)
	reply.Free, reply.Reserved = d.book.Balance(owner)
	return nil
}

// Balance - read both balance components
func (d *Depository) Balance(arguments *DepositoryBalanceArguments, reply *DepositoryBalanceReply) error {
	d.log.Infof("Depository.Balance: %+v", arguments)

	owner, err := account.FromBase58(arguments.Owner)
	if nil != err {
		return err
	}

	reply.Free, reply.Reserved = d.book.Balance(owner)
	return nil
}
