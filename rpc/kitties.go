// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/registry"
)

// Kitties - type for the RPC
type Kitties struct {
	log      *logger.L
	registry *registry.Registry
}

// Kitties create
// --------------

// KittiesCreateArguments - arguments for RPC
type KittiesCreateArguments struct {
	Owner string `json:"owner"` // base58
}

// KittiesCreateReply - result of create or breed RPC
type KittiesCreateReply struct {
	Kitty  uint64 `json:"kitty,string"`
	Genome string `json:"genome"` // hex
}

// Create - mint a new kitty for the owner
func (k *Kitties) Create(arguments *KittiesCreateArguments, reply *KittiesCreateReply) error {
	k.log.Infof("Kitties.Create: %+v", arguments)

	owner, err := account.FromBase58(arguments.Owner)
	if nil != err {
		return err
	}

	kittyID, err := k.registry.Create(owner)
	if nil != err {
		return err
	}

	genome, _ := kitty.Get(kittyID)
	reply.Kitty = uint64(kittyID)
	reply.Genome = genome.String()
	return nil
}

// Kitties transfer
// ----------------

// KittiesTransferArguments - arguments for RPC
type KittiesTransferArguments struct {
	Owner    string `json:"owner"`    // base58
	NewOwner string `json:"newOwner"` // base58
	Kitty    uint64 `json:"kitty,string"`
}

// KittiesTransferReply - result of transfer RPC
type KittiesTransferReply struct {
	Kitty uint64 `json:"kitty,string"`
	Owner string `json:"owner"` // base58
}

// Transfer - pass a kitty to a new owner
func (k *Kitties) Transfer(arguments *KittiesTransferArguments, reply *KittiesTransferReply) error {
	k.log.Infof("Kitties.Transfer: %+v", arguments)

	owner, err := account.FromBase58(arguments.Owner)
	if nil != err {
		return err
	}
	newOwner, err := account.FromBase58(arguments.NewOwner)
	if nil != err {
		return err
	}

	kittyID := kitty.ID(arguments.Kitty)
	if err := k.registry.Transfer(owner, newOwner, kittyID); nil != err {
		return err
	}

	reply.Kitty = arguments.Kitty
	reply.Owner = newOwner.String()
	return nil
}

// Kitties breed
// -------------

// KittiesBreedArguments - arguments for RPC
type KittiesBreedArguments struct {
	Owner   string `json:"owner"` // base58
	Parent1 uint64 `json:"parent1,string"`
	Parent2 uint64 `json:"parent2,string"`
}

// Breed - derive a new kitty from two owned parents
func (k *Kitties) Breed(arguments *KittiesBreedArguments, reply *KittiesCreateReply) error {
	k.log.Infof("Kitties.Breed: %+v", arguments)

	owner, err := account.FromBase58(arguments.Owner)
	if nil != err {
		return err
	}

	child, err := k.registry.Breed(owner, kitty.ID(arguments.Parent1), kitty.ID(arguments.Parent2))
	if nil != err {
		return err
	}

	genome, _ := kitty.Get(child)
	reply.Kitty = uint64(child)
	reply.Genome = genome.String()
	return nil
}

// Kitties info
// ------------

// KittiesInfoArguments - arguments for RPC
type KittiesInfoArguments struct {
	Kitty uint64 `json:"kitty,string"`
}

// KittiesInfoReply - all stored data for one kitty
type KittiesInfoReply struct {
	Kitty   uint64 `json:"kitty,string"`
	Owner   string `json:"owner"`  // base58
	Genome  string `json:"genome"` // hex
	ForSale bool   `json:"forSale"`
	Price   uint64 `json:"price,string"`
}

// Info - inspect one kitty
func (k *Kitties) Info(arguments *KittiesInfoArguments, reply *KittiesInfoReply) error {
	k.log.Infof("Kitties.Info: %+v", arguments)

	kittyID := kitty.ID(arguments.Kitty)
	genome, ok := kitty.Get(kittyID)
	if !ok {
		return fault.ErrKittyDoesNotExist
	}

	reply.Kitty = arguments.Kitty
	reply.Owner = kitty.OwnerOf(kittyID).String()
	reply.Genome = genome.String()
	reply.Price, reply.ForSale = kitty.PriceOf(kittyID)
	return nil
}
