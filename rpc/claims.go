// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"encoding/hex"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/poe"
)

// Claims - type for the RPC
type Claims struct {
	log    *logger.L
	claims *poe.Registry
}

// ClaimsArguments - owner plus claim, used by create and revoke
type ClaimsArguments struct {
	Owner string `json:"owner"` // base58
	Claim string `json:"claim"` // hex
}

// ClaimsReply - the affected claim
type ClaimsReply struct {
	Claim string `json:"claim"` // hex
}

// Create - record a claim for the owner
func (c *Claims) Create(arguments *ClaimsArguments, reply *ClaimsReply) error {
	c.log.Infof("Claims.Create: %+v", arguments)

	owner, claim, err := decodeClaim(arguments.Owner, arguments.Claim)
	if nil != err {
		return err
	}

	if err := c.claims.Create(owner, claim); nil != err {
		return err
	}

	reply.Claim = arguments.Claim
	return nil
}

// Revoke - delete a claim, owner only
func (c *Claims) Revoke(arguments *ClaimsArguments, reply *ClaimsReply) error {
	c.log.Infof("Claims.Revoke: %+v", arguments)

	owner, claim, err := decodeClaim(arguments.Owner, arguments.Claim)
	if nil != err {
		return err
	}

	if err := c.claims.Revoke(owner, claim); nil != err {
		return err
	}

	reply.Claim = arguments.Claim
	return nil
}

// Claims transfer
// ---------------

// ClaimsTransferArguments - arguments for RPC
type ClaimsTransferArguments struct {
	Owner    string `json:"owner"`    // base58
	Claim    string `json:"claim"`    // hex
	NewOwner string `json:"newOwner"` // base58
}

// Transfer - pass a claim to a new owner
func (c *Claims) Transfer(arguments *ClaimsTransferArguments, reply *ClaimsReply) error {
	c.log.Infof("Claims.Transfer: %+v", arguments)

	owner, claim, err := decodeClaim(arguments.Owner, arguments.Claim)
	if nil != err {
		return err
	}
	newOwner, err := account.FromBase58(arguments.NewOwner)
	if nil != err {
		return err
	}

	if err := c.claims.Transfer(owner, claim, newOwner); nil != err {
		return err
	}

	reply.Claim = arguments.Claim
	return nil
}

// Claims info
// -----------

// ClaimsInfoArguments - arguments for RPC
type ClaimsInfoArguments struct {
	Claim string `json:"claim"` // hex
}

// ClaimsInfoReply - the stored claim record
type ClaimsInfoReply struct {
	Owner  string `json:"owner"` // base58
	Height uint64 `json:"height,string"`
}

// Info - inspect one claim
func (c *Claims) Info(arguments *ClaimsInfoArguments, reply *ClaimsInfoReply) error {
	c.log.Infof("Claims.Info: %+v", arguments)

	claim, err := hex.DecodeString(arguments.Claim)
	if nil != err {
		return err
	}

	owner, height, ok := c.claims.Owner(claim)
	if !ok {
		return fault.ErrClaimNotFound
	}

	reply.Owner = owner.String()
	reply.Height = height
	return nil
}

func decodeClaim(ownerBase58 string, claimHex string) (*account.Account, []byte, error) {
	owner, err := account.FromBase58(ownerBase58)
	if nil != err {
		return nil, nil, err
	}
	claim, err := hex.DecodeString(claimHex)
	if nil != err {
		return nil, nil, err
	}
	return owner, claim, nil
}
