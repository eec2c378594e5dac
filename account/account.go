// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - caller identities
//
// an account is an opaque public key; signature verification happens
// before any operation reaches this ledger so only the identity value
// is carried here
//
// the textual form is Base58 of: public key bytes || 4 byte checksum
// where the checksum is the leading bytes of SHA3-256(public key)
package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/kittyd/fault"
)

// miscellaneous constants
const (
	checksumLength  = 4
	publicKeyLength = 32
)

// Account - the caller identity
type Account struct {
	publicKey []byte
}

// FromBytes - wrap raw public key bytes as an account
func FromBytes(publicKey []byte) (*Account, error) {
	if publicKeyLength != len(publicKey) {
		return nil, fault.ErrInvalidPublicKeyLength
	}
	a := &Account{
		publicKey: make([]byte, publicKeyLength),
	}
	copy(a.publicKey, publicKey)
	return a, nil
}

// FromBase58 - convert a Base58 encoded string to an account
func FromBase58(accountBase58Encoded string) (*Account, error) {
	decoded, err := base58.Decode(accountBase58Encoded)
	if nil != err {
		return nil, fault.ErrCannotDecodeAccount
	}
	if publicKeyLength+checksumLength != len(decoded) {
		return nil, fault.ErrCannotDecodeAccount
	}

	publicKey := decoded[:publicKeyLength]
	digest := sha3.Sum256(publicKey)
	if !bytes.Equal(digest[:checksumLength], decoded[publicKeyLength:]) {
		return nil, fault.ErrWrongAccountChecksum
	}

	return FromBytes(publicKey)
}

// Bytes - the key form used in storage records
func (account *Account) Bytes() []byte {
	return account.publicKey
}

// String - Base58 encoded public key with checksum
func (account *Account) String() string {
	digest := sha3.Sum256(account.publicKey)
	buffer := make([]byte, 0, publicKeyLength+checksumLength)
	buffer = append(buffer, account.publicKey...)
	buffer = append(buffer, digest[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - for JSON and logging output
func (account *Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// Equal - compare two identities
func (account *Account) Equal(other *Account) bool {
	if nil == other {
		return false
	}
	return bytes.Equal(account.publicKey, other.publicKey)
}
