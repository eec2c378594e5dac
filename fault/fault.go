// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ProcessError("already initialised")
	ErrBuyerIsAlreadyOwner    = InvalidError("buyer is already owner")
	ErrCannotDecodeAccount    = InvalidError("cannot decode account")
	ErrClaimAlreadyExists     = ExistsError("claim already exists")
	ErrClaimNotFound          = NotFoundError("claim not found")
	ErrClaimTooLarge          = InvalidError("claim too large")
	ErrInsufficientFunds      = InvalidError("insufficient funds")
	ErrInvalidGenomeLength    = InvalidError("invalid genome length")
	ErrInvalidPublicKeyLength = InvalidError("invalid public key length")
	ErrKittyAlreadyExists     = ExistsError("kitty already exists")
	ErrKittyCountOverflow     = ProcessError("kitty count overflow")
	ErrKittyDoesNotExist      = NotFoundError("kitty does not exist")
	ErrKittyIsNotForSale      = InvalidError("kitty is not for sale")
	ErrNotClaimOwner          = InvalidError("not claim owner")
	ErrNotInitialised         = ProcessError("not initialised")
	ErrNotKittyOwner          = InvalidError("not kitty owner")
	ErrOfferTooLow            = InvalidError("offer too low")
	ErrSameParentKitty        = InvalidError("same parent kitty")
	ErrWrongAccountChecksum   = InvalidError("wrong account checksum")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
