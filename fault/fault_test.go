// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/kittyd/fault"
)

// test that the classification predicates match the error classes
func TestClassification(t *testing.T) {

	existsErrors := []error{
		fault.ErrClaimAlreadyExists,
		fault.ErrKittyAlreadyExists,
	}
	invalidErrors := []error{
		fault.ErrBuyerIsAlreadyOwner,
		fault.ErrInsufficientFunds,
		fault.ErrKittyIsNotForSale,
		fault.ErrNotClaimOwner,
		fault.ErrNotKittyOwner,
		fault.ErrOfferTooLow,
		fault.ErrSameParentKitty,
	}
	notFoundErrors := []error{
		fault.ErrClaimNotFound,
		fault.ErrKittyDoesNotExist,
	}
	processErrors := []error{
		fault.ErrAlreadyInitialised,
		fault.ErrKittyCountOverflow,
		fault.ErrNotInitialised,
	}

	for i, e := range existsErrors {
		if !fault.IsErrExists(e) {
			t.Errorf("%d: not exists error: %s", i, e)
		}
	}
	for i, e := range invalidErrors {
		if !fault.IsErrInvalid(e) {
			t.Errorf("%d: not invalid error: %s", i, e)
		}
	}
	for i, e := range notFoundErrors {
		if !fault.IsErrNotFound(e) {
			t.Errorf("%d: not not-found error: %s", i, e)
		}
	}
	for i, e := range processErrors {
		if !fault.IsErrProcess(e) {
			t.Errorf("%d: not process error: %s", i, e)
		}
	}
}

// error values must be directly comparable
func TestComparison(t *testing.T) {
	var err error = fault.ErrKittyDoesNotExist
	if fault.ErrKittyDoesNotExist != err {
		t.Errorf("error instance does not compare equal to itself")
	}
	if fault.IsErrExists(err) {
		t.Errorf("not-found error classified as exists")
	}
}
