// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitty_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/storage"
)

const databaseFileName = "kitty-test.leveldb"

func setup(t *testing.T) {
	os.RemoveAll(databaseFileName)
	err := storage.Initialise(databaseFileName)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

func teardown(t *testing.T) {
	storage.Finalise()
	os.RemoveAll(databaseFileName)
}

func makeAccount(t *testing.T, fill byte) *account.Account {
	buffer := make([]byte, 32)
	for i := range buffer {
		buffer[i] = fill
	}
	a, err := account.FromBytes(buffer)
	if nil != err {
		t.Fatalf("account error: %s", err)
	}
	return a
}

func TestStoreLifecycle(t *testing.T) {
	setup(t)
	defer teardown(t)

	alice := makeAccount(t, 0xa1)
	bob := makeAccount(t, 0xb0)

	id := kitty.ID(1)
	genome, _ := kitty.GenomeFromBytes([]byte("0123456789abcdef"))

	if kitty.Exists(id) {
		t.Fatalf("unexpected kitty: %d", id)
	}
	if nil != kitty.OwnerOf(id) {
		t.Fatalf("owner record without kitty")
	}

	trx := storage.NewTransaction()
	err := kitty.Insert(trx, id, genome, alice)
	if nil != err {
		t.Fatalf("insert error: %s", err)
	}
	trx.Commit()

	if !kitty.Exists(id) {
		t.Errorf("missing kitty: %d", id)
	}
	g, ok := kitty.Get(id)
	if !ok || g != genome {
		t.Errorf("genome mismatch, got: %s  expected: %s", g, genome)
	}
	if !alice.Equal(kitty.OwnerOf(id)) {
		t.Errorf("owner mismatch, got: %s", kitty.OwnerOf(id))
	}

	// duplicate id is an allocator fault
	trx = storage.NewTransaction()
	err = kitty.Insert(trx, id, genome, bob)
	if fault.ErrKittyAlreadyExists != err {
		t.Errorf("wrong error for duplicate insert: %v", err)
	}

	// ownership change leaves genome alone
	trx = storage.NewTransaction()
	err = kitty.SetOwner(trx, id, bob)
	if nil != err {
		t.Fatalf("set owner error: %s", err)
	}
	trx.Commit()

	if !bob.Equal(kitty.OwnerOf(id)) {
		t.Errorf("owner not updated")
	}
	g, _ = kitty.Get(id)
	if g != genome {
		t.Errorf("genome modified by ownership change")
	}

	// cannot re-own a missing kitty
	trx = storage.NewTransaction()
	err = kitty.SetOwner(trx, kitty.ID(99), bob)
	if fault.ErrKittyDoesNotExist != err {
		t.Errorf("wrong error for missing kitty: %v", err)
	}
}

func TestStorePrices(t *testing.T) {
	setup(t)
	defer teardown(t)

	alice := makeAccount(t, 0xa1)
	id := kitty.ID(7)
	genome := kitty.Genome{}

	trx := storage.NewTransaction()
	err := kitty.Insert(trx, id, genome, alice)
	if nil != err {
		t.Fatalf("insert error: %s", err)
	}
	trx.Commit()

	if _, ok := kitty.PriceOf(id); ok {
		t.Fatalf("unlisted kitty has a price")
	}

	trx = storage.NewTransaction()
	kitty.SetPrice(trx, id, 1000)
	trx.Commit()

	price, ok := kitty.PriceOf(id)
	if !ok || 1000 != price {
		t.Errorf("price mismatch, got: %d  expected: %d", price, 1000)
	}

	// re-listing overwrites
	trx = storage.NewTransaction()
	kitty.SetPrice(trx, id, 2500)
	trx.Commit()

	price, _ = kitty.PriceOf(id)
	if 2500 != price {
		t.Errorf("price not overwritten, got: %d", price)
	}

	trx = storage.NewTransaction()
	kitty.ClearPrice(trx, id)
	trx.Commit()

	if _, ok := kitty.PriceOf(id); ok {
		t.Errorf("price survived clear")
	}
}
