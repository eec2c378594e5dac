// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package poe_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/messagebus"
	"github.com/bitmark-inc/kittyd/poe"
	"github.com/bitmark-inc/kittyd/storage"
)

const (
	databaseFileName = "poe-test.leveldb"
	logDirectory     = "log"

	maximumClaimSize = 16
)

func TestMain(m *testing.M) {
	_ = os.Mkdir(logDirectory, 0700)
	_ = logger.Initialise(logger.Configuration{
		Directory: logDirectory,
		File:      "test.log",
		Size:      1048576,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})

	rc := m.Run()

	logger.Finalise()
	os.RemoveAll(logDirectory)
	os.Exit(rc)
}

type fixture struct {
	bus    *messagebus.Bus
	claims *poe.Registry
	height uint64
}

func setup(t *testing.T) *fixture {
	os.RemoveAll(databaseFileName)
	err := storage.Initialise(databaseFileName)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	f := &fixture{
		bus:    messagebus.New(),
		height: 1,
	}
	f.claims = poe.New(f.bus, maximumClaimSize, func() uint64 { return f.height })
	return f
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
	assert.NoError(t, err, "account error")
	return a
}

// next queued event or nil
func nextEvent(bus *messagebus.Bus) interface{} {
	select {
	case m := <-bus.Chan():
		return m.Item
	default:
		return nil
	}
}

func TestClaimRoundTrip(t *testing.T) {
	f := setup(t)
	defer teardown(t)

	alice := makeAccount(t, 0xa1)
	claim := []byte("some document")

	f.height = 42
	err := f.claims.Create(alice, claim)
	assert.NoError(t, err, "create failed")
	assert.Equal(t, poe.ClaimCreated{Owner: alice, Claim: claim}, nextEvent(f.bus), "wrong event")

	owner, height, ok := f.claims.Owner(claim)
	assert.True(t, ok, "claim not stored")
	assert.True(t, alice.Equal(owner), "wrong owner")
	assert.Equal(t, uint64(42), height, "wrong height")

	// a second registration of the same key fails, even for the owner
	err = f.claims.Create(alice, claim)
	assert.Equal(t, fault.ErrClaimAlreadyExists, err, "wrong error")
	bob := makeAccount(t, 0xb0)
	err = f.claims.Create(bob, claim)
	assert.Equal(t, fault.ErrClaimAlreadyExists, err, "wrong error")

	err = f.claims.Revoke(alice, claim)
	assert.NoError(t, err, "revoke failed")
	assert.Equal(t, poe.ClaimRevoked{Owner: alice, Claim: claim}, nextEvent(f.bus), "wrong event")

	_, _, ok = f.claims.Owner(claim)
	assert.False(t, ok, "claim survived revocation")

	// the key becomes claimable again
	err = f.claims.Create(alice, claim)
	assert.NoError(t, err, "re-create failed")
}

func TestClaimSizeBound(t *testing.T) {
	f := setup(t)
	defer teardown(t)

	alice := makeAccount(t, 0xa1)

	// at the bound is accepted
	atLimit := make([]byte, maximumClaimSize)
	err := f.claims.Create(alice, atLimit)
	assert.NoError(t, err, "create failed")

	// one byte over is rejected and nothing is stored
	tooLarge := make([]byte, maximumClaimSize+1)
	err = f.claims.Create(alice, tooLarge)
	assert.Equal(t, fault.ErrClaimTooLarge, err, "wrong error")

	_, _, ok := f.claims.Owner(tooLarge)
	assert.False(t, ok, "oversize claim stored")
}

func TestClaimOwnerExclusive(t *testing.T) {
	f := setup(t)
	defer teardown(t)

	alice := makeAccount(t, 0xa1)
	bob := makeAccount(t, 0xb0)
	claim := []byte("contested")

	assert.NoError(t, f.claims.Create(alice, claim), "create failed")

	// only the recorded owner may revoke or pass on
	err := f.claims.Revoke(bob, claim)
	assert.Equal(t, fault.ErrNotClaimOwner, err, "wrong error")
	err = f.claims.Transfer(bob, claim, bob)
	assert.Equal(t, fault.ErrNotClaimOwner, err, "wrong error")

	// absent keys are reported as such
	err = f.claims.Revoke(alice, []byte("missing"))
	assert.Equal(t, fault.ErrClaimNotFound, err, "wrong error")
	err = f.claims.Transfer(alice, []byte("missing"), bob)
	assert.Equal(t, fault.ErrClaimNotFound, err, "wrong error")

	owner, _, _ := f.claims.Owner(claim)
	assert.True(t, alice.Equal(owner), "owner changed on failure")
}

func TestClaimTransfer(t *testing.T) {
	f := setup(t)
	defer teardown(t)

	alice := makeAccount(t, 0xa1)
	bob := makeAccount(t, 0xb0)
	claim := []byte("deed")

	f.height = 10
	assert.NoError(t, f.claims.Create(alice, claim), "create failed")
	nextEvent(f.bus)

	f.height = 20
	err := f.claims.Transfer(alice, claim, bob)
	assert.NoError(t, err, "transfer failed")
	assert.Equal(t, poe.ClaimTransferred{From: alice, Claim: claim, To: bob}, nextEvent(f.bus), "wrong event")

	// record now carries the new owner and the transfer height
	owner, height, ok := f.claims.Owner(claim)
	assert.True(t, ok, "claim lost")
	assert.True(t, bob.Equal(owner), "owner not updated")
	assert.Equal(t, uint64(20), height, "height not updated")

	// control passed to the new owner
	err = f.claims.Revoke(alice, claim)
	assert.Equal(t, fault.ErrNotClaimOwner, err, "wrong error")
	assert.NoError(t, f.claims.Revoke(bob, claim), "revoke by new owner failed")
}
