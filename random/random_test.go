// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package random_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/random"
)

func makeAccount(t *testing.T, fill byte) *account.Account {
	buffer := make([]byte, 32)
	for i := range buffer {
		buffer[i] = fill
	}
	a, err := account.FromBytes(buffer)
	assert.NoError(t, err, "account error")
	return a
}

// identical inputs must always give identical output
func TestDeterminism(t *testing.T) {
	alice := makeAccount(t, 0xa1)

	s1 := random.NewSource([]byte("fixed entropy"))
	s2 := random.NewSource([]byte("fixed entropy"))

	g1 := s1.Derive(alice, 7)
	g2 := s2.Derive(alice, 7)
	assert.Equal(t, g1, g2, "derivation not deterministic")
}

// any input change must change the output
func TestDiscrimination(t *testing.T) {
	alice := makeAccount(t, 0xa1)
	bob := makeAccount(t, 0xb0)

	s := random.NewSource([]byte("fixed entropy"))
	other := random.NewSource([]byte("other entropy"))

	base := s.Derive(alice, 1)

	assert.NotEqual(t, base, s.Derive(alice, 2), "sequence ignored")
	assert.NotEqual(t, base, s.Derive(bob, 1), "caller ignored")
	assert.NotEqual(t, base, other.Derive(alice, 1), "entropy ignored")
}
