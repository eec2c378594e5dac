// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package random - deterministic pseudo-random genome derivation
//
// a genome is the BLAKE2b-128 digest of the host supplied entropy
// value, the caller identity and the call sequence number; identical
// inputs always give identical output so every transition can be
// replayed
//
// the entropy value is fixed for the lifetime of one source and is
// only unpredictable before execution; this is cosmetic trait
// generation, not key material
package random

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/kitty"
)

// Source - derive a genome for one call
type Source interface {
	Derive(caller *account.Account, sequence uint64) kitty.Genome
}

type seededSource struct {
	entropy []byte
}

// NewSource - a source bound to a fixed entropy value
func NewSource(entropy []byte) Source {
	s := &seededSource{
		entropy: make([]byte, len(entropy)),
	}
	copy(s.entropy, entropy)
	return s
}

// Derive - hash entropy, caller and sequence down to one genome
func (s *seededSource) Derive(caller *account.Account, sequence uint64) kitty.Genome {
	hasher, err := blake2b.New(kitty.GenomeLength, nil)
	logger.PanicIfError("random.Derive", err)

	sequenceBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(sequenceBytes, sequence)

	hasher.Write(s.entropy)
	hasher.Write(caller.Bytes())
	hasher.Write(sequenceBytes)

	genome, err := kitty.GenomeFromBytes(hasher.Sum(nil))
	logger.PanicIfError("random.Derive", err)
	return genome
}
