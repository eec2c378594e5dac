// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package kitty - the asset model
//
// a kitty is identified by a monotonically allocated index and
// carries a fixed 16 byte genome; the genome never changes after
// creation, only ownership and the optional ask price do
package kitty

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/bitmark-inc/kittyd/fault"
)

// ID - kitty index, allocated from 1 upwards, never reused
type ID uint64

// GenomeLength - fixed number of genome bytes
const GenomeLength = 16

// Genome - opaque identity payload
type Genome [GenomeLength]byte

// Bytes - the big endian key form used in storage
func (id ID) Bytes() []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, uint64(id))
	return buffer
}

// IDFromBytes - convert a storage key back to an ID
func IDFromBytes(buffer []byte) ID {
	return ID(binary.BigEndian.Uint64(buffer))
}

// GenomeFromBytes - convert a stored record to a genome
func GenomeFromBytes(buffer []byte) (Genome, error) {
	genome := Genome{}
	if GenomeLength != len(buffer) {
		return genome, fault.ErrInvalidGenomeLength
	}
	copy(genome[:], buffer)
	return genome, nil
}

// String - hexadecimal form for display and logs
func (genome Genome) String() string {
	return hex.EncodeToString(genome[:])
}

// Mix - per-bit genetic combination
//
// each output bit is taken from parent one where the corresponding
// selector bit is one, otherwise from parent two
func Mix(selector Genome, parent1 Genome, parent2 Genome) Genome {
	child := Genome{}
	for i := 0; i < GenomeLength; i += 1 {
		child[i] = selector[i]&parent1[i] | ^selector[i]&parent2[i]
	}
	return child
}
