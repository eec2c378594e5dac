// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - kitty creation, transfer and breeding
//
// composes the id allocator, randomness source, asset store and
// escrow ledger into the registry operations; every operation is one
// atomic transition: it validates against current state, buffers its
// writes and commits them as a single batch, then emits one event
package registry
