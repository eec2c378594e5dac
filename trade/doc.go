// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package trade - the kitty marketplace
//
// listing attaches an ask price to an owned kitty; buying settles
// that price through the escrow ledger, releases the seller's
// creation stake and hands over ownership, all in one transition
package trade
