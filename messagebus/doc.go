// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - event distribution
//
// every successful state transition sends exactly one typed event to
// a bus; failed operations send nothing
package messagebus
