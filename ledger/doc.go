// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - custody of staked assets
//
// a staked asset is removed from the ownership inventory and held
// inside its stake record until the original holder unstakes it
//
// from storage/doc.go:
//
//   Stakes:
//     sequence (8 byte BE)  ->  packed asset ‖ holder ‖ timestamp
//
//   StakeIndex:
//     asset id              ->  sequence (8 byte BE)
//
// the sequence preserves insertion order across restarts
package ledger
