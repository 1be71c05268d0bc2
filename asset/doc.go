// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - collectible asset records and the registry of
// externally chosen token identifiers
//
// every asset has an internal identifier assigned at mint and an
// external token id supplied by the minter, the registry ensures a
// token id is used at most once for the lifetime of the database
package asset
