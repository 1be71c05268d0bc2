// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. sequence     = big endian uint64 (8 bytes)
// 4. token id     = big endian uint64 (8 bytes)
// 5. asset id     = 16 byte UUID
// 6. cap id       = 16 byte UUID
// 7. account      = key variant ++ public key (or multisig digest)
//
// State:
//
//   S ++ "catalog"             - catalog state
//                                data: packed catalog state (pause flag, multisig policy)
//   S ++ "ledger"              - ledger state
//                                data: packed ledger state (ledger id, pause flag, maximum, multisig policy)
//
// Catalog:
//
//   I ++ token id              - identity registry, never deleted
//                                data: asset id
//   A ++ asset id              - free (not escrowed) assets
//                                data: packed asset ++ owner
//   K ++ cap id                - live admin capabilities
//                                data: packed capability
//
// Ledger:
//
//   T ++ sequence              - stake records in insertion order
//                                data: packed stake including the escrowed asset
//   X ++ asset id              - stake lookup
//                                data: sequence
//
// Events:
//
//   E ++ sequence              - journalled events
//                                data: JSON event
package storage
