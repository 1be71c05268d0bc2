// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - compact binary form of stored records
//
// every record starts with a Varint64 tag followed by its fields,
// each integer is a Varint64 and each byte string is prefixed by
// its Varint64 length
package record
