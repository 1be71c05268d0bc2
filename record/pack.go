// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/util"
)

// TagType - type code for records
type TagType uint64

// enumerate the possible record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	AssetTag        = TagType(iota)
	OwnedAssetTag   = TagType(iota)
	CapabilityTag   = TagType(iota)
	StakeTag        = TagType(iota)
	CatalogStateTag = TagType(iota)
	LedgerStateTag  = TagType(iota)
	PolicyTag       = TagType(iota)

	// this item must be last
	InvalidTag = TagType(iota)
)

// maximum length of any single packed field
const maximumFieldLength = 65535

// Packed - packed records are just a byte slice
type Packed []byte

// New - start a record of the given type
func New(tag TagType) Packed {
	return util.ToVarint64(uint64(tag))
}

// Tag - the type of a packed record, InvalidTag if it cannot be decoded
func (record Packed) Tag() TagType {
	tag, n := util.ClippedVarint64(record, 1, int(InvalidTag)-1)
	if 0 == n {
		return InvalidTag
	}
	return TagType(tag)
}

// AppendString - append a length prefixed string
func (record Packed) AppendString(s string) Packed {
	return record.AppendBytes([]byte(s))
}

// AppendBytes - append a length prefixed byte slice
func (record Packed) AppendBytes(data []byte) Packed {
	record = append(record, util.ToVarint64(uint64(len(data)))...)
	return append(record, data...)
}

// AppendAccount - append the byte form of an account
func (record Packed) AppendAccount(address *account.Account) Packed {
	return record.AppendBytes(address.Bytes())
}

// AppendUint64 - append a Varint64
func (record Packed) AppendUint64(value uint64) Packed {
	return append(record, util.ToVarint64(value)...)
}

// AppendBool - append a boolean as a single Varint64
func (record Packed) AppendBool(value bool) Packed {
	if value {
		return record.AppendUint64(1)
	}
	return record.AppendUint64(0)
}

// AppendRecord - embed another packed record
func (record Packed) AppendRecord(inner Packed) Packed {
	return record.AppendBytes(inner)
}
