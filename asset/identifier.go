// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"github.com/google/uuid"

	"github.com/bitmark-inc/custodyd/fault"
)

// Identifier - internal asset identifier
type Identifier uuid.UUID

// NewIdentifier - a fresh random identifier
func NewIdentifier() Identifier {
	return Identifier(uuid.New())
}

// IdentifierFromBytes - convert a 16 byte slice
func IdentifierFromBytes(buffer []byte) (Identifier, error) {
	id, err := uuid.FromBytes(buffer)
	if nil != err {
		return Identifier{}, fault.InvalidIdentifier
	}
	return Identifier(id), nil
}

// IdentifierFromString - parse the text form
func IdentifierFromString(s string) (Identifier, error) {
	id, err := uuid.Parse(s)
	if nil != err {
		return Identifier{}, fault.InvalidIdentifier
	}
	return Identifier(id), nil
}

// Bytes - the 16 byte form, used as a storage key
func (id Identifier) Bytes() []byte {
	b := make([]byte, len(id))
	copy(b, id[:])
	return b
}

// String - the text form for use by the fmt package (for %s)
func (id Identifier) String() string {
	return uuid.UUID(id).String()
}

// GoString - for use by the fmt package (for %#v)
func (id Identifier) GoString() string {
	return "<asset:" + id.String() + ">"
}

// MarshalText - convert to the text form for JSON
func (id Identifier) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

// UnmarshalText - convert from the text form for JSON
func (id *Identifier) UnmarshalText(s []byte) error {
	u, err := uuid.ParseBytes(s)
	if nil != err {
		return fault.InvalidIdentifier
	}
	*id = Identifier(u)
	return nil
}
