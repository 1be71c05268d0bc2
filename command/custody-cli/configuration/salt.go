// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	"github.com/bitmark-inc/custodyd/fault"
)

const saltSize = 16

// Salt - random input to the password hash
type Salt [saltSize]byte

// MakeSalt - a new random salt
func MakeSalt() (*Salt, error) {
	salt := new(Salt)
	if _, err := io.ReadFull(rand.Reader, salt[:]); nil != err {
		return nil, err
	}
	return salt, nil
}

// Bytes - salt as a byte slice
func (salt Salt) Bytes() []byte {
	return salt[:]
}

// String - hex form
func (salt Salt) String() string {
	return hex.EncodeToString(salt[:])
}

// MarshalText - hex form for JSON
func (salt Salt) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(saltSize))
	hex.Encode(buffer, salt[:])
	return buffer, nil
}

// UnmarshalText - decode the hex form
func (salt *Salt) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	if saltSize != n {
		return fault.InvalidKeyLength
	}
	copy(salt[:], buffer)
	return nil
}
