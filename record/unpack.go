// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/util"
)

// Reader - sequential field decoder for a packed record
//
// the first error is latched and all later reads return zero values,
// so a caller can read every field and check Err once
type Reader struct {
	buffer Packed
	n      int
	err    error
}

// Read - start decoding a record that must have the expected tag
func (record Packed) Read(expected TagType) *Reader {
	r := &Reader{
		buffer: record,
	}
	tag, n := util.ClippedVarint64(record, 1, int(InvalidTag)-1)
	if 0 == n || TagType(tag) != expected {
		r.err = fault.NotRecordPack
		return r
	}
	r.n = n
	return r
}

// Err - the first error encountered
func (r *Reader) Err() error {
	return r.err
}

// Done - error unless the whole record was consumed
func (r *Reader) Done() error {
	if nil == r.err && r.n != len(r.buffer) {
		r.err = fault.NotRecordPack
	}
	return r.err
}

// Uint64 - read a Varint64
func (r *Reader) Uint64() uint64 {
	if nil != r.err {
		return 0
	}
	value, n := util.FromVarint64(r.buffer[r.n:])
	if 0 == n {
		r.err = fault.NotRecordPack
		return 0
	}
	r.n += n
	return value
}

// Bool - read a boolean
func (r *Reader) Bool() bool {
	value := r.Uint64()
	if value > 1 {
		r.err = fault.NotRecordPack
		return false
	}
	return 1 == value
}

// Bytes - read a length prefixed byte slice
func (r *Reader) Bytes() []byte {
	if nil != r.err {
		return nil
	}
	length, n := util.FromVarint64(r.buffer[r.n:])
	if 0 == n || length > maximumFieldLength || r.n+n+int(length) > len(r.buffer) {
		r.err = fault.NotRecordPack
		return nil
	}
	r.n += n
	data := make([]byte, length)
	copy(data, r.buffer[r.n:r.n+int(length)])
	r.n += int(length)
	return data
}

// String - read a length prefixed string
func (r *Reader) String() string {
	return string(r.Bytes())
}

// Account - read an account
func (r *Reader) Account() *account.Account {
	data := r.Bytes()
	if nil != r.err {
		return nil
	}
	a, err := account.AccountFromBytes(data)
	if nil != err {
		r.err = err
		return nil
	}
	return a
}

// Record - read an embedded record
func (r *Reader) Record() Packed {
	return Packed(r.Bytes())
}
