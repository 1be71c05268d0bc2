// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

// Reader - read access to the journal
type Reader interface {
	Next() uint64
	Fetch(start uint64, count int) ([]Record, uint64, error)
}

var _ Reader = (*Journal)(nil)
