// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/asset"
	"github.com/bitmark-inc/custodyd/record"
)

// Record - one staked asset
type Record struct {
	AssetId   asset.Identifier `json:"assetId"`
	TokenId   uint64           `json:"tokenId,string"`
	Holder    *account.Account `json:"holder"`
	Timestamp uint64           `json:"timestamp"`

	sequence uint64
	escrowed *asset.Asset
}

// Sequence - position of the stake in the ledger
func (r Record) Sequence() uint64 {
	return r.sequence
}

// Asset - the escrowed asset
func (r Record) Asset() *asset.Asset {
	return r.escrowed
}

func newRecord(a *asset.Asset, holder *account.Account, timestamp uint64, sequence uint64) *Record {
	return &Record{
		AssetId:   a.Id,
		TokenId:   a.TokenId,
		Holder:    holder,
		Timestamp: timestamp,
		sequence:  sequence,
		escrowed:  a,
	}
}

func (r *Record) pack() record.Packed {
	return record.New(record.StakeTag).
		AppendRecord(r.escrowed.Pack()).
		AppendAccount(r.Holder).
		AppendUint64(r.Timestamp)
}

func unpackRecord(packed record.Packed, sequence uint64) (*Record, error) {
	rd := packed.Read(record.StakeTag)
	inner := rd.Record()
	holder := rd.Account()
	timestamp := rd.Uint64()
	if err := rd.Done(); nil != err {
		return nil, err
	}

	a, err := asset.Unpack(inner)
	if nil != err {
		return nil, err
	}
	return newRecord(a, holder, timestamp, sequence), nil
}
