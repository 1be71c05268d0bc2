// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/google/uuid"

	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/multisig"
	"github.com/bitmark-inc/custodyd/record"
	"github.com/bitmark-inc/custodyd/storage"
)

// key in the state pool
var stateKey = []byte("ledger")

type state struct {
	id               uuid.UUID
	paused           bool
	maximumPerHolder uint64
	next             uint64
	policy           *multisig.Policy
}

func (s state) pack() record.Packed {
	r := record.New(record.LedgerStateTag).
		AppendBytes(s.id[:]).
		AppendBool(s.paused).
		AppendUint64(s.maximumPerHolder).
		AppendUint64(s.next).
		AppendBool(nil != s.policy)
	if nil != s.policy {
		r = r.AppendRecord(s.policy.Pack())
	}
	return r
}

func unpackState(packed record.Packed) (state, error) {
	r := packed.Read(record.LedgerStateTag)
	idBytes := r.Bytes()
	paused := r.Bool()
	maximum := r.Uint64()
	next := r.Uint64()
	hasPolicy := r.Bool()
	var inner record.Packed
	if hasPolicy {
		inner = r.Record()
	}
	if err := r.Done(); nil != err {
		return state{}, err
	}

	id, err := uuid.FromBytes(idBytes)
	if nil != err {
		return state{}, fault.NotRecordPack
	}
	s := state{
		id:               id,
		paused:           paused,
		maximumPerHolder: maximum,
		next:             next,
	}
	if hasPolicy {
		s.policy, err = multisig.UnpackPolicy(inner)
		if nil != err {
			return state{}, err
		}
	}
	return s, nil
}

func (s state) put(trx storage.Transaction, pool *storage.PoolHandle) {
	trx.Put(pool, stateKey, s.pack())
}
