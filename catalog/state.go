// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog

import (
	"github.com/bitmark-inc/custodyd/multisig"
	"github.com/bitmark-inc/custodyd/record"
	"github.com/bitmark-inc/custodyd/storage"
)

// key in the state pool
var stateKey = []byte("catalog")

type state struct {
	paused bool
	policy *multisig.Policy
}

func (s state) pack() record.Packed {
	r := record.New(record.CatalogStateTag).
		AppendBool(s.paused).
		AppendBool(nil != s.policy)
	if nil != s.policy {
		r = r.AppendRecord(s.policy.Pack())
	}
	return r
}

func unpackState(packed record.Packed) (state, error) {
	r := packed.Read(record.CatalogStateTag)
	s := state{
		paused: r.Bool(),
	}
	hasPolicy := r.Bool()
	var inner record.Packed
	if hasPolicy {
		inner = r.Record()
	}
	if err := r.Done(); nil != err {
		return state{}, err
	}

	if hasPolicy {
		policy, err := multisig.UnpackPolicy(inner)
		if nil != err {
			return state{}, err
		}
		s.policy = policy
	}
	return s, nil
}

func (s state) put(trx storage.Transaction, pool *storage.PoolHandle) {
	trx.Put(pool, stateKey, s.pack())
}
