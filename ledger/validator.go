// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/asset"
	"github.com/bitmark-inc/custodyd/fault"
)

// destination - one distinct holder in a batch
type destination struct {
	holder *account.Account
	count  uint64
}

// batchValidator - admits a whole batch before anything is escrowed
//
// one pass totals the batch per destination, then each distinct
// destination is checked once against the ledger
type batchValidator struct {
	destinations []*destination
	byKey        map[string]*destination
	assets       map[asset.Identifier]struct{}
}

func newBatchValidator(n int) *batchValidator {
	return &batchValidator{
		destinations: make([]*destination, 0, 1),
		byKey:        make(map[string]*destination),
		assets:       make(map[asset.Identifier]struct{}, n),
	}
}

// add - count one asset for a holder, rejecting repeated assets
func (v *batchValidator) add(id asset.Identifier, holder *account.Account) error {
	if _, ok := v.assets[id]; ok {
		return fault.DuplicateAsset
	}
	v.assets[id] = struct{}{}

	key := holder.Key()
	d, ok := v.byKey[key]
	if !ok {
		d = &destination{holder: holder}
		v.byKey[key] = d
		v.destinations = append(v.destinations, d)
	}
	d.count += 1
	return nil
}

// admit - every destination stays within the maximum
//
// caller must hold the ledger read lock
func (v *batchValidator) admit(x *index, maximum uint64) error {
	for _, d := range v.destinations {
		if uint64(x.count(d.holder))+d.count > maximum {
			return fault.MaxStakeExceeded
		}
	}
	return nil
}
