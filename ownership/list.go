// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"sort"

	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/asset"
	"github.com/bitmark-inc/custodyd/fault"
)

// ListFor - free assets held by an owner in token id order
func (inv *Inventory) ListFor(owner *account.Account) []*asset.Asset {
	inv.RLock()
	defer inv.RUnlock()

	set := inv.owners[owner.Key()]
	result := make([]*asset.Asset, 0, len(set))
	for id := range set {
		result = append(result, inv.items[id].asset)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].TokenId < result[j].TokenId
	})
	return result
}

// CheckOwned - every id must be a free asset held by owner
func (inv *Inventory) CheckOwned(owner *account.Account, ids []asset.Identifier) error {
	inv.RLock()
	defer inv.RUnlock()

	for _, id := range ids {
		i, ok := inv.items[id]
		if !ok {
			return fault.AssetNotFound
		}
		if !i.owner.Equal(owner) {
			return fault.NotAssetOwner
		}
	}
	return nil
}
