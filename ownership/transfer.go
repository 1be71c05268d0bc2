// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/asset"
	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/storage"
)

// from storage/doc.go:
//
// Assets:
//   asset id  ->  packed asset ‖ owner account
//
// each function below stages its writes in the transaction and returns
// a function to update memory once the transaction has committed

// Give - add a new or released asset to an owner
func (inv *Inventory) Give(trx storage.Transaction, a *asset.Asset, owner *account.Account) func() {
	trx.Put(inv.pool, a.Id.Bytes(), asset.PackOwned(a, owner))

	return func() {
		inv.Lock()
		inv.add(a, owner)
		inv.Unlock()
	}
}

// Take - remove a free asset, returning it and its holder
func (inv *Inventory) Take(trx storage.Transaction, id asset.Identifier) (*asset.Asset, *account.Account, func(), error) {
	a, owner, err := inv.Asset(id)
	if nil != err {
		return nil, nil, nil, err
	}

	trx.Delete(inv.pool, id.Bytes())

	apply := func() {
		inv.Lock()
		inv.remove(id)
		inv.Unlock()
	}
	return a, owner, apply, nil
}

// Transfer - move a free asset between holders
func (inv *Inventory) Transfer(trx storage.Transaction, id asset.Identifier, from *account.Account, to *account.Account) (*asset.Asset, func(), error) {
	if nil == to {
		return nil, nil, fault.MissingParameters
	}
	a, owner, err := inv.Asset(id)
	if nil != err {
		return nil, nil, err
	}
	if !owner.Equal(from) {
		return nil, nil, fault.NotAssetOwner
	}

	trx.Put(inv.pool, id.Bytes(), asset.PackOwned(a, to))

	apply := func() {
		inv.Lock()
		inv.remove(id)
		inv.add(a, to)
		inv.Unlock()
	}
	return a, apply, nil
}

// Replace - store new field values for a free asset, keeping its holder
func (inv *Inventory) Replace(trx storage.Transaction, updated *asset.Asset) (func(), error) {
	_, owner, err := inv.Asset(updated.Id)
	if nil != err {
		return nil, err
	}

	trx.Put(inv.pool, updated.Id.Bytes(), asset.PackOwned(updated, owner))

	apply := func() {
		inv.Lock()
		inv.items[updated.Id] = item{asset: updated, owner: owner}
		inv.Unlock()
	}
	return apply, nil
}
