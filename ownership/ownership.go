// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - the assets that are not in custody and who holds them
//
// an asset is in exactly one place: this inventory or a stake record
package ownership

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/asset"
	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/storage"
)

type item struct {
	asset *asset.Asset
	owner *account.Account
}

// Inventory - free assets by id, with a per owner index
type Inventory struct {
	sync.RWMutex
	log    *logger.L
	pool   *storage.PoolHandle
	items  map[asset.Identifier]item
	owners map[string]map[asset.Identifier]struct{}
}

// New - load the inventory from its pool
func New(pool *storage.PoolHandle) (*Inventory, error) {
	inv := &Inventory{
		log:    logger.New("ownership"),
		pool:   pool,
		items:  make(map[asset.Identifier]item),
		owners: make(map[string]map[asset.Identifier]struct{}),
	}

	err := pool.NewFetchCursor().Map(func(key []byte, value []byte) error {
		a, owner, err := asset.UnpackOwned(value)
		if nil != err {
			inv.log.Criticalf("asset key: %x  unpack error: %s", key, err)
			return err
		}
		inv.add(a, owner)
		return nil
	})
	if nil != err {
		return nil, err
	}

	inv.log.Infof("restored: %d assets", len(inv.items))
	return inv, nil
}

// Owner - current holder of a free asset
func (inv *Inventory) Owner(id asset.Identifier) (*account.Account, error) {
	inv.RLock()
	defer inv.RUnlock()

	i, ok := inv.items[id]
	if !ok {
		return nil, fault.AssetNotFound
	}
	return i.owner, nil
}

// Asset - a free asset and its holder
func (inv *Inventory) Asset(id asset.Identifier) (*asset.Asset, *account.Account, error) {
	inv.RLock()
	defer inv.RUnlock()

	i, ok := inv.items[id]
	if !ok {
		return nil, nil, fault.AssetNotFound
	}
	return i.asset, i.owner, nil
}

// Count - number of free assets
func (inv *Inventory) Count() int {
	inv.RLock()
	defer inv.RUnlock()

	return len(inv.items)
}

// caller must hold the write lock
func (inv *Inventory) add(a *asset.Asset, owner *account.Account) {
	inv.items[a.Id] = item{asset: a, owner: owner}

	key := owner.Key()
	set, ok := inv.owners[key]
	if !ok {
		set = make(map[asset.Identifier]struct{})
		inv.owners[key] = set
	}
	set[a.Id] = struct{}{}
}

// caller must hold the write lock
func (inv *Inventory) remove(id asset.Identifier) {
	i, ok := inv.items[id]
	if !ok {
		return
	}
	delete(inv.items, id)

	key := i.owner.Key()
	if set, ok := inv.owners[key]; ok {
		delete(set, id)
		if 0 == len(set) {
			delete(inv.owners, key)
		}
	}
}
