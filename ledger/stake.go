// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/asset"
	"github.com/bitmark-inc/custodyd/capability"
	"github.com/bitmark-inc/custodyd/event"
	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/storage"
)

// Stake - escrow a batch of the holder's assets
//
// the batch is all or nothing
func (l *Ledger) Stake(holder *account.Account, ids []asset.Identifier) ([]Record, error) {
	trx := l.db.Begin()
	defer trx.End()

	if nil == holder {
		return nil, fault.MissingParameters
	}
	if l.IsPaused() {
		return nil, fault.LedgerPaused
	}
	if 0 == len(ids) {
		return nil, fault.EmptyBatch
	}

	v := newBatchValidator(len(ids))
	for _, id := range ids {
		if err := v.add(id, holder); nil != err {
			return nil, err
		}
	}
	if err := l.admit(v, ids); nil != err {
		return nil, err
	}
	if err := l.inventory.CheckOwned(holder, ids); nil != err {
		return nil, err
	}

	now := l.now()
	timestamps := make([]uint64, len(ids))
	holders := make([]*account.Account, len(ids))
	for i := range ids {
		timestamps[i] = now
		holders[i] = holder
	}

	records, err := l.escrow(trx, ids, holders, timestamps)
	if nil != err {
		return nil, err
	}

	l.log.Infof("staked: %d assets  holder: %s", len(records), holder)
	return records, nil
}

// AdminStake - escrow a batch of the principal's assets on behalf of
// other holders with given timestamps
func (l *Ledger) AdminStake(principal *account.Account, c *capability.Capability, ids []asset.Identifier, destinations []*account.Account, timestamps []uint64) ([]Record, error) {
	trx := l.db.Begin()
	defer trx.End()

	if 0 == len(ids) {
		return nil, fault.EmptyBatch
	}
	if len(ids) != len(destinations) || len(ids) != len(timestamps) {
		return nil, fault.LengthMismatch
	}
	if err := l.authorise(principal, c); nil != err {
		return nil, err
	}
	if l.IsPaused() {
		return nil, fault.LedgerPaused
	}

	v := newBatchValidator(len(ids))
	for i, id := range ids {
		if nil == destinations[i] {
			return nil, fault.MissingParameters
		}
		if err := v.add(id, destinations[i]); nil != err {
			return nil, err
		}
	}
	if err := l.admit(v, ids); nil != err {
		return nil, err
	}
	if err := l.inventory.CheckOwned(principal, ids); nil != err {
		return nil, err
	}

	records, err := l.escrow(trx, ids, destinations, timestamps)
	if nil != err {
		return nil, err
	}

	l.log.Infof("admin staked: %d assets  for: %d holders  by: %s", len(records), len(v.destinations), principal)
	return records, nil
}

// admit - limits per holder and assets not already in custody
func (l *Ledger) admit(v *batchValidator, ids []asset.Identifier) error {
	l.RLock()
	defer l.RUnlock()

	if err := v.admit(l.stakes, l.maximumPerHolder); nil != err {
		return err
	}
	for _, id := range ids {
		if _, ok := l.stakes.get(id); ok {
			return fault.AlreadyStaked
		}
	}
	return nil
}

// escrow - move validated assets from the inventory into stake records
func (l *Ledger) escrow(trx storage.Transaction, ids []asset.Identifier, holders []*account.Account, timestamps []uint64) ([]Record, error) {
	l.RLock()
	sequence := l.next
	l.RUnlock()

	batch := l.journal.Begin(trx)
	takes := make([]func(), 0, len(ids))
	created := make([]*Record, 0, len(ids))

	for i, id := range ids {
		a, _, applyTake, err := l.inventory.Take(trx, id)
		if nil != err {
			return nil, err
		}
		takes = append(takes, applyTake)

		r := newRecord(a, holders[i], timestamps[i], sequence)
		sequence += 1

		key := storage.Uint64Key(r.sequence)
		trx.Put(l.db.Stakes, key, r.pack())
		trx.Put(l.db.StakeIndex, id.Bytes(), key)

		err = batch.Add(event.Staked{
			Holder:    r.Holder,
			AssetId:   r.AssetId,
			TokenId:   r.TokenId,
			Timestamp: r.Timestamp,
		})
		if nil != err {
			return nil, err
		}
		created = append(created, r)
	}

	next := sequence
	s := l.currentState()
	s.next = next
	s.put(trx, l.db.State)

	// the inventory and the index change together for readers of Locate
	apply := func() {
		l.Lock()
		defer l.Unlock()

		for _, take := range takes {
			take()
		}
		for _, r := range created {
			l.stakes.insert(r)
		}
		l.next = next
	}

	if err := l.commit(trx, batch, apply); nil != err {
		return nil, err
	}

	records := make([]Record, len(created))
	for i, r := range created {
		records[i] = *r
	}
	return records, nil
}

// Unstake - return a batch of staked assets to the caller
//
// every id is checked before anything is released
func (l *Ledger) Unstake(caller *account.Account, ids []asset.Identifier) ([]Record, error) {
	trx := l.db.Begin()
	defer trx.End()

	if l.IsPaused() {
		return nil, fault.LedgerPaused
	}
	if 0 == len(ids) {
		return nil, fault.EmptyBatch
	}

	l.RLock()
	released := make([]*Record, 0, len(ids))
	seen := make(map[asset.Identifier]struct{}, len(ids))
	for _, id := range ids {
		r, ok := l.stakes.get(id)
		_, repeated := seen[id]
		if !ok || repeated {
			l.RUnlock()
			return nil, fault.NotStaked
		}
		if !r.Holder.Equal(caller) {
			l.RUnlock()
			return nil, fault.NotOriginalStaker
		}
		seen[id] = struct{}{}
		released = append(released, r)
	}
	l.RUnlock()

	now := l.now()
	batch := l.journal.Begin(trx)
	gives := make([]func(), 0, len(released))

	for _, r := range released {
		trx.Delete(l.db.Stakes, storage.Uint64Key(r.sequence))
		trx.Delete(l.db.StakeIndex, r.AssetId.Bytes())
		gives = append(gives, l.inventory.Give(trx, r.escrowed, r.Holder))

		err := batch.Add(event.Unstaked{
			Holder:    r.Holder,
			AssetId:   r.AssetId,
			TokenId:   r.TokenId,
			Timestamp: now,
		})
		if nil != err {
			return nil, err
		}
	}

	apply := func() {
		l.Lock()
		defer l.Unlock()

		for _, r := range released {
			l.stakes.remove(r.AssetId)
		}
		for _, give := range gives {
			give()
		}
	}

	if err := l.commit(trx, batch, apply); nil != err {
		return nil, err
	}

	records := make([]Record, len(released))
	for i, r := range released {
		records[i] = *r
	}

	l.log.Infof("unstaked: %d assets  holder: %s", len(records), caller)
	return records, nil
}
