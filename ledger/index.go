// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"container/list"

	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/asset"
	"github.com/bitmark-inc/custodyd/fault"
)

// holderSet - one holder's stakes in the order they were made
type holderSet struct {
	count    int
	order    *list.List
	elements map[asset.Identifier]*list.Element
}

// index - all stakes in insertion order plus per holder sets
//
// list elements hold *Record
type index struct {
	order   *list.List
	byAsset map[asset.Identifier]*list.Element
	holders map[string]*holderSet
}

func newIndex() *index {
	return &index{
		order:   list.New(),
		byAsset: make(map[asset.Identifier]*list.Element),
		holders: make(map[string]*holderSet),
	}
}

func (x *index) insert(r *Record) {
	x.byAsset[r.AssetId] = x.order.PushBack(r)

	key := r.Holder.Key()
	h, ok := x.holders[key]
	if !ok {
		h = &holderSet{
			order:    list.New(),
			elements: make(map[asset.Identifier]*list.Element),
		}
		x.holders[key] = h
	}
	h.elements[r.AssetId] = h.order.PushBack(r)
	h.count += 1
}

// remove a stake, discarding an emptied holder set
func (x *index) remove(id asset.Identifier) *Record {
	e, ok := x.byAsset[id]
	if !ok {
		return nil
	}
	r := x.order.Remove(e).(*Record)
	delete(x.byAsset, id)

	key := r.Holder.Key()
	if h, ok := x.holders[key]; ok {
		if he, ok := h.elements[id]; ok {
			h.order.Remove(he)
			delete(h.elements, id)
			h.count -= 1
		}
		if 0 == h.count {
			delete(x.holders, key)
		}
	}
	return r
}

func (x *index) get(id asset.Identifier) (*Record, bool) {
	e, ok := x.byAsset[id]
	if !ok {
		return nil, false
	}
	return e.Value.(*Record), true
}

func (x *index) count(holder *account.Account) int {
	h, ok := x.holders[holder.Key()]
	if !ok {
		return 0
	}
	return h.count
}

func (x *index) size() int {
	return x.order.Len()
}

func (x *index) all() []Record {
	return collect(x.order)
}

func (x *index) forHolder(holder *account.Account) []Record {
	h, ok := x.holders[holder.Key()]
	if !ok {
		return []Record{}
	}
	return collect(h.order)
}

func collect(l *list.List) []Record {
	result := make([]Record, 0, l.Len())
	for e := l.Front(); nil != e; e = e.Next() {
		result = append(result, *e.Value.(*Record))
	}
	return result
}

// check - counts agree with set sizes, every stake in exactly one set
func (x *index) check() error {
	if x.order.Len() != len(x.byAsset) {
		return fault.StakeIndexCorrupt
	}

	total := 0
	seen := make(map[asset.Identifier]struct{}, len(x.byAsset))
	for key, h := range x.holders {
		if 0 == h.count || h.count != h.order.Len() || h.count != len(h.elements) {
			return fault.StakeIndexCorrupt
		}
		total += h.count

		for e := h.order.Front(); nil != e; e = e.Next() {
			r := e.Value.(*Record)
			if r.Holder.Key() != key {
				return fault.StakeIndexCorrupt
			}
			if _, ok := seen[r.AssetId]; ok {
				return fault.StakeIndexCorrupt
			}
			seen[r.AssetId] = struct{}{}

			g, ok := x.byAsset[r.AssetId]
			if !ok || g.Value.(*Record) != r {
				return fault.StakeIndexCorrupt
			}
		}
	}
	if total != x.order.Len() {
		return fault.StakeIndexCorrupt
	}
	return nil
}
