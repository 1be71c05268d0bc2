// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package capability

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/event"
	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/storage"
)

// Authority - issues and revokes the capabilities of one subsystem
//
// every mutating method stages its writes in the storage transaction
// and returns a function that updates memory, to be called only
// after the transaction commits
type Authority struct {
	sync.RWMutex
	kind     Kind
	instance uuid.UUID
	pool     *storage.PoolHandle
	live     map[uuid.UUID]*Capability
}

// New - an authority with no capabilities
//
// instance is the ledger id for a bound authority, or uuid.Nil
func New(pool *storage.PoolHandle, kind Kind, instance uuid.UUID) *Authority {
	return &Authority{
		kind:     kind,
		instance: instance,
		pool:     pool,
		live:     make(map[uuid.UUID]*Capability),
	}
}

// Restore - load the live capabilities of this authority
func Restore(pool *storage.PoolHandle, kind Kind, instance uuid.UUID) (*Authority, error) {
	a := New(pool, kind, instance)

	err := pool.NewFetchCursor().Map(func(key []byte, value []byte) error {
		c, err := unpack(value)
		if nil != err {
			return err
		}
		if c.kind == kind && c.instance == instance {
			a.live[c.id] = c
		}
		return nil
	})
	if nil != err {
		return nil, err
	}
	if 0 == len(a.live) {
		return nil, fault.NotInitialised
	}
	return a, nil
}

// Kind - the subsystem this authority administers
func (a *Authority) Kind() Kind {
	return a.kind
}

// Instance - the bound ledger id, uuid.Nil if unbound
func (a *Authority) Instance() uuid.UUID {
	return a.instance
}

// Initialise - issue the first capability
func (a *Authority) Initialise(trx storage.Transaction, holder *account.Account) (*Capability, *event.Capability, func(), error) {
	a.RLock()
	n := len(a.live)
	a.RUnlock()

	if 0 != n {
		return nil, nil, nil, fault.AlreadyInitialised
	}
	if nil == holder {
		return nil, nil, nil, fault.MissingParameters
	}

	c, apply := a.issue(trx, holder)
	e := &event.Capability{
		CapType:   a.kind.String(),
		Action:    event.Created,
		CapId:     c.id.String(),
		Actor:     holder,
		Recipient: holder,
	}
	return c, e, apply, nil
}

// Verify - check a presented capability for a principal
func (a *Authority) Verify(c *Capability, principal *account.Account) error {
	if nil == c || nil == principal {
		return fault.InvalidCapability
	}
	if c.kind != a.kind {
		return fault.InvalidCapability
	}
	if c.instance != a.instance {
		return fault.WrongInstance
	}

	a.RLock()
	live, ok := a.live[c.id]
	a.RUnlock()

	// must be the issued value itself, not a copy
	if !ok || live != c {
		return fault.InvalidCapability
	}
	if !c.holder.Equal(principal) {
		return fault.InvalidCapability
	}
	return nil
}

// Add - issue another capability to a new holder
func (a *Authority) Add(trx storage.Transaction, c *Capability, actor *account.Account, newHolder *account.Account) (*Capability, *event.Capability, func(), error) {
	if err := a.Verify(c, actor); nil != err {
		return nil, nil, nil, err
	}
	if nil == newHolder {
		return nil, nil, nil, fault.MissingParameters
	}

	created, apply := a.issue(trx, newHolder)
	e := &event.Capability{
		CapType:   a.kind.String(),
		Action:    event.Created,
		CapId:     created.id.String(),
		Actor:     actor,
		Recipient: newHolder,
	}
	return created, e, apply, nil
}

// Remove - destroy the presented capability
//
// fails if it is the last live capability
func (a *Authority) Remove(trx storage.Transaction, c *Capability, actor *account.Account) (*event.Capability, func(), error) {
	if err := a.Verify(c, actor); nil != err {
		return nil, nil, err
	}

	a.RLock()
	n := len(a.live)
	a.RUnlock()

	if n <= 1 {
		return nil, nil, fault.LastCapability
	}

	trx.Delete(a.pool, c.id[:])

	apply := func() {
		a.Lock()
		delete(a.live, c.id)
		a.Unlock()
	}
	e := &event.Capability{
		CapType: a.kind.String(),
		Action:  event.Removed,
		CapId:   c.id.String(),
		Actor:   actor,
	}
	return e, apply, nil
}

// Transfer - give the presented capability to another account
//
// the old value stops verifying, the returned capability replaces it
func (a *Authority) Transfer(trx storage.Transaction, c *Capability, actor *account.Account, to *account.Account) (*Capability, *event.Capability, func(), error) {
	if err := a.Verify(c, actor); nil != err {
		return nil, nil, nil, err
	}
	if nil == to {
		return nil, nil, nil, fault.MissingParameters
	}

	moved := &Capability{
		id:       c.id,
		kind:     c.kind,
		instance: c.instance,
		holder:   to,
	}
	trx.Put(a.pool, moved.id[:], moved.pack())

	apply := func() {
		a.Lock()
		a.live[moved.id] = moved
		a.Unlock()
	}
	e := &event.Capability{
		CapType:   a.kind.String(),
		Action:    event.Transferred,
		CapId:     moved.id.String(),
		Actor:     actor,
		Recipient: to,
	}
	return moved, e, apply, nil
}

// Lookup - the live capability with an id
func (a *Authority) Lookup(id uuid.UUID) (*Capability, error) {
	a.RLock()
	defer a.RUnlock()

	c, ok := a.live[id]
	if !ok {
		return nil, fault.CapabilityNotFound
	}
	return c, nil
}

// Count - number of live capabilities
func (a *Authority) Count() int {
	a.RLock()
	defer a.RUnlock()

	return len(a.live)
}

// List - all live capabilities ordered by id
func (a *Authority) List() []*Capability {
	a.RLock()
	defer a.RUnlock()

	result := make([]*Capability, 0, len(a.live))
	for _, c := range a.live {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].id.String() < result[j].id.String()
	})
	return result
}

// HeldBy - live capabilities held by an account
func (a *Authority) HeldBy(holder *account.Account) []*Capability {
	result := make([]*Capability, 0, 1)
	for _, c := range a.List() {
		if c.holder.Equal(holder) {
			result = append(result, c)
		}
	}
	return result
}

func (a *Authority) issue(trx storage.Transaction, holder *account.Account) (*Capability, func()) {
	c := &Capability{
		id:       uuid.New(),
		kind:     a.kind,
		instance: a.instance,
		holder:   holder,
	}
	trx.Put(a.pool, c.id[:], c.pack())

	apply := func() {
		a.Lock()
		a.live[c.id] = c
		a.Unlock()
	}
	return c, apply
}
