// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog

import (
	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/capability"
	"github.com/bitmark-inc/custodyd/event"
	"github.com/bitmark-inc/custodyd/multisig"
)

// Pause - suspend mint and update
func (cat *Catalog) Pause(principal *account.Account, c *capability.Capability) error {
	return cat.setPaused(principal, c, true)
}

// Unpause - resume mint and update
func (cat *Catalog) Unpause(principal *account.Account, c *capability.Capability) error {
	return cat.setPaused(principal, c, false)
}

func (cat *Catalog) setPaused(principal *account.Account, c *capability.Capability, paused bool) error {
	trx := cat.db.Begin()
	defer trx.End()

	if err := cat.authorise(principal, c); nil != err {
		return err
	}

	s := cat.currentState()
	s.paused = paused
	s.put(trx, cat.db.State)

	batch := cat.journal.Begin(trx)
	err := batch.Add(event.PauseStateChanged{
		Subsystem: subsystem,
		IsPaused:  paused,
		Actor:     principal,
	})
	if nil != err {
		return err
	}

	apply := func() {
		cat.Lock()
		cat.paused = paused
		cat.Unlock()
	}
	if err := cat.commit(trx, batch, apply); nil != err {
		return err
	}

	cat.log.Infof("paused: %t  by: %s", paused, principal)
	return nil
}

// ConfigureMultisig - set or replace the signing policy
//
// the first policy may be set by any capability holder, after that
// only the address of the current policy may replace it
func (cat *Catalog) ConfigureMultisig(principal *account.Account, c *capability.Capability, keys [][]byte, weights []uint8, threshold uint16) (*account.Account, error) {
	trx := cat.db.Begin()
	defer trx.End()

	if err := cat.authority.Verify(c, principal); nil != err {
		return nil, err
	}
	policy, err := multisig.NewPolicy(keys, weights, threshold)
	if nil != err {
		return nil, err
	}
	applyPolicy, err := cat.gate.Configure(principal, policy)
	if nil != err {
		return nil, err
	}

	s := cat.currentState()
	s.policy = policy
	s.put(trx, cat.db.State)

	address := policy.Address()
	batch := cat.journal.Begin(trx)
	err = batch.Add(event.MultisigConfigured{
		Subsystem: subsystem,
		Address:   address,
		Keys:      len(policy.PublicKeys),
		Threshold: policy.Threshold,
		Actor:     principal,
	})
	if nil != err {
		return nil, err
	}

	if err := cat.commit(trx, batch, applyPolicy); nil != err {
		return nil, err
	}

	cat.log.Infof("multisig: address: %s  keys: %d  threshold: %d", address, len(policy.PublicKeys), policy.Threshold)
	return address, nil
}

// AddCapability - issue a new catalog capability
//
// capability management needs only the capability, the gate does not
// apply so that a capability can be moved to a multisig address
func (cat *Catalog) AddCapability(principal *account.Account, c *capability.Capability, holder *account.Account) (*capability.Capability, error) {
	trx := cat.db.Begin()
	defer trx.End()

	created, e, apply, err := cat.authority.Add(trx, c, principal, holder)
	if nil != err {
		return nil, err
	}

	batch := cat.journal.Begin(trx)
	if err := batch.Add(e); nil != err {
		return nil, err
	}
	if err := cat.commit(trx, batch, apply); nil != err {
		return nil, err
	}

	cat.log.Infof("capability: %s  added for: %s", created.Id(), holder)
	return created, nil
}

// RemoveCapability - destroy the presented capability
func (cat *Catalog) RemoveCapability(principal *account.Account, c *capability.Capability) error {
	trx := cat.db.Begin()
	defer trx.End()

	e, apply, err := cat.authority.Remove(trx, c, principal)
	if nil != err {
		return err
	}

	batch := cat.journal.Begin(trx)
	if err := batch.Add(e); nil != err {
		return err
	}
	if err := cat.commit(trx, batch, apply); nil != err {
		return err
	}

	cat.log.Infof("capability: %s  removed", c.Id())
	return nil
}

// TransferCapability - give the presented capability to another account
func (cat *Catalog) TransferCapability(principal *account.Account, c *capability.Capability, to *account.Account) (*capability.Capability, error) {
	trx := cat.db.Begin()
	defer trx.End()

	moved, e, apply, err := cat.authority.Transfer(trx, c, principal, to)
	if nil != err {
		return nil, err
	}

	batch := cat.journal.Begin(trx)
	if err := batch.Add(e); nil != err {
		return nil, err
	}
	if err := cat.commit(trx, batch, apply); nil != err {
		return nil, err
	}

	cat.log.Infof("capability: %s  transferred to: %s", moved.Id(), to)
	return moved, nil
}
