// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/capability"
	"github.com/bitmark-inc/custodyd/event"
	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/multisig"
)

// Pause - suspend stake, unstake and admin stake
func (l *Ledger) Pause(principal *account.Account, c *capability.Capability) error {
	return l.setPaused(principal, c, true)
}

// Unpause - resume staking
func (l *Ledger) Unpause(principal *account.Account, c *capability.Capability) error {
	return l.setPaused(principal, c, false)
}

func (l *Ledger) setPaused(principal *account.Account, c *capability.Capability, paused bool) error {
	trx := l.db.Begin()
	defer trx.End()

	if err := l.authorise(principal, c); nil != err {
		return err
	}

	s := l.currentState()
	s.paused = paused
	s.put(trx, l.db.State)

	batch := l.journal.Begin(trx)
	err := batch.Add(event.PauseStateChanged{
		Subsystem: subsystem,
		IsPaused:  paused,
		Actor:     principal,
	})
	if nil != err {
		return err
	}

	apply := func() {
		l.Lock()
		l.paused = paused
		l.Unlock()
	}
	if err := l.commit(trx, batch, apply); nil != err {
		return err
	}

	l.log.Infof("paused: %t  by: %s", paused, principal)
	return nil
}

// SetMaximumPerHolder - change the limit for future stakes
//
// existing stakes above the new limit are kept
func (l *Ledger) SetMaximumPerHolder(principal *account.Account, c *capability.Capability, maximum uint64) error {
	trx := l.db.Begin()
	defer trx.End()

	if err := l.authorise(principal, c); nil != err {
		return err
	}
	if 0 == maximum {
		return fault.InvalidMaximum
	}

	s := l.currentState()
	old := s.maximumPerHolder
	s.maximumPerHolder = maximum
	s.put(trx, l.db.State)

	batch := l.journal.Begin(trx)
	err := batch.Add(event.MaximumChanged{
		Old:   old,
		New:   maximum,
		Actor: principal,
	})
	if nil != err {
		return err
	}

	apply := func() {
		l.Lock()
		l.maximumPerHolder = maximum
		l.Unlock()
	}
	if err := l.commit(trx, batch, apply); nil != err {
		return err
	}

	l.log.Infof("maximum per holder: %d → %d", old, maximum)
	return nil
}

// ConfigureMultisig - set or replace the signing policy
//
// the first policy may be set by any capability holder, after that
// only the address of the current policy may replace it
func (l *Ledger) ConfigureMultisig(principal *account.Account, c *capability.Capability, keys [][]byte, weights []uint8, threshold uint16) (*account.Account, error) {
	trx := l.db.Begin()
	defer trx.End()

	if err := l.authority.Verify(c, principal); nil != err {
		return nil, err
	}
	policy, err := multisig.NewPolicy(keys, weights, threshold)
	if nil != err {
		return nil, err
	}
	applyPolicy, err := l.gate.Configure(principal, policy)
	if nil != err {
		return nil, err
	}

	s := l.currentState()
	s.policy = policy
	s.put(trx, l.db.State)

	address := policy.Address()
	batch := l.journal.Begin(trx)
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

	if err := l.commit(trx, batch, applyPolicy); nil != err {
		return nil, err
	}

	l.log.Infof("multisig: address: %s  keys: %d  threshold: %d", address, len(policy.PublicKeys), policy.Threshold)
	return address, nil
}

// AddCapability - issue a new capability bound to this ledger
//
// only the capability is needed, the gate does not apply
func (l *Ledger) AddCapability(principal *account.Account, c *capability.Capability, holder *account.Account) (*capability.Capability, error) {
	trx := l.db.Begin()
	defer trx.End()

	created, e, apply, err := l.authority.Add(trx, c, principal, holder)
	if nil != err {
		return nil, err
	}

	batch := l.journal.Begin(trx)
	if err := batch.Add(e); nil != err {
		return nil, err
	}
	if err := l.commit(trx, batch, apply); nil != err {
		return nil, err
	}

	l.log.Infof("capability: %s  added for: %s", created.Id(), holder)
	return created, nil
}

// RemoveCapability - destroy the presented capability
func (l *Ledger) RemoveCapability(principal *account.Account, c *capability.Capability) error {
	trx := l.db.Begin()
	defer trx.End()

	e, apply, err := l.authority.Remove(trx, c, principal)
	if nil != err {
		return err
	}

	batch := l.journal.Begin(trx)
	if err := batch.Add(e); nil != err {
		return err
	}
	if err := l.commit(trx, batch, apply); nil != err {
		return err
	}

	l.log.Infof("capability: %s  removed", c.Id())
	return nil
}

// TransferCapability - give the presented capability to another account
func (l *Ledger) TransferCapability(principal *account.Account, c *capability.Capability, to *account.Account) (*capability.Capability, error) {
	trx := l.db.Begin()
	defer trx.End()

	moved, e, apply, err := l.authority.Transfer(trx, c, principal, to)
	if nil != err {
		return nil, err
	}

	batch := l.journal.Begin(trx)
	if err := batch.Add(e); nil != err {
		return nil, err
	}
	if err := l.commit(trx, batch, apply); nil != err {
		return nil, err
	}

	l.log.Infof("capability: %s  transferred to: %s", moved.Id(), to)
	return moved, nil
}
