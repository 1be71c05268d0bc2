// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multisig

import (
	"sync"

	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/fault"
)

// Gate - the policy in force for one subsystem, if any
type Gate struct {
	sync.RWMutex
	policy  *Policy
	address *account.Account
}

// NewGate - a gate with an existing policy, or unconfigured if nil
func NewGate(policy *Policy) *Gate {
	g := &Gate{}
	if nil != policy {
		g.policy = policy
		g.address = policy.Address()
	}
	return g
}

// Configure - validate a replacement policy
//
// once a policy is set only its own address may replace it; the
// returned function installs the policy and must be called after the
// change is persisted
func (g *Gate) Configure(principal *account.Account, policy *Policy) (func(), error) {
	if nil == policy {
		return nil, fault.MissingParameters
	}
	if err := policy.Validate(); nil != err {
		return nil, err
	}

	g.RLock()
	current := g.address
	g.RUnlock()

	if nil != current && !current.Equal(principal) {
		return nil, fault.Unauthorised
	}

	address := policy.Address()
	apply := func() {
		g.Lock()
		g.policy = policy
		g.address = address
		g.Unlock()
	}
	return apply, nil
}

// Require - the principal must be the address of the current policy
func (g *Gate) Require(principal *account.Account) error {
	g.RLock()
	defer g.RUnlock()

	if nil == g.address {
		return fault.NotConfigured
	}
	if !g.address.Equal(principal) {
		return fault.NotAuthorisedSigner
	}
	return nil
}

// IsConfigured - true once a policy has been set
func (g *Gate) IsConfigured() bool {
	g.RLock()
	defer g.RUnlock()

	return nil != g.policy
}

// Address - the derived address of the current policy
func (g *Gate) Address() (*account.Account, error) {
	g.RLock()
	defer g.RUnlock()

	if nil == g.address {
		return nil, fault.NotConfigured
	}
	return g.address, nil
}

// Policy - the current policy, nil if unconfigured
func (g *Gate) Policy() *Policy {
	g.RLock()
	defer g.RUnlock()

	return g.policy
}
