// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package admin - capability and multisig administration calls shared
// by the Catalog and Ledger services
package admin

import (
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/capability"
	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/rpc/auth"
	"github.com/bitmark-inc/custodyd/rpc/ratelimit"
)

const (
	rateLimitAdmin = 20
	rateBurstAdmin = 10
)

// Subsystem - the administration operations of a catalog or ledger
type Subsystem interface {
	Pause(principal *account.Account, c *capability.Capability) error
	Unpause(principal *account.Account, c *capability.Capability) error
	ConfigureMultisig(principal *account.Account, c *capability.Capability, keys [][]byte, weights []uint8, threshold uint16) (*account.Account, error)
	AddCapability(principal *account.Account, c *capability.Capability, holder *account.Account) (*capability.Capability, error)
	RemoveCapability(principal *account.Account, c *capability.Capability) error
	TransferCapability(principal *account.Account, c *capability.Capability, to *account.Account) (*capability.Capability, error)
	Capability(id uuid.UUID) (*capability.Capability, error)
}

// Admin - embedded in a service to provide its administration calls
type Admin struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Verifier  *auth.Verifier
	Service   string
	Subsystem Subsystem
}

// New - administration calls for the named service
func New(log *logger.L, service string, subsystem Subsystem, verifier *auth.Verifier) *Admin {
	return &Admin{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitAdmin, rateBurstAdmin),
		Verifier:  verifier,
		Service:   service,
		Subsystem: subsystem,
	}
}

// Authorise - rate limit then verify the authorisation of a call
//
// method is the name within the service, e.g. "Pause"
func (a *Admin) Authorise(method string, arguments interface{}, authorisation *auth.Authorisation) (*account.Account, error) {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return nil, err
	}
	principal, err := a.Verifier.Verify(a.Service+"."+method, arguments, authorisation)
	if nil != err {
		a.Log.Warnf("%s.%s: rejected authorisation: %s", a.Service, method, err)
		return nil, err
	}
	return principal, nil
}

// Lookup - the live capability for an id
func (a *Admin) Lookup(id uuid.UUID) (*capability.Capability, error) {
	c, err := a.Subsystem.Capability(id)
	if nil != err {
		return nil, fault.InvalidCapability
	}
	return c, nil
}

// ---

// CapabilityArguments - arguments naming only a capability
type CapabilityArguments struct {
	Capability uuid.UUID           `json:"capability"`
	Auth       *auth.Authorisation `json:"auth,omitempty"`
}

// PauseReply - pause state after the call
type PauseReply struct {
	Paused bool `json:"paused"`
}

// Pause - stop the subsystem's restricted operations
func (a *Admin) Pause(arguments *CapabilityArguments, reply *PauseReply) error {
	return a.setPaused("Pause", arguments, reply, true)
}

// Unpause - resume the subsystem's restricted operations
func (a *Admin) Unpause(arguments *CapabilityArguments, reply *PauseReply) error {
	return a.setPaused("Unpause", arguments, reply, false)
}

func (a *Admin) setPaused(method string, arguments *CapabilityArguments, reply *PauseReply, paused bool) error {
	principal, err := a.Authorise(method, arguments, arguments.Auth)
	if nil != err {
		return err
	}
	c, err := a.Lookup(arguments.Capability)
	if nil != err {
		return err
	}

	if paused {
		err = a.Subsystem.Pause(principal, c)
	} else {
		err = a.Subsystem.Unpause(principal, c)
	}
	if nil != err {
		return err
	}

	reply.Paused = paused
	return nil
}

// ---

// MultisigArguments - the signer policy to install
type MultisigArguments struct {
	Capability uuid.UUID           `json:"capability"`
	Signers    []*account.Account  `json:"signers"`
	Weights    []int               `json:"weights"`
	Threshold  uint16              `json:"threshold"`
	Auth       *auth.Authorisation `json:"auth,omitempty"`
}

// MultisigReply - the address derived from the policy
type MultisigReply struct {
	Address *account.Account `json:"address"`
}

// ConfigureMultisig - install or replace the signer policy
func (a *Admin) ConfigureMultisig(arguments *MultisigArguments, reply *MultisigReply) error {
	principal, err := a.Authorise("ConfigureMultisig", arguments, arguments.Auth)
	if nil != err {
		return err
	}
	c, err := a.Lookup(arguments.Capability)
	if nil != err {
		return err
	}

	keys, weights, err := a.policyInputs(arguments.Signers, arguments.Weights)
	if nil != err {
		return err
	}

	address, err := a.Subsystem.ConfigureMultisig(principal, c, keys, weights, arguments.Threshold)
	if nil != err {
		return err
	}

	a.Log.Infof("%s.ConfigureMultisig: address: %s", a.Service, address)
	reply.Address = address
	return nil
}

// convert signer accounts and integer weights to policy form
func (a *Admin) policyInputs(signers []*account.Account, weights []int) ([][]byte, []uint8, error) {
	if err := a.Verifier.CheckNetwork(signers...); nil != err {
		return nil, nil, err
	}

	keys := make([][]byte, len(signers))
	for i, s := range signers {
		if s.IsMultisig() {
			return nil, nil, fault.InvalidKeyType
		}
		keys[i] = s.PublicKeyBytes()
	}

	w := make([]uint8, len(weights))
	for i, weight := range weights {
		switch {
		case weight < 0:
			return nil, nil, fault.ZeroWeight
		case weight > 0xff:
			return nil, nil, fault.WeightTooLarge
		}
		w[i] = uint8(weight)
	}
	return keys, w, nil
}

// ---

// AddCapabilityArguments - issue a capability to a new holder
type AddCapabilityArguments struct {
	Capability uuid.UUID           `json:"capability"`
	Holder     *account.Account    `json:"holder"`
	Auth       *auth.Authorisation `json:"auth,omitempty"`
}

// CapabilityReply - the capability created by the call
type CapabilityReply struct {
	Capability *capability.Capability `json:"capability"`
}

// AddCapability - issue another capability of the same kind
func (a *Admin) AddCapability(arguments *AddCapabilityArguments, reply *CapabilityReply) error {
	principal, err := a.Authorise("AddCapability", arguments, arguments.Auth)
	if nil != err {
		return err
	}
	if err := a.Verifier.CheckNetwork(arguments.Holder); nil != err {
		return err
	}
	c, err := a.Lookup(arguments.Capability)
	if nil != err {
		return err
	}

	issued, err := a.Subsystem.AddCapability(principal, c, arguments.Holder)
	if nil != err {
		return err
	}

	reply.Capability = issued
	return nil
}

// RemoveReply - the capability that was destroyed
type RemoveReply struct {
	Removed uuid.UUID `json:"removed"`
}

// RemoveCapability - destroy a capability held by the caller
func (a *Admin) RemoveCapability(arguments *CapabilityArguments, reply *RemoveReply) error {
	principal, err := a.Authorise("RemoveCapability", arguments, arguments.Auth)
	if nil != err {
		return err
	}
	c, err := a.Lookup(arguments.Capability)
	if nil != err {
		return err
	}

	if err := a.Subsystem.RemoveCapability(principal, c); nil != err {
		return err
	}

	reply.Removed = arguments.Capability
	return nil
}

// TransferCapabilityArguments - move a capability to another holder
type TransferCapabilityArguments struct {
	Capability uuid.UUID           `json:"capability"`
	To         *account.Account    `json:"to"`
	Auth       *auth.Authorisation `json:"auth,omitempty"`
}

// TransferCapability - hand a capability to another account
func (a *Admin) TransferCapability(arguments *TransferCapabilityArguments, reply *CapabilityReply) error {
	principal, err := a.Authorise("TransferCapability", arguments, arguments.Auth)
	if nil != err {
		return err
	}
	if err := a.Verifier.CheckNetwork(arguments.To); nil != err {
		return err
	}
	c, err := a.Lookup(arguments.Capability)
	if nil != err {
		return err
	}

	moved, err := a.Subsystem.TransferCapability(principal, c, arguments.To)
	if nil != err {
		return err
	}

	reply.Capability = moved
	return nil
}
