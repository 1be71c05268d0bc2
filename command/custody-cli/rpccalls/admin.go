// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/google/uuid"

	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/rpc/admin"
)

// the administration calls are identical on both services, the
// service argument selects Catalog or Ledger

// Pause - stop state changing operations of a service
func (client *Client) Pause(service string, signer Signer, capabilityId uuid.UUID) (*admin.PauseReply, error) {
	return client.setPaused(service+".Pause", signer, capabilityId)
}

// Unpause - resume state changing operations of a service
func (client *Client) Unpause(service string, signer Signer, capabilityId uuid.UUID) (*admin.PauseReply, error) {
	return client.setPaused(service+".Unpause", signer, capabilityId)
}

func (client *Client) setPaused(method string, signer Signer, capabilityId uuid.UUID) (*admin.PauseReply, error) {

	pauseArgs := admin.CapabilityArguments{
		Capability: capabilityId,
	}

	a, err := signer.Authorise(method, pauseArgs)
	if nil != err {
		return nil, err
	}
	pauseArgs.Auth = a

	reply := &admin.PauseReply{}
	if err := client.call(method, pauseArgs, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// MultisigData - the weighted key policy of a service
type MultisigData struct {
	Capability uuid.UUID
	Signers    []*account.Account
	Weights    []int
	Threshold  uint16
}

// ConfigureMultisig - replace the policy guarding a service
func (client *Client) ConfigureMultisig(service string, signer Signer, data *MultisigData) (*admin.MultisigReply, error) {

	multisigArgs := admin.MultisigArguments{
		Capability: data.Capability,
		Signers:    data.Signers,
		Weights:    data.Weights,
		Threshold:  data.Threshold,
	}

	method := service + ".ConfigureMultisig"
	a, err := signer.Authorise(method, multisigArgs)
	if nil != err {
		return nil, err
	}
	multisigArgs.Auth = a

	reply := &admin.MultisigReply{}
	if err := client.call(method, multisigArgs, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// AddCapability - grant a new capability to a holder
func (client *Client) AddCapability(service string, signer Signer, capabilityId uuid.UUID, holder *account.Account) (*admin.CapabilityReply, error) {

	addArgs := admin.AddCapabilityArguments{
		Capability: capabilityId,
		Holder:     holder,
	}

	method := service + ".AddCapability"
	a, err := signer.Authorise(method, addArgs)
	if nil != err {
		return nil, err
	}
	addArgs.Auth = a

	reply := &admin.CapabilityReply{}
	if err := client.call(method, addArgs, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// RemoveCapability - revoke the signer's own capability
func (client *Client) RemoveCapability(service string, signer Signer, capabilityId uuid.UUID) (*admin.RemoveReply, error) {

	removeArgs := admin.CapabilityArguments{
		Capability: capabilityId,
	}

	method := service + ".RemoveCapability"
	a, err := signer.Authorise(method, removeArgs)
	if nil != err {
		return nil, err
	}
	removeArgs.Auth = a

	reply := &admin.RemoveReply{}
	if err := client.call(method, removeArgs, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// TransferCapability - hand a capability to another holder
func (client *Client) TransferCapability(service string, signer Signer, capabilityId uuid.UUID, to *account.Account) (*admin.CapabilityReply, error) {

	transferArgs := admin.TransferCapabilityArguments{
		Capability: capabilityId,
		To:         to,
	}

	method := service + ".TransferCapability"
	a, err := signer.Authorise(method, transferArgs)
	if nil != err {
		return nil, err
	}
	transferArgs.Auth = a

	reply := &admin.CapabilityReply{}
	if err := client.call(method, transferArgs, reply); nil != err {
		return nil, err
	}
	return reply, nil
}
