// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/command/custody-cli/rpccalls"
	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/multisig"
)

// common inputs of the administration commands
type administration struct {
	m          *metadata
	service    string
	holder     string
	capability uuid.UUID
	signer     rpccalls.Signer
	client     *rpccalls.Client
}

func setupAdministration(c *cli.Context) (*administration, error) {

	m := c.App.Metadata["config"].(*metadata)

	service, err := checkService(c.String("service"))
	if nil != err {
		return nil, err
	}

	holder := holderName(c, m.config)
	capabilityId, err := checkCapability(c.String("capability"), holder, service, m.config)
	if nil != err {
		return nil, err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "service: %s\n", service)
		fmt.Fprintf(m.e, "holder: %s\n", holder)
		fmt.Fprintf(m.e, "capability: %s\n", capabilityId)
	}

	signer, err := checkSigner(c, m)
	if nil != err {
		return nil, err
	}

	client, err := connect(c, m)
	if nil != err {
		return nil, err
	}

	return &administration{
		m:          m,
		service:    service,
		holder:     holder,
		capability: capabilityId,
		signer:     signer,
		client:     client,
	}, nil
}

func runPause(c *cli.Context) error {
	a, err := setupAdministration(c)
	if nil != err {
		return err
	}
	defer a.client.Close()

	response, err := a.client.Pause(a.service, a.signer, a.capability)
	if nil != err {
		return err
	}
	return printJson(a.m.w, response)
}

func runUnpause(c *cli.Context) error {
	a, err := setupAdministration(c)
	if nil != err {
		return err
	}
	defer a.client.Close()

	response, err := a.client.Unpause(a.service, a.signer, a.capability)
	if nil != err {
		return err
	}
	return printJson(a.m.w, response)
}

func runMultisig(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	signers, weights, err := checkSigners(c.StringSlice("signer"), m.config)
	if nil != err {
		return err
	}

	threshold := c.Uint("threshold")
	if 0 == threshold || threshold > 0xffff {
		return ErrRequiredThreshold
	}

	// build locally first so a bad policy is not sent
	name := c.String("name")
	var policy *multisig.Policy
	if "" != name {
		policy, err = localPolicy(signers, weights, uint16(threshold))
		if nil != err {
			return err
		}
	}

	a, err := setupAdministration(c)
	if nil != err {
		return err
	}
	defer a.client.Close()

	response, err := a.client.ConfigureMultisig(a.service, a.signer, &rpccalls.MultisigData{
		Capability: a.capability,
		Signers:    signers,
		Weights:    weights,
		Threshold:  uint16(threshold),
	})
	if nil != err {
		return err
	}

	if nil != policy {
		if !policy.Address().Equal(response.Address) {
			return fmt.Errorf("policy address mismatch: local: %s  remote: %s", policy.Address(), response.Address)
		}
		description := fmt.Sprintf("%s multisig policy", a.service)
		if err := m.config.AddPolicy(name, description, policy); nil != err {
			return err
		}
		m.save = true
	}

	return printJson(m.w, response)
}

func localPolicy(signers []*account.Account, weights []int, threshold uint16) (*multisig.Policy, error) {
	keys := make([][]byte, 0, len(signers))
	w := make([]uint8, 0, len(weights))
	for i, signer := range signers {
		if signer.IsMultisig() {
			return nil, fault.InvalidKeyType
		}
		if weights[i] <= 0 || weights[i] > 0xff {
			return nil, fault.WeightTooLarge
		}
		keys = append(keys, signer.PublicKeyBytes())
		w = append(w, uint8(weights[i]))
	}
	return multisig.NewPolicy(keys, w, threshold)
}

func runCapabilityAdd(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	holder, err := checkAccount(c.String("holder"), m.config)
	if nil != err {
		return err
	}

	a, err := setupAdministration(c)
	if nil != err {
		return err
	}
	defer a.client.Close()

	response, err := a.client.AddCapability(a.service, a.signer, a.capability, holder)
	if nil != err {
		return err
	}

	// remember the new capability when it was granted to a local name
	for name := range m.config.Identities {
		if acc, err := m.config.Account(name); nil == err && acc.Equal(holder) {
			m.config.SetCapability(name, a.service, response.Capability.Id().String())
			m.save = true
		}
	}

	return printJson(m.w, response)
}

func runCapabilityRemove(c *cli.Context) error {
	a, err := setupAdministration(c)
	if nil != err {
		return err
	}
	defer a.client.Close()

	response, err := a.client.RemoveCapability(a.service, a.signer, a.capability)
	if nil != err {
		return err
	}

	a.forget()
	return printJson(a.m.w, response)
}

func runCapabilityTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	to, err := checkAccount(c.String("to"), m.config)
	if nil != err {
		return err
	}

	a, err := setupAdministration(c)
	if nil != err {
		return err
	}
	defer a.client.Close()

	response, err := a.client.TransferCapability(a.service, a.signer, a.capability, to)
	if nil != err {
		return err
	}

	a.forget()
	return printJson(m.w, response)
}

// drop the remembered capability once it is no longer held
func (a *administration) forget() {
	if id, ok := a.m.config.Capability(a.holder, a.service); ok && id == a.capability.String() {
		a.m.config.SetCapability(a.holder, a.service, "")
		a.m.save = true
	}
}

func runCapabilitySave(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	service, err := checkService(c.String("service"))
	if nil != err {
		return err
	}

	id := c.String("capability")
	if _, err := uuid.Parse(id); nil != err {
		return ErrRequiredCapability
	}

	holder := holderName(c, m.config)
	if _, err := m.config.Identity(holder); nil != err {
		return err
	}

	m.config.SetCapability(holder, service, id)
	m.save = true
	return nil
}
