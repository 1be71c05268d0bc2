// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package admin_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/capability"
	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/rpc/admin"
	"github.com/bitmark-inc/custodyd/rpc/fixtures"
	"github.com/bitmark-inc/custodyd/rpc/mocks"
)

func setup(t *testing.T) (*gomock.Controller, *mocks.MockLedger, *admin.Admin) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockLedger(ctl)
	return ctl, m, admin.New(logger.New(fixtures.LogCategory), "Ledger", m, fixtures.Verifier())
}

func TestConfigureMultisig(t *testing.T) {
	ctl, m, a := setup(t)
	defer ctl.Finish()

	key := fixtures.Key()
	signers := []*account.PrivateKey{fixtures.Key(), fixtures.Key()}
	c := &capability.Capability{}
	id := uuid.New()
	address := fixtures.Key().Account()

	arguments := admin.MultisigArguments{
		Capability: id,
		Signers:    []*account.Account{signers[0].Account(), signers[1].Account()},
		Weights:    []int{1, 200},
		Threshold:  201,
	}
	arguments.Auth = fixtures.Sign("Ledger.ConfigureMultisig", arguments, key)

	m.EXPECT().Capability(id).Return(c, nil).Times(1)
	m.EXPECT().ConfigureMultisig(
		fixtures.Account(key.Account()),
		c,
		[][]byte{signers[0].PublicKeyBytes(), signers[1].PublicKeyBytes()},
		[]uint8{1, 200},
		uint16(201),
	).Return(address, nil).Times(1)

	var reply admin.MultisigReply
	err := a.ConfigureMultisig(&arguments, &reply)
	assert.Nil(t, err, "wrong ConfigureMultisig")
	assert.True(t, address.Equal(reply.Address), "wrong address")
}

func TestConfigureMultisigWeights(t *testing.T) {
	ctl, m, a := setup(t)
	defer ctl.Finish()

	key := fixtures.Key()
	id := uuid.New()
	m.EXPECT().Capability(id).Return(&capability.Capability{}, nil).Times(2)

	arguments := admin.MultisigArguments{
		Capability: id,
		Signers:    []*account.Account{fixtures.Key().Account()},
		Weights:    []int{256},
		Threshold:  1,
	}
	arguments.Auth = fixtures.Sign("Ledger.ConfigureMultisig", arguments, key)

	var reply admin.MultisigReply
	err := a.ConfigureMultisig(&arguments, &reply)
	assert.Equal(t, fault.WeightTooLarge, err, "wrong large weight")

	live, _ := account.NewPrivateKey(false)
	arguments.Weights = []int{1}
	arguments.Signers = []*account.Account{live.Account()}
	arguments.Auth = fixtures.Sign("Ledger.ConfigureMultisig", arguments, key)

	err = a.ConfigureMultisig(&arguments, &reply)
	assert.Equal(t, fault.WrongNetworkForAccount, err, "wrong signer network")
}

func TestCapabilityManagement(t *testing.T) {
	ctl, m, a := setup(t)
	defer ctl.Finish()

	key := fixtures.Key()
	holder := fixtures.Key().Account()
	c := &capability.Capability{}
	issued := &capability.Capability{}
	id := uuid.New()

	m.EXPECT().Capability(id).Return(c, nil).Times(3)
	m.EXPECT().AddCapability(fixtures.Account(key.Account()), c, holder).Return(issued, nil).Times(1)
	m.EXPECT().TransferCapability(fixtures.Account(key.Account()), c, holder).Return(issued, nil).Times(1)
	m.EXPECT().RemoveCapability(fixtures.Account(key.Account()), c).Return(fault.LastCapability).Times(1)

	add := admin.AddCapabilityArguments{Capability: id, Holder: holder}
	add.Auth = fixtures.Sign("Ledger.AddCapability", add, key)

	var reply admin.CapabilityReply
	err := a.AddCapability(&add, &reply)
	assert.Nil(t, err, "wrong AddCapability")
	assert.Equal(t, issued, reply.Capability, "wrong issued capability")

	transfer := admin.TransferCapabilityArguments{Capability: id, To: holder}
	transfer.Auth = fixtures.Sign("Ledger.TransferCapability", transfer, key)

	err = a.TransferCapability(&transfer, &reply)
	assert.Nil(t, err, "wrong TransferCapability")

	remove := admin.CapabilityArguments{Capability: id}
	remove.Auth = fixtures.Sign("Ledger.RemoveCapability", remove, key)

	var removed admin.RemoveReply
	err = a.RemoveCapability(&remove, &removed)
	assert.Equal(t, fault.LastCapability, err, "wrong last capability")
	assert.Equal(t, uuid.Nil, removed.Removed, "wrong removed id")
}

func TestWrongServiceName(t *testing.T) {
	ctl, _, a := setup(t)
	defer ctl.Finish()

	key := fixtures.Key()
	arguments := admin.CapabilityArguments{Capability: uuid.New()}
	arguments.Auth = fixtures.Sign("Catalog.Pause", arguments, key)

	var reply admin.PauseReply
	err := a.Pause(&arguments, &reply)
	assert.Equal(t, fault.InvalidSignature, err, "catalog authorisation accepted by ledger")
}
