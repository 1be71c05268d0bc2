// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package staking_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/asset"
	"github.com/bitmark-inc/custodyd/capability"
	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/ledger"
	"github.com/bitmark-inc/custodyd/rpc/fixtures"
	"github.com/bitmark-inc/custodyd/rpc/mocks"
	"github.com/bitmark-inc/custodyd/rpc/staking"
)

func setup(t *testing.T) (*gomock.Controller, *mocks.MockLedger, *staking.Ledger) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockLedger(ctl)
	return ctl, m, staking.New(logger.New(fixtures.LogCategory), m, fixtures.Verifier())
}

func TestStake(t *testing.T) {
	ctl, m, l := setup(t)
	defer ctl.Finish()

	key := fixtures.Key()
	ids := []asset.Identifier{asset.NewIdentifier(), asset.NewIdentifier()}
	records := []ledger.Record{
		{AssetId: ids[0], TokenId: 1, Holder: key.Account(), Timestamp: 10},
		{AssetId: ids[1], TokenId: 2, Holder: key.Account(), Timestamp: 10},
	}

	m.EXPECT().Stake(fixtures.Account(key.Account()), ids).Return(records, nil).Times(1)

	arguments := staking.StakeArguments{AssetIds: ids}
	arguments.Auth = fixtures.Sign("Ledger.Stake", arguments, key)

	var reply staking.StakesReply
	err := l.Stake(&arguments, &reply)
	assert.Nil(t, err, "wrong Stake")
	assert.Equal(t, records, reply.Stakes, "wrong records")
}

func TestStakeBatchLimits(t *testing.T) {
	ctl, _, l := setup(t)
	defer ctl.Finish()

	key := fixtures.Key()
	var reply staking.StakesReply

	empty := staking.StakeArguments{}
	empty.Auth = fixtures.Sign("Ledger.Stake", empty, key)
	assert.Equal(t, fault.InvalidCount, l.Stake(&empty, &reply), "wrong empty batch")

	large := staking.StakeArguments{AssetIds: make([]asset.Identifier, 101)}
	large.Auth = fixtures.Sign("Ledger.Stake", large, key)
	assert.Equal(t, fault.InvalidCount, l.Stake(&large, &reply), "wrong large batch")
}

func TestUnstakeByAnotherAccount(t *testing.T) {
	ctl, m, l := setup(t)
	defer ctl.Finish()

	staker := fixtures.Key()
	other := fixtures.Key()
	ids := []asset.Identifier{asset.NewIdentifier()}

	m.EXPECT().Unstake(fixtures.Account(other.Account()), ids).Return(nil, fault.NotOriginalStaker).Times(1)

	arguments := staking.StakeArguments{AssetIds: ids}
	arguments.Auth = fixtures.Sign("Ledger.Unstake", arguments, other)

	var reply staking.StakesReply
	err := l.Unstake(&arguments, &reply)
	assert.Equal(t, fault.NotOriginalStaker, err, "wrong caller accepted")

	// a stake authorisation is not an unstake authorisation
	arguments.Auth = fixtures.Sign("Ledger.Stake", arguments, staker)
	err = l.Unstake(&arguments, &reply)
	assert.Equal(t, fault.InvalidSignature, err, "wrong method accepted")
}

func TestAdminStake(t *testing.T) {
	ctl, m, l := setup(t)
	defer ctl.Finish()

	key := fixtures.Key()
	c := &capability.Capability{}
	id := uuid.New()
	ids := []asset.Identifier{asset.NewIdentifier()}
	destinations := []*account.Account{fixtures.Key().Account()}
	timestamps := []uint64{1500000000000}
	records := []ledger.Record{{AssetId: ids[0], Holder: destinations[0], Timestamp: timestamps[0]}}

	m.EXPECT().Capability(id).Return(c, nil).Times(1)
	m.EXPECT().AdminStake(fixtures.Account(key.Account()), c, ids, destinations, timestamps).Return(records, nil).Times(1)

	arguments := staking.AdminStakeArguments{
		Capability:   id,
		AssetIds:     ids,
		Destinations: destinations,
		Timestamps:   timestamps,
	}
	arguments.Auth = fixtures.Sign("Ledger.AdminStake", arguments, key)

	var reply staking.StakesReply
	err := l.AdminStake(&arguments, &reply)
	assert.Nil(t, err, "wrong AdminStake")
	assert.Equal(t, records, reply.Stakes, "wrong records")
}

func TestSetMaximum(t *testing.T) {
	ctl, m, l := setup(t)
	defer ctl.Finish()

	key := fixtures.Key()
	c := &capability.Capability{}
	id := uuid.New()

	m.EXPECT().Capability(id).Return(c, nil).Times(2)
	m.EXPECT().SetMaximumPerHolder(fixtures.Account(key.Account()), c, uint64(30)).Return(nil).Times(1)
	m.EXPECT().SetMaximumPerHolder(fixtures.Account(key.Account()), c, uint64(0)).Return(fault.InvalidMaximum).Times(1)

	arguments := staking.SetMaximumArguments{Capability: id, Maximum: 30}
	arguments.Auth = fixtures.Sign("Ledger.SetMaximum", arguments, key)

	var reply staking.SetMaximumReply
	err := l.SetMaximum(&arguments, &reply)
	assert.Nil(t, err, "wrong SetMaximum")
	assert.Equal(t, uint64(30), reply.Maximum, "wrong maximum")

	arguments.Maximum = 0
	arguments.Auth = fixtures.Sign("Ledger.SetMaximum", arguments, key)
	err = l.SetMaximum(&arguments, &reply)
	assert.Equal(t, fault.InvalidMaximum, err, "wrong zero maximum")
}

func TestQueries(t *testing.T) {
	ctl, m, l := setup(t)
	defer ctl.Finish()

	holder := fixtures.Key().Account()
	assetId := asset.NewIdentifier()
	records := []ledger.Record{{AssetId: assetId, Holder: holder, Timestamp: 5}}

	m.EXPECT().StakeCount(fixtures.Account(holder)).Return(1).Times(1)
	m.EXPECT().HolderStakes(fixtures.Account(holder)).Return(records).Times(1)
	m.EXPECT().StakeInfo(assetId).Return(holder, uint64(5), nil).Times(1)
	m.EXPECT().Stakes(uint64(1), 10).Return(records, uint64(2), nil).Times(1)

	var count staking.CountReply
	err := l.Count(&staking.HolderArguments{Holder: holder}, &count)
	assert.Nil(t, err, "wrong Count")
	assert.Equal(t, 1, count.Count, "wrong count")

	var stakes staking.StakesReply
	err = l.Holder(&staking.HolderArguments{Holder: holder}, &stakes)
	assert.Nil(t, err, "wrong Holder")
	assert.Equal(t, records, stakes.Stakes, "wrong holder stakes")

	var info staking.StakeInfoReply
	err = l.StakeInfo(&staking.StakeInfoArguments{AssetId: assetId}, &info)
	assert.Nil(t, err, "wrong StakeInfo")
	assert.True(t, holder.Equal(info.Holder), "wrong holder")
	assert.Equal(t, uint64(5), info.Timestamp, "wrong timestamp")

	var page staking.ListReply
	err = l.List(&staking.ListArguments{Start: 1, Count: 10}, &page)
	assert.Nil(t, err, "wrong List")
	assert.Equal(t, records, page.Stakes, "wrong page")
	assert.Equal(t, uint64(2), page.NextStart, "wrong next start")

	err = l.List(&staking.ListArguments{Start: 1, Count: 0}, &page)
	assert.Equal(t, fault.InvalidCount, err, "wrong zero count")

	err = l.Count(&staking.HolderArguments{}, &count)
	assert.Equal(t, fault.MissingParameters, err, "wrong missing holder")
}

func TestInfo(t *testing.T) {
	ctl, m, l := setup(t)
	defer ctl.Finish()

	id := uuid.New()
	address := fixtures.Key().Account()

	m.EXPECT().Id().Return(id).Times(1)
	m.EXPECT().IsPaused().Return(false).Times(1)
	m.EXPECT().MaximumPerHolder().Return(uint64(25)).Times(1)
	m.EXPECT().MultisigRequired().Return(true).Times(1)
	m.EXPECT().MultisigAddress().Return(address, nil).Times(1)
	m.EXPECT().TotalStakes().Return(7).Times(1)
	m.EXPECT().Capabilities().Return(nil).Times(1)

	var reply staking.InfoReply
	err := l.Info(&staking.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, id, reply.Id, "wrong id")
	assert.Equal(t, uint64(25), reply.MaximumPerHolder, "wrong maximum")
	assert.True(t, address.Equal(reply.MultisigAddress), "wrong address")
	assert.Equal(t, 7, reply.Stakes, "wrong stake count")
}
