// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/google/uuid"

	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/asset"
	"github.com/bitmark-inc/custodyd/rpc/staking"
)

// Stake - stake assets owned by the signer
func (client *Client) Stake(signer Signer, ids []asset.Identifier) (*staking.StakesReply, error) {
	return client.stakeBatch(staking.ServiceName+".Stake", signer, ids)
}

// Unstake - release assets staked by the signer
func (client *Client) Unstake(signer Signer, ids []asset.Identifier) (*staking.StakesReply, error) {
	return client.stakeBatch(staking.ServiceName+".Unstake", signer, ids)
}

func (client *Client) stakeBatch(method string, signer Signer, ids []asset.Identifier) (*staking.StakesReply, error) {

	stakeArgs := staking.StakeArguments{
		AssetIds: ids,
	}

	a, err := signer.Authorise(method, stakeArgs)
	if nil != err {
		return nil, err
	}
	stakeArgs.Auth = a

	reply := &staking.StakesReply{}
	if err := client.call(method, stakeArgs, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// AdminStakeData - data for an administrative stake
type AdminStakeData struct {
	Capability   uuid.UUID
	AssetIds     []asset.Identifier
	Destinations []*account.Account
	Timestamps   []uint64
}

// AdminStake - record stakes on behalf of other holders
func (client *Client) AdminStake(signer Signer, data *AdminStakeData) (*staking.StakesReply, error) {

	adminArgs := staking.AdminStakeArguments{
		Capability:   data.Capability,
		AssetIds:     data.AssetIds,
		Destinations: data.Destinations,
		Timestamps:   data.Timestamps,
	}

	method := staking.ServiceName + ".AdminStake"
	a, err := signer.Authorise(method, adminArgs)
	if nil != err {
		return nil, err
	}
	adminArgs.Auth = a

	reply := &staking.StakesReply{}
	if err := client.call(method, adminArgs, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// SetMaximum - change the per holder stake limit
func (client *Client) SetMaximum(signer Signer, capabilityId uuid.UUID, maximum uint64) (*staking.SetMaximumReply, error) {

	setArgs := staking.SetMaximumArguments{
		Capability: capabilityId,
		Maximum:    maximum,
	}

	method := staking.ServiceName + ".SetMaximum"
	a, err := signer.Authorise(method, setArgs)
	if nil != err {
		return nil, err
	}
	setArgs.Auth = a

	reply := &staking.SetMaximumReply{}
	if err := client.call(method, setArgs, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// StakeCount - number of assets a holder has staked
func (client *Client) StakeCount(holder *account.Account) (*staking.CountReply, error) {
	reply := &staking.CountReply{}
	if err := client.call(staking.ServiceName+".Count", staking.HolderArguments{Holder: holder}, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// HolderStakes - stake records of one holder
func (client *Client) HolderStakes(holder *account.Account) (*staking.StakesReply, error) {
	reply := &staking.StakesReply{}
	if err := client.call(staking.ServiceName+".Holder", staking.HolderArguments{Holder: holder}, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// StakeInfo - holder and timestamp of a staked asset
func (client *Client) StakeInfo(id asset.Identifier) (*staking.StakeInfoReply, error) {
	reply := &staking.StakeInfoReply{}
	if err := client.call(staking.ServiceName+".StakeInfo", staking.StakeInfoArguments{AssetId: id}, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// ListStakes - page through every stake
func (client *Client) ListStakes(start uint64, count int) (*staking.ListReply, error) {

	listArgs := staking.ListArguments{
		Start: start,
		Count: count,
	}

	reply := &staking.ListReply{}
	if err := client.call(staking.ServiceName+".List", listArgs, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// LedgerInfo - status of the ledger
func (client *Client) LedgerInfo() (*staking.InfoReply, error) {
	reply := &staking.InfoReply{}
	if err := client.call(staking.ServiceName+".Info", staking.InfoArguments{}, reply); nil != err {
		return nil, err
	}
	return reply, nil
}
