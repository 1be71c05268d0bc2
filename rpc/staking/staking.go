// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package staking - the Ledger RPC service
package staking

import (
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/asset"
	"github.com/bitmark-inc/custodyd/capability"
	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/ledger"
	"github.com/bitmark-inc/custodyd/rpc/admin"
	"github.com/bitmark-inc/custodyd/rpc/auth"
	"github.com/bitmark-inc/custodyd/rpc/ratelimit"
)

// ServiceName - name the service is registered under
const ServiceName = "Ledger"

const (
	rateLimitLedger = 200
	rateBurstLedger = maximumBatch

	// limit for batches and pages
	maximumBatch = 100
)

// Ledger - type for the RPC
//
// Limiter covers the batch calls, administration calls use the
// limiter of the embedded Admin
type Ledger struct {
	*admin.Admin
	Limiter *rate.Limiter
	Ledger  ledger.Handle
}

// New - create the Ledger service
func New(log *logger.L, handle ledger.Handle, verifier *auth.Verifier) *Ledger {
	return &Ledger{
		Admin:   admin.New(log, ServiceName, handle, verifier),
		Limiter: rate.NewLimiter(rateLimitLedger, rateBurstLedger),
		Ledger:  handle,
	}
}

// ---

// StakeArguments - arguments for RPC request
type StakeArguments struct {
	AssetIds []asset.Identifier  `json:"assetIds"`
	Auth     *auth.Authorisation `json:"auth,omitempty"`
}

// StakesReply - stake records affected by the call
type StakesReply struct {
	Stakes []ledger.Record `json:"stakes"`
}

// Stake - place the caller's assets in custody
func (l *Ledger) Stake(arguments *StakeArguments, reply *StakesReply) error {
	if err := ratelimit.LimitN(l.Limiter, len(arguments.AssetIds), maximumBatch); nil != err {
		return err
	}
	holder, err := l.Verifier.Verify(ServiceName+".Stake", arguments, arguments.Auth)
	if nil != err {
		l.Log.Warnf("Ledger.Stake: rejected authorisation: %s", err)
		return err
	}

	records, err := l.Ledger.Stake(holder, arguments.AssetIds)
	if nil != err {
		return err
	}

	l.Log.Infof("Ledger.Stake: holder: %s  count: %d", holder, len(records))
	reply.Stakes = records
	return nil
}

// Unstake - return assets to the account that staked them
func (l *Ledger) Unstake(arguments *StakeArguments, reply *StakesReply) error {
	if err := ratelimit.LimitN(l.Limiter, len(arguments.AssetIds), maximumBatch); nil != err {
		return err
	}
	caller, err := l.Verifier.Verify(ServiceName+".Unstake", arguments, arguments.Auth)
	if nil != err {
		l.Log.Warnf("Ledger.Unstake: rejected authorisation: %s", err)
		return err
	}

	records, err := l.Ledger.Unstake(caller, arguments.AssetIds)
	if nil != err {
		return err
	}

	l.Log.Infof("Ledger.Unstake: caller: %s  count: %d", caller, len(records))
	reply.Stakes = records
	return nil
}

// AdminStakeArguments - arguments for RPC request
type AdminStakeArguments struct {
	Capability   uuid.UUID           `json:"capability"`
	AssetIds     []asset.Identifier  `json:"assetIds"`
	Destinations []*account.Account  `json:"destinations"`
	Timestamps   []uint64            `json:"timestamps"`
	Auth         *auth.Authorisation `json:"auth,omitempty"`
}

// AdminStake - place assets in custody on behalf of other holders
func (l *Ledger) AdminStake(arguments *AdminStakeArguments, reply *StakesReply) error {
	principal, err := l.Authorise("AdminStake", arguments, arguments.Auth)
	if nil != err {
		return err
	}
	if len(arguments.AssetIds) > maximumBatch {
		return fault.InvalidCount
	}
	if err := l.Verifier.CheckNetwork(arguments.Destinations...); nil != err {
		return err
	}
	c, err := l.Lookup(arguments.Capability)
	if nil != err {
		return err
	}

	records, err := l.Ledger.AdminStake(principal, c, arguments.AssetIds, arguments.Destinations, arguments.Timestamps)
	if nil != err {
		return err
	}

	l.Log.Infof("Ledger.AdminStake: count: %d", len(records))
	reply.Stakes = records
	return nil
}

// SetMaximumArguments - arguments for RPC request
type SetMaximumArguments struct {
	Capability uuid.UUID           `json:"capability"`
	Maximum    uint64              `json:"maximum"`
	Auth       *auth.Authorisation `json:"auth,omitempty"`
}

// SetMaximumReply - the limit in force after the call
type SetMaximumReply struct {
	Maximum uint64 `json:"maximum"`
}

// SetMaximum - change the per holder stake limit
func (l *Ledger) SetMaximum(arguments *SetMaximumArguments, reply *SetMaximumReply) error {
	principal, err := l.Authorise("SetMaximum", arguments, arguments.Auth)
	if nil != err {
		return err
	}
	c, err := l.Lookup(arguments.Capability)
	if nil != err {
		return err
	}

	if err := l.Ledger.SetMaximumPerHolder(principal, c, arguments.Maximum); nil != err {
		return err
	}

	reply.Maximum = arguments.Maximum
	return nil
}

// ---

// HolderArguments - arguments for RPC request
type HolderArguments struct {
	Holder *account.Account `json:"holder"`
}

// CountReply - number of stakes
type CountReply struct {
	Count int `json:"count"`
}

// Count - number of assets a holder has staked
func (l *Ledger) Count(arguments *HolderArguments, reply *CountReply) error {
	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}
	if err := l.Verifier.CheckNetwork(arguments.Holder); nil != err {
		return err
	}

	reply.Count = l.Ledger.StakeCount(arguments.Holder)
	return nil
}

// Holder - one holder's stakes in the order made
func (l *Ledger) Holder(arguments *HolderArguments, reply *StakesReply) error {
	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}
	if err := l.Verifier.CheckNetwork(arguments.Holder); nil != err {
		return err
	}

	reply.Stakes = l.Ledger.HolderStakes(arguments.Holder)
	return nil
}

// StakeInfoArguments - arguments for RPC request
type StakeInfoArguments struct {
	AssetId asset.Identifier `json:"assetId"`
}

// StakeInfoReply - who staked an asset and when
type StakeInfoReply struct {
	Holder    *account.Account `json:"holder"`
	Timestamp uint64           `json:"timestamp"`
}

// StakeInfo - custody details of one asset
func (l *Ledger) StakeInfo(arguments *StakeInfoArguments, reply *StakeInfoReply) error {
	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}

	holder, timestamp, err := l.Ledger.StakeInfo(arguments.AssetId)
	if nil != err {
		return err
	}

	reply.Holder = holder
	reply.Timestamp = timestamp
	return nil
}

// ListArguments - arguments for RPC request
type ListArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// ListReply - a page of stakes
type ListReply struct {
	Stakes    []ledger.Record `json:"stakes"`
	NextStart uint64          `json:"nextStart,string"`
}

// List - page through all stakes in the order made
func (l *Ledger) List(arguments *ListArguments, reply *ListReply) error {
	if err := ratelimit.LimitN(l.Limiter, arguments.Count, maximumBatch); nil != err {
		return err
	}

	records, next, err := l.Ledger.Stakes(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Stakes = records
	reply.NextStart = next
	return nil
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - ledger status
type InfoReply struct {
	Id               uuid.UUID                `json:"id"`
	Paused           bool                     `json:"paused"`
	MaximumPerHolder uint64                   `json:"maximumPerHolder"`
	MultisigRequired bool                     `json:"multisigRequired"`
	MultisigAddress  *account.Account         `json:"multisigAddress,omitempty"`
	Stakes           int                      `json:"stakes"`
	Capabilities     []*capability.Capability `json:"capabilities"`
}

// Info - report ledger state
func (l *Ledger) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}

	reply.Id = l.Ledger.Id()
	reply.Paused = l.Ledger.IsPaused()
	reply.MaximumPerHolder = l.Ledger.MaximumPerHolder()
	reply.MultisigRequired = l.Ledger.MultisigRequired()
	if address, err := l.Ledger.MultisigAddress(); nil == err {
		reply.MultisigAddress = address
	}
	reply.Stakes = l.Ledger.TotalStakes()
	reply.Capabilities = l.Ledger.Capabilities()
	return nil
}
