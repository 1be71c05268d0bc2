// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assets

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/asset"
	"github.com/bitmark-inc/custodyd/catalog"
	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/ledger"
	"github.com/bitmark-inc/custodyd/ownership"
	"github.com/bitmark-inc/custodyd/rpc/auth"
	"github.com/bitmark-inc/custodyd/rpc/ratelimit"
)

const (
	maximumAssets   = 100
	rateLimitAssets = 200
	rateBurstAssets = 100
)

// Assets - type for the RPC
type Assets struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Verifier  *auth.Verifier
	Catalog   catalog.Handle
	Ledger    ledger.Handle
	Inventory ownership.Lister
}

// New - create the Assets service
func New(log *logger.L, catalogHandle catalog.Handle, ledgerHandle ledger.Handle, inventory ownership.Lister, verifier *auth.Verifier) *Assets {
	return &Assets{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitAssets, rateBurstAssets),
		Verifier:  verifier,
		Catalog:   catalogHandle,
		Ledger:    ledgerHandle,
		Inventory: inventory,
	}
}

// ---

// GetArguments - arguments for RPC request
type GetArguments struct {
	Ids []asset.Identifier `json:"ids"`
}

// Record - an asset and where it is
//
// a free asset has an owner, an asset in custody has the holder who
// staked it
type Record struct {
	Id        asset.Identifier `json:"id"`
	Found     bool             `json:"found"`
	Asset     *asset.Asset     `json:"asset,omitempty"`
	Owner     *account.Account `json:"owner,omitempty"`
	Holder    *account.Account `json:"holder,omitempty"`
	Timestamp uint64           `json:"timestamp,omitempty"`
}

// GetReply - results from get RPC request
type GetReply struct {
	Assets []Record `json:"assets"`
}

// Get - fetch assets by id
func (assets *Assets) Get(arguments *GetArguments, reply *GetReply) error {
	count := len(arguments.Ids)
	if err := ratelimit.LimitN(assets.Limiter, count, maximumAssets); nil != err {
		return err
	}

	records := make([]Record, count)
	for i, id := range arguments.Ids {
		records[i].Id = id

		location, err := assets.Ledger.Locate(id)
		if fault.AssetNotFound == err {
			continue
		}
		if nil != err {
			return err
		}
		records[i].Found = true
		records[i].Asset = location.Asset
		records[i].Owner = location.Owner
		if nil != location.Stake {
			records[i].Holder = location.Stake.Holder
			records[i].Timestamp = location.Stake.Timestamp
		}
	}

	reply.Assets = records
	return nil
}

// ---

// OwnedArguments - arguments for RPC request
type OwnedArguments struct {
	Owner *account.Account `json:"owner"`
}

// OwnedReply - results from owned RPC request
type OwnedReply struct {
	Assets []*asset.Asset `json:"assets"`
}

// Owned - the free assets of an account, in token order
func (assets *Assets) Owned(arguments *OwnedArguments, reply *OwnedReply) error {
	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}
	if err := assets.Verifier.CheckNetwork(arguments.Owner); nil != err {
		return err
	}

	reply.Assets = assets.Inventory.ListFor(arguments.Owner)
	return nil
}

// ---

// TransferArguments - arguments for RPC request
type TransferArguments struct {
	AssetId asset.Identifier    `json:"assetId"`
	To      *account.Account    `json:"to"`
	Auth    *auth.Authorisation `json:"auth,omitempty"`
}

// TransferReply - results from transfer RPC request
type TransferReply struct {
	AssetId asset.Identifier `json:"assetId"`
	Owner   *account.Account `json:"owner"`
}

// Transfer - move a free asset to another account
func (assets *Assets) Transfer(arguments *TransferArguments, reply *TransferReply) error {
	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}
	principal, err := assets.Verifier.Verify("Assets.Transfer", arguments, arguments.Auth)
	if nil != err {
		assets.Log.Warnf("Assets.Transfer: rejected authorisation: %s", err)
		return err
	}
	if err := assets.Verifier.CheckNetwork(arguments.To); nil != err {
		return err
	}

	if err := assets.Catalog.TransferAsset(principal, arguments.AssetId, arguments.To); nil != err {
		return err
	}

	assets.Log.Infof("Assets.Transfer: id: %s  to: %s", arguments.AssetId, arguments.To)
	reply.AssetId = arguments.AssetId
	reply.Owner = arguments.To
	return nil
}
