// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/asset"
	"github.com/bitmark-inc/custodyd/rpc/assets"
)

const assetsService = "Assets"

// GetAssets - details, owner and stake state of some assets
func (client *Client) GetAssets(ids []asset.Identifier) (*assets.GetReply, error) {
	reply := &assets.GetReply{}
	if err := client.call(assetsService+".Get", assets.GetArguments{Ids: ids}, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Owned - assets currently owned by an account
func (client *Client) Owned(owner *account.Account) (*assets.OwnedReply, error) {
	reply := &assets.OwnedReply{}
	if err := client.call(assetsService+".Owned", assets.OwnedArguments{Owner: owner}, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Transfer - give an unstaked asset to another account
func (client *Client) Transfer(signer Signer, id asset.Identifier, to *account.Account) (*assets.TransferReply, error) {

	transferArgs := assets.TransferArguments{
		AssetId: id,
		To:      to,
	}

	method := assetsService + ".Transfer"
	a, err := signer.Authorise(method, transferArgs)
	if nil != err {
		return nil, err
	}
	transferArgs.Auth = a

	reply := &assets.TransferReply{}
	if err := client.call(method, transferArgs, reply); nil != err {
		return nil, err
	}
	return reply, nil
}
