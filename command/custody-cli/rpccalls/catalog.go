// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/google/uuid"

	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/asset"
	"github.com/bitmark-inc/custodyd/rpc/catalogue"
)

// MintData - data for a mint request
type MintData struct {
	Capability  uuid.UUID
	TokenId     uint64
	Name        string
	Description string
	ImageURL    string
	Keys        []string
	Values      []string
	Recipient   *account.Account
}

// Mint - create a new asset for a recipient
func (client *Client) Mint(signer Signer, data *MintData) (*catalogue.AssetReply, error) {

	mintArgs := catalogue.MintArguments{
		Capability:  data.Capability,
		TokenId:     data.TokenId,
		Name:        data.Name,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		Keys:        data.Keys,
		Values:      data.Values,
		Recipient:   data.Recipient,
	}

	method := catalogue.ServiceName + ".Mint"
	a, err := signer.Authorise(method, mintArgs)
	if nil != err {
		return nil, err
	}
	mintArgs.Auth = a

	reply := &catalogue.AssetReply{}
	if err := client.call(method, mintArgs, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// UpdateData - data for an update request
type UpdateData struct {
	Capability  uuid.UUID
	AssetId     asset.Identifier
	Name        string
	Description string
	ImageURL    string
	Keys        []string
	Values      []string
}

// Update - replace the descriptive fields of an asset
func (client *Client) Update(signer Signer, data *UpdateData) (*catalogue.AssetReply, error) {

	updateArgs := catalogue.UpdateArguments{
		Capability:  data.Capability,
		AssetId:     data.AssetId,
		Name:        data.Name,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		Keys:        data.Keys,
		Values:      data.Values,
	}

	method := catalogue.ServiceName + ".Update"
	a, err := signer.Authorise(method, updateArgs)
	if nil != err {
		return nil, err
	}
	updateArgs.Auth = a

	reply := &catalogue.AssetReply{}
	if err := client.call(method, updateArgs, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// CatalogInfo - status of the catalog
func (client *Client) CatalogInfo() (*catalogue.InfoReply, error) {
	reply := &catalogue.InfoReply{}
	if err := client.call(catalogue.ServiceName+".Info", catalogue.InfoArguments{}, reply); nil != err {
		return nil, err
	}
	return reply, nil
}
