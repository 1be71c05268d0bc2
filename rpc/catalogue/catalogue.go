// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package catalogue - the Catalog RPC service
package catalogue

import (
	"github.com/google/uuid"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/asset"
	"github.com/bitmark-inc/custodyd/capability"
	"github.com/bitmark-inc/custodyd/catalog"
	"github.com/bitmark-inc/custodyd/rpc/admin"
	"github.com/bitmark-inc/custodyd/rpc/auth"
	"github.com/bitmark-inc/custodyd/rpc/ratelimit"
)

// ServiceName - name the service is registered under
const ServiceName = "Catalog"

// Catalog - type for the RPC
type Catalog struct {
	*admin.Admin
	Catalog catalog.Handle
}

// New - create the Catalog service
func New(log *logger.L, handle catalog.Handle, verifier *auth.Verifier) *Catalog {
	return &Catalog{
		Admin:   admin.New(log, ServiceName, handle, verifier),
		Catalog: handle,
	}
}

// ---

// MintArguments - arguments for RPC request
type MintArguments struct {
	Capability  uuid.UUID           `json:"capability"`
	TokenId     uint64              `json:"tokenId,string"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	ImageURL    string              `json:"imageUrl"`
	Keys        []string            `json:"keys"`
	Values      []string            `json:"values"`
	Recipient   *account.Account    `json:"recipient"`
	Auth        *auth.Authorisation `json:"auth,omitempty"`
}

// AssetReply - results from RPC request
type AssetReply struct {
	Asset *asset.Asset     `json:"asset"`
	Owner *account.Account `json:"owner,omitempty"`
}

// Mint - create a new asset for a recipient
func (cat *Catalog) Mint(arguments *MintArguments, reply *AssetReply) error {
	principal, err := cat.Authorise("Mint", arguments, arguments.Auth)
	if nil != err {
		return err
	}
	if err := cat.Verifier.CheckNetwork(arguments.Recipient); nil != err {
		return err
	}
	c, err := cat.Lookup(arguments.Capability)
	if nil != err {
		return err
	}

	a, err := cat.Catalog.Mint(principal, c, catalog.MintArguments{
		TokenId:     arguments.TokenId,
		Name:        arguments.Name,
		Description: arguments.Description,
		ImageURL:    arguments.ImageURL,
		Keys:        arguments.Keys,
		Values:      arguments.Values,
		Recipient:   arguments.Recipient,
	})
	if nil != err {
		return err
	}

	cat.Log.Infof("Catalog.Mint: token: %d  id: %s", a.TokenId, a.Id)
	reply.Asset = a
	reply.Owner = arguments.Recipient
	return nil
}

// UpdateArguments - arguments for RPC request
type UpdateArguments struct {
	Capability  uuid.UUID           `json:"capability"`
	AssetId     asset.Identifier    `json:"assetId"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	ImageURL    string              `json:"imageUrl"`
	Keys        []string            `json:"keys"`
	Values      []string            `json:"values"`
	Auth        *auth.Authorisation `json:"auth,omitempty"`
}

// Update - replace the descriptive fields of an asset
func (cat *Catalog) Update(arguments *UpdateArguments, reply *AssetReply) error {
	principal, err := cat.Authorise("Update", arguments, arguments.Auth)
	if nil != err {
		return err
	}
	c, err := cat.Lookup(arguments.Capability)
	if nil != err {
		return err
	}

	a, err := cat.Catalog.Update(principal, c, catalog.UpdateArguments{
		AssetId:     arguments.AssetId,
		Name:        arguments.Name,
		Description: arguments.Description,
		ImageURL:    arguments.ImageURL,
		Keys:        arguments.Keys,
		Values:      arguments.Values,
	})
	if nil != err {
		return err
	}

	cat.Log.Infof("Catalog.Update: id: %s", a.Id)
	reply.Asset = a
	return nil
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - catalog status
type InfoReply struct {
	Paused           bool                     `json:"paused"`
	MultisigRequired bool                     `json:"multisigRequired"`
	MultisigAddress  *account.Account         `json:"multisigAddress,omitempty"`
	Assets           int                      `json:"assets"`
	Capabilities     []*capability.Capability `json:"capabilities"`
}

// Info - report catalog state
func (cat *Catalog) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(cat.Limiter); nil != err {
		return err
	}

	reply.Paused = cat.Catalog.IsPaused()
	reply.MultisigRequired = cat.Catalog.MultisigRequired()
	if address, err := cat.Catalog.MultisigAddress(); nil == err {
		reply.MultisigAddress = address
	}
	reply.Assets = cat.Catalog.AssetCount()
	reply.Capabilities = cat.Catalog.Capabilities()
	return nil
}
