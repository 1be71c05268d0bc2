// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog

import (
	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/asset"
	"github.com/bitmark-inc/custodyd/capability"
	"github.com/bitmark-inc/custodyd/event"
	"github.com/bitmark-inc/custodyd/fault"
)

// MintArguments - fields of a new asset
type MintArguments struct {
	TokenId     uint64
	Name        string
	Description string
	ImageURL    string
	Keys        []string
	Values      []string
	Recipient   *account.Account
}

// Mint - create an asset and give it to the recipient
func (cat *Catalog) Mint(principal *account.Account, c *capability.Capability, arguments MintArguments) (*asset.Asset, error) {
	trx := cat.db.Begin()
	defer trx.End()

	if err := cat.authorise(principal, c); nil != err {
		return nil, err
	}
	if cat.IsPaused() {
		return nil, fault.CatalogPaused
	}
	if nil == arguments.Recipient {
		return nil, fault.MissingParameters
	}

	attributes, err := asset.NewAttributes(arguments.Keys, arguments.Values)
	if nil != err {
		return nil, err
	}
	a, err := asset.New(arguments.TokenId, asset.Fields{
		Name:        arguments.Name,
		Description: arguments.Description,
		ImageURL:    arguments.ImageURL,
		Attributes:  attributes,
	})
	if nil != err {
		return nil, err
	}

	applyRegister, err := cat.registry.Register(trx, a.TokenId, a.Id)
	if nil != err {
		return nil, err
	}
	applyGive := cat.inventory.Give(trx, a, arguments.Recipient)

	batch := cat.journal.Begin(trx)
	err = batch.Add(event.Minted{
		AssetId:   a.Id,
		TokenId:   a.TokenId,
		Recipient: arguments.Recipient,
		Minter:    principal,
	})
	if nil != err {
		return nil, err
	}

	if err := cat.commit(trx, batch, applyRegister, applyGive); nil != err {
		return nil, err
	}

	cat.log.Infof("minted: token: %d  asset: %s  recipient: %s", a.TokenId, a.Id, arguments.Recipient)
	return a, nil
}

// UpdateArguments - replacement fields for an asset
type UpdateArguments struct {
	AssetId     asset.Identifier
	Name        string
	Description string
	ImageURL    string
	Keys        []string
	Values      []string
}

// Update - replace the descriptive fields of a free asset
//
// an asset in custody cannot be updated until it is unstaked
func (cat *Catalog) Update(principal *account.Account, c *capability.Capability, arguments UpdateArguments) (*asset.Asset, error) {
	trx := cat.db.Begin()
	defer trx.End()

	if err := cat.authorise(principal, c); nil != err {
		return nil, err
	}
	if cat.IsPaused() {
		return nil, fault.CatalogPaused
	}

	attributes, err := asset.NewAttributes(arguments.Keys, arguments.Values)
	if nil != err {
		return nil, err
	}
	fields := asset.Fields{
		Name:        arguments.Name,
		Description: arguments.Description,
		ImageURL:    arguments.ImageURL,
		Attributes:  attributes,
	}
	if err := fields.Validate(); nil != err {
		return nil, err
	}

	current, _, err := cat.inventory.Asset(arguments.AssetId)
	if nil != err {
		return nil, err
	}
	updated := current.WithFields(fields)

	applyReplace, err := cat.inventory.Replace(trx, updated)
	if nil != err {
		return nil, err
	}

	batch := cat.journal.Begin(trx)
	err = batch.Add(event.AssetUpdated{
		AssetId:        updated.Id,
		TokenId:        updated.TokenId,
		Updater:        principal,
		OldName:        current.Name,
		NewName:        updated.Name,
		OldDescription: current.Description,
		NewDescription: updated.Description,
		OldImageURL:    current.ImageURL,
		NewImageURL:    updated.ImageURL,
	})
	if nil != err {
		return nil, err
	}

	if err := cat.commit(trx, batch, applyReplace); nil != err {
		return nil, err
	}

	cat.log.Infof("updated: token: %d  asset: %s", updated.TokenId, updated.Id)
	return updated, nil
}

// TransferAsset - the holder of a free asset gives it to another account
//
// not a privileged operation so neither pause nor the gate apply
func (cat *Catalog) TransferAsset(principal *account.Account, id asset.Identifier, to *account.Account) error {
	trx := cat.db.Begin()
	defer trx.End()

	a, applyTransfer, err := cat.inventory.Transfer(trx, id, principal, to)
	if nil != err {
		return err
	}

	batch := cat.journal.Begin(trx)
	err = batch.Add(event.AssetTransferred{
		AssetId: a.Id,
		TokenId: a.TokenId,
		From:    principal,
		To:      to,
	})
	if nil != err {
		return err
	}

	if err := cat.commit(trx, batch, applyTransfer); nil != err {
		return err
	}

	cat.log.Infof("transferred: asset: %s  from: %s  to: %s", a.Id, principal, to)
	return nil
}
