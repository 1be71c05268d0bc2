// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/custodyd/command/custody-cli/rpccalls"
	"github.com/bitmark-inc/custodyd/rpc/catalogue"
)

func runMint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	capabilityId, err := checkCapability(c.String("capability"), holderName(c, m.config), catalogue.ServiceName, m.config)
	if nil != err {
		return err
	}

	tokenId := c.Uint64("token")
	if !c.IsSet("token") {
		return ErrRequiredTokenId
	}

	name := c.String("name")
	if "" == name {
		return ErrRequiredName
	}

	keys, values, err := checkAttributes(c.StringSlice("attribute"))
	if nil != err {
		return err
	}

	recipient, err := checkAccount(c.String("recipient"), m.config)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "capability: %s\n", capabilityId)
		fmt.Fprintf(m.e, "token: %d\n", tokenId)
		fmt.Fprintf(m.e, "name: %s\n", name)
		fmt.Fprintf(m.e, "recipient: %s\n", recipient)
	}

	signer, err := checkSigner(c, m)
	if nil != err {
		return err
	}

	client, err := connect(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Mint(signer, &rpccalls.MintData{
		Capability:  capabilityId,
		TokenId:     tokenId,
		Name:        name,
		Description: c.String("description"),
		ImageURL:    c.String("image"),
		Keys:        keys,
		Values:      values,
		Recipient:   recipient,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runUpdate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	capabilityId, err := checkCapability(c.String("capability"), holderName(c, m.config), catalogue.ServiceName, m.config)
	if nil != err {
		return err
	}

	assetId, err := checkAssetId(c.String("asset"))
	if nil != err {
		return err
	}

	name := c.String("name")
	if "" == name {
		return ErrRequiredName
	}

	keys, values, err := checkAttributes(c.StringSlice("attribute"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "capability: %s\n", capabilityId)
		fmt.Fprintf(m.e, "asset: %s\n", assetId)
		fmt.Fprintf(m.e, "name: %s\n", name)
	}

	signer, err := checkSigner(c, m)
	if nil != err {
		return err
	}

	client, err := connect(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Update(signer, &rpccalls.UpdateData{
		Capability:  capabilityId,
		AssetId:     assetId,
		Name:        name,
		Description: c.String("description"),
		ImageURL:    c.String("image"),
		Keys:        keys,
		Values:      values,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
