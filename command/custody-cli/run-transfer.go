// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	assetId, err := checkAssetId(c.String("asset"))
	if nil != err {
		return err
	}

	receiver, err := checkAccount(c.String("receiver"), m.config)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "asset: %s\n", assetId)
		fmt.Fprintf(m.e, "receiver: %s\n", receiver)
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

	response, err := client.Transfer(signer, assetId, receiver)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runAssets(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	ids, err := checkAssetIds(c.StringSlice("asset"))
	if nil != err {
		return err
	}

	client, err := connect(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetAssets(ids)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runOwned(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkOptionalAccount(c.String("owner"), c, m.config)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
	}

	client, err := connect(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Owned(owner)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
