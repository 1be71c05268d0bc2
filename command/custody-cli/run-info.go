// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/custodyd/rpc/catalogue"
	"github.com/bitmark-inc/custodyd/rpc/node"
	"github.com/bitmark-inc/custodyd/rpc/staking"
)

type infoReply struct {
	Node    *node.InfoReply      `json:"node"`
	Catalog *catalogue.InfoReply `json:"catalog"`
	Ledger  *staking.InfoReply   `json:"ledger"`
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	nodeInfo, err := client.NodeInfo()
	if nil != err {
		return err
	}

	catalogInfo, err := client.CatalogInfo()
	if nil != err {
		return err
	}

	ledgerInfo, err := client.LedgerInfo()
	if nil != err {
		return err
	}

	return printJson(m.w, infoReply{
		Node:    nodeInfo,
		Catalog: catalogInfo,
		Ledger:  ledgerInfo,
	})
}

func runEvents(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Events(c.Uint64("start"), c.Int("count"))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
