// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/custodyd/command/custody-cli/rpccalls"
	"github.com/bitmark-inc/custodyd/rpc/staking"
)

func runStake(c *cli.Context) error {
	return stakeBatch(c, false)
}

func runUnstake(c *cli.Context) error {
	return stakeBatch(c, true)
}

func stakeBatch(c *cli.Context, unstake bool) error {

	m := c.App.Metadata["config"].(*metadata)

	ids, err := checkAssetIds(c.StringSlice("asset"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "assets: %d\n", len(ids))
		fmt.Fprintf(m.e, "unstake: %t\n", unstake)
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

	var response *staking.StakesReply
	if unstake {
		response, err = client.Unstake(signer, ids)
	} else {
		response, err = client.Stake(signer, ids)
	}
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runAdminStake(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	capabilityId, err := checkCapability(c.String("capability"), holderName(c, m.config), staking.ServiceName, m.config)
	if nil != err {
		return err
	}

	ids, err := checkAssetIds(c.StringSlice("asset"))
	if nil != err {
		return err
	}

	destinations, err := checkAccounts(c.StringSlice("destination"), m.config)
	if nil != err {
		return err
	}
	if len(destinations) != len(ids) {
		return ErrDestinationCount
	}

	timestamps, err := checkTimestamps(c.StringSlice("timestamp"))
	if nil != err {
		return err
	}
	if len(timestamps) != len(ids) {
		return ErrTimestampCount
	}

	if m.verbose {
		fmt.Fprintf(m.e, "capability: %s\n", capabilityId)
		fmt.Fprintf(m.e, "assets: %d\n", len(ids))
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

	response, err := client.AdminStake(signer, &rpccalls.AdminStakeData{
		Capability:   capabilityId,
		AssetIds:     ids,
		Destinations: destinations,
		Timestamps:   timestamps,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runSetMaximum(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	capabilityId, err := checkCapability(c.String("capability"), holderName(c, m.config), staking.ServiceName, m.config)
	if nil != err {
		return err
	}

	maximum := c.Uint64("maximum")
	if 0 == maximum {
		return ErrRequiredMaximum
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

	response, err := client.SetMaximum(signer, capabilityId, maximum)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

type holderStakes struct {
	Count  int                  `json:"count"`
	Stakes *staking.StakesReply `json:"stakes"`
}

func runStakes(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	if c.Bool("all") {
		response, err := client.ListStakes(c.Uint64("start"), c.Int("count"))
		if nil != err {
			return err
		}
		return printJson(m.w, response)
	}

	holder, err := checkOptionalAccount(c.String("holder"), c, m.config)
	if nil != err {
		return err
	}

	count, err := client.StakeCount(holder)
	if nil != err {
		return err
	}

	stakes, err := client.HolderStakes(holder)
	if nil != err {
		return err
	}

	return printJson(m.w, holderStakes{
		Count:  count.Count,
		Stakes: stakes,
	})
}

func runStakeInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	assetId, err := checkAssetId(c.String("asset"))
	if nil != err {
		return err
	}

	client, err := connect(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.StakeInfo(assetId)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
