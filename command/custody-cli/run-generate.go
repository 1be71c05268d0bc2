// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/custodyd/account"
)

type generatedKey struct {
	Seed    string `json:"seed"`
	Account string `json:"account"`
	TestNet bool   `json:"testnet"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	seed, err := account.NewBase58Seed(m.testnet)
	if nil != err {
		return err
	}

	key, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return err
	}

	return printJson(m.w, generatedKey{
		Seed:    seed,
		Account: key.Account().String(),
		TestNet: key.IsTesting(),
	})
}
