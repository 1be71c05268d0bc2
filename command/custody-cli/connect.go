// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/custodyd/command/custody-cli/rpccalls"
)

// connect to the selected custodyd
func connect(c *cli.Context, m *metadata) (*rpccalls.Client, error) {
	index := c.GlobalInt("connection")
	if index < 0 || index >= len(m.config.Connections) {
		return nil, ErrNoConnection
	}
	return rpccalls.NewClient(m.testnet, m.config.Connections[index], m.verbose, m.e)
}
