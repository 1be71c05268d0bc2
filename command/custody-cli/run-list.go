// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"sort"

	"github.com/urfave/cli"
)

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	identities := m.config.Identities

	names := make([]string, 0, len(identities))
	for name := range identities {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		// SK: holds a secret key, MS: multisig policy, --: receive only
		flag := "--"
		if len(identities[name].Salt) > 0 {
			flag = "SK"
		} else if _, ok := m.config.Policies[name]; ok {
			flag = "MS"
		}
		marker := " "
		if name == m.config.DefaultIdentity {
			marker = "*"
		}
		fmt.Fprintf(m.w, "%s%s %-20s  %s  %q\n", marker, flag, name, identities[name].Account, identities[name].Description)
	}
	return nil
}
