// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func commands() []cli.Command {
	return []cli.Command{
		{
			Name:   "generate",
			Usage:  "generate a new seed and account, will not store in config file",
			Action: runGenerate,
		},
		{
			Name:      "setup",
			Usage:     "initialise custody-cli configuration",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*custodyd host/IP and port, comma separated `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: "+using existing `SEED`",
				},
				cli.BoolFlag{
					Name:  "new, N",
					Usage: "+generate a new seed",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: "+using existing `SEED`",
				},
				cli.BoolFlag{
					Name:  "new, N",
					Usage: "+generate a new seed",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "+receive only `ACCOUNT`",
				},
			},
			Action: runAdd,
		},
		{
			Name:   "list",
			Usage:  "list identities and policies",
			Action: runList,
		},
		{
			Name:      "mint",
			Usage:     "mint a new asset",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "capability, c",
					Value: "",
					Usage: " catalog capability `ID`",
				},
				cli.Uint64Flag{
					Name:  "token, t",
					Value: 0,
					Usage: "*external token `ID`",
				},
				cli.StringFlag{
					Name:  "name, a",
					Value: "",
					Usage: "*asset name `STRING`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: " asset description `STRING`",
				},
				cli.StringFlag{
					Name:  "image, m",
					Value: "",
					Usage: " image `URL`",
				},
				cli.StringSliceFlag{
					Name:  "attribute, k",
					Usage: " attribute `KEY=VALUE`",
				},
				cli.StringFlag{
					Name:  "recipient, r",
					Value: "",
					Usage: "*identity name or account to receive the asset `ACCOUNT`",
				},
			}, signingFlags...),
			Action: runMint,
		},
		{
			Name:      "update",
			Usage:     "replace the fields of an asset",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "capability, c",
					Value: "",
					Usage: " catalog capability `ID`",
				},
				cli.StringFlag{
					Name:  "asset, A",
					Value: "",
					Usage: "*asset `ID`",
				},
				cli.StringFlag{
					Name:  "name, a",
					Value: "",
					Usage: "*asset name `STRING`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: " asset description `STRING`",
				},
				cli.StringFlag{
					Name:  "image, m",
					Value: "",
					Usage: " image `URL`",
				},
				cli.StringSliceFlag{
					Name:  "attribute, k",
					Usage: " attribute `KEY=VALUE`",
				},
			}, signingFlags...),
			Action: runUpdate,
		},
		{
			Name:      "transfer",
			Usage:     "transfer an unstaked asset to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "asset, A",
					Value: "",
					Usage: "*asset `ID`",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*identity name or account to receive the asset `ACCOUNT`",
				},
			}, signingFlags...),
			Action: runTransfer,
		},
		{
			Name:      "assets",
			Usage:     "display assets with owner and stake",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "asset, A",
					Usage: "*asset `ID`",
				},
			},
			Action: runAssets,
		},
		{
			Name:  "owned",
			Usage: "list unstaked assets owned by an account",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or `ACCOUNT` default is global identity",
				},
			},
			Action: runOwned,
		},
		{
			Name:      "stake",
			Usage:     "stake owned assets",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringSliceFlag{
					Name:  "asset, A",
					Usage: "*asset `ID`",
				},
			}, signingFlags...),
			Action: runStake,
		},
		{
			Name:      "unstake",
			Usage:     "return staked assets",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringSliceFlag{
					Name:  "asset, A",
					Usage: "*asset `ID`",
				},
			}, signingFlags...),
			Action: runUnstake,
		},
		{
			Name:      "admin-stake",
			Usage:     "record stakes on behalf of holders",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "capability, c",
					Value: "",
					Usage: " ledger capability `ID`",
				},
				cli.StringSliceFlag{
					Name:  "asset, A",
					Usage: "*asset `ID`",
				},
				cli.StringSliceFlag{
					Name:  "destination, D",
					Usage: "*holder for the matching asset `ACCOUNT`",
				},
				cli.StringSliceFlag{
					Name:  "timestamp, T",
					Usage: "*stake time for the matching asset `MILLISECONDS`",
				},
			}, signingFlags...),
			Action: runAdminStake,
		},
		{
			Name:  "stakes",
			Usage: "list stakes of a holder or of the whole ledger",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "holder, o",
					Value: "",
					Usage: " identity name or `ACCOUNT` default is global identity",
				},
				cli.BoolFlag{
					Name:  "all, a",
					Usage: " page through every stake",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " start point `COUNT`",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runStakes,
		},
		{
			Name:      "stake-info",
			Usage:     "display holder and time of a staked asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "asset, A",
					Value: "",
					Usage: "*asset `ID`",
				},
			},
			Action: runStakeInfo,
		},
		{
			Name:   "pause",
			Usage:  "pause a service",
			Flags:  administrationFlags,
			Action: runPause,
		},
		{
			Name:   "unpause",
			Usage:  "resume a paused service",
			Flags:  administrationFlags,
			Action: runUnpause,
		},
		{
			Name:      "set-maximum",
			Usage:     "change the maximum stakes per holder",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "capability, c",
					Value: "",
					Usage: " ledger capability `ID`",
				},
				cli.Uint64Flag{
					Name:  "maximum, M",
					Value: 0,
					Usage: "*stakes per holder `COUNT`",
				},
			}, signingFlags...),
			Action: runSetMaximum,
		},
		{
			Name:      "multisig",
			Usage:     "configure the multisig policy of a service",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringSliceFlag{
					Name:  "signer, S",
					Usage: "*identity name or account with its weight `NAME:WEIGHT`",
				},
				cli.UintFlag{
					Name:  "threshold, t",
					Value: 0,
					Usage: "*weight required to authorise `COUNT`",
				},
				cli.StringFlag{
					Name:  "name, a",
					Value: "",
					Usage: " remember the policy as identity `NAME`",
				},
			}, administrationFlags...),
			Action: runMultisig,
		},
		{
			Name:      "capability-add",
			Usage:     "grant a new capability",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "holder, o",
					Value: "",
					Usage: "*identity name or account of the new holder `ACCOUNT`",
				},
			}, administrationFlags...),
			Action: runCapabilityAdd,
		},
		{
			Name:   "capability-remove",
			Usage:  "revoke the capability of this holder",
			Flags:  administrationFlags,
			Action: runCapabilityRemove,
		},
		{
			Name:      "capability-transfer",
			Usage:     "hand the capability of this holder to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "to, r",
					Value: "",
					Usage: "*identity name or account of the new holder `ACCOUNT`",
				},
			}, administrationFlags...),
			Action: runCapabilityTransfer,
		},
		{
			Name:      "capability-save",
			Usage:     "remember a capability granted to this holder",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "service, s",
					Value: "Ledger",
					Usage: " service `SERVICE` [Catalog|Ledger]",
				},
				cli.StringFlag{
					Name:  "capability, c",
					Value: "",
					Usage: "*capability `ID`",
				},
				cli.StringFlag{
					Name:  "policy, P",
					Value: "",
					Usage: " the holder is the multisig policy `NAME`",
				},
			},
			Action: runCapabilitySave,
		},
		{
			Name:  "events",
			Usage: "list journal events",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 1,
					Usage: " first event `SEQUENCE`",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runEvents,
		},
		{
			Name:   "info",
			Usage:  "display custodyd, catalog and ledger status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display custody-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}
}
