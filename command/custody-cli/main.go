// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/custodyd/command/custody-cli/configuration"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	save    bool
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// flags shared by every command that changes state
var signingFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "policy, P",
		Value: "",
		Usage: " sign for the multisig policy `NAME`",
	},
	cli.StringSliceFlag{
		Name:  "cosigner, C",
		Usage: " additional identity `NAME` signing for the policy",
	},
	cli.DurationFlag{
		Name:  "validity",
		Value: 0,
		Usage: " request stays valid for `DURATION`",
	},
}

// flags of the administration commands
var administrationFlags = append([]cli.Flag{
	cli.StringFlag{
		Name:  "service, s",
		Value: "Ledger",
		Usage: " administer `SERVICE` [Catalog|Ledger]",
	},
	cli.StringFlag{
		Name:  "capability, c",
		Value: "",
		Usage: " capability `ID` [default is the remembered capability]",
	},
}, signingFlags...)

func main() {

	app := cli.NewApp()
	app.Name = "custody-cli"
	app.Usage = "client for the custodyd asset catalog and custody ledger"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: "",
			Usage: " connect to custodyd `NETWORK` [live|testing|local]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
		cli.IntFlag{
			Name:  "connection, x",
			Value: 0,
			Usage: " use connection `INDEX` from the configuration",
		},
	}
	app.Commands = commands()

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "version", "help", "h":
			return nil
		}

		network, err := checkNetwork(c.GlobalString("network"))
		if nil != err {
			return err
		}

		file, err := configurationFile(app.Name, network)
		if nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		m := &metadata{
			file:    file,
			testnet: "live" != network,
			verbose: verbose,
			e:       e,
			w:       w,
		}

		if "setup" == command {
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}
		} else {
			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}

			config, err := configuration.Load(file)
			if nil != err {
				return err
			}
			m.config = config
			m.testnet = config.TestNet
		}
		c.App.Metadata["config"] = m

		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.save {
			if m.verbose {
				fmt.Fprintf(m.e, "updating config file: %s\n", m.file)
			}
			return configuration.Save(m.file, m.config)
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

// per network file below $XDG_CONFIG_HOME
func configurationFile(name string, network string) (string, error) {
	p := os.Getenv("XDG_CONFIG_HOME")
	if "" == p {
		return "", fmt.Errorf("XDG_CONFIG_HOME environment is not set")
	}
	dir, err := checkFileExists(p)
	if nil != err {
		return "", err
	}
	if !dir {
		return "", fmt.Errorf("not a directory: %q", p)
	}
	return path.Join(p, name, network+"-"+name+".json"), nil
}
