// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/asset"
	"github.com/bitmark-inc/custodyd/command/custody-cli/configuration"
	"github.com/bitmark-inc/custodyd/command/custody-cli/rpccalls"
	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/rpc/catalogue"
	"github.com/bitmark-inc/custodyd/rpc/staking"
)

// command line errors - keep in alphabetic order
var (
	ErrCosignerWithoutPolicy = fault.InvalidError("cosigner requires a policy")
	ErrDestinationCount      = fault.InvalidError("destinations must match assets")
	ErrInvalidAttribute      = fault.InvalidError("attribute must be KEY=VALUE")
	ErrInvalidNetwork        = fault.InvalidError("network can only be live/testing/local")
	ErrInvalidService        = fault.InvalidError("service can only be Catalog/Ledger")
	ErrInvalidSigner         = fault.InvalidError("signer must be NAME:WEIGHT")
	ErrNoConnection          = fault.NotFoundError("no connection at that index")
	ErrRequiredAccount       = fault.InvalidError("account is required")
	ErrRequiredAsset         = fault.InvalidError("asset id is required")
	ErrRequiredCapability    = fault.InvalidError("capability is required")
	ErrRequiredConnect       = fault.InvalidError("connect is required")
	ErrRequiredDescription   = fault.InvalidError("description is required")
	ErrRequiredIdentity      = fault.InvalidError("identity is required")
	ErrRequiredMaximum       = fault.InvalidError("maximum is required")
	ErrRequiredName          = fault.InvalidError("asset name is required")
	ErrRequiredSeed          = fault.InvalidError("seed or new is required")
	ErrRequiredSigners       = fault.InvalidError("signers are required")
	ErrRequiredThreshold     = fault.InvalidError("threshold is required")
	ErrRequiredTokenId       = fault.InvalidError("token id is required")
	ErrTimestampCount        = fault.InvalidError("timestamps must match assets")
)

// network aliases accepted on the command line
func checkNetwork(network string) (string, error) {
	switch network {
	case "", "live", "bitmark":
		return "live", nil
	case "testing", "test":
		return "testing", nil
	case "local", "regression":
		return "local", nil
	default:
		return "", ErrInvalidNetwork
	}
}

// identity is required, but not check the config file
func checkName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredIdentity
	}
	return name, nil
}

// connect is required
func checkConnect(connect string) (string, error) {
	connect = strings.TrimSpace(connect)
	if "" == connect {
		return "", ErrRequiredConnect
	}
	return connect, nil
}

// description is required
func checkDescription(description string) (string, error) {
	if "" == description {
		return "", ErrRequiredDescription
	}
	return description, nil
}

// an existing seed or a request for a new one
func checkSeed(seed string, new bool, testnet bool) (string, error) {
	if "" == seed {
		if !new {
			return "", ErrRequiredSeed
		}
		return account.NewBase58Seed(testnet)
	}
	if new {
		return "", fault.IncompatibleOptions
	}
	if _, err := account.PrivateKeyFromBase58Seed(seed); nil != err {
		return "", err
	}
	return seed, nil
}

// service is Catalog or Ledger
func checkService(service string) (string, error) {
	switch strings.ToLower(service) {
	case "catalog", "catalogue":
		return catalogue.ServiceName, nil
	case "ledger", "":
		return staking.ServiceName, nil
	default:
		return "", ErrInvalidService
	}
}

// identity name or Base58 account
func checkAccount(value string, config *configuration.Configuration) (*account.Account, error) {
	if "" == value {
		return nil, ErrRequiredAccount
	}
	if a, err := config.Account(value); nil == err {
		return a, nil
	}
	return account.AccountFromBase58(value)
}

// defaults to the global identity
func checkOptionalAccount(value string, c *cli.Context, config *configuration.Configuration) (*account.Account, error) {
	if "" == value {
		value = identityName(c, config)
	}
	return checkAccount(value, config)
}

func checkAccounts(values []string, config *configuration.Configuration) ([]*account.Account, error) {
	accounts := make([]*account.Account, 0, len(values))
	for _, v := range values {
		a, err := checkAccount(v, config)
		if nil != err {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}

func checkAssetId(value string) (asset.Identifier, error) {
	if "" == value {
		return asset.Identifier{}, ErrRequiredAsset
	}
	return asset.IdentifierFromString(value)
}

// one or more ids, each flag value may hold a comma separated list
func checkAssetIds(values []string) ([]asset.Identifier, error) {
	ids := make([]asset.Identifier, 0, len(values))
	for _, v := range values {
		for _, s := range strings.Split(v, ",") {
			s = strings.TrimSpace(s)
			if "" == s {
				continue
			}
			id, err := asset.IdentifierFromString(s)
			if nil != err {
				return nil, err
			}
			ids = append(ids, id)
		}
	}
	if 0 == len(ids) {
		return nil, ErrRequiredAsset
	}
	return ids, nil
}

// KEY=VALUE pairs as parallel lists
func checkAttributes(values []string) ([]string, []string, error) {
	keys := make([]string, 0, len(values))
	vals := make([]string, 0, len(values))
	for _, v := range values {
		kv := strings.SplitN(v, "=", 2)
		if 2 != len(kv) || "" == kv[0] {
			return nil, nil, ErrInvalidAttribute
		}
		keys = append(keys, kv[0])
		vals = append(vals, kv[1])
	}
	return keys, vals, nil
}

// NAME:WEIGHT pairs, NAME is an identity or an account
func checkSigners(values []string, config *configuration.Configuration) ([]*account.Account, []int, error) {
	if 0 == len(values) {
		return nil, nil, ErrRequiredSigners
	}
	signers := make([]*account.Account, 0, len(values))
	weights := make([]int, 0, len(values))
	for _, v := range values {
		i := strings.LastIndex(v, ":")
		if i <= 0 {
			return nil, nil, ErrInvalidSigner
		}
		weight, err := strconv.Atoi(v[i+1:])
		if nil != err {
			return nil, nil, ErrInvalidSigner
		}
		a, err := checkAccount(v[:i], config)
		if nil != err {
			return nil, nil, err
		}
		signers = append(signers, a)
		weights = append(weights, weight)
	}
	return signers, weights, nil
}

// decimal values, comma separated lists allowed
func checkTimestamps(values []string) ([]uint64, error) {
	timestamps := make([]uint64, 0, len(values))
	for _, v := range values {
		for _, s := range strings.Split(v, ",") {
			s = strings.TrimSpace(s)
			if "" == s {
				continue
			}
			t, err := strconv.ParseUint(s, 10, 64)
			if nil != err {
				return nil, err
			}
			timestamps = append(timestamps, t)
		}
	}
	return timestamps, nil
}

// the flag value or the id remembered for the holder
func checkCapability(value string, holder string, service string, config *configuration.Configuration) (uuid.UUID, error) {
	if "" == value {
		remembered, ok := config.Capability(holder, service)
		if !ok {
			return uuid.UUID{}, ErrRequiredCapability
		}
		value = remembered
	}
	return uuid.Parse(value)
}

// global identity or the configured default
func identityName(c *cli.Context, config *configuration.Configuration) string {
	name := c.GlobalString("identity")
	if "" == name {
		name = config.DefaultIdentity
	}
	return name
}

// the name that holds capabilities for this call
func holderName(c *cli.Context, config *configuration.Configuration) string {
	if policy := c.String("policy"); "" != policy {
		return policy
	}
	return identityName(c, config)
}

// build the signer from the identity, or from the identity and its
// cosigners when a policy is selected
func checkSigner(c *cli.Context, m *metadata) (rpccalls.Signer, error) {

	name, err := checkName(identityName(c, m.config))
	if nil != err {
		return nil, err
	}
	validity := c.Duration("validity")

	private, err := unlockIdentity(c, m.config, name)
	if nil != err {
		return nil, err
	}

	policyName := c.String("policy")
	cosigners := c.StringSlice("cosigner")
	if "" == policyName {
		if 0 != len(cosigners) {
			return nil, ErrCosignerWithoutPolicy
		}
		return &rpccalls.KeySigner{
			Key:      private.PrivateKey,
			Validity: validity,
		}, nil
	}

	policy, err := m.config.Policy(policyName)
	if nil != err {
		return nil, err
	}

	keys := []*account.PrivateKey{private.PrivateKey}
	for _, cosigner := range cosigners {
		p, err := unlockIdentity(c, m.config, cosigner)
		if nil != err {
			return nil, err
		}
		keys = append(keys, p.PrivateKey)
	}

	return &rpccalls.PolicySigner{
		Policy:   policy,
		Keys:     keys,
		Validity: validity,
	}, nil
}

// decrypt using the global password or a prompt
func unlockIdentity(c *cli.Context, config *configuration.Configuration, name string) (*configuration.Private, error) {
	if _, err := config.Identity(name); nil != err {
		return nil, err
	}

	password := c.GlobalString("password")
	if "" == password {
		var err error
		password, err = promptPassword(name)
		if nil != err {
			return nil, err
		}
	}
	return config.Private(password, name)
}

// check if file exists and report whether it is a directory
func checkFileExists(name string) (bool, error) {
	s, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return s.IsDir(), nil
}
