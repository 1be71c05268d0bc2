// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/multisig"
)

// Configuration - configuration file data format
type Configuration struct {
	DefaultIdentity string                      `json:"default_identity"`
	TestNet         bool                        `json:"testnet"`
	Connections     []string                    `json:"connections"`
	Capabilities    map[string]string           `json:"capabilities,omitempty"`
	Policies        map[string]*multisig.Policy `json:"policies,omitempty"`
	Identities      map[string]Identity         `json:"identities"`
}

// Identity - mix of plain and encrypted data
//
// an identity without Data can only receive
type Identity struct {
	Description string `json:"description"`
	Account     string `json:"account"`
	Data        string `json:"data,omitempty"`
	Salt        string `json:"salt,omitempty"`
}

// New - empty configuration with a single connection list
func New(defaultIdentity string, testnet bool, connections []string) *Configuration {
	return &Configuration{
		DefaultIdentity: defaultIdentity,
		TestNet:         testnet,
		Connections:     connections,
		Capabilities:    make(map[string]string),
		Policies:        make(map[string]*multisig.Policy),
		Identities:      make(map[string]Identity),
	}
}

// Load - read the configuration
func Load(filename string) (*Configuration, error) {

	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return nil, err
	}

	f, err := os.Open(filename)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	config := &Configuration{}
	if err := json.NewDecoder(f).Decode(config); nil != err {
		return nil, err
	}
	if nil == config.Identities {
		config.Identities = make(map[string]Identity)
	}
	if nil == config.Capabilities {
		config.Capabilities = make(map[string]string)
	}
	if nil == config.Policies {
		config.Policies = make(map[string]*multisig.Policy)
	}
	return config, nil
}

// Identity - find identity for a given name
func (config *Configuration) Identity(name string) (*Identity, error) {
	id, ok := config.Identities[name]
	if !ok {
		return nil, fault.IdentityNameNotFound
	}
	return &id, nil
}

// Account - find identity for a given name and convert to an account
func (config *Configuration) Account(name string) (*account.Account, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}
	return account.AccountFromBase58(id.Account)
}

// Private - find identity and decrypt its key
func (config *Configuration) Private(password string, name string) (*Private, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}
	return decryptIdentity(password, id)
}

// AddIdentity - store encrypted identity
func (config *Configuration) AddIdentity(name string, description string, seed string, password string) error {

	if _, ok := config.Identities[name]; ok {
		return fault.IdentityNameAlreadyExists
	}

	private, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return err
	}
	if private.IsTesting() != config.TestNet {
		return fault.WrongNetworkForAccount
	}

	salt, secretKey, err := hashPassword(password)
	if nil != err {
		return err
	}

	encrypted, err := encryptData(seed, secretKey)
	if nil != err {
		return err
	}

	config.Identities[name] = Identity{
		Description: description,
		Account:     private.Account().String(),
		Data:        encrypted,
		Salt:        salt.String(),
	}
	return nil
}

// AddReceiveOnlyIdentity - store public-only identity
//
// multisig addresses are added this way
func (config *Configuration) AddReceiveOnlyIdentity(name string, description string, acc string) error {

	if _, ok := config.Identities[name]; ok {
		return fault.IdentityNameAlreadyExists
	}

	a, err := account.AccountFromBase58(acc)
	if nil != err {
		return err
	}
	if !a.IsMultisig() && a.IsTesting() != config.TestNet {
		return fault.WrongNetworkForAccount
	}

	config.Identities[name] = Identity{
		Description: description,
		Account:     a.String(),
	}
	return nil
}

// SetCapability - remember the capability an identity holds for a service
//
// a blank id forgets it
func (config *Configuration) SetCapability(name string, service string, id string) {
	if nil == config.Capabilities {
		config.Capabilities = make(map[string]string)
	}
	key := capabilityKey(name, service)
	if "" == id {
		delete(config.Capabilities, key)
		return
	}
	config.Capabilities[key] = id
}

// Capability - the remembered capability id of an identity for a service
func (config *Configuration) Capability(name string, service string) (string, bool) {
	id, ok := config.Capabilities[capabilityKey(name, service)]
	return id, ok
}

func capabilityKey(name string, service string) string {
	return name + ":" + service
}

// AddPolicy - remember a multisig policy under a name
//
// the policy address is also added as a receive only identity
func (config *Configuration) AddPolicy(name string, description string, policy *multisig.Policy) error {
	if err := policy.Validate(); nil != err {
		return err
	}
	if _, ok := config.Policies[name]; ok {
		return fault.IdentityNameAlreadyExists
	}
	if err := config.AddReceiveOnlyIdentity(name, description, policy.Address().String()); nil != err {
		return err
	}
	if nil == config.Policies {
		config.Policies = make(map[string]*multisig.Policy)
	}
	config.Policies[name] = policy
	return nil
}

// Policy - find a remembered multisig policy
func (config *Configuration) Policy(name string) (*multisig.Policy, error) {
	policy, ok := config.Policies[name]
	if !ok {
		return nil, fault.IdentityNameNotFound
	}
	return policy, nil
}
