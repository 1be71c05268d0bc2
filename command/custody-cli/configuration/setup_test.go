// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/command/custody-cli/configuration"
	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/multisig"
)

const password = "correct horse battery staple"

func TestAddIdentityAndPrivate(t *testing.T) {
	config := configuration.New("alice", true, []string{"127.0.0.1:2130"})

	seed, err := account.NewBase58Seed(true)
	assert.Nil(t, err, "NewBase58Seed")

	err = config.AddIdentity("alice", "first identity", seed, password)
	assert.Nil(t, err, "AddIdentity")

	err = config.AddIdentity("alice", "again", seed, password)
	assert.Equal(t, fault.IdentityNameAlreadyExists, err, "duplicate name accepted")

	private, err := config.Private(password, "alice")
	assert.Nil(t, err, "Private")
	assert.Equal(t, seed, private.Seed, "wrong seed")
	assert.Equal(t, "first identity", private.Description, "wrong description")

	acc, err := config.Account("alice")
	assert.Nil(t, err, "Account")
	assert.True(t, private.PrivateKey.Account().Equal(acc), "account does not match key")

	_, err = config.Private("wrong password", "alice")
	assert.Equal(t, fault.WrongPassword, err, "wrong password accepted")

	_, err = config.Private(password, "bob")
	assert.Equal(t, fault.IdentityNameNotFound, err, "missing identity found")
}

func TestAddIdentityWrongNetwork(t *testing.T) {
	config := configuration.New("alice", false, nil)

	seed, err := account.NewBase58Seed(true)
	assert.Nil(t, err, "NewBase58Seed")

	err = config.AddIdentity("alice", "test key on live", seed, password)
	assert.Equal(t, fault.WrongNetworkForAccount, err, "test seed accepted on live")
}

func TestAddReceiveOnlyIdentity(t *testing.T) {
	config := configuration.New("alice", true, nil)

	key, err := account.NewPrivateKey(true)
	assert.Nil(t, err, "NewPrivateKey")

	err = config.AddReceiveOnlyIdentity("bob", "receiver", key.Account().String())
	assert.Nil(t, err, "AddReceiveOnlyIdentity")

	_, err = config.Private(password, "bob")
	assert.Equal(t, fault.NotAPrivateKey, err, "receive only identity decrypted")

	other, err := account.NewPrivateKey(true)
	assert.Nil(t, err, "NewPrivateKey")
	policy, err := multisig.NewPolicy([][]byte{key.PublicKeyBytes(), other.PublicKeyBytes()}, []uint8{1, 1}, 2)
	assert.Nil(t, err, "NewPolicy")

	err = config.AddReceiveOnlyIdentity("board", "multisig", policy.Address().String())
	assert.Nil(t, err, "multisig address rejected")

	live, err := account.NewPrivateKey(false)
	assert.Nil(t, err, "NewPrivateKey")
	err = config.AddReceiveOnlyIdentity("carol", "live", live.Account().String())
	assert.Equal(t, fault.WrongNetworkForAccount, err, "live account accepted on test")
}

func TestCapability(t *testing.T) {
	config := configuration.New("alice", true, nil)

	_, ok := config.Capability("alice", "Catalog")
	assert.False(t, ok, "capability present in empty configuration")

	config.SetCapability("alice", "Catalog", "c0ffee")
	id, ok := config.Capability("alice", "Catalog")
	assert.True(t, ok, "capability missing")
	assert.Equal(t, "c0ffee", id, "wrong capability")

	_, ok = config.Capability("bob", "Catalog")
	assert.False(t, ok, "capability shared between identities")
	_, ok = config.Capability("alice", "Ledger")
	assert.False(t, ok, "capability shared between services")

	config.SetCapability("alice", "Catalog", "")
	_, ok = config.Capability("alice", "Catalog")
	assert.False(t, ok, "capability not cleared")
}

func TestAddPolicy(t *testing.T) {
	config := configuration.New("alice", true, nil)

	k1, err := account.NewPrivateKey(true)
	assert.Nil(t, err, "NewPrivateKey")
	k2, err := account.NewPrivateKey(true)
	assert.Nil(t, err, "NewPrivateKey")
	policy, err := multisig.NewPolicy([][]byte{k1.PublicKeyBytes(), k2.PublicKeyBytes()}, []uint8{2, 1}, 2)
	assert.Nil(t, err, "NewPolicy")

	err = config.AddPolicy("board", "two of three", policy)
	assert.Nil(t, err, "AddPolicy")

	found, err := config.Policy("board")
	assert.Nil(t, err, "Policy")
	assert.True(t, policy.Equal(found), "wrong policy")

	acc, err := config.Account("board")
	assert.Nil(t, err, "policy address not added")
	assert.True(t, policy.Address().Equal(acc), "wrong policy address")

	err = config.AddPolicy("board", "again", policy)
	assert.Equal(t, fault.IdentityNameAlreadyExists, err, "duplicate policy accepted")

	_, err = config.Policy("nobody")
	assert.Equal(t, fault.IdentityNameNotFound, err, "missing policy found")
}

func TestSaveAndLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "custody-cli")
	assert.Nil(t, err, "TempDir")
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "testing-custody-cli.json")

	config := configuration.New("alice", true, []string{"127.0.0.1:2130", "127.0.0.1:2131"})
	seed, err := account.NewBase58Seed(true)
	assert.Nil(t, err, "NewBase58Seed")
	assert.Nil(t, config.AddIdentity("alice", "first", seed, password), "AddIdentity")
	config.SetCapability("alice", "Ledger", "beef")

	assert.Nil(t, configuration.Save(file, config), "first Save")
	assert.Nil(t, configuration.Save(file, config), "second Save")

	_, err = os.Stat(file + ".bk")
	assert.Nil(t, err, "backup not kept")
	_, err = os.Stat(file + ".new")
	assert.True(t, os.IsNotExist(err), "temporary file left behind")

	loaded, err := configuration.Load(file)
	assert.Nil(t, err, "Load")
	assert.Equal(t, config, loaded, "configuration differs after reload")

	private, err := loaded.Private(password, "alice")
	assert.Nil(t, err, "Private after reload")
	assert.Equal(t, seed, private.Seed, "wrong seed after reload")
}
