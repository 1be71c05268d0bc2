// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"crypto/tls"
	"fmt"
	"io/ioutil"
	"math/rand"
	"net/rpc/jsonrpc"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/custodyd/chain"
	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/mode"
	"github.com/bitmark-inc/custodyd/rpc"
	"github.com/bitmark-inc/custodyd/rpc/fixtures"
	"github.com/bitmark-inc/custodyd/rpc/listeners"
	"github.com/bitmark-inc/custodyd/rpc/mocks"
	"github.com/bitmark-inc/custodyd/rpc/node"
	"github.com/bitmark-inc/custodyd/rpc/server"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	_ = mode.Initialise(chain.Testing)
	mode.Set(mode.Normal)

	rc := m.Run()

	_ = mode.Finalise()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestInitialiseAndFinalise(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	dir, err := ioutil.TempDir("", "rpc-setup")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	defer os.RemoveAll(dir)

	cert, key := fixtures.Certificate()
	certFile := filepath.Join(dir, "rpc.crt")
	keyFile := filepath.Join(dir, "rpc.key")
	_ = ioutil.WriteFile(certFile, []byte(cert), 0600)
	_ = ioutil.WriteFile(keyFile, []byte(key), 0600)

	listen := fmt.Sprintf("127.0.0.1:%d", rand.Intn(30000)+30000)
	configuration := listeners.RPCConfiguration{
		MaximumConnections: 2,
		Listen:             []string{listen},
		Certificate:        certFile,
		PrivateKey:         keyFile,
	}

	journal := mocks.NewMockJournal(ctl)
	journal.EXPECT().Next().Return(uint64(1)).Times(1)

	handles := server.Handles{
		Catalog:   mocks.NewMockCatalog(ctl),
		Ledger:    mocks.NewMockLedger(ctl),
		Inventory: mocks.NewMockInventory(ctl),
		Journal:   journal,
	}

	err = rpc.Initialise(&configuration, "0.1", handles, fixtures.Verifier())
	if !assert.Nil(t, err, "wrong Initialise") {
		return
	}
	assert.Equal(t, fault.AlreadyInitialised, rpc.Initialise(&configuration, "0.1", handles, fixtures.Verifier()), "wrong second Initialise")

	conn, err := tls.Dial("tcp", listen, &tls.Config{InsecureSkipVerify: true})
	if assert.Nil(t, err, "dial error") {
		client := jsonrpc.NewClient(conn)
		var reply node.InfoReply
		err = client.Call("Node.Info", &node.InfoArguments{}, &reply)
		assert.Nil(t, err, "wrong Node.Info")
		assert.Equal(t, "0.1", reply.Version, "wrong version")
		client.Close()
	}

	assert.Nil(t, rpc.Finalise(), "wrong Finalise")
	assert.Equal(t, fault.NotInitialised, rpc.Finalise(), "wrong second Finalise")
}

func TestInitialiseMissingCertificate(t *testing.T) {
	configuration := listeners.RPCConfiguration{
		MaximumConnections: 2,
		Listen:             []string{"127.0.0.1:0"},
		Certificate:        "/nonexistent/rpc.crt",
		PrivateKey:         "/nonexistent/rpc.key",
	}
	err := rpc.Initialise(&configuration, "0.1", server.Handles{}, fixtures.Verifier())
	assert.Equal(t, fault.CertificateFileNotFound, err, "wrong missing certificate")
}
