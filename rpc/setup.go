// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON RPC over TLS for clients of the catalog and ledger
package rpc

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/custodyd/counter"
	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/rpc/auth"
	"github.com/bitmark-inc/custodyd/rpc/certificate"
	"github.com/bitmark-inc/custodyd/rpc/listeners"
	"github.com/bitmark-inc/custodyd/rpc/server"
)

const (
	tlsName = "client_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listener listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// number of active client connections
var connectionCountRPC counter.Counter

// Initialise - start serving client connections
func Initialise(configuration *listeners.RPCConfiguration, version string, handles server.Handles, verifier *auth.Verifier) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, fingerprint, err := certificate.Load(log, tlsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		log.Errorf("%s: certificate error: %s", tlsName, err)
		return err
	}
	log.Infof("%s: SHA3-256 fingerprint: %x", tlsName, fingerprint)

	s, err := server.Create(log, version, &connectionCountRPC, handles, verifier)
	if nil != err {
		return err
	}

	listener, err := listeners.NewRPC(configuration, log, &connectionCountRPC, s, tlsConfig)
	if nil != err {
		return err
	}
	if err := listener.Serve(); nil != err {
		return err
	}
	globalData.listener = listener

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop accepting connections
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.listener.Stop()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
