// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/custodyd/catalog"
	"github.com/bitmark-inc/custodyd/counter"
	"github.com/bitmark-inc/custodyd/event"
	"github.com/bitmark-inc/custodyd/ledger"
	"github.com/bitmark-inc/custodyd/ownership"
	"github.com/bitmark-inc/custodyd/rpc/assets"
	"github.com/bitmark-inc/custodyd/rpc/auth"
	"github.com/bitmark-inc/custodyd/rpc/catalogue"
	"github.com/bitmark-inc/custodyd/rpc/events"
	"github.com/bitmark-inc/custodyd/rpc/node"
	"github.com/bitmark-inc/custodyd/rpc/staking"
)

// Handles - the subsystems served over RPC
type Handles struct {
	Catalog   catalog.Handle
	Ledger    ledger.Handle
	Inventory ownership.Lister
	Journal   event.Reader
}

// Create - an RPC server with all services registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, handles Handles, verifier *auth.Verifier) (*rpc.Server, error) {

	start := time.Now().UTC()

	server := rpc.NewServer()

	services := []struct {
		name     string
		receiver interface{}
	}{
		{catalogue.ServiceName, catalogue.New(log, handles.Catalog, verifier)},
		{staking.ServiceName, staking.New(log, handles.Ledger, verifier)},
		{"Assets", assets.New(log, handles.Catalog, handles.Ledger, handles.Inventory, verifier)},
		{"Events", events.New(log, handles.Journal)},
		{"Node", node.New(log, start, version, rpcCount, handles.Journal)},
	}
	for _, s := range services {
		if err := server.RegisterName(s.name, s.receiver); nil != err {
			log.Errorf("register: %s  error: %s", s.name, err)
			return nil, err
		}
	}

	return server, nil
}
