// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/custodyd/counter"
	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/util"
)

const (
	logName            = "client_rpc"
	minConnectionCount = 1
)

// Listener - a server accepting connections
type Listener interface {
	Serve() error
	Stop()
}

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

type rpcListener struct {
	sync.Mutex
	log             *logger.L
	count           *counter.Counter
	server          *rpc.Server
	maxConnections  uint64
	tlsConfig       *tls.Config
	ipType          []string
	listenIPAndPort []string
	listeners       []net.Listener
}

// NewRPC - validate the configuration and create a TLS JSON-RPC listener
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.MissingParameters
	}

	r := &rpcListener{
		log:            log,
		maxConnections: configuration.MaximumConnections,
		server:         server,
		count:          count,
		tlsConfig:      tlsConfig,
	}

	for _, listen := range configuration.Listen {
		addresses, err := util.CanonicalIPandPort(listen)
		if nil != err {
			log.Errorf("invalid %s listen: %q  error: %s", logName, listen, err)
			return nil, err
		}
		for _, address := range addresses {
			r.listenIPAndPort = append(r.listenIPAndPort, address)
			r.ipType = append(r.ipType, networkFor(address))
		}
	}

	return r, nil
}

// "[" prefix marks an IPv6 address
func networkFor(address string) string {
	if strings.HasPrefix(address, "[") {
		return "tcp6"
	}
	return "tcp4"
}

// Serve - start accepting on every configured address
func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for i, listen := range r.listenIPAndPort {
		r.log.Infof("starting RPC server: %s", listen)
		listener, err := tls.Listen(r.ipType[i], listen, r.tlsConfig)
		if nil != err {
			r.log.Errorf("rpc server listen error: %s", err)
			return err
		}
		r.listeners = append(r.listeners, listener)

		go doServeRPC(listener, r.server, r.maxConnections, r.log, r.count)
	}
	return nil
}

// Stop - close all listening sockets
//
// connections already accepted run to completion
func (r *rpcListener) Stop() {
	r.Lock()
	defer r.Unlock()

	for _, listener := range r.listeners {
		_ = listener.Close()
	}
	r.listeners = nil
}

func doServeRPC(listen net.Listener, server *rpc.Server, maximumConnections uint64, log *logger.L, count *counter.Counter) {
	for {
		conn, err := listen.Accept()
		if nil != err {
			log.Infof("rpc accept terminated: %s", err)
			break
		}
		if !count.IncrementBelow(maximumConnections) {
			log.Warnf("rpc connection limit: %d reached", maximumConnections)
			_ = conn.Close()
			continue
		}
		go func() {
			server.ServeCodec(jsonrpc.NewServerCodec(conn))
			_ = conn.Close()
			count.Decrement()
		}()
	}
	_ = listen.Close()
}
