// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"strings"
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/custodyd/util"
)

const (
	heartbeatInterval = 15 * time.Second
	heartbeatTimeout  = 60 * time.Second
	heartbeatTTL      = 120 * time.Second
)

// NewBind - bind a list of addresses
//
// creates up to 2 sockets for separate IPv4 and IPv6 traffic
func NewBind(log *logger.L, socketType zmq.Type, zapDomain string, privateKey []byte, publicKey []byte, listen []string) (*zmq.Socket, *zmq.Socket, error) {

	socket4 := (*zmq.Socket)(nil) // IPv4 traffic
	socket6 := (*zmq.Socket)(nil) // IPv6 traffic

	fail := func(err error) (*zmq.Socket, *zmq.Socket, error) {
		if nil != socket4 {
			socket4.Close()
		}
		if nil != socket6 {
			socket6.Close()
		}
		return nil, nil, err
	}

	for i, address := range listen {
		canonical, err := util.CanonicalIPandPort(address)
		if nil != err {
			log.Errorf("address[%d]: %q  error: %s", i, address, err)
			return fail(err)
		}

		for _, hostPort := range canonical {
			v6 := strings.HasPrefix(hostPort, "[")
			bindTo := "tcp://" + hostPort

			var socket *zmq.Socket
			if v6 {
				if nil == socket6 {
					socket6, err = NewServerSocket(socketType, zapDomain, privateKey, publicKey, v6)
				}
				socket = socket6
			} else {
				if nil == socket4 {
					socket4, err = NewServerSocket(socketType, zapDomain, privateKey, publicKey, v6)
				}
				socket = socket4
			}
			if nil != err {
				return fail(err)
			}

			if err := socket.Bind(bindTo); nil != err {
				log.Errorf("cannot bind[%d]: %q  error: %s", i, bindTo, err)
				return fail(err)
			}
			log.Infof("bind[%d]: %q  IPv6: %t", i, bindTo, v6)
		}
	}
	return socket4, socket6, nil
}

// NewServerSocket - create a socket suitable for a server side connection
func NewServerSocket(socketType zmq.Type, zapDomain string, privateKey []byte, publicKey []byte, v6 bool) (*zmq.Socket, error) {

	socket, err := zmq.NewSocket(socketType)
	if nil != err {
		return nil, err
	}

	// allow any client to connect
	zmq.AuthCurveAdd(zapDomain, zmq.CURVE_ALLOW_ANY)

	// domain is servers public key
	socket.SetCurveServer(1)
	socket.SetCurveSecretkey(string(privateKey))

	socket.SetZapDomain(zapDomain)

	socket.SetIdentity(string(publicKey)) // just use public key for identity

	socket.SetIpv6(v6) // conditionally set IPv6 state

	// heartbeat
	socket.SetHeartbeatIvl(heartbeatInterval)
	socket.SetHeartbeatTimeout(heartbeatTimeout)
	socket.SetHeartbeatTtl(heartbeatTTL)

	return socket, nil
}
