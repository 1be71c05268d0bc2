// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	testnet bool
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a custodyd
func NewClient(testnet bool, connect string, verbose bool, handle io.Writer) (*Client, error) {

	// daemons use self-signed certificates
	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if nil != err {
		return nil, err
	}

	return newClient(conn, testnet, verbose, handle), nil
}

func newClient(conn net.Conn, testnet bool, verbose bool, handle io.Writer) *Client {
	return &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		testnet: testnet,
		verbose: verbose,
		handle:  handle,
	}
}

// Close - shutdown the custodyd connection
func (client *Client) Close() {
	client.client.Close()
	client.conn.Close()
}

// call a method showing request and reply when verbose
func (client *Client) call(method string, arguments interface{}, reply interface{}) error {
	client.printJson(method+" Request", arguments)

	if err := client.client.Call(method, arguments, reply); nil != err {
		return err
	}

	client.printJson(method+" Reply", reply)
	return nil
}

func (client *Client) printJson(title string, message interface{}) {

	if !client.verbose {
		return
	}

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(client.handle, "%s: %s\n", title, err)
		return
	}
	fmt.Fprintf(client.handle, "%s:\n%s\n", title, b)
}
