// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/custodyd/rpc/node"
)

// NodeInfo - request status from custodyd
func (client *Client) NodeInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := client.call("Node.Info", node.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// NodeInfoCompat - request status from custodyd of any version
func (client *Client) NodeInfoCompat() (map[string]interface{}, error) {
	var reply map[string]interface{}
	if err := client.call("Node.Info", node.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return reply, nil
}
