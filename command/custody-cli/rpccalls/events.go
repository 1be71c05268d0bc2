// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/custodyd/rpc/events"
)

// Events - page through the event journal
func (client *Client) Events(start uint64, count int) (*events.ListReply, error) {

	listArgs := events.ListArguments{
		Start: start,
		Count: count,
	}

	reply := &events.ListReply{}
	if err := client.call("Events.List", listArgs, reply); nil != err {
		return nil, err
	}
	return reply, nil
}
