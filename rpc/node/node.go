// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/custodyd/counter"
	"github.com/bitmark-inc/custodyd/event"
	"github.com/bitmark-inc/custodyd/mode"
	"github.com/bitmark-inc/custodyd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Journal event.Reader
	counter *counter.Counter
}

// New - create the Node service
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, journal event.Reader) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Journal: journal,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain     string `json:"chain"`
	Mode      string `json:"mode"`
	RPCs      uint64 `json:"rpcs"`
	NextEvent uint64 `json:"nextEvent,string"`
	Version   string `json:"version"`
	Uptime    string `json:"uptime"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = mode.ChainName()
	reply.Mode = mode.String()
	reply.RPCs = node.counter.Uint64()
	reply.NextEvent = node.Journal.Next()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
