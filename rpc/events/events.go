// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package events

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/custodyd/event"
	"github.com/bitmark-inc/custodyd/rpc/ratelimit"
)

const (
	maximumEvents   = 100
	rateLimitEvents = 200
	rateBurstEvents = 100
)

// Events - type for the RPC
type Events struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Journal event.Reader
}

// New - create the Events service
func New(log *logger.L, journal event.Reader) *Events {
	return &Events{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitEvents, rateBurstEvents),
		Journal: journal,
	}
}

// ListArguments - arguments for RPC request
type ListArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// ListReply - results from RPC request
type ListReply struct {
	Events    []event.Record `json:"events"`
	NextStart uint64         `json:"nextStart,string"`
}

// List - page through the journal in sequence order
func (e *Events) List(arguments *ListArguments, reply *ListReply) error {
	if err := ratelimit.LimitN(e.Limiter, arguments.Count, maximumEvents); nil != err {
		return err
	}

	records, next, err := e.Journal.Fetch(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Events = records
	reply.NextStart = next
	return nil
}
