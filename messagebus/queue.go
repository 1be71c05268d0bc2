// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"github.com/bitmark-inc/custodyd/counter"
)

// internal constants
const (
	defaultQueueSize = 1000
)

// Message - an item on the queue
type Message struct {
	From string
	Item interface{}
}

// Queue - buffered message queue
//
// Send never blocks, when the buffer is full the message is
// dropped and counted
type Queue struct {
	queue   chan Message
	dropped counter.Counter
}

// New - create a queue, size <= 0 selects the default
func New(size int) *Queue {
	if size <= 0 {
		size = defaultQueueSize
	}
	return &Queue{
		queue: make(chan Message, size),
	}
}

// Send - data to queue
func (q *Queue) Send(from string, item interface{}) bool {
	select {
	case q.queue <- Message{
		From: from,
		Item: item,
	}:
		return true
	default:
		q.dropped.Increment()
		return false
	}
}

// Chan - channel to read from
func (q *Queue) Chan() <-chan Message {
	return q.queue
}

// Dropped - number of messages discarded because the queue was full
func (q *Queue) Dropped() uint64 {
	return q.dropped.Uint64()
}
