// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/custodyd/messagebus"
)

func TestQueue(t *testing.T) {
	q := messagebus.New(3)

	items := []string{"c1", "c2", "c3"}
	for _, item := range items {
		assert.True(t, q.Send("journal", item), "send: %s", item)
	}

	assert.False(t, q.Send("journal", "overflow"), "full queue accepted")
	assert.Equal(t, uint64(1), q.Dropped(), "dropped count")

	queue := q.Chan()
	for _, item := range items {
		received := <-queue
		assert.Equal(t, "journal", received.From, "from")
		assert.Equal(t, item, received.Item, "item")
	}
}
