// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/custodyd/event"
	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/messagebus"
)

func TestFrames(t *testing.T) {
	r := event.Record{
		Sequence: 42,
		Type:     event.StakedType,
		Event:    json.RawMessage(`{"tokenId":"1001"}`),
	}

	command, data, err := frames(messagebus.Message{From: "journal", Item: r})
	assert.Nil(t, err, "frames")
	assert.Equal(t, event.StakedType, command, "command")

	var decoded event.Record
	assert.Nil(t, json.Unmarshal(data, &decoded), "decode")
	assert.Equal(t, uint64(42), decoded.Sequence, "sequence")
	assert.JSONEq(t, `{"tokenId":"1001"}`, string(decoded.Event), "event")

	_, _, err = frames(messagebus.Message{From: "other", Item: "text"})
	assert.Equal(t, fault.UnknownEventType, err, "not a record")
}

func TestFinaliseBeforeInitialise(t *testing.T) {
	assert.Equal(t, fault.NotInitialised, Finalise(), "finalise")
}
