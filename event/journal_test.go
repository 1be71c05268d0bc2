// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/asset"
	"github.com/bitmark-inc/custodyd/event"
	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/messagebus"
	"github.com/bitmark-inc/custodyd/storage"
)

func TestJournal(t *testing.T) {
	db, err := storage.OpenMemory()
	if !assert.Nil(t, err, "open") {
		return
	}
	defer db.Close()

	bus := messagebus.New(10)
	j, err := event.NewJournal(db.Events, bus)
	if !assert.Nil(t, err, "new journal") {
		return
	}
	assert.Equal(t, uint64(1), j.Next(), "initial sequence")

	holder, _ := account.AccountFromBase58("anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj")
	staked := event.Staked{
		Holder:    holder,
		AssetId:   asset.NewIdentifier(),
		TokenId:   1001,
		Timestamp: 1577836800000,
	}

	// aborted batch leaves no trace
	trx := db.Begin()
	b := j.Begin(trx)
	assert.Nil(t, b.Add(staked), "add")
	trx.End()
	assert.Equal(t, uint64(1), j.Next(), "sequence after abort")

	trx = db.Begin()
	b = j.Begin(trx)
	assert.Nil(t, b.Add(staked), "add")
	assert.Nil(t, b.Add(event.PauseStateChanged{Subsystem: "ledger", IsPaused: true, Actor: holder}), "add")
	assert.Nil(t, trx.Commit(), "commit")
	b.Done()
	trx.End()

	assert.Equal(t, uint64(3), j.Next(), "sequence after commit")

	m := <-bus.Chan()
	r := m.Item.(event.Record)
	assert.Equal(t, uint64(1), r.Sequence, "first forwarded")
	item, err := r.Decode()
	assert.Nil(t, err, "decode")
	decoded := item.(*event.Staked)
	assert.True(t, holder.Equal(decoded.Holder), "holder")
	assert.Equal(t, staked.AssetId, decoded.AssetId, "asset id")
	assert.Equal(t, staked.Timestamp, decoded.Timestamp, "timestamp")

	records, next, err := j.Fetch(1, 10)
	assert.Nil(t, err, "fetch")
	assert.Equal(t, 2, len(records), "record count")
	assert.Equal(t, uint64(3), next, "next")
	assert.Equal(t, event.PauseStateChangedType, records[1].Type, "second type")

	records, next, err = j.Fetch(2, 1)
	assert.Nil(t, err, "fetch")
	assert.Equal(t, 1, len(records), "single record")
	assert.Equal(t, uint64(3), next, "next")

	_, _, err = j.Fetch(1, 0)
	assert.Equal(t, fault.InvalidCount, err, "zero count")

	// reopen continues the sequence
	reopened, err := event.NewJournal(db.Events, nil)
	assert.Nil(t, err, "reopen")
	assert.Equal(t, uint64(3), reopened.Next(), "restored sequence")
}

func TestDecodeUnknown(t *testing.T) {
	_, err := event.Record{Type: "nothing", Event: []byte("{}")}.Decode()
	assert.Equal(t, fault.UnknownEventType, err, "unknown type")
}
