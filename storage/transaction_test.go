// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/storage"
)

func TestCommitVisibility(t *testing.T) {
	db, err := storage.OpenMemory()
	if !assert.Nil(t, err, "open") {
		return
	}
	defer db.Close()

	key := []byte("key-one")

	trx := db.Begin()
	trx.Put(db.Assets, key, []byte("data-one"))
	assert.Equal(t, []byte("data-one"), trx.Get(db.Assets, key), "staged value not visible to transaction")
	assert.Nil(t, db.Assets.Get(key), "staged value visible outside transaction")

	assert.Nil(t, trx.Commit(), "commit")
	assert.Equal(t, fault.TransactionEnded, trx.Commit(), "second commit")
	trx.End()
	trx.End()

	assert.Equal(t, []byte("data-one"), db.Assets.Get(key), "committed value")
	assert.Nil(t, db.Identifiers.Get(key), "value leaked to another pool")
}

func TestAbortDiscards(t *testing.T) {
	db, err := storage.OpenMemory()
	if !assert.Nil(t, err, "open") {
		return
	}
	defer db.Close()

	populate(t, db, db.Assets, makeElements([]stringElement{{"keep", "original"}}))

	trx := db.Begin()
	trx.Put(db.Assets, []byte("new"), []byte("value"))
	trx.Delete(db.Assets, []byte("keep"))
	assert.False(t, trx.Has(db.Assets, []byte("keep")), "staged delete not visible")
	trx.End()

	assert.Nil(t, db.Assets.Get([]byte("new")), "aborted put persisted")
	assert.Equal(t, []byte("original"), db.Assets.Get([]byte("keep")), "aborted delete persisted")
}

func TestDeleteAfterCache(t *testing.T) {
	db, err := storage.OpenMemory()
	if !assert.Nil(t, err, "open") {
		return
	}
	defer db.Close()

	key := []byte("cached")
	populate(t, db, db.Capabilities, makeElements([]stringElement{{"cached", "v"}}))
	assert.True(t, db.Capabilities.Has(key), "present")

	trx := db.Begin()
	trx.Delete(db.Capabilities, key)
	assert.Nil(t, trx.Commit(), "commit")
	trx.End()

	assert.False(t, db.Capabilities.Has(key), "deleted value still cached")
}

func TestNumericValues(t *testing.T) {
	db, err := storage.OpenMemory()
	if !assert.Nil(t, err, "open") {
		return
	}
	defer db.Close()

	trx := db.Begin()
	trx.PutN(db.StakeIndex, []byte("asset"), 1234)
	n, found := trx.GetN(db.StakeIndex, []byte("asset"))
	assert.True(t, found, "staged")
	assert.Equal(t, uint64(1234), n, "staged value")
	assert.Nil(t, trx.Commit(), "commit")
	trx.End()

	n, found = db.StakeIndex.GetN([]byte("asset"))
	assert.True(t, found, "committed")
	assert.Equal(t, uint64(1234), n, "committed value")

	_, found = db.StakeIndex.GetN([]byte("missing"))
	assert.False(t, found, "missing")
}

func TestSingleWriter(t *testing.T) {
	db, err := storage.OpenMemory()
	if !assert.Nil(t, err, "open") {
		return
	}
	defer db.Close()

	first := db.Begin()

	started := make(chan struct{})
	done := make(chan struct{})
	go func() {
		close(started)
		second := db.Begin()
		second.End()
		close(done)
	}()

	<-started
	select {
	case <-done:
		t.Fatal("second transaction began while first active")
	case <-time.After(50 * time.Millisecond):
	}

	first.End()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second transaction never began")
	}
}
