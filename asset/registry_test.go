// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/custodyd/asset"
	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/storage"
)

func TestRegistry(t *testing.T) {
	db, err := storage.OpenMemory()
	if !assert.Nil(t, err, "open") {
		return
	}
	defer db.Close()

	r, err := asset.NewRegistry(db.Identifiers)
	if !assert.Nil(t, err, "new registry") {
		return
	}

	id := asset.NewIdentifier()

	trx := db.Begin()
	apply, err := r.Register(trx, 1001, id)
	assert.Nil(t, err, "register")

	// same transaction sees the staged id
	_, err = r.Register(trx, 1001, asset.NewIdentifier())
	assert.Equal(t, fault.DuplicateIdentifier, err, "staged duplicate")

	assert.Nil(t, trx.Commit(), "commit")
	apply()
	trx.End()

	assert.True(t, r.Has(1001), "registered")
	assert.Equal(t, fault.DuplicateIdentifier, r.Check(1001), "duplicate")
	assert.Nil(t, r.Check(1002), "unused id")
	assert.Equal(t, 1, r.Count(), "count")

	// restore from storage
	restored, err := asset.NewRegistry(db.Identifiers)
	assert.Nil(t, err, "restore")
	found, ok := restored.Lookup(1001)
	assert.True(t, ok, "restored id")
	assert.Equal(t, id, found, "restored asset id")
}

func TestRegistryAbort(t *testing.T) {
	db, err := storage.OpenMemory()
	if !assert.Nil(t, err, "open") {
		return
	}
	defer db.Close()

	r, _ := asset.NewRegistry(db.Identifiers)

	trx := db.Begin()
	_, err = r.Register(trx, 0xffffffffffffffff, asset.NewIdentifier())
	assert.Nil(t, err, "register")
	trx.End()

	assert.False(t, r.Has(0xffffffffffffffff), "aborted registration kept")
	assert.Nil(t, db.Identifiers.Get(storage.Uint64Key(0xffffffffffffffff)), "aborted registration stored")
}
