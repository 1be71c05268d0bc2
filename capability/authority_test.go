// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package capability_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/capability"
	"github.com/bitmark-inc/custodyd/event"
	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/storage"
)

func newAccount(t *testing.T) *account.Account {
	k, err := account.NewPrivateKey(true)
	if nil != err {
		t.Fatalf("new private key error: %s", err)
	}
	return k.Account()
}

// run one staged operation to completion
func commit(t *testing.T, trx storage.Transaction, apply func()) {
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
	apply()
	trx.End()
}

func setupAuthority(t *testing.T, instance uuid.UUID) (*storage.DB, *capability.Authority, *capability.Capability, *account.Account) {
	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("open error: %s", err)
	}

	admin := newAccount(t)
	a := capability.New(db.Capabilities, capability.LedgerKind, instance)

	trx := db.Begin()
	c, e, apply, err := a.Initialise(trx, admin)
	if nil != err {
		t.Fatalf("initialise error: %s", err)
	}
	commit(t, trx, apply)

	assert.Equal(t, event.Created, e.Action, "initialise action")
	assert.True(t, admin.Equal(e.Recipient), "initialise recipient")
	assert.Equal(t, c.Id().String(), e.CapId, "initialise cap id")

	return db, a, c, admin
}

func TestInitialise(t *testing.T) {
	instance := uuid.New()
	db, a, c, admin := setupAuthority(t, instance)
	defer db.Close()

	assert.Equal(t, 1, a.Count(), "count")
	assert.Nil(t, a.Verify(c, admin), "verify")
	assert.Equal(t, instance, c.Instance(), "bound instance")

	trx := db.Begin()
	_, _, _, err := a.Initialise(trx, admin)
	trx.End()
	assert.Equal(t, fault.AlreadyInitialised, err, "second initialise")
}

func TestVerify(t *testing.T) {
	db, a, c, admin := setupAuthority(t, uuid.New())
	defer db.Close()

	other := newAccount(t)
	assert.Equal(t, fault.InvalidCapability, a.Verify(c, other), "wrong holder")
	assert.Equal(t, fault.InvalidCapability, a.Verify(nil, admin), "nil capability")

	forged := *c
	assert.Equal(t, fault.InvalidCapability, a.Verify(&forged, admin), "copied capability")
	assert.Equal(t, fault.InvalidCapability, a.Verify(&capability.Capability{}, admin), "zero capability")

	// capability from another ledger
	db2, _, c2, admin2 := setupAuthority(t, uuid.New())
	defer db2.Close()
	assert.Equal(t, fault.WrongInstance, a.Verify(c2, admin2), "wrong instance")
}

func TestLastCapability(t *testing.T) {
	db, a, c, admin := setupAuthority(t, uuid.Nil)
	defer db.Close()

	trx := db.Begin()
	_, _, err := a.Remove(trx, c, admin)
	trx.End()
	assert.Equal(t, fault.LastCapability, err, "remove last")
	assert.Equal(t, 1, a.Count(), "count after failed remove")

	second := newAccount(t)
	trx = db.Begin()
	c2, e, apply, err := a.Add(trx, c, admin, second)
	if !assert.Nil(t, err, "add") {
		trx.End()
		return
	}
	commit(t, trx, apply)
	assert.Equal(t, 2, a.Count(), "count after add")
	assert.True(t, second.Equal(e.Recipient), "add recipient")
	assert.True(t, admin.Equal(e.Actor), "add actor")
	assert.Nil(t, a.Verify(c2, second), "verify added")

	// remove own capability
	trx = db.Begin()
	e, apply, err = a.Remove(trx, c, admin)
	if !assert.Nil(t, err, "remove") {
		trx.End()
		return
	}
	commit(t, trx, apply)
	assert.Equal(t, event.Removed, e.Action, "remove action")
	assert.Nil(t, e.Recipient, "remove recipient")
	assert.Equal(t, 1, a.Count(), "count after remove")
	assert.Equal(t, fault.InvalidCapability, a.Verify(c, admin), "removed capability still valid")

	trx = db.Begin()
	_, _, err = a.Remove(trx, c2, second)
	trx.End()
	assert.Equal(t, fault.LastCapability, err, "remove new last")
}

func TestAbortedAdd(t *testing.T) {
	db, a, c, admin := setupAuthority(t, uuid.Nil)
	defer db.Close()

	trx := db.Begin()
	_, _, _, err := a.Add(trx, c, admin, newAccount(t))
	assert.Nil(t, err, "add")
	trx.End()

	assert.Equal(t, 1, a.Count(), "aborted add counted")
	restored, err := capability.Restore(db.Capabilities, capability.LedgerKind, uuid.Nil)
	assert.Nil(t, err, "restore")
	assert.Equal(t, 1, restored.Count(), "aborted add stored")
}

func TestTransfer(t *testing.T) {
	instance := uuid.New()
	db, a, c, admin := setupAuthority(t, instance)
	defer db.Close()

	to := newAccount(t)
	trx := db.Begin()
	moved, e, apply, err := a.Transfer(trx, c, admin, to)
	if !assert.Nil(t, err, "transfer") {
		trx.End()
		return
	}
	commit(t, trx, apply)

	assert.Equal(t, event.Transferred, e.Action, "action")
	assert.Equal(t, c.Id(), moved.Id(), "id changed")
	assert.Equal(t, fault.InvalidCapability, a.Verify(c, admin), "old holder still valid")
	assert.Nil(t, a.Verify(moved, to), "new holder")
	assert.Equal(t, 1, a.Count(), "count")

	held := a.HeldBy(to)
	assert.Equal(t, 1, len(held), "held by new holder")

	restored, err := capability.Restore(db.Capabilities, capability.LedgerKind, instance)
	assert.Nil(t, err, "restore")
	found, err := restored.Lookup(c.Id())
	assert.Nil(t, err, "lookup")
	assert.True(t, to.Equal(found.Holder()), "restored holder")
	assert.Nil(t, restored.Verify(found, to), "restored verify")
}

func TestRestoreSeparatesAuthorities(t *testing.T) {
	db, _, _, _ := setupAuthority(t, uuid.New())
	defer db.Close()

	_, err := capability.Restore(db.Capabilities, capability.CatalogKind, uuid.Nil)
	assert.Equal(t, fault.NotInitialised, err, "catalog restored ledger capabilities")
}

func TestCapabilityJSON(t *testing.T) {
	db, _, c, _ := setupAuthority(t, uuid.Nil)
	defer db.Close()

	buffer, err := json.Marshal(c)
	assert.Nil(t, err, "marshal")

	var v map[string]interface{}
	assert.Nil(t, json.Unmarshal(buffer, &v), "unmarshal")
	assert.Equal(t, "ledger", v["kind"], "kind")
	assert.Equal(t, c.Id().String(), v["id"], "id")
	_, hasInstance := v["instance"]
	assert.False(t, hasInstance, "unbound capability shows instance")
}

func TestDecodedCapabilityDoesNotAuthorise(t *testing.T) {
	instance := uuid.New()
	db, a, c, admin := setupAuthority(t, instance)
	defer db.Close()

	buffer, err := json.Marshal(c)
	assert.Nil(t, err, "marshal")

	var decoded capability.Capability
	assert.Nil(t, json.Unmarshal(buffer, &decoded), "unmarshal")
	assert.Equal(t, c.Id(), decoded.Id(), "id")
	assert.Equal(t, capability.LedgerKind, decoded.Kind(), "kind")
	assert.Equal(t, instance, decoded.Instance(), "instance")
	assert.True(t, admin.Equal(decoded.Holder()), "holder")

	assert.Equal(t, fault.InvalidCapability, a.Verify(&decoded, admin), "copy accepted")

	err = json.Unmarshal([]byte(`{"id":"`+uuid.New().String()+`","kind":"wallet"}`), &decoded)
	assert.Equal(t, fault.UnknownCapabilityKind, err, "unknown kind decoded")
}
