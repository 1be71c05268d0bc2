// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/asset"
	"github.com/bitmark-inc/custodyd/capability"
	"github.com/bitmark-inc/custodyd/catalog"
	"github.com/bitmark-inc/custodyd/event"
	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/ledger"
	"github.com/bitmark-inc/custodyd/ownership"
	"github.com/bitmark-inc/custodyd/storage"
)

// 2020-01-01T00:00:00Z
const testTime = 1577836800000

func testClock() time.Time {
	return time.Unix(0, testTime*int64(time.Millisecond))
}

type fixture struct {
	db         *storage.DB
	journal    *event.Journal
	inventory  *ownership.Inventory
	catalog    *catalog.Catalog
	catalogCap *capability.Capability
	ledger     *ledger.Ledger
	ledgerCap  *capability.Capability
	admin      *account.Account
	nextToken  uint64
}

func newAccount(t *testing.T) *account.Account {
	k, err := account.NewPrivateKey(true)
	if nil != err {
		t.Fatalf("new private key error: %s", err)
	}
	return k.Account()
}

func setup(t *testing.T, options ledger.Options) *fixture {
	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("open error: %s", err)
	}
	journal, err := event.NewJournal(db.Events, nil)
	if nil != err {
		t.Fatalf("journal error: %s", err)
	}
	registry, err := asset.NewRegistry(db.Identifiers)
	if nil != err {
		t.Fatalf("registry error: %s", err)
	}
	inventory, err := ownership.New(db.Assets)
	if nil != err {
		t.Fatalf("inventory error: %s", err)
	}

	admin := newAccount(t)
	catalogCap, cat, err := catalog.Initialise(catalog.Collaborators{
		DB:        db,
		Journal:   journal,
		Registry:  registry,
		Inventory: inventory,
	}, admin, catalog.Options{})
	if nil != err {
		t.Fatalf("catalog error: %s", err)
	}

	if nil == options.Clock {
		options.Clock = testClock
	}
	ledgerCap, l, err := ledger.Initialise(ledger.Collaborators{
		DB:        db,
		Journal:   journal,
		Inventory: inventory,
	}, admin, options)
	if nil != err {
		t.Fatalf("ledger error: %s", err)
	}

	return &fixture{
		db:         db,
		journal:    journal,
		inventory:  inventory,
		catalog:    cat,
		catalogCap: catalogCap,
		ledger:     l,
		ledgerCap:  ledgerCap,
		admin:      admin,
		nextToken:  1001,
	}
}

// mint n assets to the recipient
func (f *fixture) mint(t *testing.T, recipient *account.Account, n int) []asset.Identifier {
	ids := make([]asset.Identifier, n)
	for i := range ids {
		a, err := f.catalog.Mint(f.admin, f.catalogCap, catalog.MintArguments{
			TokenId:   f.nextToken,
			Name:      "card",
			Recipient: recipient,
		})
		if nil != err {
			t.Fatalf("mint error: %s", err)
		}
		f.nextToken += 1
		ids[i] = a.Id
	}
	return ids
}

func (f *fixture) restore(t *testing.T) *ledger.Ledger {
	inventory, err := ownership.New(f.db.Assets)
	if nil != err {
		t.Fatalf("inventory error: %s", err)
	}
	l, err := ledger.Restore(ledger.Collaborators{
		DB:        f.db,
		Journal:   f.journal,
		Inventory: inventory,
	}, ledger.Options{Clock: testClock})
	if nil != err {
		t.Fatalf("restore error: %s", err)
	}
	return l
}

func TestInitialise(t *testing.T) {
	f := setup(t, ledger.Options{})
	defer f.db.Close()

	assert.Equal(t, uint64(ledger.DefaultMaximumPerHolder), f.ledger.MaximumPerHolder(), "default maximum")
	assert.Equal(t, f.ledger.Id(), f.ledgerCap.Instance(), "bound capability")
	assert.Equal(t, capability.LedgerKind, f.ledgerCap.Kind(), "kind")
	assert.False(t, f.ledger.IsPaused(), "paused")
	assert.Equal(t, 1, f.ledger.CapabilityCount(), "capabilities")

	_, _, err := ledger.Initialise(ledger.Collaborators{DB: f.db, Journal: f.journal, Inventory: f.inventory}, f.admin, ledger.Options{})
	assert.Equal(t, fault.AlreadyInitialised, err, "second initialise")
}

func TestStakeUnstakeRoundTrip(t *testing.T) {
	f := setup(t, ledger.Options{})
	defer f.db.Close()

	u1 := newAccount(t)
	ids := f.mint(t, u1, 1)

	records, err := f.ledger.Stake(u1, ids)
	if !assert.Nil(t, err, "stake") {
		return
	}
	assert.Equal(t, 1, len(records), "records")
	assert.Equal(t, uint64(1001), records[0].TokenId, "token id")
	assert.Equal(t, uint64(testTime), records[0].Timestamp, "timestamp")

	assert.Equal(t, 1, f.ledger.StakeCount(u1), "count after stake")
	_, err = f.inventory.Owner(ids[0])
	assert.Equal(t, fault.AssetNotFound, err, "staked asset still free")

	holder, timestamp, err := f.ledger.StakeInfo(ids[0])
	assert.Nil(t, err, "stake info")
	assert.True(t, u1.Equal(holder), "holder")
	assert.Equal(t, uint64(testTime), timestamp, "timestamp")

	all := f.ledger.AllStakes()
	if assert.Equal(t, 1, len(all), "all stakes") {
		assert.Equal(t, ids[0], all[0].AssetId, "asset id")
		assert.True(t, u1.Equal(all[0].Holder), "holder")
		assert.Equal(t, "card", all[0].Asset().Name, "escrowed asset")
	}

	_, err = f.ledger.Unstake(u1, ids)
	if !assert.Nil(t, err, "unstake") {
		return
	}
	assert.Equal(t, 0, f.ledger.StakeCount(u1), "count after unstake")
	assert.Equal(t, 0, len(f.ledger.HolderStakes(u1)), "holder stakes after unstake")

	owner, err := f.inventory.Owner(ids[0])
	assert.Nil(t, err, "owner")
	assert.True(t, u1.Equal(owner), "returned to holder")

	_, _, err = f.ledger.StakeInfo(ids[0])
	assert.Equal(t, fault.NotStaked, err, "stake info after unstake")
	assert.Nil(t, f.ledger.Check(), "check")

	events, _, err := f.journal.Fetch(f.journal.Next()-2, 2)
	if assert.Nil(t, err, "fetch") && assert.Equal(t, 2, len(events), "events") {
		assert.Equal(t, event.StakedType, events[0].Type, "staked event")
		assert.Equal(t, event.UnstakedType, events[1].Type, "unstaked event")
	}
}

func TestMaximumExceeded(t *testing.T) {
	f := setup(t, ledger.Options{MaximumPerHolder: 25})
	defer f.db.Close()

	u1 := newAccount(t)
	ids := f.mint(t, u1, 26)
	next := f.journal.Next()

	_, err := f.ledger.Stake(u1, ids)
	assert.Equal(t, fault.MaxStakeExceeded, err, "stake 26")
	assert.Equal(t, 0, f.ledger.StakeCount(u1), "count")
	assert.Equal(t, 0, f.ledger.TotalStakes(), "total")
	assert.Equal(t, 26, len(f.inventory.ListFor(u1)), "assets escrowed")
	assert.Equal(t, next, f.journal.Next(), "events emitted")

	_, err = f.ledger.Stake(u1, ids[:25])
	assert.Nil(t, err, "stake 25")
	assert.Equal(t, 25, f.ledger.StakeCount(u1), "count after 25")

	_, err = f.ledger.Stake(u1, ids[25:])
	assert.Equal(t, fault.MaxStakeExceeded, err, "stake 26th")
	assert.Nil(t, f.ledger.Check(), "check")
}

func TestStakeValidation(t *testing.T) {
	f := setup(t, ledger.Options{})
	defer f.db.Close()

	u1 := newAccount(t)
	u2 := newAccount(t)
	ids := f.mint(t, u1, 2)

	_, err := f.ledger.Stake(u1, nil)
	assert.Equal(t, fault.EmptyBatch, err, "empty")

	_, err = f.ledger.Stake(u1, []asset.Identifier{ids[0], ids[0]})
	assert.Equal(t, fault.DuplicateAsset, err, "duplicate")

	_, err = f.ledger.Stake(u2, ids)
	assert.Equal(t, fault.NotAssetOwner, err, "not owner")

	_, err = f.ledger.Stake(u1, []asset.Identifier{ids[0], asset.NewIdentifier()})
	assert.Equal(t, fault.AssetNotFound, err, "unknown asset")
	assert.Equal(t, 0, f.ledger.TotalStakes(), "partial stake")

	_, err = f.ledger.Stake(u1, ids[:1])
	assert.Nil(t, err, "stake")
	_, err = f.ledger.Stake(u1, ids[:1])
	assert.Equal(t, fault.AlreadyStaked, err, "already staked")
}

func TestUnstakeNotOriginalStaker(t *testing.T) {
	f := setup(t, ledger.Options{})
	defer f.db.Close()

	u1 := newAccount(t)
	u2 := newAccount(t)
	ids1 := f.mint(t, u1, 3)
	ids2 := f.mint(t, u2, 1)

	_, err := f.ledger.Stake(u1, ids1)
	assert.Nil(t, err, "stake u1")
	_, err = f.ledger.Stake(u2, ids2)
	assert.Nil(t, err, "stake u2")

	before := f.ledger.AllStakes()
	next := f.journal.Next()

	_, err = f.ledger.Unstake(u2, ids1[:1])
	assert.Equal(t, fault.NotOriginalStaker, err, "other principal")

	// valid ids first, then one that fails
	_, err = f.ledger.Unstake(u2, []asset.Identifier{ids2[0], ids1[1]})
	assert.Equal(t, fault.NotOriginalStaker, err, "mixed batch")

	_, err = f.ledger.Unstake(u1, []asset.Identifier{ids1[0], asset.NewIdentifier()})
	assert.Equal(t, fault.NotStaked, err, "unknown id")

	_, err = f.ledger.Unstake(u1, []asset.Identifier{ids1[0], ids1[0]})
	assert.Equal(t, fault.NotStaked, err, "repeated id")

	_, err = f.ledger.Unstake(u1, nil)
	assert.Equal(t, fault.EmptyBatch, err, "empty")

	assert.Equal(t, before, f.ledger.AllStakes(), "ledger changed")
	assert.Equal(t, next, f.journal.Next(), "events emitted")
	assert.Equal(t, 3, f.ledger.StakeCount(u1), "u1 count")
	assert.Equal(t, 1, f.ledger.StakeCount(u2), "u2 count")
	assert.Equal(t, 0, len(f.inventory.ListFor(u2)), "asset released")

	l := f.restore(t)
	assert.Equal(t, 4, l.TotalStakes(), "stored stakes")
}

func TestOrderAndIdempotence(t *testing.T) {
	f := setup(t, ledger.Options{})
	defer f.db.Close()

	u1 := newAccount(t)
	u2 := newAccount(t)
	ids1 := f.mint(t, u1, 4)
	ids2 := f.mint(t, u2, 2)

	_, err := f.ledger.Stake(u1, ids1[:2])
	assert.Nil(t, err, "stake u1 a")
	_, err = f.ledger.Stake(u2, ids2)
	assert.Nil(t, err, "stake u2")
	_, err = f.ledger.Stake(u1, ids1[2:])
	assert.Nil(t, err, "stake u1 b")

	first := f.ledger.AllStakes()
	second := f.ledger.AllStakes()
	assert.Equal(t, first, second, "repeated views differ")

	expected := []asset.Identifier{ids1[0], ids1[1], ids2[0], ids2[1], ids1[2], ids1[3]}
	if assert.Equal(t, len(expected), len(first), "all stakes") {
		for i, id := range expected {
			assert.Equal(t, id, first[i].AssetId, "%d: order", i)
		}
	}

	// removing from the middle keeps the order of the rest
	_, err = f.ledger.Unstake(u1, []asset.Identifier{ids1[1]})
	assert.Nil(t, err, "unstake")
	held := f.ledger.HolderStakes(u1)
	if assert.Equal(t, 3, len(held), "holder stakes") {
		assert.Equal(t, ids1[0], held[0].AssetId, "holder first")
		assert.Equal(t, ids1[2], held[1].AssetId, "holder second")
		assert.Equal(t, ids1[3], held[2].AssetId, "holder third")
	}

	l := f.restore(t)
	assertSameStakes(t, f.ledger.AllStakes(), l.AllStakes())
	assert.Equal(t, 3, l.StakeCount(u1), "restored u1")
	assert.Equal(t, 2, l.StakeCount(u2), "restored u2")
	assert.Nil(t, l.Check(), "restored check")

	// later stakes follow the restored ones
	_, err = l.Stake(u1, []asset.Identifier{ids1[1]})
	assert.Nil(t, err, "stake on restored ledger")
	all := l.AllStakes()
	if assert.Equal(t, 6, len(all), "restored all stakes") {
		assert.Equal(t, ids1[1], all[5].AssetId, "appended")
		assert.True(t, all[4].Sequence() < all[5].Sequence(), "sequence")
	}
}

func TestRestoreKeepsSequenceAfterUnstake(t *testing.T) {
	f := setup(t, ledger.Options{})
	defer f.db.Close()

	u1 := newAccount(t)
	ids := f.mint(t, u1, 4)

	_, err := f.ledger.Stake(u1, ids[:3])
	assert.Nil(t, err, "stake")

	// a reader has seen every stake so far
	seen, next, err := f.ledger.Stakes(0, 100)
	assert.Nil(t, err, "page")
	assert.Equal(t, 3, len(seen), "page size")

	// the newest stake leaves before the restart
	_, err = f.ledger.Unstake(u1, ids[2:3])
	assert.Nil(t, err, "unstake")

	l := f.restore(t)
	_, err = l.Stake(u1, ids[3:])
	assert.Nil(t, err, "stake after restore")

	all := l.AllStakes()
	if assert.Equal(t, 3, len(all), "all stakes") {
		assert.Equal(t, ids[3], all[2].AssetId, "appended")
		assert.True(t, all[2].Sequence() > seen[2].Sequence(), "sequence reused")
	}

	more, _, err := l.Stakes(next, 100)
	assert.Nil(t, err, "continued page")
	if assert.Equal(t, 1, len(more), "continued page size") {
		assert.Equal(t, ids[3], more[0].AssetId, "new stake after the cursor")
	}
}

func TestLocate(t *testing.T) {
	f := setup(t, ledger.Options{})
	defer f.db.Close()

	u1 := newAccount(t)
	ids := f.mint(t, u1, 2)

	location, err := f.ledger.Locate(ids[0])
	assert.Nil(t, err, "free asset")
	assert.True(t, u1.Equal(location.Owner), "owner")
	assert.Nil(t, location.Stake, "free asset has stake")
	assert.Equal(t, ids[0], location.Asset.Id, "asset")

	_, err = f.ledger.Stake(u1, ids[:1])
	assert.Nil(t, err, "stake")

	location, err = f.ledger.Locate(ids[0])
	assert.Nil(t, err, "staked asset")
	assert.Nil(t, location.Owner, "staked asset has owner")
	if assert.NotNil(t, location.Stake, "stake") {
		assert.True(t, u1.Equal(location.Stake.Holder), "holder")
		assert.Equal(t, uint64(testTime), location.Stake.Timestamp, "timestamp")
	}
	assert.Equal(t, ids[0], location.Asset.Id, "escrowed asset")

	_, err = f.ledger.Locate(asset.NewIdentifier())
	assert.Equal(t, fault.AssetNotFound, err, "unknown asset")
}

func TestLocateWhileStaking(t *testing.T) {
	f := setup(t, ledger.Options{})
	defer f.db.Close()

	u1 := newAccount(t)
	ids := f.mint(t, u1, 1)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i += 1 {
			if _, err := f.ledger.Stake(u1, ids); nil != err {
				t.Errorf("stake: %d  error: %s", i, err)
				return
			}
			if _, err := f.ledger.Unstake(u1, ids); nil != err {
				t.Errorf("unstake: %d  error: %s", i, err)
				return
			}
		}
	}()

	// the asset is always either free or staked, never missing
	for {
		select {
		case <-done:
			return
		default:
		}
		location, err := f.ledger.Locate(ids[0])
		if !assert.Nil(t, err, "asset missing while moving") {
			<-done
			return
		}
		assert.True(t, (nil == location.Owner) != (nil == location.Stake), "free and staked")
	}
}

func assertSameStakes(t *testing.T, expected []ledger.Record, actual []ledger.Record) {
	if !assert.Equal(t, len(expected), len(actual), "stake count") {
		return
	}
	for i := range expected {
		assert.Equal(t, expected[i].AssetId, actual[i].AssetId, "%d: asset id", i)
		assert.Equal(t, expected[i].TokenId, actual[i].TokenId, "%d: token id", i)
		assert.True(t, expected[i].Holder.Equal(actual[i].Holder), "%d: holder", i)
		assert.Equal(t, expected[i].Timestamp, actual[i].Timestamp, "%d: timestamp", i)
		assert.Equal(t, expected[i].Sequence(), actual[i].Sequence(), "%d: sequence", i)
	}
}

func TestStakesPaging(t *testing.T) {
	f := setup(t, ledger.Options{})
	defer f.db.Close()

	u1 := newAccount(t)
	ids := f.mint(t, u1, 5)
	_, err := f.ledger.Stake(u1, ids)
	assert.Nil(t, err, "stake")

	page, next, err := f.ledger.Stakes(0, 3)
	assert.Nil(t, err, "first page")
	assert.Equal(t, 3, len(page), "first page size")

	rest, next, err := f.ledger.Stakes(next, 3)
	assert.Nil(t, err, "second page")
	assert.Equal(t, 2, len(rest), "second page size")
	assert.Equal(t, ids[3], rest[0].AssetId, "second page start")

	empty, _, err := f.ledger.Stakes(next, 3)
	assert.Nil(t, err, "third page")
	assert.Equal(t, 0, len(empty), "third page size")

	_, _, err = f.ledger.Stakes(0, 0)
	assert.Equal(t, fault.InvalidCount, err, "zero count")
}

func TestPause(t *testing.T) {
	f := setup(t, ledger.Options{})
	defer f.db.Close()

	u1 := newAccount(t)
	ids := f.mint(t, u1, 3)
	_, err := f.ledger.Stake(u1, ids[:1])
	assert.Nil(t, err, "stake")
	before := f.ledger.AllStakes()

	assert.Equal(t, fault.InvalidCapability, f.ledger.Pause(u1, f.ledgerCap), "pause by stranger")
	assert.Nil(t, f.ledger.Pause(f.admin, f.ledgerCap), "pause")
	assert.True(t, f.ledger.IsPaused(), "paused")

	_, err = f.ledger.Stake(u1, ids[1:2])
	assert.Equal(t, fault.LedgerPaused, err, "stake while paused")
	_, err = f.ledger.Unstake(u1, ids[:1])
	assert.Equal(t, fault.LedgerPaused, err, "unstake while paused")

	adminIds := f.mint(t, f.admin, 1)
	_, err = f.ledger.AdminStake(f.admin, f.ledgerCap, adminIds, []*account.Account{u1}, []uint64{1})
	assert.Equal(t, fault.LedgerPaused, err, "admin stake while paused")

	assert.True(t, f.restore(t).IsPaused(), "restored pause")

	assert.Nil(t, f.ledger.Unpause(f.admin, f.ledgerCap), "unpause")
	assert.Equal(t, before, f.ledger.AllStakes(), "state changed by pause")

	_, err = f.ledger.Stake(u1, ids[1:2])
	assert.Nil(t, err, "stake after unpause")
	_, err = f.ledger.Unstake(u1, ids[:1])
	assert.Nil(t, err, "unstake after unpause")
}

func TestAdminStake(t *testing.T) {
	f := setup(t, ledger.Options{MaximumPerHolder: 3})
	defer f.db.Close()

	u1 := newAccount(t)
	u2 := newAccount(t)
	own := f.mint(t, u1, 2)
	_, err := f.ledger.Stake(u1, own)
	assert.Nil(t, err, "stake u1")

	ids := f.mint(t, f.admin, 4)
	next := f.journal.Next()

	_, err = f.ledger.AdminStake(f.admin, f.ledgerCap, nil, nil, nil)
	assert.Equal(t, fault.EmptyBatch, err, "empty")
	_, err = f.ledger.AdminStake(f.admin, f.ledgerCap, ids, []*account.Account{u1}, []uint64{1, 2, 3, 4})
	assert.Equal(t, fault.LengthMismatch, err, "destinations")
	_, err = f.ledger.AdminStake(f.admin, f.ledgerCap, ids[:1], []*account.Account{u1}, nil)
	assert.Equal(t, fault.LengthMismatch, err, "timestamps")
	_, err = f.ledger.AdminStake(u1, f.ledgerCap, ids[:1], []*account.Account{u1}, []uint64{1})
	assert.Equal(t, fault.InvalidCapability, err, "stranger")

	// u1 has 2, two more would make 4
	destinations := []*account.Account{u2, u1, u2, u1}
	timestamps := []uint64{100, 200, 300, 400}
	_, err = f.ledger.AdminStake(f.admin, f.ledgerCap, ids, destinations, timestamps)
	assert.Equal(t, fault.MaxStakeExceeded, err, "u1 over maximum")
	assert.Equal(t, 0, f.ledger.StakeCount(u2), "partial admission")
	assert.Equal(t, 4, len(f.inventory.ListFor(f.admin)), "assets escrowed")
	assert.Equal(t, next, f.journal.Next(), "events emitted")

	_, err = f.ledger.AdminStake(f.admin, f.ledgerCap, []asset.Identifier{ids[0], ids[0]}, []*account.Account{u2, u2}, []uint64{1, 1})
	assert.Equal(t, fault.DuplicateAsset, err, "duplicate")

	_, err = f.ledger.AdminStake(f.admin, f.ledgerCap, own[:1], []*account.Account{u2}, []uint64{1})
	assert.Equal(t, fault.AlreadyStaked, err, "already staked")

	records, err := f.ledger.AdminStake(f.admin, f.ledgerCap, ids[:3], []*account.Account{u2, u1, u2}, timestamps[:3])
	if !assert.Nil(t, err, "admin stake") {
		return
	}
	assert.Equal(t, 3, len(records), "records")
	assert.Equal(t, 3, f.ledger.StakeCount(u1), "u1 count")
	assert.Equal(t, 2, f.ledger.StakeCount(u2), "u2 count")

	holder, timestamp, err := f.ledger.StakeInfo(ids[2])
	assert.Nil(t, err, "stake info")
	assert.True(t, u2.Equal(holder), "destination")
	assert.Equal(t, uint64(300), timestamp, "supplied timestamp")

	// the destination is the original staker
	_, err = f.ledger.Unstake(f.admin, ids[:1])
	assert.Equal(t, fault.NotOriginalStaker, err, "admin unstake")
	_, err = f.ledger.Unstake(u2, ids[:1])
	assert.Nil(t, err, "destination unstake")
	owner, err := f.inventory.Owner(ids[0])
	assert.Nil(t, err, "owner")
	assert.True(t, u2.Equal(owner), "released to destination")
	assert.Nil(t, f.ledger.Check(), "check")
}

func TestSetMaximum(t *testing.T) {
	f := setup(t, ledger.Options{MaximumPerHolder: 2})
	defer f.db.Close()

	u1 := newAccount(t)
	ids := f.mint(t, u1, 3)
	_, err := f.ledger.Stake(u1, ids[:2])
	assert.Nil(t, err, "stake 2")

	assert.Equal(t, fault.InvalidMaximum, f.ledger.SetMaximumPerHolder(f.admin, f.ledgerCap, 0), "zero")
	assert.Nil(t, f.ledger.SetMaximumPerHolder(f.admin, f.ledgerCap, 1), "lower")
	assert.Equal(t, 2, f.ledger.StakeCount(u1), "existing stakes kept")

	_, err = f.ledger.Stake(u1, ids[2:])
	assert.Equal(t, fault.MaxStakeExceeded, err, "above lowered maximum")

	assert.Nil(t, f.ledger.SetMaximumPerHolder(f.admin, f.ledgerCap, 3), "raise")
	_, err = f.ledger.Stake(u1, ids[2:])
	assert.Nil(t, err, "stake after raise")

	assert.Equal(t, uint64(3), f.restore(t).MaximumPerHolder(), "restored maximum")
}

func TestWrongInstance(t *testing.T) {
	f1 := setup(t, ledger.Options{})
	defer f1.db.Close()
	f2 := setup(t, ledger.Options{})
	defer f2.db.Close()

	assert.Equal(t, fault.WrongInstance, f1.ledger.Pause(f2.admin, f2.ledgerCap), "pause")
	assert.Equal(t, fault.WrongInstance, f1.ledger.SetMaximumPerHolder(f2.admin, f2.ledgerCap, 5), "set maximum")
	_, err := f1.ledger.AddCapability(f2.admin, f2.ledgerCap, f2.admin)
	assert.Equal(t, fault.WrongInstance, err, "add capability")
	assert.Equal(t, fault.WrongInstance, f1.ledger.RemoveCapability(f2.admin, f2.ledgerCap), "remove capability")

	// a catalog capability is not a ledger capability
	assert.Equal(t, fault.InvalidCapability, f1.ledger.Pause(f1.admin, f1.catalogCap), "catalog capability")
}

func TestLedgerCapabilities(t *testing.T) {
	f := setup(t, ledger.Options{})
	defer f.db.Close()

	assert.Equal(t, fault.LastCapability, f.ledger.RemoveCapability(f.admin, f.ledgerCap), "remove last")

	u1 := newAccount(t)
	c2, err := f.ledger.AddCapability(f.admin, f.ledgerCap, u1)
	if !assert.Nil(t, err, "add") {
		return
	}
	assert.Equal(t, f.ledger.Id(), c2.Instance(), "bound")
	assert.Nil(t, f.ledger.RemoveCapability(f.admin, f.ledgerCap), "remove")
	assert.Nil(t, f.ledger.Pause(u1, c2), "pause with added capability")

	moved, err := f.ledger.TransferCapability(u1, c2, f.admin)
	assert.Nil(t, err, "transfer")
	assert.Equal(t, fault.InvalidCapability, f.ledger.Unpause(u1, c2), "old holder")
	assert.Nil(t, f.ledger.Unpause(f.admin, moved), "new holder")
}

func TestMultisigGate(t *testing.T) {
	f := setup(t, ledger.Options{MultisigRequired: true})
	defer f.db.Close()

	assert.Equal(t, fault.NotConfigured, f.ledger.Pause(f.admin, f.ledgerCap), "unconfigured")

	keys := [][]byte{newAccount(t).PublicKeyBytes(), newAccount(t).PublicKeyBytes()}
	address, err := f.ledger.ConfigureMultisig(f.admin, f.ledgerCap, keys, []uint8{1, 1}, 2)
	if !assert.Nil(t, err, "configure") {
		return
	}
	assert.Equal(t, fault.NotAuthorisedSigner, f.ledger.Pause(f.admin, f.ledgerCap), "single key admin")

	moved, err := f.ledger.TransferCapability(f.admin, f.ledgerCap, address)
	if !assert.Nil(t, err, "transfer") {
		return
	}
	assert.Nil(t, f.ledger.Pause(address, moved), "pause by multisig address")

	_, err = f.ledger.ConfigureMultisig(f.admin, f.ledgerCap, keys, []uint8{1, 1}, 1)
	assert.Equal(t, fault.InvalidCapability, err, "configure with moved capability")
}
