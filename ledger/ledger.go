// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/asset"
	"github.com/bitmark-inc/custodyd/capability"
	"github.com/bitmark-inc/custodyd/event"
	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/multisig"
	"github.com/bitmark-inc/custodyd/ownership"
	"github.com/bitmark-inc/custodyd/storage"
)

// subsystem name used in events
const subsystem = "ledger"

// DefaultMaximumPerHolder - used when no maximum is configured
const DefaultMaximumPerHolder = 25

// maximum number of records returned by one page
const maximumPageCount = 100

// Clock - source of stake timestamps
type Clock func() time.Time

// Options - run time selection of ledger behaviour
type Options struct {
	MaximumPerHolder uint64 // only used by Initialise
	MultisigRequired bool
	Clock            Clock
}

// Collaborators - shared components the ledger works with
type Collaborators struct {
	DB        *storage.DB
	Journal   *event.Journal
	Inventory *ownership.Inventory
}

// Ledger - the custody ledger
type Ledger struct {
	sync.RWMutex
	log       *logger.L
	db        *storage.DB
	journal   *event.Journal
	inventory *ownership.Inventory
	authority *capability.Authority
	gate      *multisig.Gate
	options   Options

	id               uuid.UUID
	paused           bool
	maximumPerHolder uint64
	next             uint64
	stakes           *index
}

// Initialise - create the ledger and its first capability
//
// the capability is bound to the new ledger id
func Initialise(c Collaborators, admin *account.Account, options Options) (*capability.Capability, *Ledger, error) {
	trx := c.DB.Begin()
	defer trx.End()

	batch := c.Journal.Begin(trx)
	first, l, apply, err := Prepare(trx, batch, c, admin, options)
	if nil != err {
		return nil, nil, err
	}

	if err := l.commit(trx, batch, apply); nil != err {
		return nil, nil, err
	}

	l.log.Infof("initialised: id: %s  maximum per holder: %d  capability: %s", l.id, l.maximumPerHolder, first.Id())
	return first, l, nil
}

// Prepare - stage a new ledger in a transaction held by the caller
//
// apply must be called once the transaction has committed
func Prepare(trx storage.Transaction, batch *event.Batch, c Collaborators, admin *account.Account, options Options) (*capability.Capability, *Ledger, func(), error) {
	if nil == admin {
		return nil, nil, nil, fault.MissingParameters
	}
	if trx.Has(c.DB.State, stateKey) {
		return nil, nil, nil, fault.AlreadyInitialised
	}
	if 0 == options.MaximumPerHolder {
		options.MaximumPerHolder = DefaultMaximumPerHolder
	}

	l := newLedger(c, options)
	l.id = uuid.New()
	l.maximumPerHolder = options.MaximumPerHolder
	l.authority = capability.New(c.DB.Capabilities, capability.LedgerKind, l.id)
	l.gate = multisig.NewGate(nil)

	first, e, apply, err := l.authority.Initialise(trx, admin)
	if nil != err {
		return nil, nil, nil, err
	}
	l.currentState().put(trx, c.DB.State)

	if err := batch.Add(e); nil != err {
		return nil, nil, nil, err
	}
	return first, l, apply, nil
}

// Restore - load a previously initialised ledger with all its stakes
func Restore(c Collaborators, options Options) (*Ledger, error) {
	packed := c.DB.State.Get(stateKey)
	if nil == packed {
		return nil, fault.NotInitialised
	}
	s, err := unpackState(packed)
	if nil != err {
		return nil, err
	}

	authority, err := capability.Restore(c.DB.Capabilities, capability.LedgerKind, s.id)
	if nil != err {
		return nil, err
	}

	l := newLedger(c, options)
	l.id = s.id
	l.paused = s.paused
	l.maximumPerHolder = s.maximumPerHolder
	if s.next > l.next {
		l.next = s.next
	}
	l.authority = authority
	l.gate = multisig.NewGate(s.policy)

	err = c.DB.Stakes.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if 8 != len(key) {
			return fault.NotRecordPack
		}
		sequence := binary.BigEndian.Uint64(key)
		r, err := unpackRecord(value, sequence)
		if nil != err {
			l.log.Criticalf("stake: %d  unpack error: %s", sequence, err)
			return err
		}
		l.stakes.insert(r)
		if sequence >= l.next {
			l.next = sequence + 1
		}
		return nil
	})
	if nil != err {
		return nil, err
	}

	if err := l.stakes.check(); nil != err {
		l.log.Criticalf("restored index error: %s", err)
		return nil, err
	}

	l.log.Infof("restored: id: %s  stakes: %d  paused: %t", l.id, l.stakes.size(), l.paused)
	return l, nil
}

func newLedger(c Collaborators, options Options) *Ledger {
	if nil == options.Clock {
		options.Clock = time.Now
	}
	return &Ledger{
		log:       logger.New("ledger"),
		db:        c.DB,
		journal:   c.Journal,
		inventory: c.Inventory,
		options:   options,
		next:      1,
		stakes:    newIndex(),
	}
}

// authorise - capability first, then the gate when it is required
func (l *Ledger) authorise(principal *account.Account, c *capability.Capability) error {
	if err := l.authority.Verify(c, principal); nil != err {
		return err
	}
	if l.options.MultisigRequired {
		return l.gate.Require(principal)
	}
	return nil
}

func (l *Ledger) currentState() state {
	l.RLock()
	defer l.RUnlock()

	return state{
		id:               l.id,
		paused:           l.paused,
		maximumPerHolder: l.maximumPerHolder,
		next:             l.next,
		policy:           l.gate.Policy(),
	}
}

// commit - persist the transaction then update memory and publish
func (l *Ledger) commit(trx storage.Transaction, batch *event.Batch, applies ...func()) error {
	if err := trx.Commit(); nil != err {
		l.log.Errorf("commit error: %s", err)
		return err
	}
	for _, apply := range applies {
		apply()
	}
	batch.Done()
	return nil
}

// milliseconds since the epoch
func (l *Ledger) now() uint64 {
	return uint64(l.options.Clock().UnixNano() / int64(time.Millisecond))
}

// Id - the ledger instance id, capabilities are bound to it
func (l *Ledger) Id() uuid.UUID {
	return l.id
}

// IsPaused - true if staking is suspended
func (l *Ledger) IsPaused() bool {
	l.RLock()
	defer l.RUnlock()

	return l.paused
}

// MaximumPerHolder - limit on the stakes of any one holder
func (l *Ledger) MaximumPerHolder() uint64 {
	l.RLock()
	defer l.RUnlock()

	return l.maximumPerHolder
}

// MultisigRequired - true if privileged operations need the gate
func (l *Ledger) MultisigRequired() bool {
	return l.options.MultisigRequired
}

// MultisigAddress - the address of the configured policy
func (l *Ledger) MultisigAddress() (*account.Account, error) {
	return l.gate.Address()
}

// Policy - the configured policy, nil if none
func (l *Ledger) Policy() *multisig.Policy {
	return l.gate.Policy()
}

// Capability - a live ledger capability by id
func (l *Ledger) Capability(id uuid.UUID) (*capability.Capability, error) {
	return l.authority.Lookup(id)
}

// Capabilities - all live ledger capabilities
func (l *Ledger) Capabilities() []*capability.Capability {
	return l.authority.List()
}

// CapabilityCount - number of live ledger capabilities
func (l *Ledger) CapabilityCount() int {
	return l.authority.Count()
}

// StakeCount - number of assets a holder has staked
func (l *Ledger) StakeCount(holder *account.Account) int {
	l.RLock()
	defer l.RUnlock()

	return l.stakes.count(holder)
}

// TotalStakes - number of staked assets
func (l *Ledger) TotalStakes() int {
	l.RLock()
	defer l.RUnlock()

	return l.stakes.size()
}

// StakeInfo - holder and deposit time of a staked asset
func (l *Ledger) StakeInfo(id asset.Identifier) (*account.Account, uint64, error) {
	r, err := l.StakeRecord(id)
	if nil != err {
		return nil, 0, err
	}
	return r.Holder, r.Timestamp, nil
}

// StakeRecord - the record of a staked asset
func (l *Ledger) StakeRecord(id asset.Identifier) (Record, error) {
	l.RLock()
	defer l.RUnlock()

	r, ok := l.stakes.get(id)
	if !ok {
		return Record{}, fault.NotStaked
	}
	return *r, nil
}

// Location - where an asset is
//
// a free asset has an owner, an asset in custody has its stake record
type Location struct {
	Asset *asset.Asset
	Owner *account.Account
	Stake *Record
}

// Locate - find an asset free in the inventory or in custody
//
// stake and unstake move assets while holding the ledger lock, so an
// existing asset is found in exactly one of the two
func (l *Ledger) Locate(id asset.Identifier) (Location, error) {
	l.RLock()
	defer l.RUnlock()

	if r, ok := l.stakes.get(id); ok {
		stake := *r
		return Location{
			Asset: stake.Asset(),
			Stake: &stake,
		}, nil
	}

	a, owner, err := l.inventory.Asset(id)
	if nil != err {
		return Location{}, err
	}
	return Location{
		Asset: a,
		Owner: owner,
	}, nil
}

// AllStakes - every stake in the order made
func (l *Ledger) AllStakes() []Record {
	l.RLock()
	defer l.RUnlock()

	return l.stakes.all()
}

// HolderStakes - one holder's stakes in the order made
func (l *Ledger) HolderStakes(holder *account.Account) []Record {
	l.RLock()
	defer l.RUnlock()

	return l.stakes.forHolder(holder)
}

// Stakes - up to count stakes with sequence at least start
//
// also returns the start for the following page
func (l *Ledger) Stakes(start uint64, count int) ([]Record, uint64, error) {
	if count <= 0 || count > maximumPageCount {
		return nil, 0, fault.InvalidCount
	}

	elements, err := l.db.Stakes.NewFetchCursor().Seek(storage.Uint64Key(start)).Fetch(count)
	if nil != err {
		return nil, 0, err
	}

	records := make([]Record, 0, len(elements))
	next := start
	for _, e := range elements {
		sequence := binary.BigEndian.Uint64(e.Key)
		r, err := unpackRecord(e.Value, sequence)
		if nil != err {
			return nil, 0, err
		}
		records = append(records, *r)
		next = sequence + 1
	}
	return records, next, nil
}

// Check - verify the index invariants
func (l *Ledger) Check() error {
	l.RLock()
	defer l.RUnlock()

	return l.stakes.check()
}
