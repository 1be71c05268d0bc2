// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog

import (
	"sync"

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
const subsystem = "catalog"

// Options - run time selection of catalog behaviour
type Options struct {
	MultisigRequired bool
}

// Collaborators - shared components the catalog works with
type Collaborators struct {
	DB        *storage.DB
	Journal   *event.Journal
	Registry  *asset.Registry
	Inventory *ownership.Inventory
}

// Catalog - the asset catalog
type Catalog struct {
	sync.RWMutex
	log       *logger.L
	db        *storage.DB
	journal   *event.Journal
	registry  *asset.Registry
	inventory *ownership.Inventory
	authority *capability.Authority
	gate      *multisig.Gate
	options   Options
	paused    bool
}

// Initialise - create the catalog and its first capability
func Initialise(c Collaborators, admin *account.Account, options Options) (*capability.Capability, *Catalog, error) {
	trx := c.DB.Begin()
	defer trx.End()

	batch := c.Journal.Begin(trx)
	first, cat, apply, err := Prepare(trx, batch, c, admin, options)
	if nil != err {
		return nil, nil, err
	}

	if err := trx.Commit(); nil != err {
		return nil, nil, err
	}
	apply()
	batch.Done()

	cat.log.Infof("initialised: capability: %s  holder: %s", first.Id(), admin)
	return first, cat, nil
}

// Prepare - stage a new catalog in a transaction held by the caller
//
// apply must be called once the transaction has committed
func Prepare(trx storage.Transaction, batch *event.Batch, c Collaborators, admin *account.Account, options Options) (*capability.Capability, *Catalog, func(), error) {
	if nil == admin {
		return nil, nil, nil, fault.MissingParameters
	}
	if trx.Has(c.DB.State, stateKey) {
		return nil, nil, nil, fault.AlreadyInitialised
	}

	cat := newCatalog(c, options)
	cat.authority = capability.New(c.DB.Capabilities, capability.CatalogKind, uuid.Nil)
	cat.gate = multisig.NewGate(nil)

	first, e, apply, err := cat.authority.Initialise(trx, admin)
	if nil != err {
		return nil, nil, nil, err
	}
	state{}.put(trx, c.DB.State)

	if err := batch.Add(e); nil != err {
		return nil, nil, nil, err
	}
	return first, cat, apply, nil
}

// Restore - load a previously initialised catalog
func Restore(c Collaborators, options Options) (*Catalog, error) {
	packed := c.DB.State.Get(stateKey)
	if nil == packed {
		return nil, fault.NotInitialised
	}
	s, err := unpackState(packed)
	if nil != err {
		return nil, err
	}

	authority, err := capability.Restore(c.DB.Capabilities, capability.CatalogKind, uuid.Nil)
	if nil != err {
		return nil, err
	}

	cat := newCatalog(c, options)
	cat.authority = authority
	cat.gate = multisig.NewGate(s.policy)
	cat.paused = s.paused

	cat.log.Infof("restored: paused: %t  capabilities: %d  multisig: %t", s.paused, authority.Count(), nil != s.policy)
	return cat, nil
}

func newCatalog(c Collaborators, options Options) *Catalog {
	return &Catalog{
		log:       logger.New("catalog"),
		db:        c.DB,
		journal:   c.Journal,
		registry:  c.Registry,
		inventory: c.Inventory,
		options:   options,
	}
}

// authorise - capability first, then the gate when it is required
func (cat *Catalog) authorise(principal *account.Account, c *capability.Capability) error {
	if err := cat.authority.Verify(c, principal); nil != err {
		return err
	}
	if cat.options.MultisigRequired {
		return cat.gate.Require(principal)
	}
	return nil
}

// caller must hold the transaction
func (cat *Catalog) currentState() state {
	cat.RLock()
	defer cat.RUnlock()

	return state{
		paused: cat.paused,
		policy: cat.gate.Policy(),
	}
}

// commit - persist the transaction then update memory and publish
func (cat *Catalog) commit(trx storage.Transaction, batch *event.Batch, applies ...func()) error {
	if err := trx.Commit(); nil != err {
		cat.log.Errorf("commit error: %s", err)
		return err
	}
	for _, apply := range applies {
		apply()
	}
	batch.Done()
	return nil
}

// IsPaused - true if mint and update are suspended
func (cat *Catalog) IsPaused() bool {
	cat.RLock()
	defer cat.RUnlock()

	return cat.paused
}

// MultisigRequired - true if privileged operations need the gate
func (cat *Catalog) MultisigRequired() bool {
	return cat.options.MultisigRequired
}

// MultisigAddress - the address of the configured policy
func (cat *Catalog) MultisigAddress() (*account.Account, error) {
	return cat.gate.Address()
}

// Policy - the configured policy, nil if none
func (cat *Catalog) Policy() *multisig.Policy {
	return cat.gate.Policy()
}

// Capability - a live catalog capability by id
func (cat *Catalog) Capability(id uuid.UUID) (*capability.Capability, error) {
	return cat.authority.Lookup(id)
}

// Capabilities - all live catalog capabilities
func (cat *Catalog) Capabilities() []*capability.Capability {
	return cat.authority.List()
}

// CapabilityCount - number of live catalog capabilities
func (cat *Catalog) CapabilityCount() int {
	return cat.authority.Count()
}

// Asset - a free asset and its holder
func (cat *Catalog) Asset(id asset.Identifier) (*asset.Asset, *account.Account, error) {
	return cat.inventory.Asset(id)
}

// AssetCount - number of token ids ever minted
func (cat *Catalog) AssetCount() int {
	return cat.registry.Count()
}
