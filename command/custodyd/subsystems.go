// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/asset"
	"github.com/bitmark-inc/custodyd/capability"
	"github.com/bitmark-inc/custodyd/catalog"
	"github.com/bitmark-inc/custodyd/configuration"
	"github.com/bitmark-inc/custodyd/event"
	"github.com/bitmark-inc/custodyd/ledger"
	"github.com/bitmark-inc/custodyd/messagebus"
	"github.com/bitmark-inc/custodyd/mode"
	"github.com/bitmark-inc/custodyd/ownership"
	"github.com/bitmark-inc/custodyd/rpc/auth"
	"github.com/bitmark-inc/custodyd/rpc/server"
	"github.com/bitmark-inc/custodyd/storage"
)

// events waiting for the publisher
const eventQueueSize = 1000

// the stored components of a running daemon
type subsystems struct {
	db        *storage.DB
	bus       *messagebus.Queue
	journal   *event.Journal
	registry  *asset.Registry
	inventory *ownership.Inventory
	catalog   *catalog.Catalog
	ledger    *ledger.Ledger
}

// open the database and the components shared by catalog and ledger
func openSubsystems(configuration *configuration.Configuration) (*subsystems, error) {
	db, err := storage.Open(configuration.Database.Name, storage.ReadWrite)
	if nil != err {
		return nil, err
	}
	return newSubsystems(db)
}

func newSubsystems(db *storage.DB) (*subsystems, error) {
	s := &subsystems{
		db:  db,
		bus: messagebus.New(eventQueueSize),
	}

	var err error

	s.journal, err = event.NewJournal(db.Events, s.bus)
	if nil != err {
		db.Close()
		return nil, err
	}
	s.registry, err = asset.NewRegistry(db.Identifiers)
	if nil != err {
		db.Close()
		return nil, err
	}
	s.inventory, err = ownership.New(db.Assets)
	if nil != err {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *subsystems) catalogCollaborators() catalog.Collaborators {
	return catalog.Collaborators{
		DB:        s.db,
		Journal:   s.journal,
		Registry:  s.registry,
		Inventory: s.inventory,
	}
}

func (s *subsystems) ledgerCollaborators() ledger.Collaborators {
	return ledger.Collaborators{
		DB:        s.db,
		Journal:   s.journal,
		Inventory: s.inventory,
	}
}

func catalogOptions(configuration *configuration.Configuration) catalog.Options {
	return catalog.Options{
		MultisigRequired: configuration.Catalog.MultisigRequired,
	}
}

func ledgerOptions(configuration *configuration.Configuration) ledger.Options {
	return ledger.Options{
		MaximumPerHolder: configuration.Ledger.MaximumPerHolder,
		MultisigRequired: configuration.Ledger.MultisigRequired,
		Clock:            time.Now,
	}
}

// one time deployment: create catalog and ledger with admin holding
// the first capability of each
//
// both are written in one transaction so a failure leaves neither
func (s *subsystems) initialise(configuration *configuration.Configuration, admin *account.Account) (*capability.Capability, *capability.Capability, error) {
	trx := s.db.Begin()
	defer trx.End()

	batch := s.journal.Begin(trx)

	catalogCapability, cat, applyCatalog, err := catalog.Prepare(trx, batch, s.catalogCollaborators(), admin, catalogOptions(configuration))
	if nil != err {
		return nil, nil, err
	}
	ledgerCapability, l, applyLedger, err := ledger.Prepare(trx, batch, s.ledgerCollaborators(), admin, ledgerOptions(configuration))
	if nil != err {
		return nil, nil, err
	}

	if err := trx.Commit(); nil != err {
		return nil, nil, err
	}
	applyCatalog()
	applyLedger()
	batch.Done()

	s.catalog = cat
	s.ledger = l
	return catalogCapability, ledgerCapability, nil
}

// load the catalog and ledger saved by initialise
func (s *subsystems) restore(configuration *configuration.Configuration) error {
	cat, err := catalog.Restore(s.catalogCollaborators(), catalogOptions(configuration))
	if nil != err {
		return err
	}
	l, err := ledger.Restore(s.ledgerCollaborators(), ledgerOptions(configuration))
	if nil != err {
		return err
	}

	s.catalog = cat
	s.ledger = l
	return nil
}

func (s *subsystems) handles() server.Handles {
	return server.Handles{
		Catalog:   s.catalog,
		Ledger:    s.ledger,
		Inventory: s.inventory,
		Journal:   s.journal,
	}
}

func (s *subsystems) verifier() *auth.Verifier {
	return auth.NewVerifier(mode.IsTesting(), time.Now)
}

func (s *subsystems) close() {
	s.db.Close()
}
