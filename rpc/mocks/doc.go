// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:generate mockgen -destination=catalog.go -package=mocks -mock_names=Handle=MockCatalog github.com/bitmark-inc/custodyd/catalog Handle
//go:generate mockgen -destination=ledger.go -package=mocks -mock_names=Handle=MockLedger github.com/bitmark-inc/custodyd/ledger Handle
//go:generate mockgen -destination=journal.go -package=mocks -mock_names=Reader=MockJournal github.com/bitmark-inc/custodyd/event Reader
//go:generate mockgen -destination=inventory.go -package=mocks -mock_names=Lister=MockInventory github.com/bitmark-inc/custodyd/ownership Lister

package mocks
