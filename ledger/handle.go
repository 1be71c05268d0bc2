// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/google/uuid"

	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/asset"
	"github.com/bitmark-inc/custodyd/capability"
)

// Handle - the ledger operations offered to remote callers
type Handle interface {
	Stake(holder *account.Account, ids []asset.Identifier) ([]Record, error)
	Unstake(caller *account.Account, ids []asset.Identifier) ([]Record, error)
	AdminStake(principal *account.Account, c *capability.Capability, ids []asset.Identifier, destinations []*account.Account, timestamps []uint64) ([]Record, error)
	SetMaximumPerHolder(principal *account.Account, c *capability.Capability, maximum uint64) error
	Pause(principal *account.Account, c *capability.Capability) error
	Unpause(principal *account.Account, c *capability.Capability) error
	ConfigureMultisig(principal *account.Account, c *capability.Capability, keys [][]byte, weights []uint8, threshold uint16) (*account.Account, error)
	AddCapability(principal *account.Account, c *capability.Capability, holder *account.Account) (*capability.Capability, error)
	RemoveCapability(principal *account.Account, c *capability.Capability) error
	TransferCapability(principal *account.Account, c *capability.Capability, to *account.Account) (*capability.Capability, error)

	Id() uuid.UUID
	IsPaused() bool
	MaximumPerHolder() uint64
	MultisigRequired() bool
	MultisigAddress() (*account.Account, error)
	Capability(id uuid.UUID) (*capability.Capability, error)
	Capabilities() []*capability.Capability
	StakeCount(holder *account.Account) int
	TotalStakes() int
	StakeInfo(id asset.Identifier) (*account.Account, uint64, error)
	StakeRecord(id asset.Identifier) (Record, error)
	Locate(id asset.Identifier) (Location, error)
	HolderStakes(holder *account.Account) []Record
	Stakes(start uint64, count int) ([]Record, uint64, error)
}

var _ Handle = (*Ledger)(nil)
