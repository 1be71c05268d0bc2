// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog

import (
	"github.com/google/uuid"

	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/asset"
	"github.com/bitmark-inc/custodyd/capability"
)

// Handle - the catalog operations offered to remote callers
type Handle interface {
	Mint(principal *account.Account, c *capability.Capability, arguments MintArguments) (*asset.Asset, error)
	Update(principal *account.Account, c *capability.Capability, arguments UpdateArguments) (*asset.Asset, error)
	TransferAsset(principal *account.Account, id asset.Identifier, to *account.Account) error
	Pause(principal *account.Account, c *capability.Capability) error
	Unpause(principal *account.Account, c *capability.Capability) error
	ConfigureMultisig(principal *account.Account, c *capability.Capability, keys [][]byte, weights []uint8, threshold uint16) (*account.Account, error)
	AddCapability(principal *account.Account, c *capability.Capability, holder *account.Account) (*capability.Capability, error)
	RemoveCapability(principal *account.Account, c *capability.Capability) error
	TransferCapability(principal *account.Account, c *capability.Capability, to *account.Account) (*capability.Capability, error)

	IsPaused() bool
	MultisigRequired() bool
	MultisigAddress() (*account.Account, error)
	Capability(id uuid.UUID) (*capability.Capability, error)
	Capabilities() []*capability.Capability
	Asset(id asset.Identifier) (*asset.Asset, *account.Account, error)
	AssetCount() int
}

var _ Handle = (*Catalog)(nil)
