// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/asset"
)

// Item - any event
type Item interface {
	Type() string
}

// event type names
const (
	MintedType             = "minted"
	AssetUpdatedType       = "assetUpdated"
	AssetTransferredType   = "assetTransferred"
	CapabilityType         = "capability"
	PauseStateChangedType  = "pauseStateChanged"
	MultisigConfiguredType = "multisigConfigured"
	MaximumChangedType     = "maximumChanged"
	StakedType             = "staked"
	UnstakedType           = "unstaked"
)

// Action - capability life cycle step
type Action string

// capability actions
const (
	Created     = Action("created")
	Removed     = Action("removed")
	Transferred = Action("transferred")
)

// Minted - a new asset was created
type Minted struct {
	AssetId   asset.Identifier `json:"assetId"`
	TokenId   uint64           `json:"tokenId,string"`
	Recipient *account.Account `json:"recipient"`
	Minter    *account.Account `json:"minter"`
}

// AssetUpdated - descriptive fields were replaced
type AssetUpdated struct {
	AssetId        asset.Identifier `json:"assetId"`
	TokenId        uint64           `json:"tokenId,string"`
	Updater        *account.Account `json:"updater"`
	OldName        string           `json:"oldName"`
	NewName        string           `json:"newName"`
	OldDescription string           `json:"oldDescription"`
	NewDescription string           `json:"newDescription"`
	OldImageURL    string           `json:"oldImageUrl"`
	NewImageURL    string           `json:"newImageUrl"`
}

// AssetTransferred - a free asset changed hands
type AssetTransferred struct {
	AssetId asset.Identifier `json:"assetId"`
	TokenId uint64           `json:"tokenId,string"`
	From    *account.Account `json:"from"`
	To      *account.Account `json:"to"`
}

// Capability - an admin capability was created, removed or transferred
type Capability struct {
	CapType   string           `json:"capType"`
	Action    Action           `json:"action"`
	CapId     string           `json:"capId"`
	Actor     *account.Account `json:"actor"`
	Recipient *account.Account `json:"recipient,omitempty"`
}

// PauseStateChanged - a subsystem was paused or resumed
type PauseStateChanged struct {
	Subsystem string           `json:"subsystem"`
	IsPaused  bool             `json:"isPaused"`
	Actor     *account.Account `json:"actor"`
}

// MultisigConfigured - a new signing policy is in force
type MultisigConfigured struct {
	Subsystem string           `json:"subsystem"`
	Address   *account.Account `json:"address"`
	Keys      int              `json:"keys"`
	Threshold uint16           `json:"threshold"`
	Actor     *account.Account `json:"actor"`
}

// MaximumChanged - per holder stake limit changed
type MaximumChanged struct {
	Old   uint64           `json:"old"`
	New   uint64           `json:"new"`
	Actor *account.Account `json:"actor"`
}

// Staked - an asset entered custody
type Staked struct {
	Holder    *account.Account `json:"holder"`
	AssetId   asset.Identifier `json:"assetId"`
	TokenId   uint64           `json:"tokenId,string"`
	Timestamp uint64           `json:"timestamp"`
}

// Unstaked - an asset left custody
type Unstaked struct {
	Holder    *account.Account `json:"holder"`
	AssetId   asset.Identifier `json:"assetId"`
	TokenId   uint64           `json:"tokenId,string"`
	Timestamp uint64           `json:"timestamp"`
}

// Type - the event type name
func (Minted) Type() string             { return MintedType }
func (AssetUpdated) Type() string       { return AssetUpdatedType }
func (AssetTransferred) Type() string   { return AssetTransferredType }
func (Capability) Type() string         { return CapabilityType }
func (PauseStateChanged) Type() string  { return PauseStateChangedType }
func (MultisigConfigured) Type() string { return MultisigConfiguredType }
func (MaximumChanged) Type() string     { return MaximumChangedType }
func (Staked) Type() string             { return StakedType }
func (Unstaked) Type() string           { return UnstakedType }

// empty item of each type for decoding
func newItem(eventType string) (Item, bool) {
	switch eventType {
	case MintedType:
		return &Minted{}, true
	case AssetUpdatedType:
		return &AssetUpdated{}, true
	case AssetTransferredType:
		return &AssetTransferred{}, true
	case CapabilityType:
		return &Capability{}, true
	case PauseStateChangedType:
		return &PauseStateChanged{}, true
	case MultisigConfiguredType:
		return &MultisigConfigured{}, true
	case MaximumChangedType:
		return &MaximumChanged{}, true
	case StakedType:
		return &Staked{}, true
	case UnstakedType:
		return &Unstaked{}, true
	default:
		return nil, false
	}
}
