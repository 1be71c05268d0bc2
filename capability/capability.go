// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package capability

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/record"
)

// Kind - which subsystem a capability administers
type Kind uint8

// capability kinds
const (
	CatalogKind Kind = 1
	LedgerKind  Kind = 2
)

// String - name of the kind
func (k Kind) String() string {
	switch k {
	case CatalogKind:
		return "catalog"
	case LedgerKind:
		return "ledger"
	default:
		return "unknown"
	}
}

// Capability - proof of admin rights
type Capability struct {
	id       uuid.UUID
	kind     Kind
	instance uuid.UUID
	holder   *account.Account
}

// Id - unique id of the capability
func (c *Capability) Id() uuid.UUID {
	return c.id
}

// Kind - subsystem the capability administers
func (c *Capability) Kind() Kind {
	return c.kind
}

// Instance - the ledger the capability is bound to, zero if unbound
func (c *Capability) Instance() uuid.UUID {
	return c.instance
}

// Holder - the account that holds the capability
func (c *Capability) Holder() *account.Account {
	return c.holder
}

// public view of a capability
type view struct {
	Id       uuid.UUID        `json:"id"`
	Kind     string           `json:"kind"`
	Instance *uuid.UUID       `json:"instance,omitempty"`
	Holder   *account.Account `json:"holder"`
}

// MarshalJSON - expose the public view of a capability
func (c *Capability) MarshalJSON() ([]byte, error) {
	v := view{
		Id:     c.id,
		Kind:   c.kind.String(),
		Holder: c.holder,
	}
	if uuid.Nil != c.instance {
		instance := c.instance
		v.Instance = &instance
	}
	return json.Marshal(v)
}

// UnmarshalJSON - decode the public view for display by clients
//
// the result is a description only, an Authority accepts nothing it
// did not issue itself
func (c *Capability) UnmarshalJSON(data []byte) error {
	var v view
	if err := json.Unmarshal(data, &v); nil != err {
		return err
	}
	kind, err := kindFromString(v.Kind)
	if nil != err {
		return err
	}
	c.id = v.Id
	c.kind = kind
	c.instance = uuid.Nil
	if nil != v.Instance {
		c.instance = *v.Instance
	}
	c.holder = v.Holder
	return nil
}

func kindFromString(s string) (Kind, error) {
	switch s {
	case "catalog":
		return CatalogKind, nil
	case "ledger":
		return LedgerKind, nil
	default:
		return 0, fault.UnknownCapabilityKind
	}
}

func (c *Capability) pack() record.Packed {
	return record.New(record.CapabilityTag).
		AppendBytes(c.id[:]).
		AppendUint64(uint64(c.kind)).
		AppendBytes(c.instance[:]).
		AppendAccount(c.holder)
}

func unpack(packed record.Packed) (*Capability, error) {
	r := packed.Read(record.CapabilityTag)
	idBytes := r.Bytes()
	kind := Kind(r.Uint64())
	instanceBytes := r.Bytes()
	holder := r.Account()
	if err := r.Done(); nil != err {
		return nil, err
	}

	id, err := uuid.FromBytes(idBytes)
	if nil != err {
		return nil, fault.NotRecordPack
	}
	instance, err := uuid.FromBytes(instanceBytes)
	if nil != err {
		return nil, fault.NotRecordPack
	}
	if CatalogKind != kind && LedgerKind != kind {
		return nil, fault.UnknownCapabilityKind
	}

	return &Capability{
		id:       id,
		kind:     kind,
		instance: instance,
		holder:   holder,
	}, nil
}
