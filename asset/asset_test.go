// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/asset"
	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/record"
)

func TestNewAttributes(t *testing.T) {
	attributes, err := asset.NewAttributes([]string{"colour", "rarity"}, []string{"red", "rare"})
	assert.Nil(t, err, "attributes")
	v, ok := attributes.Get("rarity")
	assert.True(t, ok, "rarity present")
	assert.Equal(t, "rare", v, "rarity value")

	reordered, _ := asset.NewAttributes([]string{"rarity", "colour"}, []string{"rare", "red"})
	assert.True(t, attributes.Equal(reordered), "order is significant")

	_, err = asset.NewAttributes([]string{"colour"}, []string{"red", "blue"})
	assert.Equal(t, fault.AttributeLengthMismatch, err, "length mismatch")

	_, err = asset.NewAttributes([]string{"colour", "colour"}, []string{"red", "blue"})
	assert.Equal(t, fault.DuplicateAttributeKey, err, "duplicate key")

	empty, err := asset.NewAttributes(nil, nil)
	assert.Nil(t, err, "empty")
	assert.Equal(t, 0, len(empty), "empty count")
}

func TestPackRoundTrip(t *testing.T) {
	attributes, _ := asset.NewAttributes([]string{"colour", "rarity"}, []string{"red", "rare"})

	a, err := asset.New(1001, asset.Fields{
		Name:        "Genesis",
		Description: "first of its kind",
		ImageURL:    "https://example.com/1001.png",
		Attributes:  attributes,
	})
	if !assert.Nil(t, err, "new") {
		return
	}

	b, err := asset.Unpack(a.Pack())
	assert.Nil(t, err, "unpack")
	assert.Equal(t, a, b, "round trip")

	owner, _ := account.AccountFromBase58("anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj")
	c, o, err := asset.UnpackOwned(asset.PackOwned(a, owner))
	assert.Nil(t, err, "unpack owned")
	assert.Equal(t, a, c, "owned asset")
	assert.True(t, owner.Equal(o), "owner")

	_, err = asset.Unpack(record.New(record.StakeTag))
	assert.Equal(t, fault.NotRecordPack, err, "wrong record type")
}

func TestFieldLimits(t *testing.T) {
	_, err := asset.New(1, asset.Fields{Name: strings.Repeat("x", 8193)})
	assert.Equal(t, fault.FieldTooLong, err, "long name")
}

func TestWithFields(t *testing.T) {
	a, _ := asset.New(7, asset.Fields{Name: "old"})
	b := a.WithFields(asset.Fields{Name: "new", ImageURL: "ipfs://x"})

	assert.Equal(t, a.Id, b.Id, "identity changed")
	assert.Equal(t, a.TokenId, b.TokenId, "token id changed")
	assert.Equal(t, "old", a.Name, "original modified")
	assert.Equal(t, "new", b.Name, "name")
}

func TestIdentifierJSON(t *testing.T) {
	id := asset.NewIdentifier()
	buffer, err := json.Marshal(id)
	assert.Nil(t, err, "marshal")
	assert.Equal(t, `"`+id.String()+`"`, string(buffer), "text form")

	var decoded asset.Identifier
	assert.Nil(t, json.Unmarshal(buffer, &decoded), "unmarshal")
	assert.Equal(t, id, decoded, "round trip")

	_, err = asset.IdentifierFromString("not-a-uuid")
	assert.Equal(t, fault.InvalidIdentifier, err, "invalid text")

	_, err = asset.IdentifierFromBytes([]byte{1, 2, 3})
	assert.Equal(t, fault.InvalidIdentifier, err, "invalid bytes")
}
