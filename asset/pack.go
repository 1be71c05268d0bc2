// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/record"
)

// Pack - binary form of an asset
func (a *Asset) Pack() record.Packed {
	packed := record.New(record.AssetTag).
		AppendBytes(a.Id.Bytes()).
		AppendUint64(a.TokenId).
		AppendString(a.Name).
		AppendString(a.Description).
		AppendString(a.ImageURL).
		AppendUint64(uint64(len(a.Attributes)))

	for _, attr := range a.Attributes {
		packed = packed.AppendString(attr.Key).AppendString(attr.Value)
	}
	return packed
}

// Unpack - decode the binary form of an asset
func Unpack(packed record.Packed) (*Asset, error) {
	r := packed.Read(record.AssetTag)
	a, err := readAsset(r)
	if nil != err {
		return nil, err
	}
	if err := r.Done(); nil != err {
		return nil, err
	}
	return a, nil
}

func readAsset(r *record.Reader) (*Asset, error) {
	idBytes := r.Bytes()
	tokenId := r.Uint64()
	name := r.String()
	description := r.String()
	imageURL := r.String()
	count := r.Uint64()
	if nil != r.Err() {
		return nil, r.Err()
	}
	if count > maxAttributes {
		return nil, fault.NotRecordPack
	}

	var attributes Attributes
	if count > 0 {
		attributes = make(Attributes, 0, count)
	}
	for i := uint64(0); i < count; i += 1 {
		attributes = append(attributes, Attribute{
			Key:   r.String(),
			Value: r.String(),
		})
	}
	if nil != r.Err() {
		return nil, r.Err()
	}

	id, err := IdentifierFromBytes(idBytes)
	if nil != err {
		return nil, err
	}

	return &Asset{
		Id:          id,
		TokenId:     tokenId,
		Name:        name,
		Description: description,
		ImageURL:    imageURL,
		Attributes:  attributes,
	}, nil
}

// PackOwned - an asset together with its current owner
func PackOwned(a *Asset, owner *account.Account) record.Packed {
	return record.New(record.OwnedAssetTag).
		AppendRecord(a.Pack()).
		AppendAccount(owner)
}

// UnpackOwned - decode an asset and its owner
func UnpackOwned(packed record.Packed) (*Asset, *account.Account, error) {
	r := packed.Read(record.OwnedAssetTag)
	inner := r.Record()
	owner := r.Account()
	if err := r.Done(); nil != err {
		return nil, nil, err
	}
	a, err := Unpack(inner)
	if nil != err {
		return nil, nil, err
	}
	return a, owner, nil
}
