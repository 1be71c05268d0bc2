// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"github.com/bitmark-inc/custodyd/fault"
)

// limit for any text field
const maxFieldLength = 8192

// Asset - a unique collectible
type Asset struct {
	Id          Identifier `json:"id"`
	TokenId     uint64     `json:"tokenId,string"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ImageURL    string     `json:"imageUrl"`
	Attributes  Attributes `json:"attributes"`
}

// Fields - the mutable descriptive part of an asset
type Fields struct {
	Name        string
	Description string
	ImageURL    string
	Attributes  Attributes
}

// New - create an asset with a fresh identifier
func New(tokenId uint64, fields Fields) (*Asset, error) {
	if err := fields.Validate(); nil != err {
		return nil, err
	}
	return &Asset{
		Id:          NewIdentifier(),
		TokenId:     tokenId,
		Name:        fields.Name,
		Description: fields.Description,
		ImageURL:    fields.ImageURL,
		Attributes:  fields.Attributes,
	}, nil
}

// Validate - check field lengths
func (fields Fields) Validate() error {
	for _, s := range []string{fields.Name, fields.Description, fields.ImageURL} {
		if err := checkField(s); nil != err {
			return err
		}
	}
	if len(fields.Attributes) > maxAttributes {
		return fault.TooManyAttributes
	}
	return nil
}

// Fields - current descriptive values
func (a *Asset) Fields() Fields {
	return Fields{
		Name:        a.Name,
		Description: a.Description,
		ImageURL:    a.ImageURL,
		Attributes:  a.Attributes,
	}
}

// WithFields - a copy of the asset with new descriptive values
//
// identity is unchanged
func (a *Asset) WithFields(fields Fields) *Asset {
	return &Asset{
		Id:          a.Id,
		TokenId:     a.TokenId,
		Name:        fields.Name,
		Description: fields.Description,
		ImageURL:    fields.ImageURL,
		Attributes:  fields.Attributes,
	}
}

func checkField(s string) error {
	if len(s) > maxFieldLength {
		return fault.FieldTooLong
	}
	return nil
}
