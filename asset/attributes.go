// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"github.com/bitmark-inc/custodyd/fault"
)

// Attribute - a single key/value pair
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Attributes - key/value pairs with unique keys
type Attributes []Attribute

// maximum number of attributes on a single asset
const maxAttributes = 64

// NewAttributes - pair up parallel key and value lists
func NewAttributes(keys []string, values []string) (Attributes, error) {
	if len(keys) != len(values) {
		return nil, fault.AttributeLengthMismatch
	}
	if len(keys) > maxAttributes {
		return nil, fault.TooManyAttributes
	}
	if 0 == len(keys) {
		return nil, nil
	}

	seen := make(map[string]struct{}, len(keys))
	attributes := make(Attributes, 0, len(keys))
	for i, k := range keys {
		if _, ok := seen[k]; ok {
			return nil, fault.DuplicateAttributeKey
		}
		seen[k] = struct{}{}
		if err := checkField(k); nil != err {
			return nil, err
		}
		if err := checkField(values[i]); nil != err {
			return nil, err
		}
		attributes = append(attributes, Attribute{
			Key:   k,
			Value: values[i],
		})
	}
	return attributes, nil
}

// Get - value for a key
func (attributes Attributes) Get(key string) (string, bool) {
	for _, a := range attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Equal - same keys with the same values, order is not significant
func (attributes Attributes) Equal(other Attributes) bool {
	if len(attributes) != len(other) {
		return false
	}
	for _, a := range attributes {
		if v, ok := other.Get(a.Key); !ok || v != a.Value {
			return false
		}
	}
	return true
}
