// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/storage"
)

func TestFetchCursor(t *testing.T) {
	db, err := storage.OpenMemory()
	if !assert.Nil(t, err, "open") {
		return
	}
	defer db.Close()

	elements := make([]storage.Element, 0, 10)
	for i := uint64(1); i <= 10; i += 1 {
		elements = append(elements, storage.Element{
			Key:   storage.Uint64Key(i * 256), // low byte zero
			Value: []byte{byte(i)},
		})
	}
	populate(t, db, db.Stakes, elements)
	populate(t, db, db.StakeIndex, makeElements([]stringElement{{"other", "pool"}}))

	cursor := db.Stakes.NewFetchCursor()
	data, err := cursor.Fetch(4)
	assert.Nil(t, err, "fetch")
	assert.Equal(t, elements[0:4], data, "first page")

	data, err = cursor.Fetch(4)
	assert.Nil(t, err, "fetch")
	assert.Equal(t, elements[4:8], data, "second page")

	data, err = cursor.Fetch(4)
	assert.Nil(t, err, "fetch")
	assert.Equal(t, elements[8:], data, "last page")

	data, err = cursor.Fetch(4)
	assert.Nil(t, err, "fetch")
	assert.Equal(t, 0, len(data), "past end")

	data, err = db.Stakes.NewFetchCursor().Seek(storage.Uint64Key(3 * 256)).Fetch(2)
	assert.Nil(t, err, "seek fetch")
	assert.Equal(t, elements[2:4], data, "seek")

	_, err = cursor.Fetch(0)
	assert.Equal(t, fault.InvalidCount, err, "zero count")

	last, found := db.Stakes.LastElement()
	assert.True(t, found, "last element")
	assert.Equal(t, elements[9], last, "last element value")

	_, found = db.Events.LastElement()
	assert.False(t, found, "empty pool")
}

func TestMapCursor(t *testing.T) {
	db, err := storage.OpenMemory()
	if !assert.Nil(t, err, "open") {
		return
	}
	defer db.Close()

	expected := makeElements([]stringElement{
		{"key-five", "data-five"},
		{"key-four", "data-four"},
		{"key-one", "data-one"},
	})
	populate(t, db, db.Events, expected)

	actual := make([]storage.Element, 0, 3)
	err = db.Events.NewFetchCursor().Map(func(key []byte, value []byte) error {
		actual = append(actual, storage.Element{Key: key, Value: value})
		return nil
	})
	assert.Nil(t, err, "map")
	assert.Equal(t, expected, actual, "sorted order")

	err = db.Events.NewFetchCursor().Map(func(key []byte, value []byte) error {
		return fault.InvalidCount
	})
	assert.Equal(t, fault.InvalidCount, err, "map error")
}
