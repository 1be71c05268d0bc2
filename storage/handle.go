// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"
)

// PoolHandle - the structure of a pool handle
type PoolHandle struct {
	prefix byte
	limit  []byte
	db     *DB
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Get - read a committed value for a given key
//
// returns nil if not found, the result is a copy
func (p *PoolHandle) Get(key []byte) []byte {
	p.db.RLock()
	defer p.db.RUnlock()

	return p.get(p.prefixKey(key))
}

// caller must hold a db lock
func (p *PoolHandle) get(prefixedKey []byte) []byte {
	if nil == p.db.database {
		return nil
	}

	if value, found, cached := p.db.cache.Get(string(prefixedKey)); cached {
		if !found {
			return nil
		}
		return copyBytes(value)
	}

	value, err := p.db.database.Get(prefixedKey, nil)
	if leveldb.ErrNotFound == err {
		p.db.cache.Set(dbDelete, string(prefixedKey), nil)
		return nil
	}
	logger.PanicIfError("pool.Get", err)

	p.db.cache.Set(dbPut, string(prefixedKey), value)
	return copyBytes(value)
}

// GetN - read a record and decode as big endian uint64
//
// second parameter is false if record was not found
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	return decodeN(key, p.Get(key))
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	return nil != p.Get(key)
}

// LastElement - the element with the highest key in the pool
func (p *PoolHandle) LastElement() (Element, bool) {
	p.db.RLock()
	defer p.db.RUnlock()

	if nil == p.db.database {
		return Element{}, false
	}

	iter := p.db.database.NewIterator(&ldb_util.Range{
		Start: []byte{p.prefix},
		Limit: p.limit,
	}, nil)
	defer iter.Release()

	if !iter.Last() {
		return Element{}, false
	}

	return Element{
		Key:   copyBytes(iter.Key()[1:]),
		Value: copyBytes(iter.Value()),
	}, true
}

// Uint64Key - big endian form of a numeric key
func Uint64Key(n uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, n)
	return key
}

func decodeN(key []byte, buffer []byte) (uint64, bool) {
	if nil == buffer {
		return 0, false
	}
	if 8 != len(buffer) {
		logger.Panicf("pool.GetN truncated record for: %x: %x", key, buffer)
	}
	return binary.BigEndian.Uint64(buffer), true
}

func copyBytes(b []byte) []byte {
	if nil == b {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
