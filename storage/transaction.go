// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/custodyd/fault"
)

// Transaction - the single write transaction
//
// reads through a transaction see its own staged writes,
// nothing is visible to other readers until Commit
type Transaction interface {
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	Commit() error
	End()
}

type staged struct {
	op    dbOperation
	value []byte
}

type transaction struct {
	db        *DB
	batch     *leveldb.Batch
	pending   map[string]staged
	order     []string
	committed bool
	ended     bool
}

func newTransaction(db *DB) *transaction {
	return &transaction{
		db:      db,
		batch:   new(leveldb.Batch),
		pending: make(map[string]staged),
	}
}

func (t *transaction) stage(key []byte, op dbOperation, value []byte) {
	k := string(key)
	if _, ok := t.pending[k]; !ok {
		t.order = append(t.order, k)
	}
	t.pending[k] = staged{
		op:    op,
		value: value,
	}
}

// Put - stage a key/value pair
func (t *transaction) Put(p *PoolHandle, key []byte, value []byte) {
	prefixedKey := p.prefixKey(key)
	v := copyBytes(value)
	t.batch.Put(prefixedKey, v)
	t.stage(prefixedKey, dbPut, v)
}

// PutN - stage a big endian uint64 value
func (t *transaction) PutN(p *PoolHandle, key []byte, value uint64) {
	t.Put(p, key, Uint64Key(value))
}

// Delete - stage a removal
func (t *transaction) Delete(p *PoolHandle, key []byte) {
	prefixedKey := p.prefixKey(key)
	t.batch.Delete(prefixedKey)
	t.stage(prefixedKey, dbDelete, nil)
}

// Get - read including staged values
func (t *transaction) Get(p *PoolHandle, key []byte) []byte {
	prefixedKey := p.prefixKey(key)
	if s, ok := t.pending[string(prefixedKey)]; ok {
		if dbDelete == s.op {
			return nil
		}
		return copyBytes(s.value)
	}
	return p.Get(key)
}

// GetN - read a big endian uint64 including staged values
func (t *transaction) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(p, key))
}

// Has - check existence including staged values
func (t *transaction) Has(p *PoolHandle, key []byte) bool {
	return nil != t.Get(p, key)
}

// Commit - write all staged values atomically
//
// the writer lock is still held until End so the caller can
// bring its memory state up to date before the next transaction
func (t *transaction) Commit() error {
	if t.ended || t.committed {
		return fault.TransactionEnded
	}

	t.db.Lock()
	defer t.db.Unlock()

	if nil == t.db.database {
		return fault.DatabaseIsNotSet
	}
	if t.db.readOnly {
		return fault.DatabaseIsReadOnly
	}

	if err := t.db.database.Write(t.batch, nil); nil != err {
		return err
	}

	for _, k := range t.order {
		s := t.pending[k]
		t.db.cache.Set(s.op, k, s.value)
	}
	t.committed = true
	return nil
}

// End - release the writer, discarding anything not committed
//
// safe to call more than once
func (t *transaction) End() {
	if t.ended {
		return
	}
	t.ended = true
	t.batch.Reset()
	t.pending = nil
	t.db.writer.Unlock()
}
