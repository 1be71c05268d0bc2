// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/storage"
)

// Registry - every token id ever minted
//
// there is no removal, a token id is never reused
type Registry struct {
	sync.RWMutex
	log    *logger.L
	pool   *storage.PoolHandle
	tokens map[uint64]Identifier
}

// NewRegistry - load the registry from its pool
func NewRegistry(pool *storage.PoolHandle) (*Registry, error) {
	r := &Registry{
		log:    logger.New("registry"),
		pool:   pool,
		tokens: make(map[uint64]Identifier),
	}

	err := pool.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if 8 != len(key) {
			return fault.NotRecordPack
		}
		id, err := IdentifierFromBytes(value)
		if nil != err {
			return err
		}
		r.tokens[tokenIdFromKey(key)] = id
		return nil
	})
	if nil != err {
		return nil, err
	}

	r.log.Infof("restored: %d token ids", len(r.tokens))
	return r, nil
}

// Check - fail if the token id was ever registered
func (r *Registry) Check(tokenId uint64) error {
	r.RLock()
	defer r.RUnlock()

	if _, ok := r.tokens[tokenId]; ok {
		return fault.DuplicateIdentifier
	}
	return nil
}

// Register - stage the token id, the returned function must be called
// only after the transaction is committed
func (r *Registry) Register(trx storage.Transaction, tokenId uint64, id Identifier) (func(), error) {
	if err := r.Check(tokenId); nil != err {
		return nil, err
	}

	key := storage.Uint64Key(tokenId)
	if trx.Has(r.pool, key) {
		return nil, fault.DuplicateIdentifier
	}
	trx.Put(r.pool, key, id.Bytes())

	apply := func() {
		r.Lock()
		r.tokens[tokenId] = id
		r.Unlock()
	}
	return apply, nil
}

// Has - true if the token id was registered
func (r *Registry) Has(tokenId uint64) bool {
	return nil != r.Check(tokenId)
}

// Lookup - the asset identifier minted with a token id
func (r *Registry) Lookup(tokenId uint64) (Identifier, bool) {
	r.RLock()
	defer r.RUnlock()

	id, ok := r.tokens[tokenId]
	return id, ok
}

// Count - number of registered token ids
func (r *Registry) Count() int {
	r.RLock()
	defer r.RUnlock()

	return len(r.tokens)
}

func tokenIdFromKey(key []byte) uint64 {
	n := uint64(0)
	for _, b := range key {
		n = n<<8 | uint64(b)
	}
	return n
}
