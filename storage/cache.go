// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Cache - read cache of committed values
type Cache interface {
	Get(string) ([]byte, bool, bool)
	Set(dbOperation, string, []byte)
	Clear()
}

type dbOperation int

const (
	dbPut dbOperation = iota
	dbDelete
)

const (
	defaultExpiration = 2 * time.Minute
	cleanupInterval   = 1 * time.Minute
)

type dbCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    dbOperation
	value []byte
}

func newCache() Cache {
	return &dbCache{
		cache: cache.New(defaultExpiration, cleanupInterval),
	}
}

// Get - returns: value, exists, cached
//
// a cached delete is reported as cached but not existing
func (c *dbCache) Get(key string) ([]byte, bool, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, false, false
	}

	data := obj.(cacheData)
	if dbDelete == data.op {
		return nil, false, true
	}
	return data.value, true, true
}

func (c *dbCache) Set(op dbOperation, key string, value []byte) {
	cached := cacheData{
		op:    op,
		value: value,
	}
	c.cache.Set(key, cached, cache.DefaultExpiration)
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
