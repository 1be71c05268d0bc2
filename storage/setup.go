// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/logger"
)

// Pools - the set of exported pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type Pools struct {
	State        *PoolHandle `prefix:"S"`
	Identifiers  *PoolHandle `prefix:"I"`
	Assets       *PoolHandle `prefix:"A"`
	Capabilities *PoolHandle `prefix:"K"`
	Stakes       *PoolHandle `prefix:"T"`
	StakeIndex   *PoolHandle `prefix:"X"`
	Events       *PoolHandle `prefix:"E"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion = 0x100

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// DB - an open database with its pools
type DB struct {
	Pools

	// single writer: held from Begin until the transaction ends
	writer sync.Mutex

	// keeps cache and database consistent for readers
	sync.RWMutex

	log      *logger.L
	database *leveldb.DB
	cache    Cache
	readOnly bool
}

// Open - open up the database
func Open(name string, readOnly bool) (*DB, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, err
	}
	return setup(db, readOnly)
}

// OpenMemory - a database that is discarded on close
func OpenMemory() (*DB, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return setup(db, ReadWrite)
}

func setup(db *leveldb.DB, readOnly bool) (*DB, error) {

	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	version, err := getVersion(db)
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		return nil, fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	}
	if 0 == version && !readOnly {
		if err := putVersion(db, currentDBVersion); nil != err {
			return nil, err
		}
	} else if version != currentDBVersion {
		return nil, fmt.Errorf("database version: %d  expected: %d", version, currentDBVersion)
	}

	d := &DB{
		log:      logger.New("storage"),
		database: db,
		cache:    newCache(),
		readOnly: readOnly,
	}

	// this will be a struct type
	poolType := reflect.TypeOf(d.Pools)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&d.Pools).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return nil, fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix: prefix,
			limit:  limit,
			db:     d,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	ok = true // prevent db close
	d.log.Info("opened")
	return d, nil
}

// Close - close the database connection
//
// waits for any active transaction to finish
func (d *DB) Close() {
	d.writer.Lock()
	defer d.writer.Unlock()

	d.Lock()
	defer d.Unlock()

	if nil != d.database {
		d.database.Close()
		d.database = nil
		d.cache.Clear()
		d.log.Info("closed")
	}
}

// Begin - start the single write transaction
//
// blocks until any other transaction has ended
func (d *DB) Begin() Transaction {
	d.writer.Lock()
	return newTransaction(d)
}

func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
