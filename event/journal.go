// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"encoding/binary"
	"encoding/json"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/messagebus"
	"github.com/bitmark-inc/custodyd/storage"
)

// maximum number of records returned by one fetch
const maximumFetchCount = 100

// Record - a journalled event
type Record struct {
	Sequence uint64          `json:"sequence,string"`
	Type     string          `json:"type"`
	Event    json.RawMessage `json:"event"`
}

// Decode - convert the raw event to its typed form
func (r Record) Decode() (Item, error) {
	item, ok := newItem(r.Type)
	if !ok {
		return nil, fault.UnknownEventType
	}
	if err := json.Unmarshal(r.Event, item); nil != err {
		return nil, err
	}
	return item, nil
}

// Journal - append only event log
type Journal struct {
	sync.RWMutex
	log  *logger.L
	pool *storage.PoolHandle
	bus  *messagebus.Queue
	next uint64
}

// Batch - events staged in one storage transaction
type Batch struct {
	journal *Journal
	trx     storage.Transaction
	next    uint64
	records []Record
}

// NewJournal - open the journal, continuing after the last stored event
//
// bus may be nil if nothing consumes events
func NewJournal(pool *storage.PoolHandle, bus *messagebus.Queue) (*Journal, error) {
	j := &Journal{
		log:  logger.New("journal"),
		pool: pool,
		bus:  bus,
		next: 1,
	}

	if last, found := pool.LastElement(); found {
		if 8 != len(last.Key) {
			return nil, fault.NotRecordPack
		}
		j.next = binary.BigEndian.Uint64(last.Key) + 1
	}

	j.log.Infof("next sequence: %d", j.next)
	return j, nil
}

// Begin - start staging events in a storage transaction
//
// the caller must hold the transaction, which serialises batches
func (j *Journal) Begin(trx storage.Transaction) *Batch {
	j.RLock()
	defer j.RUnlock()

	return &Batch{
		journal: j,
		trx:     trx,
		next:    j.next,
	}
}

// Add - stage one event
func (b *Batch) Add(item Item) error {
	data, err := json.Marshal(item)
	if nil != err {
		return err
	}

	r := Record{
		Sequence: b.next,
		Type:     item.Type(),
		Event:    data,
	}
	packed, err := json.Marshal(r)
	if nil != err {
		return err
	}

	b.trx.Put(b.journal.pool, storage.Uint64Key(r.Sequence), packed)
	b.records = append(b.records, r)
	b.next += 1
	return nil
}

// Records - the staged events
func (b *Batch) Records() []Record {
	return b.records
}

// Done - call after commit to advance the journal and forward events
func (b *Batch) Done() {
	j := b.journal

	j.Lock()
	j.next = b.next
	j.Unlock()

	for _, r := range b.records {
		j.log.Debugf("event: %d  %s", r.Sequence, r.Type)
		if nil != j.bus {
			if !j.bus.Send("journal", r) {
				j.log.Warnf("bus full, event: %d not forwarded", r.Sequence)
			}
		}
	}
}

// Next - sequence number of the next event
func (j *Journal) Next() uint64 {
	j.RLock()
	defer j.RUnlock()

	return j.next
}

// Fetch - read up to count events starting at a sequence number
//
// also returns the sequence to use to continue reading
func (j *Journal) Fetch(start uint64, count int) ([]Record, uint64, error) {
	if count <= 0 || count > maximumFetchCount {
		return nil, 0, fault.InvalidCount
	}

	elements, err := j.pool.NewFetchCursor().Seek(storage.Uint64Key(start)).Fetch(count)
	if nil != err {
		return nil, 0, err
	}

	records := make([]Record, 0, len(elements))
	next := start
	for _, e := range elements {
		var r Record
		if err := json.Unmarshal(e.Value, &r); nil != err {
			return nil, 0, err
		}
		records = append(records, r)
		next = r.Sequence + 1
	}
	return records, next, nil
}
