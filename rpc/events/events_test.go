// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package events_test

import (
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/custodyd/event"
	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/rpc/events"
	"github.com/bitmark-inc/custodyd/rpc/fixtures"
	"github.com/bitmark-inc/custodyd/rpc/mocks"
)

func TestList(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockJournal(ctl)
	e := events.New(logger.New(fixtures.LogCategory), m)

	records := []event.Record{
		{Sequence: 4, Type: event.PauseStateChangedType, Event: json.RawMessage(`{"paused":true}`)},
		{Sequence: 5, Type: event.PauseStateChangedType, Event: json.RawMessage(`{"paused":false}`)},
	}
	m.EXPECT().Fetch(uint64(4), 2).Return(records, uint64(6), nil).Times(1)

	var reply events.ListReply
	err := e.List(&events.ListArguments{Start: 4, Count: 2}, &reply)
	assert.Nil(t, err, "wrong List")
	assert.Equal(t, records, reply.Events, "wrong events")
	assert.Equal(t, uint64(6), reply.NextStart, "wrong next start")
}

func TestListErrors(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockJournal(ctl)
	e := events.New(logger.New(fixtures.LogCategory), m)

	m.EXPECT().Fetch(uint64(0), 10).Return(nil, uint64(0), fault.DatabaseIsNotSet).Times(1)

	var reply events.ListReply
	err := e.List(&events.ListArguments{Count: 10}, &reply)
	assert.Equal(t, fault.DatabaseIsNotSet, err, "wrong journal error")

	err = e.List(&events.ListArguments{Count: 0}, &reply)
	assert.Equal(t, fault.InvalidCount, err, "wrong zero count")

	err = e.List(&events.ListArguments{Count: 101}, &reply)
	assert.Equal(t, fault.InvalidCount, err, "wrong large count")
}
