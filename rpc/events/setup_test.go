// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package events_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/custodyd/chain"
	"github.com/bitmark-inc/custodyd/mode"
	"github.com/bitmark-inc/custodyd/rpc/fixtures"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	_ = mode.Initialise(chain.Testing)
	mode.Set(mode.Normal)

	rc := m.Run()

	_ = mode.Finalise()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}
