// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/custodyd/chain"
)

func TestValid(t *testing.T) {
	for _, name := range []string{chain.Bitmark, chain.Testing, chain.Local} {
		assert.True(t, chain.Valid(name), "wrong valid chain: %s", name)
	}
	assert.False(t, chain.Valid("BITMARK"), "wrong case sensitivity")
	assert.False(t, chain.Valid(""), "wrong empty chain")

	assert.False(t, chain.IsTesting(chain.Bitmark), "wrong live chain")
	assert.True(t, chain.IsTesting(chain.Local), "wrong local chain")
}
