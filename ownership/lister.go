// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/asset"
)

// Lister - read access to the assets held by an account
type Lister interface {
	ListFor(owner *account.Account) []*asset.Asset
	Count() int
}

var _ Lister = (*Inventory)(nil)
