// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package capability - unforgeable admin capabilities
//
// a Capability can only be created by an Authority, and an Authority
// only accepts the exact capability values it issued and has not
// removed, so copies and zero values are rejected
//
// the live count of an Authority never drops below one once it has
// been initialised
package capability
