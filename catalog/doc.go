// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package catalog - creates and updates assets
//
// privileged operations need a live catalog capability held by the
// principal and, when multisig is required, the principal must also
// be the address of the configured policy
//
// every operation runs inside one storage transaction:
//
//   begin → validate → stage writes and events → commit → apply to memory → publish
//
// so a failed operation leaves no trace in storage or memory
package catalog
