// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package auth - signed request authorisation for RPC calls
//
// every mutating call carries an authorisation naming its principal,
// an expiry time and either one ed25519 signature or, for a multisig
// principal, the policy that derives the address and enough
// signatures from its keys.  The signed message is:
//
//   method 0x00 expiry 0x00 JSON(arguments without "auth")
//
// where expiry is the decimal unix time in seconds and the JSON has
// object keys in sorted order.
package auth
