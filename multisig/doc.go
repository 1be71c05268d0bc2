// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package multisig - weighted key policies and the gate that restricts
// privileged operations to the address derived from the current policy
//
// the derived address is a normal account of type Multisig so it can
// hold capabilities and assets like any other principal
package multisig
