// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package event - domain events and the append-only journal
//
// events are written in the same storage transaction as the state
// change that caused them, and are only forwarded to the message bus
// once that transaction has committed
package event
