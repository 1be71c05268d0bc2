// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mode - process wide run state and chain selection
package mode

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/custodyd/chain"
	"github.com/bitmark-inc/custodyd/fault"
)

// Mode - run state of the daemon
type Mode int

// all possible modes
const (
	Stopped Mode = iota
	Starting
	Normal
	maximum
)

var globalData struct {
	sync.RWMutex
	log     *logger.L
	mode    Mode
	testing bool
	chain   string

	// set once during initialise
	initialised bool
}

// Initialise - select the chain and enter the starting state
func Initialise(chainName string) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("mode")
	globalData.log.Info("starting…")

	globalData.chain = chainName
	globalData.testing = false
	globalData.mode = Starting

	switch chainName {
	case chain.Bitmark:
		// live accounts
	case chain.Testing, chain.Local:
		globalData.testing = true
	default:
		globalData.log.Criticalf("mode cannot handle chain: '%s'", chainName)
		return fault.InvalidChain
	}

	globalData.initialised = true

	return nil
}

// Finalise - enter the stopped state
func Finalise() error {
	if !IsInitialised() {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	Set(Stopped)

	globalData.Lock()
	globalData.initialised = false
	globalData.Unlock()

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// IsInitialised - true between Initialise and Finalise
func IsInitialised() bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.initialised
}

// Set - change mode
func Set(mode Mode) {
	if mode < Stopped || mode >= maximum {
		globalData.log.Errorf("ignore invalid set: %d", mode)
		return
	}

	globalData.Lock()
	globalData.mode = mode
	globalData.Unlock()

	globalData.log.Infof("set: %s", mode)
}

// Is - detect mode
func Is(mode Mode) bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return mode == globalData.mode
}

// IsNot - detect mode
func IsNot(mode Mode) bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return mode != globalData.mode
}

// IsTesting - true for chains using test accounts
func IsTesting() bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.testing
}

// ChainName - name of the current chain
func ChainName() string {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.chain
}

// String - current mode represented as a string
func String() string {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.mode.String()
}

// String - mode represented as a string
func (m Mode) String() string {
	switch m {
	case Stopped:
		return "Stopped"
	case Starting:
		return "Starting"
	case Normal:
		return "Normal"
	default:
		return "*Unknown*"
	}
}
