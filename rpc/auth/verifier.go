// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auth

import (
	"encoding/hex"
	"time"

	cache "github.com/patrickmn/go-cache"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/mode"
)

// how often expired request records are discarded
const replayCleanupInterval = 5 * time.Minute

// Verifier - checks authorisations on incoming calls
type Verifier struct {
	testing bool
	clock   func() time.Time
	seen    *cache.Cache
}

// NewVerifier - verifier for one network
//
// testing selects which single key accounts are accepted
func NewVerifier(testing bool, clock func() time.Time) *Verifier {
	if nil == clock {
		clock = time.Now
	}
	return &Verifier{
		testing: testing,
		clock:   clock,
		seen:    cache.New(MaximumValidity, replayCleanupInterval),
	}
}

// Verify - check a call's authorisation and return its principal
//
// calls are only accepted in normal mode and each signed request is
// accepted once, the record of it is kept until it expires
func (v *Verifier) Verify(method string, arguments interface{}, a *Authorisation) (*account.Account, error) {
	if mode.IsNot(mode.Normal) {
		return nil, fault.NotAvailable
	}
	if nil == a || "" == a.Principal || "" == a.Nonce {
		return nil, fault.MissingParameters
	}

	principal, err := account.AccountFromBase58(a.Principal)
	if nil != err {
		return nil, err
	}

	now := v.clock()
	expires := time.Unix(a.Expires, 0)
	if now.After(expires) {
		return nil, fault.RequestExpired
	}
	remaining := expires.Sub(now)
	if remaining > MaximumValidity {
		return nil, fault.ExpiryTooDistant
	}

	message, err := Message(method, a.Expires, a.Nonce, arguments)
	if nil != err {
		return nil, err
	}

	if err := v.check(principal, message, a); nil != err {
		return nil, err
	}

	// one extra second covers the truncation of expires to seconds
	if err := v.seen.Add(requestKey(principal, message), nil, remaining+time.Second); nil != err {
		return nil, fault.RequestReplayed
	}
	return principal, nil
}

// signature check for a single key or a multisig principal
func (v *Verifier) check(principal *account.Account, message []byte, a *Authorisation) error {
	if nil != a.Policy {
		if !principal.IsMultisig() {
			return fault.NotAMultisigAccount
		}
		if err := a.Policy.Validate(); nil != err {
			return err
		}
		if !a.Policy.Address().Equal(principal) {
			return fault.Unauthorised
		}
		return a.Policy.Verify(message, a.Signatures)
	}

	if principal.IsMultisig() {
		return fault.MissingParameters
	}
	if principal.IsTesting() != v.testing {
		return fault.WrongNetworkForAccount
	}
	return principal.CheckSignature(message, a.Signature)
}

// the same signed message from the same principal, whichever
// signatures were presented with it
func requestKey(principal *account.Account, message []byte) string {
	h := sha3.New256()
	h.Write(principal.Bytes())
	h.Write(message)
	return hex.EncodeToString(h.Sum(nil))
}

// CheckNetwork - all accounts must be present and single key accounts
// must belong to the verifier's network
func (v *Verifier) CheckNetwork(accounts ...*account.Account) error {
	for _, a := range accounts {
		if nil == a || nil == a.AccountInterface {
			return fault.MissingParameters
		}
		if !a.IsMultisig() && a.IsTesting() != v.testing {
			return fault.WrongNetworkForAccount
		}
	}
	return nil
}
