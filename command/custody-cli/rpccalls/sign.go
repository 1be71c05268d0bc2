// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"time"

	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/multisig"
	"github.com/bitmark-inc/custodyd/rpc/auth"
)

// DefaultValidity - how long a signed request stays acceptable
const DefaultValidity = 5 * time.Minute

// Signer - produces the authorisation attached to a call
type Signer interface {
	Authorise(method string, arguments interface{}) (*auth.Authorisation, error)
}

// KeySigner - signs with a single identity
type KeySigner struct {
	Key      *account.PrivateKey
	Validity time.Duration
}

// Authorise - sign for the key's own account
func (s *KeySigner) Authorise(method string, arguments interface{}) (*auth.Authorisation, error) {
	return auth.Sign(method, arguments, s.Key, expiry(s.Validity))
}

// PolicySigner - signs on behalf of a multisig address
type PolicySigner struct {
	Policy   *multisig.Policy
	Keys     []*account.PrivateKey
	Validity time.Duration
}

// Authorise - sign with every key for the policy address
func (s *PolicySigner) Authorise(method string, arguments interface{}) (*auth.Authorisation, error) {
	return auth.SignMultisig(method, arguments, s.Policy, s.Keys, expiry(s.Validity))
}

func expiry(validity time.Duration) time.Time {
	if validity <= 0 || validity > auth.MaximumValidity {
		validity = DefaultValidity
	}
	return time.Now().Add(validity)
}
