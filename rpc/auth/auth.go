// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auth

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/multisig"
)

// MaximumValidity - furthest in the future a request may expire
const MaximumValidity = time.Hour

// name of the arguments field excluded from the signed message
const authField = "auth"

// Authorisation - proof that the principal issued a request
type Authorisation struct {
	Principal  string               `json:"principal"`
	Expires    int64                `json:"expires,string"`
	Nonce      string               `json:"nonce"`
	Signature  account.Signature    `json:"signature,omitempty"`
	Policy     *multisig.Policy     `json:"policy,omitempty"`
	Signatures []multisig.Signature `json:"signatures,omitempty"`
}

// Message - the bytes a principal signs for a call
func Message(method string, expires int64, nonce string, arguments interface{}) ([]byte, error) {
	data, err := json.Marshal(arguments)
	if nil != err {
		return nil, err
	}

	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &fields); nil != err {
		return nil, err
	}
	delete(fields, authField)

	body, err := json.Marshal(fields)
	if nil != err {
		return nil, err
	}

	message := make([]byte, 0, len(method)+len(nonce)+len(body)+24)
	message = append(message, method...)
	message = append(message, 0x00)
	message = strconv.AppendInt(message, expires, 10)
	message = append(message, 0x00)
	message = append(message, nonce...)
	message = append(message, 0x00)
	message = append(message, body...)
	return message, nil
}

// Sign - authorise a call with a single key
func Sign(method string, arguments interface{}, key *account.PrivateKey, expires time.Time) (*Authorisation, error) {
	e := expires.Unix()
	nonce := newNonce()
	message, err := Message(method, e, nonce, arguments)
	if nil != err {
		return nil, err
	}
	return &Authorisation{
		Principal: key.Account().String(),
		Expires:   e,
		Nonce:     nonce,
		Signature: key.Sign(message),
	}, nil
}

// SignMultisig - authorise a call for the address of a policy
//
// every key must belong to the policy, the weight is checked by the
// receiver
func SignMultisig(method string, arguments interface{}, policy *multisig.Policy, keys []*account.PrivateKey, expires time.Time) (*Authorisation, error) {
	if err := policy.Validate(); nil != err {
		return nil, err
	}

	e := expires.Unix()
	nonce := newNonce()
	message, err := Message(method, e, nonce, arguments)
	if nil != err {
		return nil, err
	}

	signatures := make([]multisig.Signature, 0, len(keys))
	for _, key := range keys {
		index := policy.IndexOf(key.PublicKeyBytes())
		if index < 0 {
			return nil, fault.KeyNotInPolicy
		}
		signatures = append(signatures, multisig.Signature{
			Index:     index,
			Signature: key.Sign(message),
		})
	}

	return &Authorisation{
		Principal:  policy.Address().String(),
		Expires:    e,
		Nonce:      nonce,
		Policy:     policy,
		Signatures: signatures,
	}, nil
}

// a fresh value for every request
func newNonce() string {
	return uuid.New().String()
}
