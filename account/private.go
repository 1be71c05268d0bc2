// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/util"
)

// PrivateKey - an ed25519 signing key
type PrivateKey struct {
	Test       bool
	PrivateKey ed25519.PrivateKey
}

// NewPrivateKey - generate a random key pair
func NewPrivateKey(test bool) (*PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{
		Test:       test,
		PrivateKey: priv,
	}, nil
}

// PrivateKeyFromBase58 - this converts a Base58 encoded string and returns a private key
func PrivateKeyFromBase58(privateKeyBase58Encoded string) (*PrivateKey, error) {
	privateKeyDecoded := util.FromBase58(privateKeyBase58Encoded)
	if 0 == len(privateKeyDecoded) {
		return nil, fault.CannotDecodePrivateKey
	}

	keyVariant, keyVariantLength := util.FromVarint64(privateKeyDecoded)
	if 0 == keyVariantLength || keyVariant&publicKeyCode == publicKeyCode {
		return nil, fault.NotAPrivateKey
	}

	if ED25519 != keyVariant>>algorithmShift {
		return nil, fault.InvalidKeyType
	}

	checksumStart := len(privateKeyDecoded) - checksumLength
	if checksumStart <= keyVariantLength {
		return nil, fault.InvalidKeyLength
	}
	checksum := sha3.Sum256(privateKeyDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], privateKeyDecoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	return PrivateKeyFromBytes(privateKeyDecoded[:checksumStart])
}

// PrivateKeyFromBytes - this converts a byte encoded buffer and returns a private key
func PrivateKeyFromBytes(privateKeyBytes []byte) (*PrivateKey, error) {

	keyVariant, keyVariantLength := util.FromVarint64(privateKeyBytes)
	if 0 == keyVariantLength || keyVariant&publicKeyCode == publicKeyCode {
		return nil, fault.NotAPrivateKey
	}

	if ED25519 != keyVariant>>algorithmShift {
		return nil, fault.InvalidKeyType
	}

	if ed25519.PrivateKeySize != len(privateKeyBytes)-keyVariantLength {
		return nil, fault.InvalidKeyLength
	}

	priv := make([]byte, ed25519.PrivateKeySize)
	copy(priv, privateKeyBytes[keyVariantLength:])

	return &PrivateKey{
		Test:       0 != keyVariant&testKeyCode,
		PrivateKey: priv,
	}, nil
}

// Account - return the corresponding account
func (privateKey *PrivateKey) Account() *Account {
	return &Account{
		AccountInterface: &ED25519Account{
			Test:      privateKey.Test,
			PublicKey: privateKey.PrivateKey[ed25519.PrivateKeySize-ed25519.PublicKeySize:],
		},
	}
}

// KeyType - key type code (see enumeration in account.go)
func (privateKey *PrivateKey) KeyType() int {
	return ED25519
}

// IsTesting - return whether the private key is in test mode or not
func (privateKey *PrivateKey) IsTesting() bool {
	return privateKey.Test
}

// PrivateKeyBytes - fetch the private key as byte slice
func (privateKey *PrivateKey) PrivateKeyBytes() []byte {
	return privateKey.PrivateKey[:]
}

// PublicKeyBytes - fetch the public half of the key pair
func (privateKey *PrivateKey) PublicKeyBytes() []byte {
	return privateKey.PrivateKey[ed25519.PrivateKeySize-ed25519.PublicKeySize:]
}

// Sign - produce an ed25519 signature of a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.PrivateKey, message)
}

// Bytes - byte slice for encoded key
func (privateKey *PrivateKey) Bytes() []byte {
	keyVariant := byte(ED25519 << algorithmShift)
	if privateKey.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, privateKey.PrivateKey[:]...)
}

// String - base58 encoding of encoded key
func (privateKey *PrivateKey) String() string {
	return toBase58WithChecksum(privateKey.Bytes())
}

// MarshalText - convert a private key to its Base58 JSON form
func (privateKey PrivateKey) MarshalText() ([]byte, error) {
	return []byte(privateKey.String()), nil
}

// UnmarshalText - convert Base58 text to a private key
func (privateKey *PrivateKey) UnmarshalText(s []byte) error {
	p, err := PrivateKeyFromBase58(string(s))
	if nil != err {
		return err
	}
	*privateKey = *p
	return nil
}
