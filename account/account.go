// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/util"
)

// enumeration of supported key algorithms
const (
	// list of valid algorithms
	Nothing  = iota // zero keytype **Just for Testing**
	ED25519  = iota
	Multisig = iota // digest of a weighted key policy
	// end of list (one greater than last item)
	algorithmLimit = iota
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm

	// MultisigDigestSize - length of the digest identifying a multisig account
	MultisigDigestSize = 32
)

// Account - base type for accounts
type Account struct {
	AccountInterface
}

// AccountInterface - the methods every account variant provides
type AccountInterface interface {
	KeyType() int
	PublicKeyBytes() []byte
	CheckSignature(message []byte, signature Signature) error
	Bytes() []byte
	String() string
	MarshalText() ([]byte, error)
	IsTesting() bool
}

// ED25519Account - for ed25519 signatures
type ED25519Account struct {
	Test      bool
	PublicKey []byte
}

// MultisigAccount - address derived from a multisig policy
//
// there is no single key for this account, signatures are verified
// against the policy that produced the digest
type MultisigAccount struct {
	Digest []byte
}

// NewMultisigAccount - wrap a policy digest as an account
func NewMultisigAccount(digest []byte) (*Account, error) {
	if MultisigDigestSize != len(digest) {
		return nil, fault.InvalidKeyLength
	}
	d := make([]byte, MultisigDigestSize)
	copy(d, digest)
	return &Account{
		AccountInterface: &MultisigAccount{
			Digest: d,
		},
	}, nil
}

// AccountFromBase58 - this converts a Base58 encoded string and returns an account
//
// one of the specific account types are returned using the base "AccountInterface"
// interface type to allow individual methods to be called.
func AccountFromBase58(accountBase58Encoded string) (*Account, error) {
	accountDecoded := util.FromBase58(accountBase58Encoded)
	if 0 == len(accountDecoded) {
		return nil, fault.CannotDecodeAccount
	}

	keyVariant, keyVariantLength := util.FromVarint64(accountDecoded)
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.NotAPublicKey
	}

	keyAlgorithm := keyVariant >> algorithmShift
	if keyAlgorithm >= algorithmLimit {
		return nil, fault.InvalidKeyType
	}

	checksumStart := len(accountDecoded) - checksumLength
	if checksumStart <= keyVariantLength {
		return nil, fault.InvalidKeyLength
	}
	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	return AccountFromBytes(accountDecoded[:checksumStart])
}

// AccountFromBytes - this converts a byte encoded buffer and returns an account
func AccountFromBytes(accountBytes []byte) (*Account, error) {

	keyVariant, keyVariantLength := util.FromVarint64(accountBytes)
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.NotAPublicKey
	}

	keyAlgorithm := keyVariant >> algorithmShift
	if keyAlgorithm >= algorithmLimit {
		return nil, fault.InvalidKeyType
	}

	isTest := 0 != keyVariant&testKeyCode

	keyLength := len(accountBytes) - keyVariantLength
	if keyLength <= 0 {
		return nil, fault.InvalidKeyLength
	}

	key := make([]byte, keyLength)
	copy(key, accountBytes[keyVariantLength:])

	switch keyAlgorithm {
	case ED25519:
		if keyLength != ed25519.PublicKeySize {
			return nil, fault.InvalidKeyLength
		}
		account := &Account{
			AccountInterface: &ED25519Account{
				Test:      isTest,
				PublicKey: key,
			},
		}
		return account, nil

	case Multisig:
		if isTest {
			return nil, fault.InvalidKeyType
		}
		return NewMultisigAccount(key)

	default:
		return nil, fault.InvalidKeyType
	}
}

// Equal - compare the encoded form of two accounts
func (account *Account) Equal(other *Account) bool {
	if nil == account || nil == other || nil == account.AccountInterface || nil == other.AccountInterface {
		return false
	}
	return bytes.Equal(account.Bytes(), other.Bytes())
}

// Key - encoded form suitable as a map key
func (account *Account) Key() string {
	return string(account.Bytes())
}

// IsMultisig - true if the account is derived from a multisig policy
func (account *Account) IsMultisig() bool {
	return Multisig == account.KeyType()
}

// UnmarshalText - convert Base58 text to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromBase58(string(s))
	if nil != err {
		return err
	}
	account.AccountInterface = a.AccountInterface
	return nil
}

// ED25519
// -------

// KeyType - key type code (see enumeration above)
func (account *ED25519Account) KeyType() int {
	return ED25519
}

// PublicKeyBytes - fetch the public key as byte slice
func (account *ED25519Account) PublicKeyBytes() []byte {
	return account.PublicKey[:]
}

// CheckSignature - check the signature of a message
func (account *ED25519Account) CheckSignature(message []byte, signature Signature) error {

	if ed25519.SignatureSize != len(signature) {
		return fault.InvalidSignature
	}

	if !ed25519.Verify(account.PublicKey[:], message, signature) {
		return fault.InvalidSignature
	}
	return nil
}

// Bytes - byte slice for encoded key
func (account *ED25519Account) Bytes() []byte {
	keyVariant := byte(ED25519<<algorithmShift) | publicKeyCode
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, account.PublicKey[:]...)
}

// String - base58 encoding of encoded key
func (account *ED25519Account) String() string {
	return toBase58WithChecksum(account.Bytes())
}

// MarshalText - convert an account to its Base58 JSON form
func (account ED25519Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// IsTesting - return whether the public key is in test mode or not
func (account ED25519Account) IsTesting() bool {
	return account.Test
}

// Multisig
// --------

// KeyType - key type code (see enumeration above)
func (account *MultisigAccount) KeyType() int {
	return Multisig
}

// PublicKeyBytes - the policy digest
func (account *MultisigAccount) PublicKeyBytes() []byte {
	return account.Digest[:]
}

// CheckSignature - a multisig account cannot verify a single signature
func (account *MultisigAccount) CheckSignature(message []byte, signature Signature) error {
	return fault.InvalidSignature
}

// Bytes - byte slice for encoded digest
func (account *MultisigAccount) Bytes() []byte {
	keyVariant := byte(Multisig<<algorithmShift) | publicKeyCode
	return append([]byte{keyVariant}, account.Digest[:]...)
}

// String - base58 encoding of encoded digest
func (account *MultisigAccount) String() string {
	return toBase58WithChecksum(account.Bytes())
}

// MarshalText - convert an account to its Base58 JSON form
func (account MultisigAccount) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// IsTesting - multisig addresses are network independent
func (account MultisigAccount) IsTesting() bool {
	return false
}

func toBase58WithChecksum(buffer []byte) string {
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return util.ToBase58(buffer)
}
