// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/util"
)

// seed parameters
var (
	seedHeader = []byte{0x5a, 0xfe, 0x01}
	seedNonce  = [24]byte{}
	seedIndex  = [16]byte{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0xe7,
	}
)

const (
	seedPrefixLength   = 1
	seedKeyLength      = 32
	seedChecksumLength = 4
	seedLength         = 40
)

// PrivateKeyFromBase58Seed - derive the private key from a Base58 encoded seed
func PrivateKeyFromBase58Seed(seedBase58Encoded string) (*PrivateKey, error) {

	seed := util.FromBase58(seedBase58Encoded)
	if seedLength != len(seed) {
		return nil, fault.InvalidSeedLength
	}

	checksumStart := seedLength - seedChecksumLength
	digest := sha3.Sum256(seed[:checksumStart])
	if !bytes.Equal(digest[:seedChecksumLength], seed[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	if !bytes.Equal(seedHeader, seed[:len(seedHeader)]) {
		return nil, fault.InvalidSeedHeader
	}

	secretStart := len(seedHeader) + seedPrefixLength
	var sk [seedKeyLength]byte
	copy(sk[:], seed[secretStart:checksumStart])

	// first byte of prefix is test/live indication
	testnet := 0x01 == seed[len(seedHeader)]

	encrypted := secretbox.Seal([]byte{}, seedIndex[:], &seedNonce, &sk)

	_, priv, err := ed25519.GenerateKey(bytes.NewBuffer(encrypted))
	if nil != err {
		return nil, err
	}

	return &PrivateKey{
		Test:       testnet,
		PrivateKey: priv,
	}, nil
}

// NewBase58Seed - generate a random seed
func NewBase58Seed(testnet bool) (string, error) {
	sk := make([]byte, seedKeyLength)
	if _, err := rand.Read(sk); nil != err {
		return "", err
	}

	net := byte(0x00)
	if testnet {
		net = 0x01
	}

	seed := make([]byte, 0, seedLength)
	seed = append(seed, seedHeader...)
	seed = append(seed, net)
	seed = append(seed, sk...)
	checksum := sha3.Sum256(seed)
	seed = append(seed, checksum[:seedChecksumLength]...)

	return util.ToBase58(seed), nil
}
