// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multisig

import (
	"bytes"
	"encoding/binary"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/record"
)

// limits on a policy
const (
	MaximumKeys = 10

	// leading byte of the address preimage
	addressScheme = 0x03

	// precedes each key in the address preimage
	keyScheme = 0x00
)

// Policy - weighted keys and the total weight needed to act
type Policy struct {
	PublicKeys [][]byte `json:"publicKeys"`
	Weights    []uint8  `json:"weights"`
	Threshold  uint16   `json:"threshold"`
}

// Signature - one signature from the key at Index
type Signature struct {
	Index     int               `json:"index"`
	Signature account.Signature `json:"signature"`
}

// NewPolicy - build and validate a policy
func NewPolicy(keys [][]byte, weights []uint8, threshold uint16) (*Policy, error) {
	p := &Policy{
		PublicKeys: make([][]byte, len(keys)),
		Weights:    make([]uint8, len(weights)),
		Threshold:  threshold,
	}
	for i, k := range keys {
		p.PublicKeys[i] = append([]byte{}, k...)
	}
	copy(p.Weights, weights)

	if err := p.Validate(); nil != err {
		return nil, err
	}
	return p, nil
}

// Validate - check the shape of a policy
func (p *Policy) Validate() error {
	n := len(p.PublicKeys)
	if 0 == n {
		return fault.ZeroKeys
	}
	if n > MaximumKeys {
		return fault.TooManyKeys
	}
	if len(p.Weights) != n {
		return fault.PolicyLengthMismatch
	}

	seen := make(map[string]struct{}, n)
	total := uint32(0)
	for i, k := range p.PublicKeys {
		if ed25519.PublicKeySize != len(k) {
			return fault.InvalidKeyLength
		}
		if _, ok := seen[string(k)]; ok {
			return fault.DuplicatePublicKey
		}
		seen[string(k)] = struct{}{}

		if 0 == p.Weights[i] {
			return fault.ZeroWeight
		}
		total += uint32(p.Weights[i])
	}

	if 0 == p.Threshold {
		return fault.ZeroThreshold
	}
	if total < uint32(p.Threshold) {
		return fault.ThresholdUnreachable
	}
	return nil
}

// Address - the account derived from the policy
//
// key order matters, the same keys in a different order give a
// different address
func (p *Policy) Address() *account.Account {
	buffer := []byte{addressScheme}

	threshold := make([]byte, 2)
	binary.LittleEndian.PutUint16(threshold, p.Threshold)
	buffer = append(buffer, threshold...)

	for i, k := range p.PublicKeys {
		buffer = append(buffer, keyScheme)
		buffer = append(buffer, k...)
		buffer = append(buffer, p.Weights[i])
	}

	digest := sha3.Sum256(buffer)
	a, err := account.NewMultisigAccount(digest[:])
	if nil != err {
		// digest size is fixed
		panic(err)
	}
	return a
}

// Verify - check that the valid signatures carry enough weight
//
// any signature that does not verify fails the whole check
func (p *Policy) Verify(message []byte, signatures []Signature) error {
	used := make(map[int]struct{}, len(signatures))
	total := uint32(0)
	for _, s := range signatures {
		if s.Index < 0 || s.Index >= len(p.PublicKeys) {
			return fault.InvalidSignature
		}
		if _, ok := used[s.Index]; ok {
			return fault.InvalidSignature
		}
		used[s.Index] = struct{}{}

		if ed25519.SignatureSize != len(s.Signature) {
			return fault.InvalidSignature
		}
		if !ed25519.Verify(p.PublicKeys[s.Index], message, s.Signature) {
			return fault.InvalidSignature
		}
		total += uint32(p.Weights[s.Index])
	}
	if total < uint32(p.Threshold) {
		return fault.InsufficientSignatures
	}
	return nil
}

// Equal - same keys, weights and threshold in the same order
func (p *Policy) Equal(other *Policy) bool {
	if nil == p || nil == other {
		return p == other
	}
	if p.Threshold != other.Threshold || len(p.PublicKeys) != len(other.PublicKeys) {
		return false
	}
	for i := range p.PublicKeys {
		if !bytes.Equal(p.PublicKeys[i], other.PublicKeys[i]) || p.Weights[i] != other.Weights[i] {
			return false
		}
	}
	return true
}

// IndexOf - position of a public key in the policy, -1 if absent
func (p *Policy) IndexOf(publicKey []byte) int {
	for i, k := range p.PublicKeys {
		if bytes.Equal(k, publicKey) {
			return i
		}
	}
	return -1
}

// Pack - binary form for storage
func (p *Policy) Pack() record.Packed {
	r := record.New(record.PolicyTag).
		AppendUint64(uint64(p.Threshold)).
		AppendUint64(uint64(len(p.PublicKeys)))
	for i, k := range p.PublicKeys {
		r = r.AppendBytes(k).AppendUint64(uint64(p.Weights[i]))
	}
	return r
}

// UnpackPolicy - restore a stored policy
func UnpackPolicy(packed record.Packed) (*Policy, error) {
	r := packed.Read(record.PolicyTag)
	threshold := r.Uint64()
	n := r.Uint64()
	if nil != r.Err() {
		return nil, r.Err()
	}
	if threshold > 0xffff || n > MaximumKeys {
		return nil, fault.NotRecordPack
	}

	keys := make([][]byte, n)
	weights := make([]uint8, n)
	for i := range keys {
		keys[i] = r.Bytes()
		w := r.Uint64()
		if w > 0xff {
			return nil, fault.NotRecordPack
		}
		weights[i] = uint8(w)
	}
	if err := r.Done(); nil != err {
		return nil, err
	}
	return NewPolicy(keys, weights, uint16(threshold))
}
