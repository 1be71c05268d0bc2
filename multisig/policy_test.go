// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multisig_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/multisig"
)

func makeKeys(t *testing.T, n int) ([]*account.PrivateKey, [][]byte) {
	privateKeys := make([]*account.PrivateKey, n)
	publicKeys := make([][]byte, n)
	for i := range privateKeys {
		k, err := account.NewPrivateKey(true)
		if nil != err {
			t.Fatalf("new private key error: %s", err)
		}
		privateKeys[i] = k
		publicKeys[i] = k.PublicKeyBytes()
	}
	return privateKeys, publicKeys
}

func fixedKey(b byte) []byte {
	return bytes.Repeat([]byte{b}, 32)
}

func TestValidate(t *testing.T) {
	eleven := make([][]byte, 11)
	elevenWeights := make([]uint8, 11)
	for i := range eleven {
		eleven[i] = fixedKey(byte(i + 1))
		elevenWeights[i] = 1
	}

	tests := []struct {
		keys      [][]byte
		weights   []uint8
		threshold uint16
		err       error
	}{
		{[][]byte{fixedKey(1)}, []uint8{1}, 1, nil},
		{[][]byte{fixedKey(1), fixedKey(2), fixedKey(3)}, []uint8{1, 1, 1}, 3, nil},
		{[][]byte{fixedKey(1), fixedKey(2)}, []uint8{200, 200}, 400, nil},
		{nil, nil, 1, fault.ZeroKeys},
		{eleven, elevenWeights, 1, fault.TooManyKeys},
		{[][]byte{fixedKey(1), fixedKey(2)}, []uint8{1}, 1, fault.PolicyLengthMismatch},
		{[][]byte{fixedKey(1)[1:]}, []uint8{1}, 1, fault.InvalidKeyLength},
		{[][]byte{fixedKey(1), fixedKey(1)}, []uint8{1, 1}, 1, fault.DuplicatePublicKey},
		{[][]byte{fixedKey(1), fixedKey(2)}, []uint8{1, 0}, 1, fault.ZeroWeight},
		{[][]byte{fixedKey(1)}, []uint8{1}, 0, fault.ZeroThreshold},
		{[][]byte{fixedKey(1), fixedKey(2)}, []uint8{1, 1}, 3, fault.ThresholdUnreachable},
	}

	for i, test := range tests {
		_, err := multisig.NewPolicy(test.keys, test.weights, test.threshold)
		assert.Equal(t, test.err, err, "%d: new policy", i)
	}
}

func TestAddressDeterminism(t *testing.T) {
	keys := [][]byte{fixedKey(1), fixedKey(2), fixedKey(3)}

	p1, err := multisig.NewPolicy(keys, []uint8{1, 1, 1}, 3)
	assert.Nil(t, err, "p1")
	p2, err := multisig.NewPolicy(keys, []uint8{1, 1, 1}, 3)
	assert.Nil(t, err, "p2")

	a1 := p1.Address()
	assert.True(t, a1.IsMultisig(), "multisig")
	assert.True(t, a1.Equal(p2.Address()), "same policy, different address")
	assert.Equal(t, a1.String(), p1.Address().String(), "repeat derivation")

	variants := []*multisig.Policy{
		{PublicKeys: keys, Weights: []uint8{1, 1, 1}, Threshold: 2},
		{PublicKeys: keys, Weights: []uint8{1, 1, 2}, Threshold: 3},
		{PublicKeys: [][]byte{keys[1], keys[0], keys[2]}, Weights: []uint8{1, 1, 1}, Threshold: 3},
		{PublicKeys: keys[:2], Weights: []uint8{1, 2}, Threshold: 3},
	}
	for i, v := range variants {
		assert.False(t, a1.Equal(v.Address()), "%d: variant has same address", i)
	}

	decoded, err := account.AccountFromBase58(a1.String())
	assert.Nil(t, err, "address from base58")
	assert.True(t, a1.Equal(decoded), "address round trip")
}

func TestVerify(t *testing.T) {
	privateKeys, publicKeys := makeKeys(t, 3)
	p, err := multisig.NewPolicy(publicKeys, []uint8{2, 1, 1}, 3)
	if !assert.Nil(t, err, "new policy") {
		return
	}

	message := []byte("Catalog.Mint")
	sign := func(i int) multisig.Signature {
		return multisig.Signature{Index: i, Signature: privateKeys[i].Sign(message)}
	}

	assert.Nil(t, p.Verify(message, []multisig.Signature{sign(0), sign(1)}), "2+1")
	assert.Nil(t, p.Verify(message, []multisig.Signature{sign(0), sign(1), sign(2)}), "all")
	assert.Equal(t, fault.InsufficientSignatures, p.Verify(message, []multisig.Signature{sign(1), sign(2)}), "1+1")
	assert.Equal(t, fault.InsufficientSignatures, p.Verify(message, nil), "none")
	assert.Equal(t, fault.InvalidSignature, p.Verify(message, []multisig.Signature{sign(0), sign(0)}), "repeated key")
	assert.Equal(t, fault.InvalidSignature, p.Verify(message, []multisig.Signature{{Index: 3, Signature: sign(0).Signature}}), "index out of range")

	wrong := multisig.Signature{Index: 1, Signature: privateKeys[2].Sign(message)}
	assert.Equal(t, fault.InvalidSignature, p.Verify(message, []multisig.Signature{sign(0), wrong}), "wrong signer")
	assert.Equal(t, fault.InvalidSignature, p.Verify([]byte("Catalog.Update"), []multisig.Signature{sign(0), sign(1)}), "wrong message")
}

func TestIndexOf(t *testing.T) {
	_, publicKeys := makeKeys(t, 2)
	p, err := multisig.NewPolicy(publicKeys, []uint8{1, 1}, 2)
	if !assert.Nil(t, err, "new policy") {
		return
	}

	assert.Equal(t, 0, p.IndexOf(publicKeys[0]), "first key")
	assert.Equal(t, 1, p.IndexOf(publicKeys[1]), "second key")
	assert.Equal(t, -1, p.IndexOf(fixedKey(7)), "absent key")
}

func TestPack(t *testing.T) {
	_, publicKeys := makeKeys(t, 4)
	p, err := multisig.NewPolicy(publicKeys, []uint8{1, 2, 3, 4}, 7)
	if !assert.Nil(t, err, "new policy") {
		return
	}

	restored, err := multisig.UnpackPolicy(p.Pack())
	assert.Nil(t, err, "unpack")
	assert.True(t, p.Equal(restored), "restored policy differs")
	assert.True(t, p.Address().Equal(restored.Address()), "restored address differs")

	_, err = multisig.UnpackPolicy(p.Pack()[:10])
	assert.Equal(t, fault.NotRecordPack, err, "truncated")
}
