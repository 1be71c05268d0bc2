// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/bitmark-inc/go-argon2"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/fault"
)

// size of the random prefix stored ahead of each ciphertext
const nonceSize = 24

// Private - decrypted identity
type Private struct {
	PrivateKey  *account.PrivateKey `json:"privateKey"`
	Seed        string              `json:"seed"`
	Description string              `json:"description"`
}

// decryptIdentity - check if password unlocks data in the configuration file
func decryptIdentity(password string, identity *Identity) (*Private, error) {

	if "" == identity.Data {
		return nil, fault.NotAPrivateKey
	}

	salt := new(Salt)
	if err := salt.UnmarshalText([]byte(identity.Salt)); nil != err {
		return nil, fault.NotAPrivateKey
	}

	key, err := generateKey(password, salt)
	if nil != err {
		return nil, err
	}

	seed, err := decryptData(identity.Data, key)
	if nil != err {
		return nil, fault.WrongPassword
	}

	privateKey, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return nil, err
	}

	return &Private{
		PrivateKey:  privateKey,
		Seed:        seed,
		Description: identity.Description,
	}, nil
}

func hashPassword(password string) (*Salt, *[32]byte, error) {
	salt, err := MakeSalt()
	if nil != err {
		return nil, nil, err
	}

	key, err := generateKey(password, salt)
	if nil != err {
		return nil, nil, err
	}
	return salt, key, nil
}

func generateKey(password string, salt *Salt) (*[32]byte, error) {

	ctx := &argon2.Context{
		Iterations:  5,
		Memory:      1 << 16,
		Parallelism: 4,
		HashLen:     32,
		Mode:        argon2.ModeArgon2i,
		Version:     argon2.Version13,
	}

	hash, err := argon2.Hash(ctx, []byte(password), salt.Bytes())
	if nil != err {
		return nil, err
	}

	var secretKey [32]byte
	copy(secretKey[:], hash)
	return &secretKey, nil
}

// encrypt a string and convert to hex
func encryptData(data string, secretKey *[32]byte) (string, error) {

	l := len(data)
	if l < 32 || l >= 16384 {
		return "", fault.CryptoFailed
	}

	// a fresh random nonce for every message
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); nil != err {
		return "", fault.CryptoFailed
	}

	ciphertext := secretbox.Seal(nonce[:], []byte(data), &nonce, secretKey)
	return hex.EncodeToString(ciphertext), nil
}

// decrypt a hex string and return plaintext
func decryptData(ciphertext string, secretKey *[32]byte) (string, error) {

	encrypted, err := hex.DecodeString(ciphertext)
	if nil != err {
		return "", err
	}
	if len(encrypted) <= nonceSize {
		return "", fault.CryptoFailed
	}

	var nonce [nonceSize]byte
	copy(nonce[:], encrypted[:nonceSize])

	decrypted, ok := secretbox.Open(nil, encrypted[nonceSize:], &nonce, secretKey)
	if !ok {
		return "", fault.CryptoFailed
	}
	return string(decrypted), nil
}
