// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"
	"io/ioutil"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/util"
)

// Fingerprint - SHA3-256 of a DER certificate
type Fingerprint [32]byte

// Load - read PEM certificate and key files, then call Get
func Load(log *logger.L, name string, certificateFileName string, keyFileName string) (*tls.Config, Fingerprint, error) {
	var fin Fingerprint

	if !util.EnsureFileExists(certificateFileName) {
		log.Errorf("%s certificate: %q does not exist", name, certificateFileName)
		return nil, fin, fault.CertificateFileNotFound
	}
	if !util.EnsureFileExists(keyFileName) {
		log.Errorf("%s private key: %q does not exist", name, keyFileName)
		return nil, fin, fault.KeyFileNotFound
	}

	certificate, err := ioutil.ReadFile(certificateFileName)
	if nil != err {
		return nil, fin, err
	}
	key, err := ioutil.ReadFile(keyFileName)
	if nil != err {
		return nil, fin, err
	}
	return Get(log, name, string(certificate), string(key))
}

// Get - verify a PEM certificate and key pair and return the TLS
// configuration for serving with it
func Get(log *logger.L, name string, certificate string, key string) (*tls.Config, Fingerprint, error) {
	var fin Fingerprint

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if nil != err {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
		MinVersion: tls.VersionTLS12,
	}

	fin = fingerprint(keyPair.Certificate[0])
	log.Infof("%s SHA3-256 fingerprint: %x", name, fin)

	return tlsConfiguration, fin, nil
}

// FreeBSD: openssl x509 -outform DER -in custodyd-rpc.crt | sha3sum -a 256
func fingerprint(certificate []byte) Fingerprint {
	return sha3.Sum256(certificate)
}
