// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"fmt"
	"os"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/custodyd/account"
	"github.com/bitmark-inc/custodyd/rpc/auth"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// SetupTestLogger - log to a scratch directory at critical level
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// Certificate - a fresh self signed certificate and its key in PEM form
func Certificate() (string, string) {
	validUntil := time.Now().Add(24 * time.Hour)
	cert, key, err := certgen.NewTLSCertPair("custodyd test certificate", validUntil, false, []string{"127.0.0.1"})
	if nil != err {
		panic(err)
	}
	return string(cert), string(key)
}

// Key - a new test network private key
func Key() *account.PrivateKey {
	key, err := account.NewPrivateKey(true)
	if nil != err {
		panic(err)
	}
	return key
}

// Now - fixed time used by verifiers in tests
var Now = time.Unix(1577836800, 0)

// Clock - returns Now
func Clock() time.Time {
	return Now
}

// Verifier - a test network verifier using Clock
func Verifier() *auth.Verifier {
	return auth.NewVerifier(true, Clock)
}

// Sign - authorise a call with one key, valid for a minute after Now
func Sign(method string, arguments interface{}, key *account.PrivateKey) *auth.Authorisation {
	a, err := auth.Sign(method, arguments, key, Now.Add(time.Minute))
	if nil != err {
		panic(err)
	}
	return a
}

type accountMatcher struct {
	account *account.Account
}

// Account - match an account argument by its encoded form
func Account(a *account.Account) gomock.Matcher {
	return accountMatcher{account: a}
}

func (m accountMatcher) Matches(x interface{}) bool {
	a, ok := x.(*account.Account)
	return ok && m.account.Equal(a)
}

func (m accountMatcher) String() string {
	return "is account " + m.account.String()
}
