// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/bitmark-inc/custodyd/fault"
)

const minimumPasswordLength = 8

var passwordConsole *terminal.Terminal

// raw mode terminal on the controlling tty
func getTerminal() (*terminal.Terminal, int, *terminal.State, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := terminal.MakeRaw(fd)
	if nil != err {
		return nil, 0, nil, err
	}

	if nil == passwordConsole {
		tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
		if nil != err {
			terminal.Restore(fd, oldState)
			return nil, 0, nil, err
		}
		passwordConsole = terminal.NewTerminal(tty, "custody-cli: ")
	}

	return passwordConsole, fd, oldState, nil
}

func readPassword(prompt string) (string, error) {
	console, fd, state, err := getTerminal()
	if nil != err {
		return "", err
	}
	defer terminal.Restore(fd, state)

	return console.ReadPassword(prompt)
}

// ask twice for a new password
func promptNewPassword() (string, error) {
	password, err := readPassword("Set identity password (length >= 8): ")
	if nil != err {
		return "", err
	}
	if len(password) < minimumPasswordLength {
		return "", fault.InvalidPasswordLength
	}

	verify, err := readPassword("Verify password: ")
	if nil != err {
		return "", err
	}
	if password != verify {
		return "", fault.PasswordMismatch
	}
	return password, nil
}

// ask for the password of an identity
func promptPassword(name string) (string, error) {
	return readPassword("password for " + name + ": ")
}
