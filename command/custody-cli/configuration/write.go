// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"encoding/json"
	"io/ioutil"
	"os"
)

// Save - write the configuration, keeping the previous file as a backup
func Save(filename string, configuration *Configuration) error {

	tempFile := filename + ".new"
	previousFile := filename + ".bk"

	data, err := json.MarshalIndent(configuration, "", "  ")
	if nil != err {
		return err
	}
	data = append(data, '\n')

	// identities hold encrypted keys
	if err := ioutil.WriteFile(tempFile, data, 0600); nil != err {
		return err
	}

	if err := os.Remove(previousFile); nil != err && !os.IsNotExist(err) {
		return err
	}
	if err := os.Rename(filename, previousFile); nil != err && !os.IsNotExist(err) {
		return err
	}
	return os.Rename(tempFile, filename)
}
