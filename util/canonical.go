// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/bitmark-inc/custodyd/fault"
)

// CanonicalIPandPort - make the IP:Port canonical
//
// examples:
//   IPv4:  127.0.0.1:1234
//   IPv6:  [::1]:1234
//
// a "*" host is expanded to the IPv4 and IPv6 wildcards
func CanonicalIPandPort(hostPort string) ([]string, error) {

	host, port, err := net.SplitHostPort(strings.TrimSpace(hostPort))
	if nil != err {
		return nil, fault.InvalidIpAddress
	}

	numericPort, err := strconv.Atoi(strings.TrimSpace(port))
	if nil != err {
		return nil, fault.InvalidPortNumber
	}
	if numericPort < 1 || numericPort > 65535 {
		return nil, fault.InvalidPortNumber
	}
	p := strconv.Itoa(numericPort)

	host = strings.TrimSpace(host)
	if "*" == host {
		return []string{"0.0.0.0:" + p, "[::]:" + p}, nil
	}

	IP := net.ParseIP(host)
	if nil == IP {
		return nil, fault.InvalidIpAddress
	}

	if nil != IP.To4() {
		return []string{IP.String() + ":" + p}, nil
	}
	return []string{"[" + IP.String() + "]:" + p}, nil
}
