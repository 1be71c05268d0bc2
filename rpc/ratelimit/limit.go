// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/custodyd/fault"
)

// Limit - wait for a single request slot
func Limit(limiter *rate.Limiter) error {
	return reserve(limiter, 1)
}

// LimitN - wait for one slot per item of a batch request
//
// a count outside 1..maximumCount still consumes one slot so that
// malformed requests are limited too
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	if count <= 0 || count > maximumCount {
		if err := reserve(limiter, 1); nil != err {
			return err
		}
		return fault.InvalidCount
	}
	return reserve(limiter, count)
}

func reserve(limiter *rate.Limiter, n int) error {
	r := limiter.ReserveN(time.Now(), n)
	if !r.OK() {
		return fault.RateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}
