// Copyright 2016 The Gompm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_solver01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solver01. output cadence")

	// the output time always lands strictly ahead of the current time, even
	// when one increment steps over several output instants at once
	chk.Scalar(tst, "single crossing", 1e-15, nextTout(0.05, 0.05, 0.05), 0.10)
	chk.Scalar(tst, "multiple crossings", 1e-15, nextTout(0.05, 0.23, 0.05), 0.25)
	chk.Scalar(tst, "before the instant", 1e-15, nextTout(0.05, 0.049, 0.05), 0.05)
	chk.Scalar(tst, "exact landing", 1e-15, nextTout(0.10, 0.20, 0.05), 0.25)

	// with Δt larger than dtout the samples must still come out one per step,
	// at strictly increasing times, starting from zero
	sim := newTestSim()
	dom, err := NewDomain(sim)
	if err != nil {
		tst.Errorf("NewDomain failed: %v\n", err)
		return
	}
	solver := solverallocators["exp"](dom)
	var times []float64
	err = solver.Run(1e-3, 5e-5, false, func(tidx int, time float64) error {
		chk.IntAssert(tidx, len(times))
		times = append(times, time)
		return nil
	})
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	if len(times) < 2 {
		tst.Errorf("expected at least two samples; got %d\n", len(times))
		return
	}
	chk.Scalar(tst, "first sample", 1e-15, times[0], 0)
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			tst.Errorf("sample times must increase strictly; got %v\n", times)
			return
		}
	}
}
