// Copyright 2016 The Gompm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements simulation output handling for analyses and plotting
package out

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gompm/inp"
	"github.com/cpmech/gompm/mpm"
)

// Global variables
var (

	// data set by Start
	Sim *inp.Simulation // simulation data

	// results loaded by LoadResults
	Times []float64       // output times
	Snaps []*mpm.Snapshot // all snapshots
)

// Start initialises handling of results given a simulation input file
func Start(simfilepath string) {
	Sim = inp.ReadSim(simfilepath, "", false)
	Times = nil
	Snaps = nil
}

// LoadResults reads all saved snapshots
func LoadResults() {
	if Sim == nil {
		chk.Panic("out.Start must be called first")
	}
	for tidx := 0; ; tidx++ {
		s, err := mpm.ReadSnapshot(Sim.DirOut, Sim.Key, Sim.EncType, tidx)
		if err != nil {
			break
		}
		Times = append(Times, s.T)
		Snaps = append(Snaps, s)
	}
	if len(Snaps) == 0 {
		chk.Panic("no results found in %q for simulation %q", Sim.DirOut, Sim.Key)
	}
}

// DiskTrajectory returns the disk centre coordinates over time
func DiskTrajectory() (X, Y []float64) {
	X = make([]float64, len(Snaps))
	Y = make([]float64, len(Snaps))
	for i, s := range Snaps {
		X[i], Y[i] = s.Dx[0], s.Dx[1]
	}
	return
}

// FextHistory returns the total contact force components over time
func FextHistory() (Fx, Fy []float64) {
	Fx = make([]float64, len(Snaps))
	Fy = make([]float64, len(Snaps))
	for i, s := range Snaps {
		Fx[i], Fy[i] = s.Fsum[0], s.Fsum[1]
	}
	return
}
