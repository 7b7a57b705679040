// Copyright 2016 The Gompm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gompm/inp"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// newTestSim builds an in-memory simulation: a small grid with an interior
// block of points and the disk parked far away from the material
func newTestSim() *inp.Simulation {
	sim := new(inp.Simulation)
	sim.Grid = inp.GridData{Xmin: 0, Xmax: 0.1, Ymin: 0, Ymax: 0.1, H: 0.01, Npcell: 2, Kcorr: true}
	sim.Region = inp.RegionData{Xmin: 0.02, Xmax: 0.08, Ymin: 0.02, Ymax: 0.05}
	sim.Material = inp.MatData{
		Model: "vm",
		Prms: []*dbf.P{
			&dbf.P{N: "E", V: 1e6},
			&dbf.P{N: "nu", V: 0.3},
			&dbf.P{N: "sigy", V: 1e3},
			&dbf.P{N: "rho", V: 1e3},
		},
	}
	sim.Disk = inp.DiskData{
		D: 0.02, X: []float64{10, 10}, Kpen: 1e6, Mu: 0.6,
		Vx: &dbf.Cte{C: 0}, Vy: &dbf.Cte{C: 0},
	}
	sim.Solver.SetDefault()
	sim.Control = inp.TimeControl{Tf: 0.01, DtOut: 0.005}
	sim.Gravity = &dbf.Cte{C: 9.81}
	return sim
}
