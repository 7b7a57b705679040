// Copyright 2016 The Gompm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// OutFcn is called at every output sample
type OutFcn func(tidx int, time float64) error

// Solver implements the actual time loop
type Solver interface {
	Run(tf, dtout float64, verbose bool, out OutFcn) error
}

// solverallocators holds all available solvers
var solverallocators = make(map[string]func(dom *Domain) Solver)

// SolverExplicit advances the coupled grid/point state with the explicit MPM
// update. Each iteration strictly orders:
//  Δt computation → weight update → P2G → boundary conditions → G2P →
//  rigid body advance → time bookkeeping
// No iteration starts before the previous one's grid and point states are
// fully committed
type SolverExplicit struct {
	dom *Domain
}

// set factory of solvers
func init() {
	solverallocators["exp"] = func(dom *Domain) Solver {
		solver := new(SolverExplicit)
		solver.dom = dom
		return solver
	}
}

// nextTout advances the output time past t. A single time increment may step
// over several output instants at once; all of them collapse into one sample
func nextTout(tout, t, dtout float64) float64 {
	for t+1e-14 >= tout {
		tout += dtout
	}
	return tout
}

// Run runs the simulation up to the time horizon tf
func (o *SolverExplicit) Run(tf, dtout float64, verbose bool, out OutFcn) (err error) {

	// control
	d := o.dom
	cfl := d.Sim.Solver.CFL
	t := 0.0
	tout := dtout
	tidx := 0

	// first output
	if out != nil {
		err = out(tidx, t)
		if err != nil {
			return chk.Err("cannot save results:\n%v", err)
		}
		tidx++
	}

	// time loop
	for t < tf {

		// time increment from the CFL condition
		var Δt float64
		Δt, err = d.CriticalDt(cfl)
		if err != nil {
			return
		}
		if t+Δt > tf {
			Δt = tf - t
		}

		// prescribed rigid body kinematics and mid-step snapshot
		d.Disk.SetVelocity(t)
		dsk := d.Disk.GetCopy()

		// interpolation weights follow the points
		err = d.Wgt.Update(d.Xpt)
		if err != nil {
			return
		}

		// transfers
		err = d.P2G(dsk, Δt)
		if err != nil {
			return
		}
		d.EnforceBCs()
		err = d.G2P(Δt)
		if err != nil {
			return
		}

		// rigid body advance and time bookkeeping
		d.Disk.Advance(Δt)
		t += Δt

		// message
		if verbose {
			io.PfWhite("%30.15f\r", t)
		}

		// output
		if out != nil && t+1e-14 >= tout {
			err = out(tidx, t)
			if err != nil {
				return chk.Err("cannot save results:\n%v", err)
			}
			tidx++
			tout = nextTout(tout, t, dtout)
		}
	}
	return
}
