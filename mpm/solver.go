// Copyright 2016 The Gompm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gompm/inp"
)

// MPM holds all data for a simulation using the material point method
type MPM struct {
	Sim     *inp.Simulation // simulation data
	Dom     *Domain         // grid and point state
	Solver  Solver          // time-stepping solver; e.g. explicit
	Verbose bool            // show messages
}

// NewMPM returns a new MPM structure
//  Input:
//   simfilepath -- simulation (.sim) filename including full path
//   alias       -- word to be appended to simulation key
//   erasePrev   -- erase previous results files
//   verbose     -- show messages
func NewMPM(simfilepath, alias string, erasePrev, verbose bool) (o *MPM) {

	// new object and input data
	o = new(MPM)
	o.Sim = inp.ReadSim(simfilepath, alias, erasePrev)
	o.Verbose = verbose

	// allocate domain
	var err error
	o.Dom, err = NewDomain(o.Sim)
	if err != nil {
		chk.Panic("cannot allocate domain:\n%v", err)
	}

	// allocate solver
	if alloc, ok := solverallocators[o.Sim.Solver.Type]; ok {
		o.Solver = alloc(o.Dom)
	} else {
		chk.Panic("cannot find solver type named %q", o.Sim.Solver.Type)
	}
	return
}

// Run runs the simulation, saving snapshots at the output cadence
func (o *MPM) Run() (err error) {

	// benchmarking
	cputime := time.Now()

	// run
	err = o.Solver.Run(o.Sim.Control.Tf, o.Sim.Control.DtOut, o.Verbose, func(tidx int, t float64) error {
		return o.Dom.SaveSnapshot(tidx, t)
	})
	if err != nil {
		return
	}

	// message
	if o.Verbose {
		io.Pf("\n\nfinal time = %v\n", o.Sim.Control.Tf)
		io.Pfblue2("cpu time   = %v\n", time.Now().Sub(cputime))
	}
	return
}
