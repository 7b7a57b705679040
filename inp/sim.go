// Copyright 2016 The Gompm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Data holds global simulation data
type Data struct {

	// global information
	Desc    string `json:"desc"`    // description of simulation
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/gompm
	Encoder string `json:"encoder"` // encoder name; e.g. "gob" or "json"

	// gravity
	GravFcn string `json:"grav"` // name of gravity function; empty => constant 9.81
}

// GridData holds the background grid definition
type GridData struct {
	Xmin   float64 `json:"xmin"`   // min x-coordinate of domain
	Xmax   float64 `json:"xmax"`   // max x-coordinate of domain
	Ymin   float64 `json:"ymin"`   // min y-coordinate of domain
	Ymax   float64 `json:"ymax"`   // max y-coordinate of domain
	H      float64 `json:"h"`      // grid spacing
	Npcell int     `json:"npcell"` // number of material points per cell, per direction; 0 => 2
	Kcorr  bool    `json:"kcorr"`  // apply kernel correction to the B-spline weights
}

// RegionData holds the geometric region initially filled with material points.
// Zero limits default to the grid extents.
type RegionData struct {
	Xmin float64 `json:"xmin"` // min x-coordinate of material region
	Xmax float64 `json:"xmax"` // max x-coordinate of material region
	Ymin float64 `json:"ymin"` // min y-coordinate of material region
	Ymax float64 `json:"ymax"` // max y-coordinate of material region
}

// MatData holds material model name and parameters
type MatData struct {
	Model string     `json:"model"` // model name; e.g. "vm"
	Prms  dbf.Params `json:"prms"`  // parameters; e.g. E, nu, sigy, rho0
}

// DiskData holds the rigid disk geometry, kinematics and contact parameters
type DiskData struct {

	// input
	D     float64   `json:"d"`    // diameter
	X     []float64 `json:"x"`    // initial centre coordinates
	VxFcn string    `json:"vx"`   // name of x-velocity function; empty => zero
	VyFcn string    `json:"vy"`   // name of y-velocity function; empty => zero
	Kpen  float64   `json:"kpen"` // penalty stiffness for normal contact
	Mu    float64   `json:"mu"`   // Coulomb friction coefficient

	// derived
	Vx dbf.T // x-velocity function of time
	Vy dbf.T // y-velocity function of time
}

// SolverData holds explicit solver data
type SolverData struct {
	Type string  `json:"type"` // solver type; e.g. "exp" => explicit
	CFL  float64 `json:"cfl"`  // Courant number; 0 => 0.5
	Ncpu int     `json:"ncpu"` // number of goroutines for the G2P gather; 0 => 1
}

// TimeControl holds data for defining the simulation time stepping
type TimeControl struct {
	Tf    float64 `json:"tf"`    // final (simulated) time
	DtOut float64 `json:"dtout"` // time increment for output; 0 => 1/20
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data        `json:"data"`      // global simulation data
	Functions FuncsData   `json:"functions"` // time functions database
	Grid      GridData    `json:"grid"`      // background grid
	Region    RegionData  `json:"region"`    // initial material region
	Material  MatData     `json:"material"`  // material model and parameters
	Disk      DiskData    `json:"disk"`      // rigid disk
	Solver    SolverData  `json:"solver"`    // solver data
	Control   TimeControl `json:"control"`   // time control

	// derived
	DirOut  string // directory to save results
	Key     string // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
	EncType string // encoder type
	Gravity dbf.T  // gravity function
}

// SetDefault sets default values
func (o *SolverData) SetDefault() {
	o.Type = "exp"
	o.CFL = 0.5
	o.Ncpu = 1
}

// ReadSim reads a simulation file (.sim) and checks it
//  Note: this function panics on errors since a broken input file means
//        the run cannot start at all
func ReadSim(simfilepath, alias string, erasefiles bool) *Simulation {

	// new sim
	var o Simulation

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		chk.Panic("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// set default values
	o.Solver.SetDefault()

	// decode
	err = json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadSim: cannot unmarshal simulation file %q\n%v", simfilepath, err)
	}

	// filename key
	fn := filepath.Base(simfilepath)
	fnkey := io.FnKey(fn)
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/gompm/" + fnkey
	}

	// encoder type
	o.EncType = o.Data.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "gob"
	}

	// create directory and erase previous simulation results
	if erasefiles {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			chk.Panic("ReadSim: cannot create directory for output of results (%s): %v", o.DirOut, err)
		}
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, fnkey))
	}

	// check grid data
	if o.Grid.H < 1e-14 {
		chk.Panic("ReadSim: grid spacing h=%g is invalid", o.Grid.H)
	}
	if o.Grid.Xmax-o.Grid.Xmin < o.Grid.H || o.Grid.Ymax-o.Grid.Ymin < o.Grid.H {
		chk.Panic("ReadSim: grid extents [%g,%g]x[%g,%g] are invalid for h=%g",
			o.Grid.Xmin, o.Grid.Xmax, o.Grid.Ymin, o.Grid.Ymax, o.Grid.H)
	}
	if o.Grid.Npcell == 0 {
		o.Grid.Npcell = 2
	}

	// region defaults
	if o.Region.Xmax-o.Region.Xmin < 1e-14 {
		o.Region.Xmin, o.Region.Xmax = o.Grid.Xmin, o.Grid.Xmax
	}
	if o.Region.Ymax-o.Region.Ymin < 1e-14 {
		o.Region.Ymin, o.Region.Ymax = o.Grid.Ymin, o.Grid.Ymax
	}

	// check time control
	if o.Control.Tf < 1e-14 {
		chk.Panic("ReadSim: final time tf=%g is invalid", o.Control.Tf)
	}
	if o.Control.DtOut < 1e-14 {
		o.Control.DtOut = 1.0 / 20.0
	}

	// check material
	if o.Material.Model == "" {
		chk.Panic("ReadSim: material model name is missing")
	}

	// check disk
	if o.Disk.D < 1e-14 {
		chk.Panic("ReadSim: disk diameter d=%g is invalid", o.Disk.D)
	}
	if len(o.Disk.X) != 2 {
		chk.Panic("ReadSim: disk initial centre coordinates must have 2 components")
	}

	// derived: gravity function
	if o.Data.GravFcn == "" {
		o.Gravity = &dbf.Cte{C: 9.81}
	} else {
		o.Gravity = o.Functions.Get(o.Data.GravFcn)
		if o.Gravity == nil {
			chk.Panic("ReadSim: cannot find gravity function named %q", o.Data.GravFcn)
		}
	}

	// derived: disk velocity functions
	o.Disk.Vx = o.getVelFcn(o.Disk.VxFcn)
	o.Disk.Vy = o.getVelFcn(o.Disk.VyFcn)

	// results
	return &o
}

// Info returns a printable summary of the simulation data
func (o *Simulation) Info() string {
	l := io.Sf("  desc     = %q\n", o.Data.Desc)
	l += io.Sf("  grid     = [%g,%g] x [%g,%g] @ h=%g\n", o.Grid.Xmin, o.Grid.Xmax, o.Grid.Ymin, o.Grid.Ymax, o.Grid.H)
	l += io.Sf("  material = %q %v\n", o.Material.Model, o.Material.Prms)
	l += io.Sf("  disk     = d=%g x=%v kpen=%g mu=%g\n", o.Disk.D, o.Disk.X, o.Disk.Kpen, o.Disk.Mu)
	l += io.Sf("  control  = tf=%g dtout=%g cfl=%g\n", o.Control.Tf, o.Control.DtOut, o.Solver.CFL)
	return l
}

// getVelFcn returns a disk velocity component function; empty name means zero
func (o *Simulation) getVelFcn(name string) dbf.T {
	if name == "" {
		return &dbf.Cte{C: 0}
	}
	f := o.Functions.Get(name)
	if f == nil {
		chk.Panic("ReadSim: cannot find disk velocity function named %q", name)
	}
	return f
}
