// Copyright 2016 The Gompm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mpm implements an explicit material point method (MPM) engine for
// simulating a deformable elastoplastic continuum in frictional contact with
// a moving rigid body. Material points carry the stress/strain state; the
// background grid is a computational scaffold rebuilt every step
package mpm

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/gompm/inp"
	"github.com/cpmech/gompm/msolid"
	"github.com/cpmech/gompm/shp"
)

// number of stress components (Mandel, plane-strain)
const NSIG = 4

// Domain holds the grid and material point state for one simulation.
// Grid and point containers are kept as parallel arrays (structure-of-arrays)
// so the scatter/gather loops stay tight
type Domain struct {

	// data
	Sim  *inp.Simulation // simulation data
	Grid *inp.Grid       // background grid (fixed node positions)
	Mdl  msolid.Model    // constitutive model
	Lam  float64         // λ: Lamé parameter of the material
	Gsh  float64         // G: shear modulus of the material
	Grav float64         // gravity constant

	// grid state; all rewritten every step by P2G (never accumulated across steps)
	Mnod []float64   // [nnod] nodal mass m
	Minv []float64   // [nnod] nodal inverse mass; 0 when m == 0
	Pmom [][]float64 // [nnod][2] nodal momentum mv
	Fint [][]float64 // [nnod][2] internal force (stress divergence + gravity)
	Fext [][]float64 // [nnod][2] external (contact) force
	Vst  [][]float64 // [nnod][2] intermediate velocity vⁿ = mv/m
	Vnod [][]float64 // [nnod][2] velocity after force updates

	// material point state
	Np  int           // number of points (fixed for the whole run)
	Xpt [][]float64   // [np][2] position x
	Vpt [][]float64   // [np][2] velocity v
	Gv  [][][]float64 // [np][2][2] velocity gradient ∇v
	Sig [][]float64   // [np][NSIG] Cauchy stress σ (Mandel)
	Eps [][]float64   // [np][NSIG] accumulated strain ε (Mandel)
	Fdg [][][]float64 // [np][2][2] deformation gradient F
	Vol []float64     // [np] current volume V
	Mpt []float64     // [np] mass m (constant after initialisation)
	Rpt []float64     // [np] radius r (constant, from initial volume)
	Bpt [][]float64   // [np][2] body force b (gravity)

	// rigid body and weights
	Disk *RigidDisk   // the rigid disk (single instance, advanced once per step)
	Wgt  *shp.Weights // particle-node interpolation relation

	// scratchpad
	fno  [][]float64    // [np][2] per-point normal contact force
	mdls []msolid.Model // [ncpu] per-goroutine model instances for the G2P gather
}

// NewDomain allocates a domain: generates the grid, samples material points,
// initialises the constitutive model and the rigid disk
func NewDomain(sim *inp.Simulation) (o *Domain, err error) {

	// basic data
	o = new(Domain)
	o.Sim = sim
	o.Grav = sim.Gravity.F(0, nil)

	// grid
	o.Grid, err = inp.NewGrid(&sim.Grid)
	if err != nil {
		return nil, err
	}

	// constitutive model; one instance per G2P goroutine since the return
	// mapping uses internal scratch tensors
	ncpu := sim.Solver.Ncpu
	if ncpu < 1 {
		ncpu = 1
	}
	o.mdls = make([]msolid.Model, ncpu)
	for i := 0; i < ncpu; i++ {
		o.mdls[i], err = msolid.New(sim.Material.Model)
		if err != nil {
			return nil, err
		}
		err = o.mdls[i].Init(2, sim.Material.Prms)
		if err != nil {
			return nil, err
		}
	}
	o.Mdl = o.mdls[0]
	o.Lam, o.Gsh = o.Mdl.GetLG()
	ρ0 := o.Mdl.GetRho()
	if ρ0 < 1e-14 {
		return nil, chk.Err("material density rho=%g is invalid", ρ0)
	}

	// material points
	X, vpt, err := inp.GenPoints(o.Grid, sim.Grid.Npcell, &sim.Region)
	if err != nil {
		return nil, err
	}
	o.Np = len(X)
	o.Xpt = X
	o.Vpt = la.MatAlloc(o.Np, 2)
	o.Gv = make([][][]float64, o.Np)
	o.Sig = la.MatAlloc(o.Np, NSIG)
	o.Eps = la.MatAlloc(o.Np, NSIG)
	o.Fdg = make([][][]float64, o.Np)
	o.Vol = make([]float64, o.Np)
	o.Mpt = make([]float64, o.Np)
	o.Rpt = make([]float64, o.Np)
	o.Bpt = la.MatAlloc(o.Np, 2)
	o.fno = la.MatAlloc(o.Np, 2)
	for p := 0; p < o.Np; p++ {
		o.Gv[p] = la.MatAlloc(2, 2)
		o.Fdg[p] = la.MatAlloc(2, 2)
		o.Fdg[p][0][0] = 1
		o.Fdg[p][1][1] = 1
		o.Vol[p] = vpt
		o.Mpt[p] = ρ0 * vpt
		o.Rpt[p] = math.Sqrt(vpt / math.Pi)
		o.Bpt[p][1] = -o.Grav
	}

	// grid state
	nn := o.Grid.Nnod
	o.Mnod = make([]float64, nn)
	o.Minv = make([]float64, nn)
	o.Pmom = la.MatAlloc(nn, 2)
	o.Fint = la.MatAlloc(nn, 2)
	o.Fext = la.MatAlloc(nn, 2)
	o.Vst = la.MatAlloc(nn, 2)
	o.Vnod = la.MatAlloc(nn, 2)

	// rigid disk and weights
	o.Disk = NewRigidDisk(&sim.Disk)
	o.Wgt = shp.NewWeights(o.Grid, o.Np, sim.Grid.Kcorr)
	return
}

// ClearGrid zeroes all per-step nodal fields so that no stale values from the
// previous step leak into the next P2G scatter
func (o *Domain) ClearGrid() {
	for n := 0; n < o.Grid.Nnod; n++ {
		o.Mnod[n] = 0
		o.Minv[n] = 0
		o.Pmom[n][0], o.Pmom[n][1] = 0, 0
		o.Fint[n][0], o.Fint[n][1] = 0, 0
		o.Fext[n][0], o.Fext[n][1] = 0, 0
		o.Vst[n][0], o.Vst[n][1] = 0, 0
		o.Vnod[n][0], o.Vnod[n][1] = 0, 0
	}
}

// SumGridMass returns the total mass accumulated on grid nodes
func (o *Domain) SumGridMass() (m float64) {
	for n := 0; n < o.Grid.Nnod; n++ {
		m += o.Mnod[n]
	}
	return
}

// SumPointMass returns the total mass carried by material points
func (o *Domain) SumPointMass() (m float64) {
	for p := 0; p < o.Np; p++ {
		m += o.Mpt[p]
	}
	return
}

// SumFext returns the sum of nodal external (contact) forces
func (o *Domain) SumFext() (f []float64) {
	f = make([]float64, 2)
	for n := 0; n < o.Grid.Nnod; n++ {
		f[0] += o.Fext[n][0]
		f[1] += o.Fext[n][1]
	}
	return
}
