// Copyright 2016 The Gompm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"math"
	"sync"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/tsr"
)

// P2G performs the particle-to-grid transfer: scatter of mass, affine
// momentum, internal (stress divergence + gravity) forces and weighted normal
// contact forces, followed by the nodal updates. The ordering of the nodal
// updates matters: internal forces update the velocity first, then friction
// is computed against the resulting relative sliding velocity
func (o *Domain) P2G(dsk *RigidDisk, Δt float64) (err error) {

	// clear nodal state
	o.ClearGrid()

	// per-point normal contact forces
	kpen := o.Sim.Disk.Kpen
	for p := 0; p < o.Np; p++ {
		err = ContactNormal(o.fno[p], o.Xpt[p], o.Rpt[p], dsk, kpen)
		if err != nil {
			return
		}
	}

	// scatter over the active (point, node) relation
	for p := 0; p < o.Np; p++ {
		m := o.Mpt[p]
		V := o.Vol[p]
		σxx := o.Sig[p][0]
		σyy := o.Sig[p][1]
		σxy := o.Sig[p][3] / tsr.SQ2
		for k := 0; k < o.Wgt.Nn[p]; k++ {
			n := o.Wgt.N[p][k]
			w := o.Wgt.W[p][k]
			gx := o.Wgt.G[p][k][0]
			gy := o.Wgt.G[p][k][1]

			// mass
			o.Mnod[n] += w * m

			// affine (Taylor-expanded) momentum: mv += w m (v + ∇v·(xi-xp))
			dx := o.Grid.X[n][0] - o.Xpt[p][0]
			dy := o.Grid.X[n][1] - o.Xpt[p][1]
			o.Pmom[n][0] += w * m * (o.Vpt[p][0] + o.Gv[p][0][0]*dx + o.Gv[p][0][1]*dy)
			o.Pmom[n][1] += w * m * (o.Vpt[p][1] + o.Gv[p][1][0]*dx + o.Gv[p][1][1]*dy)

			// internal force: -V σ·∇w (in-plane block) + w m b
			o.Fint[n][0] += -V*(σxx*gx+σxy*gy) + w*m*o.Bpt[p][0]
			o.Fint[n][1] += -V*(σxy*gx+σyy*gy) + w*m*o.Bpt[p][1]

			// external force: contact distributed by kernel weight
			o.Fext[n][0] += w * o.fno[p][0]
			o.Fext[n][1] += w * o.fno[p][1]
		}
	}

	// nodal updates
	var ft, vrel [2]float64
	for n := 0; n < o.Grid.Nnod; n++ {

		// inverse mass; inert nodes keep m⁻¹ == 0 and contribute no motion
		if o.Mnod[n] > 0 {
			o.Minv[n] = 1.0 / o.Mnod[n]
		}

		// intermediate velocity and internal-force update
		o.Vst[n][0] = o.Pmom[n][0] * o.Minv[n]
		o.Vst[n][1] = o.Pmom[n][1] * o.Minv[n]
		o.Vnod[n][0] = o.Vst[n][0] + Δt*o.Fint[n][0]*o.Minv[n]
		o.Vnod[n][1] = o.Vst[n][1] + Δt*o.Fint[n][1]*o.Minv[n]

		// friction against the relative sliding velocity after internal forces
		vrel[0] = o.Vnod[n][0] - dsk.V[0]
		vrel[1] = o.Vnod[n][1] - dsk.V[1]
		ContactTangent(ft[:], o.Fext[n], vrel[:], o.Mnod[n], Δt, o.Sim.Disk.Mu)
		o.Fext[n][0] += ft[0]
		o.Fext[n][1] += ft[1]

		// external-force update
		o.Vnod[n][0] += Δt * o.Fext[n][0] * o.Minv[n]
		o.Vnod[n][1] += Δt * o.Fext[n][1] * o.Minv[n]
	}
	return
}

// G2P performs the grid-to-particle transfer: PIC velocity gather, velocity
// gradient reconstruction, position update, constitutive stress update,
// volume update by the incremental Jacobian and strain accumulation. The
// gather only reads nodal state, so point chunks run in parallel without
// synchronisation when Ncpu > 1
func (o *Domain) G2P(Δt float64) (err error) {

	// sequential
	ncpu := len(o.mdls)
	if ncpu == 1 || o.Np < 2*ncpu {
		return o.g2pChunk(0, 0, o.Np, Δt)
	}

	// parallel chunks
	var wg sync.WaitGroup
	errs := make([]error, ncpu)
	csz := (o.Np + ncpu - 1) / ncpu
	for icpu := 0; icpu < ncpu; icpu++ {
		p0 := icpu * csz
		p1 := p0 + csz
		if p1 > o.Np {
			p1 = o.Np
		}
		wg.Add(1)
		go func(icpu, p0, p1 int) {
			defer wg.Done()
			errs[icpu] = o.g2pChunk(icpu, p0, p1, Δt)
		}(icpu, p0, p1)
	}
	wg.Wait()
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return
}

// g2pChunk updates points p0 <= p < p1 using the icpu-th model instance
func (o *Domain) g2pChunk(icpu, p0, p1 int, Δt float64) (err error) {
	mdl := o.mdls[icpu]
	Δu := [2][2]float64{}
	for p := p0; p < p1; p++ {

		// gather velocity and velocity gradient
		v := o.Vpt[p]
		gv := o.Gv[p]
		v[0], v[1] = 0, 0
		gv[0][0], gv[0][1], gv[1][0], gv[1][1] = 0, 0, 0, 0
		for k := 0; k < o.Wgt.Nn[p]; k++ {
			n := o.Wgt.N[p][k]
			w := o.Wgt.W[p][k]
			gx := o.Wgt.G[p][k][0]
			gy := o.Wgt.G[p][k][1]
			v[0] += w * o.Vnod[n][0]
			v[1] += w * o.Vnod[n][1]
			gv[0][0] += o.Vnod[n][0] * gx
			gv[0][1] += o.Vnod[n][0] * gy
			gv[1][0] += o.Vnod[n][1] * gx
			gv[1][1] += o.Vnod[n][1] * gy
		}

		// position update
		o.Xpt[p][0] += Δt * v[0]
		o.Xpt[p][1] += Δt * v[1]

		// incremental displacement gradient
		Δu[0][0] = Δt * gv[0][0]
		Δu[0][1] = Δt * gv[0][1]
		Δu[1][0] = Δt * gv[1][0]
		Δu[1][1] = Δt * gv[1][1]
		du := [][]float64{Δu[0][:], Δu[1][:]}

		// stress update
		err = mdl.Update(o.Sig[p], du)
		if err != nil {
			return
		}

		// volume update: V *= det(I + ∇u)
		J := (1.0+Δu[0][0])*(1.0+Δu[1][1]) - Δu[0][1]*Δu[1][0]
		o.Vol[p] *= J

		// strain accumulation: ε += sym(∇u)
		o.Eps[p][0] += Δu[0][0]
		o.Eps[p][1] += Δu[1][1]
		o.Eps[p][3] += (Δu[0][1] + Δu[1][0]) / tsr.SQ2

		// deformation gradient: F = (I + ∇u) F
		f00, f01 := o.Fdg[p][0][0], o.Fdg[p][0][1]
		f10, f11 := o.Fdg[p][1][0], o.Fdg[p][1][1]
		o.Fdg[p][0][0] = (1.0+Δu[0][0])*f00 + Δu[0][1]*f10
		o.Fdg[p][0][1] = (1.0+Δu[0][0])*f01 + Δu[0][1]*f11
		o.Fdg[p][1][0] = Δu[1][0]*f00 + (1.0+Δu[1][1])*f10
		o.Fdg[p][1][1] = Δu[1][0]*f01 + (1.0+Δu[1][1])*f11

		// divergence check
		if math.IsNaN(o.Xpt[p][0]) || math.IsNaN(o.Xpt[p][1]) || math.IsNaN(o.Sig[p][0]) ||
			math.IsInf(o.Xpt[p][0], 0) || math.IsInf(o.Xpt[p][1], 0) || math.IsInf(o.Sig[p][0], 0) {
			return chk.Err("simulation diverged: NaN or Inf detected at point %d", p)
		}
	}
	return
}
