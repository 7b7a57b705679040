// Copyright 2016 The Gompm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/tsr"
)

// VonMises implements the von Mises plasticity model with a Jaumann
// (co-rotational) trial stress, a one-step radial return mapping and an
// unconditional tension cutoff for cohesionless materials
type VonMises struct {
	SmallElasticity
	Sy float64 // yield stress σy

	// auxiliary tensors
	ten []float64   // trial stress σtr
	dev []float64   // deviator of σtr
	nrm []float64   // yield surface gradient N = df/dσ at σtr
	cen []float64   // cᵉ:N
	ce  [][]float64 // elastic stiffness cᵉ in Mandel basis
}

// add model to factory
func init() {
	allocators["vm"] = func() Model { return new(VonMises) }
}

// Init initialises model
func (o *VonMises) Init(ndim int, prms dbf.Params) (err error) {

	// parse parameters
	err = o.SmallElasticity.Init(ndim, prms)
	if err != nil {
		return
	}
	for _, p := range prms {
		switch p.N {
		case "sigy":
			o.Sy = p.V
		case "E", "nu", "l", "G", "K", "rho":
		default:
			return chk.Err("vm: parameter named %q is incorrect", p.N)
		}
	}
	if o.Sy < 1e-14 {
		return chk.Err("vm: yield stress sigy=%g is invalid", o.Sy)
	}

	// auxiliary structures
	o.ten = make([]float64, o.Nsig)
	o.dev = make([]float64, o.Nsig)
	o.nrm = make([]float64, o.Nsig)
	o.cen = make([]float64, o.Nsig)
	o.ce = la.MatAlloc(o.Nsig, o.Nsig)
	o.CalcD(o.ce)
	return
}

// GetPrms gets (an example) of parameters
func (o VonMises) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 1e6},
		&dbf.P{N: "nu", V: 0.49},
		&dbf.P{N: "sigy", V: 1e3},
		&dbf.P{N: "rho", V: 1e3},
	}
}

// YieldFunc computes f = q(σ) - σy with q being the von Mises stress
func (o VonMises) YieldFunc(σ []float64) float64 {
	return tsr.M_q(σ) - o.Sy
}

// Update updates the stress σ (in-place) for a given incremental
// displacement gradient Δu == Δt*∇v. Algorithm:
//  1. trial stress with elastic increment and Jaumann rotation term:
//     σtr = σ + cᵉ:sym(Δu) + 2*sym(σ·skew(Δu))
//  2. if f(σtr) = q(σtr) - σy > 0: radial return with
//     Δγ = f / (N:cᵉ:N),  σ = σtr - Δγ cᵉ:N,  N = df/dσ at σtr
//  3. tension cutoff: if tr(σ) > 0, keep the deviator only
func (o *VonMises) Update(σ []float64, Δu [][]float64) (err error) {

	// strain increment (Mandel components; plane-strain: Δεzz = 0)
	ε0 := Δu[0][0]
	ε1 := Δu[1][1]
	ε3 := (Δu[0][1] + Δu[1][0]) / tsr.SQ2
	trΔε := ε0 + ε1

	// in-plane spin
	ω := 0.5 * (Δu[0][1] - Δu[1][0])

	// trial stress: elastic part
	o.ten[0] = σ[0] + o.L*trΔε + 2.0*o.G*ε0
	o.ten[1] = σ[1] + o.L*trΔε + 2.0*o.G*ε1
	o.ten[2] = σ[2] + o.L*trΔε
	o.ten[3] = σ[3] + 2.0*o.G*ε3

	// trial stress: Jaumann rotation term 2*sym(σ·skew(Δu))
	o.ten[0] -= 2.0 * (σ[3] / tsr.SQ2) * ω
	o.ten[1] += 2.0 * (σ[3] / tsr.SQ2) * ω
	o.ten[3] += tsr.SQ2 * (σ[0] - σ[1]) * ω

	// trial yield function
	q := tsr.M_q(o.ten)
	f := q - o.Sy

	// elastic update
	if f <= 0.0 {
		copy(σ, o.ten)

	} else {

		// gradient of the yield surface: N = (3/2) dev(σtr)/q
		mean := (o.ten[0] + o.ten[1] + o.ten[2]) / 3.0
		for i := 0; i < o.Nsig; i++ {
			o.dev[i] = o.ten[i] - mean*tsr.Im[i]
			o.nrm[i] = 1.5 * o.dev[i] / q
		}

		// plastic multiplier: Δγ = f / (N:cᵉ:N)
		var den float64
		for i := 0; i < o.Nsig; i++ {
			o.cen[i] = 0
			for j := 0; j < o.Nsig; j++ {
				o.cen[i] += o.ce[i][j] * o.nrm[j]
			}
			den += o.nrm[i] * o.cen[i]
		}

		// return mapping
		Δγ := f / den
		for i := 0; i < o.Nsig; i++ {
			σ[i] = o.ten[i] - Δγ*o.cen[i]
		}
	}

	// tension cutoff
	mean := (σ[0] + σ[1] + σ[2]) / 3.0
	if mean > 0.0 {
		for i := 0; i < o.Nsig; i++ {
			σ[i] -= mean * tsr.Im[i]
		}
	}
	return
}
