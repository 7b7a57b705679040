// Copyright 2016 The Gompm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/tsr"
)

// SmallElasticity implements linear isotropic elasticity for small-strain
// increments. It is embedded by the elastoplastic models
type SmallElasticity struct {

	// parameters
	E   float64 // Young's modulus
	Nu  float64 // Poisson's coefficient
	L   float64 // Lamé's λ
	G   float64 // shear modulus
	K   float64 // bulk modulus
	Rho float64 // initial density

	// derived
	Ndim int // space dimension
	Nsig int // number of σ and ε components
}

// Init initialises this structure
func (o *SmallElasticity) Init(ndim int, prms dbf.Params) (err error) {
	o.Ndim = ndim
	o.Nsig = 2 * ndim
	var hasE, hasν, hasl, hasG, hasK bool
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E, hasE = p.V, true
		case "nu":
			o.Nu, hasν = p.V, true
		case "l":
			o.L, hasl = p.V, true
		case "G":
			o.G, hasG = p.V, true
		case "K":
			o.K, hasK = p.V, true
		case "rho":
			o.Rho = p.V
		}
	}
	switch {
	case hasE && hasν:
		o.L = Calc_l_from_Enu(o.E, o.Nu)
		o.G = Calc_G_from_Enu(o.E, o.Nu)
		o.K = Calc_K_from_Enu(o.E, o.Nu)
	case hasl && hasG:
		o.E = o.G * (3.0*o.L + 2.0*o.G) / (o.L + o.G)
		o.Nu = o.L / (2.0 * (o.L + o.G))
		o.K = o.L + 2.0*o.G/3.0
	case hasK && hasG:
		o.L = o.K - 2.0*o.G/3.0
		o.E = 9.0 * o.K * o.G / (3.0*o.K + o.G)
		o.Nu = (3.0*o.K - 2.0*o.G) / (2.0 * (3.0*o.K + o.G))
	default:
		return chk.Err("elastic parameters missing: need {E,nu}, {l,G} or {K,G}")
	}
	if o.G < 1e-14 {
		return chk.Err("shear modulus G=%g is invalid", o.G)
	}
	return
}

// CalcD computes the elastic stiffness cᵉ = λ δ⊗δ + 2G I in the Mandel basis
func (o *SmallElasticity) CalcD(D [][]float64) {
	for i := 0; i < o.Nsig; i++ {
		for j := 0; j < o.Nsig; j++ {
			D[i][j] = o.L * tsr.Im[i] * tsr.Im[j]
		}
		D[i][i] += 2.0 * o.G
	}
}

// GetRho returns the initial density
func (o *SmallElasticity) GetRho() float64 { return o.Rho }

// GetLG returns the Lamé parameters λ and G
func (o *SmallElasticity) GetLG() (float64, float64) { return o.L, o.G }

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// Calc_K_from_Enu computes the bulk modulus K from E and ν
func Calc_K_from_Enu(E, ν float64) float64 {
	return E / (3.0 * (1.0 - 2.0*ν))
}

// Calc_G_from_Enu computes the shear modulus G from E and ν
func Calc_G_from_Enu(E, ν float64) float64 {
	return E / (2.0 * (1.0 + ν))
}

// Calc_l_from_Enu computes Lamé's λ from E and ν
func Calc_l_from_Enu(E, ν float64) float64 {
	return E * ν / ((1.0 + ν) * (1.0 - 2.0*ν))
}
