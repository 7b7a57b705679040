// Copyright 2016 The Gompm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "github.com/cpmech/gosl/fun/dbf"

// ConfinedComp implements the elastic solution to confined (oedometric)
// compression in plane strain: the vertical strain εv is prescribed while all
// lateral strains vanish. It also provides the geostatic stress profile of a
// column of height H at rest under gravity
type ConfinedComp struct {

	// input
	E   float64 // Young's modulus
	ν   float64 // Poisson's coefficient
	ρ   float64 // density
	g   float64 // gravity constant
	H   float64 // column height
	lam float64 // λ: Lamé parameter
	G   float64 // shear modulus
}

// Init initialises this structure
func (o *ConfinedComp) Init(prms dbf.Params) {

	// default values
	o.E = 1e6
	o.ν = 0.3
	o.ρ = 1e3
	o.g = 9.81
	o.H = 1.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.ν = p.V
		case "rho":
			o.ρ = p.V
		case "g":
			o.g = p.V
		case "H":
			o.H = p.V
		}
	}

	// derived
	o.lam = o.E * o.ν / ((1.0 + o.ν) * (1.0 - 2.0*o.ν))
	o.G = o.E / (2.0 * (1.0 + o.ν))
}

// Stress computes the stresses due to a prescribed vertical strain εv with
// zero lateral strains:
//  σv = (λ+2G) εv,  σh = λ εv  (both horizontal directions)
func (o *ConfinedComp) Stress(εv float64) (σv, σh float64) {
	σv = (o.lam + 2.0*o.G) * εv
	σh = o.lam * εv
	return
}

// GeostaticStress computes the vertical stress at elevation y in a column at
// rest: σv = -ρ g (H - y)
func (o *ConfinedComp) GeostaticStress(y float64) (σv float64) {
	return -o.ρ * o.g * (o.H - y)
}

// K0 returns the coefficient of lateral stress at rest: σh = K0 σv
func (o *ConfinedComp) K0() float64 {
	return o.ν / (1.0 - o.ν)
}
