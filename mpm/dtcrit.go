// Copyright 2016 The Gompm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// CriticalDt computes the CFL-stable time increment from the current point
// state. Per point, the local dilatational wave speed is
//  c = sqrt((λ+2G)/ρ),  ρ = m/V
// and Δt = CFL * h / max(c + |v|). It must be recomputed every iteration:
// density and volume change as the body deforms
func (o *Domain) CriticalDt(cfl float64) (Δt float64, err error) {
	if o.Np == 0 {
		return 0, chk.Err("cannot compute Δt: no material points")
	}
	var vmax float64
	for p := 0; p < o.Np; p++ {
		ρ := o.Mpt[p] / o.Vol[p]
		c := math.Sqrt((o.Lam + 2.0*o.Gsh) / ρ)
		v := math.Sqrt(o.Vpt[p][0]*o.Vpt[p][0] + o.Vpt[p][1]*o.Vpt[p][1])
		if c+v > vmax {
			vmax = c + v
		}
	}
	if vmax < 1e-14 {
		return 0, chk.Err("cannot compute Δt: maximum wave speed is zero")
	}
	return cfl * o.Grid.H / vmax, nil
}
