// Copyright 2016 The Gompm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"math"

	"github.com/cpmech/gosl/tsr"
)

// VonMisesStresses computes the per-point von Mises stress q(σ)
//  Note: res must have length Np
func (o *Domain) VonMisesStresses(res []float64) {
	for p := 0; p < o.Np; p++ {
		res[p] = tsr.M_q(o.Sig[p])
	}
}

// DeviatoricStrains computes the per-point deviatoric strain invariant
//  εd = sqrt(2/3) * ‖dev(ε)‖
//  Note: res must have length Np
func (o *Domain) DeviatoricStrains(res []float64) {
	for p := 0; p < o.Np; p++ {
		ε := o.Eps[p]
		mean := (ε[0] + ε[1] + ε[2]) / 3.0
		var s float64
		for i := 0; i < NSIG; i++ {
			d := ε[i] - mean*tsr.Im[i]
			s += d * d
		}
		res[p] = math.Sqrt(2.0/3.0) * math.Sqrt(s)
	}
}
