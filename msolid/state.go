// Copyright 2016 The Gompm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "github.com/cpmech/gosl/la"

// State holds the continuum mechanics state at one material point
type State struct {
	Sig []float64   // σ: current Cauchy stress tensor [nsig]
	Eps []float64   // ε: accumulated small-strain tensor [nsig]
	F   [][]float64 // deformation gradient [ndim][ndim]
}

// NewState allocates a state structure with F initialised to the identity
func NewState(nsig, ndim int) *State {
	var state State
	state.Sig = make([]float64, nsig)
	state.Eps = make([]float64, nsig)
	state.F = la.MatAlloc(ndim, ndim)
	for i := 0; i < ndim; i++ {
		state.F[i][i] = 1
	}
	return &state
}

// Set copies states
//  Note: this and other state must have been pre-allocated with the same sizes
func (o *State) Set(other *State) {
	copy(o.Sig, other.Sig)
	copy(o.Eps, other.Eps)
	la.MatCopy(o.F, 1, other.F)
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	other := NewState(len(o.Sig), len(o.F))
	other.Set(o)
	return other
}
