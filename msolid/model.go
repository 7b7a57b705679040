// Copyright 2016 The Gompm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msolid implements constitutive models for solids updated in an
// incremental (updated-Lagrangian) fashion. Stress and strain tensors use
// the Mandel basis with nsig=4 components (plane-strain):
//  {σxx, σyy, σzz, σxy*sqrt(2)}
package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines the interface for rate-type solid models
type Model interface {

	// Init initialises the model with parameters
	Init(ndim int, prms dbf.Params) error

	// GetPrms gets (an example of) parameters
	GetPrms() dbf.Params

	// GetRho returns the initial density
	GetRho() float64

	// GetLG returns the elastic Lamé parameters λ and G
	GetLG() (float64, float64)

	// Update updates the stress σ (in-place, Mandel components) for a given
	// incremental displacement gradient Δu == Δt*∇v [ndim][ndim].
	// It must be a pure function of (σ, Δu): no hidden state
	Update(σ []float64, Δu [][]float64) error

	// YieldFunc computes the yield function value at σ
	YieldFunc(σ []float64) float64
}

// New returns a new model
func New(name string) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'msolid' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models; modelname => allocator
var allocators = map[string]func() Model{}
