// Copyright 2016 The Gompm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/cpmech/gompm/inp"
)

// RigidDisk holds the state of the rigid disk: centre position and velocity.
// The velocity is prescribed by time functions and may change between steps;
// the position integrates explicitly, once per step
type RigidDisk struct {

	// state
	X []float64 // centre position
	V []float64 // velocity
	R float64   // radius

	// prescribed kinematics
	vx dbf.T // x-velocity function of time
	vy dbf.T // y-velocity function of time
}

// NewRigidDisk allocates a rigid disk from input data
func NewRigidDisk(dat *inp.DiskData) (o *RigidDisk) {
	o = new(RigidDisk)
	o.X = []float64{dat.X[0], dat.X[1]}
	o.V = []float64{0, 0}
	o.R = dat.D / 2.0
	o.vx = dat.Vx
	o.vy = dat.Vy
	o.SetVelocity(0)
	return
}

// SetVelocity evaluates the prescribed velocity functions at time t
func (o *RigidDisk) SetVelocity(t float64) {
	o.V[0] = o.vx.F(t, nil)
	o.V[1] = o.vy.F(t, nil)
}

// Advance integrates the position explicitly: x += v*Δt
func (o *RigidDisk) Advance(Δt float64) {
	o.X[0] += o.V[0] * Δt
	o.X[1] += o.V[1] * Δt
}

// GetCopy returns an immutable snapshot of the disk state. The transfer
// engine works on snapshots so the shared state cannot change mid-step
func (o *RigidDisk) GetCopy() *RigidDisk {
	return &RigidDisk{
		X: []float64{o.X[0], o.X[1]},
		V: []float64{o.V[0], o.V[1]},
		R: o.R,
	}
}
