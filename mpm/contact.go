// Copyright 2016 The Gompm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// ContactNormal computes the one-sided linear penalty normal force exerted by
// the disk on a material point with position xp and radius rp:
//  gap = R - (|xp - xdisk| - rp);  fn = kpen * gap * (xp-xdisk)/|xp-xdisk|
// fn is zero without interpenetration (gap <= 0); there is no adhesion.
// A point coinciding with the disk centre makes the normal direction
// undefined and is flagged as a fatal condition
func ContactNormal(fn, xp []float64, rp float64, dsk *RigidDisk, kpen float64) (err error) {
	fn[0], fn[1] = 0, 0
	dx := xp[0] - dsk.X[0]
	dy := xp[1] - dsk.X[1]
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < 1e-14 {
		return chk.Err("contact: point @ %v coincides with the disk centre %v", xp, dsk.X)
	}
	gap := dsk.R - (dist - rp)
	if gap > 0 {
		fn[0] = kpen * gap * dx / dist
		fn[1] = kpen * gap * dy / dist
	}
	return
}

// ContactTangent computes the Coulomb friction force for a node carrying the
// normal force fn, relative sliding velocity vrel (node minus disk), mass m
// and time increment Δt. The trial "sticking" force would cancel the
// tangential relative velocity in one step; it is capped to the friction
// cone μ|fn| with direction preserved (return-mapping style)
func ContactTangent(ft, fn, vrel []float64, m, Δt, μ float64) {
	ft[0], ft[1] = 0, 0
	fnorm := math.Sqrt(fn[0]*fn[0] + fn[1]*fn[1])
	if fnorm < 1e-14 {
		return
	}

	// tangential relative velocity: vt = vrel - (vrel·n)n
	nx, ny := fn[0]/fnorm, fn[1]/fnorm
	vdn := vrel[0]*nx + vrel[1]*ny
	vtx := vrel[0] - vdn*nx
	vty := vrel[1] - vdn*ny

	// sticking force
	ft[0] = -m * vtx / Δt
	ft[1] = -m * vty / Δt
	fstick := math.Sqrt(ft[0]*ft[0] + ft[1]*ft[1])
	if fstick < 1e-14 {
		ft[0], ft[1] = 0, 0
		return
	}

	// friction cone cap
	if μ*fnorm < fstick {
		s := μ * fnorm / fstick
		ft[0] *= s
		ft[1] *= s
	}
}
