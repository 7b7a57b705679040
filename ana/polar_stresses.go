// Copyright 2016 The Gompm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions for checking the numerical
// results around the rigid disk and inside the deforming body
package ana

import "math"

// PolarStresses computes stress components w.r.t the polar system centred at
// (xc,yc) from given Cartesian components
func PolarStresses(x, y, xc, yc, sx, sy, sxy float64) (r, sr, st, srt float64) {
	dx, dy := x-xc, y-yc
	r = math.Sqrt(dx*dx + dy*dy)
	β := math.Atan2(dy, dx)
	si, co := math.Sin(β), math.Cos(β)
	ss, cc, cs := si*si, co*co, co*si
	sr = cc*sx + ss*sy + 2.0*cs*sxy
	st = ss*sx + cc*sy - 2.0*cs*sxy
	srt = -cs*sx + cs*sy + (cc-ss)*sxy
	return
}

// PolarVector decomposes the vector (fx,fy) applied at (x,y) into radial and
// tangential components w.r.t the polar system centred at (xc,yc)
func PolarVector(x, y, xc, yc, fx, fy float64) (fr, ft float64) {
	dx, dy := x-xc, y-yc
	r := math.Sqrt(dx*dx + dy*dy)
	if r < 1e-14 {
		return
	}
	co, si := dx/r, dy/r
	fr = co*fx + si*fy
	ft = -si*fx + co*fy
	return
}
