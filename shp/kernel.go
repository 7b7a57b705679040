// Copyright 2016 The Gompm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements interpolation kernels connecting material points to
// background grid nodes: a quadratic B-spline basis and a weighted
// least-squares (WLS) kernel correction restoring partition of unity and
// linear-field consistency near domain boundaries
package shp

import "math"

// Bspline2 computes the quadratic B-spline basis value for the normalised
// distance r = (x - xnode)/h
func Bspline2(r float64) float64 {
	a := math.Abs(r)
	switch {
	case a < 0.5:
		return 0.75 - a*a
	case a < 1.5:
		return 0.5 * (1.5 - a) * (1.5 - a)
	}
	return 0
}

// Bspline2D computes the derivative of the quadratic B-spline basis with
// respect to r
func Bspline2D(r float64) float64 {
	a := math.Abs(r)
	s := 1.0
	if r < 0 {
		s = -1.0
	}
	switch {
	case a < 0.5:
		return -2.0 * a * s
	case a < 1.5:
		return -(1.5 - a) * s
	}
	return 0
}
