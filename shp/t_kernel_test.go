// Copyright 2016 The Gompm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"

	"github.com/cpmech/gompm/inp"
)

func Test_bspline01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bspline01. quadratic B-spline basis")

	// values at characteristic points
	chk.Scalar(tst, "B(0)", 1e-15, Bspline2(0), 0.75)
	chk.Scalar(tst, "B(0.5)", 1e-15, Bspline2(0.5), 0.5)
	chk.Scalar(tst, "B(1.5)", 1e-15, Bspline2(1.5), 0)
	chk.Scalar(tst, "B(2)", 1e-15, Bspline2(2), 0)
	chk.Scalar(tst, "B(-0.7)", 1e-15, Bspline2(-0.7), Bspline2(0.7))

	// partition of unity on the [-1.5,1.5] support: for any r the three
	// translates r-1, r, r+1 sum to one
	for _, r := range []float64{-0.49, -0.2, 0, 0.13, 0.37, 0.499} {
		sum := Bspline2(r-1) + Bspline2(r) + Bspline2(r+1)
		chk.Scalar(tst, "Σ B", 1e-14, sum, 1)
		sumd := Bspline2D(r-1) + Bspline2D(r) + Bspline2D(r+1)
		chk.Scalar(tst, "Σ dB", 1e-14, sumd, 0)
	}

	// derivative against numerical differentiation
	for _, r := range []float64{-1.2, -0.8, -0.3, 0.1, 0.45, 0.9, 1.3} {
		dana := Bspline2D(r)
		dnum, _ := num.DerivCen5(r, 1e-3, func(t float64) (B float64, e error) {
			return Bspline2(t), nil
		})
		chk.AnaNum(tst, "dB/dr", 1e-7, dana, dnum, chk.Verbose)
	}

	// continuity across the breakpoints
	δ := 1e-9
	chk.Scalar(tst, "C1 at 0.5", 1e-8, Bspline2D(0.5-δ), Bspline2D(0.5+δ))
	chk.Scalar(tst, "C0 at 1.5", 1e-8, Bspline2(1.5-δ), 0)
}

func Test_weights01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("weights01. stencil weights in the grid interior")

	grd, err := inp.NewGrid(&inp.GridData{Xmin: 0, Xmax: 1, Ymin: 0, Ymax: 1, H: 0.1})
	if err != nil {
		tst.Errorf("NewGrid failed: %v\n", err)
		return
	}

	// interior points, away from the boundary layer: the raw B-spline is
	// already a partition of unity there
	X := [][]float64{
		{0.5, 0.5},
		{0.43, 0.57},
		{0.311, 0.777},
	}
	wgt := NewWeights(grd, len(X), false)
	err = wgt.Update(X)
	if err != nil {
		tst.Errorf("Update failed: %v\n", err)
		return
	}
	for p := 0; p < wgt.Np; p++ {
		if wgt.Nn[p] != MAXNOD {
			tst.Errorf("interior point %d should see %d nodes; got %d\n", p, MAXNOD, wgt.Nn[p])
			return
		}
		var sw, sgx, sgy, sx, sy float64
		for k := 0; k < wgt.Nn[p]; k++ {
			n := wgt.N[p][k]
			sw += wgt.W[p][k]
			sgx += wgt.G[p][k][0]
			sgy += wgt.G[p][k][1]
			sx += wgt.W[p][k] * grd.X[n][0]
			sy += wgt.W[p][k] * grd.X[n][1]
		}
		chk.Scalar(tst, "Σ w", 1e-14, sw, 1)
		chk.Scalar(tst, "Σ ∇w x", 1e-12, sgx, 0)
		chk.Scalar(tst, "Σ ∇w y", 1e-12, sgy, 0)
		chk.Scalar(tst, "Σ w xi = xp", 1e-14, sx, X[p][0])
		chk.Scalar(tst, "Σ w yi = yp", 1e-14, sy, X[p][1])
	}

	// gradient interpolation of a linear field is exact in the interior
	a, b, c := 1.5, -2.0, 3.0
	for p := 0; p < wgt.Np; p++ {
		var gx, gy float64
		for k := 0; k < wgt.Nn[p]; k++ {
			n := wgt.N[p][k]
			f := a + b*grd.X[n][0] + c*grd.X[n][1]
			gx += wgt.G[p][k][0] * f
			gy += wgt.G[p][k][1] * f
		}
		chk.Scalar(tst, "∂f/∂x", 1e-11, gx, b)
		chk.Scalar(tst, "∂f/∂y", 1e-11, gy, c)
	}
}

func Test_weights02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("weights02. kernel correction near the boundary")

	grd, err := inp.NewGrid(&inp.GridData{Xmin: 0, Xmax: 1, Ymin: 0, Ymax: 1, H: 0.1})
	if err != nil {
		tst.Errorf("NewGrid failed: %v\n", err)
		return
	}

	// points whose stencil is clipped by the boundary: without correction
	// the raw weights do not sum to one there
	X := [][]float64{
		{0.03, 0.5},
		{0.97, 0.04},
		{0.5, 0.985},
		{0.02, 0.02},
	}
	raw := NewWeights(grd, len(X), false)
	err = raw.Update(X)
	if err != nil {
		tst.Errorf("Update failed: %v\n", err)
		return
	}
	var swraw float64
	for k := 0; k < raw.Nn[0]; k++ {
		swraw += raw.W[0][k]
	}
	if math.Abs(swraw-1) < 1e-6 {
		tst.Errorf("raw weights near boundary should not sum to 1; got %g\n", swraw)
		return
	}

	// the WLS correction restores partition of unity and linear consistency
	wgt := NewWeights(grd, len(X), true)
	err = wgt.Update(X)
	if err != nil {
		tst.Errorf("Update failed: %v\n", err)
		return
	}
	a, b, c := -0.4, 2.2, 1.1
	for p := 0; p < wgt.Np; p++ {
		var sw, sx, sy, gx, gy float64
		for k := 0; k < wgt.Nn[p]; k++ {
			n := wgt.N[p][k]
			f := a + b*grd.X[n][0] + c*grd.X[n][1]
			sw += wgt.W[p][k]
			sx += wgt.W[p][k] * grd.X[n][0]
			sy += wgt.W[p][k] * grd.X[n][1]
			gx += wgt.G[p][k][0] * f
			gy += wgt.G[p][k][1] * f
		}
		chk.Scalar(tst, "Σ w̃", 1e-12, sw, 1)
		chk.Scalar(tst, "Σ w̃ xi = xp", 1e-12, sx, X[p][0])
		chk.Scalar(tst, "Σ w̃ yi = yp", 1e-12, sy, X[p][1])
		chk.Scalar(tst, "∂f/∂x", 1e-10, gx, b)
		chk.Scalar(tst, "∂f/∂y", 1e-10, gy, c)
	}
}

func Test_weights03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("weights03. point outside the grid")

	grd, err := inp.NewGrid(&inp.GridData{Xmin: 0, Xmax: 1, Ymin: 0, Ymax: 1, H: 0.1})
	if err != nil {
		tst.Errorf("NewGrid failed: %v\n", err)
		return
	}
	wgt := NewWeights(grd, 1, false)
	err = wgt.Update([][]float64{{5.0, 5.0}})
	if err == nil {
		tst.Errorf("Update should have failed for a point outside the grid\n")
	}
}
