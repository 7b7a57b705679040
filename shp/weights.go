// Copyright 2016 The Gompm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/gompm/inp"
)

// maximum number of active nodes per point (3x3 stencil of the quadratic B-spline)
const MAXNOD = 9

// Weights holds the particle-node interpolation relation: for each material
// point, the set of nearby grid nodes with weight w and weight-gradient ∇w.
// The relation is fully recomputed (not incrementally updated) every step as
// the points move
type Weights struct {

	// data
	Grid  *inp.Grid // background grid (node positions only)
	Kcorr bool      // apply WLS kernel correction
	Np    int       // number of material points

	// relation: per point
	Nn []int         // [np] number of active nodes
	N  [][]int       // [np][MAXNOD] active node indices
	W  [][]float64   // [np][MAXNOD] weights
	G  [][][]float64 // [np][MAXNOD][2] weight gradients

	// scratchpad for the WLS correction
	mom [][]float64 // [3][3] moment matrix
	mmi [][]float64 // [3][3] inverse of moment matrix
}

// NewWeights allocates the weights relation for np points
func NewWeights(g *inp.Grid, np int, kcorr bool) (o *Weights) {
	o = new(Weights)
	o.Grid = g
	o.Kcorr = kcorr
	o.Np = np
	o.Nn = make([]int, np)
	o.N = make([][]int, np)
	o.W = la.MatAlloc(np, MAXNOD)
	o.G = make([][][]float64, np)
	for p := 0; p < np; p++ {
		o.N[p] = make([]int, MAXNOD)
		o.G[p] = la.MatAlloc(MAXNOD, 2)
	}
	o.mom = la.MatAlloc(3, 3)
	o.mmi = la.MatAlloc(3, 3)
	return
}

// Update recomputes weights and gradients for all points at positions X
func (o *Weights) Update(X [][]float64) (err error) {
	g := o.Grid
	h := g.H
	for p := 0; p < o.Np; p++ {

		// collect nodes of the 3x3 stencil around the nearest node
		ic, jc := g.Nearest(X[p])
		k := 0
		for j := jc - 1; j <= jc+1; j++ {
			for i := ic - 1; i <= ic+1; i++ {
				if !g.Inside(i, j) {
					continue
				}
				n := g.Nid(i, j)
				rx := (X[p][0] - g.X[n][0]) / h
				ry := (X[p][1] - g.X[n][1]) / h
				wx, wy := Bspline2(rx), Bspline2(ry)
				o.N[p][k] = n
				o.W[p][k] = wx * wy
				o.G[p][k][0] = Bspline2D(rx) * wy / h
				o.G[p][k][1] = wx * Bspline2D(ry) / h
				k++
			}
		}
		o.Nn[p] = k
		if k == 0 {
			return chk.Err("point %d @ %v is outside the grid", p, X[p])
		}

		// kernel correction
		if o.Kcorr {
			err = o.correct(p, X[p])
			if err != nil {
				return
			}
		}
	}
	return
}

// correct applies the WLS (linear reproducing) correction to the weights and
// gradients of point p. With P = {1, Δx, Δy} and M = Σ w P⊗P, the corrected
// weight is w̃ = w Pᵀ M⁻¹ e1 and the corrected gradient rows follow from the
// second and third columns of M⁻¹. By construction: Σ w̃ = 1, Σ w̃ Δx = 0 and
// Σ ∇w̃ f(x) = ∇f for any linear field f
func (o *Weights) correct(p int, x []float64) (err error) {

	// moment matrix
	la.MatFill(o.mom, 0)
	for k := 0; k < o.Nn[p]; k++ {
		n := o.N[p][k]
		w := o.W[p][k]
		dx := o.Grid.X[n][0] - x[0]
		dy := o.Grid.X[n][1] - x[1]
		o.mom[0][0] += w
		o.mom[0][1] += w * dx
		o.mom[0][2] += w * dy
		o.mom[1][1] += w * dx * dx
		o.mom[1][2] += w * dx * dy
		o.mom[2][2] += w * dy * dy
	}
	o.mom[1][0] = o.mom[0][1]
	o.mom[2][0] = o.mom[0][2]
	o.mom[2][1] = o.mom[1][2]

	// inverse
	err = la.MatInvG(o.mmi, o.mom, 1e-12)
	if err != nil {
		return chk.Err("weights: singular moment matrix for point %d @ %v:\n%v", p, x, err)
	}

	// corrected weights and gradients
	for k := 0; k < o.Nn[p]; k++ {
		n := o.N[p][k]
		w := o.W[p][k]
		dx := o.Grid.X[n][0] - x[0]
		dy := o.Grid.X[n][1] - x[1]
		o.W[p][k] = w * (o.mmi[0][0] + o.mmi[0][1]*dx + o.mmi[0][2]*dy)
		o.G[p][k][0] = w * (o.mmi[1][0] + o.mmi[1][1]*dx + o.mmi[1][2]*dy)
		o.G[p][k][1] = w * (o.mmi[2][0] + o.mmi[2][1]*dx + o.mmi[2][2]*dy)
	}
	return
}
