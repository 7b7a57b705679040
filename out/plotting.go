// Copyright 2016 The Gompm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PlotPoints plots the point cloud and the disk outline at output index tidx
func PlotPoints(tidx int, dirout, fnkey string) {
	if tidx < 0 || tidx >= len(Snaps) {
		chk.Panic("output index %d is unavailable; have %d snapshots", tidx, len(Snaps))
	}
	s := Snaps[tidx]

	// points
	x := make([]float64, len(s.X))
	y := make([]float64, len(s.X))
	for p := 0; p < len(s.X); p++ {
		x[p], y[p] = s.X[p][0], s.X[p][1]
	}
	plt.Reset(false, nil)
	plt.Plot(x, y, &plt.A{C: "k", M: ".", Ms: 1, Ls: "none", NoClip: true})

	// disk outline
	R := Sim.Disk.D / 2.0
	θ := utl.LinSpace(0, 2.0*math.Pi, 61)
	cx := make([]float64, len(θ))
	cy := make([]float64, len(θ))
	for i, a := range θ {
		cx[i] = s.Dx[0] + R*math.Cos(a)
		cy[i] = s.Dx[1] + R*math.Sin(a)
	}
	plt.Plot(cx, cy, &plt.A{C: "b", Ls: "-", NoClip: true})

	plt.Equal()
	plt.Gll("$x$", "$y$", nil)
	plt.Save(dirout, io.Sf("%s_pnt_%04d", fnkey, tidx))
}

// PlotFext plots the total contact force history
func PlotFext(dirout, fnkey string) {
	Fx, Fy := FextHistory()
	plt.Reset(false, nil)
	plt.Plot(Times, Fx, &plt.A{C: "r", Ls: "-", L: "$F_x$"})
	plt.Plot(Times, Fy, &plt.A{C: "b", Ls: "-", L: "$F_y$"})
	plt.Gll("$t$", "$\\sum f_{ext}$", nil)
	plt.Save(dirout, io.Sf("%s_fext", fnkey))
}
