// Copyright 2016 The Gompm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Grid holds the background grid: a fixed regular lattice of nodes covering
// the computational domain. Node positions never change during a run; all
// other nodal fields live in the mpm package and are rewritten every step.
type Grid struct {

	// input
	H    float64 // grid spacing
	Xmin float64 // min x-coordinate
	Ymin float64 // min y-coordinate

	// derived
	Nx   int         // number of nodes along x
	Ny   int         // number of nodes along y
	Nnod int         // total number of nodes == Nx*Ny
	X    [][]float64 // [nnod][2] node positions

	// derived: boundary index sets
	LefRig []int // nodes on left and right columns
	TopBot []int // nodes on top and bottom rows
}

// NewGrid generates a regular grid from the input data
func NewGrid(dat *GridData) (o *Grid, err error) {

	// check
	if dat.H < 1e-14 {
		err = chk.Err("grid spacing h=%g is invalid", dat.H)
		return
	}

	// sizes
	o = new(Grid)
	o.H = dat.H
	o.Xmin = dat.Xmin
	o.Ymin = dat.Ymin
	o.Nx = int((dat.Xmax-dat.Xmin)/dat.H+0.5) + 1
	o.Ny = int((dat.Ymax-dat.Ymin)/dat.H+0.5) + 1
	if o.Nx < 2 || o.Ny < 2 {
		err = chk.Err("grid needs at least 2x2 nodes; have %dx%d", o.Nx, o.Ny)
		return
	}
	o.Nnod = o.Nx * o.Ny

	// node positions
	xcoords := utl.LinSpace(dat.Xmin, dat.Xmin+float64(o.Nx-1)*dat.H, o.Nx)
	ycoords := utl.LinSpace(dat.Ymin, dat.Ymin+float64(o.Ny-1)*dat.H, o.Ny)
	o.X = make([][]float64, o.Nnod)
	for j := 0; j < o.Ny; j++ {
		for i := 0; i < o.Nx; i++ {
			o.X[o.Nid(i, j)] = []float64{xcoords[i], ycoords[j]}
		}
	}

	// boundary sets
	for j := 0; j < o.Ny; j++ {
		o.LefRig = append(o.LefRig, o.Nid(0, j), o.Nid(o.Nx-1, j))
	}
	for i := 0; i < o.Nx; i++ {
		o.TopBot = append(o.TopBot, o.Nid(i, 0), o.Nid(i, o.Ny-1))
	}
	return
}

// Nid returns the node index corresponding to lattice coordinates (i,j)
func (o *Grid) Nid(i, j int) int {
	return j*o.Nx + i
}

// Inside tells whether lattice coordinates (i,j) correspond to a node
func (o *Grid) Inside(i, j int) bool {
	return i >= 0 && i < o.Nx && j >= 0 && j < o.Ny
}

// Nearest returns the lattice coordinates of the node closest to x
func (o *Grid) Nearest(x []float64) (i, j int) {
	i = int((x[0]-o.Xmin)/o.H + 0.5)
	j = int((x[1]-o.Ymin)/o.H + 0.5)
	return
}
