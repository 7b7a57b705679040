// Copyright 2016 The Gompm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
)

// GenPoints samples material points over the grid cells and filters them by
// the initial material region. npcell points are placed per cell, per
// direction, at the centres of equal sub-cells. The returned volume is the
// (initial) volume represented by each point.
//  Note: points are generated once at setup; the engine never creates or
//        destroys points afterwards
func GenPoints(g *Grid, npcell int, reg *RegionData) (X [][]float64, vpt float64, err error) {

	// check
	if npcell < 1 {
		err = chk.Err("number of points per cell npcell=%d is invalid", npcell)
		return
	}

	// sub-cell size and point volume
	d := g.H / float64(npcell)
	vpt = d * d

	// sample cell by cell
	ncx, ncy := g.Nx-1, g.Ny-1
	for jc := 0; jc < ncy; jc++ {
		for ic := 0; ic < ncx; ic++ {
			x0 := g.Xmin + float64(ic)*g.H
			y0 := g.Ymin + float64(jc)*g.H
			for jp := 0; jp < npcell; jp++ {
				for ip := 0; ip < npcell; ip++ {
					x := x0 + (float64(ip)+0.5)*d
					y := y0 + (float64(jp)+0.5)*d
					if x < reg.Xmin || x > reg.Xmax || y < reg.Ymin || y > reg.Ymax {
						continue
					}
					X = append(X, []float64{x, y})
				}
			}
		}
	}

	// check
	if len(X) == 0 {
		err = chk.Err("no material points left after filtering by region [%g,%g]x[%g,%g]",
			reg.Xmin, reg.Xmax, reg.Ymin, reg.Ymax)
	}
	return
}
