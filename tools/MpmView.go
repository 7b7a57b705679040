// Copyright 2016 The Gompm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// MpmView animates saved simulation snapshots:
//  go run MpmView.go mysim01.sim
package main

import (
	"math"

	"github.com/cpmech/gosl/io"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/cpmech/gompm/out"
)

const (
	screenSize = 800
	playFPS    = 20
)

func main() {

	// load results
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	out.Start(fnamepath)
	out.LoadResults()
	io.Pf("loaded %d snapshots\n", len(out.Snaps))

	// world-to-screen mapping
	g := out.Sim.Grid
	lx := g.Xmax - g.Xmin
	ly := g.Ymax - g.Ymin
	scale := screenSize / math.Max(lx, ly)
	toScreen := func(x, y float64) (int32, int32) {
		sx := (x - g.Xmin) * scale
		sy := (g.Ymax - y) * scale // y grows upwards in world coordinates
		return int32(sx), int32(sy)
	}

	// colour scale for the von Mises stress
	var qmax float64
	for _, s := range out.Snaps {
		for _, q := range s.Q {
			if q > qmax {
				qmax = q
			}
		}
	}
	if qmax < 1e-14 {
		qmax = 1
	}

	// animation loop
	rl.InitWindow(screenSize, screenSize, "gompm results: "+out.Sim.Key)
	defer rl.CloseWindow()
	rl.SetTargetFPS(playFPS)
	frame := 0
	for !rl.WindowShouldClose() {
		s := out.Snaps[frame%len(out.Snaps)]

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// points coloured by von Mises stress
		for p, x := range s.X {
			sx, sy := toScreen(x[0], x[1])
			c := uint8(255 * s.Q[p] / qmax)
			rl.DrawCircle(sx, sy, 2, rl.NewColor(c, 0, 255-c, 255))
		}

		// disk
		dx, dy := toScreen(s.Dx[0], s.Dx[1])
		rl.DrawCircleLines(dx, dy, float32(out.Sim.Disk.D/2.0*scale), rl.Black)

		rl.DrawText(io.Sf("t = %.3f", s.T), 10, 10, 20, rl.DarkGray)
		rl.EndDrawing()
		frame++
	}
}
