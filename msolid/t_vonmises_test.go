// Copyright 2016 The Gompm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/tsr"

	"github.com/cpmech/gompm/ana"
)

func Test_elast01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elast01. elastic moduli conversions")

	E, ν := 1e6, 0.25
	K := Calc_K_from_Enu(E, ν)
	G := Calc_G_from_Enu(E, ν)
	l := Calc_l_from_Enu(E, ν)
	chk.Scalar(tst, "K", 1e-8, K, E/(3.0*(1.0-2.0*ν)))
	chk.Scalar(tst, "G", 1e-8, G, E/(2.0*(1.0+ν)))
	chk.Scalar(tst, "l", 1e-8, l, E*ν/((1.0+ν)*(1.0-2.0*ν)))
	chk.Scalar(tst, "K = l + 2G/3", 1e-8, K, l+2.0*G/3.0)

	// init from {l,G} must recover {E,nu}
	var mdl SmallElasticity
	err := mdl.Init(2, []*dbf.P{
		&dbf.P{N: "l", V: l},
		&dbf.P{N: "G", V: G},
		&dbf.P{N: "rho", V: 2000},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "E", 1e-6, mdl.E, E)
	chk.Scalar(tst, "nu", 1e-12, mdl.Nu, ν)
	chk.Scalar(tst, "rho", 1e-14, mdl.GetRho(), 2000)

	// missing parameters must fail
	err = mdl.Init(2, []*dbf.P{&dbf.P{N: "rho", V: 2000}})
	if err == nil {
		tst.Errorf("Init should have failed with missing elastic parameters\n")
	}
}

func Test_elast02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elast02. confined compression against closed-form solution")

	mdl, err := New("vm")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	prms := []*dbf.P{
		&dbf.P{N: "E", V: 1e6},
		&dbf.P{N: "nu", V: 0.3},
		&dbf.P{N: "sigy", V: 1e3},
		&dbf.P{N: "rho", V: 1e3},
	}
	err = mdl.Init(2, prms)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// vertical compression with zero lateral strain
	var sol ana.ConfinedComp
	sol.Init(prms)
	εv := -1e-4
	σ := make([]float64, 4)
	err = mdl.Update(σ, [][]float64{{0, 0}, {0, εv}})
	if err != nil {
		tst.Errorf("Update failed: %v\n", err)
		return
	}
	σv, σh := sol.Stress(εv)
	chk.Scalar(tst, "σyy", 1e-8, σ[1], σv)
	chk.Scalar(tst, "σxx", 1e-8, σ[0], σh)
	chk.Scalar(tst, "σzz", 1e-8, σ[2], σh)
	chk.Scalar(tst, "σxy", 1e-12, σ[3], 0)
	chk.Scalar(tst, "K0", 1e-10, σ[0]/σ[1], sol.K0())
}

func Test_vm01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vm01. elastic trial within yield surface")

	mdl, err := New("vm")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(2, mdl.GetPrms())
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	vm := mdl.(*VonMises)
	λ, G := mdl.GetLG()

	// small pure compression increment, no spin
	a := -1e-6
	Δu := [][]float64{{a, 0}, {0, a}}
	σ := make([]float64, 4)
	err = mdl.Update(σ, Δu)
	if err != nil {
		tst.Errorf("Update failed: %v\n", err)
		return
	}
	chk.Vector(tst, "σ elastic", 1e-9, σ, []float64{
		2.0*λ*a + 2.0*G*a,
		2.0*λ*a + 2.0*G*a,
		2.0 * λ * a,
		0,
	})
	if vm.YieldFunc(σ) > 0 {
		tst.Errorf("trial state should be elastic: f = %g\n", vm.YieldFunc(σ))
	}

	// zero increment must leave an admissible state untouched
	σold := make([]float64, 4)
	copy(σold, σ)
	err = mdl.Update(σ, [][]float64{{0, 0}, {0, 0}})
	if err != nil {
		tst.Errorf("Update failed: %v\n", err)
		return
	}
	chk.Vector(tst, "σ unchanged", 1e-14, σ, σold)
}

func Test_vm02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vm02. radial return puts stress on yield surface")

	mdl, err := New("vm")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(2, mdl.GetPrms())
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	vm := mdl.(*VonMises)

	// large deviatoric increment under compression drives the trial state
	// far outside the surface; the corrected stress must sit on it
	σ := []float64{-2e3, -2e3, -2e3, 0}
	Δu := [][]float64{{1e-2, 0}, {0, -1e-2}}
	err = mdl.Update(σ, Δu)
	if err != nil {
		tst.Errorf("Update failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "q = σy after return", 1e-8, tsr.M_q(σ), vm.Sy)

	// the return is radial: hydrostatic part is preserved
	mean := (σ[0] + σ[1] + σ[2]) / 3.0
	chk.Scalar(tst, "mean preserved", 1e-8, mean, -2e3)

	// the update is a pure function of (σ, Δu): repeating it from the same
	// initial state gives bitwise identical results
	σb := []float64{-2e3, -2e3, -2e3, 0}
	err = mdl.Update(σb, Δu)
	if err != nil {
		tst.Errorf("Update failed: %v\n", err)
		return
	}
	chk.Vector(tst, "deterministic", 1e-17, σb, σ)
}

func Test_vm03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vm03. tension cutoff")

	mdl, err := New("vm")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(2, mdl.GetPrms())
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// extension increment generates tensile mean stress; the cutoff must
	// remove the hydrostatic part and keep the deviator
	σ := make([]float64, 4)
	Δu := [][]float64{{1e-5, 0}, {0, 2e-5}}
	err = mdl.Update(σ, Δu)
	if err != nil {
		tst.Errorf("Update failed: %v\n", err)
		return
	}
	mean := (σ[0] + σ[1] + σ[2]) / 3.0
	chk.Scalar(tst, "tr(σ) = 0 after cutoff", 1e-10, mean, 0)

	// cutoff is idempotent for zero increment
	σold := make([]float64, 4)
	copy(σold, σ)
	err = mdl.Update(σ, [][]float64{{0, 0}, {0, 0}})
	if err != nil {
		tst.Errorf("Update failed: %v\n", err)
		return
	}
	chk.Vector(tst, "σ unchanged", 1e-12, σ, σold)
}

func Test_vm04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vm04. Jaumann term under pure rotation")

	mdl, err := New("vm")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(2, mdl.GetPrms())
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// pure spin increment: Δu is skew, hence no strain. stress components
	// rotate; the invariants must be preserved to first order
	σ := []float64{-1e2, -3e2, -2e2, 50 * tsr.SQ2}
	q0 := tsr.M_q(σ)
	mean0 := (σ[0] + σ[1] + σ[2]) / 3.0
	θ := 1e-5
	Δu := [][]float64{{0, θ}, {-θ, 0}}
	err = mdl.Update(σ, Δu)
	if err != nil {
		tst.Errorf("Update failed: %v\n", err)
		return
	}
	mean := (σ[0] + σ[1] + σ[2]) / 3.0
	chk.Scalar(tst, "mean invariant", 1e-10, mean, mean0)
	chk.Scalar(tst, "q invariant (first order)", q0*θ*θ*10, tsr.M_q(σ), q0)

	// and the components did move
	if math.Abs(σ[0]+1e2) < 1e-8 {
		tst.Errorf("σ[0] should have rotated\n")
	}
}

func Test_vm05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vm05. yield surface gradient")

	mdl, err := New("vm")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(2, mdl.GetPrms())
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	vm := mdl.(*VonMises)

	// N = (3/2) dev(σ)/q checked against a numerical derivative of f
	σ := []float64{-1e3, -2e3, -1.5e3, 3e2 * tsr.SQ2}
	q := tsr.M_q(σ)
	mean := (σ[0] + σ[1] + σ[2]) / 3.0
	for i := 0; i < 4; i++ {
		ana := 1.5 * (σ[i] - mean*tsr.Im[i]) / q
		dfdσi, _ := num.DerivCen5(σ[i], 1e-1, func(t float64) (f float64, e error) {
			σtmp := make([]float64, 4)
			copy(σtmp, σ)
			σtmp[i] = t
			return vm.YieldFunc(σtmp), nil
		})
		chk.AnaNum(tst, "df/dσ", 1e-7, dfdσi, ana, chk.Verbose)
	}
}

func Test_vm06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vm06. bad parameters")

	mdl, err := New("vm")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(2, []*dbf.P{
		&dbf.P{N: "E", V: 1e6},
		&dbf.P{N: "nu", V: 0.3},
		&dbf.P{N: "rho", V: 1e3},
	})
	if err == nil {
		tst.Errorf("Init should have failed with missing sigy\n")
	}
	err = mdl.Init(2, []*dbf.P{
		&dbf.P{N: "E", V: 1e6},
		&dbf.P{N: "nu", V: 0.3},
		&dbf.P{N: "sigy", V: 1e3},
		&dbf.P{N: "wrong", V: 1},
	})
	if err == nil {
		tst.Errorf("Init should have failed with unknown parameter\n")
	}
	_, err = New("unknown")
	if err == nil {
		tst.Errorf("New should have failed with unknown model name\n")
	}
}

func Test_state01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state01. state allocation and copying")

	s := NewState(4, 2)
	chk.Vector(tst, "Sig", 1e-17, s.Sig, []float64{0, 0, 0, 0})
	chk.Matrix(tst, "F", 1e-17, s.F, [][]float64{{1, 0}, {0, 1}})

	s.Sig[0] = -123
	s.F[0][1] = 0.5
	c := s.GetCopy()
	chk.Vector(tst, "Sig copy", 1e-17, c.Sig, s.Sig)
	chk.Matrix(tst, "F copy", 1e-17, c.F, s.F)

	// copies are independent
	c.Sig[0] = 0
	if s.Sig[0] != -123 {
		tst.Errorf("copy is not independent\n")
	}
}
