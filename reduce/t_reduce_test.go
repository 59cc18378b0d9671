// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reduce

import (
	"testing"

	"github.com/MAteRialMOdelingToolbox/Marmot-sub002/journal"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/stretchr/testify/assert"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// isotropic linear elastic stiffness (engineering shear)
func elastic(E, ν float64) (C [][]float64) {
	C = utl.Alloc(6, 6)
	λ := E * ν / ((1 + ν) * (1 - 2*ν))
	G := E / (2 * (1 + ν))
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			C[i][j] = λ
		}
		C[i][i] += 2 * G
		C[3+i][3+i] = G
	}
	return
}

// kernel returns a kernel with σ = σ0 + C Δε + a Δε³ on normal components
func kernel(C [][]float64, a float64, ncalls *int) Kernel3D {
	return func(σ []float64, D [][]float64, Δε []float64) float64 {
		*ncalls++
		for i := 0; i < 6; i++ {
			for j := 0; j < 6; j++ {
				σ[i] += C[i][j] * Δε[j]
				D[i][j] = C[i][j]
			}
			if i < 3 {
				σ[i] += a * Δε[i] * Δε[i] * Δε[i]
				D[i][i] += 3 * a * Δε[i] * Δε[i]
			}
		}
		return 1
	}
}

func Test_pstress01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pstress01. linear elastic")

	E, ν := 100.0, 0.3
	var n int
	Δε := []float64{1e-3, 0, 0, 0, 0, 0}
	σ := make([]float64, 6)
	D := utl.Alloc(6, 6)
	pnewdt := PlaneStress(kernel(elastic(E, ν), 0, &n), Δε, σ, D, nil)
	io.Pforan("σ = %v  Δε = %v  ncalls = %d\n", σ, Δε, n)
	chk.Float64(tst, "pnewdt", 1e-17, pnewdt, 1)
	chk.Float64(tst, "Δε33", 1e-17, Δε[2], -ν/(1-ν)*1e-3)
	chk.Float64(tst, "σ11", 1e-14, σ[0], E/(1-ν*ν)*1e-3)
	chk.Float64(tst, "σ22", 1e-14, σ[1], ν*E/(1-ν*ν)*1e-3)
	chk.Float64(tst, "σ33", 1e-15, σ[2], 0)
	chk.Int(tst, "ncalls", n, 2)

	G := E / (2 * (1 + ν))
	c := E / (1 - ν*ν)
	chk.Deep2(tst, "Dps", 1e-12, PlaneStressTangent(D), [][]float64{
		{c, ν * c, 0},
		{ν * c, c, 0},
		{0, 0, G},
	})
}

func Test_pstress02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pstress02. nonlinear kernel")

	var n int
	Δε := []float64{2e-2, -1e-2, 0, 3e-3, 0, 0}
	σ := []float64{1, 2, 0, 0, 0, 0}
	D := utl.Alloc(6, 6)
	pnewdt := PlaneStress(kernel(elastic(100, 0.25), 1e6, &n), Δε, σ, D, nil)
	io.Pforan("σ = %v  Δε33 = %v  ncalls = %d\n", σ, Δε[2], n)
	chk.Float64(tst, "pnewdt", 1e-17, pnewdt, 1)
	chk.Float64(tst, "σ33", 1e-10, σ[2], 0)
	assert.True(tst, n > 2)
}

func Test_uniaxial01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("uniaxial01. linear elastic")

	E, ν := 200.0, 0.2
	var n int
	Δε := []float64{-1e-3, 0, 0, 0, 0, 0}
	σ := make([]float64, 6)
	D := utl.Alloc(6, 6)
	pnewdt := UniaxialStress(kernel(elastic(E, ν), 0, &n), Δε, σ, D, nil)
	io.Pforan("σ = %v  Δε = %v\n", σ, Δε)
	chk.Float64(tst, "pnewdt", 1e-17, pnewdt, 1)
	chk.Float64(tst, "Δε22", 1e-17, Δε[1], ν*1e-3)
	chk.Float64(tst, "Δε33", 1e-17, Δε[2], ν*1e-3)
	chk.Float64(tst, "σ11", 1e-13, σ[0], -E*1e-3)
	chk.Float64(tst, "σ22", 1e-15, σ[1], 0)
	chk.Float64(tst, "σ33", 1e-15, σ[2], 0)
	chk.Float64(tst, "E", 1e-12, UniaxialStressTangent(D), E)
}

func Test_reduce01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("reduce01. failures")

	// the kernel fails
	σ := []float64{1, 2, 3, 0, 0, 0}
	D := utl.Alloc(6, 6)
	failing := func(σ []float64, D [][]float64, Δε []float64) float64 {
		σ[0] = 1e3
		return 0.5
	}
	pnewdt := PlaneStress(failing, make([]float64, 6), σ, D, nil)
	chk.Float64(tst, "pnewdt", 1e-17, pnewdt, 0.5)
	chk.Array(tst, "σ restored", 1e-17, σ, []float64{1, 2, 3, 0, 0, 0})

	// degenerate tangent: σ33 never vanishes
	var n int
	stuck := func(σ []float64, D [][]float64, Δε []float64) float64 {
		n++
		σ[2] = 1
		return 1
	}
	cnt := &journal.Counting{}
	σ = make([]float64, 6)
	Δε := make([]float64, 6)
	pnewdt = PlaneStress(stuck, Δε, σ, D, cnt)
	io.Pforan("Δε33 = %v  ncalls = %d\n", Δε[2], n)
	chk.Float64(tst, "pnewdt", 1e-17, pnewdt, CutbackPnewdt)
	chk.Int(tst, "warnings", cnt.Warnings, 1)
	chk.Int(tst, "ncalls", n, 14)
	chk.Float64(tst, "capped compliance", 1e-17, Δε[2], -13*MaxCompliance)

	assert.Panics(tst, func() { PlaneStress(stuck, make([]float64, 4), σ, D, nil) })
}

func Test_condense01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("condense01. compliance cap")

	D := elastic(100, 0.3)
	D[2][2] = 0
	for j := 0; j < 6; j++ {
		D[2][j], D[j][2] = 0, 0
	}
	Dps := PlaneStressTangent(D)
	chk.Deep2(tst, "decoupled", 1e-15, Dps, [][]float64{
		{D[0][0], D[0][1], 0},
		{D[1][0], D[1][1], 0},
		{0, 0, D[3][3]},
	})
}
