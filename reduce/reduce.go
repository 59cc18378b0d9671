// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reduce implements plane-stress and uniaxial-stress conditions on top of 3D kernels
//
//  the unconstrained strain components are found by a local Newton iteration such that the
//  corresponding stress components vanish:
//
//   Δε_b ← Δε_b - (D_bb)⁻¹ ⋅ σ_b
//
//  where b = {33} (plane stress) or b = {22, 33} (uniaxial stress)
package reduce

import (
	"math"

	"github.com/MAteRialMOdelingToolbox/Marmot-sub002/conv"
	"github.com/MAteRialMOdelingToolbox/Marmot-sub002/journal"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"
)

// constants
const (
	MaxCompliance = 1e10 // compliance used when the tangent block is degenerate
	CutbackPnewdt = 0.25 // suggested time step scale factor when the iteration fails
)

// Kernel3D computes a 3D stress update
//  σ  -- [in] stress at the beginning of the increment; [out] new stress
//  D  -- [out] consistent tangent dσ/dΔε [6][6]
//  Δε -- strain increment (engineering shear)
// The kernel is called several times from the same old state: it must not commit its
// internal variables. pnewdt < 1 signals failure
type Kernel3D func(σ []float64, D [][]float64, Δε []float64) (pnewdt float64)

// Free components
var (
	PlaneStressFree    = []int{2}
	UniaxialStressFree = []int{1, 2}
	planeStressKept    = []int{0, 1, 3}
	uniaxialStressKept = []int{0}
)

// PlaneStress solves for Δε33 such that σ33 = 0
//  Δε -- [in/out] strain increment [6]; Δε[2] holds the initial guess and the solution
//  σ  -- [in/out] old stress; new stress on exit [6]
//  D  -- [out] 3D tangent at the solution [6][6]
func PlaneStress(kernel Kernel3D, Δε, σ []float64, D [][]float64, jnl journal.Journal) (pnewdt float64) {
	return solve(kernel, Δε, σ, D, PlaneStressFree, "plane stress", journal.Or(jnl))
}

// UniaxialStress solves for Δε22 and Δε33 such that σ22 = σ33 = 0
func UniaxialStress(kernel Kernel3D, Δε, σ []float64, D [][]float64, jnl journal.Journal) (pnewdt float64) {
	return solve(kernel, Δε, σ, D, UniaxialStressFree, "uniaxial stress", journal.Or(jnl))
}

// PlaneStressTangent condenses the 3D tangent onto {11, 22, 12}
func PlaneStressTangent(D [][]float64) [][]float64 {
	return Condense(D, planeStressKept, PlaneStressFree)
}

// UniaxialStressTangent condenses the 3D tangent onto {11}
func UniaxialStressTangent(D [][]float64) float64 {
	return Condense(D, uniaxialStressKept, UniaxialStressFree)[0][0]
}

// Condense computes D_aa - D_ab ⋅ (D_bb)⁻¹ ⋅ D_ba
func Condense(D [][]float64, a, b []int) (res [][]float64) {
	checkTangent(D)
	Cinv := compliance(D, b)
	res = utl.Alloc(len(a), len(a))
	for i, I := range a {
		for j, J := range a {
			res[i][j] = D[I][J]
			for k, K := range b {
				for l, L := range b {
					res[i][j] -= D[I][K] * Cinv.At(k, l) * D[L][J]
				}
			}
		}
	}
	return
}

// solve runs the local Newton iteration
func solve(kernel Kernel3D, Δε, σ []float64, D [][]float64, free []int, name string, jnl journal.Journal) (pnewdt float64) {
	if len(Δε) != 6 || len(σ) != 6 {
		chk.Panic("%s: strain and stress must have 6 components. len(Δε)=%d, len(σ)=%d are invalid\n", name, len(Δε), len(σ))
	}
	checkTangent(D)
	checker := conv.PlaneStressChecker()
	σold := make([]float64, 6)
	copy(σold, σ)
	res := make([]float64, len(free))
	for iter := 0; ; iter++ {
		copy(σ, σold)
		pnewdt = kernel(σ, D, Δε)
		if pnewdt < 1 {
			copy(σ, σold)
			return
		}
		for k, I := range free {
			res[k] = σ[I]
		}
		if checker.IsConverged(res, iter) {
			return
		}
		if checker.Exhausted(iter + 1) {
			copy(σ, σold)
			jnl.Warning("%s: no convergence after %d iterations (residual=%v)", name, iter+1, res)
			return CutbackPnewdt
		}
		Cinv := compliance(D, free)
		for k, I := range free {
			for l := range free {
				Δε[I] -= Cinv.At(k, l) * res[l]
			}
		}
	}
}

// compliance inverts D_bb; degenerate blocks fall back to a capped diagonal compliance
func compliance(D [][]float64, b []int) *mat.Dense {
	n := len(b)
	Dbb := mat.NewDense(n, n, nil)
	for k, K := range b {
		for l, L := range b {
			Dbb.Set(k, l, D[K][L])
		}
	}
	var Cinv mat.Dense
	if err := Cinv.Inverse(Dbb); err == nil && finite(&Cinv) {
		return &Cinv
	}
	C := mat.NewDense(n, n, nil)
	for k, K := range b {
		c := 1 / D[K][K]
		if math.IsNaN(c) || math.IsInf(c, 0) || math.Abs(c) > MaxCompliance {
			c = MaxCompliance
		}
		C.Set(k, k, c)
	}
	return C
}

func finite(M *mat.Dense) bool {
	r, c := M.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := M.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > MaxCompliance {
				return false
			}
		}
	}
	return true
}

func checkTangent(D [][]float64) {
	if len(D) != 6 {
		chk.Panic("tangent must be 6×6. %d rows is invalid\n", len(D))
	}
}
