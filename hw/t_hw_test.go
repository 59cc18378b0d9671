// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hw

import (
	"math"
	"testing"

	"github.com/MAteRialMOdelingToolbox/Marmot-sub002/voigt"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/diff/fd"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_hw01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hw01. hydrostatic states")

	for _, k := range []float64{-1e3, -0.1, 0, 0.1, 1, 7.3, 1e4} {
		c := HaighWestergaard([]float64{k, k, k, 0, 0, 0})
		chk.Float64(tst, "ξ", 1e-12*(1+math.Abs(k)), c.Xi, SQ3*k)
		chk.Float64(tst, "ρ", 1e-12*(1+math.Abs(k)), c.Rho, 0)
		chk.Float64(tst, "θ", 1e-17, c.Theta, 0)
	}
}

func Test_hw02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hw02. meridians")

	ft := 3.0
	c := HaighWestergaard([]float64{ft, 0, 0, 0, 0, 0})
	chk.Float64(tst, "ξ (tension)", 1e-15, c.Xi, ft/SQ3)
	chk.Float64(tst, "ρ (tension)", 1e-15, c.Rho, SQ2by3*ft)
	chk.Float64(tst, "θ (tension)", 1e-7, c.Theta, 0)

	c = HaighWestergaard([]float64{-ft, 0, 0, 0, 0, 0})
	chk.Float64(tst, "θ (compression)", 1e-7, c.Theta, math.Pi/3)

	// pure shear
	c = HaighWestergaard([]float64{0, 0, 0, 2, 0, 0})
	chk.Float64(tst, "θ (shear)", 1e-14, c.Theta, math.Pi/6)

	// bounds
	chk.Float64(tst, "nan", 1e-17, lode(math.NaN()), math.Pi/3)
	chk.Float64(tst, "x > 1", 1e-17, lode(1.0000001), 0)
	chk.Float64(tst, "x < -1", 1e-17, lode(-1.0000001), math.Pi/3)
}

func Test_hw03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hw03. principal stresses")

	σ := []float64{-12, -5, 3, 2.5, -1.2, 4.1}
	c := HaighWestergaard(σ)
	io.Pforan("c = %+v\n", c)
	assert.True(tst, c.Theta >= 0 && c.Theta <= math.Pi/3)
	λ := voigt.PrincipalValues(σ)
	p := PrincipalStresses(c)
	chk.Array(tst, "σ123", 1e-12, p[:], λ[:])

	// strains
	ε := []float64{0.01, -0.002, 0.003, 0.004, 0.001, -0.006}
	cε := HaighWestergaardStrain(ε)
	cσ := HaighWestergaard(voigt.StrainToStressLike(ε))
	chk.Float64(tst, "ξ(ε)", 1e-17, cε.Xi, cσ.Xi)
	chk.Float64(tst, "ρ(ε)", 1e-17, cε.Rho, cσ.Rho)
	chk.Float64(tst, "θ(ε)", 1e-17, cε.Theta, cσ.Theta)
}

func Test_hw04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hw04. derivatives")

	set := &fd.Settings{Formula: fd.Central}
	σ := []float64{-12, -5, 3, 2.5, -1.2, 4.1}
	c, dξ, dρ, dθ := Gradients(σ)
	io.Pforan("c = %+v\n", c)
	chk.Array(tst, "dξ/dσ", 1e-8, dξ, fd.Gradient(nil, func(x []float64) float64 { return HaighWestergaard(x).Xi }, σ, set))
	chk.Array(tst, "dρ/dσ", 1e-7, dρ, fd.Gradient(nil, func(x []float64) float64 { return HaighWestergaard(x).Rho }, σ, set))
	chk.Array(tst, "dθ/dσ", 1e-7, dθ, fd.Gradient(nil, func(x []float64) float64 { return HaighWestergaard(x).Theta }, σ, set))

	// dθ/dJ2 and dθ/dJ3
	j2, j3 := voigt.J2(σ), voigt.J3(σ)
	θ := func(j2, j3 float64) float64 { return lode(kLode * j3 / math.Pow(j2, 1.5)) }
	num2 := fd.Derivative(func(x float64) float64 { return θ(x, j3) }, j2, set)
	num3 := fd.Derivative(func(x float64) float64 { return θ(j2, x) }, j3, set)
	chk.Float64(tst, "dθ/dJ2", 1e-8, DThetaDJ2(j2, j3), num2)
	chk.Float64(tst, "dθ/dJ3", 1e-8, DThetaDJ3(j2, j3), num3)

	// degenerate points
	chk.Array(tst, "dρ (hydrostatic)", 1e-17, DRhoDStress([]float64{1, 1, 1, 0, 0, 0}), make([]float64, 6))
	chk.Array(tst, "dθ (hydrostatic)", 1e-17, DThetaDStress([]float64{1, 1, 1, 0, 0, 0}), make([]float64, 6))
	chk.Array(tst, "dθ (tension)", 1e-17, DThetaDStress([]float64{1, 0, 0, 0, 0, 0}), make([]float64, 6))
	chk.Float64(tst, "dθ/dJ2 (J2=0)", 1e-17, DThetaDJ2(0, 0), 0)
}
