// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voigt

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/diff/fd"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// a general stress state with distinct principal values
var σgen = []float64{-12, -5, 3, 2.5, -1.2, 4.1}

func Test_voigt01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("voigt01")

	for I := 0; I < 6; I++ {
		i, j := Pair(I)
		chk.Int(tst, "index(pair)", Index(i, j), I)
		chk.Int(tst, "symmetry", Index(j, i), I)
	}

	ε := []float64{1, 2, 3, 0.4, 0.6, 0.8}
	E := VoigtToStrain(ε)
	chk.Float64(tst, "ε12", 1e-17, E[0][1], 0.2)
	chk.Float64(tst, "ε13", 1e-17, E[2][0], 0.3)
	chk.Float64(tst, "ε23", 1e-17, E[1][2], 0.4)
	chk.Array(tst, "ε", 1e-17, StrainToVoigt(E), ε)
	chk.Array(tst, "σ", 1e-17, StressToVoigt(VoigtToStress(σgen)), σgen)

	assert.Panics(tst, func() { Index(3, 0) })
	assert.Panics(tst, func() { Pair(6) })
	assert.Panics(tst, func() { Size(2).Check() })
	assert.NotPanics(tst, func() { Axial.Check() })
	assert.Equal(tst, "TwoD", TwoD.String())
}

func Test_voigt02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("voigt02")

	v := []float64{1, 2, 0, 3, 0, 0}
	p := VoigtToPlaneVoigt(v)
	chk.Array(tst, "plane", 1e-17, p, []float64{1, 2, 3})
	chk.Array(tst, "lifted", 1e-17, PlaneVoigtToVoigt(p), v)

	for _, s := range []Size{OneD, TwoD, Axial, ThreeD} {
		r := Reduce3DVoigt(σgen, s)
		chk.Int(tst, "len", len(r), int(s))
		back := Make3DVoigt(r, s)
		chk.Array(tst, "reduced", 1e-17, Reduce3DVoigt(back, s), r)
	}

	D := Identity(6)
	D[0][3] = 7
	Dr := ReduceTangent(D, TwoD)
	chk.Deep2(tst, "reduced tangent", 1e-17, Dr, [][]float64{{1, 0, 7}, {0, 1, 0}, {0, 0, 1}})

	assert.Panics(tst, func() { Make3DVoigt([]float64{1, 2}, TwoD) })
}

func Test_voigt03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("voigt03")

	σ := []float64{1, 2, 3, 0, 0, 0}
	chk.Float64(tst, "I1", 1e-15, I1(σ), 6)
	chk.Float64(tst, "I2", 1e-15, I2(σ), 11)
	chk.Float64(tst, "I3", 1e-15, I3(σ), 6)
	chk.Float64(tst, "J2", 1e-15, J2(σ), 1)
	chk.Float64(tst, "J3", 1e-15, J3(σ), 0)
	chk.Float64(tst, "vm", 1e-15, VonMises(σ), math.Sqrt(3))

	// J2 = I1²/3 - I2 and J3 = 2 I1³/27 - I1 I2 /3 + I3
	i1, i2, i3 := I1(σgen), I2(σgen), I3(σgen)
	chk.Float64(tst, "J2 (general)", 1e-12, J2(σgen), i1*i1/3-i2)
	chk.Float64(tst, "J3 (general)", 1e-10, J3(σgen), 2*i1*i1*i1/27-i1*i2/3+i3)

	// strains
	ε := []float64{0.01, -0.02, 0.005, 0.004, 0, 0.002}
	e := StrainToStressLike(ε)
	chk.Float64(tst, "J2 strain", 1e-17, J2Strain(ε), J2(e))
	chk.Float64(tst, "I1 strain", 1e-15, I1Strain(ε), -0.005)
	chk.Float64(tst, "norm strain", 1e-15, NormStrain(ε), Norm(e))
	chk.Float64(tst, "I3 strain", 1e-17, I3Strain(ε), I3(e))
}

func Test_voigt04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("voigt04")

	λ := PrincipalValues(σgen)
	λe := PrincipalValuesEigen(σgen)
	io.Pforan("λ = %v\n", λ)
	chk.Array(tst, "λ", 1e-12, λ[:], λe[:])
	assert.True(tst, λ[0] >= λ[1] && λ[1] >= λ[2])
	chk.Float64(tst, "sum", 1e-12, λ[0]+λ[1]+λ[2], I1(σgen))
	chk.Float64(tst, "prod", 1e-10, λ[0]*λ[1]*λ[2], I3(σgen))

	// diagonal: fallback path
	λ = PrincipalValues([]float64{-1, 5, 2, 0, 0, 0})
	chk.Array(tst, "λ diagonal", 1e-15, λ[:], []float64{5, 2, -1})

	// hydrostatic
	λ = PrincipalValues([]float64{3, 3, 3, 0, 0, 0})
	chk.Array(tst, "λ hydrostatic", 1e-15, λ[:], []float64{3, 3, 3})

	// derivatives
	λd, dλ := PrincipalValuesWithDerivatives(σgen)
	chk.Array(tst, "λ (with derivs)", 1e-12, λd[:], λe[:])
	for k := 0; k < 3; k++ {
		num := fd.Gradient(nil, func(x []float64) float64 {
			l := PrincipalValuesEigen(x)
			return l[k]
		}, σgen, &fd.Settings{Formula: fd.Central})
		chk.Array(tst, io.Sf("dλ%d/dσ", k), 1e-6, dλ[k], num)
	}
}

func Test_voigt05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("voigt05")

	set := &fd.Settings{Formula: fd.Central}
	chk.Array(tst, "dI1/dσ", 1e-8, DI1DStress(), fd.Gradient(nil, I1, σgen, set))
	chk.Array(tst, "dJ2/dσ", 1e-7, DJ2DStress(σgen), fd.Gradient(nil, J2, σgen, set))
	chk.Array(tst, "dJ3/dσ", 1e-6, DJ3DStress(σgen), fd.Gradient(nil, J3, σgen, set))
}

func Test_voigt06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("voigt06")

	// 90° about z
	Q := [][]float64{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}
	σ := []float64{10, 2, 3, 0, 0, 0}
	chk.Array(tst, "rotated", 1e-15, Rotate(Q, σ), []float64{2, 10, 3, 0, 0, 0})

	// invariants do not change
	c, s := math.Cos(0.3), math.Sin(0.3)
	Q = [][]float64{{c, -s, 0}, {s, c, 0}, {0, 0, 1}}
	σr := Rotate(Q, σgen)
	chk.Float64(tst, "I1", 1e-13, I1(σr), I1(σgen))
	chk.Float64(tst, "J2", 1e-12, J2(σr), J2(σgen))
	chk.Float64(tst, "J3", 1e-10, J3(σr), J3(σgen))

	ε := []float64{0.001, 0.002, 0, 0.004, 0, 0}
	εr := RotateStrain(Q, ε)
	chk.Float64(tst, "J2 strain", 1e-15, J2Strain(εr), J2Strain(ε))

	// projectors
	dev := Deviatoric(σgen)
	P := PDev()
	for i := 0; i < 6; i++ {
		var sum float64
		for j := 0; j < 6; j++ {
			sum += P[i][j] * σgen[j]
		}
		chk.Float64(tst, "P:σ", 1e-14, sum, dev[i])
	}
	H := IHyd()
	chk.Float64(tst, "IHyd", 1e-17, H[1][2], 1.0/3.0)
	chk.Float64(tst, "IHyd (shear)", 1e-17, H[3][3], 0)
}
