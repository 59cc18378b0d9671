// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/MAteRialMOdelingToolbox/Marmot-sub002/voigt"
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Mmatch computes M=q/p and qy0 from c and φ corresponding to the strength that would
// be modelled by the Mohr-Coulomb model matching one of the following cones:
//  typ == 0 : compression cone (outer)
//      == 1 : extension cone (inner)
//      == 2 : plane-strain
//  Note: φ must be given in degrees
func Mmatch(c, φ float64, typ int) (M, qy0 float64, err error) {
	φr := φ * math.Pi / 180.0
	si := math.Sin(φr)
	co := math.Cos(φr)
	var ξ float64
	switch typ {
	case 0: // compression cone (outer)
		M = 6.0 * si / (3.0 - si)
		ξ = 6.0 * co / (3.0 - si)
	case 1: // extension cone (inner)
		M = 6.0 * si / (3.0 + si)
		ξ = 6.0 * co / (3.0 + si)
	case 2: // plane-strain
		t := si / co
		d := math.Sqrt(3.0 + 4.0*t*t)
		M = 3.0 * t / d
		ξ = 3.0 / d
	default:
		return 0, 0, chk.Err("typ=%d is invalid", typ)
	}
	qy0 = ξ * c
	return
}

// PQ returns the mean pressure p = -tr(σ)/3 (compression positive), the deviatoric stress
// q = √(3 J2) and the deviator s of a Voigt stress
func PQ(σ []float64) (p, q float64, s []float64) {
	p = -voigt.I1(σ) / 3.0
	s = voigt.Deviatoric(σ)
	q = voigt.VonMises(σ)
	return
}

// matMul computes A ⋅ B
func matMul(A, B [][]float64) [][]float64 {
	var C mat.Dense
	C.Mul(dense(A), dense(B))
	return slices2(&C)
}

// dense converts a [][]float64 matrix
func dense(A [][]float64) *mat.Dense {
	D := mat.NewDense(len(A), len(A[0]), nil)
	for i := range A {
		D.SetRow(i, A[i])
	}
	return D
}

// slices2 converts a dense matrix
func slices2(M mat.Matrix) (res [][]float64) {
	r, _ := M.Dims()
	res = make([][]float64, r)
	for i := 0; i < r; i++ {
		res[i] = mat.Row(nil, i, M)
	}
	return
}
