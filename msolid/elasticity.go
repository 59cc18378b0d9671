// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// CalcLamFromEnu computes Lame's coefficient λ from Young's modulus E and Poisson's coefficient ν
func CalcLamFromEnu(E, ν float64) float64 { return E * ν / ((1.0 + ν) * (1.0 - 2.0*ν)) }

// CalcGFromEnu computes the shear modulus G from E and ν
func CalcGFromEnu(E, ν float64) float64 { return E / (2.0 * (1.0 + ν)) }

// CalcKFromEnu computes the bulk modulus K from E and ν
func CalcKFromEnu(E, ν float64) float64 { return E / (3.0 * (1.0 - 2.0*ν)) }

// CalcEnuFromKG computes E and ν from K and G
func CalcEnuFromKG(K, G float64) (E, ν float64) {
	E = 9.0 * K * G / (3.0*K + G)
	ν = (3.0*K - 2.0*G) / (6.0*K + 2.0*G)
	return
}

// StiffnessTensor returns the isotropic stiffness C [6][6] such that σ = C ε (engineering shears)
func StiffnessTensor(E, ν float64) (C [][]float64) {
	λ := CalcLamFromEnu(E, ν)
	G := CalcGFromEnu(E, ν)
	C = utl.Alloc(6, 6)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			C[i][j] = λ
		}
		C[i][i] += 2.0 * G
		C[3+i][3+i] = G
	}
	return
}

// ComplianceTensor returns the isotropic compliance S = C⁻¹ [6][6]
func ComplianceTensor(E, ν float64) (S [][]float64) {
	G := CalcGFromEnu(E, ν)
	S = utl.Alloc(6, 6)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			S[i][j] = -ν / E
		}
		S[i][i] = 1.0 / E
		S[3+i][3+i] = 1.0 / G
	}
	return
}

// SmallElasticity implements linear/non-linear elasticity for small strain analyses
type SmallElasticity struct {
	E   float64     // Young's modulus
	Nu  float64     // Poisson's coefficient
	K   float64     // Bulk modulus
	G   float64     // shear modulus
	Cel [][]float64 // stiffness [6][6]
	Sel [][]float64 // compliance [6][6]
}

// Init initialises this structure
//  Note: parameters other than E, nu, K and G are ignored
func (o *SmallElasticity) Init(prms dbf.Params) (err error) {
	var hasE, hasNu, hasK, hasG bool
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E, hasE = p.V, true
		case "nu":
			o.Nu, hasNu = p.V, true
		case "K":
			o.K, hasK = p.V, true
		case "G":
			o.G, hasG = p.V, true
		}
	}
	switch {
	case hasE && hasNu:
		o.K = CalcKFromEnu(o.E, o.Nu)
		o.G = CalcGFromEnu(o.E, o.Nu)
	case hasK && hasG:
		o.E, o.Nu = CalcEnuFromKG(o.K, o.G)
	default:
		return chk.Err("combination of elastic constants is incorrect. options are {E,nu} and {K,G}\n")
	}
	if o.E <= 0 || o.Nu <= -1 || o.Nu >= 0.5 {
		return chk.Err("elastic constants are invalid: E=%g, nu=%g\n", o.E, o.Nu)
	}
	o.Cel = StiffnessTensor(o.E, o.Nu)
	o.Sel = ComplianceTensor(o.E, o.Nu)
	return
}

// CalcD computes D = dσ/dε
func (o SmallElasticity) CalcD(D [][]float64) {
	for i := 0; i < 6; i++ {
		copy(D[i], o.Cel[i])
	}
}

// Trial returns σ + Cel ⋅ (h Δε)
func (o SmallElasticity) Trial(σ []float64, h float64, Δε []float64) (σtr []float64) {
	σtr = make([]float64, 6)
	for i := 0; i < 6; i++ {
		σtr[i] = σ[i]
		for j := 0; j < 6; j++ {
			σtr[i] += h * o.Cel[i][j] * Δε[j]
		}
	}
	return
}
