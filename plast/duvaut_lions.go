// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plast implements helpers shared by rate-independent and viscoplastic return mappings
package plast

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// DuvautLions implements the Duvaut-Lions viscous regularisation
//
//  a single relaxation time η blends the trial (zero-time) and the rate-independent
//  (infinite-time) solutions:
//
//         trial + k ⋅ inf
//   x = ───────────────────    with k = Δt / η
//             1 + k
type DuvautLions struct {
	Eta float64 // η: relaxation time (viscosity)
}

// NewDuvautLions returns a new structure. η must be positive
func NewDuvautLions(η float64) *DuvautLions {
	if η <= 0 {
		chk.Panic("Duvaut-Lions viscosity must be positive. η=%g is invalid\n", η)
	}
	return &DuvautLions{Eta: η}
}

// ratio returns k = Δt/η
func (o DuvautLions) ratio(Δt float64) float64 {
	return Δt / o.Eta
}

// ApplyViscosityOnStateVar blends a scalar state variable
func (o DuvautLions) ApplyViscosityOnStateVar(trial, inf, Δt float64) float64 {
	k := o.ratio(Δt)
	return (trial + k*inf) / (k + 1)
}

// ApplyViscosityOnStress blends the trial and the rate-independent stresses
func (o DuvautLions) ApplyViscosityOnStress(σtrial, σinf []float64, Δt float64) (σ []float64) {
	if len(σtrial) != len(σinf) {
		chk.Panic("stresses must have the same size. %d != %d\n", len(σtrial), len(σinf))
	}
	k := o.ratio(Δt)
	σ = make([]float64, len(σtrial))
	for i := range σ {
		σ[i] = (σtrial[i] + k*σinf[i]) / (k + 1)
	}
	return
}

// ApplyViscosityOnMatTangent blends the identity with the derivative of the rate-independent
// stress w.r.t the trial stress:
//
//          I + k ⋅ dσinf/dσtrial
//   res = ───────────────────────
//                 1 + k
func (o DuvautLions) ApplyViscosityOnMatTangent(tangentInv [][]float64, Δt float64) (res [][]float64) {
	n := len(tangentInv)
	k := o.ratio(Δt)
	res = utl.Alloc(n, n)
	for i := 0; i < n; i++ {
		if len(tangentInv[i]) != n {
			chk.Panic("tangent must be square. row %d has %d columns\n", i, len(tangentInv[i]))
		}
		for j := 0; j < n; j++ {
			res[i][j] = k * tangentInv[i][j]
			if i == j {
				res[i][j] += 1
			}
			res[i][j] /= k + 1
		}
	}
	return
}
