// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/MAteRialMOdelingToolbox/Marmot-sub002/journal"
	"github.com/MAteRialMOdelingToolbox/Marmot-sub002/reduce"
	"github.com/MAteRialMOdelingToolbox/Marmot-sub002/voigt"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// kernel returns a 3D kernel evaluating sml from a copy of s. last holds the
// state of the last evaluation
func kernel(sml Small, s *State, Δt float64, last **State) reduce.Kernel3D {
	return func(σ []float64, D [][]float64, Δε []float64) float64 {
		tmp := s.GetCopy()
		copy(tmp.Sig, σ)
		pnewdt := sml.Update(tmp, D, Δε, Δt)
		copy(σ, tmp.Sig)
		*last = tmp
		return pnewdt
	}
}

// PlaneStress runs a small strain model under plane-stress conditions
type PlaneStress struct {
	Sml Small
	Jnl journal.Journal
}

// Update updates the state for an in-plane strain increment
//  Dps -- [out] plane-stress tangent [3][3] on {11, 22, 12}
//  Δε  -- in-plane strain increment {11, 22, 12} (engineering shear)
func (o PlaneStress) Update(s *State, Dps [][]float64, Δε []float64, Δt float64) (pnewdt float64) {
	if len(Δε) != int(voigt.TwoD) {
		chk.Panic("plane-stress strain increment must have %d components. %d is invalid\n", int(voigt.TwoD), len(Δε))
	}
	var last *State
	Δε6 := voigt.PlaneVoigtToVoigt(Δε)
	σ := append([]float64(nil), s.Sig...)
	D := utl.Alloc(6, 6)
	pnewdt = reduce.PlaneStress(kernel(o.Sml, s, Δt, &last), Δε6, σ, D, o.Jnl)
	if pnewdt < 1 {
		return
	}
	s.Set(last)
	s.EpsZ += Δε6[2]
	for i, row := range reduce.PlaneStressTangent(D) {
		copy(Dps[i], row)
	}
	return
}

// Uniaxial runs a small strain model under uniaxial-stress conditions
type Uniaxial struct {
	Sml Small
	Jnl journal.Journal
}

// Update updates the state for an axial strain increment
//  Et -- [out] tangent dσ11/dε11
func (o Uniaxial) Update(s *State, Δε, Δt float64) (Et, pnewdt float64) {
	var last *State
	Δε6 := []float64{Δε, 0, 0, 0, 0, 0}
	σ := append([]float64(nil), s.Sig...)
	D := utl.Alloc(6, 6)
	pnewdt = reduce.UniaxialStress(kernel(o.Sml, s, Δt, &last), Δε6, σ, D, o.Jnl)
	if pnewdt < 1 {
		return
	}
	s.Set(last)
	return reduce.UniaxialStressTangent(D), pnewdt
}
