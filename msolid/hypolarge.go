// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/MAteRialMOdelingToolbox/Marmot-sub002/journal"
	"github.com/MAteRialMOdelingToolbox/Marmot-sub002/kinematics"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// HypoLarge turns a small strain model into a hypoelastic-plastic large deformation model
// with the Hughes-Winget objective rate
type HypoLarge struct {
	Model
	Sml         Small
	Formulation kinematics.Formulation
	jnl         journal.Journal
}

// NewHypoLarge wraps a model that implements Small
func NewHypoLarge(model Model, jnl journal.Journal) (o *HypoLarge, err error) {
	sml, ok := model.(Small)
	if !ok {
		return nil, chk.Err("model %T cannot be used in large deformation analyses because it is not a small strain model\n", model)
	}
	return &HypoLarge{Model: model, Sml: sml, Formulation: kinematics.AbaqusLike, jnl: journal.Or(jnl)}, nil
}

// InitIntVars initialises internal (secondary) variables, including F = I
func (o HypoLarge) InitIntVars(σ []float64) (s *State, err error) {
	s0, err := o.Model.InitIntVars(σ)
	if err != nil {
		return
	}
	s = NewState(len(s0.Alp), true)
	s.Set(s0)
	return
}

// UpdateLarge updates the state for a new deformation gradient
func (o HypoLarge) UpdateLarge(s *State, dσdF [][]float64, Fnew [][]float64, Δt float64) (pnewdt float64) {
	if len(s.F) != 3 {
		chk.Panic("state must be allocated for large deformations\n")
	}
	hwg, err := kinematics.NewHughesWinget(s.F, Fnew, o.Formulation)
	if err != nil {
		o.jnl.Warning("hypo-large: %v", err)
		return PnewdtFail
	}

	// rotate and update
	tmp := s.GetCopy()
	copy(tmp.Sig, hwg.RotateTensor(s.Sig))
	D := utl.Alloc(6, 6)
	pnewdt = o.Sml.Update(tmp, D, hwg.StrainIncrement(), Δt)
	if pnewdt < 1 {
		return
	}

	// tangent and new state
	dSdF := hwg.ComputeDSDF(s.Sig, D)
	for i := 0; i < 6; i++ {
		copy(dσdF[i], dSdF[i])
	}
	s.Set(tmp)
	for i := 0; i < 3; i++ {
		copy(s.F[i], Fnew[i])
	}
	return
}
