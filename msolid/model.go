// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package msolid implements material models for solids
/*
 *            |    Rate
 *  ============================================
 *            |
 *            | σ_(n+1) = σ_(n) + Δσ(Δε)
 *    Small   | Update
 *            | D = dσ_(n+1)/dΔε
 *            |
 *  --------------------------------------------
 *            |
 *    Large   | σ_(n+1) = ΔR σ_(n) ΔRᵀ + Δσ(Δε)
 *            | UpdateLarge
 *            | dσ_(n+1)/dF_(n+1)
 *            |
 */
// Failures of the local integration are reported by pnewdt < 1: the suggested
// scale factor of the time (load) increment
package msolid

import (
	"github.com/MAteRialMOdelingToolbox/Marmot-sub002/inp"
	"github.com/MAteRialMOdelingToolbox/Marmot-sub002/journal"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// constants
const (
	PnewdtFail = 0.5 // suggested scale factor after a failed local integration
)

// Model defines the interface for solid models
type Model interface {
	Init(prms dbf.Params) error              // initialises model
	GetPrms() dbf.Params                     // gets (an example) of parameters
	InitIntVars(σ []float64) (*State, error) // initialises AND allocates internal (secondary) variables
}

// Small defines rate type solid models for small strain analyses
//  D  -- [out] consistent tangent dσ/dΔε [6][6]
//  Δε -- strain increment (engineering shears)
//  Δt -- time increment
type Small interface {
	Update(s *State, D [][]float64, Δε []float64, Δt float64) (pnewdt float64)
}

// Large defines rate type solid models for large deformation analyses
//  dσdF -- [out] dσ/dF [6][9]; column 3k+l corresponds to F_kl
type Large interface {
	UpdateLarge(s *State, dσdF [][]float64, Fnew [][]float64, Δt float64) (pnewdt float64)
}

// Integrated defines models with a local integration that can be configured
type Integrated interface {
	SetIntegration(dat inp.IntegrationData, jnl journal.Journal) error
}

// New returns new solid model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'msolid' database", name)
	}
	return allocator(), nil
}

// GetAndInitModel allocates and initialises the model of a material in the database
func GetAndInitModel(mdb *inp.MatDb, matname string, jnl journal.Journal) (model Model, err error) {
	mat, err := mdb.Find(matname)
	if err != nil {
		return
	}
	model, err = New(mat.Model)
	if err != nil {
		return
	}
	err = model.Init(mat.Prms)
	if err != nil {
		return nil, chk.Err("cannot initialise model of material %q:\n%v", matname, err)
	}
	if m, ok := model.(Integrated); ok {
		err = m.SetIntegration(mat.Integ, jnl)
	}
	return
}

// allocators holds all available solid models; modelname => allocator
var allocators = map[string]func() Model{}
