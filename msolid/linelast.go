// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// LinearElastic implements isotropic linear elasticity
type LinearElastic struct {
	SmallElasticity
}

// add model to factory
func init() {
	allocators["lin-elast"] = func() Model { return new(LinearElastic) }
}

// Init initialises model
func (o *LinearElastic) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "E", "nu", "K", "G", "rho":
		default:
			return chk.Err("lin-elast: parameter named %q is incorrect\n", p.N)
		}
	}
	return o.SmallElasticity.Init(prms)
}

// GetPrms gets (an example) of parameters
func (o LinearElastic) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 100},
		&dbf.P{N: "nu", V: 0.3},
	}
}

// InitIntVars initialises internal (secondary) variables
func (o LinearElastic) InitIntVars(σ []float64) (s *State, err error) {
	s = NewState(0, false)
	copy(s.Sig, σ)
	return
}

// Update updates stresses for given strains
func (o *LinearElastic) Update(s *State, D [][]float64, Δε []float64, Δt float64) (pnewdt float64) {
	copy(s.Sig, o.Trial(s.Sig, 1, Δε))
	s.Loading = false
	s.Dgam = 0
	o.CalcD(D)
	return 1
}
