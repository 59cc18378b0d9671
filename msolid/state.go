// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/MAteRialMOdelingToolbox/Marmot-sub002/statevar"
	"github.com/cpmech/gosl/utl"
)

// State holds all continuum mechanics data, including for updating the state
type State struct {

	// essential
	Sig []float64 // σ: current Cauchy stress (Voigt) [6]

	// for plasticity (if len(α) > 0)
	Alp     []float64 // α: internal variables of rate type [nalp]
	Dgam    float64   // Δγ: increment of plastic multiplier(s) in the last update
	Loading bool      // elastoplastic loading in the last update

	// for plane stress
	EpsZ float64 // accumulated out-of-plane strain

	// for large deformations
	F [][]float64 // deformation gradient [3][3]
}

// NewState allocates state structure for small or large deformation analyses
//  large -- large deformation analyses; otherwise small strains
func NewState(nalp int, large bool) *State {

	// essential
	var state State
	state.Sig = make([]float64, 6)

	// for plasticity
	if nalp > 0 {
		state.Alp = make([]float64, nalp)
	}

	// large deformations
	if large {
		state.F = utl.Alloc(3, 3)
		for i := 0; i < 3; i++ {
			state.F[i][i] = 1
		}
	}
	return &state
}

// Set copies states
//  Note: 1) this and other states must have been pre-allocated with the same sizes
//        2) this method does not check for errors
func (o *State) Set(other *State) {

	// essential
	copy(o.Sig, other.Sig)

	// for plasticity
	copy(o.Alp, other.Alp)
	o.Dgam = other.Dgam
	o.Loading = other.Loading

	// plane stress
	o.EpsZ = other.EpsZ

	// large deformations
	if len(o.F) > 0 && len(other.F) > 0 {
		for i := 0; i < 3; i++ {
			copy(o.F[i], other.F[i])
		}
	}
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	other := NewState(len(o.Alp), len(o.F) > 0)
	other.Set(o)
	return other
}

// Layout returns the layout of a flat buffer holding this state
func (o *State) Layout() *statevar.Layout {
	fields := []statevar.Field{{Name: "sig", Len: 6}}
	if len(o.Alp) > 0 {
		fields = append(fields, statevar.Field{Name: "alp", Len: len(o.Alp)})
	}
	fields = append(fields,
		statevar.Field{Name: "dgam", Len: 1},
		statevar.Field{Name: "loading", Len: 1},
		statevar.Field{Name: "epsz", Len: 1},
	)
	if len(o.F) > 0 {
		fields = append(fields, statevar.Field{Name: "F", Len: 9})
	}
	return statevar.NewLayout(fields...)
}

// Pack writes this state into buf
func (o *State) Pack(lay *statevar.Layout, buf []float64) error {
	if err := lay.Check(buf); err != nil {
		return err
	}
	lay.Vector("sig").Set(buf, o.Sig)
	if len(o.Alp) > 0 {
		lay.Vector("alp").Set(buf, o.Alp)
	}
	lay.Scalar("dgam").Set(buf, o.Dgam)
	loading := 0.0
	if o.Loading {
		loading = 1
	}
	lay.Scalar("loading").Set(buf, loading)
	lay.Scalar("epsz").Set(buf, o.EpsZ)
	if len(o.F) > 0 {
		f := lay.Slice(buf, "F")
		for i := 0; i < 3; i++ {
			copy(f[3*i:3*i+3], o.F[i])
		}
	}
	return nil
}

// Unpack reads this state from buf
func (o *State) Unpack(lay *statevar.Layout, buf []float64) error {
	if err := lay.Check(buf); err != nil {
		return err
	}
	copy(o.Sig, lay.Vector("sig").Get(buf))
	if len(o.Alp) > 0 {
		copy(o.Alp, lay.Vector("alp").Get(buf))
	}
	o.Dgam = lay.Scalar("dgam").Get(buf)
	o.Loading = lay.Scalar("loading").Get(buf) > 0
	o.EpsZ = lay.Scalar("epsz").Get(buf)
	if len(o.F) > 0 {
		f := lay.Slice(buf, "F")
		for i := 0; i < 3; i++ {
			copy(o.F[i], f[3*i:3*i+3])
		}
	}
	return nil
}
