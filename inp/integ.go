// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/MAteRialMOdelingToolbox/Marmot-sub002/conv"
	"github.com/MAteRialMOdelingToolbox/Marmot-sub002/substep"
	"github.com/cpmech/gosl/chk"
)

// substepper names
const (
	SubAdaptive    = "adaptive"    // Richardson extrapolation with error control
	SubPerezFouget = "perezfouget" // additive 6×6 tangent; no error control
	SubMarkII      = "markII"      // n×6 tangent; no error control
)

// IntegrationData holds the settings of the local integration of a material
type IntegrationData struct {

	// substepping
	Substepper  string  `json:"substepper"`  // "adaptive", "perezfouget" or "markII"
	InitialStep float64 `json:"initialstep"` // first substep size
	MinStep     float64 `json:"minstep"`     // minimum substep size
	MaxScaleUp  float64 `json:"maxscaleup"`  // largest growth of the substep size
	ScaleDown   float64 `json:"scaledown"`   // reduction of the substep size after a failure
	ErrTol      float64 `json:"errtol"`      // error tolerance (adaptive only)
	NpassInc    int     `json:"npassinc"`    // passes before growing (Pérez-Foguet only)

	// local Newton iterations
	NmaxIt    int     `json:"nmaxit"`    // max iterations with the primary tolerances
	Atol      float64 `json:"atol"`      // primary absolute tolerance
	Rtol      float64 `json:"rtol"`      // primary relative tolerance
	NmaxItAlt int     `json:"nmaxitalt"` // max iterations with the alternate tolerances
	AtolAlt   float64 `json:"atolalt"`   // alternate absolute tolerance
	RtolAlt   float64 `json:"rtolalt"`   // alternate relative tolerance

	// viscosity
	Eta float64 `json:"eta"` // Duvaut-Lions relaxation time; 0 means rate independent
}

// SetDefault sets default values for zero fields
func (o *IntegrationData) SetDefault() {

	// substepping
	if o.Substepper == "" {
		o.Substepper = SubAdaptive
	}
	if o.InitialStep <= 0 {
		o.InitialStep = 1
	}
	if o.MinStep <= 0 {
		o.MinStep = 1e-4
	}
	if o.MaxScaleUp <= 0 {
		o.MaxScaleUp = 2
		if o.Substepper != SubAdaptive {
			o.MaxScaleUp = 1.2
		}
	}
	if o.ScaleDown <= 0 {
		o.ScaleDown = 0.5
	}
	if o.ErrTol <= 0 {
		o.ErrTol = 1e-3
	}
	if o.NpassInc <= 0 {
		o.NpassInc = 10
	}

	// local Newton iterations
	if o.NmaxIt <= 0 {
		o.NmaxIt = 10
	}
	if o.Atol <= 0 {
		o.Atol = 1e-10
	}
	if o.Rtol <= 0 {
		o.Rtol = 1e-10
	}
	if o.NmaxItAlt < o.NmaxIt {
		o.NmaxItAlt = 2 * o.NmaxIt
	}
	if o.AtolAlt <= 0 {
		o.AtolAlt = 1e-6
	}
	if o.RtolAlt <= 0 {
		o.RtolAlt = 1e-6
	}
}

// PostProcess checks the consistency of the data
func (o *IntegrationData) PostProcess() error {
	switch o.Substepper {
	case SubAdaptive, SubPerezFouget, SubMarkII:
	default:
		return chk.Err("substepper %q is invalid; options are %q, %q and %q\n", o.Substepper, SubAdaptive, SubPerezFouget, SubMarkII)
	}
	if o.MinStep > o.InitialStep || o.InitialStep > 1 {
		return chk.Err("substep sizes must satisfy 0 < minstep ≤ initialstep ≤ 1. minstep=%g, initialstep=%g are invalid\n", o.MinStep, o.InitialStep)
	}
	if o.ScaleDown >= 1 {
		return chk.Err("scaledown must be in (0,1). %g is invalid\n", o.ScaleDown)
	}
	if o.MaxScaleUp < 1 {
		return chk.Err("maxscaleup must not be smaller than 1. %g is invalid\n", o.MaxScaleUp)
	}
	if o.Eta < 0 {
		return chk.Err("Duvaut-Lions relaxation time must not be negative. eta=%g is invalid\n", o.Eta)
	}
	return nil
}

// Primary returns the primary Newton tolerances
func (o IntegrationData) Primary() conv.Tier {
	return conv.Tier{NmaxIt: o.NmaxIt, Atol: o.Atol, Rtol: o.Rtol}
}

// Alternate returns the alternate Newton tolerances
func (o IntegrationData) Alternate() conv.Tier {
	return conv.Tier{NmaxIt: o.NmaxItAlt, Atol: o.AtolAlt, Rtol: o.RtolAlt}
}

// AdaptiveParams returns the parameters of the adaptive substepper
func (o IntegrationData) AdaptiveParams() substep.AdaptiveParams {
	return substep.AdaptiveParams{
		InitialStepSize:  o.InitialStep,
		MinStepSize:      o.MinStep,
		MaxScaleUpFactor: o.MaxScaleUp,
		ScaleDownFactor:  o.ScaleDown,
		ErrorTolerance:   o.ErrTol,
	}
}

// PerezFougetParams returns the parameters of the Pérez-Foguet substeppers
func (o IntegrationData) PerezFougetParams() substep.PerezFougetParams {
	return substep.PerezFougetParams{
		InitialStepSize:   o.InitialStep,
		MinStepSize:       o.MinStep,
		ScaleUpFactor:     o.MaxScaleUp,
		ScaleDownFactor:   o.ScaleDown,
		NPassesToIncrease: o.NpassInc,
	}
}
