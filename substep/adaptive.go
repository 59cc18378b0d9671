// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package substep

import (
	"math"

	"github.com/MAteRialMOdelingToolbox/Marmot-sub002/journal"
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// State is the state of the Richardson pairing
type State int

// states
const (
	FullStep State = iota
	FirstHalfStep
	SecondHalfStep
)

// String returns the name of the state
func (s State) String() string {
	switch s {
	case FullStep:
		return "FullStep"
	case FirstHalfStep:
		return "FirstHalfStep"
	case SecondHalfStep:
		return "SecondHalfStep"
	}
	return "Unknown"
}

// AdaptiveParams holds the parameters of AdaptiveExplicit
type AdaptiveParams struct {
	InitialStepSize  float64 // first substep size (fraction of the increment)
	MinStepSize      float64 // smallest substep size
	MaxScaleUpFactor float64 // largest growth of the substep size
	ScaleDownFactor  float64 // factor used by DiscardSubstep
	ErrorTolerance   float64 // tolerance on ‖σ_half - σ_full‖
}

// SetDefault sets default values
func (o *AdaptiveParams) SetDefault() {
	if o.InitialStepSize <= 0 {
		o.InitialStepSize = 1
	}
	if o.MinStepSize <= 0 {
		o.MinStepSize = 1e-4
	}
	if o.MaxScaleUpFactor <= 0 {
		o.MaxScaleUpFactor = 2
	}
	if o.ScaleDownFactor <= 0 {
		o.ScaleDownFactor = 0.5
	}
	if o.ErrorTolerance <= 0 {
		o.ErrorTolerance = 1e-3
	}
}

// buffer holds a stress, the extra state and a tangent
type buffer struct {
	σ []float64
	q []float64
	T *mat.Dense
}

func (o buffer) clone() buffer {
	var T mat.Dense
	T.CloneFrom(o.T)
	return buffer{clone(o.σ), clone(o.q), &T}
}

// AdaptiveExplicit implements substepping with error control by Richardson extrapolation
//
//  each substep is integrated once with size h (full step) and twice with size h/2;
//  the difference between the two stresses estimates the local error
type AdaptiveExplicit struct {

	// parameters
	Prm                                   AdaptiveParams
	IgnoreErrorToleranceOnMinimumStepSize bool // accept the full step if it cannot be split further

	// collaborators
	jnl journal.Journal
	tng tangent

	// state
	state    State
	progress float64 // converged progress
	stepSize float64 // size of the current full substep
	stats    Stats

	// buffers
	conv buffer // converged
	full buffer // result of the full step
	half buffer // result of the first half step
}

// NewAdaptiveExplicit returns a new substepper
//  σ0  -- stress at the beginning of the increment [6]
//  q0  -- extra state variables at the beginning of the increment
//  Cel -- elastic stiffness [6][6]
//  n   -- size of the tangent dX/dΔε (n ≥ 6)
func NewAdaptiveExplicit(σ0, q0 []float64, Cel [][]float64, n int, prm AdaptiveParams, jnl journal.Journal) (o *AdaptiveExplicit) {
	if len(σ0) != 6 {
		chk.Panic("substep: stress must have 6 components. %d is invalid\n", len(σ0))
	}
	prm.SetDefault()
	o = &AdaptiveExplicit{
		Prm:                                   prm,
		IgnoreErrorToleranceOnMinimumStepSize: true,
		jnl:                                   journal.Or(jnl),
		tng:                                   newTangent(Cel, n),
	}
	o.stepSize = math.Max(prm.InitialStepSize, prm.MinStepSize)
	o.conv = buffer{clone(σ0), clone(q0), mat.NewDense(n, 6, nil)}
	return
}

// State returns the current state
func (o AdaptiveExplicit) State() State { return o.state }

// Progress returns the converged progress
func (o AdaptiveExplicit) Progress() float64 { return o.progress }

// SubstepSize returns the size of the current full substep
func (o AdaptiveExplicit) SubstepSize() float64 { return o.stepSize }

// Stats returns the statistics
func (o AdaptiveExplicit) Stats() Stats { return o.stats }

// IsFinished tells whether the whole increment has been integrated
func (o AdaptiveExplicit) IsFinished() bool {
	return o.progress >= 1-ProgressTol && o.state == FullStep
}

// NextSubstep returns the size of the next substep to be integrated
func (o *AdaptiveExplicit) NextSubstep() float64 {
	if o.state == FullStep {
		if o.progress+o.stepSize > 1 {
			o.stepSize = 1 - o.progress
		}
		o.stats.Substeps++
		return o.stepSize
	}
	return o.stepSize / 2
}

// current returns the size of the substep being integrated
func (o AdaptiveExplicit) current() float64 {
	if o.state == FullStep {
		return o.stepSize
	}
	return o.stepSize / 2
}

// start returns the buffer at the beginning of the current substep
func (o AdaptiveExplicit) start() buffer {
	if o.state == SecondHalfStep {
		return o.half
	}
	return o.conv
}

// StartOfSubstep returns copies of the stress and state at the beginning of the current substep
func (o AdaptiveExplicit) StartOfSubstep() (σ, q []float64) {
	b := o.start()
	return clone(b.σ), clone(b.q)
}

// ConvergedProgress returns copies of the converged stress and state
func (o AdaptiveExplicit) ConvergedProgress() (σ, q []float64) {
	return clone(o.conv.σ), clone(o.conv.q)
}

// CurrentTangentOperator returns the converged tangent dX/dΔε [n][6]
func (o AdaptiveExplicit) CurrentTangentOperator() [][]float64 {
	return toSlices(o.conv.T)
}

// FinishSubstep receives the result of an elastoplastic substep
//  σ       -- new stress
//  dXdY    -- derivative of the substep result w.r.t its trial state [n][n]
//  dYdXOld -- correction to the identity dependence of the trial state on the previous state [n][n]; may be nil
//  q       -- new extra state variables
// Returns false if the substep size went below the minimum (integration failed)
func (o *AdaptiveExplicit) FinishSubstep(σ []float64, dXdY, dYdXOld [][]float64, q []float64) bool {
	s := o.start()
	res := buffer{clone(σ), clone(q), o.tng.propagate(s.T, o.current(), dXdY, dYdXOld)}
	switch o.state {
	case FullStep:
		o.full = res
		o.state = FirstHalfStep
		return true
	case FirstHalfStep:
		o.half = res
		o.state = SecondHalfStep
		return true
	}
	return o.estimateError(res)
}

// FinishElasticSubstep receives the result of a substep known to be elastic
func (o *AdaptiveExplicit) FinishElasticSubstep(σ []float64) bool {
	s := o.start()
	res := buffer{clone(σ), clone(s.q), o.tng.propagate(s.T, o.current(), nil, nil)}
	switch o.state {
	case FullStep:
		o.accept(res)
		o.stepSize *= o.Prm.MaxScaleUpFactor
	case FirstHalfStep:
		o.half = res
		o.state = SecondHalfStep
	case SecondHalfStep:
		o.accept(res)
	}
	return true
}

// DiscardSubstep restarts the current substep with a size reduced by ScaleDownFactor
func (o *AdaptiveExplicit) DiscardSubstep() bool {
	o.stats.Discarded++
	return o.shrink(o.Prm.ScaleDownFactor)
}

// RepeatSubstep restarts the current substep with a size reduced by factor
func (o *AdaptiveExplicit) RepeatSubstep(factor float64) bool {
	return o.shrink(factor)
}

func (o *AdaptiveExplicit) shrink(factor float64) bool {
	o.state = FullStep
	o.stepSize *= factor
	if o.stepSize < o.Prm.MinStepSize {
		return o.jnl.Warning("substep: minimal substep size %g reached (size=%g, progress=%g)", o.Prm.MinStepSize, o.stepSize, o.progress)
	}
	return true
}

// estimateError compares the second half step with the full step
func (o *AdaptiveExplicit) estimateError(res buffer) bool {
	tol := o.Prm.ErrorTolerance
	Δ := make([]float64, len(res.σ))
	floats.SubTo(Δ, res.σ, o.full.σ)
	err := floats.Norm(Δ, 2)
	ratio := err / tol
	scale := o.scaleFactor(ratio)

	// rejected
	if err > tol {
		if o.stepSize < 2*o.Prm.MinStepSize && o.IgnoreErrorToleranceOnMinimumStepSize {
			o.accept(o.full)
			return true
		}
		if ratio < 2 {
			return o.splitCurrentSubstep()
		}
		o.stats.DiscardedDueToError++
		return o.RepeatSubstep(scale)
	}

	// accepted: σ = 2 σ_half - σ_full
	ext := buffer{
		σ: extrapolate(res.σ, o.full.σ),
		q: extrapolate(res.q, o.full.q),
		T: mat.NewDense(o.tng.n, 6, nil),
	}
	ext.T.Scale(2, res.T)
	ext.T.Sub(ext.T, o.full.T)
	o.accept(ext)
	o.stepSize *= scale
	return true
}

// scaleFactor computes the growth or reduction of the substep size
func (o AdaptiveExplicit) scaleFactor(ratio float64) float64 {
	scale := o.Prm.MaxScaleUpFactor
	if ratio > 1e-10 {
		scale = 0.9 * math.Sqrt(1/ratio)
	}
	scale = math.Min(math.Max(scale, 0.1), 10)
	scale = math.Max(scale, o.Prm.MinStepSize/o.stepSize)
	return math.Min(scale, o.Prm.MaxScaleUpFactor)
}

// splitCurrentSubstep halves the substep re-using the first half as the new full step
func (o *AdaptiveExplicit) splitCurrentSubstep() bool {
	if o.stepSize/2 < o.Prm.MinStepSize {
		if o.IgnoreErrorToleranceOnMinimumStepSize {
			o.accept(o.full)
			return true
		}
		return o.jnl.Warning("substep: cannot split substep of size %g (minimum=%g)", o.stepSize, o.Prm.MinStepSize)
	}
	o.full = o.half
	o.stepSize /= 2
	o.state = FirstHalfStep
	return true
}

// accept stores b as converged and advances the progress
func (o *AdaptiveExplicit) accept(b buffer) {
	o.conv = b.clone()
	o.progress += o.stepSize
	o.stats.Passed++
	o.state = FullStep
}

func extrapolate(half, full []float64) (res []float64) {
	if half == nil {
		return nil
	}
	res = make([]float64, len(half))
	for i := range half {
		res[i] = 2*half[i] - full[i]
	}
	return
}
