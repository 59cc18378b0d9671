// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package substep

import (
	"github.com/MAteRialMOdelingToolbox/Marmot-sub002/journal"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"
)

// PerezFougetParams holds the parameters of the Pérez-Foguet substeppers
type PerezFougetParams struct {
	InitialStepSize   float64 // first substep size
	MinStepSize       float64 // smallest substep size
	ScaleUpFactor     float64 // growth factor after NPassesToIncrease substeps
	ScaleDownFactor   float64 // reduction factor after a failure
	NPassesToIncrease int     // number of consecutive passes before growing
}

// SetDefault sets default values
func (o *PerezFougetParams) SetDefault() {
	if o.InitialStepSize <= 0 {
		o.InitialStepSize = 1
	}
	if o.MinStepSize <= 0 {
		o.MinStepSize = 1e-4
	}
	if o.ScaleUpFactor <= 0 {
		o.ScaleUpFactor = 1.2
	}
	if o.ScaleDownFactor <= 0 {
		o.ScaleDownFactor = 0.5
	}
	if o.NPassesToIncrease <= 0 {
		o.NPassesToIncrease = 10
	}
}

// stepControl implements the step size policy shared by the Pérez-Foguet substeppers
type stepControl struct {
	Prm      PerezFougetParams
	jnl      journal.Journal
	progress float64
	stepSize float64
	passed   int // consecutive passes
	stats    Stats
}

func newStepControl(prm PerezFougetParams, jnl journal.Journal) stepControl {
	prm.SetDefault()
	return stepControl{Prm: prm, jnl: journal.Or(jnl), stepSize: prm.InitialStepSize}
}

// IsFinished tells whether the whole increment has been integrated
func (o stepControl) IsFinished() bool { return o.progress >= 1-ProgressTol }

// Progress returns the current progress
func (o stepControl) Progress() float64 { return o.progress }

// SubstepSize returns the size of the current substep
func (o stepControl) SubstepSize() float64 { return o.stepSize }

// Stats returns the statistics
func (o stepControl) Stats() Stats {
	s := o.stats
	s.Passed = s.Substeps - s.Discarded
	return s
}

// NextSubstep returns the size of the next substep and advances the progress
func (o *stepControl) NextSubstep() float64 {
	if o.passed >= o.Prm.NPassesToIncrease {
		o.stepSize *= o.Prm.ScaleUpFactor
	}
	if rem := 1 - o.progress; o.stepSize >= rem {
		o.stepSize = rem
	}
	o.passed++
	o.progress += o.stepSize
	o.stats.Substeps++
	return o.stepSize
}

// DecreaseSubstepSize rolls back the current substep and reduces the size
// Returns false if the minimum size has been reached
func (o *stepControl) DecreaseSubstepSize() bool {
	o.progress -= o.stepSize
	o.passed = 0
	o.stepSize *= o.Prm.ScaleDownFactor
	o.stats.Discarded++
	if o.stepSize < o.Prm.MinStepSize {
		return o.jnl.Warning("substep: minimal substep size %g reached (size=%g, progress=%g)", o.Prm.MinStepSize, o.stepSize, o.progress)
	}
	return o.jnl.Notification("substep: substep size decreased to %g", o.stepSize)
}

// PerezFouget ////////////////////////////////////////////////////////////////////////////////////

// PerezFouget implements substepping without error estimation; the 6×6 consistent tangent
// is accumulated additively
type PerezFouget struct {
	stepControl
	cel [][]float64 // elastic stiffness
	D   [][]float64 // consistent stiffness dσ/dΔε
}

// NewPerezFouget returns a new substepper
func NewPerezFouget(Cel [][]float64, prm PerezFougetParams, jnl journal.Journal) *PerezFouget {
	newTangent(Cel, 6) // check
	return &PerezFouget{
		stepControl: newStepControl(prm, jnl),
		cel:         Cel,
		D:           utl.Alloc(6, 6),
	}
}

// ExtendConsistentTangent adds the elastic contribution of the current substep: D += h Cel
func (o *PerezFouget) ExtendConsistentTangent() {
	h := o.stepSize
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			o.D[i][j] += h * o.cel[i][j]
		}
	}
}

// ExtendConsistentTangentWith propagates the tangent through a plastic substep:
//  D ← matTangent ⋅ (D + h Cel)
func (o *PerezFouget) ExtendConsistentTangentWith(matTangent [][]float64) {
	o.ExtendConsistentTangent()
	res := utl.Alloc(6, 6)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			for k := 0; k < 6; k++ {
				res[i][j] += matTangent[i][k] * o.D[k][j]
			}
		}
	}
	o.D = res
}

// ConsistentStiffness returns a copy of the accumulated tangent
func (o PerezFouget) ConsistentStiffness() [][]float64 {
	res := utl.Alloc(6, 6)
	for i := 0; i < 6; i++ {
		copy(res[i], o.D[i])
	}
	return res
}

// PerezFougetExplicitMarkII //////////////////////////////////////////////////////////////////////

// PerezFougetExplicitMarkII implements the Pérez-Foguet step control with an n×6 tangent
// propagated with dXdY and dYdXOld
type PerezFougetExplicitMarkII struct {
	stepControl
	tng tangent
	T   *mat.Dense
}

// NewPerezFougetExplicitMarkII returns a new substepper with tangent size n ≥ 6
func NewPerezFougetExplicitMarkII(Cel [][]float64, n int, prm PerezFougetParams, jnl journal.Journal) *PerezFougetExplicitMarkII {
	return &PerezFougetExplicitMarkII{
		stepControl: newStepControl(prm, jnl),
		tng:         newTangent(Cel, n),
		T:           mat.NewDense(n, 6, nil),
	}
}

// FinishElasticSubstep propagates the tangent through an elastic substep
func (o *PerezFougetExplicitMarkII) FinishElasticSubstep() {
	o.T = o.tng.propagate(o.T, o.stepSize, nil, nil)
}

// FinishSubstep propagates the tangent through an elastoplastic substep
func (o *PerezFougetExplicitMarkII) FinishSubstep(dXdY, dYdXOld [][]float64) {
	o.T = o.tng.propagate(o.T, o.stepSize, dXdY, dYdXOld)
}

// CurrentTangentOperator returns the tangent dX/dΔε [n][6]
func (o PerezFougetExplicitMarkII) CurrentTangentOperator() [][]float64 {
	return toSlices(o.T)
}
