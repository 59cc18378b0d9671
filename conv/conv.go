// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package conv implements convergence checkers for local Newton iterations
package conv

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
)

// constants
const (
	SmallIncrement = 1e-14 // ‖increment‖ below which the relative norm is the absolute one
	SmallReference = 1e-12 // ‖reference‖ below which the relative norm is zero
)

// Tier holds one set of tolerances
type Tier struct {
	NmaxIt int     // max number of iterations
	Atol   float64 // absolute tolerance on the scaled residual
	Rtol   float64 // relative tolerance on the increment
}

// NewtonChecker checks convergence with a primary (strict) tier and an alternate (loose) tier
//  The alternate tier is used after the primary number of iterations is exceeded
type NewtonChecker struct {
	primary   Tier
	alternate Tier
	scale     []float64
}

// NewNewtonChecker returns a new checker; scale multiplies the residual componentwise
//  scale == nil means unit weights
func NewNewtonChecker(scale []float64, primary, alternate Tier) *NewtonChecker {
	if primary.NmaxIt < 0 || alternate.NmaxIt < primary.NmaxIt {
		chk.Panic("conv: alternate max iterations (%d) must not be smaller than the primary one (%d)\n", alternate.NmaxIt, primary.NmaxIt)
	}
	o := &NewtonChecker{primary: primary, alternate: alternate}
	if scale != nil {
		o.scale = make([]float64, len(scale))
		copy(o.scale, scale)
	}
	return o
}

// Primary returns the primary tier
func (o NewtonChecker) Primary() Tier { return o.primary }

// Alternate returns the alternate tier
func (o NewtonChecker) Alternate() Tier { return o.alternate }

// RelativeNorm returns ‖inc‖/‖ref‖ with the following exceptions:
//  ‖inc‖ < 1e-14  ⇒  ‖inc‖
//  ‖ref‖ < 1e-12  ⇒  0
func RelativeNorm(inc, ref []float64) float64 {
	ninc := floats.Norm(inc, 2)
	if ninc < SmallIncrement {
		return ninc
	}
	nref := floats.Norm(ref, 2)
	if nref < SmallReference {
		return 0
	}
	return ninc / nref
}

// ResidualNorm returns ‖scale ⊙ res‖
func (o NewtonChecker) ResidualNorm(res []float64) float64 {
	if o.scale == nil {
		return floats.Norm(res, 2)
	}
	if len(o.scale) != len(res) {
		chk.Panic("conv: residual has %d components but scale has %d\n", len(res), len(o.scale))
	}
	var sum float64
	for i, r := range res {
		sum += o.scale[i] * o.scale[i] * r * r
	}
	return math.Sqrt(sum)
}

// IsConverged checks convergence at iteration iter (starting at 0)
func (o NewtonChecker) IsConverged(res, X, dX []float64, iter int) bool {
	switch {
	case iter <= o.primary.NmaxIt:
		return o.ResidualNorm(res) <= o.primary.Atol && RelativeNorm(dX, X) <= o.primary.Rtol
	case iter <= o.alternate.NmaxIt+1:
		return o.ResidualNorm(res) <= o.alternate.Atol && RelativeNorm(dX, X) <= o.alternate.Rtol
	}
	return false
}

// IterationFinished tells whether to stop iterating: converged or out of iterations
func (o NewtonChecker) IterationFinished(res, X, dX []float64, iter int) bool {
	return o.IsConverged(res, X, dX, iter) || iter > o.alternate.NmaxIt
}

// InnerChecker checks the convergence of a scalar-or-small constraint iteration
//  converged if |res| < Atol or (iter > NCut and |res| < AtolCut); exhausted if iter > NMax
type InnerChecker struct {
	Atol    float64
	AtolCut float64
	NCut    int
	NMax    int
}

// PlaneStressChecker returns the checker used by the stress-reduction wrappers
func PlaneStressChecker() InnerChecker {
	return InnerChecker{Atol: 1e-10, AtolCut: 1e-5, NCut: 7, NMax: 13}
}

// IsConverged checks the largest absolute residual
func (o InnerChecker) IsConverged(res []float64, iter int) bool {
	var r float64
	for _, v := range res {
		if math.IsNaN(v) {
			return false
		}
		r = math.Max(r, math.Abs(v))
	}
	if r < o.Atol {
		return true
	}
	return iter > o.NCut && r < o.AtolCut
}

// Exhausted tells whether the iteration cap has been passed
func (o InnerChecker) Exhausted(iter int) bool { return iter > o.NMax }
