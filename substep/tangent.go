// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package substep implements substepping strategies for the integration of material laws
//
//  progress ∈ [0,1] measures the fraction of the macro increment already integrated;
//  the tangent T = dX/dΔε (n×6, with X = {σ, extra local unknowns}) is propagated as
//
//   T ← dXdY ⋅ ( (I - dYdXOld) ⋅ T + h Cel )
//
//  where dXdY is the derivative of the substep result w.r.t its trial state Y and
//  dYdXOld corrects the identity dependence of Y on the previous converged state
package substep

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// constants
const (
	ProgressTol = 2e-16 // progress ≥ 1 - ProgressTol means finished
)

// Stats collects substepping statistics
type Stats struct {
	Substeps            int // number of substeps requested
	Passed              int // number of accepted substeps
	DiscardedDueToError int // number of substeps rejected by the error estimate and repeated
	Discarded           int // number of substeps discarded by the caller
}

// tangent holds an n×6 tangent and the padded elastic stiffness
type tangent struct {
	n   int
	cel *mat.Dense // n×6: Cel in the first 6 rows
}

func newTangent(Cel [][]float64, n int) (o tangent) {
	if len(Cel) != 6 {
		chk.Panic("substep: elastic stiffness must be 6×6. %d rows is invalid\n", len(Cel))
	}
	if n < 6 {
		chk.Panic("substep: tangent size must be at least 6. %d is invalid\n", n)
	}
	o.n = n
	o.cel = mat.NewDense(n, 6, nil)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			o.cel.Set(i, j, Cel[i][j])
		}
	}
	return
}

// propagate computes dXdY ⋅ ((I - dYdXOld) ⋅ T + h Cel); nil matrices are I and 0
func (o tangent) propagate(T *mat.Dense, h float64, dXdY, dYdXOld [][]float64) *mat.Dense {
	var A mat.Dense
	A.CloneFrom(T)
	if dYdXOld != nil {
		var C mat.Dense
		C.Mul(o.dense(dYdXOld), T)
		A.Sub(&A, &C)
	}
	var hC mat.Dense
	hC.Scale(h, o.cel)
	A.Add(&A, &hC)
	if dXdY == nil {
		return &A
	}
	res := mat.NewDense(o.n, 6, nil)
	res.Mul(o.dense(dXdY), &A)
	return res
}

// dense converts an n×n slice matrix
func (o tangent) dense(M [][]float64) *mat.Dense {
	if len(M) != o.n {
		chk.Panic("substep: matrix must be %d×%d. %d rows is invalid\n", o.n, o.n, len(M))
	}
	D := mat.NewDense(o.n, o.n, nil)
	for i := 0; i < o.n; i++ {
		D.SetRow(i, M[i])
	}
	return D
}

// toSlices copies a dense matrix into a new [][]float64
func toSlices(M *mat.Dense) (res [][]float64) {
	r, _ := M.Dims()
	res = make([][]float64, r)
	for i := 0; i < r; i++ {
		res[i] = mat.Row(nil, i, M)
	}
	return
}

// clone copies a vector
func clone(v []float64) []float64 {
	if v == nil {
		return nil
	}
	res := make([]float64, len(v))
	copy(res, v)
	return res
}
