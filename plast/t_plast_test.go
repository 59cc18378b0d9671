// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plast

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_dl01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dl01. Duvaut-Lions limits")

	for _, η := range []float64{1e-3, 1, 250} {
		o := NewDuvautLions(η)
		for _, v := range [][]float64{{1, 2}, {-3, 7}, {0, 0}, {5, -5}} {
			chk.Float64(tst, "Δt=0", 1e-17, o.ApplyViscosityOnStateVar(v[0], v[1], 0), v[0])
			chk.Float64(tst, "Δt=∞", 1e-8*(1+v[1]*v[1]), o.ApplyViscosityOnStateVar(v[0], v[1], 1e12*η), v[1])
		}
	}

	o := NewDuvautLions(2)
	chk.Float64(tst, "k=1", 1e-17, o.ApplyViscosityOnStateVar(1, 3, 2), 2)
	σ := o.ApplyViscosityOnStress([]float64{4, 0, 0, 2, 0, 0}, []float64{1, 0, 0, -1, 0, 0}, 6)
	io.Pforan("σ = %v\n", σ)
	chk.Array(tst, "σ", 1e-15, σ, []float64{7.0 / 4.0, 0, 0, -1.0 / 4.0, 0, 0})
}

func Test_dl02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dl02. Duvaut-Lions tangent")

	o := NewDuvautLions(1)
	T := [][]float64{{0.5, 0.1}, {0, 0.25}}
	chk.Deep2(tst, "Δt=0", 1e-17, o.ApplyViscosityOnMatTangent(T, 0), [][]float64{{1, 0}, {0, 1}})
	chk.Deep2(tst, "k=3", 1e-15, o.ApplyViscosityOnMatTangent(T, 3), [][]float64{
		{(1 + 1.5) / 4, 0.3 / 4},
		{0, (1 + 0.75) / 4},
	})
	assert.Panics(tst, func() { NewDuvautLions(0) })
	assert.Panics(tst, func() { o.ApplyViscosityOnStress([]float64{1}, []float64{1, 2}, 1) })
}

func Test_comb01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("comb01. three surfaces")

	o := NewYieldSurfaceCombinationManager(3)
	chk.Int(tst, "rows", len(o.Combinations()), 7)

	active := make([]bool, 3)
	var first [][]bool
	for o.AnotherCombination(active) {
		first = append(first, append([]bool(nil), active...))
		require.True(tst, len(first) <= 7)
	}
	io.Pforan("first = %v\n", first)
	chk.Int(tst, "number", len(first), 7)
	seen := map[[3]bool]bool{}
	for _, c := range first {
		key := [3]bool{c[0], c[1], c[2]}
		assert.False(tst, seen[key], "duplicated combination %v", c)
		assert.True(tst, c[0] || c[1] || c[2], "empty combination")
		seen[key] = true
	}
	assert.Equal(tst, []bool{true, false, false}, first[0])
	assert.Equal(tst, []bool{false, true, false}, first[1])
	assert.Equal(tst, []bool{true, true, true}, first[6])

	o.ResetUsed()
	var second [][]bool
	for o.AnotherCombination(active) {
		second = append(second, append([]bool(nil), active...))
	}
	assert.Equal(tst, first, second)
}

func Test_comb02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("comb02. mark as used")

	o := NewYieldSurfaceCombinationManager(2)
	o.MarkAsUsed([]bool{true, false})
	o.MarkAsUsed([]bool{false, false})
	active := make([]bool, 2)
	require.True(tst, o.AnotherCombination(active))
	assert.Equal(tst, []bool{false, true}, active)
	require.True(tst, o.AnotherCombination(active))
	assert.Equal(tst, []bool{true, true}, active)
	assert.False(tst, o.AnotherCombination(active))

	assert.Panics(tst, func() { o.AnotherCombination(make([]bool, 3)) })
	assert.Panics(tst, func() { NewYieldSurfaceCombinationManager(0) })
}
