// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package substep

import (
	"testing"

	"github.com/MAteRialMOdelingToolbox/Marmot-sub002/journal"
	"github.com/MAteRialMOdelingToolbox/Marmot-sub002/voigt"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
)

func Test_pf01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pf01. step control")

	cnt := &journal.Counting{}
	prm := PerezFougetParams{InitialStepSize: 0.1, MinStepSize: 0.02, ScaleUpFactor: 2, ScaleDownFactor: 0.5, NPassesToIncrease: 2}
	o := NewPerezFouget(stiffness(1), prm, cnt)

	chk.Float64(tst, "h1", 1e-17, o.NextSubstep(), 0.1)
	chk.Float64(tst, "h2", 1e-17, o.NextSubstep(), 0.1)
	chk.Float64(tst, "h3", 1e-17, o.NextSubstep(), 0.2)
	chk.Float64(tst, "progress", 1e-15, o.Progress(), 0.4)

	// failure: roll back and shrink
	assert.True(tst, o.DecreaseSubstepSize())
	chk.Float64(tst, "progress", 1e-15, o.Progress(), 0.2)
	chk.Float64(tst, "h", 1e-17, o.NextSubstep(), 0.1)
	assert.True(tst, o.DecreaseSubstepSize())
	chk.Float64(tst, "h", 1e-17, o.NextSubstep(), 0.05)
	assert.True(tst, o.DecreaseSubstepSize())
	chk.Float64(tst, "h", 1e-17, o.NextSubstep(), 0.025)
	assert.False(tst, o.DecreaseSubstepSize())
	chk.Float64(tst, "progress", 1e-15, o.Progress(), 0.2)
	chk.Int(tst, "warnings", cnt.Warnings, 1)
	chk.Int(tst, "notifications", cnt.Notifications, 3)

	// finish
	o.stepSize = 0.5
	o.passed = 0
	var sizes []float64
	for !o.IsFinished() {
		sizes = append(sizes, o.NextSubstep())
	}
	io.Pforan("sizes = %v\n", sizes)
	chk.Array(tst, "sizes", 1e-15, sizes, []float64{0.5, 0.3})
	st := o.Stats()
	chk.Int(tst, "substeps", st.Substeps, 8)
	chk.Int(tst, "discarded", st.Discarded, 4)
	chk.Int(tst, "passed", st.Passed, 4)
}

func Test_pf02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pf02. tangent")

	Cel := stiffness(4)
	o := NewPerezFouget(Cel, PerezFougetParams{InitialStepSize: 0.5}, nil)

	// elastic then plastic with dσ/dσtr = ½ I
	o.NextSubstep()
	o.ExtendConsistentTangent()
	half := voigt.Identity(6)
	for i := 0; i < 6; i++ {
		half[i][i] = 0.5
	}
	o.NextSubstep()
	o.ExtendConsistentTangentWith(half)
	assert.True(tst, o.IsFinished())
	D := o.ConsistentStiffness()
	chk.Float64(tst, "D00", 1e-15, D[0][0], 0.5*(2+2))
	chk.Float64(tst, "D01", 1e-15, D[0][1], 0)
}

func Test_pf03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pf03. mark II")

	Cel := stiffness(4)
	o := NewPerezFougetExplicitMarkII(Cel, 7, PerezFougetParams{InitialStepSize: 0.5}, nil)
	o.NextSubstep()
	o.FinishElasticSubstep()
	dXdY := voigt.Identity(7)
	dXdY[6][0] = 2
	dYdXOld := make([][]float64, 7)
	for i := range dYdXOld {
		dYdXOld[i] = make([]float64, 7)
	}
	dYdXOld[0][0] = 0.5
	o.NextSubstep()
	o.FinishSubstep(dXdY, dYdXOld)
	assert.True(tst, o.IsFinished())
	T := o.CurrentTangentOperator()

	// after elastic: T00 = 2; then A = (1-½) 2 + ½ 4 = 3; T00 = 3, T60 = 2 A
	chk.Float64(tst, "T00", 1e-15, T[0][0], 3)
	chk.Float64(tst, "T60", 1e-15, T[6][0], 6)
	chk.Float64(tst, "T11", 1e-15, T[1][1], 4)
}
