// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"
	"testing"

	"github.com/MAteRialMOdelingToolbox/Marmot-sub002/journal"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

// Path holds a strain path
type Path struct {
	Eps [][]float64 // total strains (engineering shears) [npts][6]
}

// NewPath returns a path starting at ε0
func NewPath(ε0 []float64) *Path {
	if len(ε0) != 6 {
		chk.Panic("strains must have 6 components. %d is invalid\n", len(ε0))
	}
	return &Path{Eps: [][]float64{append([]float64(nil), ε0...)}}
}

// AddLeg adds ninc equal increments from the last point to εEnd
func (o *Path) AddLeg(εEnd []float64, ninc int) *Path {
	if len(εEnd) != 6 || ninc < 1 {
		chk.Panic("leg must have 6 strain components and at least one increment. len(ε)=%d and ninc=%d are invalid\n", len(εEnd), ninc)
	}
	ε0 := o.Eps[len(o.Eps)-1]
	for k := 1; k <= ninc; k++ {
		ε := make([]float64, 6)
		for i := 0; i < 6; i++ {
			ε[i] = ε0[i] + float64(k)*(εEnd[i]-ε0[i])/float64(ninc)
		}
		o.Eps = append(o.Eps, ε)
	}
	return o
}

// Size returns the number of points
func (o Path) Size() int { return len(o.Eps) }

// Driver runs simulations with small strain models at one material point
type Driver struct {

	// input
	Model Model           // model
	Jnl   journal.Journal // journal for warnings and notifications

	// settings
	NmaxCuts int     // max number of increment cuts when pnewdt < 1
	Dt       float64 // time increment of each path increment
	TolD     float64 // tolerance to check D
	StepD    float64 // strain perturbation used to check D
	VerD     bool    // verbose check of D

	// check D matrix
	TstD *testing.T // if != nil, do check consistent matrix

	// results
	Res     []*State      // results
	D       [][][]float64 // tangents
	Ncuts   int           // total number of cuts
	MaxErrD float64       // max difference between the tangent and its numerical version
	sml     Small
}

// Init initialises driver
func (o *Driver) Init(model Model) (err error) {
	sml, ok := model.(Small)
	if !ok {
		return chk.Err("driver: model %T is not a small strain model\n", model)
	}
	o.Model, o.sml = model, sml
	o.Jnl = journal.Or(o.Jnl)
	o.NmaxCuts = 8
	o.Dt = 1
	o.TolD = 1e-6
	o.StepD = 1e-8
	o.VerD = chk.Verbose
	return
}

// Run runs simulation starting from stress σ0
func (o *Driver) Run(pth *Path, σ0 []float64) (err error) {

	// allocate results arrays
	np := pth.Size()
	o.Res = make([]*State, np)
	o.D = make([][][]float64, np)
	o.Ncuts, o.MaxErrD = 0, 0

	// initialise first state
	o.Res[0], err = o.Model.InitIntVars(σ0)
	if err != nil {
		return
	}

	// update states
	Δε := make([]float64, 6)
	for i := 1; i < np; i++ {
		for j := 0; j < 6; j++ {
			Δε[j] = pth.Eps[i][j] - pth.Eps[i-1][j]
		}
		o.Res[i] = o.Res[i-1].GetCopy()
		o.D[i] = utl.Alloc(6, 6)
		ncuts, ok := o.update(o.Res[i], o.D[i], Δε, o.Dt, 0)
		if !ok {
			return chk.Err("driver: local integration failed at increment %d after %d cuts\n", i, o.NmaxCuts)
		}
		o.Ncuts += ncuts

		// check consistent moduli
		if o.TstD != nil && ncuts == 0 {
			o.checkD(i, o.Res[i-1], o.D[i], Δε)
		}
	}
	return
}

// update updates s; the increment is halved while pnewdt < 1
func (o *Driver) update(s *State, D [][]float64, Δε []float64, Δt float64, level int) (ncuts int, ok bool) {
	tmp := s.GetCopy()
	if o.sml.Update(tmp, D, Δε, Δt) >= 1 {
		s.Set(tmp)
		return 0, true
	}
	if level >= o.NmaxCuts {
		return 0, false
	}
	o.Jnl.Notification("driver: cutting increment (level %d)", level+1)
	half := make([]float64, 6)
	for i := range half {
		half[i] = Δε[i] / 2
	}
	n1, ok := o.update(s, D, half, Δt/2, level+1)
	if !ok {
		return
	}
	n2, ok := o.update(s, D, half, Δt/2, level+1)
	return 1 + n1 + n2, ok
}

// checkD compares D with central differences of the stress update
func (o *Driver) checkD(inc int, sold *State, D [][]float64, Δε []float64) {
	Dnum := mat.NewDense(6, 6, nil)
	fd.Jacobian(Dnum, func(σ, x []float64) {
		tmp := sold.GetCopy()
		Dtmp := utl.Alloc(6, 6)
		o.sml.Update(tmp, Dtmp, x, o.Dt)
		copy(σ, tmp.Sig)
	}, Δε, &fd.JacobianSettings{Formula: fd.Central, Step: o.StepD})
	var maxD, maxErr float64
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			maxD = math.Max(maxD, math.Abs(D[i][j]))
			maxErr = math.Max(maxErr, math.Abs(D[i][j]-Dnum.At(i, j)))
		}
	}
	rel := maxErr / math.Max(1, maxD)
	o.MaxErrD = math.Max(o.MaxErrD, rel)
	if o.VerD {
		io.Pf("increment %3d: max error on D = %v\n", inc, rel)
	}
	if rel > o.TolD {
		o.TstD.Errorf("increment %d: consistent tangent failed: relative error = %g > %g\n", inc, rel, o.TolD)
	}
}
