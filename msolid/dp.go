// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/MAteRialMOdelingToolbox/Marmot-sub002/inp"
	"github.com/MAteRialMOdelingToolbox/Marmot-sub002/journal"
	"github.com/MAteRialMOdelingToolbox/Marmot-sub002/plast"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// DruckerPrager implements Drucker-Prager plasticity model with an optional tension cut-off
//
//  cone:    f1 = q - M p - qy0 - H α1      (plastic potential with Mb)
//  cut-off: f2 = -p - T                    (associated; α2 accumulates its multiplier)
//
//  p = -tr(σ)/3 (compression positive) and q = √(3 J2)
type DruckerPrager struct {
	SmallElasticity
	M      float64 // slope of fc line
	Mb     float64 // slope of fc line of plastic potential
	qy0    float64 // initial qy
	H      float64 // hardening variable
	T      float64 // tension cut-off (mean stress)
	HasCut bool    // tension cut-off is active

	// collaborators
	cmb *plast.YieldSurfaceCombinationManager
	dl  *plast.DuvautLions
	jnl journal.Journal
}

// add model to factory
func init() {
	allocators["dp"] = func() Model { return new(DruckerPrager) }
}

// Init initialises model
func (o *DruckerPrager) Init(prms dbf.Params) (err error) {

	// parse parameters
	err = o.SmallElasticity.Init(prms)
	if err != nil {
		return
	}
	var c, φ float64
	var typ int
	for _, p := range prms {
		switch p.N {
		case "M":
			o.M = p.V
		case "Mb":
			o.Mb = p.V
		case "qy0":
			o.qy0 = p.V
		case "H":
			o.H = p.V
		case "c":
			c = p.V
		case "phi":
			φ = p.V
		case "typ":
			typ = int(p.V)
		case "tcut":
			o.T, o.HasCut = p.V, true
		case "E", "nu", "K", "G", "rho":
		default:
			return chk.Err("dp: parameter named %q is incorrect\n", p.N)
		}
	}

	// compute M from φ
	//  typ == 0 : compression cone (outer)
	//      == 1 : extension cone (inner)
	//      == 2 : plane-strain
	if φ > 0 {
		o.M, o.qy0, err = Mmatch(c, φ, typ)
		if err != nil {
			return
		}
		o.Mb = o.M
	}
	if o.HasCut && o.T < 0 {
		return chk.Err("dp: tension cut-off must not be negative. tcut=%g is invalid\n", o.T)
	}

	// collaborators
	nsurf := 1
	if o.HasCut {
		nsurf = 2
	}
	o.cmb = plast.NewYieldSurfaceCombinationManager(nsurf)
	o.jnl = journal.Default()
	return
}

// SetIntegration sets the viscosity and the journal
func (o *DruckerPrager) SetIntegration(dat inp.IntegrationData, jnl journal.Journal) error {
	o.jnl = journal.Or(jnl)
	o.dl = nil
	if dat.Eta > 0 {
		o.dl = plast.NewDuvautLions(dat.Eta)
	}
	return nil
}

// GetPrms gets (an example) of parameters
func (o DruckerPrager) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 100},
		&dbf.P{N: "nu", V: 0.3},
		&dbf.P{N: "M", V: 1},
		&dbf.P{N: "Mb", V: 1},
		&dbf.P{N: "qy0", V: 0.5},
		&dbf.P{N: "H", V: 0},
		&dbf.P{N: "tcut", V: 0.1},
	}
}

// InitIntVars initialises internal (secondary) variables
//  α = {α1 (cone), α2 (cut-off)}
func (o DruckerPrager) InitIntVars(σ []float64) (s *State, err error) {
	s = NewState(2, false)
	copy(s.Sig, σ)
	return
}

// YieldFuncs computes the yield functions
func (o DruckerPrager) YieldFuncs(s *State) []float64 {
	p, q, _ := PQ(s.Sig)
	f := []float64{q - o.M*p - o.qy0 - o.H*s.Alp[0]}
	if o.HasCut {
		f = append(f, -p-o.T)
	}
	return f
}

// dpReturn holds the result of one return-mapping hypothesis
//  p, q are linear in ptr, qtr with slopes pp = ∂p/∂ptr, pq = ∂p/∂qtr, qq = ∂q/∂qtr, qp = ∂q/∂ptr
type dpReturn struct {
	Δγ1, Δγ2       float64
	p, q           float64
	pp, pq, qq, qp float64
}

// Update updates stresses for given strains
func (o *DruckerPrager) Update(s *State, D [][]float64, Δε []float64, Δt float64) (pnewdt float64) {

	// trial state
	σtr := o.Trial(s.Sig, 1, Δε)
	ptr, qtr, str := PQ(σtr)
	α0 := s.Alp[0]
	ftol := 1e-12 * math.Max(1, o.qy0)

	// elastic update
	f1 := qtr - o.M*ptr - o.qy0 - o.H*α0
	f2 := -ptr - o.T
	if f1 <= ftol && (!o.HasCut || f2 <= ftol) {
		copy(s.Sig, σtr)
		s.Loading = false
		s.Dgam = 0
		o.CalcD(D)
		return 1
	}

	// rate-independent solution
	r, ok := o.returnMapping(ptr, qtr, α0, ftol)
	if !ok {
		o.jnl.Warning("dp: no consistent return found (p=%g, q=%g)", ptr, qtr)
		return PnewdtFail
	}
	σinf := make([]float64, 6)
	for i := 0; i < 6; i++ {
		if qtr > 0 {
			σinf[i] = r.q / qtr * str[i]
		}
		if i < 3 {
			σinf[i] -= r.p
		}
	}
	dσdσtr := o.dσdσtr(r, qtr, str)
	αinf := []float64{α0 + r.Δγ1, s.Alp[1] + r.Δγ2}

	// viscosity
	if o.dl != nil {
		σinf = o.dl.ApplyViscosityOnStress(σtr, σinf, Δt)
		αinf[0] = o.dl.ApplyViscosityOnStateVar(α0, αinf[0], Δt)
		αinf[1] = o.dl.ApplyViscosityOnStateVar(s.Alp[1], αinf[1], Δt)
		dσdσtr = o.dl.ApplyViscosityOnMatTangent(dσdσtr, Δt)
	}

	// new state
	copy(s.Sig, σinf)
	s.Dgam = αinf[0] - α0 + αinf[1] - s.Alp[1]
	copy(s.Alp, αinf)
	s.Loading = true
	Dep := matMul(dσdσtr, o.Cel)
	for i := 0; i < 6; i++ {
		copy(D[i], Dep[i])
	}
	return 1
}

// returnMapping tries all combinations of active surfaces and, finally, the return to apex
func (o *DruckerPrager) returnMapping(ptr, qtr, α0, ftol float64) (r dpReturn, ok bool) {
	o.cmb.ResetUsed()
	active := make([]bool, o.cmb.NumSurfaces())
	for o.cmb.AnotherCombination(active) {
		cone, cut := active[0], len(active) > 1 && active[1]
		r, ok = o.hypothesis(cone, cut, ptr, qtr, α0)
		if ok && o.consistent(r, α0, ftol) {
			return r, true
		}
	}
	r, ok = o.apex(ptr, α0)
	if ok && o.consistent(r, α0, ftol) {
		return r, true
	}
	return r, false
}

// hypothesis computes the closed-form return for a set of active surfaces
func (o DruckerPrager) hypothesis(cone, cut bool, ptr, qtr, α0 float64) (r dpReturn, ok bool) {
	K, G, M, Mb, H := o.K, o.G, o.M, o.Mb, o.H
	switch {
	case cone && !cut:
		hp := 3.0*G + K*M*Mb + H
		r.Δγ1 = (qtr - M*ptr - o.qy0 - H*α0) / hp
		r.p = ptr + K*Mb*r.Δγ1
		r.q = qtr - 3.0*G*r.Δγ1
		r.pp, r.pq = 1.0-K*Mb*M/hp, K*Mb/hp
		r.qq, r.qp = 1.0-3.0*G/hp, 3.0*G*M/hp
	case cut && !cone:
		r.Δγ2 = (-ptr - o.T) / K
		r.p = -o.T
		r.q = qtr
		r.qq = 1
	case cone && cut:
		r.Δγ1 = (qtr + M*o.T - o.qy0 - H*α0) / (3.0*G + H)
		r.Δγ2 = (-o.T-ptr)/K - Mb*r.Δγ1
		r.p = -o.T
		r.q = qtr - 3.0*G*r.Δγ1
		r.qq = 1.0 - 3.0*G/(3.0*G+H)
	default:
		return r, false
	}
	return r, true
}

// apex computes the return to the apex of the cone
func (o DruckerPrager) apex(ptr, α0 float64) (r dpReturn, ok bool) {
	den := 3.0*o.K*o.M + o.H
	if den <= 0 {
		return r, false
	}
	r.Δγ1 = (-o.M*ptr - o.qy0 - o.H*α0) / den
	r.p = ptr + 3.0*o.K*r.Δγ1
	r.pp = o.H / den
	return r, true
}

// consistent checks the plastic multipliers and the yield functions at the returned state
func (o DruckerPrager) consistent(r dpReturn, α0, ftol float64) bool {
	if r.Δγ1 < -ftol || r.Δγ2 < -ftol || r.q < -ftol {
		return false
	}
	if r.q-o.M*r.p-o.qy0-o.H*(α0+r.Δγ1) > ftol {
		return false
	}
	return !o.HasCut || -r.p-o.T <= ftol
}

// dσdσtr computes the derivative of the returned stress w.r.t the trial stress
//  σ = (q/qtr) str - p δ ;  q/qtr → ∂q/∂qtr when qtr → 0
func (o DruckerPrager) dσdσtr(r dpReturn, qtr float64, str []float64) (M [][]float64) {
	δ := []float64{1, 1, 1, 0, 0, 0}
	w := []float64{1, 1, 1, 2, 2, 2}
	dptr := make([]float64, 6)
	dqtr := make([]float64, 6)
	ratio := r.qq
	if qtr > 0 {
		ratio = r.q / qtr
	}
	for j := 0; j < 6; j++ {
		dptr[j] = -δ[j] / 3.0
		if qtr > 0 {
			dqtr[j] = 1.5 * str[j] * w[j] / qtr
		}
	}
	M = utl.Alloc(6, 6)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			dp := r.pp*dptr[j] + r.pq*dqtr[j]
			M[i][j] = -δ[i]*dp - ratio*δ[i]*δ[j]/3.0
			if i == j {
				M[i][j] += ratio
			}
			if qtr > 0 {
				dq := r.qq*dqtr[j] + r.qp*dptr[j]
				M[i][j] += str[i] * (dq - ratio*dqtr[j]) / qtr
			}
		}
	}
	return
}
