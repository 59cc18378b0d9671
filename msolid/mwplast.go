// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/MAteRialMOdelingToolbox/Marmot-sub002/conv"
	"github.com/MAteRialMOdelingToolbox/Marmot-sub002/inp"
	"github.com/MAteRialMOdelingToolbox/Marmot-sub002/journal"
	"github.com/MAteRialMOdelingToolbox/Marmot-sub002/mw"
	"github.com/MAteRialMOdelingToolbox/Marmot-sub002/plast"
	"github.com/MAteRialMOdelingToolbox/Marmot-sub002/substep"
	"github.com/MAteRialMOdelingToolbox/Marmot-sub002/voigt"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// MenetreyWillamPlast implements associated plasticity with the Menétrey-Willam surface
//
//  the strengths harden (or soften) with the equivalent plastic strain κ:
//
//   ft(κ) = ft0 + H κ     fc(κ) = fc0 ft(κ)/ft0     dκ = √(2/3) ‖dεp‖
//
//  each substep is integrated with an implicit return mapping with unknowns
//  X = {σ, κ, Δλ} and residuals
//
//   Rσ = σ - σtr + Δλ Cel m     Rκ = κ - κn - Δλ h     Rf = f(σ, κ)
//
//  with m = ∂f/∂σ and h = √(2/3) ‖m‖
type MenetreyWillamPlast struct {
	SmallElasticity

	// parameters
	Ft0    float64 // initial uniaxial tensile strength
	Fc0    float64 // initial uniaxial compressive strength
	Typ    mw.Type // special case of the surface
	Ecc    float64 // eccentricity override (0 means computed)
	VarEps float64 // rounding of the apex
	H      float64 // hardening modulus

	// integration
	integ   inp.IntegrationData
	checker *conv.NewtonChecker
	dl      *plast.DuvautLions
	jnl     journal.Journal
}

// add model to factory
func init() {
	allocators["mw"] = func() Model { return new(MenetreyWillamPlast) }
}

// Init initialises model
func (o *MenetreyWillamPlast) Init(prms dbf.Params) (err error) {
	err = o.SmallElasticity.Init(prms)
	if err != nil {
		return
	}
	o.Typ = mw.MohrCoulomb
	for _, p := range prms {
		switch p.N {
		case "ft":
			o.Ft0 = p.V
		case "fc":
			o.Fc0 = p.V
		case "typ":
			o.Typ = mw.Type(int(p.V))
		case "e":
			o.Ecc = p.V
		case "vareps":
			o.VarEps = p.V
		case "H":
			o.H = p.V
		case "E", "nu", "K", "G", "rho":
		default:
			return chk.Err("mw: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Ecc != 0 && (o.Ecc < 0.5 || o.Ecc > 1) {
		return chk.Err("mw: eccentricity must be in [0.5, 1]. e=%g is invalid\n", o.Ecc)
	}
	if _, err = o.surface(0); err != nil {
		return
	}
	return o.SetIntegration(inp.IntegrationData{}, nil)
}

// SetIntegration sets the substepper, the Newton tolerances, the viscosity and the journal
func (o *MenetreyWillamPlast) SetIntegration(dat inp.IntegrationData, jnl journal.Journal) (err error) {
	dat.SetDefault()
	err = dat.PostProcess()
	if err != nil {
		return
	}
	o.integ = dat
	o.jnl = journal.Or(jnl)
	scale := make([]float64, 8)
	for i := 0; i < 6; i++ {
		scale[i] = 1.0 / o.Ft0
	}
	scale[6] = o.E / o.Ft0
	scale[7] = 1
	o.checker = conv.NewNewtonChecker(scale, dat.Primary(), dat.Alternate())
	o.dl = nil
	if dat.Eta > 0 {
		o.dl = plast.NewDuvautLions(dat.Eta)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o MenetreyWillamPlast) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 30000},
		&dbf.P{N: "nu", V: 0.2},
		&dbf.P{N: "ft", V: 3},
		&dbf.P{N: "fc", V: 30},
		&dbf.P{N: "typ", V: float64(mw.MohrCoulomb)},
		&dbf.P{N: "vareps", V: 0.1},
		&dbf.P{N: "H", V: 0},
	}
}

// InitIntVars initialises internal (secondary) variables
//  α = {κ}
func (o MenetreyWillamPlast) InitIntVars(σ []float64) (s *State, err error) {
	s = NewState(1, false)
	copy(s.Sig, σ)
	return
}

// surface returns the parameters of the surface for a given κ
func (o MenetreyWillamPlast) surface(κ float64) (prm mw.Params, err error) {
	sc := 1.0 + o.H*κ/o.Ft0
	prm, err = mw.New(o.Ft0*sc, o.Fc0*sc, o.Typ)
	if err == nil && o.Ecc > 0 {
		prm.E = o.Ecc
	}
	return
}

// YieldFunc evaluates the yield function
func (o MenetreyWillamPlast) YieldFunc(σ []float64, κ float64) float64 {
	prm, err := o.surface(κ)
	if err != nil {
		return math.Inf(1)
	}
	f, _ := prm.DYieldFunctionDStress(σ, o.VarEps)
	return f
}

// flow computes G(σ,κ) = {m, h, f} [8]
func (o MenetreyWillamPlast) flow(G, x []float64) {
	prm, err := o.surface(x[6])
	if err != nil {
		for i := range G {
			G[i] = math.NaN()
		}
		return
	}
	f, m := prm.DYieldFunctionDStress(x[:6], o.VarEps)
	copy(G, m)
	G[6] = math.Sqrt(2.0/3.0) * voigt.NormStrain(m)
	G[7] = f
}

// jacobian computes the residual and the Jacobian of the return mapping
func (o MenetreyWillamPlast) jacobian(X, σtr []float64, κn float64) (R []float64, J *mat.Dense) {
	G := make([]float64, 8)
	o.flow(G, X[:7])
	dG := mat.NewDense(8, 7, nil)
	fd.Jacobian(dG, o.flow, X[:7], &fd.JacobianSettings{Formula: fd.Central})
	Δλ := X[7]

	// residual
	R = make([]float64, 8)
	Cm := make([]float64, 6)
	for i := 0; i < 6; i++ {
		for k := 0; k < 6; k++ {
			Cm[i] += o.Cel[i][k] * G[k]
		}
		R[i] = X[i] - σtr[i] + Δλ*Cm[i]
	}
	R[6] = X[6] - κn - Δλ*G[6]
	R[7] = G[7]

	// Jacobian
	J = mat.NewDense(8, 8, nil)
	for i := 0; i < 6; i++ {
		for j := 0; j < 7; j++ {
			var CdG float64
			for k := 0; k < 6; k++ {
				CdG += o.Cel[i][k] * dG.At(k, j)
			}
			J.Set(i, j, Δλ*CdG)
		}
		J.Set(i, i, J.At(i, i)+1)
		J.Set(i, 7, Cm[i])
	}
	for j := 0; j < 7; j++ {
		J.Set(6, j, -Δλ*dG.At(6, j))
		J.Set(7, j, dG.At(7, j))
	}
	J.Set(6, 6, J.At(6, 6)+1)
	J.Set(6, 7, -G[6])
	return
}

// returnMapping solves the local problem for a plastic trial state
//  dXdY -- derivative of {σ, κ} w.r.t the trial state {σtr, κn} [7][7]
func (o MenetreyWillamPlast) returnMapping(σtr []float64, κn float64) (σ []float64, κ, Δλ float64, dXdY [][]float64, ok bool) {
	X := make([]float64, 8)
	copy(X, σtr)
	X[6] = κn
	dX := make([]float64, 8)
	var Jinv mat.Dense
	for iter := 0; ; iter++ {
		R, J := o.jacobian(X, σtr, κn)
		if o.checker.IsConverged(R, X, dX, iter) {
			if err := Jinv.Inverse(J); err != nil && !finiteDense(&Jinv) {
				return
			}
			break
		}
		if o.checker.IterationFinished(R, X, dX, iter) {
			return
		}
		if err := Jinv.Inverse(J); err != nil && !finiteDense(&Jinv) {
			return
		}
		for i := 0; i < 8; i++ {
			dX[i] = 0
			for j := 0; j < 8; j++ {
				dX[i] -= Jinv.At(i, j) * R[j]
			}
			X[i] += dX[i]
		}
		if floats.HasNaN(X) {
			return
		}
	}
	if X[7] < 0 {
		return
	}
	σ, κ, Δλ = X[:6], X[6], X[7]
	dXdY = utl.Alloc(7, 7)
	for i := 0; i < 7; i++ {
		for j := 0; j < 7; j++ {
			dXdY[i][j] = Jinv.At(i, j)
		}
	}
	return σ, κ, Δλ, dXdY, true
}

// Update updates stresses for given strains
func (o *MenetreyWillamPlast) Update(s *State, D [][]float64, Δε []float64, Δt float64) (pnewdt float64) {

	// rate-independent solution
	σ0, κ0 := s.Sig, s.Alp[0]
	var σ []float64
	var κ, Δλ float64
	var Dinf [][]float64
	var ok bool
	switch o.integ.Substepper {
	case inp.SubPerezFouget:
		σ, κ, Δλ, Dinf, ok = o.integratePerezFouget(σ0, κ0, Δε)
	case inp.SubMarkII:
		σ, κ, Δλ, Dinf, ok = o.integrateMarkII(σ0, κ0, Δε)
	default:
		σ, κ, Δλ, Dinf, ok = o.integrateAdaptive(σ0, κ0, Δε)
	}
	if !ok {
		return PnewdtFail
	}

	// viscosity
	if o.dl != nil {
		σ = o.dl.ApplyViscosityOnStress(o.Trial(σ0, 1, Δε), σ, Δt)
		κ = o.dl.ApplyViscosityOnStateVar(κ0, κ, Δt)
		Δλ = o.dl.ApplyViscosityOnStateVar(0, Δλ, Δt)
		Dinf = matMul(o.dl.ApplyViscosityOnMatTangent(matMul(Dinf, o.Sel), Δt), o.Cel)
	}

	// new state
	copy(s.Sig, σ)
	s.Alp[0] = κ
	s.Dgam = Δλ
	s.Loading = Δλ > 0
	for i := 0; i < 6; i++ {
		copy(D[i], Dinf[i])
	}
	return 1
}

// integrateAdaptive integrates with error control by Richardson extrapolation
func (o MenetreyWillamPlast) integrateAdaptive(σ0 []float64, κ0 float64, Δε []float64) (σ []float64, κ, Δλ float64, D [][]float64, ok bool) {
	sub := substep.NewAdaptiveExplicit(σ0, []float64{κ0, 0}, o.Cel, 7, o.integ.AdaptiveParams(), o.jnl)
	for !sub.IsFinished() {
		h := sub.NextSubstep()
		σn, q := sub.StartOfSubstep()
		σtr := o.Trial(σn, h, Δε)
		if o.YieldFunc(σtr, q[0]) <= 0 {
			sub.FinishElasticSubstep(σtr)
			continue
		}
		σs, κs, Δλs, dXdY, converged := o.returnMapping(σtr, q[0])
		if !converged {
			if !sub.DiscardSubstep() {
				return
			}
			continue
		}
		if !sub.FinishSubstep(σs, dXdY, nil, []float64{κs, q[1] + Δλs}) {
			return
		}
	}
	σ, q := sub.ConvergedProgress()
	return σ, q[0], q[1], sub.CurrentTangentOperator()[:6], true
}

// integratePerezFouget integrates with the additive 6×6 tangent. Only dσ/dσtr is
// carried between substeps, so the coupling through κn is dropped: the tangent is
// exact for H = 0 or a single substep and approximate otherwise. Use markII for
// the consistent tangent of hardening models
func (o MenetreyWillamPlast) integratePerezFouget(σ0 []float64, κ0 float64, Δε []float64) (σ []float64, κ, Δλ float64, D [][]float64, ok bool) {
	sub := substep.NewPerezFouget(o.Cel, o.integ.PerezFougetParams(), o.jnl)
	σ, κ = append([]float64(nil), σ0...), κ0
	for !sub.IsFinished() {
		h := sub.NextSubstep()
		σtr := o.Trial(σ, h, Δε)
		if o.YieldFunc(σtr, κ) <= 0 {
			sub.ExtendConsistentTangent()
			σ = σtr
			continue
		}
		σs, κs, Δλs, dXdY, converged := o.returnMapping(σtr, κ)
		if !converged {
			if !sub.DecreaseSubstepSize() {
				return
			}
			continue
		}
		dσdσtr := utl.Alloc(6, 6)
		for i := 0; i < 6; i++ {
			copy(dσdσtr[i], dXdY[i][:6])
		}
		sub.ExtendConsistentTangentWith(dσdσtr)
		σ, κ, Δλ = σs, κs, Δλ+Δλs
	}
	return σ, κ, Δλ, sub.ConsistentStiffness(), true
}

// integrateMarkII integrates with the n×6 tangent without error control
func (o MenetreyWillamPlast) integrateMarkII(σ0 []float64, κ0 float64, Δε []float64) (σ []float64, κ, Δλ float64, D [][]float64, ok bool) {
	sub := substep.NewPerezFougetExplicitMarkII(o.Cel, 7, o.integ.PerezFougetParams(), o.jnl)
	σ, κ = append([]float64(nil), σ0...), κ0
	for !sub.IsFinished() {
		h := sub.NextSubstep()
		σtr := o.Trial(σ, h, Δε)
		if o.YieldFunc(σtr, κ) <= 0 {
			sub.FinishElasticSubstep()
			σ = σtr
			continue
		}
		σs, κs, Δλs, dXdY, converged := o.returnMapping(σtr, κ)
		if !converged {
			if !sub.DecreaseSubstepSize() {
				return
			}
			continue
		}
		sub.FinishSubstep(dXdY, nil)
		σ, κ, Δλ = σs, κs, Δλ+Δλs
	}
	return σ, κ, Δλ, sub.CurrentTangentOperator()[:6], true
}

func finiteDense(M *mat.Dense) bool {
	r, c := M.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := M.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}
