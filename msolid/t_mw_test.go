// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"
	"testing"

	"github.com/MAteRialMOdelingToolbox/Marmot-sub002/inp"
	"github.com/MAteRialMOdelingToolbox/Marmot-sub002/journal"
	"github.com/MAteRialMOdelingToolbox/Marmot-sub002/mw"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_mw01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mw01. von Mises limit with all substeppers")

	E, ν, fy, H := 1000.0, 0.25, 2.0, 50.0
	sol := misesSolution(tst, E, ν, fy, H)
	for _, sub := range []string{inp.SubAdaptive, inp.SubPerezFouget, inp.SubMarkII} {
		io.Pf("\n%s\n", sub)
		mdl := new(MenetreyWillamPlast)
		require.NoError(tst, mdl.Init(paramsFrom("E", E, "nu", ν, "ft", fy, "typ", float64(mw.Mises), "H", H)))
		cnt := &journal.Counting{}
		require.NoError(tst, mdl.SetIntegration(inp.IntegrationData{Substepper: sub}, cnt))

		var drv Driver
		require.NoError(tst, drv.Init(mdl))
		pth := NewPath(make([]float64, 6)).AddLeg([]float64{1.1e-2, 0, 0, 0, 0, 0}, 20)
		require.NoError(tst, drv.Run(pth, make([]float64, 6)))
		for i, s := range drv.Res {
			σa, σl, α := sol.Stress(pth.Eps[i][0])
			chk.Float64(tst, io.Sf("σa%d", i), 1e-8, s.Sig[0], σa)
			chk.Float64(tst, io.Sf("σl%d", i), 1e-8, s.Sig[1], σl)
			chk.Float64(tst, io.Sf("σl%d", i), 1e-8, s.Sig[2], σl)
			chk.Float64(tst, io.Sf("κ%d", i), 1e-9, s.Alp[0], α)
		}
		assert.True(tst, drv.Res[pth.Size()-1].Loading)
		chk.Int(tst, "cuts", drv.Ncuts, 0)
		chk.Int(tst, "warnings", cnt.Warnings, 0)
	}
}

func Test_mw02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mw02. consistent tangent")

	for _, sub := range []string{inp.SubMarkII, inp.SubPerezFouget} {
		io.Pf("\n%s\n", sub)
		mdl := new(MenetreyWillamPlast)
		require.NoError(tst, mdl.Init(paramsFrom("E", 30000.0, "nu", 0.2, "ft", 3.0, "fc", 30.0, "typ", float64(mw.DruckerPrager), "vareps", 0.1, "H", 100.0)))
		require.NoError(tst, mdl.SetIntegration(inp.IntegrationData{Substepper: sub}, nil))

		var drv Driver
		require.NoError(tst, drv.Init(mdl))
		drv.TstD = tst
		drv.StepD = 1e-6
		drv.TolD = 1e-5
		pth := NewPath(make([]float64, 6)).AddLeg([]float64{-5e-4, 0, 0, 1e-3, 0, 0}, 10)
		require.NoError(tst, drv.Run(pth, make([]float64, 6)))
		last := drv.Res[pth.Size()-1]
		io.Pforan("σ = %v  κ = %v  maxErrD = %v\n", last.Sig, last.Alp, drv.MaxErrD)
		assert.True(tst, last.Loading)
		assert.True(tst, last.Alp[0] > 0)
		chk.Float64(tst, "f", 1e-9, mdl.YieldFunc(last.Sig, last.Alp[0]), 0)
	}
}

func Test_mw05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mw05. consistent tangent with several substeps")

	for _, H := range []float64{0, 100} {
		for _, sub := range []string{inp.SubMarkII, inp.SubPerezFouget} {
			if sub == inp.SubPerezFouget && H != 0 {
				continue // additive tangent drops the κn coupling
			}
			io.Pf("\n%s H=%g\n", sub, H)
			mdl := new(MenetreyWillamPlast)
			require.NoError(tst, mdl.Init(paramsFrom("E", 30000.0, "nu", 0.2, "ft", 3.0, "fc", 30.0, "typ", float64(mw.DruckerPrager), "vareps", 0.1, "H", H)))
			require.NoError(tst, mdl.SetIntegration(inp.IntegrationData{Substepper: sub, InitialStep: 0.25, NpassInc: 100}, nil))

			var drv Driver
			require.NoError(tst, drv.Init(mdl))
			drv.TstD = tst
			drv.StepD = 1e-6
			drv.TolD = 1e-5
			pth := NewPath(make([]float64, 6)).AddLeg([]float64{-5e-4, 0, 0, 1e-3, 0, 0}, 10)
			require.NoError(tst, drv.Run(pth, make([]float64, 6)))
			last := drv.Res[pth.Size()-1]
			io.Pforan("σ = %v  κ = %v  maxErrD = %v\n", last.Sig, last.Alp, drv.MaxErrD)
			assert.True(tst, last.Loading)
			chk.Int(tst, "cuts", drv.Ncuts, 0)
		}
	}
}

func Test_mw03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mw03. failure of the local integration")

	mdl := new(MenetreyWillamPlast)
	require.NoError(tst, mdl.Init(paramsFrom("E", 1000.0, "nu", 0.25, "ft", 2.0, "typ", float64(mw.Mises))))
	cnt := &journal.Counting{}
	dat := inp.IntegrationData{Substepper: inp.SubPerezFouget, MinStep: 0.3, NmaxIt: 1, NmaxItAlt: 1}
	require.NoError(tst, mdl.SetIntegration(dat, cnt))

	s, err := mdl.InitIntVars(make([]float64, 6))
	require.NoError(tst, err)
	D := utl.Alloc(6, 6)
	pnewdt := mdl.Update(s, D, []float64{2e-2, 0, 0, 0, 0, 0}, 1)
	chk.Float64(tst, "pnewdt", 1e-17, pnewdt, PnewdtFail)
	chk.Array(tst, "σ unchanged", 1e-17, s.Sig, make([]float64, 6))
	chk.Int(tst, "warnings", cnt.Warnings, 1)
	chk.Int(tst, "notifications", cnt.Notifications, 1)
}

func Test_mw04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mw04. parameters")

	mdl := new(MenetreyWillamPlast)
	require.NoError(tst, mdl.Init(mdl.GetPrms()))
	assert.Equal(tst, mw.MohrCoulomb, mdl.Typ)
	assert.True(tst, mdl.YieldFunc(make([]float64, 6), 0) < 0)
	assert.True(tst, mdl.YieldFunc([]float64{3.5, 0, 0, 0, 0, 0}, 0) > 0)
	assert.Error(tst, mdl.Init(paramsFrom("E", 30000.0, "nu", 0.2, "ft", 3.0, "fc", 30.0, "e", 0.2)))
	assert.Error(tst, mdl.Init(paramsFrom("E", 30000.0, "nu", 0.2, "ft", 0.0)))
	assert.Error(tst, mdl.Init(paramsFrom("E", 30000.0, "nu", 0.2, "ft", 3.0, "phi", 1.0)))
	assert.Error(tst, mdl.SetIntegration(inp.IntegrationData{Substepper: "implicit"}, nil))

	// Rankine under compression lies on θ = π/3
	rk := new(MenetreyWillamPlast)
	require.NoError(tst, rk.Init(paramsFrom("E", 30000.0, "nu", 0.2, "ft", 3.0, "typ", float64(mw.Rankine))))
	chk.Float64(tst, "f(-1,0,0)", 1e-7, rk.YieldFunc([]float64{-1, 0, 0, 0, 0, 0}, 0), -1)
	s, err := rk.InitIntVars(make([]float64, 6))
	require.NoError(tst, err)
	D := utl.Alloc(6, 6)
	Δε := []float64{-1e-5, 0, 0, 0, 0, 0}
	f := rk.YieldFunc(rk.Trial(s.Sig, 1, Δε), 0)
	io.Pforan("f(σtr) = %v\n", f)
	require.False(tst, math.IsNaN(f))
	assert.True(tst, f < 0)
	chk.Float64(tst, "pnewdt", 1e-17, rk.Update(s, D, Δε, 1), 1)
	assert.False(tst, s.Loading)
	chk.Float64(tst, "σ33", 1e-10, s.Sig[2], rk.Cel[2][0]*Δε[0])
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			require.False(tst, math.IsNaN(D[i][j]), "D[%d][%d]", i, j)
		}
	}
}
