// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hw implements Haigh-Westergaard coordinates
//
//  ξ = I1 / √3    ρ = √(2 J2)    cos(3θ) = (3√3/2) J3 / J2^(3/2)    θ ∈ [0, π/3]
//
//  θ = 0 on the tensile meridian and θ = π/3 on the compressive one
package hw

import (
	"math"

	"github.com/MAteRialMOdelingToolbox/Marmot-sub002/voigt"
)

// constants
const (
	SQ3      = 1.7320508075688772  // √3
	SQ2by3   = 0.81649658092772603 // √(2/3)
	kLode    = 3 * SQ3 / 2         // factor of J3/J2^1.5
	rhoZero  = 1e-12               // relative tolerance for ρ ≈ 0
	sin3Zero = 1e-12               // tolerance on 1 - cos²(3θ) for degenerate derivatives
)

// Coordinates holds the Haigh-Westergaard coordinates
type Coordinates struct {
	Xi    float64 // ξ: hydrostatic length
	Rho   float64 // ρ: deviatoric radius
	Theta float64 // θ: Lode angle
}

// HaighWestergaard computes the coordinates of a Voigt stress
func HaighWestergaard(σ []float64) Coordinates {
	return fromInvariants(voigt.I1(σ), voigt.J2(σ), voigt.J3(σ))
}

// HaighWestergaardStrain computes the coordinates of a Voigt strain (engineering shears)
func HaighWestergaardStrain(ε []float64) Coordinates {
	return fromInvariants(voigt.I1Strain(ε), voigt.J2Strain(ε), voigt.J3Strain(ε))
}

// degenerate tells whether ρ ≈ 0
func (o Coordinates) degenerate() bool {
	return o.Rho <= rhoZero*(1+math.Abs(o.Xi))
}

// PrincipalStresses returns the principal values (descending) corresponding to the coordinates
func PrincipalStresses(c Coordinates) (σ [3]float64) {
	m := c.Xi / SQ3
	r := SQ2by3 * c.Rho
	σ[0] = m + r*math.Cos(c.Theta)
	σ[1] = m + r*math.Cos(c.Theta-2*math.Pi/3)
	σ[2] = m + r*math.Cos(c.Theta+2*math.Pi/3)
	return
}

func fromInvariants(i1, j2, j3 float64) (c Coordinates) {
	c.Xi = i1 / SQ3
	c.Rho = math.Sqrt(2 * math.Max(j2, 0))
	if c.degenerate() {
		return
	}
	c.Theta = lode(kLode * j3 / math.Pow(j2, 1.5))
	return
}

// lode returns θ = acos(x)/3 with explicit branches at the bounds
func lode(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return math.Pi / 3
	case x >= 1:
		return 0
	case x <= -1:
		return math.Pi / 3
	}
	return math.Acos(x) / 3
}

// derivatives /////////////////////////////////////////////////////////////////////////////////////

// dθdx returns dθ/dx with x = cos(3θ), or false at degenerate points
func dθdx(j2, j3 float64) (float64, bool) {
	if j2 <= 0 {
		return 0, false
	}
	x := kLode * j3 / math.Pow(j2, 1.5)
	if math.IsNaN(x) || 1-x*x < sin3Zero {
		return 0, false
	}
	return -1 / (3 * math.Sqrt(1-x*x)), true
}

// DThetaDJ2 returns dθ/dJ2 (zero at degenerate points)
func DThetaDJ2(j2, j3 float64) float64 {
	d, ok := dθdx(j2, j3)
	if !ok {
		return 0
	}
	return d * (-1.5 * kLode * j3 * math.Pow(j2, -2.5))
}

// DThetaDJ3 returns dθ/dJ3 (zero at degenerate points)
func DThetaDJ3(j2, j3 float64) float64 {
	d, ok := dθdx(j2, j3)
	if !ok {
		return 0
	}
	return d * kLode * math.Pow(j2, -1.5)
}

// DXiDStress returns dξ/dσ = I/√3
func DXiDStress() (d []float64) {
	d = voigt.IVec()
	for i := 0; i < 3; i++ {
		d[i] /= SQ3
	}
	return
}

// DRhoDStress returns dρ/dσ = (dJ2/dσ)/ρ (zero if ρ ≈ 0)
func DRhoDStress(σ []float64) (d []float64) {
	c := HaighWestergaard(σ)
	if c.degenerate() {
		return make([]float64, 6)
	}
	d = voigt.DJ2DStress(σ)
	for i := range d {
		d[i] /= c.Rho
	}
	return
}

// DThetaDStress returns dθ/dσ (zero at degenerate points)
func DThetaDStress(σ []float64) (d []float64) {
	d = make([]float64, 6)
	c := HaighWestergaard(σ)
	if c.degenerate() {
		return
	}
	j2, j3 := voigt.J2(σ), voigt.J3(σ)
	a, b := DThetaDJ2(j2, j3), DThetaDJ3(j2, j3)
	if a == 0 && b == 0 {
		return
	}
	dj2, dj3 := voigt.DJ2DStress(σ), voigt.DJ3DStress(σ)
	for i := 0; i < 6; i++ {
		d[i] = a*dj2[i] + b*dj3[i]
	}
	return
}

// Gradients returns the coordinates and their derivatives w.r.t the Voigt stress
func Gradients(σ []float64) (c Coordinates, dξ, dρ, dθ []float64) {
	c = HaighWestergaard(σ)
	return c, DXiDStress(), DRhoDStress(σ), DThetaDStress(σ)
}
