// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mw implements the Menétrey-Willam failure surface
//
//  f = (Af ρ)² + m (Bf ρ r(θ,e) + Cf ξ) - 1
//
//  with ξ, ρ, θ the Haigh-Westergaard coordinates and r the elliptic polar radius
package mw

import (
	"math"

	"github.com/MAteRialMOdelingToolbox/Marmot-sub002/hw"
	"github.com/cpmech/gosl/chk"
)

// constants
const (
	SQ3    = 1.7320508075688772  // √3
	SQ6    = 2.4494897427831779  // √6
	SQ3by2 = 1.2247448713915890  // √(3/2)
)

// Type defines the special case of the surface
type Type int

// types
const (
	Mises Type = iota
	Rankine
	DruckerPrager
	MohrCoulomb
)

// String returns the name of the type
func (t Type) String() string {
	switch t {
	case Mises:
		return "Mises"
	case Rankine:
		return "Rankine"
	case DruckerPrager:
		return "DruckerPrager"
	case MohrCoulomb:
		return "MohrCoulomb"
	}
	return "Unknown"
}

// TypeFromString returns the type corresponding to a (case sensitive) name
func TypeFromString(name string) (t Type, err error) {
	switch name {
	case "Mises", "mises":
		return Mises, nil
	case "Rankine", "rankine":
		return Rankine, nil
	case "DruckerPrager", "dp":
		return DruckerPrager, nil
	case "MohrCoulomb", "mc":
		return MohrCoulomb, nil
	}
	return 0, chk.Err("mw: type %q is unknown\n", name)
}

// Params holds the parameters of the surface
type Params struct {
	Af float64 // coefficient of ρ² term
	Bf float64 // coefficient of ρ r term
	Cf float64 // coefficient of ξ term
	M  float64 // friction parameter m
	E  float64 // eccentricity e ∈ [0.5, 1]
}

// New returns the parameters for given strengths
//  Mises and Rankine only need ft; DruckerPrager and MohrCoulomb need ft and fc
func New(ft, fc float64, typ Type) (o Params, err error) {
	err = o.SetParameters(ft, fc, typ)
	return
}

// SetParameters computes Af, Bf, Cf, m and e
func (o *Params) SetParameters(ft, fc float64, typ Type) (err error) {
	if ft <= 0 {
		return chk.Err("mw: tensile strength ft=%g must be positive\n", ft)
	}
	switch typ {
	case Mises:
		*o = Params{Af: SQ3by2 / ft, M: 0, E: 1}
	case Rankine:
		*o = Params{Bf: 1 / (SQ6 * ft), Cf: 1 / (SQ3 * ft), M: 1, E: 0.5}
	case DruckerPrager, MohrCoulomb:
		if fc <= 0 {
			return chk.Err("mw: %v requires a positive compressive strength. fc=%g is invalid\n", typ, fc)
		}
		if typ == DruckerPrager {
			*o = Params{
				Bf: SQ3by2 * (fc + ft) / (2 * fc * ft),
				Cf: SQ3 * (fc - ft) / (2 * fc * ft),
				M:  1,
				E:  1,
			}
		} else {
			*o = Params{
				Bf: SQ3by2 * (fc + 2*ft) / (3 * fc * ft),
				Cf: SQ3 * (fc - ft) / (3 * fc * ft),
				M:  1,
				E:  EFromStrengths(fc, ft),
			}
		}
	default:
		return chk.Err("mw: type %d is unknown\n", int(typ))
	}
	return
}

// polar radius ////////////////////////////////////////////////////////////////////////////////////

// PolarRadius returns the elliptic radius r(θ,e); r(0) = 1/e and r(π/3) = 1.
// e = 1/2 (Rankine) reduces to r = 2cosθ
func PolarRadius(θ, e float64) float64 {
	if e >= 1 {
		return 1
	}
	c := math.Cos(θ)
	if e == 0.5 {
		return 2 * c
	}
	a := 1 - e*e
	b := 2*e - 1
	N := 4*a*c*c + b*b
	D := 2*a*c + b*math.Sqrt(math.Max(0, 4*a*c*c+5*e*e-4*e))
	return N / D
}

// DPolarRadiusDTheta returns dr/dθ
func DPolarRadiusDTheta(θ, e float64) float64 {
	if e >= 1 {
		return 0
	}
	c, s := math.Cos(θ), math.Sin(θ)
	if e == 0.5 {
		return -2 * s
	}
	a := 1 - e*e
	b := 2*e - 1
	sq := math.Sqrt(math.Max(0, 4*a*c*c+5*e*e-4*e)) // ≥ |b| on [0,π/3]
	N := 4*a*c*c + b*b
	D := 2*a*c + b*sq
	dN := -8 * a * c * s
	dD := -2 * a * s
	if sq > 0 {
		dD -= b * 4 * a * c * s / sq
	}
	return (dN*D - N*dD) / (D * D)
}

// yield function //////////////////////////////////////////////////////////////////////////////////

// YieldFunction evaluates f; varEps > 0 rounds the apex with √((Bf ρ r)² + varEps²)
func (o Params) YieldFunction(c hw.Coordinates, varEps float64) float64 {
	t := o.Bf * c.Rho * PolarRadius(c.Theta, o.E)
	if varEps > 0 {
		t = math.Sqrt(t*t + varEps*varEps)
	}
	return o.Af*o.Af*c.Rho*c.Rho + o.M*(t+o.Cf*c.Xi) - 1
}

// DYieldFunctionDHW returns df/dξ, df/dρ and df/dθ
func (o Params) DYieldFunctionDHW(c hw.Coordinates, varEps float64) (dfdξ, dfdρ, dfdθ float64) {
	r := PolarRadius(c.Theta, o.E)
	dr := DPolarRadiusDTheta(c.Theta, o.E)
	dtdt := 1.0 // d(rounded)/d(Bf ρ r)
	if varEps > 0 {
		t := o.Bf * c.Rho * r
		dtdt = t / math.Sqrt(t*t+varEps*varEps)
	}
	dfdξ = o.M * o.Cf
	dfdρ = 2*o.Af*o.Af*c.Rho + o.M*dtdt*o.Bf*r
	dfdθ = o.M * dtdt * o.Bf * c.Rho * dr
	return
}

// DYieldFunctionDStress returns f and df/dσ (strain-like Voigt vector)
func (o Params) DYieldFunctionDStress(σ []float64, varEps float64) (f float64, dfdσ []float64) {
	c, dξ, dρ, dθ := hw.Gradients(σ)
	f = o.YieldFunction(c, varEps)
	a, b, d := o.DYieldFunctionDHW(c, varEps)
	dfdσ = make([]float64, 6)
	for i := 0; i < 6; i++ {
		dfdσ[i] = a*dξ[i] + b*dρ[i] + d*dθ[i]
	}
	return
}

// relations ///////////////////////////////////////////////////////////////////////////////////////

// EFromStrengths returns e = (fc + 2 ft) / (2 fc + ft)
func EFromStrengths(fc, ft float64) float64 { return (fc + 2*ft) / (2*fc + ft) }

// EFromFriction returns e = (3 - sinφ) / (3 + sinφ)
func EFromFriction(φ float64) float64 {
	s := math.Sin(φ)
	return (3 - s) / (3 + s)
}

// Cohesion returns c = √(fc ft) / 2
func Cohesion(fc, ft float64) float64 { return math.Sqrt(fc*ft) / 2 }

// FrictionAngle returns φ = asin((fc - ft) / (fc + ft))
func FrictionAngle(fc, ft float64) float64 { return math.Asin((fc - ft) / (fc + ft)) }

// Ft returns the tensile strength for given cohesion and friction angle
func Ft(c, φ float64) float64 { return 2 * c * math.Cos(φ) / (1 + math.Sin(φ)) }

// Fc returns the compressive strength for given cohesion and friction angle
func Fc(c, φ float64) float64 { return 2 * c * math.Cos(φ) / (1 - math.Sin(φ)) }
