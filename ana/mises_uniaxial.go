// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// MisesUniaxialStrain implements the response of a von Mises material with linear isotropic
// hardening subjected to monotonic uniaxial strain ε = {e, 0, 0, 0, 0, 0}
//
//   q  = fy + H α       α = (2 G |e| - fy) / (3 G + H)      (plastic)
//   σ11 = K e + (2/3) q sgn(e)
//   σ22 = σ33 = K e - (1/3) q sgn(e)
type MisesUniaxialStrain struct {

	// input
	E  float64 // Young's modulus
	ν  float64 // Poisson's coefficient
	fy float64 // uniaxial yield stress
	H  float64 // hardening modulus

	// derived
	K float64 // bulk modulus
	G float64 // shear modulus
}

// Init initialises this structure
func (o *MisesUniaxialStrain) Init(prms dbf.Params) (err error) {
	o.E, o.ν, o.fy = 100, 0.3, 1
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.ν = p.V
		case "fy":
			o.fy = p.V
		case "H":
			o.H = p.V
		default:
			return chk.Err("ana: MisesUniaxialStrain: parameter named %q is incorrect\n", p.N)
		}
	}
	o.K = o.E / (3.0 * (1.0 - 2.0*o.ν))
	o.G = o.E / (2.0 * (1.0 + o.ν))
	return
}

// YieldStrain returns the strain at first yield
func (o MisesUniaxialStrain) YieldStrain() float64 { return o.fy / (2.0 * o.G) }

// Stress returns the axial and lateral stresses and the equivalent plastic strain
func (o MisesUniaxialStrain) Stress(e float64) (σa, σl, α float64) {
	q := 2.0 * o.G * math.Abs(e)
	if q > o.fy {
		α = (q - o.fy) / (3.0*o.G + o.H)
		q = o.fy + o.H*α
	}
	sgn := 1.0
	if e < 0 {
		sgn = -1.0
	}
	σa = o.K*e + 2.0*q*sgn/3.0
	σl = o.K*e - q*sgn/3.0
	return
}
