// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voigt

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// stress invariants ///////////////////////////////////////////////////////////////////////////////

// I1 returns the trace
func I1(σ []float64) float64 { return σ[0] + σ[1] + σ[2] }

// I2 returns the second principal invariant
func I2(σ []float64) float64 {
	return σ[0]*σ[1] + σ[1]*σ[2] + σ[2]*σ[0] - σ[3]*σ[3] - σ[4]*σ[4] - σ[5]*σ[5]
}

// I3 returns the determinant
func I3(σ []float64) float64 {
	return σ[0]*σ[1]*σ[2] + 2*σ[3]*σ[4]*σ[5] - σ[0]*σ[5]*σ[5] - σ[1]*σ[4]*σ[4] - σ[2]*σ[3]*σ[3]
}

// J2 returns the second invariant of the deviator
func J2(σ []float64) float64 {
	s := Deviatoric(σ)
	return (s[0]*s[0]+s[1]*s[1]+s[2]*s[2])/2 + s[3]*s[3] + s[4]*s[4] + s[5]*s[5]
}

// J3 returns the determinant of the deviator
func J3(σ []float64) float64 { return I3(Deviatoric(σ)) }

// Deviatoric returns s = σ - (I1/3) I
func Deviatoric(σ []float64) (s []float64) {
	checkLen(σ, 6)
	s = make([]float64, 6)
	copy(s, σ)
	p := I1(σ) / 3
	for i := 0; i < 3; i++ {
		s[i] -= p
	}
	return
}

// VonMises returns √(3 J2)
func VonMises(σ []float64) float64 { return math.Sqrt(3 * J2(σ)) }

// Norm returns the Frobenius norm of a Voigt stress
func Norm(σ []float64) float64 {
	return math.Sqrt(σ[0]*σ[0] + σ[1]*σ[1] + σ[2]*σ[2] + 2*(σ[3]*σ[3]+σ[4]*σ[4]+σ[5]*σ[5]))
}

// NormStrain returns the Frobenius norm of a Voigt strain (engineering shears)
func NormStrain(ε []float64) float64 {
	return math.Sqrt(ε[0]*ε[0] + ε[1]*ε[1] + ε[2]*ε[2] + (ε[3]*ε[3]+ε[4]*ε[4]+ε[5]*ε[5])/2)
}

// strain invariants (engineering shears) //////////////////////////////////////////////////////////

// I1Strain returns the volumetric strain
func I1Strain(ε []float64) float64 { return I1(ε) }

// I2Strain returns the second principal invariant of ε
func I2Strain(ε []float64) float64 { return I2(StrainToStressLike(ε)) }

// I3Strain returns det(ε)
func I3Strain(ε []float64) float64 { return I3(StrainToStressLike(ε)) }

// J2Strain returns the second invariant of dev(ε)
func J2Strain(ε []float64) float64 { return J2(StrainToStressLike(ε)) }

// J3Strain returns det(dev(ε))
func J3Strain(ε []float64) float64 { return J3(StrainToStressLike(ε)) }

// derivatives w.r.t Voigt stress components ///////////////////////////////////////////////////////
//  Note: shear components appear twice in the tensor; thus derivatives are strain-like

// DI1DStress returns dI1/dσ
func DI1DStress() []float64 { return IVec() }

// DJ2DStress returns dJ2/dσ = s with doubled shears
func DJ2DStress(σ []float64) (d []float64) {
	d = Deviatoric(σ)
	for I := 3; I < 6; I++ {
		d[I] *= 2
	}
	return
}

// DJ3DStress returns dJ3/dσ = s⋅s - (2/3) J2 I with doubled shears
func DJ3DStress(σ []float64) (d []float64) {
	s := Deviatoric(σ)
	S := VoigtToStress(s)
	T := make([][]float64, 3)
	for i := 0; i < 3; i++ {
		T[i] = make([]float64, 3)
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				T[i][j] += S[i][k] * S[k][j]
			}
		}
	}
	d = StrainToVoigt(T)
	j2 := (T[0][0] + T[1][1] + T[2][2]) / 2
	for i := 0; i < 3; i++ {
		d[i] -= 2 * j2 / 3
	}
	return
}

// principal values ////////////////////////////////////////////////////////////////////////////////

// PrincipalValues returns the principal values of σ in descending order
//  A trigonometric closed form is used unless the off-diagonal part vanishes (p1 ≤ 1e-16),
//  in which case an eigen-decomposition is carried out
func PrincipalValues(σ []float64) (λ [3]float64) {
	checkLen(σ, 6)
	p1 := σ[3]*σ[3] + σ[4]*σ[4] + σ[5]*σ[5]
	if p1 <= 1e-16 {
		return PrincipalValuesEigen(σ)
	}
	q := I1(σ) / 3
	p2 := (σ[0]-q)*(σ[0]-q) + (σ[1]-q)*(σ[1]-q) + (σ[2]-q)*(σ[2]-q) + 2*p1
	p := math.Sqrt(p2 / 6)
	B := []float64{(σ[0] - q) / p, (σ[1] - q) / p, (σ[2] - q) / p, σ[3] / p, σ[4] / p, σ[5] / p}
	r := I3(B) / 2
	var φ float64
	switch {
	case r <= -1:
		φ = math.Pi / 3
	case r >= 1:
		φ = 0
	default:
		φ = math.Acos(r) / 3
	}
	λ[0] = q + 2*p*math.Cos(φ)
	λ[2] = q + 2*p*math.Cos(φ+2*math.Pi/3)
	λ[1] = 3*q - λ[0] - λ[2]
	return
}

// PrincipalValuesEigen returns the principal values of σ (descending) by eigen-decomposition
func PrincipalValuesEigen(σ []float64) (λ [3]float64) {
	var eig mat.EigenSym
	if !eig.Factorize(symmetric(σ), false) {
		return diagonal(σ)
	}
	v := eig.Values(nil)
	λ[0], λ[1], λ[2] = v[2], v[1], v[0]
	return
}

// PrincipalValuesWithDerivatives returns the principal values (descending) and their derivatives
// w.r.t the Voigt stress components, i.e. the eigenprojectors nᵢ⊗nᵢ with doubled shears.
//  Note: derivatives are meaningful for distinct principal values only
func PrincipalValuesWithDerivatives(σ []float64) (λ [3]float64, dλdσ [3][]float64) {
	var eig mat.EigenSym
	if !eig.Factorize(symmetric(σ), true) {
		λ = diagonal(σ)
		for k := 0; k < 3; k++ {
			dλdσ[k] = make([]float64, 6)
		}
		return
	}
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)
	for k := 0; k < 3; k++ {
		col := 2 - k
		λ[k] = vals[col]
		n := []float64{vecs.At(0, col), vecs.At(1, col), vecs.At(2, col)}
		dλdσ[k] = []float64{n[0] * n[0], n[1] * n[1], n[2] * n[2], 2 * n[0] * n[1], 2 * n[0] * n[2], 2 * n[1] * n[2]}
	}
	return
}

func symmetric(σ []float64) *mat.SymDense {
	return mat.NewSymDense(3, []float64{
		σ[0], σ[3], σ[4],
		σ[3], σ[1], σ[5],
		σ[4], σ[5], σ[2],
	})
}

func diagonal(σ []float64) (λ [3]float64) {
	v := []float64{σ[0], σ[1], σ[2]}
	sort.Sort(sort.Reverse(sort.Float64Slice(v)))
	λ[0], λ[1], λ[2] = v[0], v[1], v[2]
	return
}
