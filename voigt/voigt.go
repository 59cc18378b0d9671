// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package voigt implements the algebra of symmetric second order tensors stored in Voigt notation
//
//  ordering:  [11, 22, 33, 12, 13, 23]
//  strains:   shear components are engineering shears (2 ε_ij)
//  stresses:  shear components are not scaled
package voigt

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Size is the number of Voigt components of a given stress state
type Size int

// sizes
const (
	OneD   Size = 1 // uniaxial: 11
	TwoD   Size = 3 // plane: 11, 22, 12
	Axial  Size = 4 // axisymmetric: 11, 22, 33, 12
	ThreeD Size = 6 // full
)

// Check panics if the size is not one of the known ones
func (s Size) Check() {
	switch s {
	case OneD, TwoD, Axial, ThreeD:
		return
	}
	chk.Panic("voigt: size %d is invalid. options are 1, 3, 4 and 6\n", int(s))
}

// String returns the name of the size
func (s Size) String() string {
	switch s {
	case OneD:
		return "OneD"
	case TwoD:
		return "TwoD"
	case Axial:
		return "Axial"
	case ThreeD:
		return "ThreeD"
	}
	return "Invalid"
}

// tables
var (
	pairs = [6][2]int{{0, 0}, {1, 1}, {2, 2}, {0, 1}, {0, 2}, {1, 2}}
	index = [3][3]int{{0, 3, 4}, {3, 1, 5}, {4, 5, 2}}
	kept  = map[Size][]int{
		OneD:   {0},
		TwoD:   {0, 1, 3},
		Axial:  {0, 1, 2, 3},
		ThreeD: {0, 1, 2, 3, 4, 5},
	}
)

// Index returns the Voigt index corresponding to tensor indices i and j
func Index(i, j int) int {
	if i < 0 || i > 2 || j < 0 || j > 2 {
		chk.Panic("voigt: tensor indices (%d,%d) are out of range\n", i, j)
	}
	return index[i][j]
}

// Pair returns the tensor indices (i ≤ j) of Voigt index I
func Pair(I int) (i, j int) {
	if I < 0 || I > 5 {
		chk.Panic("voigt: index %d is out of range\n", I)
	}
	return pairs[I][0], pairs[I][1]
}

// IsShear tells whether Voigt index I is a shear component
func IsShear(I int) bool { return I > 2 }

// Components returns the 3D Voigt indices kept by a reduced size
func Components(s Size) []int {
	s.Check()
	return kept[s]
}

// conversions /////////////////////////////////////////////////////////////////////////////////////

// StressToVoigt converts a 3×3 stress tensor to Voigt notation
func StressToVoigt(T [][]float64) (v []float64) {
	v = make([]float64, 6)
	for I := 0; I < 6; I++ {
		v[I] = T[pairs[I][0]][pairs[I][1]]
	}
	return
}

// VoigtToStress converts a Voigt stress vector to a 3×3 tensor
func VoigtToStress(v []float64) (T [][]float64) {
	checkLen(v, 6)
	T = utl.Alloc(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			T[i][j] = v[index[i][j]]
		}
	}
	return
}

// StrainToVoigt converts a 3×3 strain tensor to Voigt notation with engineering shears
func StrainToVoigt(T [][]float64) (v []float64) {
	v = StressToVoigt(T)
	for I := 3; I < 6; I++ {
		v[I] *= 2
	}
	return
}

// VoigtToStrain converts a Voigt strain (engineering shears) to a 3×3 tensor
func VoigtToStrain(v []float64) (T [][]float64) {
	checkLen(v, 6)
	T = utl.Alloc(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				T[i][j] = v[i]
			} else {
				T[i][j] = v[index[i][j]] / 2
			}
		}
	}
	return
}

// StrainToStressLike returns a copy of ε with shear components halved (tensorial shears)
func StrainToStressLike(ε []float64) (e []float64) {
	e = make([]float64, len(ε))
	copy(e, ε)
	for I := 3; I < len(e); I++ {
		e[I] /= 2
	}
	return
}

// reductions //////////////////////////////////////////////////////////////////////////////////////

// Reduce3DVoigt extracts the components of a reduced state from a 3D vector
func Reduce3DVoigt(v6 []float64, s Size) (v []float64) {
	checkLen(v6, 6)
	idx := Components(s)
	v = make([]float64, len(idx))
	for k, I := range idx {
		v[k] = v6[I]
	}
	return
}

// Make3DVoigt lifts a reduced vector to 3D; omitted components are zero
func Make3DVoigt(v []float64, s Size) (v6 []float64) {
	idx := Components(s)
	checkLen(v, len(idx))
	v6 = make([]float64, 6)
	for k, I := range idx {
		v6[I] = v[k]
	}
	return
}

// VoigtToPlaneVoigt returns {11, 22, 12}
func VoigtToPlaneVoigt(v6 []float64) []float64 { return Reduce3DVoigt(v6, TwoD) }

// PlaneVoigtToVoigt returns {11, 22, 0, 12, 0, 0}
func PlaneVoigtToVoigt(v []float64) []float64 { return Make3DVoigt(v, TwoD) }

// ReduceTangent extracts the rows and columns of a reduced state from a 6×6 tangent
func ReduceTangent(D6 [][]float64, s Size) (D [][]float64) {
	idx := Components(s)
	D = utl.Alloc(len(idx), len(idx))
	for a, I := range idx {
		for b, J := range idx {
			D[a][b] = D6[I][J]
		}
	}
	return
}

// projectors //////////////////////////////////////////////////////////////////////////////////////

// IVec returns the identity tensor in Voigt notation
func IVec() []float64 { return []float64{1, 1, 1, 0, 0, 0} }

// Identity returns the n×n identity matrix
func Identity(n int) (M [][]float64) {
	M = utl.Alloc(n, n)
	for i := 0; i < n; i++ {
		M[i][i] = 1
	}
	return
}

// IHyd returns the hydrostatic projector (1/3) I⊗I
func IHyd() (P [][]float64) {
	P = utl.Alloc(6, 6)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			P[i][j] = 1.0 / 3.0
		}
	}
	return
}

// PDev returns the deviatoric projector acting on Voigt stresses: s = PDev σ
func PDev() (P [][]float64) {
	P = Identity(6)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			P[i][j] -= 1.0 / 3.0
		}
	}
	return
}

// Rotate computes Q⋅T⋅Qᵀ for a Voigt stress vector
func Rotate(Q [][]float64, σ []float64) []float64 {
	T := VoigtToStress(σ)
	return StressToVoigt(congruence(Q, T))
}

// RotateStrain computes Q⋅ε⋅Qᵀ for a Voigt strain vector
func RotateStrain(Q [][]float64, ε []float64) []float64 {
	T := VoigtToStrain(ε)
	return StrainToVoigt(congruence(Q, T))
}

// congruence computes Q⋅T⋅Qᵀ
func congruence(Q, T [][]float64) (R [][]float64) {
	R = utl.Alloc(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					R[i][j] += Q[i][k] * T[k][l] * Q[j][l]
				}
			}
		}
	}
	return
}

func checkLen(v []float64, n int) {
	if len(v) != n {
		chk.Panic("voigt: vector must have %d components. %d is invalid\n", n, len(v))
	}
}
