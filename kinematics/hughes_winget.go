// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kinematics implements the Hughes-Winget integrator of objective stress rates
//
//  l  = (Fn - Fo) ⋅ M⁻¹     with    M = ½ (Fn + Fo)
//  Δε = sym(l)     ΔΩ = skew(l)     ΔR = (I - ½ΔΩ)⁻¹ ⋅ (I + ½ΔΩ)
//  σn = ΔR ⋅ σo ⋅ ΔRᵀ + Δσ(Δε)
package kinematics

import (
	"errors"
	"math"

	"github.com/MAteRialMOdelingToolbox/Marmot-sub002/voigt"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"
)

// Formulation selects the variant of the algorithm
type Formulation int

// formulations
const (
	AbaqusLike Formulation = iota // midpoint configuration; Cayley rotation
)

// ErrSingular is returned when the midpoint deformation gradient cannot be inverted
var ErrSingular = errors.New("kinematics: midpoint deformation gradient is singular")

// HughesWinget holds the incremental kinematics between two deformation gradients
type HughesWinget struct {
	Formulation Formulation

	// auxiliary
	l    *mat.Dense // incremental velocity gradient
	minv *mat.Dense // M⁻¹
	ainv *mat.Dense // (I - ½ΔΩ)⁻¹
	dΩ   *mat.Dense // spin increment
	dR   *mat.Dense // rotation increment
	dε   []float64  // strain increment (Voigt; engineering shears)
}

// NewHughesWinget computes the kinematic quantities for Fold → Fnew
func NewHughesWinget(Fold, Fnew [][]float64, formulation Formulation) (o *HughesWinget, err error) {
	if formulation != AbaqusLike {
		chk.Panic("kinematics: formulation %d is not available\n", int(formulation))
	}
	o = &HughesWinget{Formulation: formulation}
	Fo, Fn := dense3(Fold), dense3(Fnew)

	// l = ΔF ⋅ M⁻¹
	var M, ΔF mat.Dense
	M.Add(Fn, Fo)
	M.Scale(0.5, &M)
	ΔF.Sub(Fn, Fo)
	o.minv, err = inverse(&M)
	if err != nil {
		return nil, err
	}
	o.l = mat.NewDense(3, 3, nil)
	o.l.Mul(&ΔF, o.minv)

	// Δε and ΔΩ
	o.dε = make([]float64, 6)
	o.dΩ = mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			o.dΩ.Set(i, j, (o.l.At(i, j)-o.l.At(j, i))/2)
		}
	}
	for I := 0; I < 6; I++ {
		i, j := voigt.Pair(I)
		if i == j {
			o.dε[I] = o.l.At(i, i)
		} else {
			o.dε[I] = o.l.At(i, j) + o.l.At(j, i)
		}
	}

	// ΔR = (I - ½ΔΩ)⁻¹ ⋅ (I + ½ΔΩ)
	var A, B mat.Dense
	A.Scale(-0.5, o.dΩ)
	B.Scale(0.5, o.dΩ)
	for i := 0; i < 3; i++ {
		A.Set(i, i, A.At(i, i)+1)
		B.Set(i, i, B.At(i, i)+1)
	}
	o.ainv, err = inverse(&A)
	if err != nil {
		return nil, err
	}
	o.dR = mat.NewDense(3, 3, nil)
	o.dR.Mul(o.ainv, &B)
	return
}

// StrainIncrement returns Δε in Voigt notation (engineering shears)
func (o HughesWinget) StrainIncrement() []float64 {
	res := make([]float64, 6)
	copy(res, o.dε)
	return res
}

// RotationIncrement returns ΔR
func (o HughesWinget) RotationIncrement() [][]float64 { return toSlices(o.dR) }

// SpinIncrement returns ΔΩ
func (o HughesWinget) SpinIncrement() [][]float64 { return toSlices(o.dΩ) }

// VelocityGradient returns l
func (o HughesWinget) VelocityGradient() [][]float64 { return toSlices(o.l) }

// RotateTensor computes ΔR ⋅ σ ⋅ ΔRᵀ for a Voigt stress
func (o HughesWinget) RotateTensor(σ []float64) []float64 {
	return voigt.Rotate(toSlices(o.dR), σ)
}

// ComputeDSDF computes dσn/dFn [6][9] (column 3k+l corresponds to Fn_kl) for
//  σn = ΔR ⋅ σo ⋅ ΔRᵀ + Δσ(Δε)
// where dσdε = dΔσ/dΔε is the corotational material tangent
func (o HughesWinget) ComputeDSDF(σold []float64, dσdε [][]float64) (dSdF [][]float64) {

	// auxiliary
	S := voigt.VoigtToStress(σold)
	R := toSlices(o.dR)
	Ai := toSlices(o.ainv)
	Mi := toSlices(o.minv)
	l := toSlices(o.l)
	IpR := utl.Alloc(3, 3) // I + ΔR
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			IpR[i][j] = R[i][j]
		}
		IpR[i][i] += 1
	}

	dSdF = utl.Alloc(6, 9)
	dl := utl.Alloc(3, 3)
	dΩ := utl.Alloc(3, 3)
	dRk := utl.Alloc(3, 3)
	dT := utl.Alloc(3, 3)
	ddε := make([]float64, 6)
	for k := 0; k < 3; k++ {
		for m := 0; m < 3; m++ {

			// dl_ij/dFn_km = (δ_ik - ½ l_ik) M⁻¹_mj
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					dl[i][j] = (delta(i, k) - l[i][k]/2) * Mi[m][j]
				}
			}
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					dΩ[i][j] = (dl[i][j] - dl[j][i]) / 2
				}
			}
			for I := 0; I < 6; I++ {
				i, j := voigt.Pair(I)
				if i == j {
					ddε[I] = dl[i][i]
				} else {
					ddε[I] = dl[i][j] + dl[j][i]
				}
			}

			// dΔR = ½ A⁻¹ ⋅ dΩ ⋅ (I + ΔR)
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					dRk[i][j] = 0
					for p := 0; p < 3; p++ {
						for q := 0; q < 3; q++ {
							dRk[i][j] += Ai[i][p] * dΩ[p][q] * IpR[q][j] / 2
						}
					}
				}
			}

			// d(ΔR σ ΔRᵀ) = dΔR σ ΔRᵀ + ΔR σ dΔRᵀ
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					dT[i][j] = 0
					for p := 0; p < 3; p++ {
						for q := 0; q < 3; q++ {
							dT[i][j] += dRk[i][p]*S[p][q]*R[j][q] + R[i][p]*S[p][q]*dRk[j][q]
						}
					}
				}
			}

			// assemble
			col := 3*k + m
			for I := 0; I < 6; I++ {
				i, j := voigt.Pair(I)
				dSdF[I][col] = dT[i][j]
				for J := 0; J < 6; J++ {
					dSdF[I][col] += dσdε[I][J] * ddε[J]
				}
			}
		}
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func delta(i, j int) float64 {
	if i == j {
		return 1
	}
	return 0
}

func dense3(F [][]float64) *mat.Dense {
	if len(F) != 3 {
		chk.Panic("kinematics: deformation gradient must be 3×3\n")
	}
	M := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			M.Set(i, j, F[i][j])
		}
	}
	return M
}

func toSlices(M *mat.Dense) (res [][]float64) {
	r, c := M.Dims()
	res = utl.Alloc(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			res[i][j] = M.At(i, j)
		}
	}
	return
}

// inverse inverts a matrix; ill-conditioning is tolerated but exact singularity is not
func inverse(A mat.Matrix) (*mat.Dense, error) {
	var Ai mat.Dense
	err := Ai.Inverse(A)
	if err != nil {
		var c mat.Condition
		if !errors.As(err, &c) || math.IsInf(float64(c), 1) {
			return nil, ErrSingular
		}
	}
	return &Ai, nil
}
