// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions for material point tests
package ana

import "math"

// RotationZ returns the matrix of a rotation by α about the z-axis
func RotationZ(α float64) [][]float64 {
	c, s := math.Cos(α), math.Sin(α)
	return [][]float64{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// RotatedPlaneStresses computes the in-plane stress components w.r.t a system rotated by β
func RotatedPlaneStresses(β, sx, sy, sxy float64) (sr, st, srt float64) {
	si, co := math.Sin(β), math.Cos(β)
	ss, cc, cs := si*si, co*co, co*si
	sr = cc*sx + ss*sy + 2.0*cs*sxy
	st = ss*sx + cc*sy - 2.0*cs*sxy
	srt = -cs*sx + cs*sy + (cc-ss)*sxy
	return
}

// PolarStresses computes stress components w.r.t polar system at point (x,y)
func PolarStresses(x, y, sx, sy, sxy float64) (r, sr, st, srt float64) {
	r = math.Sqrt(x*x + y*y)
	sr, st, srt = RotatedPlaneStresses(math.Atan2(y, x), sx, sy, sxy)
	return
}
