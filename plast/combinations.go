// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plast

import "github.com/cpmech/gosl/chk"

// MaxSurfaces is the largest number of yield surfaces handled by the combination manager
const MaxSurfaces = 16

// YieldSurfaceCombinationManager enumerates all non-empty sets of active yield surfaces
//
//  row r of the table holds the bits of r+1: surface i is active if bit i is set.
//  Multisurface return mappings try each hypothesis until one is consistent
type YieldSurfaceCombinationManager struct {
	n     int
	table [][]bool
	used  []bool
}

// NewYieldSurfaceCombinationManager returns a new manager for n surfaces
func NewYieldSurfaceCombinationManager(n int) (o *YieldSurfaceCombinationManager) {
	if n < 1 || n > MaxSurfaces {
		chk.Panic("number of yield surfaces must be in [1, %d]. %d is invalid\n", MaxSurfaces, n)
	}
	nrows := (1 << uint(n)) - 1
	o = &YieldSurfaceCombinationManager{
		n:     n,
		table: make([][]bool, nrows),
		used:  make([]bool, nrows),
	}
	for r := 0; r < nrows; r++ {
		o.table[r] = make([]bool, n)
		bits := r + 1
		for i := 0; i < n; i++ {
			o.table[r][i] = bits&(1<<uint(i)) != 0
		}
	}
	return
}

// NumSurfaces returns the number of surfaces
func (o YieldSurfaceCombinationManager) NumSurfaces() int { return o.n }

// Combinations returns a copy of the combination table
func (o YieldSurfaceCombinationManager) Combinations() (res [][]bool) {
	res = make([][]bool, len(o.table))
	for r, row := range o.table {
		res[r] = append([]bool(nil), row...)
	}
	return
}

// AnotherCombination copies into active the first unused combination and marks it as used.
// Returns false if all combinations have been tried
func (o *YieldSurfaceCombinationManager) AnotherCombination(active []bool) bool {
	o.checkLen(active)
	for r, row := range o.table {
		if o.used[r] {
			continue
		}
		copy(active, row)
		o.used[r] = true
		return true
	}
	return false
}

// MarkAsUsed flags the row matching active. The empty combination is ignored
func (o *YieldSurfaceCombinationManager) MarkAsUsed(active []bool) {
	o.checkLen(active)
	bits := 0
	for i, a := range active {
		if a {
			bits |= 1 << uint(i)
		}
	}
	if bits == 0 {
		return
	}
	o.used[bits-1] = true
}

// ResetUsed clears all used flags
func (o *YieldSurfaceCombinationManager) ResetUsed() {
	for r := range o.used {
		o.used[r] = false
	}
}

func (o YieldSurfaceCombinationManager) checkLen(active []bool) {
	if len(active) != o.n {
		chk.Panic("active flags must have %d entries. %d is invalid\n", o.n, len(active))
	}
}
