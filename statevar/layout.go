// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package statevar implements named layouts over flat state-variable buffers
//
//  a Layout is computed once per material; the buffers are owned by the caller
//  (one per material point) and are only read/written through typed handles
package statevar

import (
	"fmt"

	"github.com/cpmech/gosl/chk"
)

// Field defines a named field with Len components
type Field struct {
	Name string
	Len  int
}

// Entry is a field placed in the buffer
type Entry struct {
	Field
	Offset int
}

// Layout holds ordered fields
type Layout struct {
	entries []Entry
	index   map[string]int
	size    int
}

// NewLayout returns a layout with fields placed in the given order
func NewLayout(fields ...Field) (o *Layout) {
	o = &Layout{index: make(map[string]int, len(fields))}
	for _, f := range fields {
		if f.Len < 1 {
			chk.Panic("statevar: field %q must have at least one component. %d is invalid\n", f.Name, f.Len)
		}
		if _, dup := o.index[f.Name]; dup {
			chk.Panic("statevar: field %q is duplicated\n", f.Name)
		}
		o.index[f.Name] = len(o.entries)
		o.entries = append(o.entries, Entry{Field: f, Offset: o.size})
		o.size += f.Len
	}
	return
}

// Size returns the total number of components
func (o Layout) Size() int { return o.size }

// Entries returns a copy of the placed fields
func (o Layout) Entries() []Entry {
	return append([]Entry(nil), o.entries...)
}

// Find returns the entry of a field
func (o Layout) Find(name string) (Entry, error) {
	i, ok := o.index[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return o.entries[i], nil
}

// Check checks the length of a buffer
func (o Layout) Check(buf []float64) error {
	if len(buf) != o.size {
		return fmt.Errorf("%w: len(buf)=%d, size=%d", ErrBufferSize, len(buf), o.size)
	}
	return nil
}

// Slice returns the part of buf holding the named field (shared memory)
func (o Layout) Slice(buf []float64, name string) []float64 {
	e := o.mustFind(name)
	if len(buf) < e.Offset+e.Len {
		chk.Panic("statevar: buffer of length %d is too short for field %q\n", len(buf), name)
	}
	return buf[e.Offset : e.Offset+e.Len : e.Offset+e.Len]
}

// Scalar returns the handle of a one-component field
func (o Layout) Scalar(name string) Scalar {
	e := o.mustFind(name)
	if e.Len != 1 {
		chk.Panic("statevar: field %q has %d components and is not a scalar\n", name, e.Len)
	}
	return Scalar{name: name, off: e.Offset}
}

// Vector returns the handle of a field
func (o Layout) Vector(name string) Vector {
	e := o.mustFind(name)
	return Vector{name: name, off: e.Offset, n: e.Len}
}

func (o Layout) mustFind(name string) Entry {
	e, err := o.Find(name)
	if err != nil {
		chk.Panic("%v\n", err)
	}
	return e
}

// Scalar accesses a one-component field
type Scalar struct {
	name string
	off  int
}

// Get returns the value
func (o Scalar) Get(buf []float64) float64 { return buf[o.off] }

// Set sets the value
func (o Scalar) Set(buf []float64, v float64) { buf[o.off] = v }

// Vector accesses a multi-component field
type Vector struct {
	name string
	off  int
	n    int
}

// Len returns the number of components
func (o Vector) Len() int { return o.n }

// Get returns the components (shared memory, capacity capped at the field)
func (o Vector) Get(buf []float64) []float64 { return buf[o.off : o.off+o.n : o.off+o.n] }

// Set copies v into the field
func (o Vector) Set(buf []float64, v []float64) {
	if len(v) != o.n {
		chk.Panic("statevar: field %q has %d components. len(v)=%d is invalid\n", o.name, o.n, len(v))
	}
	copy(buf[o.off:o.off+o.n], v)
}
