// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp implements the input data read from (.mat) JSON files
package inp

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// ErrMaterialNotFound is returned when a material name is not in the database
var ErrMaterialNotFound = errors.New("inp: material not found")

// Material holds material data
type Material struct {
	Name  string          `json:"name"`        // name of material
	Desc  string          `json:"desc"`        // description
	Model string          `json:"model"`       // name of model; e.g. "lin-elast", "dp", "mw"
	Prms  dbf.Params      `json:"prms"`        // model parameters
	Integ IntegrationData `json:"integration"` // local integration settings
}

// MatDb implements a database of materials
type MatDb struct {
	Materials []*Material `json:"materials"` // all materials
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {
	path := filepath.Join(dir, fn)
	fi, err := os.Stat(os.ExpandEnv(path))
	if err != nil {
		return nil, chk.Err("cannot read materials file:\n%v", err)
	}
	if fi.IsDir() {
		return nil, chk.Err("materials file %q is a directory\n", path)
	}
	return ReadMatBytes(io.ReadFile(path))
}

// ReadMatBytes decodes materials data
func ReadMatBytes(b []byte) (mdb *MatDb, err error) {

	// decode
	mdb = new(MatDb)
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, chk.Err("cannot unmarshal materials data:\n%v", err)
	}

	// check and set defaults
	names := make(map[string]bool)
	for _, m := range mdb.Materials {
		if m.Name == "" {
			return nil, chk.Err("all materials must have a name\n")
		}
		if names[m.Name] {
			return nil, chk.Err("material %q is duplicated\n", m.Name)
		}
		names[m.Name] = true
		m.Integ.SetDefault()
		err = m.Integ.PostProcess()
		if err != nil {
			return nil, chk.Err("material %q:\n%v", m.Name, err)
		}
	}
	return
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// Find returns a material or ErrMaterialNotFound
func (o MatDb) Find(name string) (*Material, error) {
	if m := o.Get(name); m != nil {
		return m, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrMaterialNotFound, name)
}

// String prints one material
func (o *Material) String() string {
	l := io.Sf("    {\n      \"name\"  : %q,\n      \"desc\"  : %q,\n      \"model\" : %q,\n      \"prms\"  : [\n", o.Name, o.Desc, o.Model)
	for i, p := range o.Prms {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("        {\"n\":%q, \"v\":%g}", p.N, p.V)
	}
	l += io.Sf("\n      ],\n      \"integration\" : {\"substepper\":%q}\n    }", o.Integ.Substepper)
	return l
}

// String outputs all materials
func (o MatDb) String() string {
	l := "{\n  \"materials\" : [\n"
	for i, m := range o.Materials {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", m)
	}
	return l + "\n  ]\n}"
}
