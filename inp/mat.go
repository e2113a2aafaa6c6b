// Copyright 2017 The Gochem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input of substance and mixture databases from
// .mat JSON files
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gochem/mdl/mixture"
	"github.com/cpmech/gochem/mdl/substance"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// SubData holds substance data
type SubData struct {

	// input
	Name string     `json:"name"` // name of substance
	Prms dbf.Params `json:"prms"` // reference properties: "mm", "rho0", "mu0", "cp0", "d0"

	// derived
	Subs *substance.Substance
}

// MixData holds mixture data. Exactly one of Wi (mass fractions) or Zi (mole
// fractions) must be given.
type MixData struct {

	// input
	Name        string    `json:"name"`        // name of mixture
	Components  []string  `json:"components"`  // names of substances, in order
	Wi          []float64 `json:"wi"`          // mass fractions
	Zi          []float64 `json:"zi"`          // mole fractions
	Temperature float64   `json:"temperature"` // [K]; 0 means reference temperature
	Pressure    float64   `json:"pressure"`    // [Pa]; 0 means reference pressure

	// derived
	Mix *mixture.Mixture
}

// MatDb implements a database of substances and mixtures
type MatDb struct {

	// input
	Substances []*SubData `json:"substances"` // all substances
	Mixtures   []*MixData `json:"mixtures"`   // all mixtures

	// derived
	subs map[string]*substance.Substance
	mixs map[string]*mixture.Mixture
}

// ReadMat reads a database of substances and mixtures from a .mat JSON file
//
//	Note: panics if the file cannot be read
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// new database
	mdb = new(MatDb)

	// read file
	b := io.ReadFile(filepath.Join(dir, fn))

	// decode
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, err
	}

	// alloc/init: substances
	mdb.subs = make(map[string]*substance.Substance)
	for _, d := range mdb.Substances {
		if _, ok := mdb.subs[d.Name]; ok {
			return nil, chk.Err("substance %q is defined more than once", d.Name)
		}
		d.Subs = substance.New(d.Name)
		if err = d.Subs.Init(d.Prms); err != nil {
			return nil, err
		}
		mdb.subs[d.Name] = d.Subs
	}

	// alloc/init: mixtures
	mdb.mixs = make(map[string]*mixture.Mixture)
	for _, d := range mdb.Mixtures {
		if _, ok := mdb.mixs[d.Name]; ok {
			return nil, chk.Err("mixture %q is defined more than once", d.Name)
		}
		comps := make([]*substance.Substance, len(d.Components))
		for i, name := range d.Components {
			s, ok := mdb.subs[name]
			if !ok {
				return nil, chk.Err("mixture %q refers to undefined substance %q", d.Name, name)
			}
			comps[i] = s
		}
		d.Mix, err = mixture.New(comps)
		if err != nil {
			return nil, err
		}
		if d.Temperature > 0 {
			d.Mix.Temperature = d.Temperature
		}
		if d.Pressure > 0 {
			d.Mix.Pressure = d.Pressure
		}
		switch {
		case d.Wi != nil && d.Zi != nil:
			return nil, chk.Err("mixture %q must have either mass or mole fractions, not both", d.Name)
		case d.Wi != nil:
			err = d.Mix.SetMassFractions(d.Wi)
		case d.Zi != nil:
			err = d.Mix.SetMolarFractions(d.Zi)
		default:
			return nil, chk.Err("mixture %q has no composition", d.Name)
		}
		if err != nil {
			return nil, err
		}
		mdb.mixs[d.Name] = d.Mix
	}
	return
}

// Get returns a substance
//
//	Note: returns nil if not found
func (o *MatDb) Get(name string) *substance.Substance {
	return o.subs[name]
}

// GetMix returns a mixture
//
//	Note: returns nil if not found
func (o *MatDb) GetMix(name string) *mixture.Mixture {
	return o.mixs[name]
}

// String outputs the names held in the database
func (o *MatDb) String() string {
	l := "substances: ["
	for i, d := range o.Substances {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%q", d.Name)
	}
	l += "]\nmixtures: ["
	for i, d := range o.Mixtures {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%q", d.Name)
	}
	return l + "]"
}
