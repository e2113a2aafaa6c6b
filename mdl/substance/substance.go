// Copyright 2017 The Gochem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package substance implements pure-component holders of thermophysical
// reference properties. A Substance is a leaf object: its reference values are
// assigned once via Init and are immutable afterwards, thus a Substance may be
// shared, read-only, by any number of mixtures.
package substance

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Reference conditions
const (
	Tref = 298.15   // reference temperature [K]
	Pref = 101325.0 // reference pressure [Pa]
)

// Substance holds the reference-state properties of a pure component.
// The property accessors take a temperature argument for symmetry with
// temperature-dependent models; here the stored single-point values are
// returned unconditionally.
type Substance struct {

	// identity
	name string

	// reference properties
	mm   float64 // molar mass [kg/mol]
	rho0 float64 // density @ reference state [kg/m³]
	mu0  float64 // dynamic viscosity @ reference state [Pa·s]
	cp0  float64 // specific heat @ reference state [J/(kg·K)]
	d0   float64 // diffusivity @ reference state [m²/s]

	// which reference properties were given
	hasMM, hasRho, hasMu, hasCp, hasD bool

	// Init was called already
	initialised bool
}

// New creates a substance with all reference properties unset
func New(name string) *Substance {
	return &Substance{name: name}
}

// Name returns the name of this substance
func (o *Substance) Name() string {
	return o.name
}

// Init assigns reference properties from a list of parameters:
//
//	"mm"   -- molar mass [kg/mol] (must be positive)
//	"rho0" -- density [kg/m³] (must be positive)
//	"mu0"  -- dynamic viscosity [Pa·s]
//	"cp0"  -- specific heat [J/(kg·K)]
//	"d0"   -- diffusivity [m²/s]
//
// Reference properties are immutable: calling Init twice is an error.
// A failing Init assigns nothing: the whole parameter list is validated
// before any value is applied.
func (o *Substance) Init(prms dbf.Params) (err error) {
	if o.initialised {
		return chk.Err("substance %q: reference properties were set already and are immutable", o.name)
	}

	// validate all parameters first
	for _, p := range prms {
		if p.V < 0 {
			return chk.Err("substance %q: parameter %q cannot be negative: %v", o.name, p.N, p.V)
		}
		switch strings.ToLower(p.N) {
		case "mm", "rho0":
			if p.V == 0 {
				return chk.Err("substance %q: parameter %q must be positive", o.name, p.N)
			}
		case "mu0", "cp0", "d0":
		default:
			return chk.Err("substance %q: parameter named %q is incorrect", o.name, p.N)
		}
	}

	// assign
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "mm":
			o.mm, o.hasMM = p.V, true
		case "rho0":
			o.rho0, o.hasRho = p.V, true
		case "mu0":
			o.mu0, o.hasMu = p.V, true
		case "cp0":
			o.cp0, o.hasCp = p.V, true
		case "d0":
			o.d0, o.hasD = p.V, true
		}
	}
	o.initialised = true
	return
}

// MolarMass returns the molar mass [kg/mol]
func (o *Substance) MolarMass() (float64, error) {
	if !o.hasMM {
		return 0, chk.Err("substance %q: molar mass was not set", o.name)
	}
	return o.mm, nil
}

// Density returns the reference density [kg/m³]; T [K] is not applied
func (o *Substance) Density(T float64) (float64, error) {
	if !o.hasRho {
		return 0, chk.Err("substance %q: reference density was not set", o.name)
	}
	return o.rho0, nil
}

// Viscosity returns the reference dynamic viscosity [Pa·s]; T [K] is not applied
func (o *Substance) Viscosity(T float64) (float64, error) {
	if !o.hasMu {
		return 0, chk.Err("substance %q: reference viscosity was not set", o.name)
	}
	return o.mu0, nil
}

// SpecificHeat returns the reference specific heat [J/(kg·K)]; T [K] is not applied
func (o *Substance) SpecificHeat(T float64) (float64, error) {
	if !o.hasCp {
		return 0, chk.Err("substance %q: reference specific heat was not set", o.name)
	}
	return o.cp0, nil
}

// Diffusivity returns the reference diffusivity [m²/s]; T [K] is not applied
func (o *Substance) Diffusivity(T float64) (float64, error) {
	if !o.hasD {
		return 0, chk.Err("substance %q: reference diffusivity was not set", o.name)
	}
	return o.d0, nil
}
