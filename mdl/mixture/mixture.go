// Copyright 2017 The Gochem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mixture implements bulk thermophysical properties of mixtures of
// substances. A mixture stores exactly one authoritative composition basis
// (mass or mole fractions) and at most one authoritative extensive quantity
// (mass, volume or mole count); the alternative representations are derived
// on every access. Reading a derived quantity with the corresponding basis
// unset is an error.
package mixture

import (
	"math"

	"github.com/cpmech/gochem/mdl/substance"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Rgas is the universal gas constant [J/(mol·K)]
const Rgas = 8.314

// compBasis indicates which fraction list is authoritative
type compBasis int

const (
	compUnset compBasis = iota
	compMass
	compMole
)

// qtyBasis indicates which extensive quantity is authoritative
type qtyBasis int

const (
	qtyUnset qtyBasis = iota
	qtyMass
	qtyVolume
	qtyMoles
)

// Mixture holds an ordered set of substances together with composition and
// quantity state. The order of Components fixes the index correspondence of
// every per-component list. Substances are shared, read-only references.
type Mixture struct {

	// components
	Components     []*substance.Substance
	ComponentNames []string

	// state
	Temperature float64 // [K]
	Pressure    float64 // [Pa]

	// composition: one stored list whose meaning is given by cbasis
	cbasis compBasis
	fracs  []float64

	// extensive quantity: one stored scalar whose meaning is given by qbasis
	qbasis qtyBasis
	qvalue float64 // mass [kg], volume [m³] or mole count [mol]
}

// New creates a mixture at reference temperature and pressure.
// Component names must be unique.
func New(components []*substance.Substance) (o *Mixture, err error) {
	if len(components) < 1 {
		return nil, chk.Err("mixture needs at least one component")
	}
	names := make([]string, len(components))
	seen := make(map[string]bool)
	for i, c := range components {
		if seen[c.Name()] {
			return nil, chk.Err("mixture cannot hold component %q twice", c.Name())
		}
		seen[c.Name()] = true
		names[i] = c.Name()
	}
	o = &Mixture{
		Components:     components,
		ComponentNames: names,
		Temperature:    substance.Tref,
		Pressure:       substance.Pref,
	}
	return
}

// SetMassFractions makes mass fractions the authoritative composition basis
func (o *Mixture) SetMassFractions(wi []float64) (err error) {
	if err = o.checkFractions(wi); err != nil {
		return
	}
	o.cbasis = compMass
	o.fracs = append([]float64{}, wi...)
	return
}

// SetMolarFractions makes mole fractions the authoritative composition basis
func (o *Mixture) SetMolarFractions(zi []float64) (err error) {
	if err = o.checkFractions(zi); err != nil {
		return
	}
	o.cbasis = compMole
	o.fracs = append([]float64{}, zi...)
	return
}

// SetMass makes the total mass [kg] the authoritative extensive quantity
func (o *Mixture) SetMass(m float64) error {
	if m < 0 {
		return chk.Err("mixture: mass cannot be negative: %v", m)
	}
	o.qbasis = qtyMass
	o.qvalue = m
	return nil
}

// SetVolume makes the total volume [m³] the authoritative extensive quantity
func (o *Mixture) SetVolume(v float64) error {
	if v < 0 {
		return chk.Err("mixture: volume cannot be negative: %v", v)
	}
	o.qbasis = qtyVolume
	o.qvalue = v
	return nil
}

// SetMoles makes the total mole count [mol] the authoritative extensive quantity
func (o *Mixture) SetMoles(n float64) error {
	if n < 0 {
		return chk.Err("mixture: mole count cannot be negative: %v", n)
	}
	o.qbasis = qtyMoles
	o.qvalue = n
	return nil
}

// checkFractions verifies length, signs and unit sum of a fraction list
func (o *Mixture) checkFractions(f []float64) error {
	if len(f) != len(o.Components) {
		return chk.Err("fractions list has %d values but mixture has %d components", len(f), len(o.Components))
	}
	sum := 0.0
	for i, v := range f {
		if v < 0 {
			return chk.Err("fraction of component %q cannot be negative: %v", o.ComponentNames[i], v)
		}
		sum += v
	}
	if math.Abs(sum-1.0) > 1e-8 {
		return chk.Err("fractions must sum to 1: got %v", sum)
	}
	return nil
}

// molarMasses returns the component molar masses ordered as Components
func (o *Mixture) molarMasses() (mmi []float64, err error) {
	mmi = make([]float64, len(o.Components))
	for i, c := range o.Components {
		mmi[i], err = c.MolarMass()
		if err != nil {
			return nil, err
		}
	}
	return
}

// MolarMasses returns a mapping from component name to molar mass [kg/mol];
// the key order is given by ComponentNames
func (o *Mixture) MolarMasses() (res map[string]float64, err error) {
	mmi, err := o.molarMasses()
	if err != nil {
		return
	}
	res = make(map[string]float64)
	for i, name := range o.ComponentNames {
		res[name] = mmi[i]
	}
	return
}

// MolarMass returns the mole-fraction-weighted average molar mass [kg/mol]
func (o *Mixture) MolarMass() (mm float64, err error) {
	zi, err := o.MolarFractions()
	if err != nil {
		return
	}
	mmi, err := o.molarMasses()
	if err != nil {
		return
	}
	for i, z := range zi {
		mm += z * mmi[i]
	}
	return
}

// MassFractions returns the mass-basis composition. With mole fractions
// authoritative, mass fractions are derived as
//
//	wi = zi·MMi / Σj zj·MMj
func (o *Mixture) MassFractions() (wi []float64, err error) {
	switch o.cbasis {
	case compMass:
		return append([]float64{}, o.fracs...), nil
	case compMole:
		mmi, err := o.molarMasses()
		if err != nil {
			return nil, err
		}
		den := 0.0
		for j, z := range o.fracs {
			den += z * mmi[j]
		}
		if den <= 0 {
			return nil, chk.Err("mixture: cannot derive mass fractions: average molar mass is not positive")
		}
		wi = make([]float64, len(o.fracs))
		for i, z := range o.fracs {
			wi[i] = z * mmi[i] / den
		}
		return wi, nil
	}
	return nil, chk.Err("mixture: composition unspecified: neither mass nor mole fractions were set")
}

// MolarFractions returns the mole-basis composition. With mass fractions
// authoritative, mole fractions are derived as
//
//	zi = (wi/MMi) / Σj (wj/MMj)
func (o *Mixture) MolarFractions() (zi []float64, err error) {
	switch o.cbasis {
	case compMole:
		return append([]float64{}, o.fracs...), nil
	case compMass:
		mmi, err := o.molarMasses()
		if err != nil {
			return nil, err
		}
		den := 0.0
		for j, w := range o.fracs {
			den += w / mmi[j]
		}
		if den <= 0 {
			return nil, chk.Err("mixture: cannot derive mole fractions: total mole ratio is not positive")
		}
		zi = make([]float64, len(o.fracs))
		for i, w := range o.fracs {
			zi[i] = w / mmi[i] / den
		}
		return zi, nil
	}
	return nil, chk.Err("mixture: composition unspecified: neither mass nor mole fractions were set")
}

// Mass returns the total mass [kg]
func (o *Mixture) Mass() (float64, error) {
	switch o.qbasis {
	case qtyMass:
		return o.qvalue, nil
	case qtyMoles:
		mm, err := o.MolarMass()
		if err != nil {
			return 0, err
		}
		return o.qvalue * mm, nil
	case qtyVolume:
		rho, err := o.Density(o.Temperature)
		if err != nil {
			return 0, err
		}
		return o.qvalue * rho, nil
	}
	return 0, chk.Err("mixture: quantity unspecified: none of mass, volume or moles was set")
}

// Volume returns the total volume [m³]. With moles authoritative, the ideal
// gas law V = N·R·T/P is used.
func (o *Mixture) Volume() (float64, error) {
	switch o.qbasis {
	case qtyVolume:
		return o.qvalue, nil
	case qtyMoles:
		return o.qvalue * Rgas * o.Temperature / o.Pressure, nil
	case qtyMass:
		rho, err := o.Density(o.Temperature)
		if err != nil {
			return 0, err
		}
		return o.qvalue / rho, nil
	}
	return 0, chk.Err("mixture: quantity unspecified: none of mass, volume or moles was set")
}

// Moles returns the total mole count [mol]. With volume authoritative, the
// ideal gas law N = P·V/(R·T) is used.
func (o *Mixture) Moles() (float64, error) {
	switch o.qbasis {
	case qtyMoles:
		return o.qvalue, nil
	case qtyVolume:
		return o.Pressure * o.qvalue / (Rgas * o.Temperature), nil
	case qtyMass:
		mm, err := o.MolarMass()
		if err != nil {
			return 0, err
		}
		return o.qvalue / mm, nil
	}
	return 0, chk.Err("mixture: quantity unspecified: none of mass, volume or moles was set")
}

// Density returns the bulk density [kg/m³] @ T [K] using the harmonic
// mass-weighted mixing rule
//
//	ρ = 1 / Σi (wi/ρi)
func (o *Mixture) Density(T float64) (float64, error) {
	wi, err := o.MassFractions()
	if err != nil {
		return 0, err
	}
	sum := 0.0
	for i, c := range o.Components {
		rhoi, err := c.Density(T)
		if err != nil {
			return 0, err
		}
		if rhoi <= 0 {
			return 0, chk.Err("mixture: component %q has non-positive density: %v", o.ComponentNames[i], rhoi)
		}
		sum += wi[i] / rhoi
	}
	return 1.0 / sum, nil
}

// Viscosity returns the bulk dynamic viscosity [Pa·s] @ T [K] using the
// logarithmic mixing rule
//
//	μ = Πi μi^wi
func (o *Mixture) Viscosity(T float64) (float64, error) {
	wi, err := o.MassFractions()
	if err != nil {
		return 0, err
	}
	mu := 1.0
	for i, c := range o.Components {
		mui, err := c.Viscosity(T)
		if err != nil {
			return 0, err
		}
		mu *= math.Pow(mui, wi[i])
	}
	return mu, nil
}

// SpecificHeat returns the bulk specific heat [J/(kg·K)] @ T [K] using the
// linear mass-weighted mixing rule
//
//	cp = Σi wi·cpi
func (o *Mixture) SpecificHeat(T float64) (float64, error) {
	wi, err := o.MassFractions()
	if err != nil {
		return 0, err
	}
	cp := 0.0
	for i, c := range o.Components {
		cpi, err := c.SpecificHeat(T)
		if err != nil {
			return 0, err
		}
		cp += wi[i] * cpi
	}
	return cp, nil
}

// String returns a one-line summary of this mixture
func (o *Mixture) String() string {
	return io.Sf("{components:%v T:%g P:%g}", o.ComponentNames, o.Temperature, o.Pressure)
}
