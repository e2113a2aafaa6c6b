// Copyright 2017 The Gochem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package stream implements flowing instances of mixtures. A Stream copies
// the intensive properties of a mixture by value at construction time; later
// changes to the source mixture do not propagate to the stream. The flow-rate
// state follows the same authoritative-basis pattern as the mixture quantity
// state: one stored value per basis pair, with the alternatives derived on
// every access.
package stream

import (
	"github.com/cpmech/gochem/geo"
	"github.com/cpmech/gochem/mdl/mixture"
	"github.com/cpmech/gochem/mdl/substance"
	"github.com/cpmech/gosl/chk"
)

// normal conditions for NormalVolumeFlow
const (
	normT = 273.15   // normal temperature [K]
	normP = 101325.0 // normal pressure [Pa]
)

// mflowBasis indicates which of the mass-basis pair is authoritative
type mflowBasis int

const (
	mflowUnset mflowBasis = iota
	mflowMass             // mass flow stored
	mflowMolar            // molar flow stored
)

// vflowBasis indicates which of the volume-basis pair is authoritative
type vflowBasis int

const (
	vflowUnset  vflowBasis = iota
	vflowActual            // volumetric flow @ stream conditions stored
	vflowNormal            // volumetric flow @ normal conditions stored
)

// Stream holds a point-in-time snapshot of a mixture's intensive properties
// together with its own flow state and topology metadata
type Stream struct {

	// snapshot of the source mixture (copied at construction)
	Components     []*substance.Substance
	ComponentNames []string
	Temperature    float64 // [K]
	Pressure       float64 // [Pa]
	Density        float64 // [kg/m³]
	Viscosity      float64 // [Pa·s]
	SpecificHeat   float64 // [J/(kg·K)]
	MolarMass      float64 // [kg/mol]
	MolarMasses    map[string]float64
	MassFractions  []float64
	MolarFractions []float64

	// topology and particle metadata; not used by the flow computations
	Tag            string
	From           string
	To             string
	ParticleSize   float64 // [m]
	ParticleCharge float64 // [C]

	// flow state: one stored value per basis pair
	mbasis mflowBasis
	mvalue float64 // mass [kg/s] or molar [mol/s] flow
	vbasis vflowBasis
	vvalue float64 // actual or normal volumetric flow [m³/s]
}

// New creates a stream by copying the intensive properties of a mixture at
// its current temperature and pressure. The component list is shared by
// reference; everything else is copied by value.
func New(mix *mixture.Mixture) (o *Stream, err error) {
	o = &Stream{
		Components:     mix.Components,
		ComponentNames: mix.ComponentNames,
		Temperature:    mix.Temperature,
		Pressure:       mix.Pressure,
	}
	if o.Density, err = mix.Density(mix.Temperature); err != nil {
		return nil, err
	}
	if o.Viscosity, err = mix.Viscosity(mix.Temperature); err != nil {
		return nil, err
	}
	if o.SpecificHeat, err = mix.SpecificHeat(mix.Temperature); err != nil {
		return nil, err
	}
	if o.MolarMass, err = mix.MolarMass(); err != nil {
		return nil, err
	}
	if o.MolarMasses, err = mix.MolarMasses(); err != nil {
		return nil, err
	}
	if o.MassFractions, err = mix.MassFractions(); err != nil {
		return nil, err
	}
	if o.MolarFractions, err = mix.MolarFractions(); err != nil {
		return nil, err
	}
	return
}

// SetMassFlow makes the mass flow [kg/s] the authoritative mass-basis flow
func (o *Stream) SetMassFlow(mf float64) error {
	if mf < 0 {
		return chk.Err("stream: mass flow cannot be negative: %v", mf)
	}
	o.mbasis = mflowMass
	o.mvalue = mf
	return nil
}

// SetMolarFlow makes the molar flow [mol/s] the authoritative mass-basis flow
func (o *Stream) SetMolarFlow(nf float64) error {
	if nf < 0 {
		return chk.Err("stream: molar flow cannot be negative: %v", nf)
	}
	o.mbasis = mflowMolar
	o.mvalue = nf
	return nil
}

// SetVolumeFlow makes the volumetric flow [m³/s] @ stream conditions the
// authoritative volume-basis flow
func (o *Stream) SetVolumeFlow(vf float64) error {
	if vf < 0 {
		return chk.Err("stream: volumetric flow cannot be negative: %v", vf)
	}
	o.vbasis = vflowActual
	o.vvalue = vf
	return nil
}

// SetNormalVolumeFlow makes the volumetric flow [m³/s] @ 273.15 K and
// 101325 Pa the authoritative volume-basis flow
func (o *Stream) SetNormalVolumeFlow(vfo float64) error {
	if vfo < 0 {
		return chk.Err("stream: normal volumetric flow cannot be negative: %v", vfo)
	}
	o.vbasis = vflowNormal
	o.vvalue = vfo
	return nil
}

// MassFlow returns the mass flow rate [kg/s]
func (o *Stream) MassFlow() (float64, error) {
	switch o.mbasis {
	case mflowMass:
		return o.mvalue, nil
	case mflowMolar:
		return o.mvalue * o.MolarMass, nil
	}
	if o.vbasis == vflowUnset {
		return 0, chk.Err("stream: flow unspecified: no flow basis was set")
	}
	vf, err := o.VolumeFlow()
	if err != nil {
		return 0, err
	}
	return vf * o.Density, nil
}

// MolarFlow returns the molar flow rate [mol/s]
func (o *Stream) MolarFlow() (float64, error) {
	if o.mbasis == mflowMolar {
		return o.mvalue, nil
	}
	mf, err := o.MassFlow()
	if err != nil {
		return 0, err
	}
	return mf / o.MolarMass, nil
}

// VolumeFlow returns the volumetric flow rate [m³/s] @ stream conditions
func (o *Stream) VolumeFlow() (float64, error) {
	switch o.vbasis {
	case vflowActual:
		return o.vvalue, nil
	case vflowNormal:
		return o.vvalue * (normP / normT) * (o.Temperature / o.Pressure), nil
	}
	if o.mbasis == mflowUnset {
		return 0, chk.Err("stream: flow unspecified: no flow basis was set")
	}
	mf, err := o.MassFlow()
	if err != nil {
		return 0, err
	}
	return mf / o.Density, nil
}

// NormalVolumeFlow returns the volumetric flow rate [m³/s] @ 273.15 K and
// 101325 Pa
func (o *Stream) NormalVolumeFlow() (float64, error) {
	if o.vbasis == vflowNormal {
		return o.vvalue, nil
	}
	vf, err := o.VolumeFlow()
	if err != nil {
		return 0, err
	}
	return vf * (normT / normP) * (o.Pressure / o.Temperature), nil
}

// MassFlows returns the per-component mass flow rates [kg/s]
func (o *Stream) MassFlows() ([]float64, error) {
	mf, err := o.MassFlow()
	if err != nil {
		return nil, err
	}
	res := make([]float64, len(o.MassFractions))
	for i, w := range o.MassFractions {
		res[i] = w * mf
	}
	return res, nil
}

// VolumeFlows returns the per-component volumetric flow rates [m³/s],
// distributed by mole fraction
func (o *Stream) VolumeFlows() ([]float64, error) {
	vf, err := o.VolumeFlow()
	if err != nil {
		return nil, err
	}
	res := make([]float64, len(o.MolarFractions))
	for i, z := range o.MolarFractions {
		res[i] = z * vf
	}
	return res, nil
}

// MolarFlows returns the per-component molar flow rates [mol/s]
func (o *Stream) MolarFlows() ([]float64, error) {
	nf, err := o.MolarFlow()
	if err != nil {
		return nil, err
	}
	res := make([]float64, len(o.MolarFractions))
	for i, z := range o.MolarFractions {
		res[i] = z * nf
	}
	return res, nil
}

// Velocity returns the mean velocity [m/s] in a circular conduit with the
// given diameter [m]
func (o *Stream) Velocity(diameter float64) (float64, error) {
	if diameter <= 0 {
		return 0, chk.Err("stream: conduit diameter must be positive: %v", diameter)
	}
	vf, err := o.VolumeFlow()
	if err != nil {
		return 0, err
	}
	circ := geo.Circle{D: diameter}
	return vf / circ.Area(), nil
}
