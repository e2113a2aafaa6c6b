// Copyright 2017 The Gochem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stream

import (
	"math"
	"testing"

	"github.com/cpmech/gochem/mdl/mixture"
	"github.com/cpmech/gochem/mdl/substance"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// gasA returns a fictitious gas with molar mass 0.02 kg/mol
func gasA(tst *testing.T) *substance.Substance {
	s := substance.New("gasA")
	err := s.Init(dbf.Params{
		&dbf.P{N: "mm", V: 0.02},    // [kg/mol]
		&dbf.P{N: "rho0", V: 1.25},  // [kg/m³]
		&dbf.P{N: "mu0", V: 1.8e-5}, // [Pa·s]
		&dbf.P{N: "cp0", V: 1000.0}, // [J/(kg·K)]
	})
	if err != nil {
		tst.Fatalf("Init failed: %v\n", err)
	}
	return s
}

// newGasStream builds a single-component gas stream
func newGasStream(tst *testing.T) *Stream {
	mix, err := mixture.New([]*substance.Substance{gasA(tst)})
	if err != nil {
		tst.Fatalf("mixture.New failed: %v\n", err)
	}
	err = mix.SetMassFractions([]float64{1.0})
	if err != nil {
		tst.Fatalf("SetMassFractions failed: %v\n", err)
	}
	strm, err := New(mix)
	if err != nil {
		tst.Fatalf("New failed: %v\n", err)
	}
	return strm
}

func Test_strm01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("strm01. snapshot semantics and mass/molar flow pair")

	mix, err := mixture.New([]*substance.Substance{substance.Water(), substance.DryAir()})
	if err != nil {
		tst.Errorf("mixture.New failed: %v\n", err)
		return
	}
	err = mix.SetMassFractions([]float64{0.7, 0.3})
	if err != nil {
		tst.Errorf("SetMassFractions failed: %v\n", err)
		return
	}
	strm, err := New(mix)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	io.Pforan("strm: rho=%v mu=%v cp=%v MM=%v\n", strm.Density, strm.Viscosity, strm.SpecificHeat, strm.MolarMass)

	// the stream is a value copy: mutating the mixture must not change it
	wiBefore := append([]float64{}, strm.MassFractions...)
	rhoBefore := strm.Density
	err = mix.SetMassFractions([]float64{0.1, 0.9})
	if err != nil {
		tst.Errorf("SetMassFractions failed: %v\n", err)
		return
	}
	mix.Temperature = 400.0
	chk.Array(tst, "wi snapshot", 1e-17, strm.MassFractions, wiBefore)
	chk.Float64(tst, "rho snapshot", 1e-17, strm.Density, rhoBefore)
	chk.Float64(tst, "T snapshot", 1e-17, strm.Temperature, substance.Tref)

	// mass flow authoritative: molar flow derived via molar mass
	strm = newGasStream(tst)
	err = strm.SetMassFlow(10.0)
	if err != nil {
		tst.Errorf("SetMassFlow failed: %v\n", err)
		return
	}
	nf, err := strm.MolarFlow()
	if err != nil {
		tst.Errorf("MolarFlow failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Nf", 1e-17, nf, 500.0)

	// molar flow authoritative: mass flow derived
	strm = newGasStream(tst)
	err = strm.SetMolarFlow(100.0)
	if err != nil {
		tst.Errorf("SetMolarFlow failed: %v\n", err)
		return
	}
	mf, err := strm.MassFlow()
	if err != nil {
		tst.Errorf("MassFlow failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Mf", 1e-15, mf, 2.0)
}

func Test_strm02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("strm02. volumetric flow pair and cross derivations")

	// normal volumetric flow authoritative
	strm := newGasStream(tst)
	err := strm.SetNormalVolumeFlow(1.0)
	if err != nil {
		tst.Errorf("SetNormalVolumeFlow failed: %v\n", err)
		return
	}
	vf, err := strm.VolumeFlow()
	if err != nil {
		tst.Errorf("VolumeFlow failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Vf", 1e-15, vf, (101325.0/273.15)*(298.15/101325.0))

	// actual volumetric flow authoritative: round trip through normal flow
	strm = newGasStream(tst)
	err = strm.SetVolumeFlow(2.0)
	if err != nil {
		tst.Errorf("SetVolumeFlow failed: %v\n", err)
		return
	}
	vfo, err := strm.NormalVolumeFlow()
	if err != nil {
		tst.Errorf("NormalVolumeFlow failed: %v\n", err)
		return
	}
	other := newGasStream(tst)
	err = other.SetNormalVolumeFlow(vfo)
	if err != nil {
		tst.Errorf("SetNormalVolumeFlow failed: %v\n", err)
		return
	}
	vfBack, err := other.VolumeFlow()
	if err != nil {
		tst.Errorf("VolumeFlow failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Vf round trip", 1e-14, vfBack, 2.0)

	// mass flow authoritative: volumetric flow via density
	strm = newGasStream(tst)
	err = strm.SetMassFlow(2.0)
	if err != nil {
		tst.Errorf("SetMassFlow failed: %v\n", err)
		return
	}
	vf, err = strm.VolumeFlow()
	if err != nil {
		tst.Errorf("VolumeFlow failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Vf from Mf", 1e-15, vf, 1.6)

	// molar flow only: volumetric flow must still resolve
	strm = newGasStream(tst)
	err = strm.SetMolarFlow(100.0)
	if err != nil {
		tst.Errorf("SetMolarFlow failed: %v\n", err)
		return
	}
	vf, err = strm.VolumeFlow()
	if err != nil {
		tst.Errorf("VolumeFlow failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Vf from Nf", 1e-15, vf, 1.6)

	// volumetric flow only: mass and molar flows via density
	strm = newGasStream(tst)
	err = strm.SetVolumeFlow(1.6)
	if err != nil {
		tst.Errorf("SetVolumeFlow failed: %v\n", err)
		return
	}
	mf, err := strm.MassFlow()
	if err != nil {
		tst.Errorf("MassFlow failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Mf from Vf", 1e-15, mf, 2.0)
	nf, err := strm.MolarFlow()
	if err != nil {
		tst.Errorf("MolarFlow failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Nf from Vf", 1e-13, nf, 100.0)
}

func Test_strm03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("strm03. per-component flow breakdowns")

	mix, err := mixture.New([]*substance.Substance{substance.Water(), substance.DryAir()})
	if err != nil {
		tst.Errorf("mixture.New failed: %v\n", err)
		return
	}
	err = mix.SetMassFractions([]float64{0.6, 0.4})
	if err != nil {
		tst.Errorf("SetMassFractions failed: %v\n", err)
		return
	}
	strm, err := New(mix)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = strm.SetMassFlow(5.0)
	if err != nil {
		tst.Errorf("SetMassFlow failed: %v\n", err)
		return
	}

	// mass flows distributed by mass fraction
	mfs, err := strm.MassFlows()
	if err != nil {
		tst.Errorf("MassFlows failed: %v\n", err)
		return
	}
	io.Pforan("mfs = %v\n", mfs)
	chk.Array(tst, "Mfi", 1e-15, mfs, []float64{3.0, 2.0})
	chk.Float64(tst, "ΣMfi", 1e-14, mfs[0]+mfs[1], 5.0)

	// molar flows distributed by mole fraction
	nf, err := strm.MolarFlow()
	if err != nil {
		tst.Errorf("MolarFlow failed: %v\n", err)
		return
	}
	nfs, err := strm.MolarFlows()
	if err != nil {
		tst.Errorf("MolarFlows failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Nfi[0]", 1e-15, nfs[0], strm.MolarFractions[0]*nf)
	chk.Float64(tst, "ΣNfi", 1e-12, nfs[0]+nfs[1], nf)

	// volumetric flows distributed by mole fraction (not mass fraction)
	vf, err := strm.VolumeFlow()
	if err != nil {
		tst.Errorf("VolumeFlow failed: %v\n", err)
		return
	}
	vfs, err := strm.VolumeFlows()
	if err != nil {
		tst.Errorf("VolumeFlows failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Vfi[0]", 1e-15, vfs[0], strm.MolarFractions[0]*vf)
	chk.Float64(tst, "Vfi[1]", 1e-15, vfs[1], strm.MolarFractions[1]*vf)
	chk.Float64(tst, "ΣVfi", 1e-15, vfs[0]+vfs[1], vf)
}

func Test_strm04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("strm04. underspecified flow and velocity")

	strm := newGasStream(tst)

	// no flow basis set: every accessor must fail, not recurse
	if _, err := strm.MassFlow(); err == nil {
		tst.Errorf("error expected for unspecified flow\n")
		return
	}
	if _, err := strm.MolarFlow(); err == nil {
		tst.Errorf("error expected for unspecified flow\n")
		return
	}
	if _, err := strm.VolumeFlow(); err == nil {
		tst.Errorf("error expected for unspecified flow\n")
		return
	}
	if _, err := strm.NormalVolumeFlow(); err == nil {
		tst.Errorf("error expected for unspecified flow\n")
		return
	}
	if _, err := strm.MassFlows(); err == nil {
		tst.Errorf("error expected for unspecified flow\n")
		return
	}
	if _, err := strm.Velocity(0.1); err == nil {
		tst.Errorf("error expected for unspecified flow\n")
		return
	}

	// negative flows are inconsistent input
	if err := strm.SetMassFlow(-1.0); err == nil {
		tst.Errorf("error expected for negative mass flow\n")
		return
	}
	if err := strm.SetNormalVolumeFlow(-1.0); err == nil {
		tst.Errorf("error expected for negative normal volumetric flow\n")
		return
	}

	// velocity in a circular conduit
	err := strm.SetVolumeFlow(1.0)
	if err != nil {
		tst.Errorf("SetVolumeFlow failed: %v\n", err)
		return
	}
	v, err := strm.Velocity(0.1)
	if err != nil {
		tst.Errorf("Velocity failed: %v\n", err)
		return
	}
	chk.Float64(tst, "velocity", 1e-12, v, 1.0/(math.Pi*0.1*0.1/4.0))
	if _, err := strm.Velocity(0.0); err == nil {
		tst.Errorf("error expected for non-positive diameter\n")
		return
	}
}
