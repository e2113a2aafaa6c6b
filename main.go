// Copyright 2017 The Gochem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Gochem computes thermophysical properties of substances, mixtures and
// streams defined in a .mat database file.
package main

import (
	"github.com/cpmech/gochem/inp"
	"github.com/cpmech/gochem/mdl/stream"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "inp/data/chem", ".mat", true)
	mixname := io.ArgToString(1, "vodka")
	mf := io.ArgToFloat(2, 1.0)
	dia := io.ArgToFloat(3, 0.05)

	// message
	io.PfWhite("\nGochem -- thermophysical properties of mixtures and streams\n")
	io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"materials filename path", "fnamepath", fnamepath,
		"mixture name", "mixname", mixname,
		"mass flow [kg/s]", "mf", mf,
		"pipe diameter [m]", "dia", dia,
	))

	// read database
	mdb, err := inp.ReadMat("", fnamepath)
	if err != nil {
		chk.Panic("cannot read materials file:\n%v", err)
	}

	// find mixture
	mix := mdb.GetMix(mixname)
	if mix == nil {
		chk.Panic("cannot find mixture %q in %q", mixname, fnamepath)
	}

	// build stream
	strm, err := stream.New(mix)
	if err != nil {
		chk.Panic("cannot create stream:\n%v", err)
	}
	strm.Tag = mixname
	err = strm.SetMassFlow(mf)
	if err != nil {
		chk.Panic("cannot set mass flow:\n%v", err)
	}

	// derived flow quantities
	nf, err := strm.MolarFlow()
	if err != nil {
		chk.Panic("cannot compute molar flow:\n%v", err)
	}
	vf, err := strm.VolumeFlow()
	if err != nil {
		chk.Panic("cannot compute volumetric flow:\n%v", err)
	}
	vfo, err := strm.NormalVolumeFlow()
	if err != nil {
		chk.Panic("cannot compute normal volumetric flow:\n%v", err)
	}
	vel, err := strm.Velocity(dia)
	if err != nil {
		chk.Panic("cannot compute velocity:\n%v", err)
	}

	// report
	io.Pf("\n>>> stream %q <<<\n", strm.Tag)
	io.Pf("temperature:          T   = %23g [K]\n", strm.Temperature)
	io.Pf("pressure:             P   = %23g [Pa]\n", strm.Pressure)
	io.Pf("density:              ρ   = %23g [kg/m³]\n", strm.Density)
	io.Pf("viscosity:            μ   = %23g [Pa·s]\n", strm.Viscosity)
	io.Pf("specific heat:        cp  = %23g [J/(kg·K)]\n", strm.SpecificHeat)
	io.Pf("molar mass:           MM  = %23g [kg/mol]\n", strm.MolarMass)
	io.Pf("mass flow:            Mf  = %23g [kg/s]\n", mf)
	io.Pf("molar flow:           Nf  = %23g [mol/s]\n", nf)
	io.Pf("volumetric flow:      Vf  = %23g [m³/s]\n", vf)
	io.Pf("normal vol. flow:     Vfo = %23g [m³/s]\n", vfo)
	io.Pf("velocity:             v   = %23g [m/s]\n", vel)
	for i, name := range strm.ComponentNames {
		io.Pf("mass fraction:        w[%s] = %21g [-]\n", name, strm.MassFractions[i])
	}
}
