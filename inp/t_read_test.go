// Copyright 2017 The Gochem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_mat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat01. read substances and mixtures from .mat file")

	mdb, err := ReadMat("data", "chem.mat")
	if err != nil {
		tst.Errorf("ReadMat failed: %v\n", err)
		return
	}
	io.Pforan("%v\n", mdb)

	// substances
	water := mdb.Get("water")
	if water == nil {
		tst.Errorf("cannot find substance \"water\"\n")
		return
	}
	mm, err := water.MolarMass()
	if err != nil {
		tst.Errorf("MolarMass failed: %v\n", err)
		return
	}
	chk.Float64(tst, "mm water", 1e-17, mm, 0.0180153)
	if mdb.Get("kerosene") != nil {
		tst.Errorf("substance \"kerosene\" must not be found\n")
		return
	}

	// mixture with mass fractions
	vodka := mdb.GetMix("vodka")
	if vodka == nil {
		tst.Errorf("cannot find mixture \"vodka\"\n")
		return
	}
	rho, err := vodka.Density(vodka.Temperature)
	if err != nil {
		tst.Errorf("Density failed: %v\n", err)
		return
	}
	chk.Float64(tst, "rho vodka", 1e-12, rho, 1.0/(0.6/997.05+0.4/789.0))

	// mixture with mole fractions and its own temperature
	hair := mdb.GetMix("humid air")
	if hair == nil {
		tst.Errorf("cannot find mixture \"humid air\"\n")
		return
	}
	chk.Float64(tst, "T humid air", 1e-17, hair.Temperature, 303.15)
	zi, err := hair.MolarFractions()
	if err != nil {
		tst.Errorf("MolarFractions failed: %v\n", err)
		return
	}
	chk.Array(tst, "zi humid air", 1e-17, zi, []float64{0.97, 0.03})
}

func Test_mat02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat02. read failures")

	_, err := ReadMat("data", "bad.mat")
	if err == nil {
		tst.Errorf("error expected for mixture referring to undefined substance\n")
		return
	}
	io.Pforan("err = %v\n", err)
}
