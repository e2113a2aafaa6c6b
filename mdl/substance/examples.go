// Copyright 2017 The Gochem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package substance

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// WaterPrms returns the reference properties of liquid water @ 25°C
func WaterPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "mm", V: 0.0180153}, // [kg/mol]
		&dbf.P{N: "rho0", V: 997.05},  // [kg/m³]
		&dbf.P{N: "mu0", V: 8.9e-4},   // [Pa·s]
		&dbf.P{N: "cp0", V: 4181.3},   // [J/(kg·K)]
		&dbf.P{N: "d0", V: 2.3e-9},    // [m²/s]
	}
}

// DryAirPrms returns the reference properties of dry air @ 25°C
func DryAirPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "mm", V: 0.028964},  // [kg/mol]
		&dbf.P{N: "rho0", V: 1.184},   // [kg/m³]
		&dbf.P{N: "mu0", V: 1.849e-5}, // [Pa·s]
		&dbf.P{N: "cp0", V: 1006.1},   // [J/(kg·K)]
		&dbf.P{N: "d0", V: 2.0e-5},    // [m²/s]
	}
}

// Water returns a ready-to-use liquid water substance @ 25°C
func Water() (o *Substance) {
	o = New("water")
	err := o.Init(WaterPrms())
	if err != nil {
		chk.Panic("cannot initialise water substance:\n%v", err)
	}
	return
}

// DryAir returns a ready-to-use dry air substance @ 25°C
func DryAir() (o *Substance) {
	o = New("dry air")
	err := o.Init(DryAirPrms())
	if err != nil {
		chk.Panic("cannot initialise dry air substance:\n%v", err)
	}
	return
}
