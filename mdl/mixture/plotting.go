// Copyright 2017 The Gochem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mixture

import (
	"github.com/cpmech/gochem/mdl/substance"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Plot draws the bulk density, viscosity and specific heat of a binary
// mixture of a and b, with the mass fraction of a varying from 0 to 1
func Plot(a, b *substance.Substance, T float64, dirout, fnkey string, np int) (err error) {
	W := utl.LinSpace(0, 1, np)
	Rho := make([]float64, np)
	Mu := make([]float64, np)
	Cp := make([]float64, np)
	mix, err := New([]*substance.Substance{a, b})
	if err != nil {
		return
	}
	mix.Temperature = T
	for i, w := range W {
		if err = mix.SetMassFractions([]float64{w, 1.0 - w}); err != nil {
			return
		}
		if Rho[i], err = mix.Density(T); err != nil {
			return
		}
		if Mu[i], err = mix.Viscosity(T); err != nil {
			return
		}
		if Cp[i], err = mix.SpecificHeat(T); err != nil {
			return
		}
	}
	plt.Subplot(3, 1, 1)
	plt.Plot(W, Rho, &plt.A{C: "b", NoClip: true})
	plt.Gll("$w_a$", "$\\rho$", nil)
	plt.Subplot(3, 1, 2)
	plt.Plot(W, Mu, &plt.A{C: "r", NoClip: true})
	plt.Gll("$w_a$", "$\\mu$", nil)
	plt.Subplot(3, 1, 3)
	plt.Plot(W, Cp, &plt.A{C: "g", NoClip: true})
	plt.Gll("$w_a$", "$c_p$", nil)
	plt.Save(dirout, fnkey)
	return
}
