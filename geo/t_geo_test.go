// Copyright 2017 The Gochem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_circle01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("circle01")

	c := Circle{D: 0.1}
	chk.Float64(tst, "radius", 1e-17, c.Radius(), 0.05)
	chk.Float64(tst, "area", 1e-17, c.Area(), math.Pi*0.01/4.0)
	chk.Float64(tst, "perimeter", 1e-17, c.Perimeter(), math.Pi*0.1)
}
