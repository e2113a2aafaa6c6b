// Copyright 2017 The Gochem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geo implements auxiliary geometric entities of process equipment
package geo

import "math"

// Circle represents a circular cross-section defined by its diameter
type Circle struct {
	D float64 // diameter
}

// Radius returns the radius
func (o Circle) Radius() float64 {
	return o.D / 2.0
}

// Area returns the cross-sectional area
func (o Circle) Area() float64 {
	return math.Pi * o.D * o.D / 4.0
}

// Perimeter returns the perimeter
func (o Circle) Perimeter() float64 {
	return math.Pi * o.D
}
