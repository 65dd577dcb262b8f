// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package mapper

import (
	"svggraph/axis"
	"svggraph/chartval"
)

// Projection maps plot values to pixels, f(v)=m*v+b per axis.
// X values increase from left to right, Y values from bottom to top.
type Projection struct {
	mX float64
	mY float64
	bX float64
	bY float64
}

func NewProjection(xr, yr axis.AxisRange, width, height float64) Projection {
	var proj Projection
	proj.mX = width / xr.Span()
	proj.mY = -height / yr.Span()
	proj.bX = -proj.mX * xr.Minimum
	proj.bY = -proj.mY*yr.Minimum + height
	return proj
}

func (proj Projection) X(v float64) float64 {
	return proj.mX*v + proj.bX
}

func (proj Projection) Y(v float64) float64 {
	return proj.mY*v + proj.bY
}

func (proj Projection) Point(v chartval.XY) chartval.Point {
	return chartval.Point{X: proj.X(v.X), Y: proj.Y(v.Y)}
}

// Value is the inverse of Point.
func (proj Projection) Value(p chartval.Point) chartval.XY {
	return chartval.XY{X: (p.X - proj.bX) / proj.mX, Y: (p.Y - proj.bY) / proj.mY}
}
