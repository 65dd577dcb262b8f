// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package mapper

import (
	"math"
	"strings"
	"svggraph/axis"
	"svggraph/chartval"
)

type StackMode int

const (
	// StackNone draws every series over the full field thickness, later series on top.
	StackNone StackMode = iota
	// StackSide divides the field thickness evenly, one slot per series.
	StackSide
)

func StackModeFromString(s string) (StackMode, error) {
	switch strings.ToLower(s) {
	case "", "none", "overlap":
		return StackNone, nil
	case "side":
		return StackSide, nil
	default:
		return StackNone, chartval.NewConfigurationError("stack", s, chartval.ErrInvalidStackMode)
	}
}

func (m StackMode) String() string {
	switch m {
	case StackNone:
		return "none"
	case StackSide:
		return "side"
	default:
		panic("unsupported stack mode")
	}
}

// Band is the position of a bar across the value axis, relative to the start of its field.
type Band struct {
	Offset    float64 `yaml:"offset"`
	Thickness float64 `yaml:"thickness"`
}

// Geometry of a bar. Offset and Length run along the value axis, Offset measured from the
// edge of the plot area.
type Geometry struct {
	Offset float64 `yaml:"offset"`
	Length float64 `yaml:"length"`
	Band   Band    `yaml:"band"`
}

// BarLayout holds everything needed to map the values of one bar chart.
type BarLayout struct {
	Range axis.AxisRange
	// UnitSpan is the pixel length of one axis step.
	UnitSpan       float64
	FieldThickness float64
	Stack          StackMode
	SeriesCount    int
	BarGap         bool
}

// Map returns the geometry of a value of series seriesIndex.
func (l BarLayout) Map(value float64, seriesIndex int) Geometry {
	g := MapBar(value, l.Range, l.UnitSpan)
	g.Band = Slot(l.FieldThickness, l.BarGap, l.Stack, seriesIndex, l.SeriesCount)
	return g
}

// Map is the free function form of BarLayout.Map.
func Map(value float64, r axis.AxisRange, unitSpan, fieldThickness float64, mode StackMode, seriesIndex, seriesCount int, barGap bool) Geometry {
	return BarLayout{
		Range:          r,
		UnitSpan:       unitSpan,
		FieldThickness: fieldThickness,
		Stack:          mode,
		SeriesCount:    seriesCount,
		BarGap:         barGap,
	}.Map(value, seriesIndex)
}

// MapBar maps a signed value to offset and length along the value axis.
//
//	value  min  length          offset
//	 +ve   +ve  |value| - min   |min|
//	 +ve   -ve  |value|         |min|
//	 -ve   -ve  |value|         |min| + value
func MapBar(value float64, r axis.AxisRange, unitSpan float64) Geometry {
	scale := unitSpan / r.Step
	return Geometry{
		Length: (math.Abs(value) - math.Max(0, r.Minimum)) * scale,
		Offset: (math.Abs(r.Minimum) + math.Min(0, value)) * scale,
	}
}

// Unmap reconstructs the value from bar geometry created by MapBar.
func Unmap(g Geometry, r axis.AxisRange, unitSpan float64) float64 {
	scale := r.Step / unitSpan
	offset := g.Offset * scale
	length := g.Length * scale
	if offset < math.Abs(r.Minimum)-chartval.NearZero {
		// Bar starts left of the zero line, so the value is negative.
		return -length
	}
	return length + math.Max(0, r.Minimum)
}

// BarGap returns the gap between fields if enabled.
func BarGap(fieldThickness float64, enabled bool) float64 {
	if !enabled {
		return 0
	}
	if fieldThickness < 10 {
		return fieldThickness / 2
	}
	return 10
}

// Slot returns the band of series seriesIndex within a field.
func Slot(fieldThickness float64, barGap bool, mode StackMode, seriesIndex, seriesCount int) Band {
	gap := BarGap(fieldThickness, barGap)
	b := Band{
		Offset:    gap / 2,
		Thickness: fieldThickness - gap,
	}
	if mode == StackSide && seriesCount > 0 {
		b.Thickness /= float64(seriesCount)
		b.Offset += b.Thickness * float64(seriesIndex)
	}
	return b
}
