// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package axis

import (
	"math"
)

// Labels returns the values of the bar value axis: Minimum, Minimum+Step, ... up to and including Maximum.
func (r AxisRange) Labels() []float64 {
	return Step(r.Minimum, r.Maximum, r.Step)
}

// Ticks returns the grid values of a plot axis. The limit is Maximum plus a tenth of a step,
// so that a tick lying just above the maximum due to rounding is still included.
func (r AxisRange) Ticks() []float64 {
	return Step(r.Minimum, r.Maximum+r.Step/10, r.Step)
}

// Step returns start, start+step, ... up to and including limit.
// Values are computed as start+i*step to avoid accumulating rounding errors,
// and the number of steps allows for a few ulps of error in the division.
func Step(start, limit, step float64) []float64 {
	if !(step > 0) || limit < start {
		return nil
	}
	n := (limit - start) / step
	slack := (math.Abs(start) + math.Abs(limit) + math.Abs(limit-start)) / step * epsilon
	if slack > 0.5 {
		slack = 0.5
	}
	count := int(math.Floor(n+slack)) + 1
	values := make([]float64, 0, count)
	for i := 0; i < count; i++ {
		v := start + float64(i)*step
		if v > limit {
			v = limit
		}
		values = append(values, v)
	}
	return values
}

const epsilon = 2.220446049250313e-16
