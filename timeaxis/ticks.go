// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package timeaxis

import (
	"fmt"
	"math"
	"svggraph/axis"
	"svggraph/chartval"
	"time"

	"bitbucket.org/tebeka/strftime"
	"golang.org/x/exp/slices"
)

// MaxTicks limits the number of generated ticks, a tiny division over a long time range is
// considered a configuration error.
const MaxTicks = 100000

// TickSet holds ascending tick instants in seconds since the epoch.
type TickSet []int64

// Bucketizer generates time axis ticks. Calendar arithmetic is done in Location.
type Bucketizer struct {
	Location *time.Location
}

func NewBucketizer(loc *time.Location) Bucketizer {
	if loc == nil {
		loc = time.UTC
	}
	return Bucketizer{Location: loc}
}

func (b Bucketizer) location() *time.Location {
	if b.Location == nil {
		return time.UTC
	}
	return b.Location
}

// Ticks returns the ticks between min and max, and the step size in seconds.
// If div is nil, fallbackStep (usually the step of the axis range) is used.
// Fixed steps run up to and including max plus a tenth of a step.
// Month and year steps are calendar based and run up to and including max,
// the returned step is the average length in that case.
func (b Bucketizer) Ticks(min, max int64, div *Division, fallbackStep float64) (TickSet, float64, error) {
	if div == nil {
		ticks, err := fallbackTicks(min, max, fallbackStep)
		return ticks, fallbackStep, err
	}
	if div.Amount <= 0 || div.Unit < 0 || div.Unit >= NumUnits {
		return nil, 0, chartval.NewConfigurationError("timescaleDivisions", *div, chartval.ErrInvalidTimescale)
	}
	if div.Unit.IsCalendar() {
		ticks, err := b.calendarTicks(min, max, *div)
		return ticks, div.NominalStep(), err
	}
	if int64(div.Amount) > math.MaxInt64/div.Unit.Seconds() {
		return nil, 0, chartval.NewConfigurationError("timescaleDivisions", *div,
			fmt.Errorf("%w: step overflows", chartval.ErrInvalidTimescale))
	}
	step := div.Unit.Seconds() * int64(div.Amount)
	ticks, err := fixedTicks(min, max, step)
	return ticks, float64(step), err
}

func fixedTicks(min, max, step int64) (TickSet, error) {
	if max > math.MaxInt64-step/10 {
		return nil, rangeOverflow(min, max)
	}
	limit := max + step/10
	if limit < min {
		return nil, nil
	}
	if min < 0 && limit > math.MaxInt64+min {
		return nil, rangeOverflow(min, max)
	}
	n := (limit - min) / step
	if n >= MaxTicks {
		return nil, tooManyTicks(step)
	}
	ticks := make(TickSet, 0, n+1)
	for i := int64(0); i <= n; i++ {
		ticks = append(ticks, min+i*step)
	}
	return ticks, nil
}

func rangeOverflow(min, max int64) error {
	return chartval.NewConfigurationError("timeRange", [2]int64{min, max},
		fmt.Errorf("%w: time range overflows", chartval.ErrInvalidTimescale))
}

func fallbackTicks(min, max int64, step float64) (TickSet, error) {
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, chartval.NewConfigurationError("step", step, chartval.ErrInvalidStep)
	}
	limit := float64(max) + step/10
	if (limit-float64(min))/step >= MaxTicks {
		return nil, tooManyTicks(step)
	}
	values := axis.Step(float64(min), limit, step)
	ticks := make(TickSet, 0, len(values))
	for _, v := range values {
		ticks = append(ticks, int64(math.Floor(v)))
	}
	// Sub-second steps may truncate to the same instant.
	return slices.Compact(ticks), nil
}

func (b Bucketizer) calendarTicks(min, max int64, div Division) (TickSet, error) {
	anchor := time.Unix(min, 0).In(b.location())
	var ticks TickSet
	// Every tick is computed from the anchor, so a clamped day (e.g. Feb 29) does not
	// shift all following ticks.
	for n := 0; ; n++ {
		cur := div.AddTo(anchor, n).Unix()
		if cur > max {
			break
		}
		if n >= MaxTicks {
			return nil, tooManyTicks(div)
		}
		ticks = append(ticks, cur)
	}
	return ticks, nil
}

func tooManyTicks(step any) error {
	return chartval.NewConfigurationError("timescaleDivisions", step,
		fmt.Errorf("%w: more than %d ticks", chartval.ErrInvalidTimescale, MaxTicks))
}

// Times converts the ticks to time values in loc.
func (s TickSet) Times(loc *time.Location) []time.Time {
	if loc == nil {
		loc = time.UTC
	}
	t := make([]time.Time, len(s))
	for i, v := range s {
		t[i] = time.Unix(v, 0).In(loc)
	}
	return t
}

// Labels formats every tick using a strftime format string.
func (s TickSet) Labels(format string, loc *time.Location) ([]string, error) {
	labels := make([]string, 0, len(s))
	for _, t := range s.Times(loc) {
		l, err := strftime.Format(format, t)
		if err != nil {
			return nil, chartval.NewConfigurationError("xLabelFormat", format, err)
		}
		labels = append(labels, l)
	}
	return labels, nil
}
