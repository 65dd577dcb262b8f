// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package axis

import (
	"fmt"
	"math"
	"svggraph/chartval"
)

// DefaultDivisions is the number of grid lines used when neither a step nor a division count is configured.
const DefaultDivisions = 10

// DefaultZeroRangePad is added above a single repeated value, so that the step never becomes zero.
const DefaultZeroRangePad = 10.0

// Overrides are optional user settings for one axis. Nil means "derive from data".
type Overrides struct {
	Min       *float64
	Max       *float64
	Step      *float64
	Divisions *int
	Integers  bool
	// ZeroRangePad replaces DefaultZeroRangePad if greater than zero.
	ZeroRangePad float64
}

// AxisRange is the scale of one axis. Minimum and Maximum are the (possibly overridden) data
// extremes, TopPad is the headroom above Maximum.
type AxisRange struct {
	Minimum   float64 `yaml:"minimum"`
	Maximum   float64 `yaml:"maximum"`
	Step      float64 `yaml:"step"`
	Divisions int     `yaml:"divisions"`
	TopPad    float64 `yaml:"topPad"`
}

func (o Overrides) validate() error {
	if o.Step != nil && !(*o.Step > 0) {
		return chartval.NewConfigurationError("step", *o.Step, chartval.ErrInvalidStep)
	}
	if o.Divisions != nil && *o.Divisions <= 0 {
		return chartval.NewConfigurationError("divisions", *o.Divisions, chartval.ErrInvalidDivisions)
	}
	return nil
}

// Compute derives the axis scale of values. Explicit minimum and maximum overrides are used
// as they are, even if data lies outside of them.
func Compute(values []float64, o Overrides) (AxisRange, error) {
	if err := o.validate(); err != nil {
		return AxisRange{}, err
	}
	minValue, maxValue, ok := extremes(values)
	if o.Min != nil {
		minValue = *o.Min
	}
	if o.Max != nil {
		maxValue = *o.Max
	}
	if !ok && (o.Min == nil || o.Max == nil) {
		return AxisRange{}, chartval.NewConfigurationError("data", len(values),
			fmt.Errorf("%w: no values to derive an axis range from", chartval.ErrDatasetShape))
	}

	r := AxisRange{Minimum: minValue, Maximum: maxValue}
	valueRange := maxValue - minValue
	if valueRange == 0 {
		r.TopPad = DefaultZeroRangePad
		if o.ZeroRangePad > 0 {
			r.TopPad = o.ZeroRangePad
		}
	} else {
		r.TopPad = valueRange / 20.0
	}

	switch {
	case o.Step != nil:
		r.Step = *o.Step
	case o.Divisions != nil:
		r.Step = (valueRange + r.TopPad) / float64(*o.Divisions)
	default:
		r.Step = (valueRange + r.TopPad) / DefaultDivisions
	}
	if o.Integers {
		if r.Step < 1 {
			r.Step = 1
		} else {
			r.Step = math.Round(r.Step)
		}
	}
	if !(r.Step > 0) || math.IsInf(r.Step, 0) {
		return AxisRange{}, chartval.NewConfigurationError("step", r.Step,
			fmt.Errorf("%w: minimum %v, maximum %v", chartval.ErrInvalidStep, minValue, maxValue))
	}
	r.Divisions = int(math.Ceil(r.Span()/r.Step - chartval.NearZero))
	return r, nil
}

// Span is the value range covered by the axis including the top padding.
func (r AxisRange) Span() float64 {
	return r.Maximum + r.TopPad - r.Minimum
}

// UnitSpan returns the pixel length of one step if the whole span is drawn over extent pixels.
func (r AxisRange) UnitSpan(extent float64) float64 {
	return extent * r.Step / r.Span()
}

// Contains reports whether v lies inside the drawable span.
func (r AxisRange) Contains(v float64) bool {
	return v >= r.Minimum && v <= r.Maximum+r.TopPad
}

func extremes(values []float64) (minValue, maxValue float64, ok bool) {
	for i, v := range values {
		if i == 0 || v < minValue {
			minValue = v
		}
		if i == 0 || v > maxValue {
			maxValue = v
		}
	}
	return minValue, maxValue, len(values) > 0
}
