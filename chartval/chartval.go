// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartval

import (
	"fmt"
	"sort"
)

// Point is a position in pixel space.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// XY is a data pair of a plot series.
type XY struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Series is one data set of a bar chart, one value per field (category).
type Series struct {
	Title  string    `yaml:"title,omitempty"`
	Values []float64 `yaml:"values"`
}

// PlotSeries is one data set of a plot. Descriptions and Shapes run parallel to Points,
// missing trailing entries mean "no popup description" and "default shape".
type PlotSeries struct {
	Title        string   `yaml:"title,omitempty"`
	Points       []XY     `yaml:"points"`
	Descriptions []string `yaml:"descriptions,omitempty"`
	Shapes       []string `yaml:"shapes,omitempty"`
}

// For sorting
type XYList []XY

func (x XYList) Len() int           { return len(x) }
func (x XYList) Less(i, j int) bool { return x[i].X < x[j].X }
func (x XYList) Swap(i, j int)      { x[i], x[j] = x[j], x[i] }

// PairsFromFlat converts [x0, y0, x1, y1, ...] into pairs.
func PairsFromFlat(values []float64) ([]XY, error) {
	if len(values)%2 != 0 {
		return nil, NewConfigurationError("data", len(values), fmt.Errorf("%w: odd number of plot values", ErrDatasetShape))
	}
	pairs := make([]XY, 0, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		pairs = append(pairs, XY{X: values[i], Y: values[i+1]})
	}
	return pairs, nil
}

func (s *PlotSeries) Validate() error {
	if len(s.Descriptions) > len(s.Points) {
		return NewConfigurationError("descriptions", len(s.Descriptions),
			fmt.Errorf("%w: %d descriptions for %d points", ErrDatasetShape, len(s.Descriptions), len(s.Points)))
	}
	if len(s.Shapes) > len(s.Points) {
		return NewConfigurationError("shapes", len(s.Shapes),
			fmt.Errorf("%w: %d shape labels for %d points", ErrDatasetShape, len(s.Shapes), len(s.Points)))
	}
	return nil
}

// Sorted returns a copy of the series ordered along the x axis.
// Descriptions and shape labels stay attached to their points.
func (s PlotSeries) Sorted() PlotSeries {
	idx := make([]int, len(s.Points))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return s.Points[idx[a]].X < s.Points[idx[b]].X })
	out := PlotSeries{Title: s.Title, Points: make([]XY, len(s.Points))}
	if len(s.Descriptions) > 0 {
		out.Descriptions = make([]string, len(s.Points))
	}
	if len(s.Shapes) > 0 {
		out.Shapes = make([]string, len(s.Points))
	}
	for to, from := range idx {
		out.Points[to] = s.Points[from]
		if out.Descriptions != nil {
			out.Descriptions[to] = At(s.Descriptions, from)
		}
		if out.Shapes != nil {
			out.Shapes[to] = At(s.Shapes, from)
		}
	}
	return out
}

// XValues flattens the x coordinates of all series.
func XValues(series []PlotSeries) []float64 {
	var v []float64
	for _, s := range series {
		for _, p := range s.Points {
			v = append(v, p.X)
		}
	}
	return v
}

// YValues flattens the y coordinates of all series.
func YValues(series []PlotSeries) []float64 {
	var v []float64
	for _, s := range series {
		for _, p := range s.Points {
			v = append(v, p.Y)
		}
	}
	return v
}

// Values flattens all bar values. Series are not summed per field.
func Values(series []Series) []float64 {
	var v []float64
	for _, s := range series {
		v = append(v, s.Values...)
	}
	return v
}

// FieldTotal sums the values of all series for one field.
func FieldTotal(series []Series, field int) float64 {
	var total float64
	for _, s := range series {
		total += At(s.Values, field)
	}
	return total
}
