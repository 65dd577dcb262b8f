// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package graph

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"svggraph/axis"
	"svggraph/chartval"
	"svggraph/mapper"
	"svggraph/shape"
)

// Axis describes the ticks of one axis. Positions are pixel offsets from the
// left (x) or top (y) edge of the plot area, one per tick.
type Axis struct {
	Range     axis.AxisRange `yaml:"range"`
	Ticks     []float64      `yaml:"ticks,omitempty"`
	Labels    []string       `yaml:"labels"`
	Positions []float64      `yaml:"positions"`
}

type Bar struct {
	Field    int             `yaml:"field"`
	Series   int             `yaml:"series"`
	Value    float64         `yaml:"value"`
	Geometry mapper.Geometry `yaml:"geometry"`
	// Top is the pixel position of the bar on the field axis.
	Top         float64        `yaml:"top"`
	Class       string         `yaml:"class"`
	Label       string         `yaml:"label,omitempty"`
	LabelAnchor chartval.Point `yaml:"labelAnchor"`
	Popup       string         `yaml:"popup,omitempty"`
}

type Point struct {
	Series     int              `yaml:"series"`
	Index      int              `yaml:"index"`
	Value      chartval.XY      `yaml:"value"`
	Position   chartval.Point   `yaml:"position"`
	Primitives []shape.Primitive `yaml:"primitives"`
	Popup      string           `yaml:"popup,omitempty"`
}

// Line connects the points of one series.
type Line struct {
	Series int              `yaml:"series"`
	Class  string           `yaml:"class"`
	Points []chartval.Point `yaml:"points"`
	Path   string           `yaml:"path"`
}

// Layout is everything a renderer needs to draw a chart.
type Layout struct {
	Kind   string  `yaml:"kind"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	X      Axis    `yaml:"x"`
	Y      Axis    `yaml:"y"`
	Titles []string `yaml:"titles,omitempty"`
	Bars   []Bar   `yaml:"bars,omitempty"`
	Points []Point `yaml:"points,omitempty"`
	Lines  []Line  `yaml:"lines,omitempty"`
}

func FillClass(seriesIndex int) string {
	return fmt.Sprintf("fill%d", seriesIndex+1)
}

func LineClass(seriesIndex int) string {
	return fmt.Sprintf("line%d", seriesIndex+1)
}

// Path returns svg path data "M x y L x y ..." through the points.
func Path(points []chartval.Point) string {
	var sb strings.Builder
	for i, p := range points {
		if i == 0 {
			sb.WriteString("M")
		} else {
			sb.WriteString(" L")
		}
		sb.WriteString(strconv.FormatFloat(p.X, 'f', -1, 64))
		sb.WriteString(" ")
		sb.WriteString(strconv.FormatFloat(p.Y, 'f', -1, 64))
	}
	return sb.String()
}

func numericLabels(values []float64, r axis.AxisRange) []string {
	labels := make([]string, len(values))
	for i, v := range values {
		labels[i] = chartval.FormatTick(v, r.Minimum, r.Step)
	}
	return labels
}

// warnOutOfRange logs values which lie outside of an explicitly configured axis range.
// They are still mapped, and end up outside of the plot area.
func warnOutOfRange(logger *log.Logger, name string, o axis.Overrides, values []float64) {
	if o.Min == nil && o.Max == nil {
		return
	}
	outside := 0
	for _, v := range values {
		if (o.Min != nil && v < *o.Min) || (o.Max != nil && v > *o.Max) {
			outside++
		}
	}
	if outside > 0 {
		logger.Printf("%d values lie outside of the configured %s axis range.", outside, name)
	}
}

func defaultLogger(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.Default()
	}
	return logger
}
