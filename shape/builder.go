// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package shape

import (
	"fmt"
	"strconv"
	"strings"
	"svggraph/chartval"
)

// SeriesPlaceholder in a class template is replaced by the 1-based series number.
const SeriesPlaceholder = "{series}"

// RuleConfig declares a shape rule in a configuration file.
// Points are offsets relative to the data point: the vertices of a polygon,
// or start and end of a line. Rects are centered on the data point.
type RuleConfig struct {
	Pattern string           `yaml:"pattern"`
	Mode    string           `yaml:"mode,omitempty"`
	Kind    string           `yaml:"kind"`
	Class   string           `yaml:"class,omitempty"`
	Radius  float64          `yaml:"radius,omitempty"`
	Width   float64          `yaml:"width,omitempty"`
	Height  float64          `yaml:"height,omitempty"`
	Points  []chartval.Point `yaml:"points,omitempty"`
}

func expandClass(template string, seriesIndex int) string {
	if template == "" {
		return DefaultClass(seriesIndex)
	}
	return strings.ReplaceAll(template, SeriesPlaceholder, strconv.Itoa(seriesIndex+1))
}

func translate(offsets []chartval.Point, x, y float64) []chartval.Point {
	points := make([]chartval.Point, len(offsets))
	for i, o := range offsets {
		points[i] = chartval.Point{X: x + o.X, Y: y + o.Y}
	}
	return points
}

func (c RuleConfig) builder() (Builder, error) {
	kind, ok := KindFromString(c.Kind)
	if !ok {
		return nil, chartval.NewConfigurationError("kind", c.Kind, chartval.ErrInvalidShapeRule)
	}
	class := c.Class
	switch kind {
	case KindCircle:
		if !(c.Radius > 0) {
			return nil, chartval.NewConfigurationError("radius", c.Radius, chartval.ErrInvalidShapeRule)
		}
		radius := c.Radius
		return func(x, y float64, seriesIndex int) Primitive {
			return Circle{Center: chartval.Point{X: x, Y: y}, Radius: radius, Class: expandClass(class, seriesIndex)}
		}, nil
	case KindPolygon:
		if len(c.Points) < 3 {
			return nil, chartval.NewConfigurationError("points", len(c.Points),
				fmt.Errorf("%w: a polygon needs at least 3 points", chartval.ErrInvalidShapeRule))
		}
		offsets := append([]chartval.Point(nil), c.Points...)
		return func(x, y float64, seriesIndex int) Primitive {
			return Polygon{Points: translate(offsets, x, y), Class: expandClass(class, seriesIndex)}
		}, nil
	case KindLine:
		if len(c.Points) != 2 {
			return nil, chartval.NewConfigurationError("points", len(c.Points),
				fmt.Errorf("%w: a line needs exactly 2 points", chartval.ErrInvalidShapeRule))
		}
		from, to := c.Points[0], c.Points[1]
		return func(x, y float64, seriesIndex int) Primitive {
			return Line{
				From:  chartval.Point{X: x + from.X, Y: y + from.Y},
				To:    chartval.Point{X: x + to.X, Y: y + to.Y},
				Class: expandClass(class, seriesIndex),
			}
		}, nil
	case KindRect:
		if !(c.Width > 0) || !(c.Height > 0) {
			return nil, chartval.NewConfigurationError("size", fmt.Sprintf("%vx%v", c.Width, c.Height), chartval.ErrInvalidShapeRule)
		}
		w, h := c.Width, c.Height
		return func(x, y float64, seriesIndex int) Primitive {
			return Rect{Min: chartval.Point{X: x - w/2, Y: y - h/2}, Width: w, Height: h, Class: expandClass(class, seriesIndex)}
		}, nil
	default:
		panic("unsupported primitive kind")
	}
}

// Compile turns the declaration into a rule.
func (c RuleConfig) Compile() (Rule, error) {
	mode, err := ModeFromString(c.Mode)
	if err != nil {
		return Rule{}, err
	}
	build, err := c.builder()
	if err != nil {
		return Rule{}, err
	}
	return NewRule(c.Pattern, mode, build)
}

func CompileRules(configs []RuleConfig) ([]Rule, error) {
	rules := make([]Rule, 0, len(configs))
	for i, c := range configs {
		r, err := c.Compile()
		if err != nil {
			return nil, fmt.Errorf("shape rule %d: %w", i, err)
		}
		rules = append(rules, r)
	}
	return rules, nil
}
