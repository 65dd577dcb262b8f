// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package graph

import (
	"log"
	"svggraph/axis"
	"svggraph/chartval"
	"svggraph/config"
	"svggraph/mapper"
	"svggraph/shape"
)

// Plot lays out xy scatter and line plots. Points of each series are sorted by x.
type Plot struct {
	cfg      config.ChartConfig
	rules    *shape.RuleSet
	rulesErr error
	series   []chartval.PlotSeries
	logger   *log.Logger
}

// NewPlot creates a plot using the shape rules of one render session.
// If rules is nil, the shape rules of cfg are used. A configuration error
// of these rules is returned by Layout.
func NewPlot(cfg config.ChartConfig, rules *shape.RuleSet, logger *log.Logger) *Plot {
	var err error
	if rules == nil {
		if rules, err = cfg.RuleSet(); err != nil {
			rules = shape.NewRuleSet()
		}
	}
	return &Plot{
		cfg:      cfg,
		rules:    rules,
		rulesErr: err,
		logger:   defaultLogger(logger),
	}
}

func (g *Plot) AddData(s chartval.PlotSeries) error {
	if err := s.Validate(); err != nil {
		return err
	}
	g.series = append(g.series, s.Sorted())
	return nil
}

// AddFlat adds a series given as [x0, y0, x1, y1, ...].
func (g *Plot) AddFlat(title string, values []float64, descriptions, shapes []string) error {
	points, err := chartval.PairsFromFlat(values)
	if err != nil {
		return err
	}
	return g.AddData(chartval.PlotSeries{
		Title:        title,
		Points:       points,
		Descriptions: descriptions,
		Shapes:       shapes,
	})
}

func (g *Plot) ranges() (xr, yr axis.AxisRange, err error) {
	if g.rulesErr != nil {
		err = g.rulesErr
		return
	}
	xs, ys := chartval.XValues(g.series), chartval.YValues(g.series)
	xo, yo := g.cfg.X.Overrides(), g.cfg.Y.Overrides()
	if xr, err = axis.Compute(xs, xo); err != nil {
		return
	}
	if yr, err = axis.Compute(ys, yo); err != nil {
		return
	}
	warnOutOfRange(g.logger, "x", xo, xs)
	warnOutOfRange(g.logger, "y", yo, ys)
	return
}

func (g *Plot) Layout() (Layout, error) {
	xr, yr, err := g.ranges()
	if err != nil {
		return Layout{}, err
	}
	f, err := g.cfg.Formatter()
	if err != nil {
		return Layout{}, err
	}
	proj := mapper.NewProjection(xr, yr, g.cfg.Width, g.cfg.Height)

	l := Layout{
		Kind:   "plot",
		Width:  g.cfg.Width,
		Height: g.cfg.Height,
		X:      Axis{Range: xr, Ticks: xr.Ticks()},
		Y:      Axis{Range: yr, Ticks: yr.Ticks()},
	}
	l.X.Labels = numericLabels(l.X.Ticks, xr)
	for _, v := range l.X.Ticks {
		l.X.Positions = append(l.X.Positions, proj.X(v))
	}
	l.Y.Labels = numericLabels(l.Y.Ticks, yr)
	for _, v := range l.Y.Ticks {
		l.Y.Positions = append(l.Y.Positions, proj.Y(v))
	}
	err = g.layoutPoints(&l, proj, func(v chartval.XY, desc string) (string, error) {
		return f.Pair(v.X, v.Y, desc), nil
	})
	return l, err
}

type popupFunc func(v chartval.XY, description string) (string, error)

func (g *Plot) layoutPoints(l *Layout, proj mapper.Projection, text popupFunc) error {
	for i, s := range g.series {
		l.Titles = append(l.Titles, s.Title)
		line := Line{Series: i, Class: LineClass(i)}
		for j, v := range s.Points {
			pos := proj.Point(v)
			p := Point{
				Series:     i,
				Index:      j,
				Value:      v,
				Position:   pos,
				Primitives: g.rules.Dispatch(pos.X, pos.Y, i, chartval.At(s.Shapes, j)),
			}
			if g.cfg.Popup.Enabled {
				t, err := text(v, chartval.At(s.Descriptions, j))
				if err != nil {
					return err
				}
				p.Popup = t
			}
			l.Points = append(l.Points, p)
			line.Points = append(line.Points, pos)
		}
		if g.cfg.ShowLines && len(line.Points) > 1 {
			line.Path = Path(line.Points)
			l.Lines = append(l.Lines, line)
		}
	}
	return nil
}
