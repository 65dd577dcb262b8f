// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package graph

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"svggraph/chartval"
	"svggraph/config"
	"svggraph/mapper"
	"svggraph/shape"
	"svggraph/timeaxis"
	"time"
)

// TimeSeriesData is a series of [time0, value0, time1, value1, ...].
// Times may be anything accepted by timeaxis.ToEpochSeconds.
type TimeSeriesData struct {
	Title        string   `yaml:"title,omitempty"`
	Data         []any    `yaml:"data"`
	Descriptions []string `yaml:"descriptions,omitempty"`
	Shapes       []string `yaml:"shapes,omitempty"`
}

// TimeSeries is a plot with a time x axis.
type TimeSeries struct {
	plot     *Plot
	location *time.Location
	division *timeaxis.Division
}

func NewTimeSeries(cfg config.ChartConfig, rules *shape.RuleSet, logger *log.Logger) (*TimeSeries, error) {
	loc, err := cfg.TimeLocation()
	if err != nil {
		return nil, err
	}
	div, err := cfg.Division()
	if err != nil {
		return nil, err
	}
	min, max, err := cfg.TimeBounds()
	if err != nil {
		return nil, err
	}
	if min != nil {
		cfg.X.Min = min
	}
	if max != nil {
		cfg.X.Max = max
	}
	return &TimeSeries{
		plot:     NewPlot(cfg, rules, logger),
		location: loc,
		division: div,
	}, nil
}

func (g *TimeSeries) AddData(d TimeSeriesData) error {
	if len(d.Data)%2 != 0 {
		return chartval.NewConfigurationError("data", len(d.Data),
			fmt.Errorf("%w: odd number of time series values", chartval.ErrDatasetShape))
	}
	points := make([]chartval.XY, 0, len(d.Data)/2)
	for i := 0; i < len(d.Data); i += 2 {
		x, err := timeaxis.ToEpochSecondsIn(d.Data[i], g.plot.cfg.Time.Template, g.location)
		if err != nil {
			return err
		}
		y, err := toFloat(d.Data[i+1])
		if err != nil {
			return err
		}
		points = append(points, chartval.XY{X: float64(x), Y: y})
	}
	return g.plot.AddData(chartval.PlotSeries{
		Title:        d.Title,
		Points:       points,
		Descriptions: d.Descriptions,
		Shapes:       d.Shapes,
	})
}

func (g *TimeSeries) Layout() (Layout, error) {
	xr, yr, err := g.plot.ranges()
	if err != nil {
		return Layout{}, err
	}
	cfg := &g.plot.cfg
	f, err := cfg.Formatter()
	if err != nil {
		return Layout{}, err
	}
	ticks, step, err := timeaxis.NewBucketizer(g.location).Ticks(
		int64(math.Floor(xr.Minimum)), int64(math.Ceil(xr.Maximum)), g.division, xr.Step)
	if err != nil {
		return Layout{}, err
	}
	xr.Step = step
	xr.Divisions = int(math.Ceil(xr.Span()/step - chartval.NearZero))
	labels, err := ticks.Labels(cfg.Time.XLabelFormat, g.location)
	if err != nil {
		return Layout{}, err
	}
	proj := mapper.NewProjection(xr, yr, cfg.Width, cfg.Height)

	l := Layout{
		Kind:   "timeseries",
		Width:  cfg.Width,
		Height: cfg.Height,
		X:      Axis{Range: xr, Labels: labels},
		Y:      Axis{Range: yr, Ticks: yr.Ticks()},
	}
	for _, t := range ticks {
		l.X.Ticks = append(l.X.Ticks, float64(t))
		l.X.Positions = append(l.X.Positions, proj.X(float64(t)))
	}
	l.Y.Labels = numericLabels(l.Y.Ticks, yr)
	for _, v := range l.Y.Ticks {
		l.Y.Positions = append(l.Y.Positions, proj.Y(v))
	}
	err = g.plot.layoutPoints(&l, proj, func(v chartval.XY, desc string) (string, error) {
		return f.TimePair(int64(v.X), v.Y, desc)
	})
	return l, err
}

func toFloat(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case int:
		return float64(t), nil
	case int32:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case uint64:
		return float64(t), nil
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err == nil {
			return f, nil
		}
	}
	return 0, chartval.NewConfigurationError("data", v, fmt.Errorf("%w: value is not a number", chartval.ErrDatasetShape))
}
