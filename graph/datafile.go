// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package graph

import (
	"fmt"
	"log"
	"os"
	"svggraph/chartval"
	"svggraph/config"
	"svggraph/shape"

	"gopkg.in/yaml.v3"
)

// PlotData is a series of [x0, y0, x1, y1, ...].
type PlotData struct {
	Title        string    `yaml:"title,omitempty"`
	Data         []float64 `yaml:"data"`
	Descriptions []string  `yaml:"descriptions,omitempty"`
	Shapes       []string  `yaml:"shapes,omitempty"`
}

// DataFile holds the data of one chart. Kind is "bar", "plot" or "timeseries".
// Shapes are rules of this chart only, tried after the configured rules.
type DataFile struct {
	Kind       string             `yaml:"kind"`
	Fields     []string           `yaml:"fields,omitempty"`
	Bars       []chartval.Series  `yaml:"bars,omitempty"`
	Plots      []PlotData         `yaml:"plots,omitempty"`
	TimeSeries []TimeSeriesData   `yaml:"timeseries,omitempty"`
	Shapes     []shape.RuleConfig `yaml:"shapes,omitempty"`
}

func ReadDataFile(fileName string) (DataFile, error) {
	var d DataFile
	file, err := os.ReadFile(fileName)
	if err != nil {
		return d, fmt.Errorf("failed to read data file: %w", err)
	}
	if err := yaml.Unmarshal(file, &d); err != nil {
		return d, fmt.Errorf("failed to parse data file: %w", err)
	}
	return d, nil
}

// Build computes the layout of a chart. Shape rules are taken from rules,
// which is owned by the calling render session.
func Build(cfg config.ChartConfig, d DataFile, rules *shape.RuleSet, logger *log.Logger) (Layout, error) {
	switch d.Kind {
	case "bar":
		g := NewBarHorizontal(cfg, d.Fields, logger)
		for _, s := range d.Bars {
			if err := g.AddData(s); err != nil {
				return Layout{}, err
			}
		}
		return g.Layout()
	case "plot":
		g := NewPlot(cfg, rules, logger)
		for _, s := range d.Plots {
			if err := g.AddFlat(s.Title, s.Data, s.Descriptions, s.Shapes); err != nil {
				return Layout{}, err
			}
		}
		return g.Layout()
	case "timeseries":
		g, err := NewTimeSeries(cfg, rules, logger)
		if err != nil {
			return Layout{}, err
		}
		for _, s := range d.TimeSeries {
			if err := g.AddData(s); err != nil {
				return Layout{}, err
			}
		}
		return g.Layout()
	default:
		return Layout{}, chartval.NewConfigurationError("kind", d.Kind,
			fmt.Errorf("%w: unknown chart kind", chartval.ErrDatasetShape))
	}
}
