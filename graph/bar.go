// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package graph

import (
	"fmt"
	"log"
	"svggraph/axis"
	"svggraph/chartval"
	"svggraph/config"
	"svggraph/mapper"
)

// BarHorizontal lays out horizontal bars, one field (category) per row.
// The first field is drawn at the bottom.
type BarHorizontal struct {
	cfg    config.ChartConfig
	fields []string
	series []chartval.Series
	logger *log.Logger
}

func NewBarHorizontal(cfg config.ChartConfig, fields []string, logger *log.Logger) *BarHorizontal {
	return &BarHorizontal{
		cfg:    cfg,
		fields: fields,
		logger: defaultLogger(logger),
	}
}

func (g *BarHorizontal) AddData(s chartval.Series) error {
	if len(s.Values) != len(g.fields) {
		return chartval.NewConfigurationError("values", len(s.Values),
			fmt.Errorf("%w: series %q has %d values for %d fields", chartval.ErrDatasetShape, s.Title, len(s.Values), len(g.fields)))
	}
	g.series = append(g.series, s)
	return nil
}

func (g *BarHorizontal) Layout() (Layout, error) {
	if len(g.fields) == 0 || len(g.series) == 0 {
		return Layout{}, chartval.NewConfigurationError("data", len(g.series),
			fmt.Errorf("%w: bar chart without fields or series", chartval.ErrDatasetShape))
	}
	stack, err := g.cfg.StackMode()
	if err != nil {
		return Layout{}, err
	}
	f, err := g.cfg.Formatter()
	if err != nil {
		return Layout{}, err
	}
	values := chartval.Values(g.series)
	o := g.cfg.X.Overrides()
	r, err := axis.Compute(values, o)
	if err != nil {
		return Layout{}, err
	}
	warnOutOfRange(g.logger, "value", o, values)

	width, height := g.cfg.Width, g.cfg.Height
	fieldThickness := height / float64(len(g.fields))
	l := Layout{
		Kind:   "bar",
		Width:  width,
		Height: height,
	}
	bl := mapper.BarLayout{
		Range:          r,
		UnitSpan:       r.UnitSpan(width),
		FieldThickness: fieldThickness,
		Stack:          stack,
		SeriesCount:    len(g.series),
		BarGap:         g.cfg.Bar.Gap,
	}

	l.X = Axis{Range: r}
	for _, v := range r.Labels() {
		l.X.Labels = append(l.X.Labels, chartval.FormatTick(v, r.Minimum, r.Step))
		l.X.Positions = append(l.X.Positions, (v-r.Minimum)/r.Step*bl.UnitSpan)
	}
	l.Y = Axis{Labels: g.fields}
	for i := range g.fields {
		l.Y.Positions = append(l.Y.Positions, height-fieldThickness*float64(i)-fieldThickness/2)
	}

	for i := range g.fields {
		total := chartval.FieldTotal(g.series, i)
		for j, s := range g.series {
			value := s.Values[i]
			geo := bl.Map(value, j)
			top := height - fieldThickness*float64(i+1) + geo.Band.Offset
			b := Bar{
				Field:    i,
				Series:   j,
				Value:    value,
				Geometry: geo,
				Top:      top,
				Class:    FillClass(j),
				Label:    f.BarLabel(value, total, g.cfg.Bar.ShowValues, g.cfg.Bar.ShowPercent),
				LabelAnchor: chartval.Point{
					X: geo.Offset + geo.Length + 5,
					Y: top + geo.Band.Thickness/2 + g.cfg.FontSize/2,
				},
			}
			if g.cfg.Popup.Enabled {
				b.Popup = f.BarPopup(value, total, true, g.cfg.Bar.ShowPercent)
			}
			l.Bars = append(l.Bars, b)
		}
	}
	for _, s := range g.series {
		l.Titles = append(l.Titles, s.Title)
	}
	return l, nil
}
