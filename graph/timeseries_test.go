// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package graph

import (
	"svggraph/chartval"
	"svggraph/config"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeSeriesMonthTicks(t *testing.T) {
	c := newPlotConfig(t, func(c *config.ChartConfig) {
		c.X.Integers = false
		c.Time.Divisions = "1 month"
		c.Time.XLabelFormat = "%Y-%m-%d"
	})
	g, err := NewTimeSeries(c, nil, nil)
	assert.NoError(t, err)
	assert.NoError(t, g.AddData(TimeSeriesData{
		Title:        "Monthly",
		Data:         []any{"2024-03-31", 2, "2024-01-31", 1, "2024-06-30", 3.5},
		Descriptions: []string{"march", "january"},
	}))
	l, err := g.Layout()
	assert.NoError(t, err)

	assert.Equal(t, "timeseries", l.Kind)
	assert.Equal(t, []string{"2024-01-31", "2024-02-29", "2024-03-31", "2024-04-30", "2024-05-31", "2024-06-30"}, l.X.Labels)
	assert.Equal(t, float64(1706659200), l.X.Ticks[0])
	assert.InDelta(t, 0, l.X.Positions[0], chartval.NearZero)
	assert.Equal(t, 365.25/12*24*60*60, l.X.Range.Step)
	assert.Equal(t, []string{
		"2024-01-31 00:00:00, 1, january",
		"2024-03-31 00:00:00, 2, march",
		"2024-06-30 00:00:00, 3",
	}, popups(l))
	assert.Len(t, l.Lines, 1)
}

func TestTimeSeriesFallbackTicks(t *testing.T) {
	c := newPlotConfig(t, func(c *config.ChartConfig) {
		c.X.Integers = false
		c.Time.XLabelFormat = "%Y"
	})
	g, err := NewTimeSeries(c, nil, nil)
	assert.NoError(t, err)
	assert.NoError(t, g.AddData(TimeSeriesData{Data: []any{0, 1, int64(100), "2"}}))
	l, err := g.Layout()
	assert.NoError(t, err)
	assert.Len(t, l.X.Ticks, 10)
	assert.Equal(t, 10.0, l.X.Ticks[1])
	assert.Equal(t, 94.0, l.X.Ticks[9])
	assert.Equal(t, 10.5, l.X.Range.Step)
}

func TestTimeSeriesTemplate(t *testing.T) {
	c := newPlotConfig(t, func(c *config.ChartConfig) {
		c.Time.Template = "%d/%m/%Y"
		c.Time.Divisions = "1 day"
	})
	g, err := NewTimeSeries(c, nil, nil)
	assert.NoError(t, err)
	assert.NoError(t, g.AddData(TimeSeriesData{Data: []any{"31/1/2024", 1, "2/2/2024", 2}}))
	l, err := g.Layout()
	assert.NoError(t, err)
	assert.Equal(t, []float64{1706659200, 1706745600, 1706832000}, l.X.Ticks)
}

func TestTimeSeriesInvalidData(t *testing.T) {
	g, err := NewTimeSeries(newPlotConfig(t, func(c *config.ChartConfig) {}), nil, nil)
	assert.NoError(t, err)
	assert.ErrorIs(t, g.AddData(TimeSeriesData{Data: []any{"2024-01-31"}}), chartval.ErrDatasetShape)
	assert.ErrorIs(t, g.AddData(TimeSeriesData{Data: []any{"yesterday", 1}}), chartval.ErrUnparsableTime)
	assert.ErrorIs(t, g.AddData(TimeSeriesData{Data: []any{"2024-01-31", "many"}}), chartval.ErrDatasetShape)

	_, err = NewTimeSeries(newPlotConfig(t, func(c *config.ChartConfig) { c.Time.Divisions = "often" }), nil, nil)
	assert.ErrorIs(t, err, chartval.ErrInvalidTimescale)
}

func TestTimeSeriesConfiguredRange(t *testing.T) {
	c := newPlotConfig(t, func(c *config.ChartConfig) {
		c.Time.Template = "%d/%m/%Y"
		c.Time.Divisions = "1 day"
		c.Time.Min = "30/1/2024"
		c.Time.Max = "3/2/2024"
	})
	g, err := NewTimeSeries(c, nil, nil)
	assert.NoError(t, err)
	assert.NoError(t, g.AddData(TimeSeriesData{Data: []any{"31/1/2024", 1, "2/2/2024", 2}}))
	l, err := g.Layout()
	assert.NoError(t, err)
	assert.Equal(t, 1706572800.0, l.X.Range.Minimum)
	assert.Equal(t, 1706918400.0, l.X.Range.Maximum)
	assert.Equal(t, []float64{1706572800, 1706659200, 1706745600, 1706832000, 1706918400}, l.X.Ticks)
	assert.Nil(t, c.X.Min)

	_, err = NewTimeSeries(newPlotConfig(t, func(c *config.ChartConfig) {
		c.Time.Template = "%d/%m/%Y"
		c.Time.Min = "2024-01-30"
	}), nil, nil)
	assert.ErrorIs(t, err, chartval.ErrUnparsableTime)
}
