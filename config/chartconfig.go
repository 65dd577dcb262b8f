// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"errors"
	"fmt"
	"svggraph/axis"
	"svggraph/chartval"
	"svggraph/mapper"
	"svggraph/popup"
	"svggraph/shape"
	"svggraph/timeaxis"
	"time"

	"github.com/barkimedes/go-deepcopy"
)

const (
	DefaultWidth        = 500.0
	DefaultHeight       = 300.0
	DefaultFontSize     = 12.0
	DefaultXLabelFormat = "%Y-%m-%d %H:%M:%S"
)

// AxisConfig holds the optional scale settings of one axis.
type AxisConfig struct {
	Min       *float64 `yaml:",omitempty"`
	Max       *float64 `yaml:",omitempty"`
	Step      *float64 `yaml:",omitempty"`
	Divisions *int     `yaml:",omitempty"`
	Integers  bool     `yaml:",omitempty"`
	// Padding above a single repeated value.
	ZeroRangePad float64 `yaml:",omitempty"`
}

type PopupConfig struct {
	Enabled bool `yaml:",omitempty"`
	Round   bool
	Radius  float64 `yaml:",omitempty"`
	// strftime format of time series popups.
	Format string `yaml:",omitempty"`
}

type BarConfig struct {
	Stack        string `yaml:",omitempty"`
	Gap          bool
	ShowValues   bool   `yaml:",omitempty"`
	ShowPercent  bool   `yaml:",omitempty"`
	NumberFormat string `yaml:",omitempty"`
}

type TimeConfig struct {
	// Timescale divisions, e.g. "1 month" or "6 hours".
	Divisions string `yaml:",omitempty"`
	// strptime template of time values in the data file.
	Template     string `yaml:",omitempty"`
	XLabelFormat string `yaml:",omitempty"`
	Location     string `yaml:",omitempty"`
	// Optional x range, written like the time values of the data file.
	Min string `yaml:",omitempty"`
	Max string `yaml:",omitempty"`
}

type ChartConfig struct {
	Width     float64 `yaml:",omitempty"`
	Height    float64 `yaml:",omitempty"`
	FontSize  float64 `yaml:",omitempty"`
	X         AxisConfig
	Y         AxisConfig
	Bar       BarConfig
	Time      TimeConfig
	Popup     PopupConfig
	ShowLines bool
	Shapes    []shape.RuleConfig `yaml:",omitempty"`
}

func NewChartConfig() ChartConfig {
	c := ChartConfig{
		Bar:       BarConfig{Gap: true},
		Popup:     PopupConfig{Round: true},
		ShowLines: true,
	}
	c.RestoreDefaults()
	return c
}

func (c *ChartConfig) deepCopy() ChartConfig {
	d, err := deepcopy.Anything(c)
	if err != nil {
		panic(err)
	}
	return *d.(*ChartConfig)
}

func (c *ChartConfig) Sanitize() {
	if c.Width < 0 {
		c.Width = 0
	}
	if c.Height < 0 {
		c.Height = 0
	}
	if c.Popup.Radius < 0 {
		c.Popup.Radius = 0
	}
	c.RestoreDefaults()
}

// We do not want to store default formats and sizes in the configuration file,
// so that changing a default also changes existing configurations.
func (c *ChartConfig) RemoveDefaults() {
	if c.Width == DefaultWidth {
		c.Width = 0
	}
	if c.Height == DefaultHeight {
		c.Height = 0
	}
	if c.FontSize == DefaultFontSize {
		c.FontSize = 0
	}
	if c.Popup.Radius == shape.DefaultRadius {
		c.Popup.Radius = 0
	}
	if c.Popup.Format == popup.DefaultTimeFormat {
		c.Popup.Format = ""
	}
	if c.Bar.NumberFormat == popup.DefaultNumberFormat {
		c.Bar.NumberFormat = ""
	}
	if c.Time.XLabelFormat == DefaultXLabelFormat {
		c.Time.XLabelFormat = ""
	}
}

// Restore default values which are not stored in the configuration file.
func (c *ChartConfig) RestoreDefaults() {
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.FontSize == 0 {
		c.FontSize = DefaultFontSize
	}
	if c.Popup.Radius == 0 {
		c.Popup.Radius = shape.DefaultRadius
	}
	if len(c.Popup.Format) == 0 {
		c.Popup.Format = popup.DefaultTimeFormat
	}
	if len(c.Bar.NumberFormat) == 0 {
		c.Bar.NumberFormat = popup.DefaultNumberFormat
	}
	if len(c.Time.XLabelFormat) == 0 {
		c.Time.XLabelFormat = DefaultXLabelFormat
	}
}

// Validate checks all settings which can be checked without data.
func (c *ChartConfig) Validate() error {
	tmp := *c
	return errors.Join(tmp.Repair()...)
}

// Repair resets every invalid setting to its default and drops invalid shape rules.
// It returns one error per repaired setting.
func (c *ChartConfig) Repair() []error {
	var errs []error
	for _, a := range []*AxisConfig{&c.X, &c.Y} {
		if a.Step != nil && !(*a.Step > 0) {
			errs = append(errs, chartval.NewConfigurationError("step", *a.Step, chartval.ErrInvalidStep))
			a.Step = nil
		}
		if a.Divisions != nil && *a.Divisions <= 0 {
			errs = append(errs, chartval.NewConfigurationError("divisions", *a.Divisions, chartval.ErrInvalidDivisions))
			a.Divisions = nil
		}
	}
	if _, err := c.StackMode(); err != nil {
		errs = append(errs, err)
		c.Bar.Stack = ""
	}
	if _, err := c.Division(); err != nil {
		errs = append(errs, err)
		c.Time.Divisions = ""
	}
	if _, err := c.TimeLocation(); err != nil {
		errs = append(errs, err)
		c.Time.Location = ""
	}
	for _, b := range []struct {
		field string
		value *string
	}{{"timeMin", &c.Time.Min}, {"timeMax", &c.Time.Max}} {
		if _, err := c.timeBound(b.field, *b.value); err != nil {
			errs = append(errs, err)
			*b.value = ""
		}
	}
	if _, _, err := c.TimeBounds(); err != nil {
		errs = append(errs, err)
		c.Time.Max = ""
	}
	var kept []shape.RuleConfig
	for i, rc := range c.Shapes {
		if _, err := rc.Compile(); err != nil {
			errs = append(errs, fmt.Errorf("shape rule %d: %w", i, err))
			continue
		}
		kept = append(kept, rc)
	}
	if len(kept) != len(c.Shapes) {
		c.Shapes = kept
	}
	return errs
}

func (a AxisConfig) Overrides() axis.Overrides {
	return axis.Overrides{
		Min:          a.Min,
		Max:          a.Max,
		Step:         a.Step,
		Divisions:    a.Divisions,
		Integers:     a.Integers,
		ZeroRangePad: a.ZeroRangePad,
	}
}

func (c *ChartConfig) StackMode() (mapper.StackMode, error) {
	return mapper.StackModeFromString(c.Bar.Stack)
}

// Division returns nil if no timescale divisions are configured.
func (c *ChartConfig) Division() (*timeaxis.Division, error) {
	if c.Time.Divisions == "" {
		return nil, nil
	}
	d, err := timeaxis.ParseDivision(c.Time.Divisions)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *ChartConfig) TimeLocation() (*time.Location, error) {
	if c.Time.Location == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Time.Location)
	if err != nil {
		return nil, chartval.NewConfigurationError("location", c.Time.Location, err)
	}
	return loc, nil
}

// TimeBounds returns the configured x range of time series in epoch seconds.
// Unset bounds are nil.
func (c *ChartConfig) TimeBounds() (min, max *float64, err error) {
	if min, err = c.timeBound("timeMin", c.Time.Min); err != nil {
		return nil, nil, err
	}
	if max, err = c.timeBound("timeMax", c.Time.Max); err != nil {
		return nil, nil, err
	}
	if min != nil && max != nil && *min > *max {
		return nil, nil, chartval.NewConfigurationError("timeMax", c.Time.Max, chartval.ErrInvalidTimescale)
	}
	return min, max, nil
}

func (c *ChartConfig) timeBound(field, value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}
	loc, err := c.TimeLocation()
	if err != nil {
		loc = time.UTC
	}
	secs, err := timeaxis.ToEpochSecondsIn(value, c.Time.Template, loc)
	if err != nil {
		return nil, chartval.NewConfigurationError(field, value, err)
	}
	v := float64(secs)
	return &v, nil
}

func (c *ChartConfig) Formatter() (popup.Formatter, error) {
	loc, err := c.TimeLocation()
	if err != nil {
		return popup.Formatter{}, err
	}
	return popup.Formatter{
		Round:        c.Popup.Round,
		TimeFormat:   c.Popup.Format,
		Location:     loc,
		NumberFormat: c.Bar.NumberFormat,
	}, nil
}

// RuleSet returns a new rule set holding the configured shape rules.
func (c *ChartConfig) RuleSet() (*shape.RuleSet, error) {
	s := shape.NewRuleSet()
	if err := c.ConfigureRuleSet(s); err != nil {
		return nil, err
	}
	return s, nil
}

// ConfigureRuleSet replaces the rules and the radius of an existing rule set.
func (c *ChartConfig) ConfigureRuleSet(s *shape.RuleSet) error {
	rules, err := shape.CompileRules(c.Shapes)
	if err != nil {
		return err
	}
	radius := c.Popup.Radius
	if radius == 0 {
		radius = shape.DefaultRadius
	}
	if err := s.SetRadius(radius); err != nil {
		return err
	}
	return s.Configure(rules...)
}
