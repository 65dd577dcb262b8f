// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package popup

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"svggraph/chartval"
	"time"

	"bitbucket.org/tebeka/strftime"
)

const (
	DefaultTimeFormat   = "%Y-%m-%d %H:%M:%S"
	DefaultNumberFormat = "%.2f"
)

// Formatter creates popup and bar label text.
type Formatter struct {
	// Round truncates popup values to whole numbers.
	Round bool
	// TimeFormat is a strftime format for the x value of time series popups.
	TimeFormat string
	Location   *time.Location
	// NumberFormat is a printf format for bar label values.
	NumberFormat string
}

func NewFormatter() Formatter {
	return Formatter{
		Round:        true,
		TimeFormat:   DefaultTimeFormat,
		Location:     time.UTC,
		NumberFormat: DefaultNumberFormat,
	}
}

// Value formats a single popup value.
func (f Formatter) Value(v float64) string {
	if f.Round {
		return strconv.FormatInt(chartval.TruncateHundredths(v), 10)
	}
	return chartval.FormatValue(v)
}

// Pair returns "(x, y)" or "(x, y, description)".
func (f Formatter) Pair(x, y float64, description string) string {
	parts := []string{f.Value(x), f.Value(y)}
	if description != "" {
		parts = append(parts, description)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// TimePair returns the formatted time, the y value and the description separated by commas.
func (f Formatter) TimePair(x int64, y float64, description string) (string, error) {
	layout := f.TimeFormat
	if layout == "" {
		layout = DefaultTimeFormat
	}
	loc := f.Location
	if loc == nil {
		loc = time.UTC
	}
	ts, err := strftime.Format(layout, time.Unix(x, 0).In(loc))
	if err != nil {
		return "", chartval.NewConfigurationError("popupFormat", layout, err)
	}
	parts := []string{ts, f.Value(y)}
	if description != "" {
		parts = append(parts, description)
	}
	return strings.Join(parts, ", "), nil
}

// Percent returns the share of value in total in whole percent.
func Percent(value, total float64) int64 {
	if total == 0 {
		return 0
	}
	if math.IsNaN(value) || math.IsInf(value, 0) || math.IsNaN(total) || math.IsInf(total, 0) {
		return 0
	}
	return chartval.RoundHalfAway(chartval.CalculatePercentage(
		chartval.ConvertFloatToDecimal(value, 64),
		chartval.ConvertFloatToDecimal(total, 64)))
}

// BarLabel returns the text next to a bar, e.g. "12.50 (25%)".
func (f Formatter) BarLabel(value, total float64, showValue, showPercent bool) string {
	var sb strings.Builder
	if showValue {
		format := f.NumberFormat
		if format == "" {
			format = DefaultNumberFormat
		}
		fmt.Fprintf(&sb, format, value)
	}
	if showPercent {
		fmt.Fprintf(&sb, " (%d%%)", Percent(value, total))
	}
	return sb.String()
}

// BarPopup is the popup text of a bar. The number format does not apply here.
func (f Formatter) BarPopup(value, total float64, showValue, showPercent bool) string {
	var sb strings.Builder
	if showValue {
		sb.WriteString(chartval.FormatValue(value))
	}
	if showPercent && !math.IsNaN(value) {
		fmt.Fprintf(&sb, " (%d%%)", Percent(value, total))
	}
	return sb.String()
}
