// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package timeaxis

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"svggraph/chartval"
	"time"
)

type Unit int32

const (
	UnitSecond Unit = iota
	UnitMinute
	UnitHour
	UnitDay
	UnitWeek
	UnitMonth
	UnitYear
)

const NumUnits = UnitYear + 1

const secondsPerDay = 24 * 60 * 60

// Average lengths used when a single step size is needed for calendar units.
const (
	averageDaysPerYear  = 365.25
	averageDaysPerMonth = averageDaysPerYear / 12
)

var unitNames = [NumUnits]string{
	"second",
	"minute",
	"hour",
	"day",
	"week",
	"month",
	"year",
}

var divisionRegex = regexp.MustCompile(`^\s*(\d+)\s*(?:(second|minute|hour|day|week|month|year)s?)?\s*$`)

func UnitFromString(s string) (Unit, bool) {
	for i, n := range unitNames {
		if n == s {
			return Unit(i), true
		}
	}
	return 0, false
}

func (u Unit) String() string {
	if u < 0 || u >= NumUnits {
		return "unit(" + strconv.Itoa(int(u)) + ")"
	}
	return unitNames[u]
}

// IsCalendar reports whether the unit has a variable length and is stepped by calendar arithmetic.
func (u Unit) IsCalendar() bool {
	return u == UnitMonth || u == UnitYear
}

// Seconds returns the constant length of a fixed unit.
func (u Unit) Seconds() int64 {
	switch u {
	case UnitSecond:
		return 1
	case UnitMinute:
		return 60
	case UnitHour:
		return 60 * 60
	case UnitDay:
		return secondsPerDay
	case UnitWeek:
		return 7 * secondsPerDay
	default:
		panic("unsupported fixed time unit")
	}
}

// NominalSeconds returns the unit length, using average month and year lengths for calendar units.
func (u Unit) NominalSeconds() float64 {
	switch u {
	case UnitMonth:
		return averageDaysPerMonth * secondsPerDay
	case UnitYear:
		return averageDaysPerYear * secondsPerDay
	default:
		return float64(u.Seconds())
	}
}

// Division is a timescale spacing like "2 weeks" or "1 month".
type Division struct {
	Amount int
	Unit   Unit
}

// ParseDivision parses "<amount> <unit>". The unit may be plural, and defaults to "day".
// A zero amount is rejected.
func ParseDivision(s string) (Division, error) {
	m := divisionRegex.FindStringSubmatch(strings.ToLower(s))
	if m == nil {
		return Division{}, chartval.NewConfigurationError("timescaleDivisions", s, chartval.ErrInvalidTimescale)
	}
	amount, err := strconv.Atoi(m[1])
	if err != nil {
		return Division{}, chartval.NewConfigurationError("timescaleDivisions", s, fmt.Errorf("%w: %v", chartval.ErrInvalidTimescale, err))
	}
	if amount == 0 {
		return Division{}, chartval.NewConfigurationError("timescaleDivisions", s, fmt.Errorf("%w: zero amount", chartval.ErrInvalidTimescale))
	}
	d := Division{Amount: amount, Unit: UnitDay}
	if m[2] != "" {
		d.Unit, _ = UnitFromString(m[2])
	}
	return d, nil
}

func (d Division) String() string {
	if d.Amount == 1 {
		return "1 " + d.Unit.String()
	}
	return strconv.Itoa(d.Amount) + " " + d.Unit.String() + "s"
}

// NominalStep returns the step in seconds, averaged for months and years.
func (d Division) NominalStep() float64 {
	return d.Unit.NominalSeconds() * float64(d.Amount)
}

// AddTo returns t moved forward by n divisions. Months and years are added by calendar
// arithmetic, keeping the clock time and clamping the day to the end of the target month.
func (d Division) AddTo(t time.Time, n int) time.Time {
	switch d.Unit {
	case UnitMonth:
		return addMonths(t, n*d.Amount)
	case UnitYear:
		return addMonths(t, n*d.Amount*12)
	default:
		return t.Add(time.Duration(d.Unit.Seconds()*int64(d.Amount)*int64(n)) * time.Second)
	}
}

func addMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	monthIndex := int(m) - 1 + months
	// Carry month overflow into the year, also for negative offsets.
	y += monthIndex / 12
	monthIndex %= 12
	if monthIndex < 0 {
		monthIndex += 12
		y--
	}
	month := time.Month(monthIndex + 1)
	if last := getDaysInMonth(y, month, t.Location()); d > last {
		d = last
	}
	return time.Date(y, month, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func getDaysInMonth(y int, m time.Month, loc *time.Location) int {
	// Day zero of the next month is the last day of this month.
	return time.Date(y, m+1, 0, 0, 0, 0, 0, loc).Day()
}
