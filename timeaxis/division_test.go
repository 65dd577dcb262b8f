// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package timeaxis

import (
	"svggraph/chartval"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDivision(t *testing.T) {
	d, err := ParseDivision("2 weeks")
	assert.NoError(t, err)
	assert.Equal(t, Division{Amount: 2, Unit: UnitWeek}, d)

	d, err = ParseDivision("1 month")
	assert.NoError(t, err)
	assert.Equal(t, Division{Amount: 1, Unit: UnitMonth}, d)

	d, err = ParseDivision(" 5 Years ")
	assert.NoError(t, err)
	assert.Equal(t, Division{Amount: 5, Unit: UnitYear}, d)

	d, err = ParseDivision("3")
	assert.NoError(t, err)
	assert.Equal(t, Division{Amount: 3, Unit: UnitDay}, d)

	d, err = ParseDivision("90seconds")
	assert.NoError(t, err)
	assert.Equal(t, Division{Amount: 90, Unit: UnitSecond}, d)
}

func TestParseDivisionInvalid(t *testing.T) {
	for _, s := range []string{"", "abc", "0 days", "0", "10 fortnights", "-1 day", "1.5 hours", "10s", "10 s", "3ss"} {
		_, err := ParseDivision(s)
		assert.ErrorIs(t, err, chartval.ErrInvalidTimescale, s)
	}
}

func TestDivisionString(t *testing.T) {
	assert.Equal(t, "1 month", Division{Amount: 1, Unit: UnitMonth}.String())
	assert.Equal(t, "3 hours", Division{Amount: 3, Unit: UnitHour}.String())
}

func TestNominalStep(t *testing.T) {
	assert.Equal(t, float64(5259600), Division{Amount: 2, Unit: UnitMonth}.NominalStep())
	assert.Equal(t, float64(31557600), Division{Amount: 1, Unit: UnitYear}.NominalStep())
	assert.Equal(t, float64(1209600), Division{Amount: 2, Unit: UnitWeek}.NominalStep())
}

func TestAddMonthsClampsDay(t *testing.T) {
	jan31 := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	assert.True(t, addMonths(jan31, 1).Equal(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)))
	assert.True(t, addMonths(jan31, 13).Equal(time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)))
	assert.True(t, addMonths(jan31, 3).Equal(time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)))
	assert.True(t, addMonths(jan31, -2).Equal(time.Date(2023, 11, 30, 0, 0, 0, 0, time.UTC)))
	assert.True(t, addMonths(jan31, -13).Equal(time.Date(2022, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestAddMonthsCarriesIntoYear(t *testing.T) {
	march := time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC)
	n := addMonths(march, 11)
	assert.Equal(t, 2025, n.Year())
	assert.Equal(t, time.February, n.Month())
	assert.Equal(t, 15, n.Day())
	assert.Equal(t, 8, n.Hour())
	assert.Equal(t, 30, n.Minute())
}

func TestAddMonthsKeepsClockTimeOverDST(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	assert.NoError(t, err)
	dst := time.Date(2022, 10, 15, 10, 0, 0, 0, loc)
	assert.True(t, dst.IsDST())
	n := addMonths(dst, 1)
	assert.False(t, n.IsDST())
	assert.Equal(t, 10, n.Hour())
	assert.Equal(t, 15, n.Day())
}

func TestAddToYear(t *testing.T) {
	leap := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	d := Division{Amount: 1, Unit: UnitYear}
	assert.True(t, d.AddTo(leap, 1).Equal(time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)))
	assert.True(t, d.AddTo(leap, 4).Equal(time.Date(2028, 2, 29, 0, 0, 0, 0, time.UTC)))
}
