// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartval

import (
	"math"
	"strconv"

	"github.com/ericlagergren/decimal"
)

const NearZero = 0.000001

// MaxTickScale limits the number of fractional digits of a tick value.
const MaxTickScale = 15

// The builtin decimal.Big conversion from float64 is an "exact" conversion, and useless for our cases.
// Therefore, convert using string conversion, even though this requires memory allocation.
// See also https://github.com/ericlagergren/decimal/issues/142

// Convert float to string and then to decimal.
func ConvertFloatToDecimal(v float64, bitSize int) *decimal.Big {
	d, _ := new(decimal.Big).SetString(strconv.FormatFloat(v, 'f', -1, bitSize))
	return d
}

// FormatValue returns the shortest plain decimal text of v, e.g. "8.55", "18" or "0.0000001".
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// TickScale is the number of fractional digits needed to write origin + n*step exactly.
func TickScale(origin, step float64) int {
	if math.IsNaN(origin) || math.IsInf(origin, 0) || math.IsNaN(step) || math.IsInf(step, 0) {
		return MaxTickScale
	}
	scale := ConvertFloatToDecimal(origin, 64).Scale()
	if s := ConvertFloatToDecimal(step, 64).Scale(); s > scale {
		scale = s
	}
	if scale < 0 {
		scale = 0
	}
	if scale > MaxTickScale {
		scale = MaxTickScale
	}
	return scale
}

// RoundTick removes the binary rounding noise of a tick value computed as
// origin + n*step, e.g. 0.30000000000000004 becomes 0.3 for step 0.1.
func RoundTick(v, origin, step float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	d := ConvertFloatToDecimal(v, 64)
	d.Quantize(TickScale(origin, step))
	r, ok := d.Float64()
	if !ok {
		return v
	}
	return r
}

// FormatTick is FormatValue of the rounded tick value.
func FormatTick(v, origin, step float64) string {
	return FormatValue(RoundTick(v, origin, step))
}

// CalculatePercentage returns 100 * part / total, or zero if total is zero.
func CalculatePercentage(part, total *decimal.Big) *decimal.Big {
	percentage := new(decimal.Big)
	if total.Sign() != 0 {
		percentage.Quo(part, total)
		percentage.Mul(percentage, decimal.New(100, 0))
	}
	return percentage
}

// RoundHalfAway rounds to the nearest integer, halves away from zero.
func RoundHalfAway(d *decimal.Big) int64 {
	r := new(decimal.Big).Copy(d)
	r.Context.RoundingMode = decimal.ToNearestAway
	r.Quantize(0)
	i, _ := r.Int64()
	return i
}

// TruncateHundredths scales v by 100, truncates towards zero and floor-divides
// the result by 100. This is not rounding: 8.55 becomes 8 and -8.55 becomes -9.
func TruncateHundredths(v float64) int64 {
	scaled := int64(v * 100)
	q := scaled / 100
	if scaled%100 != 0 && scaled < 0 {
		q--
	}
	return q
}

func IndexOf[T comparable](s []T, e T) int {
	for i, v := range s {
		if v == e {
			return i
		}
	}
	return -1
}

// At returns s[i], or the zero value if s is too short.
func At[T any](s []T, i int) (v T) {
	if i >= 0 && i < len(s) {
		v = s[i]
	}
	return
}
