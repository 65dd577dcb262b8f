// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package timeaxis

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"svggraph/chartval"
	"time"

	"github.com/araddon/dateparse"
	"github.com/itchyny/timefmt-go"
)

// ToEpochSeconds normalises a time value to seconds since the epoch, see ToEpochSecondsIn.
func ToEpochSeconds(v any, template string) (int64, error) {
	return ToEpochSecondsIn(v, template, time.UTC)
}

// ToEpochSecondsIn normalises time.Time values, integers (already epoch seconds) and strings.
// Strings are parsed with the strftime style template if given, otherwise the format is
// guessed. Strings without zone information are interpreted in loc.
func ToEpochSecondsIn(v any, template string, loc *time.Location) (int64, error) {
	if loc == nil {
		loc = time.UTC
	}
	switch t := v.(type) {
	case time.Time:
		return t.Unix(), nil
	case *time.Time:
		if t == nil {
			break
		}
		return t.Unix(), nil
	case int:
		return int64(t), nil
	case int32:
		return int64(t), nil
	case int64:
		return t, nil
	case uint32:
		return int64(t), nil
	case float64:
		// Numbers decoded from yaml or json may arrive as float.
		if t == math.Trunc(t) && !math.IsInf(t, 0) {
			return int64(t), nil
		}
	case string:
		return parseString(t, template, loc)
	}
	return 0, &chartval.ParseError{Input: v, Template: template, Err: chartval.ErrUnparsableTime}
}

func parseString(s string, template string, loc *time.Location) (int64, error) {
	s = strings.TrimSpace(s)
	var t time.Time
	var err error
	switch template {
	case "":
		t, err = dateparse.ParseIn(s, loc)
	case "%s":
		var sec int64
		if sec, err = strconv.ParseInt(s, 10, 64); err == nil {
			return sec, nil
		}
	default:
		t, err = timefmt.ParseInLocation(s, template, loc)
	}
	if err != nil {
		return 0, &chartval.ParseError{Input: s, Template: template, Err: fmt.Errorf("%w: %v", chartval.ErrUnparsableTime, err)}
	}
	return t.Unix(), nil
}

// IsParseError reports whether err was caused by unparsable time input.
func IsParseError(err error) bool {
	var p *chartval.ParseError
	return errors.As(err, &p)
}
