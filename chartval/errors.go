// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartval

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidStep      = errors.New("scale step must be greater than zero")
	ErrInvalidDivisions = errors.New("scale division count must be greater than zero")
	ErrInvalidTimescale = errors.New("invalid timescale division")
	ErrInvalidShapeRule = errors.New("invalid shape rule")
	ErrInvalidStackMode = errors.New("invalid stack mode")
	ErrDatasetShape     = errors.New("invalid dataset shape")
	ErrUnparsableTime   = errors.New("unparsable time")
)

// ConfigurationError reports an invalid scale, division, timescale or shape setting.
// It is returned before any layout is computed.
type ConfigurationError struct {
	Field string
	Value any
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error in %s (%v): %v", e.Field, e.Value, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func NewConfigurationError(field string, value any, err error) *ConfigurationError {
	return &ConfigurationError{
		Field: field,
		Value: value,
		Err:   err,
	}
}

// ParseError reports temporal input which could not be normalised to epoch seconds.
type ParseError struct {
	Input    any
	Template string
	Err      error
}

func (e *ParseError) Error() string {
	if e.Template != "" {
		return fmt.Sprintf("can not parse time %#v with template %q: %v", e.Input, e.Template, e.Err)
	}
	return fmt.Sprintf("can not parse time %#v: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
