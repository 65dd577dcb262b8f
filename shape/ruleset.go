// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package shape

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"svggraph/chartval"
	"sync"
)

// DefaultRadius of the circle drawn for points without a matching replace rule.
const DefaultRadius = 10.0

type Mode int

const (
	// Replace rules provide the base primitive. Only the first match is used, and
	// a nil primitive keeps the default circle.
	Replace Mode = iota
	// Overlay rules add primitives on top of the base primitive. All matches are used.
	Overlay
)

func ModeFromString(s string) (Mode, error) {
	switch strings.ToUpper(s) {
	case "", "REPLACE":
		return Replace, nil
	case "OVERLAY":
		return Overlay, nil
	default:
		return Replace, chartval.NewConfigurationError("mode", s, chartval.ErrInvalidShapeRule)
	}
}

func (m Mode) String() string {
	switch m {
	case Replace:
		return "REPLACE"
	case Overlay:
		return "OVERLAY"
	default:
		panic("unsupported shape rule mode")
	}
}

// Builder creates the primitive for a point at pixel position x, y.
type Builder func(x, y float64, seriesIndex int) Primitive

type Rule struct {
	Pattern *regexp.Regexp
	Build   Builder
	Mode    Mode
}

func NewRule(pattern string, mode Mode, build Builder) (Rule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Rule{}, chartval.NewConfigurationError("pattern", pattern, fmt.Errorf("%w: %v", chartval.ErrInvalidShapeRule, err))
	}
	r := Rule{Pattern: re, Build: build, Mode: mode}
	return r, r.validate()
}

func (r Rule) validate() error {
	if r.Pattern == nil {
		return chartval.NewConfigurationError("pattern", nil, chartval.ErrInvalidShapeRule)
	}
	if r.Build == nil {
		return chartval.NewConfigurationError("builder", r.Pattern.String(),
			fmt.Errorf("%w: missing builder", chartval.ErrInvalidShapeRule))
	}
	if r.Mode != Replace && r.Mode != Overlay {
		return chartval.NewConfigurationError("mode", int(r.Mode), chartval.ErrInvalidShapeRule)
	}
	return nil
}

// RuleSet is the ordered list of shape rules of one render session.
// Dispatch may be called concurrently with Configure and Reset.
type RuleSet struct {
	mutex  sync.RWMutex
	rules  []Rule
	radius float64
}

func NewRuleSet() *RuleSet {
	return &RuleSet{radius: DefaultRadius}
}

// Configure replaces all rules. On error, the previous rules are kept.
func (s *RuleSet) Configure(rules ...Rule) error {
	var errs []error
	for _, r := range rules {
		if err := r.validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	s.mutex.Lock()
	s.rules = append([]Rule(nil), rules...)
	s.mutex.Unlock()
	return nil
}

func (s *RuleSet) Reset() {
	s.mutex.Lock()
	s.rules = nil
	s.mutex.Unlock()
}

func (s *RuleSet) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.rules)
}

func (s *RuleSet) SetRadius(radius float64) error {
	if !(radius > 0) {
		return chartval.NewConfigurationError("popupRadius", radius, chartval.ErrInvalidShapeRule)
	}
	s.mutex.Lock()
	s.radius = radius
	s.mutex.Unlock()
	return nil
}

func (s *RuleSet) Radius() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.radius
}

// DefaultClass is the css class of the default circle of a series.
func DefaultClass(seriesIndex int) string {
	return fmt.Sprintf("dataPoint%d", seriesIndex+1)
}

// Dispatch returns the primitives for a data point, base primitive first.
// An empty label yields only the default circle.
func (s *RuleSet) Dispatch(x, y float64, seriesIndex int, label string) []Primitive {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var base Primitive
	var replaced bool
	var overlays []Primitive
	if label != "" {
		for _, r := range s.rules {
			if !r.Pattern.MatchString(label) {
				continue
			}
			switch r.Mode {
			case Replace:
				// The first matching replace rule wins, even if it builds nothing.
				if !replaced {
					base = r.Build(x, y, seriesIndex)
					replaced = true
				}
			case Overlay:
				if p := r.Build(x, y, seriesIndex); p != nil {
					overlays = append(overlays, p)
				}
			}
		}
	}
	if base == nil {
		base = Circle{
			Center: chartval.Point{X: x, Y: y},
			Radius: s.radius,
			Class:  DefaultClass(seriesIndex),
		}
	}
	return append([]Primitive{base}, overlays...)
}
