// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package shape

import (
	"fmt"
	"svggraph/chartval"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func rectangleRules(t *testing.T) []Rule {
	polygon, err := NewRule("^t.*", Replace, func(x, y float64, line int) Primitive {
		return Polygon{
			Points: []chartval.Point{
				{X: x - 1.5, Y: y + 2.5},
				{X: x + 1.5, Y: y + 2.5},
				{X: x + 1.5, Y: y - 2.5},
				{X: x - 1.5, Y: y - 2.5},
			},
			Class: fmt.Sprintf("dataPoint%d", line),
		}
	})
	assert.NoError(t, err)
	strike, err := NewRule("^three.*", Overlay, func(x, y float64, line int) Primitive {
		return Line{From: chartval.Point{X: x - 4, Y: y}, To: chartval.Point{X: x + 4, Y: y}, Class: "axis"}
	})
	assert.NoError(t, err)
	return []Rule{polygon, strike}
}

func TestDispatchReplaceAndOverlay(t *testing.T) {
	s := NewRuleSet()
	assert.NoError(t, s.Configure(rectangleRules(t)...))

	p := s.Dispatch(10, 20, 0, "three is a rectangle")
	if assert.Len(t, p, 2) {
		assert.Equal(t, KindPolygon, p[0].Kind())
		assert.Equal(t, KindLine, p[1].Kind())
		assert.Equal(t, "axis", p[1].CSSClass())
		assert.Equal(t, Line{From: chartval.Point{X: 6, Y: 20}, To: chartval.Point{X: 14, Y: 20}, Class: "axis"}, p[1])
	}

	p = s.Dispatch(10, 20, 0, "two is a rectangle")
	if assert.Len(t, p, 1) {
		assert.Equal(t, KindPolygon, p[0].Kind())
	}

	p = s.Dispatch(10, 20, 1, "one is a circle")
	assert.Equal(t, []Primitive{Circle{Center: chartval.Point{X: 10, Y: 20}, Radius: 10, Class: "dataPoint2"}}, p)
}

func TestDispatchFirstReplaceWins(t *testing.T) {
	s := NewRuleSet()
	first, err := NewRule("a", Replace, func(x, y float64, _ int) Primitive {
		return Rect{Min: chartval.Point{X: x, Y: y}, Width: 1, Height: 1, Class: "first"}
	})
	assert.NoError(t, err)
	second, err := NewRule("ab", Replace, func(x, y float64, _ int) Primitive {
		return Rect{Min: chartval.Point{X: x, Y: y}, Width: 2, Height: 2, Class: "second"}
	})
	assert.NoError(t, err)
	over1, err := NewRule("b", Overlay, func(x, y float64, _ int) Primitive { return Line{Class: "o1"} })
	assert.NoError(t, err)
	over2, err := NewRule(".", Overlay, func(x, y float64, _ int) Primitive { return Line{Class: "o2"} })
	assert.NoError(t, err)
	assert.NoError(t, s.Configure(over1, first, second, over2))

	p := s.Dispatch(0, 0, 0, "abc")
	if assert.Len(t, p, 3) {
		assert.Equal(t, "first", p[0].CSSClass())
		assert.Equal(t, "o1", p[1].CSSClass())
		assert.Equal(t, "o2", p[2].CSSClass())
	}

	// Overlays are layered onto the default circle if no replace rule matches.
	p = s.Dispatch(0, 0, 0, "b")
	if assert.Len(t, p, 3) {
		assert.Equal(t, KindCircle, p[0].Kind())
	}
}

func TestDispatchNilReplaceStillWins(t *testing.T) {
	s := NewRuleSet()
	hidden, err := NewRule("^hidden", Replace, func(x, y float64, _ int) Primitive { return nil })
	assert.NoError(t, err)
	square, err := NewRule("^hid", Replace, func(x, y float64, _ int) Primitive {
		return Rect{Min: chartval.Point{X: x, Y: y}, Width: 2, Height: 2, Class: "square"}
	})
	assert.NoError(t, err)
	assert.NoError(t, s.Configure(hidden, square))

	// The nil result of the first match falls back to the default circle.
	p := s.Dispatch(3, 4, 1, "hidden point")
	assert.Equal(t, []Primitive{Circle{Center: chartval.Point{X: 3, Y: 4}, Radius: DefaultRadius, Class: "dataPoint2"}}, p)

	p = s.Dispatch(3, 4, 1, "hide")
	if assert.Len(t, p, 1) {
		assert.Equal(t, "square", p[0].CSSClass())
	}
}

func TestDispatchWithoutLabel(t *testing.T) {
	s := NewRuleSet()
	always, err := NewRule(".*", Overlay, func(x, y float64, _ int) Primitive { return Line{Class: "always"} })
	assert.NoError(t, err)
	assert.NoError(t, s.Configure(always))
	p := s.Dispatch(1, 2, 0, "")
	assert.Equal(t, []Primitive{Circle{Center: chartval.Point{X: 1, Y: 2}, Radius: DefaultRadius, Class: "dataPoint1"}}, p)
}

func TestResetLeavesDefaultCircle(t *testing.T) {
	s := NewRuleSet()
	assert.NoError(t, s.Configure(rectangleRules(t)...))
	assert.Equal(t, 2, s.Len())
	s.Reset()
	assert.Equal(t, 0, s.Len())
	for _, label := range []string{"three is a rectangle", "two is a rectangle", ""} {
		p := s.Dispatch(5, 5, 2, label)
		if assert.Len(t, p, 1) {
			assert.Equal(t, KindCircle, p[0].Kind())
			assert.Equal(t, "dataPoint3", p[0].CSSClass())
		}
	}
}

func TestConfigureReplacesRules(t *testing.T) {
	s := NewRuleSet()
	assert.NoError(t, s.Configure(rectangleRules(t)...))
	rules := rectangleRules(t)
	assert.NoError(t, s.Configure(rules[1], rules[0]))
	assert.Len(t, s.Dispatch(0, 0, 0, "three"), 2)

	err := s.Configure(Rule{Mode: Replace})
	assert.ErrorIs(t, err, chartval.ErrInvalidShapeRule)
	// previous rules are kept
	assert.Equal(t, 2, s.Len())
}

func TestRadius(t *testing.T) {
	s := NewRuleSet()
	assert.Equal(t, 10.0, s.Radius())
	assert.NoError(t, s.SetRadius(1.23))
	c := s.Dispatch(0, 0, 0, "")[0].(Circle)
	assert.Equal(t, 1.23, c.Radius)
	assert.ErrorIs(t, s.SetRadius(0), chartval.ErrInvalidShapeRule)
}

func TestNewRuleInvalidPattern(t *testing.T) {
	_, err := NewRule("(", Replace, func(x, y float64, _ int) Primitive { return nil })
	assert.ErrorIs(t, err, chartval.ErrInvalidShapeRule)
	_, err = NewRule("a", Overlay, nil)
	assert.ErrorIs(t, err, chartval.ErrInvalidShapeRule)
}

func TestModeFromString(t *testing.T) {
	m, err := ModeFromString("overlay")
	assert.NoError(t, err)
	assert.Equal(t, Overlay, m)
	m, err = ModeFromString("")
	assert.NoError(t, err)
	assert.Equal(t, Replace, m)
	_, err = ModeFromString("under")
	assert.ErrorIs(t, err, chartval.ErrInvalidShapeRule)
}

func TestConcurrentDispatchAndConfigure(t *testing.T) {
	s := NewRuleSet()
	rules := rectangleRules(t)
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				n := len(s.Dispatch(0, 0, 0, "three"))
				assert.True(t, n == 1 || n == 2)
			}
		}()
	}
	for j := 0; j < 200; j++ {
		if j%2 == 0 {
			assert.NoError(t, s.Configure(rules...))
		} else {
			s.Reset()
		}
	}
	wg.Wait()
}
