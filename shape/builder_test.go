// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package shape

import (
	"svggraph/chartval"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

const rulesYaml = `
- pattern: "^t.*"
  kind: polygon
  class: "dataPoint{series}"
  points: [{x: -1.5, y: 2.5}, {x: 1.5, y: 2.5}, {x: 1.5, y: -2.5}, {x: -1.5, y: -2.5}]
- pattern: "^three.*"
  mode: overlay
  kind: line
  class: axis
  points: [{x: -4, y: 0}, {x: 4, y: 0}]
- pattern: "^box"
  kind: rect
  width: 4
  height: 2
`

func TestCompileRulesFromYaml(t *testing.T) {
	var configs []RuleConfig
	assert.NoError(t, yaml.Unmarshal([]byte(rulesYaml), &configs))
	rules, err := CompileRules(configs)
	assert.NoError(t, err)
	s := NewRuleSet()
	assert.NoError(t, s.Configure(rules...))

	p := s.Dispatch(10, 20, 1, "three is a rectangle")
	if assert.Len(t, p, 2) {
		assert.Equal(t, Polygon{
			Points: []chartval.Point{{X: 8.5, Y: 22.5}, {X: 11.5, Y: 22.5}, {X: 11.5, Y: 17.5}, {X: 8.5, Y: 17.5}},
			Class:  "dataPoint2",
		}, p[0])
		assert.Equal(t, Line{From: chartval.Point{X: 6, Y: 20}, To: chartval.Point{X: 14, Y: 20}, Class: "axis"}, p[1])
	}
	assert.Len(t, s.Dispatch(10, 20, 1, "two is a rectangle"), 1)

	p = s.Dispatch(10, 20, 0, "box")
	assert.Equal(t, []Primitive{Rect{Min: chartval.Point{X: 8, Y: 19}, Width: 4, Height: 2, Class: "dataPoint1"}}, p)
}

func TestCompileRulesInvalid(t *testing.T) {
	for _, c := range []RuleConfig{
		{Pattern: "a", Kind: "hexagon"},
		{Pattern: "a", Kind: "circle"},
		{Pattern: "a", Kind: "polygon", Points: []chartval.Point{{}, {}}},
		{Pattern: "a", Kind: "line", Points: []chartval.Point{{}}},
		{Pattern: "a", Kind: "rect", Width: 1},
		{Pattern: "[", Kind: "circle", Radius: 1},
		{Pattern: "a", Kind: "circle", Radius: 1, Mode: "sometimes"},
	} {
		_, err := CompileRules([]RuleConfig{c})
		assert.ErrorIs(t, err, chartval.ErrInvalidShapeRule, "%+v", c)
	}
}

func TestPrimitiveYamlIsTagged(t *testing.T) {
	out, err := yaml.Marshal([]Primitive{Circle{Radius: 2, Class: "c"}})
	assert.NoError(t, err)
	assert.Contains(t, string(out), "kind: circle")
	assert.Contains(t, string(out), "radius: 2")
}
