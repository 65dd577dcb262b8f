// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package shape

import (
	"strings"
	"svggraph/chartval"
)

type Kind int

const (
	KindCircle Kind = iota
	KindPolygon
	KindLine
	KindRect
	NumKinds
)

var kindNames = [NumKinds]string{"circle", "polygon", "line", "rect"}

func (k Kind) String() string {
	if k < 0 || k >= NumKinds {
		panic("unsupported primitive kind")
	}
	return kindNames[k]
}

func KindFromString(s string) (Kind, bool) {
	i := chartval.IndexOf(kindNames[:], strings.ToLower(s))
	if i < 0 {
		return KindCircle, false
	}
	return Kind(i), true
}

// Primitive is one graphical element representing a data point.
// It is implemented by Circle, Polygon, Line and Rect only.
type Primitive interface {
	Kind() Kind
	CSSClass() string
	isPrimitive()
}

type Circle struct {
	Center chartval.Point `yaml:"center"`
	Radius float64        `yaml:"radius"`
	Class  string         `yaml:"class"`
}

type Polygon struct {
	Points []chartval.Point `yaml:"points"`
	Class  string           `yaml:"class"`
}

type Line struct {
	From  chartval.Point `yaml:"from"`
	To    chartval.Point `yaml:"to"`
	Class string         `yaml:"class"`
}

// Rect is axis aligned, Min being its top left corner.
type Rect struct {
	Min    chartval.Point `yaml:"min"`
	Width  float64        `yaml:"width"`
	Height float64        `yaml:"height"`
	Class  string         `yaml:"class"`
}

func (Circle) Kind() Kind  { return KindCircle }
func (Polygon) Kind() Kind { return KindPolygon }
func (Line) Kind() Kind    { return KindLine }
func (Rect) Kind() Kind    { return KindRect }

func (c Circle) CSSClass() string  { return c.Class }
func (p Polygon) CSSClass() string { return p.Class }
func (l Line) CSSClass() string    { return l.Class }
func (r Rect) CSSClass() string    { return r.Class }

func (Circle) isPrimitive()  {}
func (Polygon) isPrimitive() {}
func (Line) isPrimitive()    {}
func (Rect) isPrimitive()    {}

// The yaml output is tagged with the primitive kind, so that a renderer can tell them apart.

func (c Circle) MarshalYAML() (any, error) {
	type plain Circle
	return struct {
		Kind  string `yaml:"kind"`
		plain `yaml:",inline"`
	}{KindCircle.String(), plain(c)}, nil
}

func (p Polygon) MarshalYAML() (any, error) {
	type plain Polygon
	return struct {
		Kind  string `yaml:"kind"`
		plain `yaml:",inline"`
	}{KindPolygon.String(), plain(p)}, nil
}

func (l Line) MarshalYAML() (any, error) {
	type plain Line
	return struct {
		Kind  string `yaml:"kind"`
		plain `yaml:",inline"`
	}{KindLine.String(), plain(l)}, nil
}

func (r Rect) MarshalYAML() (any, error) {
	type plain Rect
	return struct {
		Kind  string `yaml:"kind"`
		plain `yaml:",inline"`
	}{KindRect.String(), plain(r)}, nil
}
