// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package cprlat

import (
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// MarkerShape selects the outline of a Marker.
type MarkerShape int

const (
	SquareMarker MarkerShape = iota
	CircleMarker
	DiamondMarker
	PentagonMarker
	TriangleUpMarker
	TriangleDownMarker
)

func (s MarkerShape) String() string {
	switch s {
	case SquareMarker:
		return "square"
	case CircleMarker:
		return "circle"
	case DiamondMarker:
		return "diamond"
	case PentagonMarker:
		return "pentagon"
	case TriangleUpMarker:
		return "triangle-up"
	case TriangleDownMarker:
		return "triangle-down"
	}
	return "unknown"
}

// Marker is a draw.GlyphDrawer that fills its shape with the glyph color and
// strokes the outline with Edge. The glyph radius is half the marker size.
type Marker struct {
	Shape MarkerShape
	Edge  draw.LineStyle
}

var _ draw.GlyphDrawer = Marker{}

// DrawGlyph implements the draw.GlyphDrawer interface.
func (m Marker) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	var p vg.Path
	r := sty.Radius
	if m.Shape == CircleMarker {
		p.Move(vg.Point{X: pt.X + r, Y: pt.Y})
		p.Arc(pt, r, 0, 2*math.Pi)
		p.Close()
	} else {
		vs := m.Shape.vertices()
		p.Move(vg.Point{X: pt.X + r*vs[0].X, Y: pt.Y + r*vs[0].Y})
		for _, v := range vs[1:] {
			p.Line(vg.Point{X: pt.X + r*v.X, Y: pt.Y + r*v.Y})
		}
		p.Close()
	}

	c.SetColor(sty.Color)
	c.Fill(p)
	if m.Edge.Width > 0 && m.Edge.Color != nil {
		c.SetLineStyle(m.Edge)
		c.Stroke(p)
	}
}

// vertices returns the polygon of a non-circular shape scaled to a unit
// radius.
func (s MarkerShape) vertices() []vg.Point {
	switch s {
	case DiamondMarker:
		return []vg.Point{{X: 0, Y: 1}, {X: 0.6, Y: 0}, {X: 0, Y: -1}, {X: -0.6, Y: 0}}
	case PentagonMarker:
		vs := make([]vg.Point, 5)
		for i := range vs {
			a := math.Pi/2 + float64(i)*2*math.Pi/5
			vs[i] = vg.Point{X: vg.Length(math.Cos(a)), Y: vg.Length(math.Sin(a))}
		}
		return vs
	case TriangleUpMarker:
		return []vg.Point{{X: 0, Y: 1}, {X: -1, Y: -1}, {X: 1, Y: -1}}
	case TriangleDownMarker:
		return []vg.Point{{X: 0, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}}
	default:
		return []vg.Point{{X: -1, Y: -1}, {X: -1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: -1}}
	}
}
