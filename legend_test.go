// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package cprlat

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/recorder"
)

// thumbProbe records the canvas each thumbnail is drawn into.
type thumbProbe struct {
	areas *[]vg.Rectangle
}

func (p thumbProbe) Thumbnail(c *draw.Canvas) {
	*p.areas = append(*p.areas, c.Rectangle)
}

func newTestLegend(columns int, labels ...string) (*columnLegend, *[]vg.Rectangle) {
	areas := new([]vg.Rectangle)
	l := &columnLegend{
		TextStyle: text.Style{
			Font:    font.From(chartFont, vg.Points(14)),
			Handler: plot.DefaultTextHandler,
		},
		Columns:        columns,
		Top:            true,
		Left:           true,
		Inset:          vg.Points(5),
		Padding:        vg.Points(4),
		ThumbnailWidth: vg.Points(28),
		LabelGap:       vg.Points(7),
		ColumnGap:      vg.Points(14),
		RowGap:         vg.Points(3),
		Background:     color.White,
		Frame:          draw.LineStyle{Color: color.Gray{204}, Width: vg.Points(0.8)},
	}
	for _, label := range labels {
		l.Add(label, thumbProbe{areas: areas})
	}
	return l, areas
}

func TestLegendRows(t *testing.T) {
	chk := require.New(t)
	six := []string{"a", "b", "c", "d", "e", "f"}

	l, _ := newTestLegend(2, six...)
	chk.Equal(3, l.rows())

	l, _ = newTestLegend(2, six[:5]...)
	chk.Equal(3, l.rows())

	l, _ = newTestLegend(0, six...)
	chk.Equal(6, l.rows())

	l, _ = newTestLegend(4, six...)
	chk.Equal(2, l.rows())
}

func TestLegendColumnMajorLayout(t *testing.T) {
	chk := require.New(t)
	labels := []string{SingleChar, DoubleChar, ALM, ThreeGrams, FourGrams, ALMImproved}
	l, areas := newTestLegend(2, labels...)

	var rec recorder.Canvas
	c := draw.NewCanvas(&rec, vg.Points(400), vg.Points(300))
	l.Plot(c, nil)

	var texts []*recorder.FillString
	for _, a := range rec.Actions {
		if fs, ok := a.(*recorder.FillString); ok {
			texts = append(texts, fs)
		}
	}
	chk.Len(texts, len(labels))
	for i, fs := range texts {
		chk.Equal(labels[i], fs.String)
	}

	// Entries 0-2 form the first column and 3-5 the second, row by row.
	for row := 0; row < 3; row++ {
		chk.Equal(texts[row].Point.Y, texts[row+3].Point.Y)
		chk.Greater(texts[row+3].Point.X, texts[row].Point.X)
	}
	chk.Greater(texts[0].Point.Y, texts[1].Point.Y)
	chk.Greater(texts[1].Point.Y, texts[2].Point.Y)

	chk.Len(*areas, len(labels))
	first := (*areas)[0]
	chk.InDelta(float64(l.ThumbnailWidth), float64(first.Max.X-first.Min.X), 1e-9)
	chk.Equal(c.Min.X+l.Inset+l.Padding, first.Min.X)
	chk.InDelta(float64(c.Max.Y-l.Inset-l.Padding), float64(first.Max.Y), 1e-9)

	chk.Equal(1, countActions[*recorder.Fill](&rec))
	chk.Equal(1, countActions[*recorder.Stroke](&rec))
}

func TestLegendBottomRight(t *testing.T) {
	chk := require.New(t)
	l, areas := newTestLegend(1, "only")
	l.Top, l.Left = false, false

	var rec recorder.Canvas
	c := draw.NewCanvas(&rec, vg.Points(400), vg.Points(300))
	l.Plot(c, nil)

	chk.Len(*areas, 1)
	a := (*areas)[0]
	chk.InDelta(float64(c.Min.Y+l.Inset+l.Padding), float64(a.Min.Y), 1e-9)
	chk.Less(a.Max.X, c.Max.X-l.Inset)
	chk.Greater(a.Min.X, c.Max.X/2)
}

func TestLegendEmpty(t *testing.T) {
	chk := require.New(t)
	l, _ := newTestLegend(2)

	var rec recorder.Canvas
	l.Plot(draw.NewCanvas(&rec, 100, 100), nil)
	chk.Empty(rec.Actions)
}
