// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package cprlat

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

type legendEntry struct {
	label  string
	thumbs []plot.Thumbnailer
}

// columnLegend is a framed legend drawn inside the data area. Entries fill
// the first column top to bottom before moving to the next.
type columnLegend struct {
	TextStyle text.Style

	Columns int

	// Top and Left select the corner the legend is anchored to.
	Top, Left bool

	// Inset is the distance between the frame and the data area edge.
	Inset vg.Length

	// Padding is the distance between the frame and the entries.
	Padding vg.Length

	ThumbnailWidth vg.Length
	LabelGap       vg.Length
	ColumnGap      vg.Length
	RowGap         vg.Length

	Background color.Color
	Frame      draw.LineStyle

	entries []legendEntry
}

var _ plot.Plotter = &columnLegend{}

func (l *columnLegend) Add(label string, thumbs ...plot.Thumbnailer) {
	l.entries = append(l.entries, legendEntry{label: label, thumbs: thumbs})
}

func (l *columnLegend) rows() int {
	cols := max(l.Columns, 1)
	return (len(l.entries) + cols - 1) / cols
}

// Plot implements the plot.Plotter interface.
func (l *columnLegend) Plot(c draw.Canvas, _ *plot.Plot) {
	if len(l.entries) == 0 {
		return
	}
	rows := l.rows()
	cols := (len(l.entries) + rows - 1) / rows

	var rowHeight vg.Length
	colWidths := make([]vg.Length, cols)
	for i, e := range l.entries {
		rowHeight = max(rowHeight, l.TextStyle.Height(e.label))
		col := i / rows
		colWidths[col] = max(colWidths[col], l.ThumbnailWidth+l.LabelGap+l.TextStyle.Width(e.label))
	}

	width := 2*l.Padding + l.ColumnGap*vg.Length(cols-1)
	for _, w := range colWidths {
		width += w
	}
	height := 2*l.Padding + rowHeight*vg.Length(rows) + l.RowGap*vg.Length(rows-1)

	var box vg.Rectangle
	if l.Left {
		box.Min.X = c.Min.X + l.Inset
	} else {
		box.Min.X = c.Max.X - l.Inset - width
	}
	if l.Top {
		box.Min.Y = c.Max.Y - l.Inset - height
	} else {
		box.Min.Y = c.Min.Y + l.Inset
	}
	box.Max = vg.Point{X: box.Min.X + width, Y: box.Min.Y + height}

	outline := []vg.Point{
		{X: box.Min.X, Y: box.Min.Y},
		{X: box.Min.X, Y: box.Max.Y},
		{X: box.Max.X, Y: box.Max.Y},
		{X: box.Max.X, Y: box.Min.Y},
	}
	if l.Background != nil {
		c.FillPolygon(l.Background, outline)
	}
	if l.Frame.Width > 0 {
		c.StrokeLines(l.Frame, append(outline, outline[0]))
	}

	sty := l.TextStyle
	sty.XAlign = text.XLeft
	sty.YAlign = text.YCenter

	x := box.Min.X + l.Padding
	for col := 0; col < cols; col++ {
		for row := 0; row < rows; row++ {
			i := col*rows + row
			if i >= len(l.entries) {
				break
			}
			e := l.entries[i]
			top := box.Max.Y - l.Padding - (rowHeight+l.RowGap)*vg.Length(row)
			thumb := draw.Canvas{
				Canvas: c.Canvas,
				Rectangle: vg.Rectangle{
					Min: vg.Point{X: x, Y: top - rowHeight},
					Max: vg.Point{X: x + l.ThumbnailWidth, Y: top},
				},
			}
			for _, th := range e.thumbs {
				th.Thumbnail(&thumb)
			}
			c.FillText(sty, vg.Point{X: x + l.ThumbnailWidth + l.LabelGap, Y: top - rowHeight/2}, e.label)
		}
		x += colWidths[col] + l.ColumnGap
	}
}
