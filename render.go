// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package cprlat

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

var gridColor = color.Gray{176}

// chartFont is metric-compatible with Helvetica.
var chartFont = font.Font{Typeface: "Liberation", Variant: "Sans"}

// Colors resolves the configured palette picks.
func (pc PaletteConfig) Colors() ([]color.Color, error) {
	palette, err := brewer.GetPalette(brewer.TypeSequential, pc.Name, pc.Classes)
	if err != nil {
		return nil, err
	}
	all := palette.Colors()
	if len(pc.Pick) == 0 {
		return all, nil
	}
	colors := make([]color.Color, len(pc.Pick))
	for i, k := range pc.Pick {
		if k < 0 || k >= len(all) {
			return nil, fmt.Errorf("palette %s has %d classes, cannot pick %d", pc.Name, len(all), k)
		}
		colors[i] = all[k]
	}
	return colors, nil
}

func setupAxis(a *plot.Axis, cfg AxisConfig) {
	a.Label.Text = cfg.Label
	a.Label.TextStyle.Font = font.From(chartFont, cfg.LabelFontSize)
	a.Tick.Label.Font = font.From(chartFont, cfg.TickFontSize)
	if cfg.LatexTicks {
		a.Tick.Label.Handler = text.Latex{Fonts: font.DefaultCache}
	}
	if cfg.Log {
		a.Scale = plot.LogScale{}
	}

	label := cfg.TickLabel
	if label == nil {
		label = PlainLabel
	}
	ticks := make([]plot.Tick, len(cfg.Ticks))
	for i, v := range cfg.Ticks {
		ticks[i] = plot.Tick{Value: v, Label: label(v)}
	}
	a.Tick.Marker = plot.ConstantTicks(ticks)
}

// chart is a plot under construction along with the plotters added to it, in
// draw order.
type chart struct {
	plot   *plot.Plot
	layers []plot.Plotter
	legend *columnLegend
}

func (ch *chart) add(ps ...plot.Plotter) {
	ch.plot.Add(ps...)
	ch.layers = append(ch.layers, ps...)
}

// maskLog drops points that a log axis cannot place and returns how many were
// dropped.
func maskLog(pts plotter.XYs, logX, logY bool) (plotter.XYs, int) {
	if !logX && !logY {
		return pts, 0
	}
	kept := make(plotter.XYs, 0, len(pts))
	for _, pt := range pts {
		if (logX && pt.X <= 0) || (logY && pt.Y <= 0) {
			continue
		}
		kept = append(kept, pt)
	}
	return kept, len(pts) - len(kept)
}

func checkAxis(name string, cfg AxisConfig) error {
	if cfg.Min >= cfg.Max {
		return fmt.Errorf("%w: %s axis range [%v, %v] is empty", ErrRender, name, cfg.Min, cfg.Max)
	}
	if cfg.Log && cfg.Min <= 0 {
		return fmt.Errorf("%w: %s axis is logarithmic but starts at %v", ErrRender, name, cfg.Min)
	}
	return nil
}

// NewPlot builds the chart for set. Every series in set must have a style in
// cfg and every styled series must have at least one point.
//
// Points with a non-positive coordinate on a logarithmic axis are left out of
// the drawing. A series left with no points still gets its legend entry.
func NewPlot(set SeriesSet, cfg ChartConfig) (*plot.Plot, error) {
	ch, err := newChart(set, cfg)
	if err != nil {
		return nil, err
	}
	return ch.plot, nil
}

func newChart(set SeriesSet, cfg ChartConfig) (*chart, error) {
	if err := checkAxis("x", cfg.X); err != nil {
		return nil, err
	}
	if err := checkAxis("y", cfg.Y); err != nil {
		return nil, err
	}
	colors, err := cfg.Palette.Colors()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}

	ch := &chart{plot: plot.New()}
	p := ch.plot
	p.BackgroundColor = color.White
	setupAxis(&p.X, cfg.X)
	setupAxis(&p.Y, cfg.Y)

	if cfg.Grid {
		grid := plotter.NewGrid()
		grid.Vertical.Color = gridColor
		grid.Horizontal.Color = gridColor
		ch.add(grid)
	}

	ch.legend = &columnLegend{
		TextStyle: text.Style{
			Font:    font.From(chartFont, cfg.Legend.FontSize),
			Handler: plot.DefaultTextHandler,
		},
		Columns:        cfg.Legend.Columns,
		Top:            cfg.Legend.Top,
		Left:           cfg.Legend.Left,
		Inset:          vg.Points(5),
		Padding:        vg.Points(4),
		ThumbnailWidth: 2 * cfg.Legend.FontSize,
		LabelGap:       cfg.Legend.FontSize / 2,
		ColumnGap:      cfg.Legend.FontSize,
		RowGap:         cfg.Legend.FontSize / 4,
		Background:     color.White,
	}
	ch.legend.Frame.Color = color.Gray{204}
	ch.legend.Frame.Width = vg.Points(0.8)

	styled := make(map[string]struct{}, len(cfg.Series))
	for _, sty := range cfg.Series {
		styled[sty.Name] = struct{}{}
		s, ok := set.Lookup(sty.Name)
		if !ok || len(s.Points) == 0 {
			return nil, fmt.Errorf("%w: no points for series %q", ErrRender, sty.Name)
		}
		if sty.ColorIndex < 0 || sty.ColorIndex >= len(colors) {
			return nil, fmt.Errorf("%w: series %q color index %d out of range", ErrRender, sty.Name, sty.ColorIndex)
		}
		c := colors[sty.ColorIndex]

		pts, masked := maskLog(s.Points, cfg.X.Log, cfg.Y.Log)
		if masked > 0 {
			zap.L().Warn("Leaving out points a log axis cannot show",
				zap.String("series", s.Name),
				zap.Int("masked", masked),
				zap.Int("points", len(s.Points)))
		}

		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return nil, fmt.Errorf("%w: series %q: %w", ErrRender, sty.Name, err)
		}
		line.Color = c
		line.Width = cfg.LineWidth
		points.GlyphStyle.Color = c
		points.GlyphStyle.Radius = cfg.MarkerSize / 2
		points.GlyphStyle.Shape = Marker{Shape: sty.Shape, Edge: cfg.MarkerEdge}
		if len(pts) > 0 {
			ch.add(line, points)
		}

		label := sty.Label
		if label == "" {
			label = sty.Name
		}
		ch.legend.Add(label, line, points)
	}
	for _, s := range set {
		if _, ok := styled[s.Name]; !ok {
			return nil, fmt.Errorf("%w: no style for series %q", ErrRender, s.Name)
		}
	}
	ch.add(ch.legend)

	// Add widens the axes to the data, so the fixed limits go last.
	p.X.Min, p.X.Max = cfg.X.Min, cfg.X.Max
	p.Y.Min, p.Y.Max = cfg.Y.Min, cfg.Y.Max

	return ch, nil
}

// WritePDF writes p as a PDF document of the configured size to cfg.Path.
// Failures to create or write the file match ErrOutput.
func WritePDF(p *plot.Plot, cfg OutputConfig) (err error) {
	wt, err := p.WriterTo(cfg.Width, cfg.Height, "pdf")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}

	if cfg.MakeDirs {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
			return fmt.Errorf("%w: %w", ErrOutput, err)
		}
	}
	f, err := os.Create(cfg.Path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrOutput, closeErr)
		}
	}()

	if _, err := wt.WriteTo(f); err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}

	zap.L().Debug("Wrote chart", zap.String("path", cfg.Path))
	return nil
}

// Render draws set with cfg.Chart and writes it to cfg.Output.
func Render(set SeriesSet, cfg Config) error {
	p, err := NewPlot(set, cfg.Chart)
	if err != nil {
		return err
	}
	return WritePDF(p, cfg.Output)
}
