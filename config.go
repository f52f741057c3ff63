// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package cprlat

import (
	"image/color"
	"math"
	"strconv"

	"golang.org/x/perf/benchunit"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Repository-relative locations used by the wiki dictionary-size experiment.
const (
	DefaultXPath      = "results/microbench/cpr_latency/final_x_wiki_dict_size.csv"
	DefaultYPath      = "results/microbench/cpr_latency/final_lat_wiki_dict_size.csv"
	DefaultOutputPath = "figures/microbench/cpr_latency/lat_wiki_dict_size.pdf"
)

var DefaultConfig = Config{
	Input: InputConfig{
		XPath: DefaultXPath,
		YPath: DefaultYPath,
	},
	Layout: DefaultLayout,
	Chart:  DefaultChartConfig,
	Output: OutputConfig{
		Path:   DefaultOutputPath,
		Width:  8 * vg.Inch,
		Height: 4.5 * vg.Inch,
	},
}

var DefaultChartConfig = ChartConfig{
	Series: []SeriesStyle{
		{Name: SingleChar, Shape: SquareMarker, ColorIndex: 0},
		{Name: DoubleChar, Shape: CircleMarker, ColorIndex: 1},
		{Name: ALM, Shape: DiamondMarker, ColorIndex: 2},
		{Name: ThreeGrams, Shape: PentagonMarker, ColorIndex: 3},
		{Name: FourGrams, Shape: TriangleUpMarker, ColorIndex: 4},
		{Name: ALMImproved, Shape: TriangleDownMarker, ColorIndex: 5},
	},
	Palette: PaletteConfig{
		Name:    "OrRd",
		Classes: 9,
		Pick:    []int{0, 1, 2, 4, 6, 8},
	},
	LineWidth:  vg.Points(3),
	MarkerSize: vg.Points(10),
	MarkerEdge: draw.LineStyle{
		Color: color.Black,
		Width: vg.Points(0.5),
	},
	X: AxisConfig{
		Label:         "Number of Dictionary Entries",
		LabelFontSize: vg.Points(20),
		TickFontSize:  vg.Points(16),
		Log:           true,
		Min:           1 << 7,
		Max:           1 << 19,
		Ticks:         []float64{1 << 8, 1 << 10, 1 << 12, 1 << 14, 1 << 16, 1 << 18},
		TickLabel:     PowerOfTwoLabel,
		LatexTicks:    true,
	},
	Y: AxisConfig{
		Label:         "Latency (ns per char)",
		LabelFontSize: vg.Points(20),
		TickFontSize:  vg.Points(16),
		Min:           0,
		Max:           125,
		Ticks:         []float64{0, 20, 40, 60, 80, 100, 120},
		TickLabel:     PlainLabel,
	},
	Legend: LegendConfig{
		Columns:  2,
		Top:      true,
		Left:     true,
		FontSize: vg.Points(14),
	},
	Grid: true,
}

// Config drives Run from input files to the written chart.
type Config struct {
	Input  InputConfig
	Layout Layout
	Chart  ChartConfig
	Output OutputConfig

	// StrictLength turns input left over after the layout into a
	// partition error instead of a warning.
	StrictLength bool
}

type InputConfig struct {
	XPath string
	YPath string
}

type OutputConfig struct {
	Path          string
	Width, Height vg.Length

	// MakeDirs creates missing parent directories of Path.
	MakeDirs bool
}

// ChartConfig holds every styling constant of the chart.
type ChartConfig struct {
	// Series lists the series to draw, in drawing and legend order.
	Series []SeriesStyle

	Palette PaletteConfig

	LineWidth  vg.Length
	MarkerSize vg.Length
	MarkerEdge draw.LineStyle

	X, Y AxisConfig

	Legend LegendConfig

	// Grid draws grid lines at the major ticks, beneath the data.
	Grid bool
}

type SeriesStyle struct {
	Name string

	// Label is the legend text; the series name is used if empty.
	Label string

	Shape MarkerShape

	// ColorIndex indexes the picked palette colors.
	ColorIndex int
}

// PaletteConfig names a ColorBrewer sequential palette and the classes picked
// from it.
type PaletteConfig struct {
	Name    string
	Classes int

	// Pick lists the palette indexes used, in order. All classes are used
	// if empty.
	Pick []int
}

type AxisConfig struct {
	Label         string
	LabelFontSize vg.Length
	TickFontSize  vg.Length

	// Log selects a logarithmic scale.
	Log bool

	Min, Max  float64
	Ticks     []float64
	TickLabel func(float64) string

	// LatexTicks typesets tick labels as LaTeX math.
	LatexTicks bool
}

type LegendConfig struct {
	Columns   int
	Top, Left bool
	FontSize  vg.Length
}

// PlainLabel formats v in its shortest decimal form.
func PlainLabel(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// BinaryLabel formats v with binary unit prefixes, for example 16Ki.
func BinaryLabel(v float64) string {
	return benchunit.Scale(v, benchunit.Binary)
}

// PowerOfTwoLabel formats exact powers of two as LaTeX, for example $2^{8}$,
// and anything else as PlainLabel does. Axes using it need LatexTicks.
func PowerOfTwoLabel(v float64) string {
	if v <= 0 {
		return PlainLabel(v)
	}
	frac, exp := math.Frexp(v)
	if frac != 0.5 {
		return PlainLabel(v)
	}
	return "$2^{" + strconv.Itoa(exp-1) + "}$"
}
