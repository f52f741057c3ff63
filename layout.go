// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package cprlat

import (
	"errors"
	"fmt"

	"github.com/gammazero/deque"
	"go.uber.org/zap"
	"gonum.org/v1/plot/plotter"
)

// Series names, also used as legend labels.
const (
	SingleChar  = "Single-Char"
	DoubleChar  = "Double-Char"
	ALM         = "ALM"
	ThreeGrams  = "3-Grams"
	FourGrams   = "4-Grams"
	ALMImproved = "ALM-Improved"
)

// Series is a named curve of (dictionary entries, latency) points.
type Series struct {
	Name   string
	Points plotter.XYs
}

// SeriesSet holds series in the order their names first appear in a Layout.
type SeriesSet []Series

// Lookup returns the series called name.
func (s SeriesSet) Lookup(name string) (Series, bool) {
	for _, series := range s {
		if series.Name == name {
			return series, true
		}
	}
	return Series{}, false
}

// Phase describes Groups consecutive groups of len(Series) consecutive values.
// Within each group, the value at offset k belongs to Series[k].
type Phase struct {
	Groups int
	Series []string
}

// Len is the number of values the phase consumes.
func (ph Phase) Len() int {
	return ph.Groups * len(ph.Series)
}

// Layout maps positions in a flat sequence to series. Its phases cover the
// sequence end to end starting at index 0.
type Layout []Phase

// DefaultLayout is the row layout written by the dictionary-size latency
// experiment: the single- and double-character schemes run once, the n-gram
// and ALM schemes run at seven dictionary sizes, and all but 3-grams run at
// two larger sizes after that.
var DefaultLayout = Layout{
	{Groups: 1, Series: []string{SingleChar}},
	{Groups: 1, Series: []string{DoubleChar}},
	{Groups: 7, Series: []string{ThreeGrams, FourGrams, ALM, ALMImproved}},
	{Groups: 2, Series: []string{FourGrams, ALM, ALMImproved}},
}

// Len is the number of values the layout consumes.
func (l Layout) Len() int {
	n := 0
	for _, ph := range l {
		n += ph.Len()
	}
	return n
}

// Names lists series names in order of first appearance.
func (l Layout) Names() []string {
	var names []string
	seen := make(map[string]struct{})
	for _, ph := range l {
		for _, name := range ph.Series {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}

// Counts returns the number of points each series receives.
func (l Layout) Counts() map[string]int {
	counts := make(map[string]int)
	for _, ph := range l {
		for _, name := range ph.Series {
			counts[name] += ph.Groups
		}
	}
	return counts
}

// Validate reports a layout that cannot be walked.
func (l Layout) Validate() error {
	if len(l) == 0 {
		return errors.New("layout has no phases")
	}
	for i, ph := range l {
		if ph.Groups <= 0 {
			return fmt.Errorf("layout phase %d: group count %d is not positive", i, ph.Groups)
		}
		if len(ph.Series) == 0 {
			return fmt.Errorf("layout phase %d: no series", i)
		}
		for k, name := range ph.Series {
			if name == "" {
				return fmt.Errorf("layout phase %d: series at offset %d has no name", i, k)
			}
		}
	}
	return nil
}

// Partitioned is the result of walking a layout over a pair of flat sequences.
type Partitioned struct {
	Series SeriesSet

	// Consumed is the number of positions read from each sequence.
	Consumed int

	// Surplus is the number of trailing positions, present in both
	// sequences, that the layout did not read.
	Surplus int
}

// Strict returns an error matching ErrSurplus if any input was left over.
func (p *Partitioned) Strict() error {
	if p.Surplus > 0 {
		return fmt.Errorf("%w: %d of %d", ErrSurplus, p.Surplus, p.Consumed+p.Surplus)
	}
	return nil
}

// Partition splits the positionally paired sequences x and y into series
// according to layout. It fails with a *PartitionError if either sequence is
// shorter than layout.Len(); trailing values beyond that are not read.
func Partition(x, y []float64, layout Layout) (*Partitioned, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	need := layout.Len()
	if len(x) < need {
		return nil, &PartitionError{Stream: "x", Required: need, Available: len(x)}
	}
	if len(y) < need {
		return nil, &PartitionError{Stream: "y", Required: need, Available: len(y)}
	}

	// The stream holds every paired position. The walk pops what the layout
	// reads and whatever remains is surplus.
	var stream deque.Deque[plotter.XY]
	for i, n := 0, min(len(x), len(y)); i < n; i++ {
		stream.PushBack(plotter.XY{X: x[i], Y: y[i]})
	}

	names := layout.Names()
	counts := layout.Counts()
	index := make(map[string]int, len(names))
	set := make(SeriesSet, len(names))
	for i, name := range names {
		index[name] = i
		set[i] = Series{Name: name, Points: make(plotter.XYs, 0, counts[name])}
	}

	for _, ph := range layout {
		for g := 0; g < ph.Groups; g++ {
			for _, name := range ph.Series {
				s := &set[index[name]]
				s.Points = append(s.Points, stream.PopFront())
			}
		}
	}

	result := &Partitioned{
		Series:   set,
		Consumed: need,
		Surplus:  stream.Len(),
	}
	for _, s := range set {
		zap.L().Debug("Partitioned series",
			zap.String("series", s.Name),
			zap.Int("points", len(s.Points)))
	}
	return result, nil
}
