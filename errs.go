// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package cprlat

import (
	"fmt"

	"github.com/petenewcomb/cprlat-go/internal/cerr"
)

const ErrNotFound = cerr.Error("input not found")
const ErrParse = cerr.Error("non-numeric cell")
const ErrPartition = cerr.Error("not enough data points for layout")
const ErrSurplus = cerr.Error("data points left over after layout")
const ErrRender = cerr.Error("cannot build chart")
const ErrOutput = cerr.Error("cannot write chart")

// ParseError reports a cell that does not hold a number. Row and Column are
// 1-based positions within the CSV input.
type ParseError struct {
	Path   string
	Row    int
	Column int
	Text   string
	Err    error
}

func (e *ParseError) Error() string {
	where := fmt.Sprintf("row %d column %d", e.Row, e.Column)
	if e.Path != "" {
		where = e.Path + ": " + where
	}
	return fmt.Sprintf("%s: %s %q: %v", where, ErrParse, e.Text, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// PartitionError reports a flat sequence that is shorter than a layout needs.
type PartitionError struct {
	Stream    string
	Required  int
	Available int
}

func (e *PartitionError) Error() string {
	return fmt.Sprintf("%s: %s stream has %d values, layout reads %d",
		ErrPartition, e.Stream, e.Available, e.Required)
}

func (e *PartitionError) Unwrap() error {
	return ErrPartition
}
