// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package cprlat

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Load reads the CSV file at path and returns every cell of every row as a
// number, in row order and then column order within each row.
//
// A missing file yields an error matching ErrNotFound. A cell that is not a
// number yields a *ParseError.
func Load(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return nil, err
	}
	defer f.Close()

	values, err := ReadFlat(f)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		} else {
			err = fmt.Errorf("%s: %w", path, err)
		}
		return nil, err
	}

	zap.L().Debug("Loaded flat sequence",
		zap.String("path", path),
		zap.Int("values", len(values)))
	return values, nil
}

// ReadFlat is Load for an arbitrary reader. Rows may hold different numbers of
// cells and blank lines are skipped.
func ReadFlat(r io.Reader) ([]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	var values []float64
	for {
		record, err := cr.Read()
		if err == io.EOF {
			return values, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		for i, cell := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				line, _ := cr.FieldPos(i)
				return nil, &ParseError{
					Row:    line,
					Column: i + 1,
					Text:   cell,
					Err:    err,
				}
			}
			values = append(values, v)
		}
	}
}

// WriteFlat writes values as CSV with perRow cells per row, or as a single row
// if perRow is not positive. ReadFlat returns the same values in the same order.
func WriteFlat(w io.Writer, values []float64, perRow int) error {
	if perRow <= 0 {
		perRow = len(values)
	}
	cw := csv.NewWriter(w)
	row := make([]string, 0, perRow)
	for len(values) > 0 {
		n := min(perRow, len(values))
		row = row[:0]
		for _, v := range values[:n] {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
		values = values[n:]
	}
	cw.Flush()
	return cw.Error()
}
