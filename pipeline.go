// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package cprlat

import (
	"slices"

	"github.com/petenewcomb/cprlat-go/internal/cerr"
	"go.uber.org/zap"
	"golang.org/x/perf/benchunit"
)

// StageError attributes an error returned by Run to the step that failed.
type StageError = cerr.StageError

type Stage = cerr.Stage

const (
	StageLoad      = cerr.StageLoad
	StagePartition = cerr.StagePartition
	StageRender    = cerr.StageRender
)

// Run loads cfg.Input, partitions it with cfg.Layout and writes the chart to
// cfg.Output. Any error is a *StageError.
func Run(cfg Config) error {
	logger := zap.L()

	x, err := Load(cfg.Input.XPath)
	if err != nil {
		return cerr.Wrap(StageLoad, err)
	}
	y, err := Load(cfg.Input.YPath)
	if err != nil {
		return cerr.Wrap(StageLoad, err)
	}
	if len(x) != len(y) {
		logger.Warn("Input lengths differ",
			zap.Int("x", len(x)),
			zap.Int("y", len(y)))
	}

	parts, err := Partition(x, y, cfg.Layout)
	if err != nil {
		return cerr.Wrap(StagePartition, err)
	}
	if parts.Surplus > 0 {
		if cfg.StrictLength {
			return cerr.Wrap(StagePartition, parts.Strict())
		}
		logger.Warn("Ignoring trailing values",
			zap.Int("consumed", parts.Consumed),
			zap.Int("surplus", parts.Surplus))
	}

	for _, s := range parts.Series {
		ys := make([]float64, len(s.Points))
		for i, pt := range s.Points {
			ys[i] = pt.Y
		}
		logger.Debug("Series",
			zap.String("name", s.Name),
			zap.Int("points", len(s.Points)),
			zap.String("minLatency", benchunit.Scale(slices.Min(ys), benchunit.Decimal)),
			zap.String("maxLatency", benchunit.Scale(slices.Max(ys), benchunit.Decimal)))
	}

	if err := Render(parts.Series, cfg); err != nil {
		return cerr.Wrap(StageRender, err)
	}
	return nil
}
