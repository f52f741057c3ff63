// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Command latwiki draws the wiki dictionary-size latency chart from the
// benchmark results under results/ into figures/. It takes no arguments.
package main

import (
	"fmt"
	"os"

	"github.com/petenewcomb/cprlat-go"
	"go.uber.org/zap"
)

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	return cfg.Build()
}

func main() {
	logger, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "latwiki: %v\n", err)
		os.Exit(2)
	}
	defer zap.ReplaceGlobals(logger)()

	cfg := cprlat.DefaultConfig
	if err := cprlat.Run(cfg); err != nil {
		logger.Fatal("Chart generation failed", zap.Error(err))
	}
	logger.Info("Chart generated", zap.String("path", cfg.Output.Path))
	_ = logger.Sync()
}
