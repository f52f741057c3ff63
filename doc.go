// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package cprlat draws the lookup-latency versus dictionary-size chart of the
// compression microbenchmarks.
//
// The benchmark writes its results as two CSV files: one holding dictionary
// sizes and one holding the measured latencies, position for position. Neither
// file names the scheme a value belongs to. Instead the order of the values
// follows the order the experiment ran in, which a Layout describes: runs of
// equally sized groups where each position in a group belongs to one series.
//
// Load reads a file into a flat sequence, Partition splits a pair of flat
// sequences into series, and Render draws the series and writes a PDF. Run
// chains the three and is what the latwiki command executes.
package cprlat

//go:generate go run ./internal/cmd/latwiki
