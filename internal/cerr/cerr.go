// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package cerr holds the error building blocks shared by the pipeline stages.
package cerr

// Error is a string that can be declared as a constant sentinel.
type Error string

func (e Error) Error() string {
	return string(e)
}

// Stage names a pipeline step for error reporting.
type Stage string

const (
	StageLoad      Stage = "load"
	StagePartition Stage = "partition"
	StageRender    Stage = "render"
)

// StageError attributes Err to the pipeline stage that produced it.
type StageError struct {
	Stage Stage
	Err   error
}

// Wrap returns nil if err is nil and a *StageError otherwise.
func Wrap(stage Stage, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Stage: stage, Err: err}
}

func (e *StageError) Error() string {
	return string(e.Stage) + ": " + e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}
