package artimate

import (
	"errors"
	"fmt"
)

// Common errors returned by artimate.
var (
	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("artimate: invalid config")

	// ErrAlreadyRun is returned when Run is called on an app that has
	// already started.
	ErrAlreadyRun = errors.New("artimate: app already run")

	// ErrUnsupportedConfigFormat is returned by LoadConfig for file
	// extensions other than .yaml, .yml and .toml.
	ErrUnsupportedConfigFormat = errors.New("artimate: unsupported config format")
)

// Stage identifies the step of the frame loop where a run failed.
type Stage uint8

// Run stages.
const (
	// StageStartup covers config validation and window creation; no frame
	// has run yet.
	StageStartup Stage = iota
	StageDraw
	StagePresent
	StageSave
)

func (s Stage) String() string {
	switch s {
	case StageStartup:
		return "startup"
	case StageDraw:
		return "draw"
	case StagePresent:
		return "present"
	case StageSave:
		return "save"
	}
	return fmt.Sprintf("Stage(%d)", uint8(s))
}

// RunError is returned by Run when the loop stops because of a failure.
// Frame is the zero-based frame being produced; it is meaningless for
// StageStartup.
type RunError struct {
	Stage Stage
	Frame int
	Err   error
}

func (e *RunError) Error() string {
	if e.Stage == StageStartup {
		return fmt.Sprintf("artimate: startup failed: %v", e.Err)
	}
	return fmt.Sprintf("artimate: %s failed at frame %d: %v", e.Stage, e.Frame, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}

// BufferSizeError reports a draw function that returned a buffer whose
// length is not Width*Height*4.
type BufferSizeError struct {
	Want int
	Got  int
}

func (e *BufferSizeError) Error() string {
	return fmt.Sprintf("draw returned %d bytes, want %d (width*height*4)", e.Got, e.Want)
}
