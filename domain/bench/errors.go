package bench

import (
	"errors"
	"fmt"
)

// ErrLoopActive is returned by Start when the loop is not idle.
var ErrLoopActive = errors.New("render loop already active")

// InitializationError reports a missing or unusable collaborator at startup.
type InitializationError struct {
	Component string
	Err       error
}

func (e *InitializationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("initialization: %s: %v", e.Component, e.Err)
	}
	return fmt.Sprintf("initialization: %s is missing", e.Component)
}

func (e *InitializationError) Unwrap() error { return e.Err }

// InvalidParameterError reports a rejected point-count input.
type InvalidParameterError struct {
	Raw    string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid point count %q: %s", e.Raw, e.Reason)
}

// RenderError reports a failed render turn. The loop stops after one.
type RenderError struct {
	Frame uint64
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render frame %d: %v", e.Frame, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// UpdateError reports a renderer that failed to reconfigure.
type UpdateError struct {
	PointCount int
	Err        error
}

func (e *UpdateError) Error() string {
	return fmt.Sprintf("update renderer to %d points: %v", e.PointCount, e.Err)
}

func (e *UpdateError) Unwrap() error { return e.Err }
