package platform

import "github.com/pkg/errors"

// InitError reports a failed initialization stage and its cause
type InitError struct {
	Stage error // ErrWindowCreation or ErrSurfaceCreation
	Cause error
}

func (e *InitError) Error() string {
	return e.Stage.Error() + ": " + e.Cause.Error()
}

// Unwrap exposes both the stage sentinel and the backend cause to errors.Is/As
func (e *InitError) Unwrap() []error {
	return []error{e.Stage, e.Cause}
}

// initFailure wraps cause under stage with a stack trace for %+v logging
func initFailure(stage, cause error) error {
	return errors.WithStack(&InitError{Stage: stage, Cause: cause})
}
