package runner

import (
	"errors"
	"fmt"
)

var ErrNoActiveFile = errors.New("no active MASM file")

var ErrNotMasmFile = errors.New("the current file is not a MASM file")

// AlreadyRunningError stops a build whose output executable is still running
// and therefore cannot be overwritten by the linker.
type AlreadyRunningError struct {
	Name string
}

func (e *AlreadyRunningError) Error() string {
	return fmt.Sprintf("cannot start build: the output file '%s' is already running, close it and try again", e.Name)
}

// LintError blocks run and debug when the linter reported errors.
type LintError struct {
	Action string
	Count  int
}

func (e *LintError) Error() string {
	return fmt.Sprintf("cannot %s MASM file: %d error(s) detected, disable diagnostics with 'masmtool toggle-diagnostics' to %s anyway", e.Action, e.Count, e.Action)
}

// ProcessSpawnError is returned when the built program or the debugger could
// not be started.
type ProcessSpawnError struct {
	Path string
	Err  error
}

func (e *ProcessSpawnError) Error() string {
	return fmt.Sprintf("error running %s: %v", e.Path, e.Err)
}

func (e *ProcessSpawnError) Unwrap() error {
	return e.Err
}
