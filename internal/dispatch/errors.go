package dispatch

import "fmt"

// PathResolutionError reports a target path that could not be turned into
// a canonical absolute location.
type PathResolutionError struct {
	Path string
	Err  error
}

func (e *PathResolutionError) Error() string {
	return fmt.Sprintf("resolve path %q: %v", e.Path, e.Err)
}

func (e *PathResolutionError) Unwrap() error { return e.Err }

// ScriptSpawnError reports a script that could not be started at all
// (missing, not executable, or an OS-level spawn failure). A script that
// runs and exits non-zero is not a ScriptSpawnError.
type ScriptSpawnError struct {
	Script string
	Err    error
}

func (e *ScriptSpawnError) Error() string {
	return fmt.Sprintf("run script %s: %v", e.Script, e.Err)
}

func (e *ScriptSpawnError) Unwrap() error { return e.Err }
