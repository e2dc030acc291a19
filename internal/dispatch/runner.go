package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ScriptExt is appended to every operation name to find its script.
const ScriptExt = ".sh"

// Invocation describes a single script run.
type Invocation struct {
	Script string
	Args   []string
}

func (inv Invocation) String() string {
	return strings.Join(append([]string{inv.Script}, inv.Args...), " ")
}

// NewInvocation locates the script for name under dir.
func NewInvocation(dir, name string, args ...string) Invocation {
	return Invocation{
		Script: filepath.Join(dir, name+ScriptExt),
		Args:   args,
	}
}

// Runner executes an invocation and reports the child's exit code. A
// non-nil error means the child never ran.
type Runner interface {
	Run(ctx context.Context, inv Invocation) (int, error)
}

// ExecRunner spawns scripts as child processes and blocks until they
// exit. Nil streams fall back to the parent's.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (r ExecRunner) Run(ctx context.Context, inv Invocation) (int, error) {
	cmd := exec.CommandContext(ctx, inv.Script, inv.Args...)
	cmd.Stdin = r.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		code := ee.ExitCode()
		if code < 0 {
			// terminated by a signal
			code = 1
		}
		return code, nil
	}
	return 0, &ScriptSpawnError{Script: inv.Script, Err: err}
}

// DryRunRunner prints each invocation instead of running it.
type DryRunRunner struct {
	Out io.Writer
}

func (r DryRunRunner) Run(_ context.Context, inv Invocation) (int, error) {
	out := r.Out
	if out == nil {
		out = os.Stderr
	}
	fmt.Fprintln(out, "+ "+inv.String())
	return 0, nil
}
