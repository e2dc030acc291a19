package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"ni/internal/dispatch"
)

type recordingRunner struct {
	calls []dispatch.Invocation
	codes map[string]int
}

func (r *recordingRunner) Run(_ context.Context, inv dispatch.Invocation) (int, error) {
	r.calls = append(r.calls, inv)
	return r.codes[strings.TrimSuffix(filepath.Base(inv.Script), dispatch.ScriptExt)], nil
}

// isolate keeps the host's config, .env values and NIXOS_CONFIG out of a test.
func isolate(t *testing.T) string {
	t.Helper()
	td, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(td, "xdg"))
	t.Setenv("HOME", td)
	for _, k := range []string{EnvConfigPath, EnvScriptDir, EnvFlakePath, EnvHost} {
		t.Setenv(k, "")
	}
	return td
}

func execute(t *testing.T, runner dispatch.Runner, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd(runner)
	var out, errBuf bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errBuf)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errBuf.String(), err
}
