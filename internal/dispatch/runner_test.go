package dispatch

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func writeScript(t *testing.T, dir, name, body string) {
	t.Helper()
	p := filepath.Join(dir, name+ScriptExt)
	if err := os.WriteFile(p, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatal(err)
	}
}

func TestExecRunnerForwardsArgsAndExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts")
	}
	dir := t.TempDir()
	writeScript(t, dir, "audit", `echo "args:$#:$1"; exit 7`)

	var out bytes.Buffer
	r := ExecRunner{Stdin: strings.NewReader(""), Stdout: &out, Stderr: &out}
	code, err := r.Run(context.Background(), NewInvocation(dir, "audit", "key with space"))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if code != 7 {
		t.Fatalf("code = %d", code)
	}
	if got := strings.TrimSpace(out.String()); got != "args:1:key with space" {
		t.Fatalf("output = %q", got)
	}
}

func TestExecRunnerMissingScript(t *testing.T) {
	r := ExecRunner{Stdin: strings.NewReader(""), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	_, err := r.Run(context.Background(), NewInvocation(t.TempDir(), "clean"))
	var se *ScriptSpawnError
	if !errors.As(err, &se) {
		t.Fatalf("expected ScriptSpawnError, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist cause, got %v", err)
	}
}

func TestExecRunnerNotExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "clean.sh"), []byte("#!/bin/sh\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	r := ExecRunner{Stdin: strings.NewReader(""), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	_, err := r.Run(context.Background(), NewInvocation(dir, "clean"))
	var se *ScriptSpawnError
	if !errors.As(err, &se) {
		t.Fatalf("expected ScriptSpawnError, got %v", err)
	}
}

func TestDryRunRunnerPrints(t *testing.T) {
	var out bytes.Buffer
	code, err := DryRunRunner{Out: &out}.Run(context.Background(), NewInvocation("/s", "audit", "k"))
	if err != nil || code != 0 {
		t.Fatalf("run = %d, %v", code, err)
	}
	if got := out.String(); got != "+ /s/audit.sh k\n" {
		t.Fatalf("output = %q", got)
	}
}
