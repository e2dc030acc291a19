package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestPromptConfirm(t *testing.T) {
	cases := map[string]bool{
		"y\n":   true,
		"YES\n": true,
		"y":     true,
		"n\n":   false,
		"\n":    false,
		"":      false,
	}
	for in, want := range cases {
		cmd := &cobra.Command{}
		var errBuf bytes.Buffer
		cmd.SetIn(strings.NewReader(in))
		cmd.SetErr(&errBuf)

		got, err := promptConfirm(cmd, "Proceed?")
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: confirm = %v, want %v", in, got, want)
		}
		if errBuf.String() != "Proceed? [y/N]: " {
			t.Fatalf("prompt = %q", errBuf.String())
		}
	}
}

func TestIsInteractiveFalseForBufferedInput(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader(""))
	if isInteractive(cmd) {
		t.Fatalf("expected non-interactive")
	}
}
