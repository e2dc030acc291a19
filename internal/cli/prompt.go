package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// isInteractive reports whether the command reads from a real TTY.
func isInteractive(cmd *cobra.Command) bool {
	return cmd.InOrStdin() == os.Stdin && term.IsTerminal(int(os.Stdin.Fd()))
}

func promptConfirm(cmd *cobra.Command, question string) (bool, error) {
	out := cmd.ErrOrStderr() // prompts go to stderr
	fmt.Fprintf(out, "%s [y/N]: ", question)

	r := bufio.NewReader(cmd.InOrStdin())
	line, err := r.ReadString('\n')
	// If stdin has no newline, ReadString can return data with err==io.EOF; keep the data.
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
