package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// exitCodeError carries a script's non-zero exit status out of cobra.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("script exited with code %d", e.code)
}

// Execute is the CLI entrypoint.
func Execute() {
	os.Exit(exitCode(NewRootCmd().Execute(), os.Stderr))
}

// exitCode maps an Execute error onto a process exit status. Script exit
// codes pass through silently; anything else is reported on stderr.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	var ee *exitCodeError
	if errors.As(err, &ee) {
		return ee.code
	}
	fmt.Fprintln(stderr, "ni: "+err.Error())
	return 1
}
