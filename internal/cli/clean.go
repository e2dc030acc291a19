package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ni/internal/dispatch"
)

func NewCleanCmd(rf *rootFlags) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Cleans up the Nix environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !rf.DryRun && isInteractive(cmd) {
				ok, err := promptConfirm(cmd, "Run clean.sh?")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.ErrOrStderr(), "aborted")
					return nil
				}
			}
			return rf.runOperation(cmd, dispatch.Clean{})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt on interactive terminals")
	return cmd
}
