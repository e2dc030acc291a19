package cli

import (
	"github.com/spf13/cobra"

	"ni/internal/dispatch"
)

func NewAuditCmd(rf *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "audit [KEY]",
		Short: "Audits the Nix environment for issues",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var op dispatch.Audit
			if len(args) == 1 {
				op.Key = args[0]
			}
			return rf.runOperation(cmd, op)
		},
	}
}
