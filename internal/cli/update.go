package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"ni/internal/dispatch"
)

func NewUpdateCmd(rf *rootFlags) *cobra.Command {
	var path, host string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Updates the Nix environment",
		Long: strings.TrimSpace(`
Update runs update.sh with the resolved flake path and then rebuilds with the
message "update". The rebuild happens even when update.sh exits non-zero; the
first non-zero exit code becomes ni's exit code.
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			op := dispatch.Update{
				Path: firstNonEmpty(path, rf.settings.Path),
				Host: firstNonEmpty(host, rf.settings.Host),
			}
			if op.Path == "" {
				return errNoPath
			}
			return rf.runOperation(cmd, op)
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", "Flake path to update (or set NIXOS_CONFIG)")
	cmd.Flags().StringVar(&host, "host", "", "Host configuration to rebuild afterwards (or set NI_HOST)")
	return cmd
}
