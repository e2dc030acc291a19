package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"ni/internal/dispatch"
)

var errNoPath = errors.New("flake path is empty (use --path, set NIXOS_CONFIG, or set path in the config file)")

func NewRebuildCmd(rf *rootFlags) *cobra.Command {
	var path, host, label string

	cmd := &cobra.Command{
		Use:   "rebuild MESSAGE",
		Short: "Rebuilds the Nix environment",
		Long: strings.TrimSpace(`
Rebuild runs rebuild.sh with the resolved flake path, the optional host, the
message and a sanitized label. Without --label the message is used as the label.

Examples:
  ni rebuild --path ~/nixos "enable bluetooth"
  ni rebuild -p ~/nixos --host laptop -l v1.2 "kernel bump"
`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op := dispatch.Rebuild{
				Path:    firstNonEmpty(path, rf.settings.Path),
				Host:    firstNonEmpty(host, rf.settings.Host),
				Message: args[0],
			}
			if op.Path == "" {
				return errNoPath
			}
			if cmd.Flags().Changed("label") {
				op.Label = dispatch.StringPtr(label)
			}
			return rf.runOperation(cmd, op)
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", "Flake path to rebuild (or set NIXOS_CONFIG)")
	cmd.Flags().StringVar(&host, "host", "", "Host configuration to build (or set NI_HOST)")
	cmd.Flags().StringVarP(&label, "label", "l", "", "Generation label (default: derived from MESSAGE)")
	return cmd
}
