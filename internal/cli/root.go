package cli

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ni/internal/dispatch"
)

type rootFlags struct {
	ConfigPath string
	ScriptDir  string
	Debug      bool
	DryRun     bool

	// populated by PersistentPreRunE
	settings Settings
	logger   *zap.Logger

	// runner overrides script execution when set
	runner dispatch.Runner
}

// NewRootCmd builds the root command and wires subcommands.
func NewRootCmd() *cobra.Command {
	return newRootCmd(nil)
}

func newRootCmd(runner dispatch.Runner) *cobra.Command {
	rf := &rootFlags{runner: runner}

	cmd := &cobra.Command{
		Use:           "ni",
		Short:         "A small nix convenience wrapper",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(*rf)
			if err != nil {
				return err
			}
			rf.settings = s
			rf.logger = newLogger(cmd.ErrOrStderr(), rf.Debug)
			rf.logger.Debug("settings resolved",
				zap.String("config", s.ConfigPath),
				zap.String("script_dir", s.ScriptDir),
			)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&rf.ConfigPath, "config", "", "Config file path (or set NI_CONFIG; default: $XDG_CONFIG_HOME/ni/config.toml)")
	cmd.PersistentFlags().StringVar(&rf.ScriptDir, "script-dir", "", "Directory holding rebuild.sh, update.sh, clean.sh and audit.sh (or set NI_SCRIPT_DIR)")
	cmd.PersistentFlags().BoolVar(&rf.Debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&rf.DryRun, "dry-run", false, "Print script invocations instead of running them")

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.AddCommand(NewVersionCmd())
	cmd.AddCommand(NewConfigCmd(rf))
	cmd.AddCommand(NewRebuildCmd(rf))
	cmd.AddCommand(NewUpdateCmd(rf))
	cmd.AddCommand(NewCleanCmd(rf))
	cmd.AddCommand(NewAuditCmd(rf))

	return cmd
}

func (rf *rootFlags) dispatcher(cmd *cobra.Command) *dispatch.Dispatcher {
	runner := rf.runner
	switch {
	case runner != nil:
	case rf.DryRun:
		runner = dispatch.DryRunRunner{Out: cmd.ErrOrStderr()}
	default:
		runner = dispatch.ExecRunner{
			Stdin:  cmd.InOrStdin(),
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
		}
	}
	return dispatch.New(rf.settings.ScriptDir, runner, cmd.OutOrStdout(), rf.logger)
}

// runOperation runs op and turns a non-zero script exit into an exitCodeError.
func (rf *rootFlags) runOperation(cmd *cobra.Command, op dispatch.Operation) error {
	code, err := rf.dispatcher(cmd).Dispatch(cmd.Context(), op)
	if err != nil {
		return err
	}
	if code != 0 {
		return &exitCodeError{code: code}
	}
	return nil
}
