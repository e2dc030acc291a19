package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const (
	EnvScriptDir  = "NI_SCRIPT_DIR"
	EnvConfigPath = "NI_CONFIG"
	EnvFlakePath  = "NIXOS_CONFIG"
	EnvHost       = "NI_HOST"
)

// defaultScriptDir can be set at build time via -ldflags "-X ni/internal/cli.defaultScriptDir=/path/to/scripts".
var defaultScriptDir = "/usr/local/share/ni/scripts"

// Settings is the effective configuration, resolved once per process.
type Settings struct {
	ConfigPath string `json:"config_path"`
	ScriptDir  string `json:"script_dir"`
	Path       string `json:"path,omitempty"`
	Host       string `json:"host,omitempty"`
}

// config.toml key mapping.
type fileConfig struct {
	ScriptDir string `toml:"script_dir"`
	Path      string `toml:"path"`
	Host      string `toml:"host"`
}

func defaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "ni", "config.toml"), nil
}

func loadFileConfig(path string) (fileConfig, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fileConfig{}, err
	}

	var cfg fileConfig
	if meta.IsDefined("script_dir") {
		cfg.ScriptDir = strings.TrimSpace(raw.ScriptDir)
	}
	if meta.IsDefined("path") {
		cfg.Path = strings.TrimSpace(raw.Path)
	}
	if meta.IsDefined("host") {
		cfg.Host = strings.TrimSpace(raw.Host)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fileConfig{}, fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	return cfg, nil
}

// resolveSettings applies flag > env > config file > build-time default.
// A missing config file is only an error when it was asked for explicitly.
func resolveSettings(rf rootFlags) (Settings, error) {
	// .env never overrides variables that are already set.
	_ = godotenv.Load()

	explicit := firstNonEmpty(rf.ConfigPath, envFirst("", EnvConfigPath))
	p := explicit
	if p == "" {
		var err error
		p, err = defaultConfigPath()
		if err != nil {
			return Settings{}, err
		}
	}

	fc, err := loadFileConfig(p)
	if err != nil {
		if explicit != "" || !errors.Is(err, os.ErrNotExist) {
			return Settings{}, fmt.Errorf("load config %s: %w", p, err)
		}
		fc = fileConfig{}
	}

	return Settings{
		ConfigPath: p,
		ScriptDir:  firstNonEmpty(rf.ScriptDir, envFirst("", EnvScriptDir), fc.ScriptDir, defaultScriptDir),
		Path:       firstNonEmpty(envFirst("", EnvFlakePath), fc.Path),
		Host:       firstNonEmpty(envFirst("", EnvHost), fc.Host),
	}, nil
}

func NewConfigCmd(rf *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect local CLI config",
	}
	cmd.AddCommand(newConfigViewCmd(rf))
	return cmd
}

func newConfigViewCmd(rf *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Print the effective config (file + env + flags)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := json.MarshalIndent(rf.settings, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
}

func envFirst(def string, keys ...string) string {
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok {
			return v
		}
	}
	return def
}

func firstNonEmpty(vs ...string) string {
	for _, v := range vs {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
