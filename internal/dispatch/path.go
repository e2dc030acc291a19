package dispatch

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ResolvePath returns the canonical absolute form of p. A leading "~" is
// expanded to the user's home directory and symlinks are evaluated. The
// final element may be missing as long as its parent resolves.
func ResolvePath(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		return "", &PathResolutionError{Path: p, Err: errors.New("path is empty")}
	}
	expanded, err := expandHome(p)
	if err != nil {
		return "", &PathResolutionError{Path: p, Err: err}
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", &PathResolutionError{Path: p, Err: err}
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err == nil {
		return resolved, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", &PathResolutionError{Path: p, Err: err}
	}
	// A dangling symlink as the final element still counts as unresolvable.
	if _, lerr := os.Lstat(abs); lerr == nil {
		return "", &PathResolutionError{Path: p, Err: err}
	}

	parent, err := filepath.EvalSymlinks(filepath.Dir(abs))
	if err != nil {
		return "", &PathResolutionError{Path: p, Err: err}
	}
	return filepath.Join(parent, filepath.Base(abs)), nil
}

func expandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if p == "~" {
		return home, nil
	}
	return filepath.Join(home, p[2:]), nil
}
