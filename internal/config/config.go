// Package config resolves the directory ncmdump stores its session file
// under, honoring the NCMDUMP_CONFIG_DIR override.
package config

import (
	"os"
	"path/filepath"

	"github.com/jdxj/ncmdump/internal/session"
)

// EnvConfigDir is the environment variable that overrides the default
// per-OS configuration directory.
const EnvConfigDir = "NCMDUMP_CONFIG_DIR"

// appDirName is the subdirectory created under the config root.
const appDirName = "ncmdump"

// Dir returns "<config-dir>/ncmdump", where <config-dir> is
// NCMDUMP_CONFIG_DIR when set, otherwise os.UserConfigDir().
func Dir() (string, error) {
	if v := os.Getenv(EnvConfigDir); v != "" {
		return filepath.Join(v, appDirName), nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appDirName), nil
}

// SessionPath returns "<config-dir>/ncmdump/session.json".
func SessionPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, session.FileName), nil
}
