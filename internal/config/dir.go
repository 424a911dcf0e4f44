// Package config provides configuration loading for readmegen.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the readmegen configuration directory.
//
// Resolution:
//   - $READMEGEN_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/readmegen if set (respects XDG on any platform)
//   - %AppData%/readmegen on Windows
//   - ~/.config/readmegen on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("READMEGEN_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "readmegen")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "readmegen")
		}
	}

	// macOS and Linux: ~/.config/readmegen
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "readmegen")
}
