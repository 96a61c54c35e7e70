package config

import (
	"os"
	"path/filepath"
)

// GetRuntimePath resolves ROSTER_RUNTIME_PATH before the rest of the config is parsed,
// so the .env file inside it can still contribute values. Relative paths are under $HOME.
func GetRuntimePath() string {
	path := os.Getenv("ROSTER_RUNTIME_PATH")
	if path == "" {
		path = ".roster"
	}

	if !filepath.IsAbs(path) {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path)
		}
	}
	return path
}
