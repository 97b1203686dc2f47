package config

import (
	"fmt"
	"os"
	"path/filepath"
)

type Config struct {
	DataDir      string
	ProfilePath  string
	SettingsPath string
	DBPath       string
}

// New resolves the data directory, defaulting to ~/.gojuon when dir is empty.
func New(dir string) (Config, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".gojuon")
	}
	return Config{
		DataDir:      dir,
		ProfilePath:  filepath.Join(dir, "profile.json"),
		SettingsPath: filepath.Join(dir, "settings.yaml"),
		DBPath:       filepath.Join(dir, "history.db"),
	}, nil
}
