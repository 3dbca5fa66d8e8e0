package config

import (
	"os"
	"path/filepath"
)

// EnvConfigPath overrides the default config location.
const EnvConfigPath = "BEHAVIORKIT_CONFIG"

// GetConfigPath returns the configuration file path. It first checks the
// BEHAVIORKIT_CONFIG environment variable, then falls back to
// ~/.behaviorkit/config.yaml.
func GetConfigPath() (string, error) {
	if configPath := os.Getenv(EnvConfigPath); configPath != "" {
		return configPath, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".behaviorkit", "config.yaml"), nil
}
