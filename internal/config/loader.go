package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"mcp-fred/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/mcp-fred"
	configFileName = "config.yaml"
)

// GetDefaultConfigPathOrPanic returns the per-user configuration directory.
func GetDefaultConfigPathOrPanic() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Errorf("could not determine user config directory: %w", err))
	}

	return filepath.Join(homeDir, userConfigDir)
}

// LoadConfig loads configuration from the specified directory. Defaults are
// applied first and config.yaml, when present, overlays them. A missing file
// is not an error; a malformed one is.
func LoadConfig(configPath string) (Config, error) {
	configFilePath := filepath.Join(configPath, configFileName)
	config := GetDefaultConfig()

	data, err := os.ReadFile(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("Config", "No config.yaml found at %s, using defaults", configFilePath)
			return config, nil
		}
		return Config{}, fmt.Errorf("error reading config from %s: %w", configFilePath, err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("error loading config from %s: %w", configFilePath, err)
	}
	logging.Debug("Config", "Loaded configuration from %s", configFilePath)
	return config, nil
}
