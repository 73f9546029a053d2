package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/summitcrm/RoofScope/internal/model"
)

// DefaultConfigPath returns the default file path for the application
// configuration.
func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "roofscope", "config.json"), nil
}

// SaveAppConfig writes the configuration to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveAppConfig(path string, config model.AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads the configuration from the specified JSON file.
// If the file does not exist, it returns the default configuration and
// saves it.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			config := model.DefaultAppConfig()
			if saveErr := SaveAppConfig(path, config); saveErr != nil {
				return config, saveErr
			}
			return config, nil
		}
		return model.AppConfig{}, err
	}
	var config model.AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, err
	}
	if config.RecentEstimates == nil {
		config.RecentEstimates = []string{}
	}
	return config, nil
}
