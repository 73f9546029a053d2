// Package project handles file persistence of saved estimates,
// application configuration, and contractor presets.
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/summitcrm/RoofScope/internal/model"
)

// SavedEstimate ties a measurement run and its material takeoff
// together for save/load.
type SavedEstimate struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	CreatedAt    string                 `json:"created_at"`
	WastePercent float64                `json:"waste_percent"`
	Metrics      model.RoofMetrics      `json:"metrics"`
	Materials    model.MaterialEstimate `json:"materials"`
}

// NewSavedEstimate creates a saved estimate with a generated ID and
// creation timestamp.
func NewSavedEstimate(name string, metrics model.RoofMetrics, materials model.MaterialEstimate) SavedEstimate {
	return SavedEstimate{
		ID:           uuid.New().String()[:8],
		Name:         name,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
		WastePercent: materials.WastePercent,
		Metrics:      metrics,
		Materials:    materials,
	}
}

// DefaultEstimatesDir returns the default directory for saved
// estimates.
func DefaultEstimatesDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "roofscope", "estimates"), nil
}

// SaveEstimate writes the estimate to the specified JSON file,
// creating parent directories as needed.
func SaveEstimate(path string, est SavedEstimate) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(est, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadEstimate reads an estimate from the specified JSON file.
func LoadEstimate(path string) (SavedEstimate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SavedEstimate{}, err
	}
	var est SavedEstimate
	if err := json.Unmarshal(data, &est); err != nil {
		return SavedEstimate{}, fmt.Errorf("failed to parse estimate file: %w", err)
	}
	if est.ID == "" {
		return SavedEstimate{}, fmt.Errorf("invalid estimate file: missing id")
	}
	return est, nil
}

// SaveToDefaultDir saves an estimate under the default directory using
// its ID as the filename, returning the path written.
func SaveToDefaultDir(est SavedEstimate) (string, error) {
	dir, err := DefaultEstimatesDir()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, est.ID+".json")
	return path, SaveEstimate(path, est)
}

// ListEstimates loads every estimate in the given directory, newest
// first. A missing directory is an empty list, not an error; files
// that fail to parse are skipped.
func ListEstimates(dir string) ([]SavedEstimate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []SavedEstimate{}, nil
		}
		return nil, err
	}

	var estimates []SavedEstimate
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		est, err := LoadEstimate(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		estimates = append(estimates, est)
	}

	sort.Slice(estimates, func(i, j int) bool {
		return estimates[i].CreatedAt > estimates[j].CreatedAt
	})
	return estimates, nil
}

// DeleteEstimate removes a saved estimate file.
func DeleteEstimate(path string) error {
	return os.Remove(path)
}
