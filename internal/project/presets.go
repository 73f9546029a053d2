package project

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/summitcrm/RoofScope/internal/model"
)

// Presets holds the contractor-editable estimating knobs: suggested
// waste factors and the priced material catalog. The file is YAML so
// office staff can edit it by hand.
type Presets struct {
	WastePresets []float64     `yaml:"waste_presets"`
	Catalog      model.Catalog `yaml:"catalog"`
}

// DefaultPresets returns presets seeded from the built-in waste options
// and starter catalog.
func DefaultPresets() Presets {
	return Presets{
		WastePresets: append([]float64(nil), model.WastePresets...),
		Catalog:      model.DefaultCatalog(),
	}
}

// DefaultPresetsPath returns the default file path for the presets
// file.
func DefaultPresetsPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "roofscope", "presets.yaml"), nil
}

// SavePresets writes the presets to the specified YAML file, creating
// parent directories as needed.
func SavePresets(path string, p Presets) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadPresets reads presets from the specified YAML file. If the file
// does not exist, it returns the defaults and saves them so the
// contractor has a file to edit.
func LoadPresets(path string) (Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			p := DefaultPresets()
			if saveErr := SavePresets(path, p); saveErr != nil {
				return p, saveErr
			}
			return p, nil
		}
		return Presets{}, err
	}
	var p Presets
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Presets{}, err
	}
	if len(p.WastePresets) == 0 {
		p.WastePresets = append([]float64(nil), model.WastePresets...)
	}
	return p, nil
}
