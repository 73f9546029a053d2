package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new estimates
	DefaultWastePercent float64 `json:"default_waste_percent"`
	DefaultPitch        string  `json:"default_pitch"` // pitch label assumed for quick quotes

	// Application preferences
	CompanyName     string   `json:"company_name"` // printed on report headers
	ExportDir       string   `json:"export_dir"`   // default directory for PDF/XLSX/DXF output
	RecentEstimates []string `json:"recent_estimates"`
}

// maxRecentEstimates bounds the recent-file list.
const maxRecentEstimates = 10

// DefaultAppConfig returns an AppConfig populated with sensible
// defaults: 10% waste suits most single-layer replacements.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultWastePercent: 10,
		DefaultPitch:        DefaultPitchLabel,
		RecentEstimates:     []string{},
	}
}

// AddRecentEstimate prepends a path to the recent list, deduplicating
// and trimming to the configured maximum.
func (c *AppConfig) AddRecentEstimate(path string) {
	recent := []string{path}
	for _, p := range c.RecentEstimates {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > maxRecentEstimates {
		recent = recent[:maxRecentEstimates]
	}
	c.RecentEstimates = recent
}
