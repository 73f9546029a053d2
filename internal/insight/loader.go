// Package insight parses raw building-insight survey payloads. Parsing
// is deliberately forgiving: a sparse or partially broken payload still
// loads, with the gaps reported as warnings so the caller can surface
// them without aborting the estimate.
package insight

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/summitcrm/RoofScope/internal/model"
)

// LoadResult holds a parsed payload plus any diagnostics. Errors mean
// nothing usable was loaded; warnings are advisory and never change
// what downstream calculations see.
type LoadResult struct {
	Insight  model.BuildingInsight
	Errors   []string
	Warnings []string
}

// OK reports whether the payload parsed well enough to use.
func (r LoadResult) OK() bool {
	return len(r.Errors) == 0
}

// Parse decodes a building-insight JSON payload and inspects it for
// gaps the measurement engine will have to work around.
func Parse(data []byte) LoadResult {
	var result LoadResult

	if err := json.Unmarshal(data, &result.Insight); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot parse building insight JSON: %v", err))
		return result
	}

	segments := result.Insight.Segments()
	if len(segments) == 0 {
		if result.Insight.FallbackAreaSqFt() > 0 {
			result.Warnings = append(result.Warnings,
				"no roof segments in payload; measurements will be estimated from total area")
		} else {
			result.Warnings = append(result.Warnings,
				"no roof segments and no total area; all measurements will be zero")
		}
		return result
	}

	for i, seg := range segments {
		if seg.BoundingBox == nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("segment %d has no bounding box and will be skipped", i))
		}
		if seg.Stats.AreaMeters2 <= 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("segment %d reports non-positive area (%.2f m²)", i, seg.Stats.AreaMeters2))
		}
	}

	return result
}

// LoadFile reads and parses a building-insight JSON file.
func LoadFile(path string) LoadResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return LoadResult{Errors: []string{fmt.Sprintf("cannot read insight file: %v", err)}}
	}
	return Parse(data)
}
