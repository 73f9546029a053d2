package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/table"

	"github.com/summitcrm/RoofScope/internal/geo"
	"github.com/summitcrm/RoofScope/internal/model"
)

// dxfLayers maps each edge type to a CAD layer name and color.
var dxfLayers = []struct {
	edgeType model.EdgeType
	name     string
	color    color.ColorNumber
}{
	{model.EdgeEave, "EAVE", color.Blue},
	{model.EdgeRake, "RAKE", color.Green},
	{model.EdgeRidge, "RIDGE", color.Red},
	{model.EdgeValley, "VALLEY", color.Cyan},
	{model.EdgeHip, "HIP", color.Magenta},
}

// ExportDXF writes the classified segment edges as a CAD drawing with
// one layer per edge type. Coordinates are feet in a local flat frame
// anchored at the south-west extent of the roof. Estimated metrics have
// no segment geometry and cannot be exported.
func ExportDXF(path string, metrics model.RoofMetrics) error {
	if len(metrics.Segments) == 0 {
		return fmt.Errorf("no measured segments to export")
	}

	origin := metrics.Segments[0].Coordinates[0]
	for _, e := range metrics.Segments {
		for _, c := range e.Coordinates {
			if c.Latitude < origin.Latitude {
				origin.Latitude = c.Latitude
			}
			if c.Longitude < origin.Longitude {
				origin.Longitude = c.Longitude
			}
		}
	}

	d := dxf.NewDrawing()

	for _, layer := range dxfLayers {
		if _, err := d.AddLayer(layer.name, layer.color, table.LT_CONTINUOUS, true); err != nil {
			return fmt.Errorf("failed to add layer %s: %w", layer.name, err)
		}
		for _, e := range metrics.Segments {
			if e.Type != layer.edgeType {
				continue
			}
			x1, y1 := geo.LocalXY(origin, e.Coordinates[0])
			x2, y2 := geo.LocalXY(origin, e.Coordinates[1])
			if _, err := d.Line(x1, y1, 0, x2, y2, 0); err != nil {
				return fmt.Errorf("failed to draw %s edge: %w", e.Type, err)
			}
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save DXF: %w", err)
	}
	return nil
}
