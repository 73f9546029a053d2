package model

import "github.com/google/uuid"

// CatalogItem is one priced material in the contractor's catalog.
// Names must match the takeoff line names from CalculateMaterials for
// pricing to apply.
type CatalogItem struct {
	ID        string  `json:"id" yaml:"id"`
	Name      string  `json:"name" yaml:"name"`
	Unit      string  `json:"unit" yaml:"unit"`
	UnitPrice float64 `json:"unit_price" yaml:"unit_price"`
	SKU       string  `json:"sku,omitempty" yaml:"sku,omitempty"`
}

// NewCatalogItem creates a catalog item with a generated ID.
func NewCatalogItem(name, unit string, unitPrice float64) CatalogItem {
	return CatalogItem{
		ID:        uuid.New().String()[:8],
		Name:      name,
		Unit:      unit,
		UnitPrice: unitPrice,
	}
}

// Catalog is the contractor's priced material list.
type Catalog struct {
	Items []CatalogItem `json:"items" yaml:"items"`
}

// UnitBundle prices shingles per bundle rather than per square foot.
const UnitBundle = "bundle"

// DefaultCatalog returns a starter catalog with typical retail prices.
// Contractors are expected to overwrite these with supplier pricing.
func DefaultCatalog() Catalog {
	return Catalog{Items: []CatalogItem{
		NewCatalogItem("Starter strip", UnitLinearFeet, 0.65),
		NewCatalogItem("Drip edge", UnitLinearFeet, 1.10),
		NewCatalogItem("Hip & ridge cap", UnitLinearFeet, 2.40),
		NewCatalogItem("Valley metal", UnitLinearFeet, 3.25),
		NewCatalogItem("Ice & water shield", UnitLinearFeet, 1.45),
		NewCatalogItem("Shingles", UnitBundle, 38.00),
	}}
}

// Find returns the catalog item with the given material name.
func (c Catalog) Find(name string) (CatalogItem, bool) {
	for _, item := range c.Items {
		if item.Name == name {
			return item, true
		}
	}
	return CatalogItem{}, false
}

// CostLine is one priced row of a cost summary.
type CostLine struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// CostSummary prices a material estimate against a catalog. Materials
// missing from the catalog appear in Unpriced so the gap is visible
// instead of silently costing zero.
type CostSummary struct {
	Lines    []CostLine `json:"lines"`
	Unpriced []string   `json:"unpriced,omitempty"`
	Total    float64    `json:"total"`
}

// EstimateCost prices a material takeoff. Shingles are priced per
// bundle when the catalog unit is "bundle"; every other line is priced
// on its with-waste quantity.
func EstimateCost(est MaterialEstimate, cat Catalog) CostSummary {
	var summary CostSummary
	for _, req := range est.Items {
		item, ok := cat.Find(req.Name)
		if !ok {
			summary.Unpriced = append(summary.Unpriced, req.Name)
			continue
		}

		qty := req.WithWaste
		unit := req.Unit
		if item.Unit == UnitBundle && req.Bundles > 0 {
			qty = float64(req.Bundles)
			unit = UnitBundle
		}

		line := CostLine{
			Name:      req.Name,
			Quantity:  qty,
			Unit:      unit,
			UnitPrice: item.UnitPrice,
			Total:     qty * item.UnitPrice,
		}
		summary.Lines = append(summary.Lines, line)
		summary.Total += line.Total
	}
	return summary
}
