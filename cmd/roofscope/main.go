// RoofScope — Roof Measurement & Material Estimator
//
// Converts aerial building-insight survey data into classified roof
// measurements and a material takeoff with waste-factor adjustment.
//
// Build:
//   go build -o roofscope ./cmd/roofscope
//
// Usage:
//   roofscope -input insight.json -waste 10 -pdf report.pdf
//   roofscope -input insight.json -compare
//   roofscope -template "Ranch gable 40x30" -waste 15

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/summitcrm/RoofScope/internal/engine"
	"github.com/summitcrm/RoofScope/internal/export"
	"github.com/summitcrm/RoofScope/internal/insight"
	"github.com/summitcrm/RoofScope/internal/model"
	"github.com/summitcrm/RoofScope/internal/project"
)

func main() {
	input := flag.String("input", "", "building insight JSON file")
	template := flag.String("template", "", "quick-quote template name (instead of -input)")
	jobName := flag.String("job", "", "job name printed on reports and labels")
	waste := flag.Float64("waste", -1, "waste percentage (default from config)")
	compare := flag.Bool("compare", false, "show the takeoff at every waste preset")
	cost := flag.Bool("cost", false, "price the takeoff against the material catalog")
	jsonOut := flag.String("json", "", "write metrics and materials as JSON to this file")
	pdfOut := flag.String("pdf", "", "write estimate report PDF to this file")
	xlsxOut := flag.String("xlsx", "", "write estimate workbook to this file")
	dxfOut := flag.String("dxf", "", "write roof plan DXF to this file")
	labelsOut := flag.String("labels", "", "write QR pick labels PDF to this file")
	save := flag.Bool("save", false, "save the estimate to the local estimate store")
	listTemplates := flag.Bool("list-templates", false, "list quick-quote templates and exit")
	flag.Parse()

	if *listTemplates {
		for _, t := range model.BuiltinTemplates {
			fmt.Printf("%-24s %s %gx%g ft, %s pitch\n", t.Name, t.Style, t.LengthFeet, t.WidthFeet, t.Pitch)
		}
		return
	}

	configPath, err := project.DefaultConfigPath()
	if err != nil {
		fatal("cannot resolve config path: %v", err)
	}
	config, err := project.LoadAppConfig(configPath)
	if err != nil {
		// A broken config file should not block an estimate.
		fmt.Fprintf(os.Stderr, "warning: using default config: %v\n", err)
		config = model.DefaultAppConfig()
	}

	wastePercent := config.DefaultWastePercent
	if *waste >= 0 {
		wastePercent = *waste
	}

	metrics, ok := resolveMetrics(*input, *template)
	if !ok {
		flag.Usage()
		os.Exit(2)
	}

	materials := model.CalculateMaterials(metrics, wastePercent)
	printSummary(metrics, materials)

	if *compare {
		printComparison(metrics)
	}

	if *cost {
		printCost(materials)
	}

	if *jsonOut != "" {
		writeJSON(*jsonOut, metrics, materials)
	}
	if *pdfOut != "" {
		opts := export.ReportOptions{JobName: *jobName, CompanyName: config.CompanyName}
		if err := export.ExportPDF(*pdfOut, metrics, materials, opts); err != nil {
			fatal("PDF export failed: %v", err)
		}
		fmt.Printf("wrote %s\n", *pdfOut)
	}
	if *xlsxOut != "" {
		if err := export.ExportXLSX(*xlsxOut, metrics, materials); err != nil {
			fatal("XLSX export failed: %v", err)
		}
		fmt.Printf("wrote %s\n", *xlsxOut)
	}
	if *dxfOut != "" {
		if err := export.ExportDXF(*dxfOut, metrics); err != nil {
			fatal("DXF export failed: %v", err)
		}
		fmt.Printf("wrote %s\n", *dxfOut)
	}
	if *labelsOut != "" {
		if err := export.ExportLabels(*labelsOut, materials, *jobName); err != nil {
			fatal("label export failed: %v", err)
		}
		fmt.Printf("wrote %s\n", *labelsOut)
	}

	if *save {
		name := *jobName
		if name == "" {
			name = "Untitled"
		}
		est := project.NewSavedEstimate(name, metrics, materials)
		path, err := project.SaveToDefaultDir(est)
		if err != nil {
			fatal("cannot save estimate: %v", err)
		}
		config.AddRecentEstimate(path)
		if err := project.SaveAppConfig(configPath, config); err != nil {
			fmt.Fprintf(os.Stderr, "warning: cannot update config: %v\n", err)
		}
		fmt.Printf("saved estimate %s to %s\n", est.ID, path)
	}
}

// resolveMetrics produces roof metrics from either a survey payload or
// a quick-quote template.
func resolveMetrics(inputPath, templateName string) (model.RoofMetrics, bool) {
	switch {
	case inputPath != "":
		result := insight.LoadFile(inputPath)
		for _, w := range result.Warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", w)
		}
		if !result.OK() {
			for _, e := range result.Errors {
				fmt.Fprintf(os.Stderr, "error: %s\n", e)
			}
			os.Exit(1)
		}
		return engine.CalculateRoofMetrics(result.Insight), true
	case templateName != "":
		t, found := model.GetTemplate(templateName)
		if !found {
			fmt.Fprintf(os.Stderr, "error: unknown template %q (see -list-templates)\n", templateName)
			os.Exit(1)
		}
		return t.Metrics(), true
	default:
		return model.RoofMetrics{}, false
	}
}

func printSummary(m model.RoofMetrics, est model.MaterialEstimate) {
	tag := "measured"
	if m.IsEstimated {
		tag = "ESTIMATED"
	}
	fmt.Printf("Roof metrics (%s)\n", tag)
	fmt.Printf("  Area:       %.0f sq ft (%d squares)\n", m.TotalAreaSqFt, m.Squares())
	fmt.Printf("  Pitch:      %s\n", m.PitchLabel())
	fmt.Printf("  Perimeter:  %.0f ft\n", m.PerimeterFeet)
	fmt.Printf("  Eaves %.0f / Rakes %.0f / Ridges %.0f / Valleys %.0f / Hips %.0f ft\n",
		m.EavesFeet, m.RakesFeet, m.RidgesFeet, m.ValleysFeet, m.HipsFeet)

	fmt.Printf("\nMaterials at %.0f%% waste\n", est.WastePercent)
	for _, item := range est.Items {
		fmt.Printf("  %-20s %8.0f -> %8.0f %s\n", item.Name, item.Raw, item.WithWaste, item.Unit)
	}
	fmt.Printf("  Shingle order: %d squares / %d bundles\n", est.ShingleSquares, est.ShingleBundles)
}

func printComparison(m model.RoofMetrics) {
	fmt.Printf("\nWaste comparison\n")
	for _, est := range model.CompareWastePresets(m, nil) {
		fmt.Printf("  %4.0f%%: %3d squares / %3d bundles\n",
			est.WastePercent, est.ShingleSquares, est.ShingleBundles)
	}
}

func printCost(est model.MaterialEstimate) {
	presetsPath, err := project.DefaultPresetsPath()
	if err != nil {
		fatal("cannot resolve presets path: %v", err)
	}
	presets, err := project.LoadPresets(presetsPath)
	if err != nil {
		fatal("cannot load presets: %v", err)
	}

	summary := model.EstimateCost(est, presets.Catalog)
	fmt.Printf("\nCost (catalog pricing)\n")
	for _, line := range summary.Lines {
		fmt.Printf("  %-20s %8.0f %-10s @ %6.2f = %9.2f\n",
			line.Name, line.Quantity, line.Unit, line.UnitPrice, line.Total)
	}
	for _, name := range summary.Unpriced {
		fmt.Printf("  %-20s (no catalog price)\n", name)
	}
	fmt.Printf("  %-20s %43.2f\n", "Total", summary.Total)
}

func writeJSON(path string, m model.RoofMetrics, est model.MaterialEstimate) {
	out := struct {
		Metrics   model.RoofMetrics      `json:"metrics"`
		Materials model.MaterialEstimate `json:"materials"`
	}{m, est}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		fatal("cannot marshal output: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		fatal("cannot write %s: %v", path, err)
	}
	fmt.Printf("wrote %s\n", path)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
