// patientreport is a command-line tool for generating personalized patient
// report PDFs from a PDF template and a CSV of patient data.
//
// Each CSV row produces one single-page PDF: the template page with the
// patient's text fields, photo and a generation timestamp overlaid at
// configurable positions. Field positions default to the built-in layout
// for the ward template and can be overridden with a YAML layout file.
//
// Usage:
//
//	patientreport -template template.pdf -csv patients.csv [options]
//
// Required flags:
//
//	-template string  Path to the single-page PDF template
//	-csv string       Path to the patient data CSV
//
// Options:
//
//	-out string          Output directory for generated reports (default "reports")
//	-layout string       YAML file overriding field positions
//	-save-layout string  Write the effective layout to this YAML file
//	-verbose             Enable debug logging
//
// Examples:
//
// Generate reports with the default layout:
//
//	patientreport -template ward.pdf -csv patients.csv
//
// Generate with adjusted field positions:
//
//	patientreport -template ward.pdf -csv patients.csv -layout positions.yml
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/wardline/patientreport/pkg/layout"
	"github.com/wardline/patientreport/pkg/patient"
	"github.com/wardline/patientreport/pkg/report"
)

func main() {
	templatePath := flag.String("template", "", "Path to the single-page PDF template")
	csvPath := flag.String("csv", "", "Path to the patient data CSV")
	outDir := flag.String("out", "reports", "Output directory for generated reports")
	layoutPath := flag.String("layout", "", "YAML file overriding field positions")
	saveLayoutPath := flag.String("save-layout", "", "Write the effective layout to this YAML file")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	if *templatePath == "" {
		fmt.Fprintln(os.Stderr, "Error: -template flag is required")
		flag.PrintDefaults()
		os.Exit(1)
	}
	if *csvPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -csv flag is required")
		flag.PrintDefaults()
		os.Exit(1)
	}

	logger := newLogger(*verbose)
	defer logger.Sync()

	records, err := patient.LoadCSV(*csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load CSV: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d patients from %s\n", len(records), *csvPath)

	w, h, err := report.TemplateGeometry(*templatePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read template: %v\n", err)
		os.Exit(1)
	}

	store := layout.NewStore(w, h)
	if *layoutPath != "" {
		overrides, err := layout.LoadFile(*layoutPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load layout: %v\n", err)
			os.Exit(1)
		}
		for f, p := range overrides {
			store.Update(f, layout.Clamp(p, w, h))
		}
	}
	if *saveLayoutPath != "" {
		if err := layout.SaveFile(*saveLayoutPath, store.Snapshot()); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to save layout: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Layout written to", *saveLayoutPath)
	}

	cfg := report.DefaultConfig()
	cfg.OutputDir = *outDir
	cfg.Logger = logger
	cfg.Progress = func(index, total int, label string) {
		fmt.Printf("Generating report %d/%d: %s\n", index, total, label)
	}

	composer, err := report.NewComposer(*templatePath, store.Snapshot(), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load template: %v\n", err)
		os.Exit(1)
	}

	res, err := report.GenerateAll(context.Background(), composer, records, filepath.Dir(*csvPath), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Report generation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated %d/%d reports in %s\n", res.Generated, res.Total, *outDir)
	for _, f := range res.Failures {
		fmt.Fprintf(os.Stderr, "Warning: %s: %v\n", f.Label, f.Err)
	}
	if res.Total > 0 && res.Generated == 0 {
		os.Exit(1)
	}
}

// newLogger builds the process logger; -verbose switches to the
// development config with debug output.
func newLogger(verbose bool) *zap.SugaredLogger {
	var (
		logger *zap.Logger
		err    error
	)
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	return logger.Sugar()
}
