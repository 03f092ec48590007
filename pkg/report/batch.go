package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wardline/patientreport/pkg/patient"
)

// Failure records one record that could not be rendered.
type Failure struct {
	Index int    // 0-based position in the input
	Label string // Record name, or Patient_<n> when blank
	Err   error
}

// Result aggregates the outcome of one batch run.
type Result struct {
	Generated int
	Total     int
	Failures  []Failure
}

// GenerateAll renders one report per record, strictly in input order, and
// writes each to <outputDir>/<slug>_report.pdf. Records are numbered from
// one; the number only feeds the bed_id display value. A failing record
// is logged and recorded, and the batch moves on; already-written files
// are never rolled back. Slug collisions overwrite, last write wins.
//
// Cancellation is checked between records only, so an output file is
// either absent or complete. The returned error is non-nil for
// operation-level problems (output directory creation, cancellation),
// never for per-record failures.
func GenerateAll(ctx context.Context, c *Composer, records []patient.Record, baseDir string, cfg Config) (Result, error) {
	res := Result{Total: len(records)}
	log := cfg.logger()

	outDir := cfg.OutputDir
	if outDir == "" {
		outDir = DefaultConfig().OutputDir
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return res, fmt.Errorf("creating output directory: %w", err)
	}

	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		label := strings.TrimSpace(rec.Name)
		if label == "" {
			label = fmt.Sprintf("Patient_%d", i+1)
		}
		if cfg.Progress != nil {
			cfg.Progress(i+1, res.Total, label)
		}

		data, err := c.Compose(rec, i+1, baseDir)
		if err != nil {
			log.Warnw("report failed", "record", label, "error", err)
			res.Failures = append(res.Failures, Failure{Index: i, Label: label, Err: err})
			continue
		}

		outPath := filepath.Join(outDir, Slugify(rec.Name)+"_report.pdf")
		if err := writeFileAtomic(outPath, data); err != nil {
			log.Warnw("report write failed", "record", label, "error", err)
			res.Failures = append(res.Failures, Failure{Index: i, Label: label, Err: err})
			continue
		}

		log.Infow("report generated", "record", label, "path", outPath)
		res.Generated++
	}
	return res, nil
}

// writeFileAtomic writes data to a temporary file in the target directory
// and renames it into place, so a report file never exists half-written.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".report-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
