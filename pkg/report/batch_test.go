package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wardline/patientreport/pkg/layout"
	"github.com/wardline/patientreport/pkg/patient"
)

func batchFixture(t *testing.T) (c *Composer, dir string, cfg Config) {
	t.Helper()
	dir = t.TempDir()
	cfg = testConfig()
	cfg.OutputDir = filepath.Join(dir, "reports")

	c, err := NewComposer(writeTemplate(t, dir), layout.DefaultPositions(564, 793), cfg)
	require.NoError(t, err)
	return c, dir, cfg
}

func TestGenerateAllMissingImageStillCounts(t *testing.T) {
	c, dir, cfg := batchFixture(t)
	writePNG(t, dir, "photo.png", 400, 200)

	var records []patient.Record
	for i := 0; i < 5; i++ {
		rec := sampleRecord()
		rec.Name = fmt.Sprintf("Patient %c", 'A'+i)
		rec.ImagePath = "photo.png"
		records = append(records, rec)
	}
	missing := sampleRecord()
	missing.Name = "Patient F"
	missing.ImagePath = "nowhere.png"
	records = append(records, missing)

	res, err := GenerateAll(context.Background(), c, records, dir, cfg)
	require.NoError(t, err)
	assert.Equal(t, 6, res.Generated)
	assert.Equal(t, 6, res.Total)
	assert.Empty(t, res.Failures)

	for i := 0; i < 6; i++ {
		path := filepath.Join(cfg.OutputDir, fmt.Sprintf("Patient_%c_report.pdf", 'A'+i))
		assert.FileExists(t, path)
	}
}

func TestGenerateAllUnopenableTemplate(t *testing.T) {
	// A template that fails to open is refused before any record is
	// attempted: the composer never exists.
	_, err := NewComposer(filepath.Join(t.TempDir(), "nope.pdf"), nil, testConfig())
	require.Error(t, err)
}

func TestGenerateAllEmptyNameFallsBack(t *testing.T) {
	c, dir, cfg := batchFixture(t)

	var labels []string
	cfg.Progress = func(index, total int, label string) {
		labels = append(labels, label)
	}

	rec := sampleRecord()
	rec.Name = "   "

	res, err := GenerateAll(context.Background(), c, []patient.Record{rec}, dir, cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Generated)
	assert.Equal(t, []string{"Patient_1"}, labels)
	assert.FileExists(t, filepath.Join(cfg.OutputDir, "report_report.pdf"))
}

func TestGenerateAllSlugCollisionLastWriteWins(t *testing.T) {
	c, dir, cfg := batchFixture(t)

	a := sampleRecord()
	a.Name = "John Doe"
	b := sampleRecord()
	b.Name = "John*Doe"

	res, err := GenerateAll(context.Background(), c, []patient.Record{a, b}, dir, cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Generated)

	entries, err := os.ReadDir(cfg.OutputDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "John_Doe_report.pdf", entries[0].Name())
}

func TestGenerateAllCreatesOutputDir(t *testing.T) {
	c, dir, cfg := batchFixture(t)
	cfg.OutputDir = filepath.Join(dir, "out", "nested")

	res, err := GenerateAll(context.Background(), c, []patient.Record{sampleRecord()}, dir, cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Generated)
	assert.DirExists(t, cfg.OutputDir)
}

func TestGenerateAllCancelledBeforeRecords(t *testing.T) {
	c, dir, cfg := batchFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := GenerateAll(ctx, c, []patient.Record{sampleRecord()}, dir, cfg)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, res.Generated)
}

func TestGenerateAllEmptyInput(t *testing.T) {
	c, dir, cfg := batchFixture(t)

	res, err := GenerateAll(context.Background(), c, nil, dir, cfg)
	require.NoError(t, err)
	assert.Zero(t, res.Total)
	assert.Zero(t, res.Generated)
}

func TestGenerateAllProgressOrder(t *testing.T) {
	c, dir, cfg := batchFixture(t)

	var seen []string
	cfg.Progress = func(index, total int, label string) {
		seen = append(seen, fmt.Sprintf("%d/%d %s", index, total, label))
	}

	a := sampleRecord()
	a.Name = "Alpha"
	b := sampleRecord()
	b.Name = "Beta"

	_, err := GenerateAll(context.Background(), c, []patient.Record{a, b}, dir, cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"1/2 Alpha", "2/2 Beta"}, seen)
}
