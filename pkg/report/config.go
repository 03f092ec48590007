package report

import (
	"time"

	"go.uber.org/zap"
)

// FontConfig contains font settings for text drawn on the overlay.
type FontConfig struct {
	Name  string  // Font name (e.g., "Helvetica")
	Style string  // Font style ("", "B", "I", "BI")
	Size  float64 // Font size in points
}

// DefaultFont is the font for patient text fields.
var DefaultFont = FontConfig{Name: "Helvetica", Style: "", Size: 12}

const (
	placeholderFontSize = 9
	stampFontSize       = 8

	// Longer side of the patient photo box, 1.8 inches in points.
	imageMaxSide = 1.8 * 72.0

	stampRightInset  = 20.0
	stampBottomInset = 15.0
)

// ProgressFunc is invoked before each record is composited. index is
// 1-based; label identifies the record in user-facing messages.
type ProgressFunc func(index, total int, label string)

// Config holds options for report generation.
type Config struct {
	Font      FontConfig         // Text field font
	OutputDir string             // Directory for generated reports
	Logger    *zap.SugaredLogger // nil = no logging
	Progress  ProgressFunc       // nil = no progress reporting
	Now       func() time.Time   // Clock for the generation stamp; nil = time.Now
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Font:      DefaultFont,
		OutputDir: "reports",
	}
}

func (c Config) logger() *zap.SugaredLogger {
	if c.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return c.Logger
}

func (c Config) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}
