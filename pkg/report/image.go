package report

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	// Standard raster formats.
	_ "image/gif"
	_ "image/jpeg"

	// Formats the PDF writer cannot embed directly; these are decoded and
	// transcoded to PNG before embedding.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageStatus classifies how the patient image was resolved for a record.
// Anything other than ImageDrawn degrades to a textual placeholder; it
// never fails the record.
type ImageStatus int

const (
	// ImageDrawn means the image was loaded and drawn.
	ImageDrawn ImageStatus = iota
	// ImageMissingPath means the record has no image path.
	ImageMissingPath
	// ImageNotFound means the resolved path does not exist.
	ImageNotFound
	// ImageUnsupported means the file is not a recognized raster format.
	ImageUnsupported
	// ImageDecodeFailed means the file was recognized but could not be
	// decoded or read.
	ImageDecodeFailed
)

// loadedImage is a patient image ready for embedding.
type loadedImage struct {
	data   []byte
	kind   string // fpdf image type: "PNG", "JPEG" or "GIF"
	width  float64
	height float64
}

// resolveImagePath resolves a record's image path against the directory
// containing the CSV file. Absolute paths pass through unchanged.
func resolveImagePath(baseDir, rel string) string {
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel)
	}
	return filepath.Join(baseDir, rel)
}

// loadImage reads and decodes a patient image, transcoding formats the
// PDF writer cannot embed natively. Failures are classified so callers
// can substitute the right placeholder message.
func loadImage(path string) (*loadedImage, ImageStatus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ImageNotFound, err
		}
		return nil, ImageDecodeFailed, fmt.Errorf("reading image: %w", err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, ImageUnsupported, fmt.Errorf("unsupported image format: %w", err)
		}
		return nil, ImageDecodeFailed, fmt.Errorf("decoding image: %w", err)
	}

	li := &loadedImage{
		data:   data,
		width:  float64(cfg.Width),
		height: float64(cfg.Height),
	}

	switch format {
	case "png", "jpeg", "gif":
		li.kind = strings.ToUpper(format)
	default:
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, ImageDecodeFailed, fmt.Errorf("decoding %s image: %w", format, err)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, ImageDecodeFailed, fmt.Errorf("transcoding %s image: %w", format, err)
		}
		li.data = buf.Bytes()
		li.kind = "PNG"
	}
	return li, ImageDrawn, nil
}

// scaleLongSide fits intrinsic image dimensions so the longer side equals
// imageMaxSide, preserving aspect ratio.
func scaleLongSide(w, h float64) (float64, float64) {
	if w >= h {
		return imageMaxSide, (h / w) * imageMaxSide
	}
	return (w / h) * imageMaxSide, imageMaxSide
}
