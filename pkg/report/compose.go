package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"codeberg.org/go-pdf/fpdf"
	"codeberg.org/go-pdf/fpdf/contrib/gofpdi"
	"golang.org/x/text/encoding/charmap"

	"github.com/wardline/patientreport/pkg/layout"
	"github.com/wardline/patientreport/pkg/patient"
)

// Composer renders one merged report page per patient record: the static
// template page painted first, with the per-record text and image overlay
// drawn on top.
type Composer struct {
	templateData []byte
	positions    map[layout.Field]layout.Position
	pageWidth    float64
	pageHeight   float64
	cfg          Config
}

// NewComposer loads the template into memory and takes an independent
// snapshot of the field positions. An unreadable template is an error;
// unreadable page geometry falls back to US Letter.
func NewComposer(templatePath string, positions map[layout.Field]layout.Position, cfg Config) (*Composer, error) {
	data, err := readTemplate(templatePath)
	if err != nil {
		return nil, err
	}

	snapshot := make(map[layout.Field]layout.Position, len(positions))
	for f, p := range positions {
		snapshot[f] = p
	}

	w, h := probeGeometry(data)
	return &Composer{
		templateData: data,
		positions:    snapshot,
		pageWidth:    w,
		pageHeight:   h,
		cfg:          cfg,
	}, nil
}

// PageSize returns the template page geometry in points.
func (c *Composer) PageSize() (w, h float64) {
	return c.pageWidth, c.pageHeight
}

// Compose renders the report for a single record and returns it as
// standalone single-page PDF bytes. bedNumber is the 1-based sequential
// counter shown in the bed_id field. baseDir anchors relative image paths.
func (c *Composer) Compose(rec patient.Record, bedNumber int, baseDir string) (out []byte, err error) {
	// gofpdi panics on malformed template pages; contain that as a
	// per-record error so the batch can continue.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("importing template page: %v", r)
		}
	}()

	pdf := fpdf.New("P", "pt", "", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPageFormat("P", fpdf.SizeType{Wd: c.pageWidth, Ht: c.pageHeight})

	imp := gofpdi.NewImporter()
	rs := io.ReadSeeker(bytes.NewReader(c.templateData))
	tpl := imp.ImportPageFromStream(pdf, &rs, 1, "/MediaBox")
	imp.UseImportedTemplate(pdf, tpl, 0, 0, c.pageWidth, 0)

	c.drawTextFields(pdf, rec, bedNumber)
	c.drawPatientImage(pdf, rec, baseDir)
	c.drawStamp(pdf)

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("compositing report: %w", err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("serializing report: %w", err)
	}
	return buf.Bytes(), nil
}

// drawTextFields draws every positioned text field. The bed_id field is
// always the zero-padded sequential bed number; any bed data in the
// record is ignored.
func (c *Composer) drawTextFields(pdf *fpdf.Fpdf, rec patient.Record, bedNumber int) {
	pdf.SetFont(c.cfg.Font.Name, c.cfg.Font.Style, c.cfg.Font.Size)

	for _, f := range layout.Fields {
		if f.Kind() != layout.TextField {
			continue
		}
		pos, ok := c.positions[f]
		if !ok {
			continue
		}

		text := rec.Value(f)
		if f == layout.FieldBedID {
			text = fmt.Sprintf("%02d", bedNumber)
		}
		pdf.Text(layout.ClampX(pos.X, c.pageWidth), pos.Y, pdfText(text))
	}
}

// drawPatientImage draws the patient photo scaled to the photo box, or a
// textual placeholder when the image cannot be used. Image problems never
// fail the record.
func (c *Composer) drawPatientImage(pdf *fpdf.Fpdf, rec patient.Record, baseDir string) ImageStatus {
	pos, ok := c.positions[layout.FieldImage]
	if !ok {
		return ImageDrawn
	}
	x := layout.ClampX(pos.X, c.pageWidth)

	rel := strings.TrimSpace(rec.ImagePath)
	if rel == "" {
		c.drawPlaceholder(pdf, x, pos.Y, "No image path")
		return ImageMissingPath
	}

	path := resolveImagePath(baseDir, rel)
	img, status, err := loadImage(path)
	switch status {
	case ImageDrawn:
	case ImageNotFound:
		c.cfg.logger().Warnw("patient image not found", "path", path)
		c.drawPlaceholder(pdf, x, pos.Y, "Image not found")
		return status
	default:
		c.cfg.logger().Warnw("patient image unusable", "path", path, "error", err)
		c.drawPlaceholder(pdf, x, pos.Y, fmt.Sprintf("Image Error: %v", err))
		return status
	}

	w, h := scaleLongSide(img.width, img.height)
	opts := fpdf.ImageOptions{ImageType: img.kind, ReadDpi: false}
	pdf.RegisterImageOptionsReader("patient_image", opts, bytes.NewReader(img.data))
	pdf.ImageOptions("patient_image", x, pos.Y, w, h, false, opts, 0, "")
	return ImageDrawn
}

// drawPlaceholder writes a short message where the image would have been.
func (c *Composer) drawPlaceholder(pdf *fpdf.Fpdf, x, y float64, msg string) {
	pdf.SetFont(c.cfg.Font.Name, c.cfg.Font.Style, placeholderFontSize)
	pdf.Text(x, y, pdfText(msg))
	pdf.SetFont(c.cfg.Font.Name, c.cfg.Font.Style, c.cfg.Font.Size)
}

// drawStamp draws the generation timestamp right-anchored near the bottom
// edge. The bottom inset is converted through ToRenderY, the one place
// bottom-origin coordinates enter the drawing code.
func (c *Composer) drawStamp(pdf *fpdf.Fpdf) {
	stamp := "Generated: " + c.cfg.now().Format("2006-01-02 15:04:05")

	pdf.SetFont(c.cfg.Font.Name, c.cfg.Font.Style, stampFontSize)
	w := pdf.GetStringWidth(stamp)
	y := layout.ToRenderY(stampBottomInset, c.pageHeight)
	pdf.Text(c.pageWidth-stampRightInset-w, y, stamp)
	pdf.SetFont(c.cfg.Font.Name, c.cfg.Font.Style, c.cfg.Font.Size)
}

// pdfText converts text to ISO-8859-1 to avoid PDF encoding issues,
// falling back to the raw string when it cannot be represented.
func pdfText(s string) string {
	latin1, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return s
	}
	return latin1
}

// readTemplate loads the template file and checks it is a PDF document.
func readTemplate(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening template: %w", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return nil, fmt.Errorf("template %s is not a PDF document", path)
	}
	return data, nil
}

// probeGeometry reads the first page's MediaBox. Geometry that cannot be
// read falls back to US Letter rather than failing the operation.
func probeGeometry(data []byte) (w, h float64) {
	defer func() {
		if recover() != nil {
			w, h = layout.LetterWidth, layout.LetterHeight
		}
	}()

	pdf := fpdf.New("P", "pt", "", "")
	imp := gofpdi.NewImporter()
	rs := io.ReadSeeker(bytes.NewReader(data))
	imp.ImportPageFromStream(pdf, &rs, 1, "/MediaBox")

	if mb, ok := imp.GetPageSizes()[1]["/MediaBox"]; ok {
		w, h = mb["w"], mb["h"]
	}
	if w <= 0 || h <= 0 {
		w, h = layout.LetterWidth, layout.LetterHeight
	}
	return w, h
}

// TemplateGeometry reports the first-page size of a template document,
// with the same Letter fallback as NewComposer.
func TemplateGeometry(templatePath string) (w, h float64, err error) {
	data, err := readTemplate(templatePath)
	if err != nil {
		return 0, 0, err
	}
	w, h = probeGeometry(data)
	return w, h, nil
}
