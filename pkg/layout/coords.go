package layout

import "math"

// Letter-size page dimensions in points, used when template geometry
// cannot be read.
const (
	LetterWidth  = 612.0
	LetterHeight = 792.0
)

// Position is a coordinate pair in PDF points, top-left origin
// (x grows rightward, y grows downward from the top edge).
type Position struct {
	X float64
	Y float64
}

// fieldRatios holds the default layout as page-size fractions, measured
// from the 564x793 reference render of the ward template. The image entry
// marks the top-left corner of the photo box.
var fieldRatios = map[Field]Position{
	FieldBedID:           {0.390070922, 0.119798235},
	FieldName:            {0.407801418, 0.233291299},
	FieldAge:             {0.407801418, 0.271122320},
	FieldGender:          {0.407801418, 0.308953342},
	FieldAttendees:       {0.407801418, 0.346784363},
	FieldImage:           {0.664893617, 0.208070618},
	FieldDateOfDiagnosis: {0.425531915, 0.706179067},
	FieldCancerType:      {0.425531915, 0.744010088},
	FieldCancerStage:     {0.425531915, 0.781841110},
	FieldCancerGrade:     {0.425531915, 0.819672131},
}

// DefaultPositions converts the built-in ratio table to absolute point
// coordinates for the given page size, rounding to the nearest integer.
// Any template of this family starts from these defaults; there is no
// template detection.
func DefaultPositions(pageWidth, pageHeight float64) map[Field]Position {
	out := make(map[Field]Position, len(Fields))
	for _, f := range Fields {
		r := fieldRatios[f]
		out[f] = Position{
			X: math.Round(r.X * pageWidth),
			Y: math.Round(r.Y * pageHeight),
		}
	}
	return out
}

// ToRenderY converts a top-left-origin y coordinate to the bottom-left
// origin space, clamped to the page. The conversion is its own inverse,
// so it also maps bottom-anchored offsets back into editing space.
func ToRenderY(yFromTop, pageHeight float64) float64 {
	return clamp(pageHeight-yFromTop, 0, pageHeight)
}

// ClampX bounds an x coordinate to the page width.
func ClampX(x, pageWidth float64) float64 {
	return clamp(x, 0, pageWidth)
}

// Clamp bounds a position to the page rectangle. Producers of position
// edits (drag handlers, layout files) clamp before handing positions to
// the store.
func Clamp(p Position, pageWidth, pageHeight float64) Position {
	return Position{
		X: clamp(p.X, 0, pageWidth),
		Y: clamp(p.Y, 0, pageHeight),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
