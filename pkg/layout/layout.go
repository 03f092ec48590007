// Package layout manages the coordinate model of the report template.
//
// It defines the closed set of report fields, converts the built-in
// ratio-based default layout into absolute point coordinates for a given
// page size, and holds the mutable field-position mapping that the report
// compositor reads.
//
// Two coordinate spaces are involved: the editing space has its origin at
// the page's top-left corner with y growing downward, while some drawing
// targets anchor from the bottom edge. ToRenderY is the single conversion
// point between the two.
package layout

// FieldKind selects the drawing strategy for a field.
type FieldKind int

const (
	// TextField fields render their record value as a line of text.
	TextField FieldKind = iota
	// ImageField fields render a scaled raster image (or a placeholder).
	ImageField
)

// Field identifies one slot on the report template.
type Field string

// The closed set of known fields. No dynamic registration exists.
const (
	FieldBedID           Field = "bed_id"
	FieldName            Field = "name"
	FieldAge             Field = "age"
	FieldGender          Field = "gender"
	FieldAttendees       Field = "attendees"
	FieldImage           Field = "image"
	FieldDateOfDiagnosis Field = "date_of_diagnosis"
	FieldCancerType      Field = "cancer_type"
	FieldCancerStage     Field = "cancer_stage"
	FieldCancerGrade     Field = "cancer_grade"
)

// Fields lists every known field in display order.
var Fields = []Field{
	FieldBedID,
	FieldName,
	FieldAge,
	FieldGender,
	FieldAttendees,
	FieldImage,
	FieldDateOfDiagnosis,
	FieldCancerType,
	FieldCancerStage,
	FieldCancerGrade,
}

var fieldLabels = map[Field]string{
	FieldBedID:           "Bed ID",
	FieldName:            "Name",
	FieldAge:             "Age",
	FieldGender:          "Gender",
	FieldAttendees:       "Attendees",
	FieldImage:           "Patient Image",
	FieldDateOfDiagnosis: "Date of Diagnosis",
	FieldCancerType:      "Cancer Type",
	FieldCancerStage:     "Cancer Stage",
	FieldCancerGrade:     "Cancer Grade",
}

// Kind returns the drawing strategy for the field.
func (f Field) Kind() FieldKind {
	if f == FieldImage {
		return ImageField
	}
	return TextField
}

// Label returns the human-readable display name for the field.
func (f Field) Label() string {
	if l, ok := fieldLabels[f]; ok {
		return l
	}
	return string(f)
}

// Known reports whether f belongs to the closed field set.
func Known(f Field) bool {
	_, ok := fieldLabels[f]
	return ok
}
