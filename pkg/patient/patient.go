// Package patient defines the patient record type and loads record rows
// from CSV files, validating the required column set once up front.
package patient

import "github.com/wardline/patientreport/pkg/layout"

// Record is one row of patient data. Missing or blank cells are empty
// strings, never errors.
type Record struct {
	Name            string
	Age             string
	Gender          string
	Attendees       string
	DateOfDiagnosis string
	CancerType      string
	CancerStage     string
	CancerGrade     string
	ImagePath       string
}

// Value returns the display text for a text field. The bed_id field has
// no record-backed value; the compositor always renders the sequential
// bed number instead.
func (r Record) Value(f layout.Field) string {
	switch f {
	case layout.FieldName:
		return r.Name
	case layout.FieldAge:
		return r.Age
	case layout.FieldGender:
		return r.Gender
	case layout.FieldAttendees:
		return r.Attendees
	case layout.FieldDateOfDiagnosis:
		return r.DateOfDiagnosis
	case layout.FieldCancerType:
		return r.CancerType
	case layout.FieldCancerStage:
		return r.CancerStage
	case layout.FieldCancerGrade:
		return r.CancerGrade
	}
	return ""
}
