package patient

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wardline/patientreport/pkg/layout"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patients.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0666))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeCSV(t,
		"name,age,gender,attendees,date_of_diagnosis,cancer_type,cancer_stage,cancer_grade,image_path,ward\n"+
			"John Doe,54,M,Dr. Smith,2024-01-15,Lung,III,2,photos/john.png,East\n"+
			"Jane Roe,61,F,,2023-11-02,Breast,II,1,,West\n")

	records, err := LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, Record{
		Name:            "John Doe",
		Age:             "54",
		Gender:          "M",
		Attendees:       "Dr. Smith",
		DateOfDiagnosis: "2024-01-15",
		CancerType:      "Lung",
		CancerStage:     "III",
		CancerGrade:     "2",
		ImagePath:       "photos/john.png",
	}, records[0])

	assert.Empty(t, records[1].Attendees)
	assert.Empty(t, records[1].ImagePath)
}

func TestLoadCSVShortRowPadded(t *testing.T) {
	path := writeCSV(t,
		"name,age,gender,attendees,date_of_diagnosis,cancer_type,cancer_stage,cancer_grade,image_path\n"+
			"John Doe,54\n")

	records, err := LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "John Doe", records[0].Name)
	assert.Equal(t, "54", records[0].Age)
	assert.Empty(t, records[0].Gender)
	assert.Empty(t, records[0].ImagePath)
}

func TestLoadCSVMissingColumnsEnumerated(t *testing.T) {
	path := writeCSV(t, "name,age\nJohn,54\n")

	_, err := LoadCSV(path)
	var missingErr *MissingColumnsError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{
		"gender", "attendees", "date_of_diagnosis",
		"cancer_type", "cancer_stage", "cancer_grade", "image_path",
	}, missingErr.Columns)
}

func TestLoadCSVEmptyFile(t *testing.T) {
	path := writeCSV(t, "")
	_, err := LoadCSV(path)
	assert.Error(t, err)
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestRecordValue(t *testing.T) {
	rec := Record{Name: "John", Age: "54", CancerGrade: "2"}
	assert.Equal(t, "John", rec.Value(layout.FieldName))
	assert.Equal(t, "54", rec.Value(layout.FieldAge))
	assert.Equal(t, "2", rec.Value(layout.FieldCancerGrade))
	assert.Empty(t, rec.Value(layout.FieldGender))
	assert.Empty(t, rec.Value(layout.FieldBedID), "bed_id has no record-backed value")
	assert.Empty(t, rec.Value(layout.FieldImage))
}
